package resolver

import (
	"testing"

	"github.com/danieljhkim/omnicopy/internal/config"
)

func TestInferKind(t *testing.T) {
	const triple = "x86_64-unknown-linux-gnu"

	tests := []struct {
		name    string
		outDir  string
		profile string
		mode    config.MatchMode
		want    CompileKind
	}{
		{
			name:    "host build",
			outDir:  "/p/target/debug/build/fake_crate-1a2b/out",
			profile: "debug",
			mode:    config.MatchSegment,
			want:    KindHost,
		},
		{
			name:    "target build",
			outDir:  "/p/target/x86_64-unknown-linux-gnu/release/build/fake_crate-1a2b/out",
			profile: "release",
			mode:    config.MatchSegment,
			want:    KindTarget,
		},
		{
			name:    "target build with substring matching",
			outDir:  "/p/target/x86_64-unknown-linux-gnu/release/build/fake_crate-1a2b/out",
			profile: "release",
			mode:    config.MatchSubstring,
			want:    KindTarget,
		},
		{
			name:    "triple for another profile",
			outDir:  "/p/target/x86_64-unknown-linux-gnu/debug/build/fake_crate-1a2b/out",
			profile: "release",
			mode:    config.MatchSegment,
			want:    KindHost,
		},
		{
			name:    "prefixed triple is a substring false positive",
			outDir:  "/p/my-x86_64-unknown-linux-gnu/release/target/release/build/c/out",
			profile: "release",
			mode:    config.MatchSubstring,
			want:    KindTarget,
		},
		{
			name:    "prefixed triple is rejected by segment matching",
			outDir:  "/p/my-x86_64-unknown-linux-gnu/release/target/release/build/c/out",
			profile: "release",
			mode:    config.MatchSegment,
			want:    KindHost,
		},
		{
			name:    "profile prefix is a substring false positive",
			outDir:  "/p/target/x86_64-unknown-linux-gnu/release-lto/build/c/out",
			profile: "release",
			mode:    config.MatchSubstring,
			want:    KindTarget,
		},
		{
			name:    "profile prefix is rejected by segment matching",
			outDir:  "/p/target/x86_64-unknown-linux-gnu/release-lto/build/c/out",
			profile: "release",
			mode:    config.MatchSegment,
			want:    KindHost,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := InferKind(tt.outDir, triple, tt.profile, tt.mode)
			if got != tt.want {
				t.Errorf("InferKind(%q, %q) = %q, want %q", tt.outDir, tt.profile, got, tt.want)
			}
		})
	}
}
