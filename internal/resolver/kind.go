package resolver

import (
	"path/filepath"
	"strings"

	"github.com/danieljhkim/omnicopy/internal/config"
)

// CompileKind distinguishes host builds from explicit-target builds.
type CompileKind string

const (
	// KindHost is a native build without --target; artifacts sit directly under the base.
	KindHost CompileKind = "host"

	// KindTarget is a build with an explicit target; artifacts sit under base/<triple>.
	KindTarget CompileKind = "target"
)

// InferKind inspects outDir for "<triple>/<profile>".
//
// MatchSubstring tests plain containment and can match inside unrelated path
// components. MatchSegment requires the triple and profile to be whole,
// consecutive path segments.
func InferKind(outDir, triple, profile string, mode config.MatchMode) CompileKind {
	var found bool
	switch mode {
	case config.MatchSubstring:
		found = strings.Contains(outDir, triple+string(filepath.Separator)+profile)
	default:
		found = containsSegments(outDir, triple, profile)
	}

	if found {
		return KindTarget
	}
	return KindHost
}

// containsSegments reports whether triple and profile appear as adjacent segments of path.
func containsSegments(path, triple, profile string) bool {
	segments := strings.Split(filepath.ToSlash(path), "/")
	for i := 0; i+1 < len(segments); i++ {
		if segments[i] == triple && segments[i+1] == profile {
			return true
		}
	}
	return false
}
