// Package integration exercises the engine end to end against real
// directories laid out like cargo packages and workspaces.
package integration

import (
	"bytes"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/danieljhkim/omnicopy/internal/config"
	"github.com/danieljhkim/omnicopy/internal/directive"
	"github.com/danieljhkim/omnicopy/internal/engine"
	"github.com/danieljhkim/omnicopy/internal/fsops"
	"github.com/danieljhkim/omnicopy/internal/resolver"
	"github.com/danieljhkim/omnicopy/internal/workspace"
)

const testTriple = "x86_64-unknown-linux-gnu"

// testEnv is a build environment rooted at a temporary directory.
type testEnv struct {
	eng        *engine.Engine
	directives *bytes.Buffer
	crate      string
}

// setupTestEngine creates an engine over the real filesystem. env is the
// build environment the engine sees; crate is the build script's working
// directory.
func setupTestEngine(t *testing.T, env config.MapSource, crate string, mode config.MatchMode) *testEnv {
	t.Helper()

	settings := config.DefaultSettings()
	settings.Match = mode

	fs := fsops.NewRealFS()
	locator := workspace.NewLocator(fs, settings.Manifest, settings.Lockfile)
	res := resolver.New(env, locator, func() (string, error) { return crate, nil }, settings)

	var directives bytes.Buffer
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	eng := engine.New(env, fs, res, directive.NewEmitter(&directives), logger)

	return &testEnv{eng: eng, directives: &directives, crate: crate}
}

// newFakeCrate lays out a standalone package with a res/ directory and
// returns the temp root and the crate directory.
func newFakeCrate(t *testing.T) (string, string) {
	t.Helper()

	root := t.TempDir()
	crate := filepath.Join(root, "fake_crate")
	writeFile(t, filepath.Join(crate, "Cargo.toml"), "[package]\nname = \"fake_crate\"\nversion = \"0.1.0\"\n")
	writeResources(t, crate)
	return root, crate
}

// newFakeWorkspace lays out a virtual workspace with one member package.
// The workspace root holds the lockfile when withLock is set; the manifest
// always declares [workspace]. It returns the workspace root and the member.
func newFakeWorkspace(t *testing.T, withLock bool) (string, string) {
	t.Helper()

	root := filepath.Join(t.TempDir(), "fake_workspace")
	writeFile(t, filepath.Join(root, "Cargo.toml"), "[workspace]\nmembers = [\"fake_crate\"]\nresolver = \"2\"\n")
	if withLock {
		writeFile(t, filepath.Join(root, "Cargo.lock"), "version = 3\n")
	}

	member := filepath.Join(root, "fake_crate")
	writeFile(t, filepath.Join(member, "Cargo.toml"), "[package]\nname = \"fake_crate\"\nversion = \"0.1.0\"\n")
	writeResources(t, member)
	return root, member
}

// writeResources creates res/ with an empty dir, a nested file, and a
// top-level file.
func writeResources(t *testing.T, crate string) {
	t.Helper()

	writeFile(t, filepath.Join(crate, "res", "test.txt"), "xyz")
	writeFile(t, filepath.Join(crate, "res", "nested", "test2.txt"), "abc")
	if err := os.MkdirAll(filepath.Join(crate, "res", "empty"), 0755); err != nil {
		t.Fatalf("failed to create empty dir: %v", err)
	}
}

// buildEnv returns the variables cargo sets for a build script. outDir is
// relative to base.
func buildEnv(profile, base string, outDir ...string) config.MapSource {
	return config.MapSource{
		config.VarProfile: profile,
		config.VarTarget:  testTriple,
		config.VarOutDir:  filepath.Join(append([]string{base}, outDir...)...),
	}
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("failed to create %s: %v", filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write %s: %v", path, err)
	}
}

// assertFile checks that path is a regular file holding want.
func assertFile(t *testing.T, path, want string) {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read %s: %v", path, err)
	}
	if string(data) != want {
		t.Errorf("%s = %q, want %q", path, data, want)
	}
}

// assertEmptyDir checks that path is a directory with no entries.
func assertEmptyDir(t *testing.T, path string) {
	t.Helper()
	entries, err := os.ReadDir(path)
	if err != nil {
		t.Fatalf("failed to read dir %s: %v", path, err)
	}
	if len(entries) != 0 {
		t.Errorf("expected %s to be empty, found %d entries", path, len(entries))
	}
}

// assertResources checks the layout writeResources produces, copied into dir.
func assertResources(t *testing.T, dir string) {
	t.Helper()
	assertEmptyDir(t, filepath.Join(dir, "empty"))
	assertFile(t, filepath.Join(dir, "nested", "test2.txt"), "abc")
	assertFile(t, filepath.Join(dir, "test.txt"), "xyz")
}
