package cli

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/danieljhkim/omnicopy/internal/config"
	"github.com/danieljhkim/omnicopy/internal/engine"
	"github.com/danieljhkim/omnicopy/internal/resolver"
)

func TestResolveCommand(t *testing.T) {
	crate := setupCrate(t)

	stdout, _, err := executeCommand(t, "resolve")
	if err != nil {
		t.Fatalf("resolve error = %v", err)
	}

	want := filepath.Join(crate, "target", "debug") + "\n"
	if stdout != want {
		t.Errorf("resolve = %q, want %q", stdout, want)
	}
}

func TestResolveCommand_ProfileFlag(t *testing.T) {
	crate := setupCrate(t)
	t.Setenv("PROFILE", "")

	stdout, _, err := executeCommand(t, "resolve", "--profile", "release")
	if err != nil {
		t.Fatalf("resolve error = %v", err)
	}

	want := filepath.Join(crate, "target", "release") + "\n"
	if stdout != want {
		t.Errorf("resolve = %q, want %q", stdout, want)
	}
}

func TestResolveCommand_TargetBuild(t *testing.T) {
	crate := setupCrate(t)
	t.Setenv("OUT_DIR", filepath.Join(crate, "target", testTriple, "debug", "build", "fake_crate-1a2b3c", "out"))

	stdout, _, err := executeCommand(t, "resolve", "--json")
	if err != nil {
		t.Fatalf("resolve error = %v", err)
	}

	var res resolver.Resolution
	if err := json.Unmarshal([]byte(stdout), &res); err != nil {
		t.Fatalf("failed to parse JSON output %q: %v", stdout, err)
	}
	if res.Kind != resolver.KindTarget {
		t.Errorf("kind = %q, want %q", res.Kind, resolver.KindTarget)
	}
	if want := filepath.Join(crate, "target", testTriple, "debug"); res.Root != want {
		t.Errorf("root = %q, want %q", res.Root, want)
	}
	if res.Triple != testTriple {
		t.Errorf("triple = %q, want %q", res.Triple, testTriple)
	}
}

func TestResolveCommand_MissingProfile(t *testing.T) {
	setupCrate(t)
	t.Setenv("PROFILE", "")

	_, _, err := executeCommand(t, "resolve")
	if !errors.Is(err, config.ErrEnvironmentVariableMissing) {
		t.Fatalf("expected ErrEnvironmentVariableMissing, got %v", err)
	}
}

func TestResolveCommand_InvalidMatchMode(t *testing.T) {
	setupCrate(t)

	_, _, err := executeCommand(t, "resolve", "--match", "fuzzy")
	if !errors.Is(err, config.ErrInvalidSettings) {
		t.Fatalf("expected ErrInvalidSettings, got %v", err)
	}
}

func TestCopyCommand_Directory(t *testing.T) {
	crate := setupCrate(t)
	src := filepath.Join(crate, "res")

	stdout, stderr, err := executeCommand(t, "copy", src)
	if err != nil {
		t.Fatalf("copy error = %v", err)
	}

	out := filepath.Join(crate, "target", "debug")
	if got := readFile(t, filepath.Join(out, "test.txt")); got != "xyz" {
		t.Errorf("test.txt = %q, want %q", got, "xyz")
	}
	if got := readFile(t, filepath.Join(out, "nested", "test2.txt")); got != "abc" {
		t.Errorf("nested/test2.txt = %q, want %q", got, "abc")
	}
	if info, err := os.Stat(filepath.Join(out, "empty")); err != nil || !info.IsDir() {
		t.Errorf("expected empty/ to be copied as a directory, err = %v", err)
	}

	if stdout != "" {
		t.Errorf("expected no directives without --watch, got %q", stdout)
	}
	if !contains(stderr, "Copied 2 file(s)") {
		t.Errorf("expected copy summary on stderr, got %q", stderr)
	}
}

func TestCopyCommand_WatchEmitsDirectives(t *testing.T) {
	crate := setupCrate(t)
	dir := filepath.Join(crate, "res", "nested")
	file := filepath.Join(crate, "res", "test.txt")

	stdout, _, err := executeCommand(t, "copy", "--watch", dir, file)
	if err != nil {
		t.Fatalf("copy error = %v", err)
	}

	want := "cargo:rerun-if-changed=" + dir + "\n" +
		"cargo:rerun-if-changed=" + file + "\n"
	if stdout != want {
		t.Errorf("directives = %q, want %q", stdout, want)
	}

	out := filepath.Join(crate, "target", "debug")
	if got := readFile(t, filepath.Join(out, "test2.txt")); got != "abc" {
		t.Errorf("test2.txt = %q, want %q", got, "abc")
	}
	if got := readFile(t, filepath.Join(out, "test.txt")); got != "xyz" {
		t.Errorf("test.txt = %q, want %q", got, "xyz")
	}
}

func TestCopyCommand_DryRun(t *testing.T) {
	crate := setupCrate(t)

	_, stderr, err := executeCommand(t, "copy", "--dry-run", filepath.Join(crate, "res"))
	if err != nil {
		t.Fatalf("copy error = %v", err)
	}

	if _, err := os.Stat(filepath.Join(crate, "target")); !os.IsNotExist(err) {
		t.Errorf("dry run should not create the output directory, stat err = %v", err)
	}
	if !contains(stderr, "test.txt") {
		t.Errorf("expected planned operations on stderr, got %q", stderr)
	}
}

func TestCopyCommand_JSON(t *testing.T) {
	crate := setupCrate(t)

	_, stderr, err := executeCommand(t, "copy", "--json", filepath.Join(crate, "res"))
	if err != nil {
		t.Fatalf("copy error = %v", err)
	}

	var summary copySummary
	if err := json.Unmarshal([]byte(stderr), &summary); err != nil {
		t.Fatalf("failed to parse JSON output %q: %v", stderr, err)
	}
	if summary.Kind != string(resolver.KindHost) {
		t.Errorf("kind = %q, want %q", summary.Kind, resolver.KindHost)
	}
	if len(summary.Sources) != 1 || summary.Sources[0].Files != 2 {
		t.Errorf("sources = %+v, want one source with 2 files", summary.Sources)
	}
}

func TestCopyCommand_MissingSource(t *testing.T) {
	crate := setupCrate(t)

	_, _, err := executeCommand(t, "copy", filepath.Join(crate, "does-not-exist"))
	if !errors.Is(err, engine.ErrCopyFailed) {
		t.Fatalf("expected ErrCopyFailed, got %v", err)
	}
}

func TestCopyCommand_RequiresArgs(t *testing.T) {
	setupCrate(t)

	if _, _, err := executeCommand(t, "copy"); err == nil {
		t.Error("expected error when no paths are given")
	}
}

func TestRerunIfChangedCommand(t *testing.T) {
	setupCrate(t)

	stdout, _, err := executeCommand(t, "rerun-if-changed", "res", "build.rs")
	if err != nil {
		t.Fatalf("rerun-if-changed error = %v", err)
	}

	want := "cargo:rerun-if-changed=res\ncargo:rerun-if-changed=build.rs\n"
	if stdout != want {
		t.Errorf("directives = %q, want %q", stdout, want)
	}
}

func TestRerunIfProjectChangedCommand(t *testing.T) {
	crate := setupCrate(t)

	stdout, _, err := executeCommand(t, "rerun-if-project-changed")
	if err != nil {
		t.Fatalf("rerun-if-project-changed error = %v", err)
	}

	want := "cargo:rerun-if-changed=" + crate + "\n"
	if stdout != want {
		t.Errorf("directives = %q, want %q", stdout, want)
	}
}
