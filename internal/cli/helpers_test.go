package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/adrg/xdg"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

const testTriple = "x86_64-unknown-linux-gnu"

// contains checks if a string contains a substring
func contains(s, substr string) bool {
	return strings.Contains(s, substr)
}

// resetFlags restores every flag in the tree to its default so tests do not
// see values or Changed state left by earlier executions.
func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, c := range cmd.Commands() {
		resetFlags(c)
	}
}

// executeCommand runs the root command with args and returns stdout and stderr.
func executeCommand(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	resetFlags(rootCmd)

	var stdout, stderr bytes.Buffer
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})

	err := rootCmd.ExecuteContext(context.Background())
	return stdout.String(), stderr.String(), err
}

// setupCrate creates a crate with a res/ directory under a temp dir, points
// the working directory at it, and sets a host build environment.
// It returns the crate root.
func setupCrate(t *testing.T) string {
	t.Helper()

	tmp := t.TempDir()
	crate := filepath.Join(tmp, "fake_crate")

	writeFile(t, filepath.Join(crate, "Cargo.toml"), "[package]\nname = \"fake_crate\"\n")
	writeFile(t, filepath.Join(crate, "res", "test.txt"), "xyz")
	writeFile(t, filepath.Join(crate, "res", "nested", "test2.txt"), "abc")
	if err := os.MkdirAll(filepath.Join(crate, "res", "empty"), 0755); err != nil {
		t.Fatalf("Failed to create empty dir: %v", err)
	}

	oldWd := workingDir
	workingDir = func() (string, error) { return crate, nil }
	t.Cleanup(func() { workingDir = oldWd })

	configHome := filepath.Join(tmp, "config")
	t.Cleanup(xdg.Reload)
	t.Setenv("XDG_CONFIG_HOME", configHome)
	t.Setenv("XDG_CONFIG_DIRS", configHome)
	xdg.Reload()

	t.Setenv("OMNICOPY_MATCH", "")
	t.Setenv("CARGO_TARGET_DIR", "")
	t.Setenv("PROFILE", "debug")
	t.Setenv("TARGET", testTriple)
	t.Setenv("OUT_DIR", filepath.Join(crate, "target", "debug", "build", "fake_crate-1a2b3c", "out"))

	return crate
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("Failed to create %s: %v", filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write %s: %v", path, err)
	}
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read %s: %v", path, err)
	}
	return string(data)
}
