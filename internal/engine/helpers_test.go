package engine

import (
	"bytes"
	"io"
	"log/slog"
	"os"
	"testing"

	"github.com/spf13/afero"

	"github.com/danieljhkim/omnicopy/internal/config"
	"github.com/danieljhkim/omnicopy/internal/directive"
	"github.com/danieljhkim/omnicopy/internal/fsops"
	"github.com/danieljhkim/omnicopy/internal/resolver"
	"github.com/danieljhkim/omnicopy/internal/workspace"
)

const testTriple = "x86_64-unknown-linux-gnu"

// testEnv bundles an engine with the in-memory state it runs against.
type testEnv struct {
	fs         *fsops.AferoFS
	env        config.MapSource
	directives *bytes.Buffer
	engine     *Engine
}

// newTestEnv creates a crate at /p/fake_crate with the res/ fixture tree and
// an engine whose working directory is the crate.
func newTestEnv(t *testing.T, env config.MapSource) *testEnv {
	t.Helper()

	fs := fsops.NewMemFS()
	afs := fs.Afero()
	if err := afs.MkdirAll("/p/fake_crate/res/empty", 0755); err != nil {
		t.Fatal(err)
	}
	for path, content := range map[string]string{
		"/p/fake_crate/Cargo.toml":           "[package]\nname = \"fake_crate\"\n",
		"/p/fake_crate/res/test.txt":         "xyz",
		"/p/fake_crate/res/nested/test2.txt": "abc",
	} {
		if err := afero.WriteFile(afs, path, []byte(content), 0644); err != nil {
			t.Fatal(err)
		}
	}

	settings := config.DefaultSettings()
	locator := workspace.NewLocator(fs, settings.Manifest, settings.Lockfile)
	getwd := func() (string, error) { return "/p/fake_crate", nil }
	res := resolver.New(env, locator, getwd, settings)

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	eng := New(env, fs, res, directive.NewEmitter(&buf), logger)

	return &testEnv{fs: fs, env: env, directives: &buf, engine: eng}
}

func hostEnv(profile string) config.MapSource {
	return config.MapSource{
		"PROFILE": profile,
		"TARGET":  testTriple,
		"OUT_DIR": "/p/fake_crate/target/" + profile + "/build/fake_crate-1a2b/out",
	}
}

func targetEnv(profile string) config.MapSource {
	return config.MapSource{
		"PROFILE": profile,
		"TARGET":  testTriple,
		"OUT_DIR": "/p/fake_crate/target/" + testTriple + "/" + profile + "/build/fake_crate-1a2b/out",
	}
}

func (e *testEnv) readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := e.fs.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read %s: %v", path, err)
	}
	return string(data)
}

func (e *testEnv) assertEmptyDir(t *testing.T, path string) {
	t.Helper()
	entries, err := e.fs.ReadDir(path)
	if err != nil {
		t.Fatalf("failed to read dir %s: %v", path, err)
	}
	if len(entries) != 0 {
		t.Errorf("%s should be empty, has %d entries", path, len(entries))
	}
}

// snapshot returns path -> content for every file under root, with "/" for directories.
func (e *testEnv) snapshot(t *testing.T, root string) map[string]string {
	t.Helper()
	out := map[string]string{}
	err := afero.Walk(e.fs.Afero(), root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			out[path] = "/"
			return nil
		}
		data, err := afero.ReadFile(e.fs.Afero(), path)
		if err != nil {
			return err
		}
		out[path] = string(data)
		return nil
	})
	if err != nil {
		t.Fatalf("walk %s: %v", root, err)
	}
	return out
}
