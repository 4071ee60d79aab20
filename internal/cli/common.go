package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/danieljhkim/omnicopy/internal/config"
	"github.com/danieljhkim/omnicopy/internal/directive"
	"github.com/danieljhkim/omnicopy/internal/engine"
	"github.com/danieljhkim/omnicopy/internal/fsops"
	"github.com/danieljhkim/omnicopy/internal/resolver"
	"github.com/danieljhkim/omnicopy/internal/workspace"
)

// workingDir is swapped in tests.
var workingDir = os.Getwd

// newEngine creates a new engine with real implementations of all dependencies.
// Directives are written to the command's stdout.
func newEngine(cmd *cobra.Command) (*engine.Engine, error) {
	settings, err := config.LoadSettings(cmd.Flags())
	if err != nil {
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}

	env := config.NewEnvSource()
	fs := fsops.NewRealFS()
	locator := workspace.NewLocator(fs, settings.Manifest, settings.Lockfile)
	res := resolver.New(env, locator, workingDir, settings)
	emitter := directive.NewEmitter(cmd.OutOrStdout())

	return engine.New(env, fs, res, emitter, newLogger(cmd.ErrOrStderr())), nil
}

// newLogger returns a text logger on w. Only warnings are shown unless
// --verbose is set.
func newLogger(w io.Writer) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// profileFlag returns the --profile value when it was given explicitly.
func profileFlag(cmd *cobra.Command) *string {
	if !cmd.Flags().Changed("profile") {
		return nil
	}
	p, err := cmd.Flags().GetString("profile")
	if err != nil {
		return nil
	}
	return &p
}

// nativeArgs validates command-line paths as UTF-8 text.
func nativeArgs(args []string) ([]string, error) {
	paths := make([]string, 0, len(args))
	for _, arg := range args {
		text, err := fsops.NativePathOf(arg).Text()
		if err != nil {
			return nil, err
		}
		paths = append(paths, text)
	}
	return paths, nil
}

// formatJSON formats a value as JSON.
func formatJSON(v interface{}) (string, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// outputJSON writes a value as indented JSON to w.
func outputJSON(w io.Writer, v interface{}) error {
	out, err := formatJSON(v)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, out)
	return err
}
