// Package engine provides the copy orchestration behind every omnicopy command.
//
// The engine resolves the output directory through the resolver, plans the
// copy of each source with the planner, and executes the plan through the
// fsops.FS abstraction. It also emits rerun-if-changed directives.
//
// Key components:
//   - Engine: orchestrator holding the injected dependencies
//   - Copy: resolve, plan, and execute one or more sources
//   - Directives: rerun-if-changed helpers for files and the project root
package engine

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/danieljhkim/omnicopy/internal/config"
	"github.com/danieljhkim/omnicopy/internal/directive"
	"github.com/danieljhkim/omnicopy/internal/fsops"
	"github.com/danieljhkim/omnicopy/internal/planner"
	"github.com/danieljhkim/omnicopy/internal/resolver"
)

// Engine orchestrates all omnicopy operations.
// It is the main API surface called by the CLI.
type Engine struct {
	env      config.Source
	fs       fsops.FS
	resolver *resolver.Resolver
	emitter  *directive.Emitter
	logger   *slog.Logger
}

// New creates a new Engine with the given dependencies.
func New(
	env config.Source,
	fs fsops.FS,
	res *resolver.Resolver,
	emitter *directive.Emitter,
	logger *slog.Logger,
) *Engine {
	return &Engine{
		env:      env,
		fs:       fs,
		resolver: res,
		emitter:  emitter,
		logger:   logger,
	}
}

// Resolve returns the output directory for the requested or environment profile.
func (e *Engine) Resolve(ctx context.Context, req *ResolveRequest) (*resolver.Resolution, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	profile, err := e.profile(req.Profile)
	if err != nil {
		return nil, err
	}

	res, err := e.resolver.Resolve(profile)
	if err != nil {
		return nil, err
	}

	e.logger.Debug("resolved output root",
		"root", res.Root,
		"base", res.Base,
		"kind", res.Kind,
		"profile", res.Profile,
		"triple", res.Triple,
	)
	return res, nil
}

// profile returns the explicit profile, or PROFILE from the environment.
func (e *Engine) profile(explicit *string) (string, error) {
	if explicit != nil {
		return *explicit, nil
	}
	return config.Require(e.env, config.VarProfile)
}

// executeOperation executes a single operation.
func (e *Engine) executeOperation(op planner.Operation) error {
	switch op.Type {
	case planner.OpMkdir:
		return e.executeMkdir(op)
	case planner.OpCopy:
		return e.executeCopy(op)
	case planner.OpRemove:
		return e.executeRemove(op)
	default:
		return fmt.Errorf("unknown operation type: %s", op.Type)
	}
}

// executeMkdir creates a directory; existing directories are left in place.
func (e *Engine) executeMkdir(op planner.Operation) error {
	mode := op.Mode
	if mode == 0 {
		mode = fsops.DefaultDirMode
	}
	if err := e.fs.MkdirAll(op.DestPath, mode); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}
	return nil
}

// executeCopy copies a file, overwriting an existing one.
func (e *Engine) executeCopy(op planner.Operation) error {
	mode := op.Mode
	if mode == 0 {
		mode = fsops.DefaultFileMode
	}
	if err := e.fs.CopyFile(op.SourcePath, op.DestPath, mode); err != nil {
		return fmt.Errorf("failed to copy: %w", err)
	}
	return nil
}

// executeRemove removes a path.
func (e *Engine) executeRemove(op planner.Operation) error {
	if err := e.fs.RemoveAll(op.DestPath); err != nil {
		return fmt.Errorf("failed to remove path: %w", err)
	}
	return nil
}
