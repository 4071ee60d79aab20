package engine

import "context"

// EmitRerunIfChanged restricts the build tool's change detection to path.
func (e *Engine) EmitRerunIfChanged(path string) {
	e.emitter.RerunIfChanged(path)
}

// EmitRerunIfProjectChanged emits a directive for the project root, restoring
// whole-project change tracking after other paths were emitted.
func (e *Engine) EmitRerunIfProjectChanged(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	root, err := e.resolver.ProjectRoot()
	if err != nil {
		return err
	}

	e.logger.Debug("watching project root", "root", root)
	e.emitter.RerunIfChanged(root)
	return nil
}
