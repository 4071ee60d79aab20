package engine

import (
	"context"

	"github.com/danieljhkim/omnicopy/internal/fsops"
	"github.com/danieljhkim/omnicopy/internal/planner"
)

// CopyToOutput copies source into the output directory for PROFILE.
func (e *Engine) CopyToOutput(ctx context.Context, source string) error {
	_, err := e.Copy(ctx, &CopyRequest{Sources: []string{source}})
	return err
}

// CopyToOutputForProfile copies source into the output directory for profile.
func (e *Engine) CopyToOutputForProfile(ctx context.Context, source, profile string) error {
	_, err := e.Copy(ctx, &CopyRequest{Sources: []string{source}, Profile: &profile})
	return err
}

// CopyPathToOutput is CopyToOutput for a native path.
// It fails with fsops.ErrInvalidPathEncoding if the path is not valid text.
func (e *Engine) CopyPathToOutput(ctx context.Context, source fsops.NativePath) error {
	text, err := source.Text()
	if err != nil {
		return err
	}
	return e.CopyToOutput(ctx, text)
}

// CopyPathToOutputForProfile is CopyToOutputForProfile for a native path.
func (e *Engine) CopyPathToOutputForProfile(ctx context.Context, source fsops.NativePath, profile string) error {
	text, err := source.Text()
	if err != nil {
		return err
	}
	return e.CopyToOutputForProfile(ctx, text, profile)
}

// Copy resolves the output directory once and copies each source into it.
// Sources are processed in order and the first failure stops the request.
func (e *Engine) Copy(ctx context.Context, req *CopyRequest) (*CopyResult, error) {
	res, err := e.Resolve(ctx, &ResolveRequest{Profile: req.Profile})
	if err != nil {
		return nil, err
	}

	result := &CopyResult{
		Resolution: res,
		Plans:      make([]*planner.CopyPlan, 0, len(req.Sources)),
		Applied:    []planner.Operation{},
	}

	for _, source := range req.Sources {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		plan, err := planner.BuildCopyPlan(e.fs, source, res.Root)
		if err != nil {
			return result, &CopyError{Source: source, Destination: res.Root, Err: err}
		}
		result.Plans = append(result.Plans, plan)

		e.logger.Debug("planned copy",
			"source", source,
			"destination", res.Root,
			"operations", len(plan.Operations),
			"dry_run", req.DryRun,
		)

		if req.DryRun {
			continue
		}

		for _, op := range plan.Operations {
			if err := e.executeOperation(op); err != nil {
				return result, &CopyError{Source: source, Destination: res.Root, Err: err}
			}
			result.Applied = append(result.Applied, op)
		}

		if req.Watch {
			e.EmitRerunIfChanged(source)
		}
	}

	return result, nil
}
