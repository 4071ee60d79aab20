package engine

import (
	"github.com/danieljhkim/omnicopy/internal/planner"
	"github.com/danieljhkim/omnicopy/internal/resolver"
)

// CopyResult represents the result of a copy request.
type CopyResult struct {
	// Resolution is the resolved output directory
	Resolution *resolver.Resolution

	// Plans holds one plan per source, in request order
	Plans []*planner.CopyPlan

	// Applied is the list of operations that were executed (empty if DryRun)
	Applied []planner.Operation
}
