package engine

// CopyRequest represents a request to copy sources into the output directory.
type CopyRequest struct {
	// Sources are the files or directories to copy, in order
	Sources []string

	// Profile overrides the PROFILE variable when non-nil
	Profile *string

	// Watch emits a rerun-if-changed directive for each copied source
	Watch bool

	// DryRun performs planning only without making changes
	DryRun bool
}

// ResolveRequest represents a request to resolve the output directory.
type ResolveRequest struct {
	// Profile overrides the PROFILE variable when non-nil
	Profile *string
}
