package planner

import "os"

// CopyPlan represents a plan to copy one source into a destination directory.
type CopyPlan struct {
	// Source is the path being copied (absolute)
	Source string

	// Destination is the directory receiving the copy (absolute)
	Destination string

	// Operations is the ordered list of operations to execute
	Operations []Operation
}

// Operation represents a single filesystem operation to execute.
type Operation struct {
	// Type is the operation type: "mkdir", "copy", "remove"
	Type string

	// SourcePath is the source path (empty for remove)
	SourcePath string

	// DestPath is the destination path (absolute, for FS operations)
	DestPath string

	// RelPath is the path relative to the destination directory
	RelPath string

	// Mode is the permission mode for created entries
	Mode os.FileMode

	// Overwrite is true when a copy replaces an existing file
	Overwrite bool
}

// Operation type constants
const (
	OpMkdir  = "mkdir"
	OpCopy   = "copy"
	OpRemove = "remove"
)

// NewCopyPlan creates a new empty CopyPlan.
func NewCopyPlan(source, destination string) *CopyPlan {
	return &CopyPlan{
		Source:      source,
		Destination: destination,
		Operations:  []Operation{},
	}
}

// AddOperation adds an operation to the plan.
func (p *CopyPlan) AddOperation(op Operation) {
	p.Operations = append(p.Operations, op)
}

// Count returns the number of operations of the given type.
func (p *CopyPlan) Count(opType string) int {
	n := 0
	for _, op := range p.Operations {
		if op.Type == opType {
			n++
		}
	}
	return n
}
