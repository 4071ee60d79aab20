// Package planner builds copy plans before anything is written.
//
// A plan is the ordered list of filesystem operations that Engine executes to
// copy a source into an output directory. Planning is read-only, which is
// what powers dry runs.
//
// Copy semantics:
//   - A directory source is copied by its contents: res/{a,b} into out yields out/a, out/b
//   - A file source lands inside the destination: res/a.txt into out yields out/a.txt
//   - Existing files are overwritten; empty directories are reproduced
//   - A destination entry whose type differs from the source is removed first
package planner
