// Package workspace locates the project root that owns the current build.
//
// Discovery walks upward from a starting directory. The nearest directory
// holding the package manifest is the package root; an ancestor holding the
// lockfile, or a manifest that declares a [workspace] table, is the workspace
// root and takes precedence. The walk only queries the injected filesystem,
// so it runs unchanged against an in-memory tree.
package workspace
