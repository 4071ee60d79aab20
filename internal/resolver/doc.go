// Package resolver computes the artifact output directory for a build profile.
//
// The build tool does not publish where a build's artifacts land, so the
// resolver reconstructs it:
//
//	<base>/<profile>           host build
//	<base>/<triple>/<profile>  explicit-target build
//
// base is CARGO_TARGET_DIR when set, otherwise the project root joined with
// "target". The compile kind is inferred by checking whether OUT_DIR contains
// "<triple>/<profile>". The resolver never creates or checks the directory.
package resolver
