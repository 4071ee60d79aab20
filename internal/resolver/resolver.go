package resolver

import (
	"fmt"
	"path/filepath"

	"github.com/danieljhkim/omnicopy/internal/config"
)

// RootLocator finds the project root above a starting directory.
type RootLocator interface {
	Discover(start string) (string, error)
}

// Resolution describes a resolved output root and how it was derived.
type Resolution struct {
	// Root is the full output directory: Base[/Triple]/Profile.
	Root string `json:"root"`

	// Base is the artifact root, either CARGO_TARGET_DIR or <project>/target.
	Base string `json:"base"`

	// Kind is the inferred compile kind.
	Kind CompileKind `json:"kind"`

	// Profile is the profile segment used.
	Profile string `json:"profile"`

	// Triple is the target triple read from the environment.
	Triple string `json:"triple"`
}

// Resolver computes output roots from an environment snapshot.
type Resolver struct {
	env      config.Source
	locator  RootLocator
	getwd    func() (string, error)
	settings config.Settings
}

// New creates a Resolver. getwd supplies the directory discovery starts from.
func New(env config.Source, locator RootLocator, getwd func() (string, error), settings config.Settings) *Resolver {
	return &Resolver{
		env:      env,
		locator:  locator,
		getwd:    getwd,
		settings: settings,
	}
}

// ResolveOutputRoot returns the output directory for profile.
// Any profile string is accepted, including the empty string.
func (r *Resolver) ResolveOutputRoot(profile string) (string, error) {
	res, err := r.Resolve(profile)
	if err != nil {
		return "", err
	}
	return res.Root, nil
}

// Resolve returns the output directory for profile along with its derivation.
func (r *Resolver) Resolve(profile string) (*Resolution, error) {
	base, err := r.BaseRoot()
	if err != nil {
		return nil, err
	}

	triple, err := config.Require(r.env, config.VarTarget)
	if err != nil {
		return nil, err
	}
	outDir, err := config.Require(r.env, config.VarOutDir)
	if err != nil {
		return nil, err
	}

	kind := InferKind(outDir, triple, profile, r.settings.Match)

	root := base
	if kind == KindTarget {
		root = filepath.Join(root, triple)
	}
	root = filepath.Join(root, profile)

	return &Resolution{
		Root:    root,
		Base:    base,
		Kind:    kind,
		Profile: profile,
		Triple:  triple,
	}, nil
}

// BaseRoot returns CARGO_TARGET_DIR verbatim when set, otherwise the project
// root joined with the target directory name.
func (r *Resolver) BaseRoot() (string, error) {
	if override, ok := r.env.Lookup(config.VarTargetDir); ok {
		return override, nil
	}

	root, err := r.ProjectRoot()
	if err != nil {
		return "", err
	}
	return filepath.Join(root, r.settings.TargetDirName), nil
}

// ProjectRoot locates the project root above the working directory.
func (r *Resolver) ProjectRoot() (string, error) {
	cwd, err := r.getwd()
	if err != nil {
		return "", fmt.Errorf("failed to get current directory: %w", err)
	}
	return r.locator.Discover(cwd)
}
