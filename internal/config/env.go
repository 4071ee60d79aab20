// Package config reads the build environment and omnicopy's own settings.
//
// Build-tool variables (PROFILE, OUT_DIR, TARGET, CARGO_TARGET_DIR) are read
// through a Source at call time and never cached, so tests can substitute a
// MapSource instead of mutating the process environment.
package config

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"
)

// Names of the variables the build tool exports to build scripts.
const (
	// VarProfile is the build profile name (debug, release, ...).
	VarProfile = "PROFILE"

	// VarOutDir is the per-invocation output directory assigned by the build tool.
	// It is only inspected, never written to.
	VarOutDir = "OUT_DIR"

	// VarTarget is the compiler target triple of the current build.
	VarTarget = "TARGET"

	// VarTargetDir overrides the artifact root when set.
	VarTargetDir = "CARGO_TARGET_DIR"
)

// ErrEnvironmentVariableMissing indicates a required variable was not set.
var ErrEnvironmentVariableMissing = errors.New("environment variable missing")

// MissingVariableError names the variable that was required but absent.
type MissingVariableError struct {
	Name string
}

func (e *MissingVariableError) Error() string {
	return fmt.Sprintf("%s: %s", ErrEnvironmentVariableMissing, e.Name)
}

// Is reports whether target is ErrEnvironmentVariableMissing.
func (e *MissingVariableError) Is(target error) bool {
	return target == ErrEnvironmentVariableMissing
}

// Source provides named configuration values.
// Implementations report empty values as absent.
type Source interface {
	// Lookup returns the value of name and whether it was set.
	Lookup(name string) (string, bool)
}

// Require returns the value of name or a *MissingVariableError.
func Require(src Source, name string) (string, error) {
	val, ok := src.Lookup(name)
	if !ok {
		return "", &MissingVariableError{Name: name}
	}
	return val, nil
}

// EnvSource implements Source over the process environment.
type EnvSource struct {
	v *viper.Viper
}

// NewEnvSource creates an EnvSource. Values are looked up on every call.
func NewEnvSource() *EnvSource {
	v := viper.New()
	v.AutomaticEnv()
	return &EnvSource{v: v}
}

// Lookup returns the environment value of name.
func (s *EnvSource) Lookup(name string) (string, bool) {
	if !s.v.IsSet(name) {
		return "", false
	}
	val := s.v.GetString(name)
	return val, val != ""
}

// MapSource implements Source with a fixed set of values for testing.
type MapSource map[string]string

// Lookup returns the value of name from the map.
func (m MapSource) Lookup(name string) (string, bool) {
	val, ok := m[name]
	return val, ok && val != ""
}
