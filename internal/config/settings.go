package config

import (
	"errors"
	"fmt"

	"github.com/adrg/xdg"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// MatchMode selects how the compile kind is inferred from OUT_DIR.
type MatchMode string

const (
	// MatchSegment requires "{triple}/{profile}" to appear as whole path segments.
	MatchSegment MatchMode = "segment"

	// MatchSubstring accepts any substring occurrence of "{triple}/{profile}".
	MatchSubstring MatchMode = "substring"
)

const (
	envPrefix      = "OMNICOPY"
	configFileName = "omnicopy/config.yaml"

	defaultManifest      = "Cargo.toml"
	defaultLockfile      = "Cargo.lock"
	defaultTargetDirName = "target"
)

// ErrInvalidSettings indicates a setting holds an unsupported value.
var ErrInvalidSettings = errors.New("invalid settings")

// Settings are omnicopy's own options, independent of the build environment.
type Settings struct {
	// Match is the compile-kind matching mode.
	Match MatchMode

	// Manifest is the file name that marks a package root.
	Manifest string

	// Lockfile is the file name that marks a workspace root.
	Lockfile string

	// TargetDirName is the segment appended to the project root when
	// CARGO_TARGET_DIR is not set.
	TargetDirName string
}

// DefaultSettings returns the settings used when nothing is configured.
func DefaultSettings() Settings {
	return Settings{
		Match:         MatchSegment,
		Manifest:      defaultManifest,
		Lockfile:      defaultLockfile,
		TargetDirName: defaultTargetDirName,
	}
}

// LoadSettings resolves settings from flags, OMNICOPY_* environment variables,
// the user config file ($XDG_CONFIG_HOME/omnicopy/config.yaml), then defaults.
// flags may be nil.
func LoadSettings(flags *pflag.FlagSet) (Settings, error) {
	v := viper.New()

	defaults := DefaultSettings()
	v.SetDefault("match", string(defaults.Match))
	v.SetDefault("manifest", defaults.Manifest)
	v.SetDefault("lockfile", defaults.Lockfile)
	v.SetDefault("target_dir_name", defaults.TargetDirName)

	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()

	if path, err := xdg.SearchConfigFile(configFileName); err == nil {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Settings{}, fmt.Errorf("reading config file %s: %w", path, err)
		}
	}

	if flags != nil {
		if f := flags.Lookup("match"); f != nil {
			if err := v.BindPFlag("match", f); err != nil {
				return Settings{}, fmt.Errorf("binding match flag: %w", err)
			}
		}
	}

	s := Settings{
		Match:         MatchMode(v.GetString("match")),
		Manifest:      v.GetString("manifest"),
		Lockfile:      v.GetString("lockfile"),
		TargetDirName: v.GetString("target_dir_name"),
	}
	if err := s.Validate(); err != nil {
		return Settings{}, err
	}
	return s, nil
}

// Validate checks that every setting holds a supported value.
func (s Settings) Validate() error {
	switch s.Match {
	case MatchSegment, MatchSubstring:
	default:
		return fmt.Errorf("%w: unknown match mode %q (want %q or %q)", ErrInvalidSettings, s.Match, MatchSegment, MatchSubstring)
	}
	if s.Manifest == "" {
		return fmt.Errorf("%w: manifest name is empty", ErrInvalidSettings)
	}
	if s.TargetDirName == "" {
		return fmt.Errorf("%w: target directory name is empty", ErrInvalidSettings)
	}
	return nil
}
