// Package sdkpath locates the Flutter SDK directory for a project.
//
// Sources are tried in a fixed order: the project's local properties file,
// then an environment variable, then a directory below the user's home.
// A properties file that exists but lacks the SDK key is a hard error; the
// resolver never falls through to the environment in that case.
package sdkpath

import (
	"errors"
	"fmt"
	"os"
	"os/user"
	"path/filepath"
	"strings"

	"github.com/magiconair/properties"
	"github.com/spf13/afero"
)

// Conventional names used when a Resolver field is left empty.
const (
	DefaultPropertiesFile = "local.properties"
	DefaultPropertyKey    = "flutter.sdk"
	DefaultEnvVar         = "FLUTTER_SDK"
	DefaultHomeSuffix     = "/flutter"
)

// ErrMissingRequiredConfigKey is returned when the local properties file
// exists but does not set the SDK key.
var ErrMissingRequiredConfigKey = errors.New("missing required config key")

// Source identifies which lookup produced a ResolvedPath.
type Source string

const (
	SourceProperties Source = "properties"
	SourceEnv        Source = "env"
	SourceHome       Source = "home"
)

// ResolvedPath is the outcome of a single resolution. Value is never empty.
type ResolvedPath struct {
	Value  string
	Source Source
}

func (p ResolvedPath) String() string {
	return p.Value
}

// Lookup is one step of the fallback chain. It reports found=false to pass
// control to the next step; a non-nil error stops the chain.
type Lookup func() (value string, found bool, err error)

// Resolver holds the inputs of a resolution. Zero-valued fields fall back to
// the conventional names and to the process environment.
type Resolver struct {
	Fs             afero.Fs
	ProjectDir     string
	PropertiesFile string
	PropertyKey    string
	EnvVar         string
	HomeSuffix     string

	// Getenv defaults to os.Getenv.
	Getenv func(string) string
	// HomeDir defaults to the current user's home directory.
	HomeDir func() (string, error)
}

// Resolve walks the fallback chain and returns the first value found.
func (r *Resolver) Resolve() (ResolvedPath, error) {
	var source Source
	tag := func(s Source, l Lookup) Lookup {
		return func() (string, bool, error) {
			v, found, err := l()
			if found {
				source = s
			}
			return v, found, err
		}
	}

	value, found, err := FirstOf(
		tag(SourceProperties, r.fromProperties),
		tag(SourceEnv, r.fromEnv),
		tag(SourceHome, r.fromHome),
	)()
	if err != nil {
		return ResolvedPath{}, err
	}
	if !found {
		// unreachable: fromHome always reports a value
		return ResolvedPath{}, errors.New("no sdk path source produced a value")
	}
	return ResolvedPath{Value: value, Source: source}, nil
}

// FirstOf combines lookups into one that returns the first non-empty value.
func FirstOf(lookups ...Lookup) Lookup {
	return func() (string, bool, error) {
		for _, l := range lookups {
			v, found, err := l()
			if err != nil {
				return "", false, err
			}
			if found && v != "" {
				return v, true, nil
			}
		}
		return "", false, nil
	}
}

// PropertiesPath returns the location of the local properties file.
func (r *Resolver) PropertiesPath() string {
	dir := r.ProjectDir
	if dir == "" {
		dir = "."
	}
	return filepath.Join(dir, orDefault(r.PropertiesFile, DefaultPropertiesFile))
}

func (r *Resolver) fromProperties() (string, bool, error) {
	fs := r.fs()
	path := r.PropertiesPath()
	key := orDefault(r.PropertyKey, DefaultPropertyKey)

	exists, err := afero.Exists(fs, path)
	if err != nil {
		return "", false, fmt.Errorf("failed to stat %s: %w", path, err)
	}
	if !exists {
		return "", false, nil
	}

	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return "", false, fmt.Errorf("failed to read %s: %w", path, err)
	}

	// java.util.Properties reads streams as ISO-8859-1 and does not expand ${...}
	props := properties.NewProperties()
	props.DisableExpansion = true
	if err := props.Load(data, properties.ISO_8859_1); err != nil {
		return "", false, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	value, ok := props.Get(key)
	if !ok || strings.TrimSpace(value) == "" {
		return "", false, fmt.Errorf("%w: %s not set in %s", ErrMissingRequiredConfigKey, key, path)
	}
	return value, true, nil
}

func (r *Resolver) fromEnv() (string, bool, error) {
	getenv := r.Getenv
	if getenv == nil {
		getenv = os.Getenv
	}
	value := getenv(orDefault(r.EnvVar, DefaultEnvVar))
	return value, value != "", nil
}

func (r *Resolver) fromHome() (string, bool, error) {
	return r.home() + orDefault(r.HomeSuffix, DefaultHomeSuffix), true, nil
}

// home never fails; an undeterminable home directory yields "".
func (r *Resolver) home() string {
	if r.HomeDir != nil {
		if h, err := r.HomeDir(); err == nil {
			return h
		}
		return ""
	}
	if h, err := os.UserHomeDir(); err == nil {
		return h
	}
	if u, err := user.Current(); err == nil {
		return u.HomeDir
	}
	return ""
}

func (r *Resolver) fs() afero.Fs {
	if r.Fs == nil {
		return afero.NewOsFs()
	}
	return r.Fs
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}
