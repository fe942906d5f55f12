package sdkpath

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/spf13/afero"
)

// DefaultLoaderSubpath is where the SDK ships its Gradle plugin loader build.
const DefaultLoaderSubpath = "packages/flutter_tools/gradle"

// ErrPluginLoaderMissing is returned when the plugin loader directory does
// not exist below the resolved SDK path.
var ErrPluginLoaderMissing = errors.New("plugin loader not found")

// PluginLoaderPath returns the build that gets included from the SDK.
// An empty subpath selects DefaultLoaderSubpath.
func PluginLoaderPath(sdk ResolvedPath, subpath string) string {
	return filepath.Join(sdk.Value, filepath.FromSlash(orDefault(subpath, DefaultLoaderSubpath)))
}

// CheckPluginLoader verifies that path is an existing directory.
func CheckPluginLoader(fs afero.Fs, path string) error {
	ok, err := afero.DirExists(fs, path)
	if err != nil {
		return fmt.Errorf("failed to stat %s: %w", path, err)
	}
	if !ok {
		return fmt.Errorf("%w: %s", ErrPluginLoaderMissing, path)
	}
	return nil
}
