package cmd

import (
	"bytes"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mfulz/sdkgeist/internal/config"
	"github.com/mfulz/sdkgeist/internal/configloader"
	"github.com/mfulz/sdkgeist/internal/sdkpath"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"
)

const project = "/src/app/android"

func setup(t *testing.T) afero.Fs {
	t.Helper()
	mem := afero.NewMemMapFs()
	require.NoError(t, mem.MkdirAll(project, 0o755))

	prevFs := fs
	fs = mem
	t.Cleanup(func() {
		fs = prevFs
		configloader.UnregisterConfig[*config.Config]()
	})

	configloader.RegisterConfig(&config.Config{SDK: config.SDKConfig{
		PropertiesFile: sdkpath.DefaultPropertiesFile,
		PropertyKey:    sdkpath.DefaultPropertyKey,
		EnvVar:         sdkpath.DefaultEnvVar,
		HomeSuffix:     sdkpath.DefaultHomeSuffix,
		LoaderSubpath:  sdkpath.DefaultLoaderSubpath,
	}})
	t.Setenv("FLUTTER_SDK", "")
	return mem
}

func run(t *testing.T, c *cobra.Command, args ...string) (string, error) {
	t.Helper()
	projectDir, homeDir, explain, check = ".", "", false, false

	var out bytes.Buffer
	c.SetOut(&out)
	c.SetErr(&out)
	c.SetArgs(args)
	err := c.Execute()
	return out.String(), err
}

func TestPathFromProperties(t *testing.T) {
	mem := setup(t)
	t.Setenv("FLUTTER_SDK", "/opt/other")
	require.NoError(t, afero.WriteFile(mem, filepath.Join(project, "local.properties"), []byte("flutter.sdk=/home/dev/fluttersdk\n"), 0o644))

	out, err := run(t, PathCmd, "-C", project)
	require.NoError(t, err)
	require.Equal(t, "/home/dev/fluttersdk\n", out)

	out, err = run(t, PathCmd, "-C", project, "--explain")
	require.NoError(t, err)
	require.Equal(t, "/home/dev/fluttersdk\tproperties\n", out)
}

func TestPathFromEnvAndHome(t *testing.T) {
	setup(t)

	t.Setenv("FLUTTER_SDK", "/opt/sdk")
	out, err := run(t, PathCmd, "--project", project)
	require.NoError(t, err)
	require.Equal(t, "/opt/sdk\n", out)

	t.Setenv("FLUTTER_SDK", "")
	out, err = run(t, PathCmd, "--project", project, "--home", "/home/ci", "--explain")
	require.NoError(t, err)
	require.Equal(t, "/home/ci/flutter\thome\n", out)
}

func TestPathMissingKeyFails(t *testing.T) {
	mem := setup(t)
	t.Setenv("FLUTTER_SDK", "/opt/sdk")
	require.NoError(t, afero.WriteFile(mem, filepath.Join(project, "local.properties"), []byte("sdk.dir=/android\n"), 0o644))

	_, err := run(t, PathCmd, "-C", project)
	require.ErrorIs(t, err, sdkpath.ErrMissingRequiredConfigKey)
	require.Contains(t, err.Error(), "flutter.sdk not set in")
}

func TestLoader(t *testing.T) {
	mem := setup(t)
	t.Setenv("FLUTTER_SDK", "/opt/flutter")
	loader := filepath.Join("/opt/flutter", "packages", "flutter_tools", "gradle")

	out, err := run(t, LoaderCmd, "-C", project)
	require.NoError(t, err)
	require.Equal(t, loader+"\n", out)

	_, err = run(t, LoaderCmd, "-C", project, "--check")
	require.ErrorIs(t, err, sdkpath.ErrPluginLoaderMissing)

	require.NoError(t, mem.MkdirAll(loader, 0o755))
	out, err = run(t, LoaderCmd, "-C", project, "--check")
	require.NoError(t, err)
	require.Equal(t, loader+"\n", out)
}

func TestSettings(t *testing.T) {
	setup(t)
	t.Setenv("FLUTTER_SDK", "/opt/flutter")

	out, err := run(t, SettingsCmd, "-C", project)
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(out, "plugin_management:\n"))
	require.Contains(t, out, "include_build: "+filepath.Join("/opt/flutter", "packages", "flutter_tools", "gradle"))
	require.Contains(t, out, "dev.flutter.flutter-plugin-loader")
	require.Contains(t, out, ":app")
}

func TestRunExportsSDK(t *testing.T) {
	setup(t)
	fs = afero.NewOsFs()
	sh, err := exec.LookPath("sh")
	if err != nil {
		t.Skip("sh not available")
	}
	t.Setenv("FLUTTER_SDK", "/opt/flutter")

	out, err := run(t, RunCmd, "-C", t.TempDir(), "--", sh, "-c", "echo $FLUTTER_ROOT")
	require.NoError(t, err)
	require.Equal(t, "/opt/flutter\n", out)
}
