package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/mfulz/sdkgeist/internal/configloader"
	"github.com/mfulz/sdkgeist/internal/logging"
	"github.com/stretchr/testify/require"
)

func isolate(t *testing.T) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	t.Setenv(configloader.EnvConfig, "")

	prevLog := configloader.MustGetConfig[*logging.Config]()
	t.Cleanup(func() {
		configloader.UnregisterConfig[*Config]()
		configloader.RegisterConfig(prevLog)
	})
}

func TestLoadConfigDefaults(t *testing.T) {
	isolate(t)
	if _, err := os.Stat("/etc/sdkgeist/" + FileName); err == nil {
		t.Skip("system config present")
	}

	cfg, err := LoadConfig()
	require.NoError(t, err)
	require.Empty(t, cfg.Path)
	require.Equal(t, SDKConfig{
		PropertiesFile: "local.properties",
		PropertyKey:    "flutter.sdk",
		EnvVar:         "FLUTTER_SDK",
		HomeSuffix:     "/flutter",
		LoaderSubpath:  "packages/flutter_tools/gradle",
	}, cfg.SDK)
	require.Equal(t, "info", cfg.Logger.Level)
	require.True(t, cfg.Logger.ToStderr)

	require.Same(t, cfg, configloader.MustGetConfig[*Config]())
	require.Same(t, &cfg.Logger, configloader.MustGetConfig[*logging.Config]())
}

func TestLoadConfigFromFileAndEnv(t *testing.T) {
	isolate(t)

	path := filepath.Join(t.TempDir(), "custom.yaml")
	contents := `
sdk:
  property_key: sdk.flutter
  home_suffix: /sdks/flutter
log:
  level: debug
  to_file: true
  file: /tmp/sdkgeist.log
`
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o600))
	t.Setenv(configloader.EnvConfig, path)
	t.Setenv("SDKGEIST_SDK_ENV_VAR", "MY_FLUTTER")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	require.Equal(t, path, cfg.Path)
	require.Equal(t, "sdk.flutter", cfg.SDK.PropertyKey)
	require.Equal(t, "/sdks/flutter", cfg.SDK.HomeSuffix)
	require.Equal(t, "MY_FLUTTER", cfg.SDK.EnvVar)
	require.Equal(t, "local.properties", cfg.SDK.PropertiesFile)
	require.Equal(t, "debug", cfg.Logger.Level)
	require.True(t, cfg.Logger.ToFile)
	require.Equal(t, "/tmp/sdkgeist.log", cfg.Logger.FilePath)
	require.Equal(t, 10, cfg.Logger.MaxSizeMB)
}

func TestLoadConfigMissingExplicitFile(t *testing.T) {
	isolate(t)
	t.Setenv(configloader.EnvConfig, filepath.Join(t.TempDir(), "missing.yaml"))

	_, err := LoadConfig()
	require.Error(t, err)
	require.Contains(t, err.Error(), "missing.yaml")
}

func TestLoadConfigRejectsEmptyKey(t *testing.T) {
	isolate(t)

	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("sdk:\n  property_key: \"\"\n"), 0o600))
	t.Setenv(configloader.EnvConfig, path)

	_, err := LoadConfig()
	require.Error(t, err)
	require.Contains(t, err.Error(), "sdk.property_key")
}
