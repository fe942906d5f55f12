// Package cmd provides the subcommands of the sdkgeist binary.
package cmd

import (
	"fmt"

	"github.com/mfulz/sdkgeist/internal/config"
	"github.com/mfulz/sdkgeist/internal/configloader"
	"github.com/mfulz/sdkgeist/internal/logging"
	"github.com/mfulz/sdkgeist/internal/sdkpath"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

var (
	projectDir string
	homeDir    string

	fs afero.Fs = afero.NewOsFs()
)

// addProjectFlags registers the flags every subcommand shares.
func addProjectFlags(c *cobra.Command) {
	c.PersistentFlags().StringVarP(&projectDir, "project", "C", ".", "Android project directory containing local.properties")
	c.PersistentFlags().StringVar(&homeDir, "home", "", "Override the home directory used for the last-resort fallback")
}

func newResolver(cfg *config.Config) *sdkpath.Resolver {
	r := &sdkpath.Resolver{
		Fs:             fs,
		ProjectDir:     projectDir,
		PropertiesFile: cfg.SDK.PropertiesFile,
		PropertyKey:    cfg.SDK.PropertyKey,
		EnvVar:         cfg.SDK.EnvVar,
		HomeSuffix:     cfg.SDK.HomeSuffix,
	}
	if homeDir != "" {
		home := homeDir
		r.HomeDir = func() (string, error) { return home, nil }
	}
	return r
}

// resolveSDK runs the resolver with the registered config.
func resolveSDK() (sdkpath.ResolvedPath, *config.Config, error) {
	cfg := configloader.MustGetConfig[*config.Config]()
	r := newResolver(cfg)

	sdk, err := r.Resolve()
	if err != nil {
		return sdkpath.ResolvedPath{}, nil, fmt.Errorf("failed to resolve flutter sdk: %w", err)
	}
	logging.Log.Debugw("[sdkgeist] resolved sdk path",
		"path", sdk.Value, "source", sdk.Source, "properties", r.PropertiesPath())
	return sdk, cfg, nil
}
