package cmd

import (
	"github.com/mfulz/sdkgeist/internal/sdkpath"
	"github.com/mfulz/sdkgeist/internal/settings"
	"github.com/spf13/cobra"
)

// SettingsCmd prints the settings declared for the project as YAML.
var SettingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Show plugin management, plugins and included projects",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		sdk, cfg, err := resolveSDK()
		if err != nil {
			return err
		}
		manifest := settings.Default(sdkpath.PluginLoaderPath(sdk, cfg.SDK.LoaderSubpath))
		return manifest.Encode(cmd.OutOrStdout())
	},
}

func init() {
	addProjectFlags(SettingsCmd)
}
