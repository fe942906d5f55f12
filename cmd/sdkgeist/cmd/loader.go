package cmd

import (
	"fmt"

	"github.com/mfulz/sdkgeist/internal/logging"
	"github.com/mfulz/sdkgeist/internal/sdkpath"
	"github.com/spf13/cobra"
)

var check bool

// LoaderCmd prints the plugin loader build included from the SDK.
var LoaderCmd = &cobra.Command{
	Use:   "loader",
	Short: "Print the Gradle plugin loader path inside the Flutter SDK",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		sdk, cfg, err := resolveSDK()
		if err != nil {
			return err
		}

		loader := sdkpath.PluginLoaderPath(sdk, cfg.SDK.LoaderSubpath)
		if check {
			if err := sdkpath.CheckPluginLoader(fs, loader); err != nil {
				return fmt.Errorf("sdk from %s: %w", sdk.Source, err)
			}
			logging.Log.Debugf("[sdkgeist] plugin loader present at %s", loader)
		}
		fmt.Fprintln(cmd.OutOrStdout(), loader)
		return nil
	},
}

func init() {
	addProjectFlags(LoaderCmd)
	LoaderCmd.Flags().BoolVar(&check, "check", false, "Fail if the plugin loader directory does not exist")
}
