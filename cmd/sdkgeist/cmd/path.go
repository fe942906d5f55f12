package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var explain bool

// PathCmd prints the resolved Flutter SDK path.
var PathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the resolved Flutter SDK path",
	Long: `Resolves the Flutter SDK path in this order:
  1. flutter.sdk from <project>/local.properties (must be set if the file exists)
  2. $FLUTTER_SDK
  3. $HOME/flutter`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		sdk, _, err := resolveSDK()
		if err != nil {
			return err
		}
		if explain {
			fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", sdk.Value, sdk.Source)
			return nil
		}
		fmt.Fprintln(cmd.OutOrStdout(), sdk.Value)
		return nil
	},
}

func init() {
	addProjectFlags(PathCmd)
	PathCmd.Flags().BoolVar(&explain, "explain", false, "Also print which source the path came from")
}
