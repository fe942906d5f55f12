// Command sdkgeist locates the Flutter SDK for an Android project the same
// way the project's settings script does, and reports the plugin loader
// build and settings that would be included from it.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/mfulz/sdkgeist/cmd/sdkgeist/cmd"
	"github.com/mfulz/sdkgeist/internal/config"
	"github.com/mfulz/sdkgeist/internal/launch"
	"github.com/mfulz/sdkgeist/internal/logging"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:           "sdkgeist",
	Short:         "Locate the Flutter SDK used by an Android build",
	Long:          `sdkgeist resolves the Flutter SDK path from local.properties, $FLUTTER_SDK or ~/flutter, in that order.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		logging.Log.Errorf("[sdkgeist] Failed to load config: %v", err)
		os.Exit(1)
	}

	if err := logging.Init(); err != nil {
		logging.Log.Errorf("[sdkgeist] Failed to init logger: %v", err)
		os.Exit(1)
	}
	logging.Log = logging.Log.With("invocation", uuid.NewString())
	logging.Log.Debugf("[sdkgeist] Config: path=%q sdk=%+v", cfg.Path, cfg.SDK)

	if err := rootCmd.Execute(); err != nil {
		logging.Log.Debugf("[sdkgeist] command failed: %v", err)
		var exitErr *launch.ExitError
		if errors.As(err, &exitErr) {
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(cmd.PathCmd)
	rootCmd.AddCommand(cmd.LoaderCmd)
	rootCmd.AddCommand(cmd.SettingsCmd)
	rootCmd.AddCommand(cmd.RunCmd)
}
