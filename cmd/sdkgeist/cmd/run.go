package cmd

import (
	"github.com/mfulz/sdkgeist/internal/launch"
	"github.com/mfulz/sdkgeist/internal/logging"
	"github.com/mfulz/sdkgeist/internal/sdkpath"
	"github.com/spf13/cobra"
)

// RunCmd launches a build command with the resolved SDK exported.
var RunCmd = &cobra.Command{
	Use:   "run -- <command> [args...]",
	Short: "Run a command with FLUTTER_SDK set to the resolved SDK",
	Long: `Resolves the Flutter SDK and runs the given command inside the project
directory with FLUTTER_SDK and FLUTTER_ROOT exported.

Examples:
  sdkgeist run -C android -- ./gradlew assembleDebug`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		sdk, cfg, err := resolveSDK()
		if err != nil {
			return err
		}
		env := map[string]string{
			cfg.SDK.EnvVar: sdk.Value,
			"FLUTTER_ROOT": sdk.Value,
		}
		if cfg.SDK.EnvVar != sdkpath.DefaultEnvVar {
			env[sdkpath.DefaultEnvVar] = sdk.Value
		}
		logging.Log.Infof("[sdkgeist] running %v with sdk %s (%s)", args, sdk.Value, sdk.Source)
		return launch.Run(cmd.Context(), launch.Config{
			Command: args,
			Dir:     projectDir,
			Env:     env,
			Stdin:   cmd.InOrStdin(),
			Stdout:  cmd.OutOrStdout(),
			Stderr:  cmd.ErrOrStderr(),
		})
	},
}

func init() {
	addProjectFlags(RunCmd)
	RunCmd.Flags().SetInterspersed(false)
}
