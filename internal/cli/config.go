package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/tsukuru-labs/tsukuru/internal/config"
)

var configBaseDir string

func init() {
	configCmd.Flags().StringVar(&configBaseDir, config.KeyBaseDir, "", "Project base directory (required)")
	_ = configCmd.MarkFlagRequired(config.KeyBaseDir)
	rootCmd.AddCommand(configCmd)
}

// configCmd does not persist anything yet; it echoes the requested setting.
// Set $PROJ_BASEDIR to choose the base directory.
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show the requested project base directory setting",
	Long: `Echo the requested project base directory. The value is not saved;
export ` + config.BaseDirEnv + ` to configure where projects are created.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", config.KeyBaseDir, configBaseDir)
		return nil
	},
}
