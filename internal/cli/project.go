package cli

import (
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(projectCmd)
}

var projectCmd = &cobra.Command{
	Use:   "project <name>",
	Short: "Create a new project",
	Long: `Create a project directory under the base directory with shared_data
(a git repository), bin and src subdirectories and a .project marker.

If the project already exists nothing is changed.

Example:
  tsukuru project Alpha`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		b, err := newBuilder(cmd.OutOrStdout())
		if err != nil {
			return err
		}
		_, err = b.CreateProject(cmd.Context(), args[0])
		return err
	},
}
