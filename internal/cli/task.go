package cli

import (
	"github.com/spf13/cobra"
)

var taskProject string

func init() {
	taskCmd.Flags().StringVarP(&taskProject, "project", "p", "", "Which project to create the task in (required)")
	_ = taskCmd.MarkFlagRequired("project")
	rootCmd.AddCommand(taskCmd)
}

var taskCmd = &cobra.Command{
	Use:   "task <name>",
	Short: "Create a new task in a project",
	Long: `Create a task directory inside an existing project with a data
subdirectory (a git repository), an empty README.md and a .task marker.

If the task already exists nothing is changed.

Example:
  tsukuru task --project Alpha T1`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		b, err := newBuilder(cmd.OutOrStdout())
		if err != nil {
			return err
		}
		_, err = b.CreateTask(cmd.Context(), taskProject, args[0])
		return err
	},
}
