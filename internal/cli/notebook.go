package cli

import (
	"github.com/spf13/cobra"
	"github.com/tsukuru-labs/tsukuru/internal/branding"
)

var (
	notebookProject string
	notebookTask    string
	notebookBase    string
)

func init() {
	notebookCmd.Flags().StringVarP(&notebookProject, "project", "p", "", "Which project to create the notebook in (required)")
	notebookCmd.Flags().StringVarP(&notebookTask, "task", "t", "", "Which task to create the notebook in (required)")
	notebookCmd.Flags().StringVar(&notebookBase, "base", branding.NotebookBaseURL(), "Notebook server tree URL")
	_ = notebookCmd.MarkFlagRequired("project")
	_ = notebookCmd.MarkFlagRequired("task")
	rootCmd.AddCommand(notebookCmd)
}

var notebookCmd = &cobra.Command{
	Use:   "notebook <name>",
	Short: "Create a new Jupyter notebook in a task",
	Long: `Write <name>.ipynb into an existing task and open it in the browser at
<base>/<project>/<task>/<name>.ipynb. An existing notebook with the same
name is overwritten.

Example:
  tsukuru notebook --project Alpha --task T1 nb1`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		b, err := newBuilder(cmd.OutOrStdout())
		if err != nil {
			return err
		}
		_, err = b.CreateNotebook(cmd.Context(), notebookProject, notebookTask, args[0], notebookBase)
		return err
	},
}
