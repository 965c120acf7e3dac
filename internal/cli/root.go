package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/tsukuru-labs/tsukuru/internal/branding"
	"github.com/tsukuru-labs/tsukuru/internal/config"
	"github.com/tsukuru-labs/tsukuru/internal/scaffold"
)

var rootCmd = &cobra.Command{
	Use:   branding.CLIName(),
	Short: branding.Description(),
	Long: branding.DisplayName() + ` creates projects, tasks within a project, and Jupyter notebooks
within a task under the directory named by $` + config.BaseDirEnv + `.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	CompletionOptions: cobra.CompletionOptions{
		DisableDefaultCmd: true,
	},
}

// newBuilder returns the scaffold builder used by the project, task and
// notebook commands. The base directory is resolved here, once, so every
// command fails early when it is not configured. Tests replace it.
var newBuilder = func(out io.Writer) (*scaffold.Builder, error) {
	cfg := config.Load(config.NewViper())
	if _, err := cfg.BaseDir(); err != nil {
		return nil, err
	}
	return scaffold.New(cfg, out), nil
}

// Execute runs the root command with build info injected via ldflags. Any
// error is printed to stderr before being returned; the caller exits non-zero.
func Execute(version, commit, date string) error {
	rootCmd.Version = fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date)
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintf(rootCmd.ErrOrStderr(), "Error: %v\n", err)
		return err
	}
	return nil
}
