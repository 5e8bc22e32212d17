// Package cli implements the bayes command line.
package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/YahelOmesi/Variable-Elimination/internal/config"
	"github.com/YahelOmesi/Variable-Elimination/internal/logging"
)

// app is the state shared by every subcommand once the root has run.
type app struct {
	logLevel string
	logger   *zap.Logger
}

// NewRootCmd builds the bayes command tree.
func NewRootCmd() *cobra.Command {
	a := &app{logger: zap.NewNop()}

	root := &cobra.Command{
		Use:   "bayes",
		Short: "Exact inference over discrete Bayesian networks",
		Long: `bayes answers conditional and joint probability queries over discrete
Bayesian networks by enumeration or variable elimination, and reports the
number of additions and multiplications each answer took.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := config.Load(); err != nil {
				return err
			}
			level := a.logLevel
			if level == "" {
				level = config.LogLevel()
			}
			logger, err := logging.NewConsole(level)
			if err != nil {
				return fmt.Errorf("build logger: %w", err)
			}
			a.logger = logger
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = a.logger.Sync()
		},
	}

	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "log level (debug, info, warn, error); defaults to LOG_LEVEL")

	root.AddCommand(
		newRunCmd(a),
		newQueryCmd(a),
		newCompareCmd(a),
		newCheckCmd(a),
		newVersionCmd(),
	)
	return root
}

// Execute runs the root command until it finishes or the process is
// interrupted.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return NewRootCmd().ExecuteContext(ctx)
}
