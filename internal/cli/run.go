package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/YahelOmesi/Variable-Elimination/internal/batch"
	"github.com/YahelOmesi/Variable-Elimination/internal/config"
	"github.com/YahelOmesi/Variable-Elimination/internal/inference"
)

const (
	defaultInput  = "input.txt"
	defaultOutput = "output.txt"
)

func newRunCmd(a *app) *cobra.Command {
	var (
		output  string
		workers int
	)

	cmd := &cobra.Command{
		Use:   "run [input]",
		Short: "Answer every query of an input file and write one line per query",
		Long: `run reads an input file whose first line names a network file and whose
remaining lines are queries. Each query produces "probability,additions,multiplications"
in the output file, or "error" when it cannot be answered.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input := defaultInput
			if len(args) == 1 {
				input = args[0]
			}
			if workers <= 0 {
				workers = config.BatchWorkers()
			}

			f, err := os.Create(output)
			if err != nil {
				return fmt.Errorf("create output: %w", err)
			}

			runner := batch.NewRunner(inference.NewEngine(a.logger), a.logger, workers)
			runErr := runner.Run(cmd.Context(), input, f)
			if err := f.Close(); err != nil && runErr == nil {
				runErr = fmt.Errorf("close output: %w", err)
			}
			if runErr != nil {
				return runErr
			}

			a.logger.Info("batch written", zap.String("input", input), zap.String("output", output))
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", defaultOutput, "output file")
	cmd.Flags().IntVar(&workers, "workers", 0, "parallel query workers; defaults to BATCH_WORKERS")
	return cmd
}
