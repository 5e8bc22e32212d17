package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/YahelOmesi/Variable-Elimination/internal/batch"
	"github.com/YahelOmesi/Variable-Elimination/internal/config"
	"github.com/YahelOmesi/Variable-Elimination/internal/inference"
	"github.com/YahelOmesi/Variable-Elimination/internal/netfile"
)

func newCompareCmd(a *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "compare [input]",
		Short: "Answer every conditional query of an input file with all three algorithms",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input := defaultInput
			if len(args) == 1 {
				input = args[0]
			}

			networkPath, lines, err := batch.ReadInput(input)
			if err != nil {
				return err
			}
			net, err := netfile.Load(batch.ResolveNetworkPath(input, networkPath))
			if err != nil {
				return err
			}

			runner := batch.NewRunner(inference.NewEngine(a.logger), a.logger, config.BatchWorkers())
			cmp, err := runner.Compare(cmd.Context(), net, lines)
			if err != nil {
				return err
			}

			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(cmp)
			}
			return writeComparison(cmd.OutOrStdout(), cmp)
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print the report as JSON")
	return cmd
}

func writeComparison(w io.Writer, cmp *batch.Comparison) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	fmt.Fprintln(tw, "QUERY\tENUMERATION\tELIMINATION\tHEURISTIC\tAGREE")
	for _, q := range cmp.Queries {
		fmt.Fprintf(tw, "%s", q.Query)
		for _, r := range q.Runs {
			fmt.Fprintf(tw, "\t%s", r.Line)
		}
		fmt.Fprintf(tw, "\t%t\n", q.Agree)
	}

	fmt.Fprintln(tw)
	fmt.Fprintln(tw, "ALGORITHM\tQUERIES\tMEAN ADD\tMEDIAN ADD\tMAX ADD\tMEAN MUL\tMEDIAN MUL\tMAX MUL")
	for _, s := range cmp.Summaries {
		fmt.Fprintf(tw, "%s\t%d\t%.2f\t%.2f\t%.0f\t%.2f\t%.2f\t%.0f\n",
			s.Method, s.Queries,
			s.MeanAdditions, s.MedianAdditions, s.MaxAdditions,
			s.MeanMultiplications, s.MedianMultiplications, s.MaxMultiplications)
	}

	if cmp.Skipped > 0 || cmp.Failed > 0 {
		fmt.Fprintf(tw, "\nskipped %d joint queries, %d queries failed\n", cmp.Skipped, cmp.Failed)
	}
	return tw.Flush()
}
