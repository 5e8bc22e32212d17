package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/YahelOmesi/Variable-Elimination/internal/netfile"
)

func newCheckCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "check network-file",
		Short: "Validate a network file and report CPT rows that do not sum to 1",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			net, err := netfile.Load(args[0])
			if err != nil {
				return err
			}
			order, err := netfile.TopologicalOrder(net)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "%s: %d variables\n", args[0], net.Len())
			fmt.Fprintf(w, "order: %s\n", strings.Join(order, " "))

			warnings := netfile.Lint(net)
			for _, warn := range warnings {
				fmt.Fprintf(w, "warning: %s\n", warn)
			}
			if len(warnings) > 0 {
				a.logger.Warn("network has unnormalized rows", zap.Int("rows", len(warnings)))
			}
			return nil
		},
	}
}
