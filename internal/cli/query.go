package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/YahelOmesi/Variable-Elimination/internal/domain"
	"github.com/YahelOmesi/Variable-Elimination/internal/inference"
	"github.com/YahelOmesi/Variable-Elimination/internal/netfile"
	"github.com/YahelOmesi/Variable-Elimination/internal/query"
)

type queryOutput struct {
	Query           string  `json:"query"`
	Line            string  `json:"line"`
	Probability     float64 `json:"probability"`
	Additions       int     `json:"additions"`
	Multiplications int     `json:"multiplications"`
	Error           string  `json:"error,omitempty"`
}

func newQueryCmd(a *app) *cobra.Command {
	var (
		networkPath string
		asJSON      bool
	)

	cmd := &cobra.Command{
		Use:   `query --network file "P(...)"`,
		Short: "Answer a single query",
		Example: `  bayes query --network alarm_net.xml "P(B=T|J=T,M=T),2"
  bayes query --network alarm_net.xml --json "P(B=T,E=F,A=T,J=T,M=F)"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			net, err := netfile.Load(networkPath)
			if err != nil {
				return err
			}

			line := args[0]
			out := queryOutput{Query: line, Line: domain.FailureLine}

			res, qerr := answer(inference.NewEngine(a.logger), net, line)
			if qerr == nil {
				out.Line = res.Line()
				out.Probability = res.Probability
				out.Additions = res.Additions
				out.Multiplications = res.Multiplications
			} else {
				out.Error = qerr.Error()
			}

			w := cmd.OutOrStdout()
			if asJSON {
				enc := json.NewEncoder(w)
				enc.SetIndent("", "  ")
				if err := enc.Encode(out); err != nil {
					return err
				}
			} else {
				fmt.Fprintln(w, out.Line)
			}
			return qerr
		},
	}

	cmd.Flags().StringVarP(&networkPath, "network", "n", "", "network file (.xml, .yaml or .yml)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the result as JSON")
	_ = cmd.MarkFlagRequired("network")
	return cmd
}

func answer(engine *inference.Engine, net *domain.Network, line string) (domain.Result, error) {
	q, err := query.Parse(line)
	if err != nil {
		return domain.Result{}, err
	}
	if err := query.Validate(q, net); err != nil {
		return domain.Result{}, err
	}
	return engine.Answer(net, q)
}
