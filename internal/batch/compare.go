package batch

import (
	"context"
	"fmt"

	"github.com/montanaflynn/stats"
	"go.uber.org/zap"
	"gonum.org/v1/gonum/floats/scalar"

	"github.com/YahelOmesi/Variable-Elimination/internal/domain"
	"github.com/YahelOmesi/Variable-Elimination/internal/query"
)

// AgreementTolerance is the largest probability difference still counted
// as agreement between algorithms.
const AgreementTolerance = 1e-9

var comparedAlgorithms = []domain.Algorithm{
	domain.AlgorithmEnumeration,
	domain.AlgorithmEliminationAlphabetical,
	domain.AlgorithmEliminationHeuristic,
}

type AlgorithmRun struct {
	Algorithm       domain.Algorithm `json:"algorithm"`
	Method          string           `json:"method"`
	Line            string           `json:"line"`
	Probability     float64          `json:"probability"`
	Additions       int              `json:"additions"`
	Multiplications int              `json:"multiplications"`
	Error           string           `json:"error,omitempty"`
}

type QueryComparison struct {
	Query string         `json:"query"`
	Runs  []AlgorithmRun `json:"runs"`
	Agree bool           `json:"agree"`
}

// Summary aggregates the operation counts of one algorithm over every
// query it answered.
type Summary struct {
	Algorithm             domain.Algorithm `json:"algorithm"`
	Method                string           `json:"method"`
	Queries               int              `json:"queries"`
	MeanAdditions         float64          `json:"mean_additions"`
	MedianAdditions       float64          `json:"median_additions"`
	MaxAdditions          float64          `json:"max_additions"`
	MeanMultiplications   float64          `json:"mean_multiplications"`
	MedianMultiplications float64          `json:"median_multiplications"`
	MaxMultiplications    float64          `json:"max_multiplications"`
}

type Comparison struct {
	Queries   []QueryComparison `json:"queries"`
	Summaries []Summary         `json:"summaries"`
	Skipped   int               `json:"skipped"`
	Failed    int               `json:"failed"`
}

// Compare answers every conditional query with each algorithm. Joint
// queries are skipped; lines that fail to parse or validate count as
// failed.
func (r *Runner) Compare(ctx context.Context, net *domain.Network, lines []string) (*Comparison, error) {
	cmp := &Comparison{}

	var queries []domain.Query
	for _, line := range lines {
		q, err := query.Parse(line)
		if err == nil {
			err = query.Validate(q, net)
		}
		if err != nil {
			cmp.Failed++
			r.logger.Warn("skipping query in comparison", zap.String("query", line), zap.Error(err))
			continue
		}
		if !q.Conditional {
			cmp.Skipped++
			continue
		}
		queries = append(queries, q)
	}

	n := len(comparedAlgorithms)
	runs := make([]AlgorithmRun, len(queries)*n)
	errs := r.forEach(ctx, len(runs), func(i int) error {
		q := queries[i/n].WithAlgorithm(comparedAlgorithms[i%n])
		runs[i] = AlgorithmRun{Algorithm: q.Algorithm, Method: q.Algorithm.String()}
		res, err := r.engine.Answer(net, q)
		if err != nil {
			return err
		}
		runs[i].Probability = res.Probability
		runs[i].Additions = res.Additions
		runs[i].Multiplications = res.Multiplications
		runs[i].Line = res.Line()
		return nil
	})
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("compare: %w", err)
	}
	for i, err := range errs {
		if err != nil {
			a := comparedAlgorithms[i%n]
			runs[i] = AlgorithmRun{Algorithm: a, Method: a.String(), Line: domain.FailureLine, Error: err.Error()}
		}
	}

	for qi, q := range queries {
		qc := QueryComparison{Query: q.Raw, Runs: runs[qi*n : (qi+1)*n]}
		qc.Agree = agree(qc.Runs)
		cmp.Queries = append(cmp.Queries, qc)
	}

	summaries, err := summarize(runs, n)
	if err != nil {
		return nil, err
	}
	cmp.Summaries = summaries
	return cmp, nil
}

func agree(runs []AlgorithmRun) bool {
	for _, run := range runs {
		if run.Error != "" {
			return false
		}
		if !scalar.EqualWithinAbs(run.Probability, runs[0].Probability, AgreementTolerance) {
			return false
		}
	}
	return true
}

func summarize(runs []AlgorithmRun, n int) ([]Summary, error) {
	summaries := make([]Summary, 0, n)
	for ai, a := range comparedAlgorithms {
		s := Summary{Algorithm: a, Method: a.String()}

		var adds, muls stats.Float64Data
		for i := ai; i < len(runs); i += n {
			if runs[i].Error != "" {
				continue
			}
			adds = append(adds, float64(runs[i].Additions))
			muls = append(muls, float64(runs[i].Multiplications))
		}
		s.Queries = len(adds)
		if s.Queries == 0 {
			summaries = append(summaries, s)
			continue
		}

		var err error
		if s.MeanAdditions, err = stats.Mean(adds); err != nil {
			return nil, err
		}
		if s.MedianAdditions, err = stats.Median(adds); err != nil {
			return nil, err
		}
		if s.MaxAdditions, err = stats.Max(adds); err != nil {
			return nil, err
		}
		if s.MeanMultiplications, err = stats.Mean(muls); err != nil {
			return nil, err
		}
		if s.MedianMultiplications, err = stats.Median(muls); err != nil {
			return nil, err
		}
		if s.MaxMultiplications, err = stats.Max(muls); err != nil {
			return nil, err
		}
		summaries = append(summaries, s)
	}
	return summaries, nil
}
