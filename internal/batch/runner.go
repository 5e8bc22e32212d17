// Package batch evaluates files of query lines against one network, the
// way the command line and the batch endpoint do.
package batch

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/YahelOmesi/Variable-Elimination/internal/domain"
	"github.com/YahelOmesi/Variable-Elimination/internal/inference"
	"github.com/YahelOmesi/Variable-Elimination/internal/netfile"
	"github.com/YahelOmesi/Variable-Elimination/internal/query"
)

// Outcome is the evaluation of one query line.
type Outcome struct {
	Line   string        `json:"line"`
	Query  domain.Query  `json:"query"`
	Result domain.Result `json:"result"`
	Err    error         `json:"-"`
}

// Output is the line written for this query: the result, or the failure
// line when evaluation failed.
func (o Outcome) Output() string {
	if o.Err != nil {
		return domain.FailureLine
	}
	return o.Result.Line()
}

type Runner struct {
	engine  *inference.Engine
	logger  *zap.Logger
	workers int
}

func NewRunner(engine *inference.Engine, logger *zap.Logger, workers int) *Runner {
	if workers <= 0 {
		workers = 1
	}
	return &Runner{engine: engine, logger: logger, workers: workers}
}

// Evaluate parses, validates and answers every line. Outcome i always
// belongs to lines[i]; a failing line never affects the others.
func (r *Runner) Evaluate(ctx context.Context, net *domain.Network, lines []string) []Outcome {
	out := make([]Outcome, len(lines))
	errs := r.forEach(ctx, len(lines), func(i int) error {
		out[i].Line = lines[i]
		q, err := query.Parse(lines[i])
		if err != nil {
			return err
		}
		out[i].Query = q
		if err := query.Validate(q, net); err != nil {
			return err
		}
		res, err := r.engine.Answer(net, q)
		if err != nil {
			return err
		}
		out[i].Result = res
		return nil
	})

	for i, err := range errs {
		if err == nil {
			continue
		}
		out[i].Line = lines[i]
		out[i].Err = err
		r.logger.Warn("query failed",
			zap.Int("index", i),
			zap.String("query", lines[i]),
			zap.Error(err),
		)
	}
	return out
}

// Run reads an input file whose first line names the network and whose
// remaining lines are queries, and writes one output line per query to w.
func (r *Runner) Run(ctx context.Context, inputPath string, w io.Writer) error {
	networkPath, lines, err := ReadInput(inputPath)
	if err != nil {
		return err
	}

	net, err := netfile.Load(ResolveNetworkPath(inputPath, networkPath))
	if err != nil {
		return err
	}

	r.logger.Info("evaluating batch",
		zap.String("input", inputPath),
		zap.String("network", networkPath),
		zap.Int("queries", len(lines)),
		zap.Int("workers", r.workers),
	)

	return WriteOutcomes(w, r.Evaluate(ctx, net, lines))
}

func WriteOutcomes(w io.Writer, outcomes []Outcome) error {
	bw := bufio.NewWriter(w)
	for _, o := range outcomes {
		if _, err := fmt.Fprintln(bw, o.Output()); err != nil {
			return fmt.Errorf("write output: %w", err)
		}
	}
	return bw.Flush()
}

// ReadInput returns the network path and the query lines of an input file.
// Blank lines are skipped and every line is trimmed.
func ReadInput(path string) (string, []string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", nil, fmt.Errorf("read input: %w", err)
	}
	defer f.Close()

	lines, err := ReadLines(f)
	if err != nil {
		return "", nil, fmt.Errorf("read input %s: %w", path, err)
	}
	if len(lines) == 0 {
		return "", nil, fmt.Errorf("read input %s: no network path", path)
	}
	return lines[0], lines[1:], nil
}

func ReadLines(r io.Reader) ([]string, error) {
	var lines []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines, sc.Err()
}

// ResolveNetworkPath looks for a relative network path next to the input
// file first, then relative to the working directory.
func ResolveNetworkPath(inputPath, networkPath string) string {
	if filepath.IsAbs(networkPath) {
		return networkPath
	}
	candidate := filepath.Join(filepath.Dir(inputPath), networkPath)
	if _, err := os.Stat(candidate); err == nil {
		return candidate
	}
	return networkPath
}

// forEach runs fn for 0..n-1 on at most r.workers goroutines and returns
// each call's error by index. Panics become errors.
func (r *Runner) forEach(ctx context.Context, n int, fn func(i int) error) []error {
	errs := make([]error, n)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.workers)
	for i := 0; i < n; i++ {
		i := i
		g.Go(func() error {
			errs[i] = safely(gctx, func() error { return fn(i) })
			return nil
		})
	}
	_ = g.Wait()
	return errs
}

func safely(ctx context.Context, fn func() error) (err error) {
	if err := ctx.Err(); err != nil {
		return err
	}
	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("panic: %v", p)
		}
	}()
	return fn()
}
