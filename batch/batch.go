// Package batch validates many IBANs with bounded concurrency.
package batch

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/vortex-fintech/go-iban/iban"
	"github.com/vortex-fintech/go-iban/logger"
	"github.com/vortex-fintech/go-iban/logutil"
	"github.com/vortex-fintech/go-iban/metrics"
	"github.com/vortex-fintech/go-iban/timeutil"
)

const DefaultConcurrency = 8

// Result is the outcome for one input, at the input's position.
type Result struct {
	Input string
	Iban  iban.Iban
	Err   error
}

func (r Result) Valid() bool { return r.Err == nil }

// Options configure a Validator. Zero values fall back to defaults: no
// logging, no metrics, DefaultConcurrency workers and the system clock.
type Options struct {
	Concurrency int
	Logger      logger.LoggerInterface
	Metrics     *metrics.Recorder
	Clock       timeutil.Clock

	// Env decides whether inputs are masked in log fields.
	Env string
}

type Validator struct {
	limit int
	log   logger.LoggerInterface
	rec   *metrics.Recorder
	env   string
	clock timeutil.Clock
}

func New(opts Options) *Validator {
	if opts.Concurrency <= 0 {
		opts.Concurrency = DefaultConcurrency
	}
	if opts.Logger == nil {
		opts.Logger = logger.NewNop()
	}
	if opts.Clock == nil {
		opts.Clock = timeutil.Default
	}
	return &Validator{
		limit: opts.Concurrency,
		log:   opts.Logger,
		rec:   opts.Metrics,
		env:   opts.Env,
		clock: opts.Clock,
	}
}

// Run validates every input and returns results in input order. Invalid
// inputs are reported in Result.Err, not as the returned error; that is
// reserved for ctx being done before all inputs were processed, in which
// case no results are returned.
func (v *Validator) Run(ctx context.Context, inputs []string) ([]Result, error) {
	start := v.clock.Now()
	results := make([]Result, len(inputs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(v.limit)

	for i, in := range inputs {
		i, in := i, in
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			results[i] = v.validate(in)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	elapsed := v.clock.Since(start)
	v.rec.ObserveBatch(len(inputs), elapsed)

	s := Summarize(results)
	v.log.Infow("batch validated",
		"total", s.Total,
		"valid", s.Valid,
		"invalid", s.Invalid,
		"duration", elapsed,
	)
	return results, nil
}

func (v *Validator) validate(in string) Result {
	out, err := iban.Parse(in)
	v.rec.Observe(out.CountryCode(), err)
	if err != nil {
		v.log.Debugw("iban rejected",
			"input", logutil.IBAN(v.env, in),
			"reason", metrics.Result(err),
		)
	}
	return Result{Input: in, Iban: out, Err: err}
}

// Summary aggregates a run. ByResult is keyed by metrics result labels.
type Summary struct {
	Total    int
	Valid    int
	Invalid  int
	ByResult map[string]int
}

func Summarize(results []Result) Summary {
	s := Summary{Total: len(results), ByResult: map[string]int{}}
	for _, r := range results {
		if r.Valid() {
			s.Valid++
		} else {
			s.Invalid++
		}
		s.ByResult[metrics.Result(r.Err)]++
	}
	return s
}
