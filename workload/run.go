// SPDX-License-Identifier: MIT

package workload

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"time"

	"github.com/schollz/progressbar/v3"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/vecsse/dispatch"
	"github.com/katalvlaran/vecsse/numeric"
)

// Result is the outcome of one job. Exactly one of Output and Err is set; a job
// skipped because the context was cancelled carries the context error.
type Result struct {
	Name     string
	Op       string
	Output   string
	Err      error
	Duration time.Duration
}

// Option configures Run.
type Option func(*options)

type options struct {
	workers     int
	progress    bool
	defaultKind numeric.Kind
	log         *zap.Logger
	table       *dispatch.Table
}

// WithWorkers caps the number of concurrently running jobs (<= 0 ⇒ NumCPU).
func WithWorkers(n int) Option { return func(o *options) { o.workers = n } }

// WithProgress renders a progress bar on stderr while jobs run.
func WithProgress(on bool) Option { return func(o *options) { o.progress = on } }

// WithDefaultKind sets the kind used by jobs and operands that name none.
func WithDefaultKind(k numeric.Kind) Option { return func(o *options) { o.defaultKind = k } }

// WithLogger sets the logger used for job events and for the dispatch table
// Run builds when no table is given.
func WithLogger(l *zap.Logger) Option { return func(o *options) { o.log = l } }

// WithTable runs every job against t.
func WithTable(t *dispatch.Table) Option { return func(o *options) { o.table = t } }

func gatherOptions(user ...Option) options {
	o := options{defaultKind: numeric.Float64}
	for _, set := range user {
		set(&o)
	}
	if o.workers <= 0 {
		o.workers = runtime.NumCPU()
	}
	if o.log == nil {
		o.log = zap.NewNop()
	}
	if o.table == nil {
		o.table = dispatch.Build(dispatch.Entries(), dispatch.WithLogger(o.log))
	}

	return o
}

// Run executes every job of f and returns one Result per job, in job order.
// Jobs are independent: a failing job does not stop the others. The returned
// error joins the failures (each prefixed with the job name), or is the context
// error when ctx is cancelled before all jobs ran; the skipped jobs' Results
// then hold that error.
func Run(ctx context.Context, f File, opts ...Option) ([]Result, error) {
	o := gatherOptions(opts...)
	exec := executor{def: o.defaultKind, table: o.table}
	results := make([]Result, len(f.Jobs))

	var bar *progressbar.ProgressBar
	if o.progress {
		bar = progressbar.Default(int64(len(f.Jobs)), "Running jobs")
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(o.workers)
	for i, job := range f.Jobs {
		i, job := i, job
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				results[i] = Result{Name: job.Name, Op: job.Op, Err: err}
				return err
			}
			start := time.Now()
			out, err := exec.run(job)
			results[i] = Result{Name: job.Name, Op: job.Op, Output: out, Err: err, Duration: time.Since(start)}
			if err != nil {
				o.log.Warn("job failed", zap.String("job", job.Name), zap.String("op", job.Op), zap.Error(err))
			} else {
				o.log.Debug("job done", zap.String("job", job.Name), zap.Duration("took", results[i].Duration))
			}
			if bar != nil {
				_ = bar.Add(1)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return results, err
	}
	if bar != nil {
		_ = bar.Finish()
	}

	var errs []error
	for _, r := range results {
		if r.Err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", r.Name, r.Err))
		}
	}
	return results, errors.Join(errs...)
}
