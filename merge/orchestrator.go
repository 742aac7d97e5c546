// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package merge

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"runtime"
	"sync"
	"time"

	"github.com/panjf2000/ants/v2"

	"github.com/poiesic/docmerge/ai"
	"github.com/poiesic/docmerge/core"
	"github.com/poiesic/docmerge/extract"
)

// ErrNormalizerRequired is returned when an Orchestrator is
// constructed without a normalizer.
var ErrNormalizerRequired = errors.New("normalizer required")

// Orchestrator runs document sets concurrently over a bounded worker
// pool. Sets fail independently; one bad set never disturbs the rest.
type Orchestrator struct {
	pool     *ants.Pool
	pipeline *setPipeline
	deadline time.Duration
	logger   *slog.Logger
}

// Option configures an Orchestrator.
type Option func(*Orchestrator) error

// WithWorkers sets the worker pool size for concurrent set
// processing. Default is 2 * runtime.NumCPU(), with a minimum of 1.
func WithWorkers(size int) Option {
	return func(o *Orchestrator) error {
		if size < 1 {
			size = 1
		}
		if o.pool != nil {
			o.pool.Release()
		}
		pool, err := ants.NewPool(size)
		if err != nil {
			return err
		}
		o.pool = pool
		return nil
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(o *Orchestrator) error {
		if logger == nil {
			logger = slog.Default()
		}
		o.logger = logger
		o.pipeline.logger = logger
		return nil
	}
}

// WithDeadline bounds a whole Run. Zero disables the bound.
func WithDeadline(d time.Duration) Option {
	return func(o *Orchestrator) error {
		o.deadline = d
		return nil
	}
}

// WithSummaryMaxLength sets the approximate summary word budget
// passed to the gateway. Default is 1000.
func WithSummaryMaxLength(n int) Option {
	return func(o *Orchestrator) error {
		if n > 0 {
			o.pipeline.maxLength = n
		}
		return nil
	}
}

// NewOrchestrator creates an orchestrator over the given normalizer
// and summarization gateway. A nil gateway disables summarization; the
// retry policy lives on the gateway itself.
func NewOrchestrator(normalizer *extract.Normalizer, gateway *ai.Gateway, opts ...Option) (*Orchestrator, error) {
	if normalizer == nil {
		return nil, ErrNormalizerRequired
	}

	poolSize := 2 * runtime.NumCPU()
	if poolSize < 1 {
		poolSize = 1
	}
	pool, err := ants.NewPool(poolSize)
	if err != nil {
		return nil, err
	}

	logger := slog.Default()
	o := &Orchestrator{
		pool: pool,
		pipeline: &setPipeline{
			normalizer: normalizer,
			gateway:    gateway,
			maxLength:  1000,
			logger:     logger,
		},
		logger: logger,
	}

	for _, opt := range opts {
		if optErr := opt(o); optErr != nil {
			o.Release()
			return nil, optErr
		}
	}
	return o, nil
}

// Run processes the given document sets and returns the aggregate
// result. Sections come back in input order regardless of completion
// order; failed sets appear only in Failures. Run itself errors only
// on structural problems, never on per-set failures.
func (o *Orchestrator) Run(ctx context.Context, sets []core.DocumentSet) (*core.MergeResult, error) {
	if o.deadline > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, o.deadline)
		defer cancel()
	}

	// One availability probe per run, shared by every set.
	providerUp := o.pipeline.gateway != nil && o.pipeline.gateway.IsAvailable(ctx)

	type outcome struct {
		section core.Section
		err     error
	}
	// Indexed slots keep the results in input order no matter which
	// worker finishes first.
	outcomes := make([]outcome, len(sets))

	var wg sync.WaitGroup
	for i, set := range sets {
		wg.Add(1)
		submitErr := o.pool.Submit(func() {
			defer wg.Done()
			defer func() {
				if r := recover(); r != nil {
					o.logger.Error("worker panic", "set", set.Name, "panic", r)
					outcomes[i].err = fmt.Errorf("worker panic: %v", r)
				}
			}()

			if err := ctx.Err(); err != nil {
				outcomes[i].err = err
				return
			}

			section, err := o.pipeline.run(ctx, set, i+1, providerUp)
			outcomes[i] = outcome{section: section, err: err}
		})
		if submitErr != nil {
			wg.Done()
			outcomes[i].err = submitErr
		}
	}
	wg.Wait()

	result := &core.MergeResult{Failures: make(map[string]string)}
	for i, set := range sets {
		err := outcomes[i].err
		if err == nil {
			result.Sections = append(result.Sections, outcomes[i].section)
			continue
		}
		if errors.Is(err, context.DeadlineExceeded) {
			err = core.ErrPipelineTimeout
		}
		o.logger.Warn("document set failed", "set", set.Name, "err", err)
		result.Failures[set.Name] = err.Error()
	}
	return result, nil
}

// Release releases the worker pool. The orchestrator should not be
// used after calling Release.
func (o *Orchestrator) Release() {
	if o.pool != nil {
		o.pool.Release()
	}
}
