package compare

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"
)

// ErrMismatch is returned when a backend gives a wrong answer.
var ErrMismatch = errors.New("backend answered wrong")

// Phase of a Run.
type Phase struct {
	Name    string
	Ops     int
	Elapsed time.Duration
}

// PerOp is the average time of one operation.
func (p Phase) PerOp() time.Duration {
	if p.Ops == 0 {
		return 0
	}
	return p.Elapsed / time.Duration(p.Ops)
}

// Result of running a Workload on a Backend.
type Result struct {
	Backend string
	Phases  []Phase
}

// Total time of all phases.
func (r Result) Total() (d time.Duration) {
	for _, p := range r.Phases {
		d += p.Elapsed
	}
	return
}

// Runner times workloads and checks the answers of the backends.
type Runner struct {
	logger *slog.Logger
}

func NewRunner(logger *slog.Logger) *Runner {
	if logger == nil {
		logger = slog.Default()
	}
	return &Runner{logger: logger.With("component", "compare")}
}

func (r *Runner) phase(res *Result, name string, ops int, f func() error) error {
	start := time.Now()
	if err := f(); err != nil {
		return fmt.Errorf("%s %s: %w", res.Backend, name, err)
	}
	p := Phase{name, ops, time.Since(start)}
	res.Phases = append(res.Phases, p)
	r.logger.Debug("phase done", "backend", res.Backend, "phase", name, "ops", ops, "elapsed", p.Elapsed)
	return nil
}

// Run w against b, which must be empty. The phases are insert, lookup,
// then for Ordered backends floor and ceiling, then delete of the first half
// of the keys, and drain of the rest (by DeleteMin for Ordered backends).
// ctx is checked between phases.
func (r *Runner) Run(ctx context.Context, b Backend, w Workload) (Result, error) {
	res := Result{Backend: b.Name()}
	ks := w.Keys()
	n := len(ks)
	if w.Order != Random && n > 1<<14 {
		if _, ok := b.(*treeMap); ok {
			r.logger.Warn("sorted keys degrade an unbalanced tree to a list", "backend", res.Backend, "n", n)
		}
	}
	o, ordered := b.(Ordered)
	steps := []struct {
		name string
		ops  int
		f    func() error
		skip bool
	}{
		{"insert", n, func() error {
			for i, k := range ks {
				b.Put(k, i)
			}
			if b.Len() != n {
				return fmt.Errorf("%w: len %d, want %d", ErrMismatch, b.Len(), n)
			}
			return nil
		}, false},
		{"lookup", n, func() error {
			for i, k := range ks {
				if v, ok := b.Get(k); !ok || v != i {
					return fmt.Errorf("%w: get(%d) = %d, %v", ErrMismatch, k, v, ok)
				}
			}
			return nil
		}, false},
		{"floor", n, func() error {
			for _, k := range ks {
				if f, ok := o.Floor(k + 1); !ok || f != k {
					return fmt.Errorf("%w: floor(%d) = %d, %v", ErrMismatch, k+1, f, ok)
				}
			}
			return nil
		}, !ordered},
		{"ceiling", n, func() error {
			for _, k := range ks {
				c, ok := o.Ceiling(k + 1)
				if want := k + 2; want < 2*n && (!ok || c != want) || want >= 2*n && ok {
					return fmt.Errorf("%w: ceiling(%d) = %d, %v", ErrMismatch, k+1, c, ok)
				}
			}
			return nil
		}, !ordered},
		{"delete", n / 2, func() error {
			for _, k := range ks[:n/2] {
				if !b.Delete(k) {
					return fmt.Errorf("%w: delete(%d) missed", ErrMismatch, k)
				}
			}
			return nil
		}, false},
		{"drain", n - n/2, func() error {
			if ordered {
				prev := -1
				for k, ok := o.DeleteMin(); ok; k, ok = o.DeleteMin() {
					if k <= prev {
						return fmt.Errorf("%w: drained %d after %d", ErrMismatch, k, prev)
					}
					prev = k
				}
			} else {
				for _, k := range ks[n/2:] {
					b.Delete(k)
				}
			}
			if b.Len() != 0 {
				return fmt.Errorf("%w: %d keys left", ErrMismatch, b.Len())
			}
			return nil
		}, false},
	}
	for _, s := range steps {
		if s.skip {
			continue
		}
		if err := ctx.Err(); err != nil {
			return res, err
		}
		if err := r.phase(&res, s.name, s.ops, s.f); err != nil {
			return res, err
		}
	}
	r.logger.Info("run done", "backend", res.Backend, "n", n, "order", w.Order, "total", res.Total())
	return res, nil
}
