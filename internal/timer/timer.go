// Package timer reports how long a scope took.
//
// A Timer is started at the top of a scope and stopped with defer, so the
// elapsed time is reported exactly once whichever way the scope is left:
//
//	ctx, t := timer.Start(ctx, "Total Execution")
//	defer t.Stop()
package timer

import (
	"context"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel/trace"
)

// Timer measures wall-clock time from Start until the first Stop.
type Timer struct {
	name     string
	start    time.Time
	out      io.Writer
	quiet    bool
	now      func() time.Time
	observer prometheus.Observer
	tracer   trace.Tracer
	span     trace.Span

	once    sync.Once
	elapsed time.Duration
}

// Option configures a Timer.
type Option func(*Timer)

// WithWriter sets where the elapsed line is written. Defaults to stdout.
func WithWriter(w io.Writer) Option {
	return func(t *Timer) { t.out = w }
}

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(t *Timer) { t.now = now }
}

// WithObserver records the elapsed seconds in o on Stop.
func WithObserver(o prometheus.Observer) Option {
	return func(t *Timer) { t.observer = o }
}

// WithTracer opens a span named after the timer; Stop ends it.
func WithTracer(tr trace.Tracer) Option {
	return func(t *Timer) { t.tracer = tr }
}

// Quiet suppresses the elapsed line. Observer and span still fire.
func Quiet() Option {
	return func(t *Timer) { t.quiet = true }
}

// Start captures name and the current time. The returned context carries the
// timer's span when a tracer is configured.
func Start(ctx context.Context, name string, opts ...Option) (context.Context, *Timer) {
	t := &Timer{
		name: name,
		out:  os.Stdout,
		now:  time.Now,
	}
	for _, opt := range opts {
		opt(t)
	}
	if t.tracer != nil {
		ctx, t.span = t.tracer.Start(ctx, name)
	}
	t.start = t.now()
	return ctx, t
}

// Stop reports the elapsed time. Only the first call has effect; every call
// returns the first measurement.
func (t *Timer) Stop() time.Duration {
	t.once.Do(func() {
		t.elapsed = t.now().Sub(t.start)
		if t.elapsed < 0 {
			t.elapsed = 0
		}
		if !t.quiet {
			fmt.Fprintf(t.out, "[%s] Elapsed: %d μs\n", t.name, t.elapsed.Microseconds())
		}
		if t.observer != nil {
			t.observer.Observe(t.elapsed.Seconds())
		}
		if t.span != nil {
			t.span.End()
		}
	})
	return t.elapsed
}

// Name returns the label the timer was started with.
func (t *Timer) Name() string {
	return t.name
}

// Scope runs fn between Start and a deferred Stop, so the elapsed time is
// reported even when fn panics.
func Scope(ctx context.Context, name string, fn func(context.Context), opts ...Option) time.Duration {
	ctx, t := Start(ctx, name, opts...)
	defer t.Stop()
	fn(ctx)
	return t.Stop()
}
