package app

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"regexp"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"showcase/internal/buildinfo"
	"showcase/internal/config"
	"showcase/internal/console"
	"showcase/internal/logging"
	"showcase/internal/metrics"
	"showcase/internal/section"
)

var elapsedLine = regexp.MustCompile(`\[Total Execution\] Elapsed: \d+ μs\n`)

func TestRunOutput(t *testing.T) {
	var out bytes.Buffer

	require.NoError(t, New().Run(context.Background(), &out))

	var banner bytes.Buffer
	buildinfo.Print(&banner)
	got := out.String()

	assert.True(t, strings.HasPrefix(got, banner.String()))
	assert.True(t, strings.HasSuffix(got, "\n"+console.Rule+"\n  Program Completed\n"+console.Rule+"\n"))
	assert.Len(t, elapsedLine.FindAllString(got, -1), 1)

	order := []string{
		"Ownership Demo", "Shared count: 2", "Example: Shared",
		"Lazy Sequences Demo", "Even squares: 4 16 36 64 100",
		"Closures Demo", "Multiplied by 3: 3 6 9 12 15",
		"Destructuring Demo", "Charlie is 35 years old",
		"[Total Execution] Elapsed:", "Program Completed",
	}
	last := -1
	for _, s := range order {
		i := strings.Index(got, s)
		require.GreaterOrEqual(t, i, 0, s)
		assert.Greater(t, i, last, s)
		last = i
	}
}

func TestRunNilWriter(t *testing.T) {
	assert.ErrorIs(t, New().Run(context.Background(), nil), ErrNilWriter)
}

func TestRunLogsToLogger(t *testing.T) {
	var out, logs bytes.Buffer
	logger := logging.New(config.LogConfig{Level: "info", Format: "json"}, &logs)

	require.NoError(t, New(WithLogger(logger)).Run(context.Background(), &out))

	assert.NotContains(t, out.String(), "section_completed")

	var runIDs []string
	completed := 0
	for _, line := range strings.Split(strings.TrimSpace(logs.String()), "\n") {
		var entry map[string]any
		require.NoError(t, json.Unmarshal([]byte(line), &entry))
		runIDs = append(runIDs, fmt.Sprint(entry["run_id"]))
		if entry["msg"] == "section_completed" {
			completed++
		}
	}
	assert.Equal(t, 4, completed)
	for _, id := range runIDs {
		assert.Equal(t, runIDs[0], id)
	}
}

func TestRunRecordsMetricsAndSpans(t *testing.T) {
	reg := prometheus.NewRegistry()
	m, err := metrics.New(reg, 0)
	require.NoError(t, err)

	rec := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(rec))
	defer tp.Shutdown(context.Background())

	a := New(WithMetrics(m), WithTracer(tp.Tracer("test")))
	require.NoError(t, a.Run(context.Background(), io.Discard))

	for _, name := range []string{"Ownership Demo", "Lazy Sequences Demo", "Closures Demo", "Destructuring Demo"} {
		assert.Equal(t, float64(1), testutil.ToFloat64(m.SectionsTotal.WithLabelValues(name)), name)
	}
	assert.Equal(t, 1, testutil.CollectAndCount(m.TotalDuration))

	var names []string
	var root sdktrace.ReadOnlySpan
	for _, s := range rec.Ended() {
		names = append(names, s.Name())
		if s.Name() == TotalTimerName {
			root = s
		}
	}
	require.NotNil(t, root)
	assert.Len(t, names, 5)
	for _, s := range rec.Ended() {
		if s.Name() != TotalTimerName {
			assert.Equal(t, root.SpanContext().SpanID(), s.Parent().SpanID(), s.Name())
		}
	}
}

func TestRunReportsTimerOnPanic(t *testing.T) {
	var out bytes.Buffer
	broken := section.Section{Name: "broken", Run: func(context.Context, io.Writer) { panic("fault") }}

	assert.PanicsWithValue(t, "fault", func() {
		_ = New(WithSections(broken)).Run(context.Background(), &out)
	})
	assert.Len(t, elapsedLine.FindAllString(out.String(), -1), 1)
	assert.NotContains(t, out.String(), "Program Completed")
}
