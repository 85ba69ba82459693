package bot

import (
	"context"
	"strings"
	"time"

	"github.com/go-kit/kit/metrics"
	kitprometheus "github.com/go-kit/kit/metrics/prometheus"
	stdprometheus "github.com/prometheus/client_golang/prometheus"
)

var _ Handler = (*metricsMiddleware)(nil)

type metricsMiddleware struct {
	counter metrics.Counter
	latency metrics.Histogram
	handler Handler
}

// MetricsMiddleware instruments a Handler by tracking request count and latency per command.
func MetricsMiddleware(handler Handler, counter metrics.Counter, latency metrics.Histogram) Handler {
	return &metricsMiddleware{
		counter: counter,
		latency: latency,
		handler: handler,
	}
}

// Dispatch instruments Dispatch with metrics.
func (mm *metricsMiddleware) Dispatch(ctx context.Context, req Request) {
	command := commandLabel(req.Command)
	defer func(begin time.Time) {
		mm.counter.With("command", command).Add(1)
		mm.latency.With("command", command).Observe(time.Since(begin).Seconds())
	}(time.Now())

	mm.handler.Dispatch(ctx, req)
}

var _ Sender = (*sendMetrics)(nil)

type sendMetrics struct {
	failures metrics.Counter
	sender   Sender
}

// SendMetricsMiddleware counts failed sends by error class.
func SendMetricsMiddleware(sender Sender, failures metrics.Counter) Sender {
	return &sendMetrics{failures: failures, sender: sender}
}

// Send instruments Send with metrics.
func (sm *sendMetrics) Send(ctx context.Context, reply Reply) error {
	err := sm.sender.Send(ctx, reply)
	if err != nil {
		sm.failures.With("class", errorClass(err)).Add(1)
	}
	return err
}

// commandLabel bounds label cardinality to the known commands
func commandLabel(command string) string {
	switch c := strings.ToLower(command); c {
	case CommandLocalTime, CommandHelp, CommandStart:
		return c
	default:
		return "other"
	}
}

// MakeMetrics registers the bot metrics in the default Prometheus registry.
func MakeMetrics(namespace, subsystem string) (*kitprometheus.Counter, *kitprometheus.Summary, *kitprometheus.Counter) {
	counter := kitprometheus.NewCounterFrom(stdprometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "request_count",
		Help:      "Number of commands received.",
	}, []string{"command"})
	latency := kitprometheus.NewSummaryFrom(stdprometheus.SummaryOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "request_latency_seconds",
		Help:      "Total duration of command handling in seconds.",
	}, []string{"command"})
	failures := kitprometheus.NewCounterFrom(stdprometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "send_failures_total",
		Help:      "Number of replies the transport failed to deliver.",
	}, []string{"class"})

	return counter, latency, failures
}
