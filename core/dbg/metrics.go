package dbg

import (
	"context"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

var (
	tracer = otel.Tracer("dbgraph.dbg")
	meter  = otel.Meter("dbgraph.dbg")
)

var (
	buildLatency metric.Float64Histogram
	buildTotal   metric.Int64Counter
	nodesCreated metric.Int64Histogram
	edgesCreated metric.Int64Histogram

	metricsOnce sync.Once
	metricsErr  error
)

func initMetrics() error {
	metricsOnce.Do(func() {
		var err error

		buildLatency, err = meter.Float64Histogram(
			"dbg_build_duration_seconds",
			metric.WithDescription("Duration of graph builds"),
			metric.WithUnit("s"),
		)
		if err != nil {
			metricsErr = err
			return
		}

		buildTotal, err = meter.Int64Counter(
			"dbg_build_total",
			metric.WithDescription("Total number of graph builds"),
		)
		if err != nil {
			metricsErr = err
			return
		}

		nodesCreated, err = meter.Int64Histogram(
			"dbg_nodes_created",
			metric.WithDescription("Number of nodes created per build"),
		)
		if err != nil {
			metricsErr = err
			return
		}

		edgesCreated, err = meter.Int64Histogram(
			"dbg_edges_created",
			metric.WithDescription("Number of edges created per build"),
		)
		if err != nil {
			metricsErr = err
		}
	})
	return metricsErr
}

func recordBuildMetrics(ctx context.Context, strategy Strategy, d time.Duration, st Stats, success bool) {
	if err := initMetrics(); err != nil {
		return
	}
	attrs := metric.WithAttributes(
		attribute.String("strategy", string(strategy)),
		attribute.Bool("success", success),
	)
	buildLatency.Record(ctx, d.Seconds(), attrs)
	buildTotal.Add(ctx, 1, attrs)
	if success {
		nodesCreated.Record(ctx, int64(st.Nodes))
		edgesCreated.Record(ctx, int64(st.Edges))
	}
}

func startBuildSpan(ctx context.Context, name string, strategy Strategy, buildID string) (context.Context, trace.Span) {
	return tracer.Start(ctx, name,
		trace.WithAttributes(
			attribute.String("dbg.strategy", string(strategy)),
			attribute.String("dbg.build_id", buildID),
		),
	)
}

func setBuildSpanResult(span trace.Span, st Stats, err error) {
	span.SetAttributes(
		attribute.Int("dbg.record_count", st.Records),
		attribute.Int("dbg.node_count", st.Nodes),
		attribute.Int("dbg.edge_count", st.Edges),
	)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
}
