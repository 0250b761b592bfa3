package parser

import (
	"context"

	"daily-task-agent/internal/metrics"
	"daily-task-agent/pkg/log"
)

type fallback struct {
	l         log.Logger
	primary   Parser
	secondary Parser
	metrics   *metrics.Metrics
}

// FallbackOption configures the fallback parser.
type FallbackOption func(*fallback)

// WithMetrics counts every parse served by the secondary parser.
func WithMetrics(m *metrics.Metrics) FallbackOption {
	return func(f *fallback) { f.metrics = m }
}

// NewFallback calls primary once and, on any error, returns secondary's result.
func NewFallback(l log.Logger, primary, secondary Parser, opts ...FallbackOption) Parser {
	f := &fallback{l: l, primary: primary, secondary: secondary}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

func (f *fallback) Parse(ctx context.Context, text string) (ParsedTask, error) {
	pt, err := f.primary.Parse(ctx, text)
	if err == nil {
		return pt, nil
	}

	f.l.Warnf(ctx, "parser.fallback: primary parser failed, using fallback: %v", err)
	f.metrics.RecordParserFallback()
	return f.secondary.Parse(ctx, text)
}
