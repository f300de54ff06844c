package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/pointsclub/clubadmin/internal/logger"
	sentryService "github.com/pointsclub/clubadmin/internal/sentry"
)

// slowQueryThreshold promotes a completed query to a warning
const slowQueryThreshold = 250 * time.Millisecond

// QueryTracer times one statement. Arguments are counted, never logged.
type QueryTracer struct {
	logger *logger.Logger
	span   *sentry.Span
	query  string
	args   int
	start  time.Time
	txID   string
}

func NewQueryTracer(logger *logger.Logger, span *sentry.Span, query string, args int, txID string) *QueryTracer {
	return &QueryTracer{
		logger: logger,
		span:   span,
		query:  query,
		args:   args,
		start:  time.Now(),
		txID:   txID,
	}
}

// Done finishes the span and logs the statement. sql.ErrNoRows is not a
// failure here; repositories turn it into a not found error.
func (qt *QueryTracer) Done(err error) {
	failed := err != nil && !errors.Is(err, sql.ErrNoRows)
	if qt.span != nil {
		if failed {
			qt.span.Status = sentry.SpanStatusInternalError
		}
		qt.span.Finish()
	}

	duration := time.Since(qt.start)
	fields := []interface{}{
		"duration_ms", duration.Milliseconds(),
		"query", qt.query,
		"args", qt.args,
	}
	if qt.txID != "" {
		fields = append(fields, "tx_id", qt.txID)
	}

	switch {
	case failed:
		qt.logger.Errorw("database query failed", append(fields, "error", err.Error())...)
	case duration > slowQueryThreshold:
		qt.logger.Warnw("slow database query", fields...)
	default:
		qt.logger.Debugw("database query completed", fields...)
	}
}

// TracedQuerier wraps a Querier with tracing
type TracedQuerier struct {
	Querier
	logger *logger.Logger
	sentry *sentryService.Service
	txID   string
}

// NewTracedQuerier creates a new traced querier
func NewTracedQuerier(q Querier, logger *logger.Logger, sentry *sentryService.Service, txID string) *TracedQuerier {
	return &TracedQuerier{
		Querier: q,
		logger:  logger,
		sentry:  sentry,
		txID:    txID,
	}
}

func (tq *TracedQuerier) trace(ctx context.Context, query string, args int) (*QueryTracer, context.Context) {
	var span *sentry.Span
	if tq.sentry != nil {
		span, ctx = tq.sentry.StartDBSpan(ctx, "postgres.query", map[string]interface{}{
			"query": query,
			"tx_id": tq.txID,
		})
	}
	return NewQueryTracer(tq.logger, span, query, args, tq.txID), ctx
}

// ExecContext traces ExecContext calls
func (tq *TracedQuerier) ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error) {
	tracer, ctx := tq.trace(ctx, query, len(args))
	result, err := tq.Querier.ExecContext(ctx, query, args...)
	tracer.Done(err)
	return result, err
}

// NamedExecContext traces NamedExecContext calls
func (tq *TracedQuerier) NamedExecContext(ctx context.Context, query string, arg interface{}) (sql.Result, error) {
	tracer, ctx := tq.trace(ctx, query, 1)
	result, err := tq.Querier.NamedExecContext(ctx, query, arg)
	tracer.Done(err)
	return result, err
}

// GetContext traces GetContext calls
func (tq *TracedQuerier) GetContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error {
	tracer, ctx := tq.trace(ctx, query, len(args))
	err := tq.Querier.GetContext(ctx, dest, query, args...)
	tracer.Done(err)
	return err
}

// SelectContext traces SelectContext calls
func (tq *TracedQuerier) SelectContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error {
	tracer, ctx := tq.trace(ctx, query, len(args))
	err := tq.Querier.SelectContext(ctx, dest, query, args...)
	tracer.Done(err)
	return err
}
