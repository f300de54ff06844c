package sentry

import (
	"context"
	"errors"
	"testing"

	"github.com/pointsclub/clubadmin/internal/config"
	"github.com/pointsclub/clubadmin/internal/logger"
	"github.com/stretchr/testify/assert"
)

func TestDisabledServiceIsNoop(t *testing.T) {
	svc := NewSentryService(config.GetDefaultConfig(), logger.NewNop())

	assert.False(t, svc.Enabled())
	assert.NoError(t, svc.Init())
	assert.True(t, svc.Flush(1))
	svc.CaptureException(context.Background(), errors.New("ignored"))

	ctx := context.Background()
	span, spanCtx := svc.StartDBSpan(ctx, "postgres.query", nil)
	assert.Nil(t, span)
	assert.Equal(t, ctx, spanCtx)
}

func TestNilServiceIsDisabled(t *testing.T) {
	var svc *Service
	assert.False(t, svc.Enabled())
}
