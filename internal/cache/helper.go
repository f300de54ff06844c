package cache

import (
	"context"
	"strings"

	"github.com/getsentry/sentry-go"
)

// startLookupSpan traces a cache read when the request carries a Sentry hub.
// The span is tagged with the key family, never the full key.
func startLookupSpan(ctx context.Context, key string) *sentry.Span {
	if sentry.GetHubFromContext(ctx) == nil {
		return nil
	}

	family, _, _ := strings.Cut(key, ":")
	span := sentry.StartSpan(ctx, "cache.get")
	span.Description = "cache.get " + family
	span.SetData("family", family)
	return span
}

// finishLookupSpan records the hit or miss and closes the span
func finishLookupSpan(span *sentry.Span, hit bool) {
	if span == nil {
		return
	}
	span.SetData("hit", hit)
	span.Status = sentry.SpanStatusOK
	span.Finish()
}
