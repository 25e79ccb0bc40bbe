package logs

import (
	"context"
	"crypto/rand"
)

// NewSpan starts a span for what under parent, or under the span in ctx when parent is empty.
type NewSpan func(ctx context.Context, parent Span, what string) (context.Context, Span)

func (Module) NewSpan(
	logger Logger,
) NewSpan {
	return func(ctx context.Context, parent Span, what string) (context.Context, Span) {
		var creator Span
		if v := ctx.Value(SpanKey); v != nil {
			creator = v.(Span)
		}
		if parent == "" {
			parent = creator
		}

		span := Span(rand.Text())
		ctx = context.WithValue(ctx, SpanKey, span)

		attrs := []any{"what", what}
		if parent != "" {
			attrs = append(attrs, "parent", parent)
			if creator != "" && creator != parent {
				attrs = append(attrs, "creator", creator)
			}
		}
		logger.DebugContext(ctx, "span", attrs...)

		return ctx, span
	}
}
