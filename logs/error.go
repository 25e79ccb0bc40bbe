package logs

import (
	"context"
	"errors"
	"fmt"
)

// WrapSpan annotates err with the span in ctx, if any.
func WrapSpan(ctx context.Context, err error) error {
	if err == nil {
		return nil
	}
	v := ctx.Value(SpanKey)
	if v == nil {
		return err
	}
	return errors.Join(err, fmt.Errorf("span: %s", v.(Span)))
}
