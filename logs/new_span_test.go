package logs

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/reusee/dscope"
)

func TestNewSpan(t *testing.T) {
	buf := new(bytes.Buffer)
	SetLevel(slog.LevelDebug)
	defer SetLevel(slog.LevelInfo)
	dscope.New(new(Module)).Fork(
		WriterTo(buf),
	).Call(func(
		newSpan NewSpan,
	) {
		ctx := context.Background()
		if ctx.Value(SpanKey) != nil {
			t.Fatal()
		}

		ctx1, span1 := newSpan(ctx, "", "load")
		ctx11, span11 := newSpan(ctx1, "", "call")
		ctx12, span12 := newSpan(ctx11, span1, "call")

		if span := ctx12.Value(SpanKey); span != span12 {
			t.Fatalf("got %v", span)
		}

		var lines []string
		for _, line := range strings.Split(buf.String(), "\n") {
			if strings.Contains(line, "msg=span ") {
				lines = append(lines, line)
			}
		}
		if len(lines) != 3 {
			t.Fatalf("got %v", lines)
		}
		for i, expected := range [][]string{
			{"what=load", "span=" + string(span1)},
			{"what=call", "span=" + string(span11), "parent=" + string(span1)},
			{"what=call", "span=" + string(span12), "parent=" + string(span1), "creator=" + string(span11)},
		} {
			for _, e := range expected {
				if !strings.Contains(lines[i], e) {
					t.Fatalf("%d: no %s in %v", i, e, lines[i])
				}
			}
		}
		if strings.Contains(lines[0], "parent=") || strings.Contains(lines[1], "creator=") {
			t.Fatalf("got %v", lines)
		}
	})
}

func TestWrapSpan(t *testing.T) {
	cause := errors.New("foo")
	if err := WrapSpan(context.Background(), cause); err != cause {
		t.Fatalf("got %v", err)
	}
	if err := WrapSpan(context.Background(), nil); err != nil {
		t.Fatalf("got %v", err)
	}
	ctx := context.WithValue(context.Background(), SpanKey, Span("S"))
	err := WrapSpan(ctx, cause)
	if !errors.Is(err, cause) {
		t.Fatalf("got %v", err)
	}
	if !strings.Contains(err.Error(), "span: S") {
		t.Fatalf("got %v", err)
	}
}
