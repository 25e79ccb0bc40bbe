package phis

import (
	"context"
	"time"

	"github.com/reusee/phiargs/args"
	"github.com/reusee/phiargs/logs"
)

// Trace wraps phi so that every call runs in a new span and is logged.
type Trace func(ctx context.Context, name string, phi args.Phi) args.Phi

func (Module) Trace(
	logger logs.Logger,
	newSpan logs.NewSpan,
) Trace {
	return func(ctx context.Context, name string, phi args.Phi) args.Phi {
		return args.PhiFunc(func() (ret any, err error) {
			ctx, _ := newSpan(ctx, "", name)
			t0 := time.Now()
			logger.DebugContext(ctx, "call", "name", name)
			defer func() {
				if err != nil {
					err = logs.WrapSpan(ctx, err)
					logger.WarnContext(ctx, "call failed",
						"name", name,
						"error", err,
						"duration", time.Since(t0),
					)
					return
				}
				logger.DebugContext(ctx, "called",
					"name", name,
					"duration", time.Since(t0),
				)
			}()
			return phi.Call()
		})
	}
}

// TraceEnv returns env with every deferred binding wrapped by trace.
func TraceEnv(ctx context.Context, trace Trace, env args.Env) args.Env {
	var entries []args.Entry
	for name, value := range env.All() {
		phi, ok := value.Phi()
		if !ok || phi == nil {
			continue
		}
		entries = append(entries, args.Entry{
			Name:  name,
			Value: args.Deferred(trace(ctx, name, phi)),
		})
	}
	return args.LayeredOver(env, entries...)
}
