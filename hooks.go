package hookline

import (
	"context"
	"time"
)

// OnDispatchFunc is called once at the start of each dispatch, before any
// handler runs. Use this to enrich the context with logging fields or
// trace spans. The returned context is used for every handler invocation
// of that dispatch.
type OnDispatchFunc func(ctx context.Context, eventType string) context.Context

// OnHandlerSuccessFunc is called after a handler completes successfully.
type OnHandlerSuccessFunc func(ctx context.Context, pattern, eventType string, duration time.Duration)

// OnHandlerErrorFunc is called after a handler returns an error or panics.
// The dispatch continues to the remaining handlers either way; this hook
// is the side channel for the failure, not a control point.
type OnHandlerErrorFunc func(ctx context.Context, pattern, eventType string, err error, duration time.Duration)

// OnNoMatchFunc is called when an event matched no registered handler,
// including the catch-all sequence being empty.
type OnNoMatchFunc func(ctx context.Context, eventType string)

// hooks holds all configured hook functions.
type hooks struct {
	onDispatch       []OnDispatchFunc
	onHandlerSuccess []OnHandlerSuccessFunc
	onHandlerError   []OnHandlerErrorFunc
	onNoMatch        []OnNoMatchFunc
}

// WithOnDispatch adds a hook called at the start of each dispatch.
// Multiple hooks are called in order, with context chaining through each.
//
// Example:
//
//	hookline.WithOnDispatch(func(ctx context.Context, eventType string) context.Context {
//	    return logx.WithCtx(ctx, slog.String("event_type", eventType))
//	})
func WithOnDispatch(fn OnDispatchFunc) Option {
	return func(c *config) {
		c.hooks.onDispatch = append(c.hooks.onDispatch, fn)
	}
}

// WithOnHandlerSuccess adds a hook called after each handler completes
// successfully. Multiple hooks are called in order.
//
// Example:
//
//	hookline.WithOnHandlerSuccess(func(ctx context.Context, pattern, eventType string, d time.Duration) {
//	    metrics.Timing("dispatch.handler", d, "pattern:"+pattern)
//	})
func WithOnHandlerSuccess(fn OnHandlerSuccessFunc) Option {
	return func(c *config) {
		c.hooks.onHandlerSuccess = append(c.hooks.onHandlerSuccess, fn)
	}
}

// WithOnHandlerError adds a hook called after a handler fails.
// Multiple hooks are called in order.
//
// Example:
//
//	hookline.WithOnHandlerError(func(ctx context.Context, pattern, eventType string, err error, d time.Duration) {
//	    metrics.Incr("dispatch.failure", "pattern:"+pattern)
//	})
func WithOnHandlerError(fn OnHandlerErrorFunc) Option {
	return func(c *config) {
		c.hooks.onHandlerError = append(c.hooks.onHandlerError, fn)
	}
}

// WithOnNoMatch adds a hook called when no handler applied to an event.
// Multiple hooks are called in order.
//
// Example:
//
//	hookline.WithOnNoMatch(func(ctx context.Context, eventType string) {
//	    logger.Warn("unhandled event", "type", eventType)
//	})
func WithOnNoMatch(fn OnNoMatchFunc) Option {
	return func(c *config) {
		c.hooks.onNoMatch = append(c.hooks.onNoMatch, fn)
	}
}
