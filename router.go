package hookline

import (
	"context"
	"fmt"
	"log/slog"
	"time"
)

// Handler processes a single event. Handlers are fire-and-forget from the
// sender's point of view: the acknowledgement has already been written by
// the time a handler runs, so a returned error is reported through hooks
// and the router's logger, never to the sender.
type Handler interface {
	Handle(ctx context.Context, evt Event) error
}

// HandlerFunc is a function adapter for Handler. Use for simple handlers
// that don't need a struct:
//
//	r.Register("im.message.*", hookline.HandlerFunc(func(ctx context.Context, evt hookline.Event) error {
//	    return store.Save(ctx, evt.Data)
//	}))
type HandlerFunc func(ctx context.Context, evt Event) error

// Handle implements the Handler interface.
func (f HandlerFunc) Handle(ctx context.Context, evt Event) error {
	return f(ctx, evt)
}

// Router dispatches events to registered handlers based on subscription
// patterns.
//
// Usage:
//  1. Create a router with New
//  2. Register handlers with Register (chainable)
//  3. Dispatch events with Dispatch
//
// Router is safe for concurrent use after configuration. Do not call
// Register after steady-state traffic begins: the registry is read-only
// during dispatch, which is what lets concurrent dispatches overlap
// without locking.
type Router struct {
	registry map[string][]Handler
	order    []string
	catchAll []Handler
	hooks    hooks
	logger   *slog.Logger
}

// New creates a Router with the given options.
//
// Construction shorthands are applied in a fixed order regardless of the
// order options are passed: handlers from WithOnEvent first, then handlers
// from WithOnMessage.
//
// Example:
//
//	r := hookline.New(
//	    hookline.WithOnEvent(auditHandler),
//	    hookline.WithOnHandlerError(func(ctx context.Context, pattern, eventType string, err error, d time.Duration) {
//	        metrics.Incr("dispatch.failure", "pattern:"+pattern)
//	    }),
//	)
func New(opts ...Option) *Router {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	r := &Router{
		registry: make(map[string][]Handler),
		hooks:    cfg.hooks,
		logger:   cfg.logger,
	}
	for _, h := range cfg.onEvent {
		r.Register(Wildcard, h)
	}
	for _, h := range cfg.onMessage {
		r.Register(MessagePattern, h)
	}
	return r
}

// MessagePattern is the subscription pattern registered by WithOnMessage.
const MessagePattern = "im.message.*"

// Register adds a handler for a subscription pattern and returns the
// router for chaining. The wildcard pattern "*" appends to the catch-all
// sequence; any other pattern appends to that pattern's handler sequence,
// creating it if absent. Re-registering an existing pattern appends rather
// than replaces.
//
// Pattern syntax is not validated: a malformed pattern never matches (or
// matches everything, for "*"). This is permissive on purpose.
//
// Example:
//
//	r.Register("im.message.*", msgHandler).Register("contact.user.created_v3", userHandler)
func (r *Router) Register(pattern string, h Handler) *Router {
	if pattern == Wildcard {
		r.catchAll = append(r.catchAll, h)
		return r
	}
	if _, ok := r.registry[pattern]; !ok {
		r.order = append(r.order, pattern)
	}
	r.registry[pattern] = append(r.registry[pattern], h)
	return r
}

// RegisterFunc is a convenience method for registering a handler function.
//
// Example:
//
//	r.RegisterFunc("im.message.receive_v1", func(ctx context.Context, evt hookline.Event) error {
//	    return nil
//	})
func (r *Router) RegisterFunc(pattern string, fn func(ctx context.Context, evt Event) error) *Router {
	return r.Register(pattern, HandlerFunc(fn))
}

// Dispatch delivers one event to every applicable handler and returns
// once all of them have run.
//
// The delivery flow:
//  1. Catch-all handlers run first, in registration order.
//  2. Registered patterns are checked in the order they were first
//     registered; each matching pattern's handlers run in registration
//     order.
//  3. Every handler invocation is individually isolated: an error return
//     or a panic is reported through hooks and the logger and never stops
//     the remaining handlers, not even those queued under the same pattern.
//
// Dispatch itself never fails. Its job is delivery-attempt, not handler
// correctness; callers that must not block on handler completion should
// invoke it from a goroutine, which is what Server does after writing the
// acknowledgement.
func (r *Router) Dispatch(ctx context.Context, evt Event) {
	for _, fn := range r.hooks.onDispatch {
		ctx = fn(ctx, evt.Type)
	}

	delivered := false
	for _, h := range r.catchAll {
		r.invoke(ctx, Wildcard, evt, h)
		delivered = true
	}

	for _, pattern := range r.order {
		if !Matches(pattern, evt.Type) {
			continue
		}
		delivered = true
		for _, h := range r.registry[pattern] {
			r.invoke(ctx, pattern, evt, h)
		}
	}

	if !delivered {
		for _, fn := range r.hooks.onNoMatch {
			fn(ctx, evt.Type)
		}
	}
}

// invoke runs one handler inside its isolation boundary and reports the
// outcome.
func (r *Router) invoke(ctx context.Context, pattern string, evt Event, h Handler) {
	start := time.Now()
	err := safeHandle(ctx, evt, h)
	duration := time.Since(start)

	if err != nil {
		r.logger.Error("handler failed",
			slog.String("pattern", pattern),
			slog.String("type", evt.Type),
			slog.String("event_id", evt.EventID),
			slog.Any("error", err),
			slog.Duration("duration", duration),
		)
		for _, fn := range r.hooks.onHandlerError {
			fn(ctx, pattern, evt.Type, err, duration)
		}
		return
	}

	for _, fn := range r.hooks.onHandlerSuccess {
		fn(ctx, pattern, evt.Type, duration)
	}
}

// safeHandle converts a handler panic into an error so one broken handler
// cannot take down the dispatch of its siblings.
func safeHandle(ctx context.Context, evt Event, h Handler) (err error) {
	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("handler panic: %v", p)
		}
	}()
	return h.Handle(ctx, evt)
}
