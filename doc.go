// Package hookline is a webhook event receiver: an HTTP endpoint that
// accepts JSON event payloads, acknowledges receipt immediately, and
// dispatches each event to caller-registered handlers by subscription
// pattern.
//
// # Quick Start
//
// Define a handler for your event type:
//
//	type MessageHandler struct {
//	    im IMClient
//	}
//
//	func (h *MessageHandler) Handle(ctx context.Context, evt hookline.Event) error {
//	    return h.im.Reply(ctx, evt.Data)
//	}
//
// Create a router, register handlers, and put a server in front:
//
//	r := hookline.New()
//
//	r.Register("im.message.*", &MessageHandler{im}).
//	    Register("contact.user.created_v3", &UserHandler{db})
//
//	srv := hookline.NewServer(cfg, r)
//	log.Fatal(srv.ListenAndServe())
//
// # Design Philosophy
//
// The package separates concerns into three layers:
//
//   - Server: HTTP plumbing — body reading, JSON validity, acknowledgement
//   - Router: matches event types to patterns, orchestrates delivery
//   - Handlers: pure business logic given a parsed Event
//
// Acknowledgement is decoupled from processing: the server responds to the
// sender before any handler runs, then dispatches on its own goroutine.
// A slow or broken handler can never make the sender time out, and one
// failing handler can never starve another of events.
//
// # Patterns
//
// Handlers subscribe with a pattern string:
//
//	"im.message.receive_v1"  exact event type
//	"im.message.*"           any type under the dot-delimited prefix
//	"*"                      every event (catch-all)
//
// Catch-all handlers always run first, so an observability handler sees
// every event even when a specific handler crashes. Within each group,
// handlers run in registration order; patterns are checked in the order
// they were first registered.
//
// # Failure Isolation
//
// Every handler invocation is individually guarded. An error return or a
// panic is reported through the router's logger and the WithOnHandlerError
// hook, and the dispatch moves on to the next handler. Dispatch itself
// never fails: delivery-attempt is the router's whole contract, handler
// correctness is the handler's.
//
// # Hooks
//
// Observability attaches through functional options:
//
//	r := hookline.New(
//	    hookline.WithOnDispatch(func(ctx context.Context, eventType string) context.Context {
//	        return trace.Start(ctx, eventType)
//	    }),
//	    hookline.WithOnHandlerError(func(ctx context.Context, pattern, eventType string, err error, d time.Duration) {
//	        metrics.Incr("dispatch.failure", "pattern:"+pattern)
//	    }),
//	)
//
// Hooks are called in registration order; OnDispatch chains the context
// through each hook and into every handler of that dispatch.
package hookline
