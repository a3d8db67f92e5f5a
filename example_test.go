package hookline_test

import (
	"context"
	"fmt"

	"github.com/bjaus/hookline"
)

// MessageHandler handles every event under the im.message prefix.
type MessageHandler struct{}

func (h *MessageHandler) Handle(ctx context.Context, evt hookline.Event) error {
	fmt.Printf("message event: %s\n", evt.Type)
	return nil
}

func Example() {
	r := hookline.New()

	r.Register("im.message.*", &MessageHandler{}).
		RegisterFunc("im.message.receive_v1", func(ctx context.Context, evt hookline.Event) error {
			fmt.Println("new message received")
			return nil
		}).
		RegisterFunc("*", func(ctx context.Context, evt hookline.Event) error {
			fmt.Printf("audit: %s\n", evt.Type)
			return nil
		})

	evt, _ := hookline.ParseEvent([]byte(`{"type": "im.message.receive_v1", "event_id": "evt-1"}`))
	r.Dispatch(context.Background(), evt)

	// Output:
	// audit: im.message.receive_v1
	// message event: im.message.receive_v1
	// new message received
}

func ExampleRouter_Dispatch_isolation() {
	r := hookline.New()

	r.RegisterFunc("billing.invoice.*", func(ctx context.Context, evt hookline.Event) error {
		return fmt.Errorf("invoice store unavailable")
	}).RegisterFunc("billing.invoice.paid_v1", func(ctx context.Context, evt hookline.Event) error {
		fmt.Println("receipt sent")
		return nil
	})

	// The first handler's failure is logged, not propagated; the second
	// handler still runs.
	r.Dispatch(context.Background(), hookline.Event{Type: "billing.invoice.paid_v1"})

	// Output:
	// receipt sent
}

func ExampleMatches() {
	fmt.Println(hookline.Matches("im.message.*", "im.message.receive_v1"))
	fmt.Println(hookline.Matches("im.message.*", "im.message"))
	fmt.Println(hookline.Matches("*", "anything.at.all"))

	// Output:
	// true
	// false
	// true
}
