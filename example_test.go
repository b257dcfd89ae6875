package subhandler_test

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/RicardoRibeirorr/subhandler"
)

// ticker is a minimal subscription source used by the examples.
type ticker struct {
	name string
	stop chan struct{}
}

func (t *ticker) Unsubscribe() error {
	close(t.stop)
	fmt.Printf("unsubscribed %s\n", t.name)
	return nil
}

type PricesPanel struct {
	*subhandler.SubscriptionHandler
}

// Example demonstrates embedding a SubscriptionHandler in an owner and
// releasing its subscriptions on teardown.
func Example() {
	panel := &PricesPanel{SubscriptionHandler: subhandler.New(subhandler.WithName("prices-panel"))}

	_ = panel.AddSubscription(&ticker{name: "EUR/USD", stop: make(chan struct{})})
	_ = panel.AddSubscription(&ticker{name: "GBP/USD", stop: make(chan struct{})})

	if err := panel.OnDestroy(); err != nil {
		fmt.Println("teardown:", err)
	}

	// Output:
	// unsubscribed EUR/USD
	// unsubscribed GBP/USD
}

// Example demonstrates that a failing release does not keep the remaining
// subscriptions alive.
func Example_releaseFaults() {
	handler := subhandler.New(subhandler.WithName("orders"))

	_ = handler.AddSubscription(subhandler.ReleaseFunc(func() error {
		return errors.New("stream already reset")
	}))
	_ = handler.AddSubscription(&ticker{name: "orders", stop: make(chan struct{})})

	err := handler.OnDestroy()
	for _, fault := range subhandler.ReleaseErrors(err) {
		fmt.Printf("handle #%d: %v\n", fault.Index, fault.Err)
	}

	// Output:
	// unsubscribed orders
	// handle #0: stream already reset
}

// Example demonstrates tying teardown to a context.
func Example_bind() {
	ctx, cancel := context.WithCancel(context.Background())
	handler := subhandler.New()
	handler.Bind(ctx)

	done := make(chan struct{})
	_ = handler.AddCancel(func() { close(done) })

	cancel()
	select {
	case <-done:
		fmt.Println("released")
	case <-time.After(time.Second):
		fmt.Println("still subscribed")
	}

	// Output:
	// released
}
