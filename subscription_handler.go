package subhandler

import (
	"context"
	"sync"

	"github.com/RicardoRibeirorr/subhandler/common"
)

// SubscriptionHandler is embedded by owners that open subscriptions and must
// drop all of them when they are torn down.
//
//	type PricesPanel struct {
//		*subhandler.SubscriptionHandler
//	}
//
//	panel := &PricesPanel{SubscriptionHandler: subhandler.New()}
//	defer panel.OnDestroy()
//	panel.AddSubscription(feed.Subscribe(...))
type SubscriptionHandler struct {
	once     sync.Once
	registry *common.HandleRegistry
}

func New(opts ...Option) *SubscriptionHandler {
	return &SubscriptionHandler{registry: common.NewHandleRegistry(opts...)}
}

// a zero SubscriptionHandler gets a default registry on first use
func (h *SubscriptionHandler) reg() *common.HandleRegistry {
	h.once.Do(func() {
		if h.registry == nil {
			h.registry = common.NewHandleRegistry()
		}
	})
	return h.registry
}

// AddSubscription keeps sub until OnDestroy releases it.
func (h *SubscriptionHandler) AddSubscription(sub Cancelable) error {
	return h.reg().Register(sub)
}

// AddCancel keeps a context cancel function, or any other release function
// without a result, until OnDestroy.
func (h *SubscriptionHandler) AddCancel(cancel context.CancelFunc) error {
	if cancel == nil {
		return h.reg().Register(nil)
	}
	return h.reg().Register(common.CancelFunc(cancel))
}

// Subscriptions returns the number of subscriptions still held.
func (h *SubscriptionHandler) Subscriptions() int {
	return h.reg().Len()
}

// OnDestroy is the owner's teardown hook. It releases every held subscription
// in the order they were added and returns the combined release faults.
func (h *SubscriptionHandler) OnDestroy() error {
	return h.reg().ReleaseAll()
}

// Close implements io.Closer on top of OnDestroy.
func (h *SubscriptionHandler) Close() error {
	return h.OnDestroy()
}

// Bind runs OnDestroy once ctx is done.
func (h *SubscriptionHandler) Bind(ctx context.Context) (stop func() bool) {
	return h.reg().ReleaseOnDone(ctx)
}

// Registry exposes the underlying registry, e.g. to hand it to a child
// component that shares the owner's lifetime.
func (h *SubscriptionHandler) Registry() *common.HandleRegistry {
	return h.reg()
}
