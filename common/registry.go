package common

import (
	"context"
	"runtime/debug"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/multierr"
)

// HandleRegistry collects cancelable handles and releases all of them in one
// pass when its owner is torn down.
//
// Handles are released in registration order. The pending handles are dropped
// from the registry before a pass starts, so every handle is released at most
// once by the registry. The zero value is ready to use.
type HandleRegistry struct {
	mu      sync.Mutex
	handles []Cancelable
	logger  Logger
	name    string
	metrics *Metrics
}

func NewHandleRegistry(opts ...Option) *HandleRegistry {
	cfg := defaultRegistryConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	return &HandleRegistry{
		logger:  cfg.logger,
		name:    cfg.name,
		metrics: cfg.metrics,
	}
}

// must be called with r.mu held
func (r *HandleRegistry) initLocked() {
	if r.logger == nil {
		r.logger = &noopLogger{}
	}
	if r.name == "" {
		r.name = uuid.NewString()
	}
}

func (r *HandleRegistry) Name() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.initLocked()
	return r.name
}

func (r *HandleRegistry) Logger() Logger {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.initLocked()
	return r.logger
}

// Len returns the number of handles waiting for the next release pass.
func (r *HandleRegistry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.handles)
}

// Register appends handle to the registry. Nil handles, including typed nil
// values, are rejected with an error wrapping ErrNilHandle.
func (r *HandleRegistry) Register(handle Cancelable) error {
	if isNil(handle) {
		return NewRegistryError("cannot register handle", ErrTypeValidation, ErrNilHandle)
	}

	r.mu.Lock()
	r.initLocked()
	r.handles = append(r.handles, handle)
	pending := len(r.handles)
	logger, name, metrics := r.logger, r.name, r.metrics
	r.mu.Unlock()

	metrics.incRegistered(name)
	logger.Debug("Handle registered", "registry", name, "pending", pending)
	return nil
}

// ReleaseAll releases every pending handle in registration order.
//
// A failing release does not stop the pass. Each fault is logged and wrapped
// in a *ReleaseError, and the combined faults are returned once every handle
// has been attempted. Calling ReleaseAll again without new registrations is a
// no-op.
func (r *HandleRegistry) ReleaseAll() error {
	r.mu.Lock()
	r.initLocked()
	handles := r.handles
	r.handles = nil
	logger, name, metrics := r.logger, r.name, r.metrics
	r.mu.Unlock()

	if len(handles) == 0 {
		return nil
	}

	start := time.Now()
	logger.Debug("Releasing handles", "registry", name, "count", len(handles))

	var errs error
	faults := 0
	for i, h := range handles {
		if err := r.release(h, logger, name); err != nil {
			faults++
			logger.Warn("Handle release failed", "registry", name, "index", i, "error", err)
			errs = multierr.Append(errs, &ReleaseError{Registry: name, Index: i, Err: err})
		}
		handles[i] = nil
	}

	metrics.observePass(name, start, len(handles), faults)
	logger.Debug("Handles released", "registry", name, "count", len(handles), "faults", faults)
	return errs
}

func (r *HandleRegistry) release(h Cancelable, logger Logger, name string) (err error) {
	defer func() {
		if p := recover(); p != nil {
			logger.Error("Handle release panicked", "registry", name, "panic", p, "stack", string(debug.Stack()))
			err = newPanicError(p)
		}
	}()
	return h.Unsubscribe()
}

// ReleaseOnDone runs ReleaseAll once ctx is done. A faulted pass is logged
// since there is no caller to return it to. Calling stop detaches the
// registry from ctx; it reports whether the release was still pending.
func (r *HandleRegistry) ReleaseOnDone(ctx context.Context) (stop func() bool) {
	if ctx == nil {
		return func() bool { return false }
	}

	return context.AfterFunc(ctx, func() {
		if err := r.ReleaseAll(); err != nil {
			r.Logger().Error("Release on context done failed",
				"registry", r.Name(),
				"faults", len(ReleaseErrors(err)),
				"error", err)
		}
	})
}
