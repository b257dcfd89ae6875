package common

import (
	"io"
	"reflect"
	"sync"
)

// Cancelable is a handle to an ongoing asynchronous activity (a subscription,
// a stream, a timer) that can be released.
type Cancelable interface {
	// Unsubscribe terminates the activity behind the handle
	Unsubscribe() error
}

// CancelFunc adapts a release function without a result, such as a
// context.CancelFunc. A panic inside it is reported as a release fault.
type CancelFunc func()

func (f CancelFunc) Unsubscribe() error {
	f()
	return nil
}

// ReleaseFunc adapts a release function that reports failure.
type ReleaseFunc func() error

func (f ReleaseFunc) Unsubscribe() error {
	return f()
}

type closerHandle struct {
	closer io.Closer
}

func (c closerHandle) Unsubscribe() error {
	return c.closer.Close()
}

// FromCloser adapts an io.Closer. A nil closer yields a nil handle, which
// Register rejects.
func FromCloser(c io.Closer) Cancelable {
	if isNil(c) {
		return nil
	}
	return closerHandle{closer: c}
}

type onceHandle struct {
	once   sync.Once
	handle Cancelable
	err    error
}

func (o *onceHandle) Unsubscribe() error {
	o.once.Do(func() {
		o.err = o.handle.Unsubscribe()
	})
	return o.err
}

// Once wraps h so that only the first Unsubscribe reaches it; later calls
// return the first result.
func Once(h Cancelable) Cancelable {
	if isNil(h) {
		return nil
	}
	if o, ok := h.(*onceHandle); ok {
		return o
	}
	return &onceHandle{handle: h}
}

func isNil(v interface{}) bool {
	if v == nil {
		return true
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Func, reflect.Map, reflect.Chan, reflect.Slice, reflect.Interface:
		return rv.IsNil()
	default:
		return false
	}
}
