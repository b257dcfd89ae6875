package grpc

import (
	"context"
	"errors"
	"io"
	"sync"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/RicardoRibeirorr/subhandler/common"
)

type streamHandle struct {
	stream grpc.ClientStream
	cancel context.CancelFunc
}

// StreamHandle releases a client stream by half-closing it and cancelling
// the context the stream was opened with. cancel may be nil when the stream
// context is owned elsewhere.
func StreamHandle(stream grpc.ClientStream, cancel context.CancelFunc) common.Cancelable {
	if stream == nil {
		return nil
	}
	return &streamHandle{stream: stream, cancel: cancel}
}

func (h *streamHandle) Unsubscribe() error {
	err := h.stream.CloseSend()
	if h.cancel != nil {
		h.cancel()
	}

	if err != nil && !errors.Is(err, io.EOF) {
		return common.NewRegistryError("close send failed", common.ErrTypeRelease, err)
	}
	return nil
}

type connHandle struct {
	conn *grpc.ClientConn
	mu   sync.Mutex
}

// ConnHandle releases a client connection. Closing a connection that is
// already shut down is not a fault.
func ConnHandle(conn *grpc.ClientConn) common.Cancelable {
	if conn == nil {
		return nil
	}
	return &connHandle{conn: conn}
}

func (h *connHandle) Unsubscribe() error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if err := h.conn.Close(); err != nil {
		if status.Code(err) == codes.Canceled {
			return nil
		}
		return common.NewRegistryError("connection close failed", common.ErrTypeRelease, err)
	}
	return nil
}

// CancelHandle wraps the cancel function of a unary call or stream context.
func CancelHandle(cancel context.CancelFunc) common.Cancelable {
	if cancel == nil {
		return nil
	}
	return common.CancelFunc(cancel)
}
