package websocket

import (
	"errors"
	"net"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/multierr"

	"github.com/RicardoRibeirorr/subhandler/common"
)

type connHandle struct {
	conn   *websocket.Conn
	config *handleConfig
	mu     sync.Mutex
}

// ConnHandle releases a websocket connection: an optional unsubscribe
// message, a close frame, then the underlying network connection.
func ConnHandle(conn *websocket.Conn, opts ...Option) common.Cancelable {
	if conn == nil {
		return nil
	}

	cfg := defaultHandleConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	return &connHandle{conn: conn, config: cfg}
}

func (h *connHandle) Unsubscribe() error {
	h.mu.Lock()
	defer h.mu.Unlock()

	deadline := time.Now().Add(h.config.closeTimeout)
	var errs error

	if h.config.unsubscribeMsg != nil {
		if err := h.conn.SetWriteDeadline(deadline); err != nil && !isClosedErr(err) {
			errs = multierr.Append(errs, err)
		}
		if err := h.conn.WriteMessage(h.config.unsubscribeTyp, h.config.unsubscribeMsg); err != nil && !isClosedErr(err) {
			errs = multierr.Append(errs, common.NewRegistryError("unsubscribe message failed", common.ErrTypeRelease, err))
		}
	}

	closeFrame := websocket.FormatCloseMessage(h.config.closeCode, h.config.closeText)
	if err := h.conn.WriteControl(websocket.CloseMessage, closeFrame, deadline); err != nil && !isClosedErr(err) {
		errs = multierr.Append(errs, common.NewRegistryError("close frame failed", common.ErrTypeRelease, err))
	}

	if err := h.conn.Close(); err != nil && !isClosedErr(err) {
		errs = multierr.Append(errs, common.NewRegistryError("connection close failed", common.ErrTypeRelease, err))
	}
	return errs
}

func isClosedErr(err error) bool {
	return errors.Is(err, websocket.ErrCloseSent) || errors.Is(err, net.ErrClosed)
}
