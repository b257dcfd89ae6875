package websocket

import (
	"time"

	"github.com/gorilla/websocket"
)

const defaultCloseTimeout = time.Second

type handleConfig struct {
	closeTimeout   time.Duration
	closeCode      int
	closeText      string
	unsubscribeMsg []byte
	unsubscribeTyp int
}

type Option func(*handleConfig)

func defaultHandleConfig() *handleConfig {
	return &handleConfig{
		closeTimeout: defaultCloseTimeout,
		closeCode:    websocket.CloseNormalClosure,
	}
}

// WithCloseTimeout bounds the time spent writing the unsubscribe and close
// frames. Non-positive values keep the default.
func WithCloseTimeout(d time.Duration) Option {
	return func(c *handleConfig) {
		if d > 0 {
			c.closeTimeout = d
		}
	}
}

func WithCloseCode(code int, text string) Option {
	return func(c *handleConfig) {
		c.closeCode = code
		c.closeText = text
	}
}

// WithUnsubscribeMessage sends payload as a data message of the given type
// before the close frame, for servers that expect an explicit unsubscribe.
func WithUnsubscribeMessage(messageType int, payload []byte) Option {
	return func(c *handleConfig) {
		c.unsubscribeTyp = messageType
		c.unsubscribeMsg = payload
	}
}
