// Package notify carries user-facing notifications from the data layer to
// whatever front end is attached. The error/auth interceptor is the main
// producer; the CLI renders them as console lines.
package notify

import (
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/konarr/konarr-go/internal/logging"
)

// Notification types.
const (
	TypeError   = "error"
	TypeInfo    = "info"
	TypeSuccess = "success"
)

// GroupAuth marks authentication-related notifications so the front end can
// render them next to the login form.
const GroupAuth = "auth"

type Notification struct {
	Type  string
	Group string
	Text  string
}

// Notifier receives user-visible notifications.
type Notifier interface {
	Notify(n Notification)
}

// Console writes notifications as plain lines, one per notification.
type Console struct {
	mu  sync.Mutex
	w   io.Writer
	log logging.Logger
}

func NewConsole(w io.Writer, log logging.Logger) *Console {
	return &Console{w: w, log: log}
}

func (c *Console) Notify(n Notification) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, err := fmt.Fprintf(c.w, "[%s] %s\n", n.Type, n.Text); err != nil {
		c.log.Warn(context.Background(), "dropping notification", "error", err)
	}
}
