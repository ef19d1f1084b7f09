package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/konarr/konarr-go/internal/client/nav"
	"github.com/konarr/konarr-go/internal/client/notify"
	"github.com/konarr/konarr-go/internal/common"
	"github.com/konarr/konarr-go/internal/logging"
)

// Interceptor centralizes failure classification for every store. It must
// behave identically no matter which store routes an error through it.
type Interceptor struct {
	nav      nav.Navigator
	notifier notify.Notifier
	log      logging.Logger
}

func NewInterceptor(navigator nav.Navigator, notifier notify.Notifier, log logging.Logger) *Interceptor {
	return &Interceptor{nav: navigator, notifier: notifier, log: log}
}

// Handle classifies err and fires the cross-cutting side effects:
//
//   - network failure: generic notification, never retried
//   - 401: swallowed on the public landing page; navigate to Login from any
//     other view; a re-auth notification when already on Login (no redirect
//     loops)
//   - structured server error: its message (plus details) verbatim
//   - anything else: logged and reported as unexpected
//
// The return value reports whether the 401 path was taken, so callers can
// skip any further handling of their own.
func (i *Interceptor) Handle(err error) bool {
	if err == nil {
		return false
	}

	if errors.Is(err, common.ErrNetwork) {
		i.notifier.Notify(notify.Notification{
			Type: notify.TypeError,
			Text: "Network error has occurred, please check server settings.",
		})
		return false
	}

	var apiErr *APIError
	if errors.As(err, &apiErr) {
		if apiErr.Status == http.StatusUnauthorized {
			i.handleUnauthorized()
			return true
		}
		i.notifier.Notify(notify.Notification{
			Type: notify.TypeError,
			Text: apiErr.UserMessage(),
		})
		return false
	}

	i.log.Error(context.Background(), "unknown error occurred", "error", err)
	i.notifier.Notify(notify.Notification{
		Type: notify.TypeError,
		Text: "An unexpected error has occurred.",
	})
	return false
}

func (i *Interceptor) handleUnauthorized() {
	switch current := i.nav.Current().Name; {
	case current == nav.RouteHome:
		// Anonymous browsing of the landing page is a valid state.
	case current != nav.RouteLogin:
		i.nav.Push(nav.Route{Name: nav.RouteLogin, Path: "/login"})
	default:
		i.notifier.Notify(notify.Notification{
			Type:  notify.TypeError,
			Group: notify.GroupAuth,
			Text:  "Authentication error has occurred, please login again.",
		})
	}
}
