package cli

import (
	"context"

	"github.com/konarr/konarr-go/internal/client/models"
	"github.com/konarr/konarr-go/internal/client/nav"
)

func isSeverity(s string) bool {
	switch s {
	case models.SeverityCritical, models.SeverityHigh, models.SeverityMedium, models.SeverityLow:
		return true
	}
	return false
}

// Alerts lists one page of security alerts. An optional severity argument
// (critical, high, medium, low) filters the list.
func (a *App) Alerts(ctx context.Context, args []string) error {
	q := nav.ListQuery{Limit: a.config.PageLimit}
	if len(args) > 0 {
		if !isSeverity(args[0]) {
			printlnFn("Usage: alerts [critical|high|medium|low]")
			return nil
		}
		q.Severity = args[0]
	}

	if err := a.security.Fetch(ctx, q); err != nil {
		return err
	}
	a.showAlerts()
	a.setPager(a.security, a.showAlerts)
	return nil
}

func (a *App) showAlerts() {
	v := a.security.View()
	for _, alert := range v.Data {
		printlnFn(alertLine(alert))
	}
	pageFooter(v)
}

// Alert shows a single security alert, served from the cache when possible.
func (a *App) Alert(ctx context.Context, args []string) error {
	id, ok := parseID(args, "alert <id>")
	if !ok {
		return nil
	}
	if err := a.security.GetOrFetch(ctx, id); err != nil {
		return err
	}

	v := a.security.View()
	for _, alert := range v.Data {
		if alert.ID != v.Current {
			continue
		}
		printlnFn(alertLine(alert))
		printlnFn(alertRange(alert))
		if alert.Description != "" {
			printlnFn(alert.Description)
		}
		if alert.Advisory != "" {
			printlnFn("advisory:", alert.Advisory)
		}
	}
	return nil
}
