package cli

import (
	"context"
	"fmt"
)

// Sessions lists the account's active sessions.
func (a *App) Sessions(ctx context.Context) error {
	sessions, err := a.users.Sessions(ctx)
	if err != nil {
		return err
	}
	for _, s := range sessions {
		line := fmt.Sprintf("#%-4d created %s", s.ID, s.CreatedAt)
		if s.LastAccessed != "" {
			line += ", last used " + s.LastAccessed
		}
		if s.State != "" {
			line += " [" + s.State + "]"
		}
		printlnFn(line)
	}
	return nil
}

// Revoke ends one session by id and reprints the remaining ones.
func (a *App) Revoke(ctx context.Context, args []string) error {
	id, ok := parseID(args, "revoke <id>")
	if !ok {
		return nil
	}
	if err := a.users.RevokeSession(ctx, id); err != nil {
		return err
	}
	printlnFn("Session revoked.")
	return nil
}
