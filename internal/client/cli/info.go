package cli

import (
	"context"
	"fmt"
)

// Info refreshes and prints the server/session summary.
func (a *App) Info(ctx context.Context) error {
	if err := a.server.FetchInfo(ctx); err != nil {
		return err
	}

	info := a.server.Info()
	version := info.Version
	if info.Commit != "" {
		version += " (" + info.Commit + ")"
	}
	printlnFn("Konarr server", version)

	if info.User == nil {
		printlnFn("Not logged in.")
		return nil
	}
	printlnFn("Logged in as", info.User.Username)

	if info.Projects != nil {
		printlnFn(fmt.Sprintf("Projects: %d total, %d containers, %d servers",
			info.Projects.Total, info.Projects.Containers, info.Projects.Servers))
	}
	if info.Dependencies != nil {
		printlnFn(fmt.Sprintf("Dependencies: %d total", info.Dependencies.Total))
	}
	if info.Security != nil {
		printlnFn("Security:", severityLine(*info.Security))
	}
	return nil
}
