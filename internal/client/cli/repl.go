package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	Whoami(ctx context.Context) error
	ChangePassword(ctx context.Context) error
	Info(ctx context.Context) error

	Projects(ctx context.Context, args []string) error
	Project(ctx context.Context, args []string) error
	CreateProject(ctx context.Context) error
	EditProject(ctx context.Context, args []string) error
	DeleteProject(ctx context.Context, args []string) error
	SearchProjects(ctx context.Context, args []string) error

	Dependencies(ctx context.Context, args []string) error
	Dependency(ctx context.Context, args []string) error

	Alerts(ctx context.Context, args []string) error
	Alert(ctx context.Context, args []string) error

	Snapshot(ctx context.Context, args []string) error
	Upload(ctx context.Context, args []string) error

	NextPage(ctx context.Context) error
	PrevPage(ctx context.Context) error

	Admin(ctx context.Context) error
	AdminUsers(ctx context.Context, args []string) error
	SetSetting(ctx context.Context, args []string) error
	SetUser(ctx context.Context, args []string) error

	Sessions(ctx context.Context) error
	Revoke(ctx context.Context, args []string) error
}

// runREPL starts a simple read–eval–print loop for the Konarr CLI.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// Any errors returned by command handlers are ignored here; handlers report
// their own errors (directly or through the notification pipeline). This
// keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("konarr %s> ", statusFn()))
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]
		args := parts[1:]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands:")
				printlnFn("  (p)rojects [page], project <id>, newproject, editproject <id>, delproject <id>, search <term>")
				printlnFn("  (d)eps [snapshot-id], dep <id>, alerts [severity], alert <id>")
				printlnFn("  snapshot <id>, upload <project-id> <file>, next, prev")
				printlnFn("  info, whoami, password, sessions, revoke <id>")
				printlnFn("  admin, users, set <name> <value>, setuser <id> role|state <value>")
				printlnFn("  logout, exit")
			} else {
				printlnFn("Available commands: register, login, info, exit")
			}

		case "register":
			_ = a.Register(ctx)

		case "login":
			_ = a.Login(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "whoami":
			_ = a.Whoami(ctx)

		case "password":
			_ = a.ChangePassword(ctx)

		case "info":
			_ = a.Info(ctx)

		case "p", "projects":
			_ = a.Projects(ctx, args)

		case "project":
			_ = a.Project(ctx, args)

		case "newproject":
			_ = a.CreateProject(ctx)

		case "editproject":
			_ = a.EditProject(ctx, args)

		case "delproject":
			_ = a.DeleteProject(ctx, args)

		case "search":
			_ = a.SearchProjects(ctx, args)

		case "d", "deps", "dependencies":
			_ = a.Dependencies(ctx, args)

		case "dep":
			_ = a.Dependency(ctx, args)

		case "alerts", "security":
			_ = a.Alerts(ctx, args)

		case "alert":
			_ = a.Alert(ctx, args)

		case "snapshot":
			_ = a.Snapshot(ctx, args)

		case "upload":
			_ = a.Upload(ctx, args)

		case "n", "next":
			_ = a.NextPage(ctx)

		case "prev":
			_ = a.PrevPage(ctx)

		case "admin":
			_ = a.Admin(ctx)

		case "users":
			_ = a.AdminUsers(ctx, args)

		case "set":
			_ = a.SetSetting(ctx, args)

		case "setuser":
			_ = a.SetUser(ctx, args)

		case "sessions":
			_ = a.Sessions(ctx)

		case "revoke":
			_ = a.Revoke(ctx, args)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
