// Package cli provides the interactive Konarr command-line client.
//
// It wires configuration, the HTTP API client, the entity stores, and an
// interactive REPL. Typical flow: fetch the server info (which may redirect
// an anonymous user to registration or login), then execute user commands
// against the stores.
//
// Key features:
//   - Login / Register / Logout against the session API
//   - Browse projects, dependencies and security alerts with pagination
//   - Create, edit and delete projects
//   - Upload SBOM files into project snapshots
//   - Instance administration: settings, user roles, sessions
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
// See App and runREPL for details.
package cli
