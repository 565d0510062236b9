// Package cli provides the interactive GoBarber command-line client.
//
// It wires configuration, the local session database, the API client and
// the form controllers, then runs a REPL. Each page of the web client is a
// command here: a command prompts for the form's fields, submits them and
// prints the resulting field errors, toasts and route changes.
//
// Commands:
//   - login, register, forgot, reset <link query>
//   - profile, avatar <file>, whoami, logout (signed in)
//   - toasts, dismiss <id>, help, exit
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
package cli
