package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
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
	ForgotPassword(ctx context.Context) error
	ResetPassword(ctx context.Context, query string) error
	Profile(ctx context.Context) error
	Avatar(ctx context.Context, path string) error
	WhoAmI(ctx context.Context) error
	Toasts(ctx context.Context) error
	Dismiss(ctx context.Context, id string) error
	Logout(ctx context.Context) error
}

// runREPL reads commands from reader until EOF, "exit" or "quit", or until
// ctx is cancelled between commands.
//
// Not logged in:
//
//	help, register, login, forgot, reset <query>, toasts, dismiss <id>, exit
//
// Logged in:
//
//	help, profile, avatar <file>, whoami, toasts, dismiss <id>, logout, exit
//
// Handler errors are printed and the loop goes on.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		if ctx.Err() != nil {
			return
		}
		printlnFn(fmt.Sprintf("gobarber %s > ", statusFn()))

		line, err := reader.ReadString('\n')
		if err != nil && (!errors.Is(err, io.EOF) || line == "") {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		var cmdErr error
		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: profile, avatar <file>, whoami, toasts, dismiss <id>, logout, exit")
			} else {
				printlnFn("Available commands: register, login, forgot, reset <query>, toasts, dismiss <id>, exit")
			}

		case "register":
			cmdErr = a.Register(ctx)

		case "login":
			cmdErr = a.Login(ctx)

		case "forgot":
			cmdErr = a.ForgotPassword(ctx)

		case "reset":
			query := ""
			if len(args) > 0 {
				query = args[0]
			}
			cmdErr = a.ResetPassword(ctx, query)

		case "profile":
			cmdErr = a.Profile(ctx)

		case "avatar":
			if len(args) == 0 {
				printlnFn("Usage: avatar <file>")
				continue
			}
			cmdErr = a.Avatar(ctx, args[0])

		case "whoami":
			cmdErr = a.WhoAmI(ctx)

		case "toasts":
			cmdErr = a.Toasts(ctx)

		case "dismiss":
			if len(args) == 0 {
				printlnFn("Usage: dismiss <id>")
				continue
			}
			cmdErr = a.Dismiss(ctx, args[0])

		case "logout":
			cmdErr = a.Logout(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}

		if cmdErr != nil {
			printlnFn("error:", cmdErr)
		}
		if err != nil {
			return
		}
	}
}
