package cli

import (
	"context"
	"fmt"
	"log"
)

func (a *App) getStatus() string {
	s := a.router.Current()
	if u := a.session.User(); u.Name != "" {
		s = u.Name + " " + s
	}
	return fmt.Sprintf("(%s)", s)
}

// Root prints the welcome line and runs the REPL on the app's input.
func (a *App) Root(ctx context.Context) {
	log.Println("Welcome to GoBarber CLI (type 'help' for commands)")
	if a.isLoggedIn() {
		log.Printf("Welcome back, %s", a.session.User().Name)
	}
	runREPL(ctx, a, a.getStatus, a.reader)
}

// Toasts lists the notifications that have not expired yet.
func (a *App) Toasts(_ context.Context) error {
	a.printer.all(a.out)
	return nil
}

// Dismiss removes a notification before it expires.
func (a *App) Dismiss(_ context.Context, id string) error {
	a.toasts.Remove(id)
	return nil
}
