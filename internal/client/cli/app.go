package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/dmitrijs2005/gobarber/internal/client/client"
	"github.com/dmitrijs2005/gobarber/internal/client/config"
	"github.com/dmitrijs2005/gobarber/internal/client/forms"
	"github.com/dmitrijs2005/gobarber/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/gobarber/internal/client/session"
	"github.com/dmitrijs2005/gobarber/internal/client/toast"
	"github.com/dmitrijs2005/gobarber/internal/filex"
	"github.com/dmitrijs2005/gobarber/internal/logging"
)

type App struct {
	config  *config.Config
	log     logging.Logger
	db      *sql.DB
	api     client.Client
	session *session.Store
	toasts  *toast.Queue
	printer *toastPrinter
	router  *Router
	reader  *bufio.Reader
	out     io.Writer
}

// NewApp opens the session database under cfg.DataDir, rehydrates the
// session and connects the forms to the API at cfg.ServerURL.
func NewApp(ctx context.Context, c *config.Config, logger logging.Logger) (*App, error) {
	dir, err := filex.EnsureDir(c.DataDir)
	if err != nil {
		return nil, err
	}

	db, err := client.InitDatabase(ctx, filepath.Join(dir, config.DatabaseFile))
	if err != nil {
		return nil, fmt.Errorf("error initializing database: %w", err)
	}

	api, err := client.NewHTTPClient(c.ServerURL, c.RequestTimeout)
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	store := session.New(ctx, metadata.NewSQLiteRepository(db), api, logger)
	api.UseTokenSource(store)

	start := forms.RouteSignIn
	if store.IsAuthenticated() {
		start = forms.RouteDashboard
	}

	queue := toast.NewQueue()
	return &App{
		config:  c,
		log:     logger,
		db:      db,
		api:     api,
		session: store,
		toasts:  queue,
		printer: newToastPrinter(queue),
		router:  NewRouter(os.Stdout, start),
		reader:  bufio.NewReader(os.Stdin),
		out:     os.Stdout,
	}, nil
}

// Run blocks in the REPL until the user exits, then releases resources.
func (a *App) Run(ctx context.Context) {
	defer a.Close()
	a.Root(ctx)
}

// Close stops pending toast timers and closes the database.
func (a *App) Close() {
	a.toasts.Close()
	if a.db != nil {
		_ = a.db.Close()
	}
}

func (a *App) isLoggedIn() bool {
	return a.session.IsAuthenticated()
}

func (a *App) deps() forms.Deps {
	return forms.Deps{
		API:       a.api,
		Session:   a.session,
		Notifier:  a.toasts,
		Navigator: a.router,
		Log:       a.log,
	}
}

// report prints the field errors of a rejected submission and any new
// toasts.
func (a *App) report(form *forms.Controller, out forms.Outcome) {
	switch out {
	case forms.OutcomeValidationFailed:
		fmt.Fprintln(a.out, "Please fix the following:")
		printFieldErrors(a.out, form.Errors())
	case forms.OutcomeBusy:
		fmt.Fprintln(a.out, "Still working on the previous request")
	}
	a.printer.flush(a.out)
}
