package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/dmitrijs2005/expensetracker/internal/client/client"
	"github.com/dmitrijs2005/expensetracker/internal/client/config"
	"github.com/dmitrijs2005/expensetracker/internal/client/export"
	"github.com/dmitrijs2005/expensetracker/internal/client/notify"
	"github.com/dmitrijs2005/expensetracker/internal/client/services"
	"github.com/dmitrijs2005/expensetracker/internal/client/state"
	"github.com/dmitrijs2005/expensetracker/internal/filex"
	"github.com/dmitrijs2005/expensetracker/internal/logging"
	"github.com/google/go-cmp/cmp"

	_ "modernc.org/sqlite"
)

type App struct {
	config   *config.Config
	log      logging.Logger
	db       *sql.DB
	ctrl     *services.Controller
	exporter *export.Exporter

	reader      *bufio.Reader
	out         io.Writer
	interactive bool

	mu          sync.Mutex
	last        state.Snapshot
	rendered    map[string]int
	unsubscribe func()
}

type Option func(*App)

// WithIO replaces stdin/stdout. interactive tells whether confirmation
// prompts may be asked on in.
func WithIO(in io.Reader, out io.Writer, interactive bool) Option {
	return func(a *App) {
		a.reader = bufio.NewReader(in)
		a.out = out
		a.interactive = interactive
	}
}

// NewApp opens the local database and builds the controller.
func NewApp(ctx context.Context, c *config.Config, log logging.Logger, opts ...Option) (*App, error) {
	a := &App{
		config:      c,
		log:         log,
		reader:      bufio.NewReader(os.Stdin),
		out:         os.Stdout,
		interactive: isTerminal(int(os.Stdin.Fd())),
		rendered:    make(map[string]int),
	}
	for _, opt := range opts {
		opt(a)
	}
	a.out = &lockedWriter{w: a.out}

	dbPath, err := filex.EnsureParentDir(c.DatabasePath)
	if err != nil {
		return nil, err
	}
	db, err := client.InitDatabase(ctx, dbPath)
	if err != nil {
		log.Error(ctx, "initializing database", "path", dbPath, "error", err)
		return nil, err
	}
	a.db = db

	api := client.NewHTTPClient(c.ServerBaseURL,
		client.WithTimeout(c.RequestTimeout),
		client.WithLogger(log.With("component", "http")),
	)

	a.ctrl = services.NewController(services.Deps{
		API:      api,
		Sessions: services.NewSessionStore(db),
		Confirmer: &promptConfirmer{
			reader:      a.reader,
			w:           a.out,
			assumeYes:   c.AssumeYes,
			interactive: a.interactive,
		},
		Logger:            log,
		NotificationDelay: c.NotificationDelay,
	})

	a.exporter = export.New(export.S3Config{
		Region:    c.S3Region,
		Endpoint:  c.S3Endpoint,
		AccessKey: c.S3AccessKey,
		SecretKey: c.S3SecretKey,
	}, log.With("component", "export"))

	return a, nil
}

// Run restores the session and blocks in the REPL until exit or EOF.
func (a *App) Run(ctx context.Context) error {
	a.last = a.ctrl.Store().Snapshot()
	a.unsubscribe = a.ctrl.Store().Subscribe(a.onSnapshot)
	a.ctrl.Notifications().OnChange(a.onNotification)

	fmt.Fprintln(a.out, "Expense tracker (type 'help' for commands)")
	a.ctrl.Init(ctx)

	runREPL(ctx, a, a.status, a.reader, a.out)

	return a.Close(ctx)
}

func (a *App) Close(ctx context.Context) error {
	if a.unsubscribe != nil {
		a.unsubscribe()
	}
	err := a.ctrl.Teardown(ctx)
	if cerr := a.db.Close(); cerr != nil && err == nil {
		err = cerr
	}
	return err
}

func (a *App) isLoggedIn() bool {
	return a.ctrl.Store().Snapshot().LoggedIn()
}

func (a *App) status() string {
	return status(a.ctrl.Store().Snapshot())
}

// onSnapshot renders what changed since the previously seen snapshot. Lists
// are redrawn after every successful load, even an unchanged or empty one.
// Snapshots delivered out of order are ignored.
func (a *App) onSnapshot(s state.Snapshot) {
	a.mu.Lock()
	prev := a.last
	if s.Version <= prev.Version {
		a.mu.Unlock()
		return
	}
	a.last = s
	a.mu.Unlock()

	if s.View == state.ViewApp && (prev.View != state.ViewApp || !cmp.Equal(prev.User, s.User)) {
		renderWelcome(a.out, s)
	}
	if !s.LoggedIn() {
		return
	}
	if s.CategoriesGen != prev.CategoriesGen {
		a.render("categories", func() { renderCategories(a.out, s) })
	}
	if s.ExpensesGen != prev.ExpensesGen {
		a.render("expenses", func() { renderExpenses(a.out, s) })
	}
}

func (a *App) onNotification(m notify.Message) {
	if !m.Visible {
		return
	}
	tag := "ok"
	if m.Kind == notify.KindError {
		tag = "error"
	}
	fmt.Fprintf(a.out, "[%s] %s\n", tag, m.Text)
}

func (a *App) render(kind string, fn func()) {
	a.mu.Lock()
	a.rendered[kind]++
	a.mu.Unlock()
	fn()
}

func (a *App) renderCount(kind string) int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.rendered[kind]
}

type lockedWriter struct {
	mu sync.Mutex
	w  io.Writer
}

func (l *lockedWriter) Write(p []byte) (int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.w.Write(p)
}
