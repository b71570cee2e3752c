package services

import (
	"context"
	"time"

	"github.com/dmitrijs2005/expensetracker/internal/client/client"
	"github.com/dmitrijs2005/expensetracker/internal/client/notify"
	"github.com/dmitrijs2005/expensetracker/internal/client/state"
	"github.com/dmitrijs2005/expensetracker/internal/logging"
)

type Deps struct {
	API       client.Client
	Sessions  SessionStore
	Confirmer Confirmer
	Logger    logging.Logger
	// NotificationDelay defaults to notify.DefaultDelay.
	NotificationDelay time.Duration
	Now               func() time.Time
}

type Controller struct {
	Session    *SessionManager
	Categories *CategorySync
	Expenses   *ExpenseSync
	Reports    *ReportSync

	core   *core
	center *notify.Center
}

func NewController(d Deps) *Controller {
	if d.Logger == nil {
		d.Logger = logging.Discard()
	}
	if d.Now == nil {
		d.Now = time.Now
	}

	center := notify.NewCenter(d.NotificationDelay)
	c := &core{
		api:      d.API,
		store:    state.NewStore(),
		notifier: center,
		confirm:  d.Confirmer,
		log:      d.Logger.With("component", "controller"),
		now:      d.Now,
	}

	ctrl := &Controller{
		Categories: &CategorySync{core: c},
		Expenses:   &ExpenseSync{core: c},
		Reports:    &ReportSync{core: c},
		core:       c,
		center:     center,
	}
	ctrl.Session = &SessionManager{core: c, sessions: d.Sessions, refresh: ctrl.Refresh}

	drafts := c.emptyDrafts()
	c.store.Update(func(s *state.Snapshot) { s.Drafts = drafts })
	return ctrl
}

func (c *Controller) Store() *state.Store {
	return c.core.store
}

func (c *Controller) Notifications() *notify.Center {
	return c.center
}

// Init restores the persisted session.
func (c *Controller) Init(ctx context.Context) {
	c.Session.RestoreSession(ctx)
}

// Refresh reloads categories, then expenses. Failures are logged only.
func (c *Controller) Refresh(ctx context.Context) {
	_ = c.Categories.Load(ctx)
	_ = c.Expenses.Load(ctx)
}

// UpdateDrafts lets the presentation layer record in-progress form input.
func (c *Controller) UpdateDrafts(fn func(*state.Drafts)) {
	c.core.store.Update(func(s *state.Snapshot) { fn(&s.Drafts) })
}

// Teardown stops the notification timer and releases the API client.
func (c *Controller) Teardown(ctx context.Context) error {
	c.center.Close()
	if err := c.core.api.Close(); err != nil {
		c.core.log.Warn(ctx, "closing api client", "error", err)
		return err
	}
	return nil
}
