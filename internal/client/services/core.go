package services

import (
	"context"
	"errors"
	"sync/atomic"
	"time"

	"github.com/dmitrijs2005/expensetracker/internal/client/client"
	"github.com/dmitrijs2005/expensetracker/internal/client/models"
	"github.com/dmitrijs2005/expensetracker/internal/client/notify"
	"github.com/dmitrijs2005/expensetracker/internal/client/state"
	"github.com/dmitrijs2005/expensetracker/internal/logging"
	"golang.org/x/sync/singleflight"
)

// core is the state shared by the sync components of one Controller.
type core struct {
	api      client.Client
	store    *state.Store
	notifier notify.Notifier
	confirm  Confirmer
	log      logging.Logger
	now      func() time.Time
	flight   singleflight.Group

	// categoryLoads and expenseLoads number started list requests. Only the
	// most recently started request may write its result to the store.
	categoryLoads atomic.Uint64
	expenseLoads  atomic.Uint64
}

// once runs fn, joining an identical call that is already in flight.
func (c *core) once(key string, fn func() error) error {
	_, err, _ := c.flight.Do(key, func() (any, error) {
		return nil, fn()
	})
	return err
}

// forget detaches key from any call in flight, so the next once(key)
// issues a fresh request instead of joining one started before a write.
func (c *core) forget(key string) {
	c.flight.Forget(key)
}

func (c *core) success(text string) {
	c.notifier.Notify(text, notify.KindSuccess)
}

func (c *core) fail(text string) {
	c.notifier.Notify(text, notify.KindError)
}

// failure picks the text for a failed call whose endpoint reports errors
// as {"message": ...}.
func failure(err error, fallback string) string {
	if errors.Is(err, client.ErrUnavailable) {
		return MsgNetworkError
	}
	if msg, ok := client.ServerMessage(err); ok {
		return msg
	}
	return fallback
}

// genericFailure never surfaces the server message.
func genericFailure(err error, fallback string) string {
	if errors.Is(err, client.ErrUnavailable) {
		return MsgNetworkError
	}
	return fallback
}

func (c *core) user() *models.User {
	return c.store.Snapshot().User
}

// requireUser returns the current user. Without a session it notifies
// MsgLoginFirst and returns ErrNotLoggedIn.
func (c *core) requireUser() (*models.User, error) {
	u := c.user()
	if u == nil {
		c.fail(MsgLoginFirst)
		return nil, ErrNotLoggedIn
	}
	return u, nil
}

func (c *core) confirmed(ctx context.Context, prompt string) bool {
	if c.confirm == nil {
		return false
	}
	return c.confirm.Confirm(ctx, prompt)
}

func (c *core) today() string {
	return models.NewDate(c.now().Date()).String()
}

func (c *core) emptyDrafts() state.Drafts {
	return state.Drafts{Expense: models.NewExpense{Date: c.today()}}
}
