package services

import (
	"context"
	"errors"
	"testing"

	"github.com/dmitrijs2005/expensetracker/internal/client/models"
	"github.com/dmitrijs2005/expensetracker/internal/client/notify"
	"github.com/dmitrijs2005/expensetracker/internal/client/state"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewController_InitialState(t *testing.T) {
	h := newHarness(t, &fakeClient{})

	snap := h.ctrl.Store().Snapshot()
	assert.Equal(t, state.ViewLogin, snap.View)
	assert.Equal(t, "2024-03-05", snap.Drafts.Expense.Date)
	assert.False(t, h.ctrl.Notifications().Current().Visible)
}

func TestSubscribersSeeUpdates(t *testing.T) {
	api := &fakeClient{Categories: []models.Category{{ID: 1, Name: "Food"}}}
	h := newHarness(t, api)

	var views []state.View
	unsub := h.ctrl.Store().Subscribe(func(s state.Snapshot) { views = append(views, s.View) })
	defer unsub()

	h.loggedIn(t, regular)
	require.NotEmpty(t, views)
	assert.Equal(t, state.ViewApp, views[len(views)-1])
}

func TestTeardown(t *testing.T) {
	api := &fakeClient{CloseErr: errors.New("closed")}
	ctrl := NewController(Deps{API: api, Sessions: &memSessions{}})

	err := ctrl.Teardown(context.Background())
	require.Error(t, err)
	assert.Equal(t, []string{"Close"}, api.Calls())

	// notifications after teardown are dropped
	ctrl.Notifications().Notify("late", notify.KindSuccess)
	assert.Empty(t, ctrl.Notifications().Current().Text)
}

func TestNilConfirmerDeclines(t *testing.T) {
	api := &fakeClient{LoginUser: admin}
	ctrl := NewController(Deps{API: api, Sessions: &memSessions{}})
	t.Cleanup(func() { api.CloseErr = nil; _ = ctrl.Teardown(context.Background()) })

	require.NoError(t, ctrl.Session.Login(context.Background(), admin.Email, admin.Name))
	require.ErrorIs(t, ctrl.Categories.Delete(context.Background(), 1), ErrCanceled)
}
