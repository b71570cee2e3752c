package services

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/expensetracker/internal/client/state"
)

// SessionManager handles registration, login, logout and restoring the
// persisted session on startup.
type SessionManager struct {
	*core
	sessions SessionStore
	refresh  func(ctx context.Context)
}

// RestoreSession reads the persisted user. A missing, unreadable or
// malformed entry leaves the client logged out and is never reported.
func (m *SessionManager) RestoreSession(ctx context.Context) {
	u, err := m.sessions.Load(ctx)
	if err != nil {
		if errors.Is(err, ErrMalformedSession) {
			m.log.Warn(ctx, "discarding persisted session", "error", err)
		} else {
			m.log.Error(ctx, "reading persisted session", "error", err)
		}
		u = nil
	}

	if u == nil {
		m.store.Update(func(s *state.Snapshot) {
			s.User = nil
			s.View = state.ViewLogin
		})
		return
	}

	m.log.Info(ctx, "session restored", "user_id", u.ID)
	m.store.Update(func(s *state.Snapshot) {
		s.User = u
		s.View = state.ViewApp
	})
	m.refresh(ctx)
}

func (m *SessionManager) Register(ctx context.Context, name, email string) error {
	return m.once("register\x00"+name+"\x00"+email, func() error {
		if err := m.api.Register(ctx, name, email); err != nil {
			m.log.Warn(ctx, "registration failed", "error", err)
			m.fail(failure(err, MsgRegisterFailed))
			return err
		}

		m.success(MsgRegistered)
		m.store.Update(func(s *state.Snapshot) {
			s.View = state.ViewLogin
			s.Drafts.Register = state.RegisterDraft{}
		})
		return nil
	})
}

// Login authenticates, persists the user and then loads categories and
// expenses, in that order.
func (m *SessionManager) Login(ctx context.Context, email, name string) error {
	return m.once("login\x00"+email+"\x00"+name, func() error {
		u, err := m.api.Login(ctx, email, name)
		if err != nil {
			m.log.Warn(ctx, "login failed", "error", err)
			m.fail(failure(err, MsgLoginFailed))
			return err
		}

		if err := m.sessions.Save(ctx, u); err != nil {
			m.log.Error(ctx, "persisting session", "error", err)
		}

		m.store.Update(func(s *state.Snapshot) {
			s.User = u
			s.View = state.ViewApp
			s.Drafts.Login = state.LoginDraft{}
		})
		m.success(MsgLoggedIn)
		m.log.Info(ctx, "logged in", "user_id", u.ID)

		m.refresh(ctx)
		return nil
	})
}

// Logout is local only. The in-memory session is cleared even when the
// persisted entry could not be removed.
func (m *SessionManager) Logout(ctx context.Context) error {
	err := m.sessions.Clear(ctx)
	if err != nil {
		m.log.Error(ctx, "clearing persisted session", "error", err)
	}

	drafts := m.emptyDrafts()
	m.store.Update(func(s *state.Snapshot) {
		s.User = nil
		s.View = state.ViewLogin
		s.Categories = nil
		s.Expenses = nil
		s.Drafts = drafts
	})
	m.success(MsgLoggedOut)
	return err
}

func (m *SessionManager) ShowLogin() {
	m.store.Update(func(s *state.Snapshot) { s.View = state.ViewLogin })
}

func (m *SessionManager) ShowRegister() {
	m.store.Update(func(s *state.Snapshot) { s.View = state.ViewRegister })
}
