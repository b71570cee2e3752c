// Package state holds the client's in-memory view of session and domain
// data. A Store publishes immutable Snapshot values; the presentation layer
// subscribes to them and never mutates state directly.
package state

import (
	"slices"
	"sync"

	"github.com/dmitrijs2005/expensetracker/internal/client/models"
	"github.com/shopspring/decimal"
)

type View int

const (
	ViewLogin View = iota
	ViewRegister
	ViewApp
)

func (v View) String() string {
	switch v {
	case ViewLogin:
		return "login"
	case ViewRegister:
		return "register"
	case ViewApp:
		return "app"
	default:
		return "unknown"
	}
}

type RegisterDraft struct {
	Name  string
	Email string
}

type LoginDraft struct {
	Email string
	Name  string
}

// Drafts are the in-progress form values. They are cleared after a
// successful submission.
type Drafts struct {
	Register RegisterDraft
	Login    LoginDraft
	Category string
	Expense  models.NewExpense
}

type Snapshot struct {
	// Version is assigned by the Store and grows with every Update.
	Version uint64

	View       View
	User       *models.User
	Categories []models.Category
	Expenses   []models.Expense
	Drafts     Drafts

	// CategoriesGen and ExpensesGen count successful loads, so a reload
	// that returns an unchanged (or empty) list is still observable.
	CategoriesGen uint64
	ExpensesGen   uint64
}

func (s Snapshot) LoggedIn() bool {
	return s.User != nil
}

func (s Snapshot) IsAdmin() bool {
	return s.User != nil && s.User.Admin
}

// Total is recomputed from the cached expenses on every call.
func (s Snapshot) Total() decimal.Decimal {
	return models.Total(s.Expenses)
}

func (s Snapshot) clone() Snapshot {
	out := s
	if s.User != nil {
		u := *s.User
		out.User = &u
	}
	out.Categories = slices.Clone(s.Categories)
	out.Expenses = slices.Clone(s.Expenses)
	return out
}

type Store struct {
	mu     sync.RWMutex
	snap   Snapshot
	subs   map[int]func(Snapshot)
	nextID int
}

func NewStore() *Store {
	return &Store{
		snap: Snapshot{View: ViewLogin},
		subs: make(map[int]func(Snapshot)),
	}
}

// Snapshot returns a copy of the current state.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snap.clone()
}

// Update applies fn to a working copy of the state, stores the result and
// notifies subscribers outside the lock. Concurrent updates may reach a
// subscriber out of order; a subscriber that cares drops snapshots whose
// Version is not newer than the last one it saw.
func (s *Store) Update(fn func(*Snapshot)) {
	s.mu.Lock()
	next := s.snap.clone()
	fn(&next)
	next.Version = s.snap.Version + 1
	s.snap = next

	subs := make([]func(Snapshot), 0, len(s.subs))
	for _, id := range s.sortedIDs() {
		subs = append(subs, s.subs[id])
	}
	s.mu.Unlock()

	for _, fn := range subs {
		fn(next.clone())
	}
}

// Subscribe registers fn for every future update and returns a function
// that removes it.
func (s *Store) Subscribe(fn func(Snapshot)) (unsubscribe func()) {
	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.subs[id] = fn
	s.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			s.mu.Lock()
			delete(s.subs, id)
			s.mu.Unlock()
		})
	}
}

func (s *Store) sortedIDs() []int {
	ids := make([]int, 0, len(s.subs))
	for id := range s.subs {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}
