package services

import (
	"context"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/dmitrijs2005/expensetracker/internal/client/client"
	"github.com/dmitrijs2005/expensetracker/internal/client/models"
	"github.com/dmitrijs2005/expensetracker/internal/client/notify"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"
)

// fakeClient implements client.Client and records every call in order.
type fakeClient struct {
	mu    sync.Mutex
	calls []string

	RegisterErr error

	LoginUser *models.User
	LoginErr  error

	Categories    []models.Category
	ListCatErr    error
	ListCatGate   chan struct{}
	RenameCatErr  error
	CreateCatErr  error
	CreateCatGate chan struct{}
	DeleteCatRes  *models.DeleteResult
	DeleteCatErr  error

	Expenses      []models.Expense
	ListExpErr    error
	CreateExpErr  error
	UpdateExpErr  error
	DeleteExpErr  error
	SummaryRet    map[string]decimal.Decimal
	MonthlyRet    []models.Expense
	TotalRet      decimal.Decimal
	ReportErr     error
	CloseErr      error
	LastUserEmail string
	LastExpense   models.NewExpense
	LastUserID    int64
	LastID        int64
	LastName      string
}

var _ client.Client = (*fakeClient)(nil)

func (f *fakeClient) record(call string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, call)
}

func (f *fakeClient) Calls() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.calls...)
}

func (f *fakeClient) count(call string) int {
	n := 0
	for _, c := range f.Calls() {
		if c == call {
			n++
		}
	}
	return n
}

func (f *fakeClient) Close() error { f.record("Close"); return f.CloseErr }

func (f *fakeClient) Register(ctx context.Context, name, email string) error {
	f.record("Register")
	return f.RegisterErr
}

func (f *fakeClient) Login(ctx context.Context, email, name string) (*models.User, error) {
	f.record("Login")
	if f.LoginErr != nil {
		return nil, f.LoginErr
	}
	return f.LoginUser, nil
}

// ListCategories answers with the list as it was when the call arrived. A
// set ListCatGate holds only the next call until the gate is closed.
func (f *fakeClient) ListCategories(ctx context.Context) ([]models.Category, error) {
	f.mu.Lock()
	cats, gate := f.Categories, f.ListCatGate
	f.ListCatGate = nil
	f.mu.Unlock()

	f.record("ListCategories")
	if gate != nil {
		<-gate
	}
	return cats, f.ListCatErr
}

func (f *fakeClient) setCategories(cats []models.Category) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Categories = cats
}

func (f *fakeClient) RenameCategory(ctx context.Context, id int64, name string) error {
	f.record("RenameCategory")
	f.mu.Lock()
	f.LastID, f.LastName = id, name
	f.mu.Unlock()
	return f.RenameCatErr
}

func (f *fakeClient) CreateCategory(ctx context.Context, name string) error {
	f.record("CreateCategory")
	if f.CreateCatGate != nil {
		<-f.CreateCatGate
	}
	return f.CreateCatErr
}

func (f *fakeClient) DeleteCategory(ctx context.Context, id int64, userEmail string) (*models.DeleteResult, error) {
	f.record("DeleteCategory")
	f.mu.Lock()
	f.LastUserEmail = userEmail
	f.mu.Unlock()
	if f.DeleteCatErr != nil {
		return nil, f.DeleteCatErr
	}
	return f.DeleteCatRes, nil
}

func (f *fakeClient) ListExpenses(ctx context.Context, userID int64) ([]models.Expense, error) {
	f.record("ListExpenses")
	return f.Expenses, f.ListExpErr
}

func (f *fakeClient) CreateExpense(ctx context.Context, userID int64, e models.NewExpense) error {
	f.record("CreateExpense")
	f.mu.Lock()
	f.LastExpense = e
	f.LastUserID = userID
	f.mu.Unlock()
	return f.CreateExpErr
}

func (f *fakeClient) UpdateExpense(ctx context.Context, id, userID int64, e models.NewExpense) error {
	f.record("UpdateExpense")
	f.mu.Lock()
	f.LastID, f.LastUserID, f.LastExpense = id, userID, e
	f.mu.Unlock()
	return f.UpdateExpErr
}

func (f *fakeClient) DeleteExpense(ctx context.Context, id int64) error {
	f.record("DeleteExpense")
	return f.DeleteExpErr
}

func (f *fakeClient) MonthlySummary(ctx context.Context, userID int64, year int, month time.Month) (map[string]decimal.Decimal, error) {
	f.record("MonthlySummary")
	return f.SummaryRet, f.ReportErr
}

func (f *fakeClient) MonthlyTotal(ctx context.Context, userID int64, year int, month time.Month) (decimal.Decimal, error) {
	f.record("MonthlyTotal")
	return f.TotalRet, f.ReportErr
}

func (f *fakeClient) MonthlyExpenses(ctx context.Context, userID int64, year int, month time.Month) ([]models.Expense, error) {
	f.record("MonthlyExpenses")
	return f.MonthlyRet, f.ReportErr
}

// memSessions is an in-memory SessionStore.
type memSessions struct {
	user    *models.User
	loadErr error
	cleared int
}

func (m *memSessions) Load(context.Context) (*models.User, error) {
	return m.user, m.loadErr
}

func (m *memSessions) Save(_ context.Context, u *models.User) error {
	m.user = u
	return nil
}

func (m *memSessions) Clear(context.Context) error {
	m.user = nil
	m.cleared++
	return nil
}

type notes struct {
	mu   sync.Mutex
	msgs []notify.Message
}

func (n *notes) all() []notify.Message {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]notify.Message(nil), n.msgs...)
}

func (n *notes) last() notify.Message {
	all := n.all()
	if len(all) == 0 {
		return notify.Message{}
	}
	return all[len(all)-1]
}

var (
	admin    = &models.User{ID: 1, Name: "Root", Email: "root@x.com", Admin: true}
	regular  = &models.User{ID: 2, Name: "A", Email: "a@x.com"}
	fixedNow = func() time.Time { return time.Date(2024, time.March, 5, 10, 0, 0, 0, time.UTC) }
)

type harness struct {
	ctrl     *Controller
	api      *fakeClient
	sessions SessionStore
	notes    *notes
	confirms []string
}

type option func(*Deps)

func withSessions(s SessionStore) option { return func(d *Deps) { d.Sessions = s } }

func withConfirm(answer bool) option {
	return func(d *Deps) {
		d.Confirmer = ConfirmFunc(func(context.Context, string) bool { return answer })
	}
}

func newHarness(t *testing.T, api *fakeClient, opts ...option) *harness {
	t.Helper()
	h := &harness{api: api, notes: &notes{}}
	d := Deps{
		API:               api,
		Sessions:          &memSessions{},
		NotificationDelay: time.Hour,
		Now:               fixedNow,
	}
	d.Confirmer = ConfirmFunc(func(_ context.Context, prompt string) bool {
		h.confirms = append(h.confirms, prompt)
		return true
	})
	for _, o := range opts {
		o(&d)
	}
	h.sessions = d.Sessions
	h.ctrl = NewController(d)
	h.ctrl.Notifications().OnChange(func(m notify.Message) {
		if !m.Visible {
			return
		}
		h.notes.mu.Lock()
		h.notes.msgs = append(h.notes.msgs, m)
		h.notes.mu.Unlock()
	})
	t.Cleanup(func() { _ = h.ctrl.Teardown(context.Background()) })
	return h
}

// loggedIn puts u into the store as if a session were active.
func (h *harness) loggedIn(t *testing.T, u *models.User) {
	t.Helper()
	h.api.LoginUser = u
	require.NoError(t, h.ctrl.Session.Login(context.Background(), u.Email, u.Name))
	h.api.mu.Lock()
	h.api.calls = nil
	h.api.mu.Unlock()
	h.notes.mu.Lock()
	h.notes.msgs = nil
	h.notes.mu.Unlock()
}

func openSessionStore(t *testing.T, path string) SessionStore {
	t.Helper()
	db, err := client.InitDatabase(context.Background(), path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return NewSessionStore(db)
}

func tempDBPath(t *testing.T) string {
	return filepath.Join(t.TempDir(), "client.db")
}
