package cli

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakeExec struct {
	loggedIn bool

	calls []string
	args  [][]string
}

func (f *fakeExec) record(name string, args []string) error {
	f.calls = append(f.calls, name)
	f.args = append(f.args, args)
	return nil
}

func (f *fakeExec) isLoggedIn() bool { return f.loggedIn }
func (f *fakeExec) Register(ctx context.Context) error {
	return f.record("register", nil)
}
func (f *fakeExec) Login(ctx context.Context) error {
	f.loggedIn = true
	return f.record("login", nil)
}
func (f *fakeExec) Logout(ctx context.Context) error {
	f.loggedIn = false
	return f.record("logout", nil)
}
func (f *fakeExec) Categories(ctx context.Context) error  { return f.record("categories", nil) }
func (f *fakeExec) AddCategory(ctx context.Context) error { return f.record("addcategory", nil) }
func (f *fakeExec) DeleteCategory(ctx context.Context, args []string) error {
	return f.record("delcategory", args)
}
func (f *fakeExec) Expenses(ctx context.Context) error   { return f.record("expenses", nil) }
func (f *fakeExec) AddExpense(ctx context.Context) error { return f.record("addexpense", nil) }
func (f *fakeExec) DeleteExpense(ctx context.Context, args []string) error {
	return f.record("delexpense", args)
}
func (f *fakeExec) Summary(ctx context.Context, args []string) error { return f.record("summary", args) }
func (f *fakeExec) Total(ctx context.Context, args []string) error   { return f.record("total", args) }
func (f *fakeExec) Export(ctx context.Context, args []string) error  { return f.record("export", args) }
func (f *fakeExec) Month(ctx context.Context, args []string) error   { return f.record("month", args) }
func (f *fakeExec) RenameCategory(ctx context.Context, args []string) error {
	return f.record("renamecategory", args)
}
func (f *fakeExec) EditExpense(ctx context.Context, args []string) error {
	return f.record("editexpense", args)
}

func TestRunREPL_DispatchesCommands(t *testing.T) {
	input := strings.Join([]string{
		"help",
		"login",
		"help",
		"",
		"categories",
		"addcategory",
		"delcategory 3",
		"expenses",
		"addexpense",
		"delexpense 9",
		"summary 2024-03",
		"total 2024-03",
		"export out.xlsx",
		"renamecategory 4",
		"editexpense 5",
		"month 2024-02",
		"frobnicate",
		"logout",
		"exit",
		"login",
	}, "\n") + "\n"

	f := &fakeExec{}
	var out bytes.Buffer
	runREPL(context.Background(), f, func() string { return "" }, rdr(input), &out)

	assert.Equal(t, []string{
		"login", "categories", "addcategory", "delcategory", "expenses", "addexpense",
		"delexpense", "summary", "total", "export", "renamecategory", "editexpense", "month", "logout",
	}, f.calls)
	assert.Equal(t, []string{"3"}, f.args[3])
	assert.Equal(t, []string{"out.xlsx"}, f.args[9])
	assert.Equal(t, []string{"4"}, f.args[10])
	assert.Equal(t, []string{"5"}, f.args[11])
	assert.Equal(t, []string{"2024-02"}, f.args[12])

	got := out.String()
	assert.Contains(t, got, helpLoggedOut)
	assert.Contains(t, got, helpLoggedIn)
	assert.Contains(t, got, "Unknown command: frobnicate")
	assert.Contains(t, got, "Bye!")
}

func TestRunREPL_StopsOnEOF(t *testing.T) {
	f := &fakeExec{}
	var out bytes.Buffer
	runREPL(context.Background(), f, func() string { return "(Ann)" }, rdr("register"), &out)

	assert.Equal(t, []string{"register"}, f.calls)
	assert.True(t, strings.HasPrefix(out.String(), "expenses(Ann)> "))
}

func TestRunREPL_StopsOnCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	f := &fakeExec{}
	var out bytes.Buffer
	runREPL(ctx, f, func() string { return "" }, rdr("login\n"), &out)

	assert.Empty(t, f.calls)
}
