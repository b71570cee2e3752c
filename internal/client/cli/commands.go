package cli

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strconv"
	"time"

	"github.com/dmitrijs2005/expensetracker/internal/client/models"
	"github.com/dmitrijs2005/expensetracker/internal/client/notify"
	"github.com/dmitrijs2005/expensetracker/internal/client/services"
	"github.com/dmitrijs2005/expensetracker/internal/client/state"
)

var errUsage = errors.New("usage")

func (a *App) Register(ctx context.Context) error {
	a.ctrl.Session.ShowRegister()
	d := a.ctrl.Store().Snapshot().Drafts.Register

	name, err := GetTextWithDefault(a.reader, "Name", d.Name, a.out)
	if err != nil {
		return err
	}
	email, err := GetTextWithDefault(a.reader, "Email", d.Email, a.out)
	if err != nil {
		return err
	}
	a.ctrl.UpdateDrafts(func(d *state.Drafts) { d.Register = state.RegisterDraft{Name: name, Email: email} })

	return a.ctrl.Session.Register(ctx, name, email)
}

func (a *App) Login(ctx context.Context) error {
	a.ctrl.Session.ShowLogin()
	d := a.ctrl.Store().Snapshot().Drafts.Login

	email, err := GetTextWithDefault(a.reader, "Email", d.Email, a.out)
	if err != nil {
		return err
	}
	name, err := GetTextWithDefault(a.reader, "Name", d.Name, a.out)
	if err != nil {
		return err
	}
	a.ctrl.UpdateDrafts(func(d *state.Drafts) { d.Login = state.LoginDraft{Email: email, Name: name} })

	return a.ctrl.Session.Login(ctx, email, name)
}

func (a *App) Logout(ctx context.Context) error {
	return a.ctrl.Session.Logout(ctx)
}

// Categories reloads the list and prints it even when it did not change.
func (a *App) Categories(ctx context.Context) error {
	before := a.renderCount("categories")
	err := a.ctrl.Categories.Load(ctx)
	if a.renderCount("categories") == before {
		renderCategories(a.out, a.ctrl.Store().Snapshot())
	}
	return err
}

func (a *App) AddCategory(ctx context.Context) error {
	d := a.ctrl.Store().Snapshot().Drafts.Category

	name, err := GetTextWithDefault(a.reader, "Category name", d, a.out)
	if err != nil {
		return err
	}
	a.ctrl.UpdateDrafts(func(d *state.Drafts) { d.Category = name })

	return a.ctrl.Categories.Add(ctx, name)
}

func (a *App) DeleteCategory(ctx context.Context, args []string) error {
	id, err := parseID(args)
	if err != nil {
		fmt.Fprintln(a.out, "Usage: delcategory <id>")
		return err
	}
	return a.ctrl.Categories.Delete(ctx, id)
}

// RenameCategory prompts for the new name, defaulting to the cached one.
func (a *App) RenameCategory(ctx context.Context, args []string) error {
	id, err := parseID(args)
	if err != nil {
		fmt.Fprintln(a.out, "Usage: renamecategory <id>")
		return err
	}

	var current string
	for _, c := range a.ctrl.Store().Snapshot().Categories {
		if c.ID == id {
			current = c.Name
		}
	}
	name, err := GetTextWithDefault(a.reader, "New name", current, a.out)
	if err != nil {
		return err
	}
	return a.ctrl.Categories.Rename(ctx, id, name)
}

func (a *App) Expenses(ctx context.Context) error {
	before := a.renderCount("expenses")
	err := a.ctrl.Expenses.Load(ctx)
	if a.renderCount("expenses") == before {
		renderExpenses(a.out, a.ctrl.Store().Snapshot())
	}
	return err
}

// AddExpense walks through the expense form. Values are passed on as typed.
func (a *App) AddExpense(ctx context.Context) error {
	snap := a.ctrl.Store().Snapshot()
	in, err := a.expenseForm(snap, snap.Drafts.Expense)
	if err != nil {
		return err
	}
	a.ctrl.UpdateDrafts(func(d *state.Drafts) { d.Expense = in })
	return a.ctrl.Expenses.Add(ctx, in)
}

// EditExpense runs the expense form pre-filled from the cached expense.
func (a *App) EditExpense(ctx context.Context, args []string) error {
	id, err := parseID(args)
	if err != nil {
		fmt.Fprintln(a.out, "Usage: editexpense <id>")
		return err
	}

	snap := a.ctrl.Store().Snapshot()
	var defaults models.NewExpense
	for _, e := range snap.Expenses {
		if e.ID == id {
			defaults = editDefaults(e)
		}
	}
	in, err := a.expenseForm(snap, defaults)
	if err != nil {
		return err
	}
	return a.ctrl.Expenses.Update(ctx, id, in)
}

func (a *App) expenseForm(snap state.Snapshot, d models.NewExpense) (models.NewExpense, error) {
	var in models.NewExpense
	fields := []struct {
		prompt string
		def    string
		dst    *string
	}{
		{"Description", d.Description, &in.Description},
		{"Amount", d.Amount, &in.Amount},
		{"Date (YYYY-MM-DD)", d.Date, &in.Date},
		{"Location", d.Location, &in.Location},
	}
	for _, f := range fields {
		v, err := GetTextWithDefault(a.reader, f.prompt, f.def, a.out)
		if err != nil {
			return models.NewExpense{}, err
		}
		*f.dst = v
	}

	renderCategoryOptions(a.out, snap)
	v, err := GetTextWithDefault(a.reader, "Category id", d.CategoryID, a.out)
	if err != nil {
		return models.NewExpense{}, err
	}
	in.CategoryID = v
	return in, nil
}

func (a *App) DeleteExpense(ctx context.Context, args []string) error {
	id, err := parseID(args)
	if err != nil {
		fmt.Fprintln(a.out, "Usage: delexpense <id>")
		return err
	}
	return a.ctrl.Expenses.Delete(ctx, id)
}

func (a *App) Summary(ctx context.Context, args []string) error {
	year, month, err := parseMonth(args)
	if err != nil {
		fmt.Fprintln(a.out, "Usage: summary <yyyy-mm>")
		return err
	}

	sum, err := a.ctrl.Reports.MonthlySummary(ctx, year, month)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Summary for %d-%02d:\n", year, int(month))
	if len(sum) == 0 {
		fmt.Fprintln(a.out, "  "+noExpensesText)
		return nil
	}
	names := make([]string, 0, len(sum))
	for name := range sum {
		names = append(names, name)
	}
	slices.Sort(names)
	for _, name := range names {
		fmt.Fprintf(a.out, "  %s: %s\n", name, formatAmount(sum[name]))
	}
	return nil
}

func (a *App) Total(ctx context.Context, args []string) error {
	year, month, err := parseMonth(args)
	if err != nil {
		fmt.Fprintln(a.out, "Usage: total <yyyy-mm>")
		return err
	}

	total, err := a.ctrl.Reports.MonthlyTotal(ctx, year, month)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Total for %d-%02d: %s\n", year, int(month), formatAmount(total))
	return nil
}

// Month lists the expenses of one month as reported by the server.
func (a *App) Month(ctx context.Context, args []string) error {
	year, month, err := parseMonth(args)
	if err != nil {
		fmt.Fprintln(a.out, "Usage: month <yyyy-mm>")
		return err
	}

	list, err := a.ctrl.Reports.MonthlyExpenses(ctx, year, month)
	if err != nil {
		return err
	}
	renderExpenseList(a.out, fmt.Sprintf("Expenses for %d-%02d:", year, int(month)), list)
	return nil
}

// Export writes the cached expense list to a file or s3://bucket/key.
func (a *App) Export(ctx context.Context, args []string) error {
	if len(args) != 1 {
		fmt.Fprintln(a.out, "Usage: export <file.csv|file.xlsx|s3://bucket/key>")
		return errUsage
	}
	snap := a.ctrl.Store().Snapshot()
	if !snap.LoggedIn() {
		a.ctrl.Notifications().Notify(services.MsgLoginFirst, notify.KindError)
		return errUsage
	}

	if err := a.exporter.Export(ctx, args[0], snap.Expenses); err != nil {
		a.log.Warn(ctx, "export failed", "target", args[0], "error", err)
		a.ctrl.Notifications().Notify("Export failed: "+err.Error(), notify.KindError)
		return err
	}
	a.ctrl.Notifications().Notify(fmt.Sprintf("Exported %d expenses to %s", len(snap.Expenses), args[0]), notify.KindSuccess)
	return nil
}

func parseID(args []string) (int64, error) {
	if len(args) != 1 {
		return 0, errUsage
	}
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil || id <= 0 {
		return 0, errUsage
	}
	return id, nil
}

func parseMonth(args []string) (int, time.Month, error) {
	if len(args) != 1 {
		return 0, 0, errUsage
	}
	t, err := time.Parse("2006-01", args[0])
	if err != nil {
		return 0, 0, errUsage
	}
	return t.Year(), t.Month(), nil
}
