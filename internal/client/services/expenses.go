package services

import (
	"context"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/expensetracker/internal/client/models"
	"github.com/dmitrijs2005/expensetracker/internal/client/state"
)

type ExpenseSync struct {
	*core
}

func expensesKey(userID int64) string {
	return "expenses\x00" + strconv.FormatInt(userID, 10)
}

// Load replaces the cached expenses. Failures are silent and keep the cache.
func (e *ExpenseSync) Load(ctx context.Context) error {
	u := e.user()
	if u == nil {
		return ErrNotLoggedIn
	}

	return e.once(expensesKey(u.ID), func() error {
		seq := e.expenseLoads.Add(1)
		list, err := e.api.ListExpenses(ctx, u.ID)
		if err != nil {
			e.log.Warn(ctx, "loading expenses", "error", err)
			return err
		}
		e.store.Update(func(s *state.Snapshot) {
			if s.User == nil || s.User.ID != u.ID || e.expenseLoads.Load() != seq {
				return
			}
			s.Expenses = list
			s.ExpensesGen++
		})
		return nil
	})
}

func (e *ExpenseSync) reload(ctx context.Context, userID int64) {
	e.forget(expensesKey(userID))
	_ = e.Load(ctx)
}

func expenseKey(action string, userID int64, in models.NewExpense, extra ...string) string {
	parts := append([]string{action, strconv.FormatInt(userID, 10)}, extra...)
	parts = append(parts, in.Description, in.Amount, in.Date, in.Location, in.CategoryID)
	return strings.Join(parts, "\x00")
}

// Add submits the raw form values; the server is the only validator.
func (e *ExpenseSync) Add(ctx context.Context, in models.NewExpense) error {
	u, err := e.requireUser()
	if err != nil {
		return err
	}

	return e.once(expenseKey("expense-add", u.ID, in), func() error {
		if err := e.api.CreateExpense(ctx, u.ID, in); err != nil {
			e.log.Warn(ctx, "adding expense", "error", err)
			e.fail(genericFailure(err, MsgExpenseAddFailed))
			return err
		}

		e.success(MsgExpenseAdded)
		today := e.today()
		e.store.Update(func(s *state.Snapshot) {
			s.Drafts.Expense = models.NewExpense{Date: today}
		})
		e.reload(ctx, u.ID)
		return nil
	})
}

// Update replaces an existing expense with the given values. The expense
// draft is left alone; it belongs to the add form.
func (e *ExpenseSync) Update(ctx context.Context, id int64, in models.NewExpense) error {
	u, err := e.requireUser()
	if err != nil {
		return err
	}

	return e.once(expenseKey("expense-update", u.ID, in, strconv.FormatInt(id, 10)), func() error {
		if err := e.api.UpdateExpense(ctx, id, u.ID, in); err != nil {
			e.log.Warn(ctx, "updating expense", "id", id, "error", err)
			e.fail(genericFailure(err, MsgExpenseUpdateFailed))
			return err
		}

		e.success(MsgExpenseUpdated)
		e.reload(ctx, u.ID)
		return nil
	})
}

func (e *ExpenseSync) Delete(ctx context.Context, id int64) error {
	u, err := e.requireUser()
	if err != nil {
		return err
	}
	if !e.confirmed(ctx, ConfirmDeleteExpense) {
		return ErrCanceled
	}

	return e.once("expense-delete\x00"+strconv.FormatInt(id, 10), func() error {
		if err := e.api.DeleteExpense(ctx, id); err != nil {
			e.log.Warn(ctx, "deleting expense", "id", id, "error", err)
			e.fail(genericFailure(err, MsgExpenseDeleteFailed))
			return err
		}

		e.success(MsgExpenseDeleted)
		e.reload(ctx, u.ID)
		return nil
	})
}
