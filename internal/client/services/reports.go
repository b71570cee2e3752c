package services

import (
	"context"
	"time"

	"github.com/dmitrijs2005/expensetracker/internal/client/models"
	"github.com/shopspring/decimal"
)

// ReportSync fetches monthly reports on demand. Results are not cached.
type ReportSync struct {
	*core
}

// MonthlySummary returns the per-category totals of the given month.
func (r *ReportSync) MonthlySummary(ctx context.Context, year int, month time.Month) (map[string]decimal.Decimal, error) {
	u, err := r.requireUser()
	if err != nil {
		return nil, err
	}

	sum, err := r.api.MonthlySummary(ctx, u.ID, year, month)
	if err != nil {
		r.log.Warn(ctx, "loading monthly summary", "year", year, "month", int(month), "error", err)
		r.fail(genericFailure(err, MsgReportFailed))
		return nil, err
	}
	return sum, nil
}

func (r *ReportSync) MonthlyTotal(ctx context.Context, year int, month time.Month) (decimal.Decimal, error) {
	u, err := r.requireUser()
	if err != nil {
		return decimal.Zero, err
	}

	total, err := r.api.MonthlyTotal(ctx, u.ID, year, month)
	if err != nil {
		r.log.Warn(ctx, "loading monthly total", "year", year, "month", int(month), "error", err)
		r.fail(genericFailure(err, MsgReportFailed))
		return decimal.Zero, err
	}
	return total, nil
}

// MonthlyExpenses returns the user's expenses dated in the given month.
// The result is independent of the cached expense list.
func (r *ReportSync) MonthlyExpenses(ctx context.Context, year int, month time.Month) ([]models.Expense, error) {
	u, err := r.requireUser()
	if err != nil {
		return nil, err
	}

	list, err := r.api.MonthlyExpenses(ctx, u.ID, year, month)
	if err != nil {
		r.log.Warn(ctx, "loading monthly expenses", "year", year, "month", int(month), "error", err)
		r.fail(genericFailure(err, MsgReportFailed))
		return nil, err
	}
	return list, nil
}
