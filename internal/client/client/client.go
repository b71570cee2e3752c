package client

import (
	"context"
	"time"

	"github.com/dmitrijs2005/expensetracker/internal/client/models"
	"github.com/shopspring/decimal"
)

type Client interface {
	Close() error

	Register(ctx context.Context, name, email string) error
	Login(ctx context.Context, email, name string) (*models.User, error)

	ListCategories(ctx context.Context) ([]models.Category, error)
	CreateCategory(ctx context.Context, name string) error
	DeleteCategory(ctx context.Context, id int64, userEmail string) (*models.DeleteResult, error)
	RenameCategory(ctx context.Context, id int64, name string) error

	ListExpenses(ctx context.Context, userID int64) ([]models.Expense, error)
	CreateExpense(ctx context.Context, userID int64, expense models.NewExpense) error
	UpdateExpense(ctx context.Context, id, userID int64, expense models.NewExpense) error
	DeleteExpense(ctx context.Context, id int64) error

	MonthlySummary(ctx context.Context, userID int64, year int, month time.Month) (map[string]decimal.Decimal, error)
	MonthlyTotal(ctx context.Context, userID int64, year int, month time.Month) (decimal.Decimal, error)
	MonthlyExpenses(ctx context.Context, userID int64, year int, month time.Month) ([]models.Expense, error)
}
