package models

import (
	"github.com/shopspring/decimal"
)

// Expense is a single spending record of the current user. Category is an
// embedded snapshot, not just an id.
type Expense struct {
	ID          int64           `json:"id"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Date        Date            `json:"date"`
	Location    string          `json:"location"`
	Category    Category        `json:"category"`
}

// NewExpense holds raw form values for expense creation. Values are sent as
// typed by the user; the server validates them.
type NewExpense struct {
	Description string
	Amount      string
	Date        string
	Location    string
	CategoryID  string
}

// Total sums the amounts of expenses. An empty slice totals zero.
func Total(expenses []Expense) decimal.Decimal {
	total := decimal.Zero
	for _, e := range expenses {
		total = total.Add(e.Amount)
	}
	return total
}
