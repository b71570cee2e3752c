package cli

import (
	"fmt"
	"io"
	"strconv"

	"github.com/dmitrijs2005/expensetracker/internal/client/models"
	"github.com/dmitrijs2005/expensetracker/internal/client/state"
	"github.com/shopspring/decimal"
)

const (
	noExpensesText   = "No expenses yet. Add your first expense above!"
	noCategoriesText = "No categories available"
	noLocationText   = "No location"
	adminOnlyText    = "Admin only"
)

func formatAmount(d decimal.Decimal) string {
	return "$" + d.StringFixed(2)
}

func expenseMeta(e models.Expense) string {
	location := e.Location
	if location == "" {
		location = noLocationText
	}
	return fmt.Sprintf("%s • %s • %s", e.Category.Name, e.Date.String(), location)
}

func renderExpenses(w io.Writer, s state.Snapshot) {
	renderExpenseList(w, "Expenses:", s.Expenses)
}

func renderExpenseList(w io.Writer, title string, expenses []models.Expense) {
	fmt.Fprintln(w, title)
	if len(expenses) == 0 {
		fmt.Fprintln(w, "  "+noExpensesText)
	}
	for _, e := range expenses {
		fmt.Fprintf(w, "  #%d %s\n      %s   %s\n", e.ID, e.Description, expenseMeta(e), formatAmount(e.Amount))
	}
	fmt.Fprintln(w, "Total: "+formatAmount(models.Total(expenses)))
}

// editDefaults turns a cached expense into form values for editing.
func editDefaults(e models.Expense) models.NewExpense {
	out := models.NewExpense{
		Description: e.Description,
		Amount:      e.Amount.String(),
		Date:        e.Date.String(),
		Location:    e.Location,
	}
	if e.Category.ID > 0 {
		out.CategoryID = strconv.FormatInt(e.Category.ID, 10)
	}
	return out
}

// renderCategories prints the list; the delete hint is only shown to admins.
func renderCategories(w io.Writer, s state.Snapshot) {
	fmt.Fprintln(w, "Categories:")
	if len(s.Categories) == 0 {
		fmt.Fprintln(w, "  "+noCategoriesText)
		return
	}
	for _, c := range s.Categories {
		action := fmt.Sprintf("delcategory %d", c.ID)
		if !s.IsAdmin() {
			action = adminOnlyText
		}
		fmt.Fprintf(w, "  #%d %s   (%s)\n", c.ID, c.Name, action)
	}
}

// renderCategoryOptions prints the choices for the expense form.
func renderCategoryOptions(w io.Writer, s state.Snapshot) {
	if len(s.Categories) == 0 {
		fmt.Fprintln(w, noCategoriesText)
		return
	}
	for _, c := range s.Categories {
		fmt.Fprintf(w, "  %d) %s\n", c.ID, c.Name)
	}
}

func renderWelcome(w io.Writer, s state.Snapshot) {
	if s.User == nil {
		return
	}
	line := fmt.Sprintf("Welcome, %s!", s.User.Name)
	if s.User.Admin {
		line += " [ADMIN]"
	}
	fmt.Fprintln(w, line)
}

func status(s state.Snapshot) string {
	switch {
	case s.User == nil:
		return ""
	case s.User.Admin:
		return fmt.Sprintf("(%s ADMIN)", s.User.Name)
	default:
		return fmt.Sprintf("(%s)", s.User.Name)
	}
}
