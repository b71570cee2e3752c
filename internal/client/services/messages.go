package services

// User-facing notification texts.
const (
	MsgNetworkError = "Network error. Please try again."
	MsgLoginFirst   = "Please login first."

	MsgRegistered     = "Registration successful! Please login."
	MsgRegisterFailed = "Registration failed"
	MsgLoggedIn       = "Login successful!"
	MsgLoginFailed    = "Login failed"
	MsgLoggedOut      = "Logged out successfully"

	MsgCategoryAdded        = "Category added successfully!"
	MsgCategoryAddFailed    = "Failed to add category"
	MsgCategoryAdminOnly    = "Only administrators can delete categories."
	MsgCategoryDeleted      = "Category deleted successfully!"
	MsgCategoryDeleteFailed = "Failed to delete category"
	MsgCategoryRenamed      = "Category renamed successfully!"
	MsgCategoryRenameFailed = "Failed to rename category"
	MsgCategoryRenameAdmin  = "Only administrators can rename categories."
	ConfirmDeleteCategory   = "Are you sure you want to delete this category? This action cannot be undone."

	MsgExpenseAdded        = "Expense added successfully!"
	MsgExpenseAddFailed    = "Failed to add expense"
	MsgExpenseUpdated      = "Expense updated successfully!"
	MsgExpenseUpdateFailed = "Failed to update expense"
	MsgExpenseDeleted      = "Expense deleted successfully!"
	MsgExpenseDeleteFailed = "Failed to delete expense"
	ConfirmDeleteExpense   = "Are you sure you want to delete this expense?"

	MsgReportFailed = "Failed to load report"
)
