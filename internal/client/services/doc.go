// Package services implements the client-side sync controller of the
// expense tracker.
//
// A Controller owns the state store, the notification center and the API
// client, and exposes four components:
//
//   - SessionManager: register, login, logout, restore on startup.
//   - CategorySync: list, add and (admin only) delete categories.
//   - ExpenseSync: list, add and delete the current user's expenses.
//   - ReportSync: monthly per-category summary and total.
//
// Every action converts its failure into a notification and also returns
// the error, so callers can branch on it with errors.Is. Loads fail
// silently. Nothing is retried.
package services
