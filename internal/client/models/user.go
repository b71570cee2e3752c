// Package models defines the client-side data models of the expense tracker:
// the session user, categories, expenses and the values exchanged with the
// backend API.
package models

// User is the authenticated account as returned by the login endpoint.
type User struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Admin bool   `json:"admin"`
}

// Valid reports whether u carries the fields every authenticated call needs.
func (u *User) Valid() bool {
	return u != nil && u.ID > 0
}
