package models

// Category is owned by the server; the client only caches the list.
type Category struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// DeleteResult is the structured body returned by category deletion.
// A successful HTTP status alone does not mean the category was removed.
type DeleteResult struct {
	Deleted bool   `json:"deleted"`
	Message string `json:"message,omitempty"`
}
