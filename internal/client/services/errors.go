package services

import "errors"

var (
	ErrNotLoggedIn = errors.New("not logged in")
	ErrNotAdmin    = errors.New("admin privileges required")
	ErrCanceled    = errors.New("canceled by user")
	// ErrNotDeleted means the server answered but refused the deletion.
	ErrNotDeleted = errors.New("not deleted")
	// ErrMalformedSession is returned by SessionStore.Load for a persisted
	// entry that cannot be decoded into a valid user.
	ErrMalformedSession = errors.New("malformed persisted session")
)
