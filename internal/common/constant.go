// Package common contains constants shared by the client packages.
package common

const (
	// RequestIDHeaderName carries a per-request id on every backend call.
	RequestIDHeaderName = "X-Request-ID"

	// SessionUserKey is the metadata key holding the serialized current user.
	SessionUserKey = "currentUser"

	// SessionSavedAtKey records when SessionUserKey was last written.
	SessionSavedAtKey = "currentUserSavedAt"
)
