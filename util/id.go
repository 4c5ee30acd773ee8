// Package util provides utility functions for the storefront.
package util

import "github.com/google/uuid"

// SessionIDPrefix marks session identities.
const SessionIDPrefix = "user_"

// NewSessionID returns an opaque identity for a freshly established session.
func NewSessionID() string {
	return SessionIDPrefix + uuid.NewString()
}
