// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes tools for working with context, type-safe keys, identifier
// generation, HTTP response writing, and JWT token generation and validation.
package utils

import (
	"context"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// AdminIDCtxKey is the key under which the access gate stores the admitted
// admin's identifier.
//
// Example of writing a value to the context:
//
//	ctx := context.WithValue(ctx, utils.AdminIDCtxKey, int64(42))
var AdminIDCtxKey = contextKey("adminID")

// GetAdminIDFromContext retrieves the admin identifier from the context.
//
// Returns the admin ID and an ok flag:
//   - ok == true  — value is found and has the correct int64 type
//   - ok == false — value is missing or has an unexpected type
func GetAdminIDFromContext(ctx context.Context) (int64, bool) {
	adminID, ok := ctx.Value(AdminIDCtxKey).(int64)
	return adminID, ok
}

// WithAdminID returns a copy of ctx carrying adminID under [AdminIDCtxKey].
func WithAdminID(ctx context.Context, adminID int64) context.Context {
	return context.WithValue(ctx, AdminIDCtxKey, adminID)
}
