// Package identity describes who is calling and how user ids resolve to
// display and privilege metadata.
package identity

import (
	"context"
	"errors"
	"strings"
)

// ErrNotFound is returned by resolvers when no user matches the id.
var ErrNotFound = errors.New("identity not found")

// Caller is the principal invoking an action. The zero value is anonymous.
type Caller struct {
	UserID string
}

// Anonymous returns the unauthenticated caller.
func Anonymous() Caller {
	return Caller{}
}

func NewCaller(userID string) Caller {
	return Caller{UserID: strings.TrimSpace(userID)}
}

func (c Caller) IsAuthenticated() bool {
	return c.UserID != ""
}

// Identity is what the user subsystem knows about a user.
type Identity struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	DisplayName string `json:"display_name"`
	IsAdmin     bool   `json:"is_admin"`
}

// IdentityResolver looks users up by id.
type IdentityResolver interface {
	Resolve(ctx context.Context, userID string) (*Identity, error)
}

// ResolverFunc adapts a function to IdentityResolver.
type ResolverFunc func(ctx context.Context, userID string) (*Identity, error)

func (f ResolverFunc) Resolve(ctx context.Context, userID string) (*Identity, error) {
	return f(ctx, userID)
}
