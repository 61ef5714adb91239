package identity

import (
	"context"
	"strings"
	"time"

	"datarequests/internal/shared/biztime"
	"datarequests/internal/shared/errors"
	"datarequests/internal/shared/id"
)

// User is a locally managed account backing the identity oracle.
type User struct {
	id          string
	name        string
	displayName string
	sysadmin    bool
	createdAt   time.Time
}

func NewUser(name, displayName string, sysadmin bool) (*User, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, errors.NewFieldValidationError(map[string][]string{"name": {"Missing value"}})
	}
	displayName = strings.TrimSpace(displayName)
	if displayName == "" {
		displayName = name
	}

	return &User{
		id:          id.New(),
		name:        name,
		displayName: displayName,
		sysadmin:    sysadmin,
		createdAt:   biztime.NowUTC(),
	}, nil
}

func ReconstructUser(userID, name, displayName string, sysadmin bool, createdAt time.Time) *User {
	return &User{
		id:          userID,
		name:        name,
		displayName: displayName,
		sysadmin:    sysadmin,
		createdAt:   createdAt,
	}
}

func (u *User) ID() string           { return u.id }
func (u *User) Name() string         { return u.name }
func (u *User) DisplayName() string  { return u.displayName }
func (u *User) IsSysadmin() bool     { return u.sysadmin }
func (u *User) CreatedAt() time.Time { return u.createdAt }

// Identity projects the user onto what the oracle exposes.
func (u *User) Identity() *Identity {
	return &Identity{
		ID:          u.id,
		Name:        u.name,
		DisplayName: u.displayName,
		IsAdmin:     u.sysadmin,
	}
}

// UserRepository stores local accounts. GetByID and GetByName return
// ErrNotFound when absent.
type UserRepository interface {
	Create(ctx context.Context, user *User) error
	GetByID(ctx context.Context, userID string) (*User, error)
	GetByName(ctx context.Context, name string) (*User, error)
}
