package user

import (
	"errors"
	"strings"

	"github.com/google/uuid"
)

var ErrInvalidEmail = errors.New("invalid email address")

type User struct {
	id          uuid.UUID
	email       string
	displayName string
	isActive    bool
}

func NewUser(id uuid.UUID, email, displayName string, isActive bool) (*User, error) {
	if !strings.Contains(email, "@") {
		return nil, ErrInvalidEmail
	}

	return &User{
		id:          id,
		email:       email,
		displayName: displayName,
		isActive:    isActive,
	}, nil
}

// PlaceholderDisplayName derives a human-readable name from an email address
// for users auto-created during an import, e.g. "jane.doe@uni.edu" -> "Jane Doe".
func PlaceholderDisplayName(email string) string {
	local, _, found := strings.Cut(email, "@")
	if !found || local == "" {
		return email
	}

	parts := strings.FieldsFunc(local, func(r rune) bool {
		return r == '.' || r == '_' || r == '-'
	})
	for i, p := range parts {
		parts[i] = strings.ToUpper(p[:1]) + p[1:]
	}
	return strings.Join(parts, " ")
}

func (u *User) ID() uuid.UUID       { return u.id }
func (u *User) Email() string       { return u.email }
func (u *User) DisplayName() string { return u.displayName }
func (u *User) IsActive() bool      { return u.isActive }
