package user

import (
	"time"

	"github.com/google/uuid"
)

// User is an account: credentials and contact email. A Person (event-scoped
// profile) hangs off exactly one User.
type User struct {
	id            uuid.UUID
	email         Email
	passwordHash  string
	role          Role
	pendingVerify bool
	lastLogin     *time.Time
	createdAt     time.Time
	updatedAt     time.Time
}

func NewUser(email Email, passwordHash string, role Role) *User {
	return &User{
		id:           uuid.New(),
		email:        email,
		passwordHash: passwordHash,
		role:         role,
	}
}

// NewPlaceholderUser creates an account on behalf of someone making their
// first booking. The credential is a generated secret and the account stays
// pending verification.
func NewPlaceholderUser(email Email, placeholderHash string) *User {
	u := NewUser(email, placeholderHash, RoleCamper)
	u.pendingVerify = true
	return u
}

func (u *User) ID() uuid.UUID         { return u.id }
func (u *User) Email() Email          { return u.email }
func (u *User) PasswordHash() string  { return u.passwordHash }
func (u *User) Role() Role            { return u.role }
func (u *User) PendingVerify() bool   { return u.pendingVerify }
func (u *User) LastLogin() *time.Time { return u.lastLogin }
func (u *User) CreatedAt() time.Time  { return u.createdAt }
func (u *User) UpdatedAt() time.Time  { return u.updatedAt }

func (u *User) IsAdmin() bool {
	return u.role == RoleAdmin
}
