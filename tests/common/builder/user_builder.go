//go:build unit || e2e

package builder

import (
	"time"

	"campreserve/internal/domain/user"
	reqdto "campreserve/internal/handler/dto/request"
	"campreserve/internal/usecase/commands"
	"campreserve/internal/usecase/queries"

	"github.com/google/uuid"
)

type UserBuilder struct {
	ID            uuid.UUID
	Email         string
	Password      string
	Role          user.Role
	PendingVerify bool
	CreatedAt     time.Time
}

func NewUserBuilder() *UserBuilder {
	return &UserBuilder{
		ID:        uuid.New(),
		Email:     "camper@example.com",
		Password:  "password123",
		Role:      user.RoleCamper,
		CreatedAt: time.Now(),
	}
}

func (u *UserBuilder) BuildLoginRequestDTO() reqdto.LoginRequest {
	return reqdto.LoginRequest{
		Email:    u.Email,
		Password: u.Password,
	}
}

func (u *UserBuilder) BuildView() *queries.UserView {
	return &queries.UserView{
		ID:            u.ID,
		Email:         u.Email,
		Role:          u.Role.String(),
		PendingVerify: u.PendingVerify,
		CreatedAt:     u.CreatedAt,
	}
}

func (u *UserBuilder) BuildLoginResult(token string) *commands.LoginResult {
	return &commands.LoginResult{
		UserID:      u.ID,
		Role:        u.Role,
		AccessToken: token,
	}
}

// Fluent builder methods
func (u *UserBuilder) WithEmail(email string) *UserBuilder {
	u.Email = email
	return u
}

func (u *UserBuilder) WithRole(role user.Role) *UserBuilder {
	u.Role = role
	return u
}

func (u *UserBuilder) AsAdmin() *UserBuilder {
	u.Role = user.RoleAdmin
	return u
}

func (u *UserBuilder) AsPlaceholder() *UserBuilder {
	u.PendingVerify = true
	return u
}
