package response

import (
	"campreserve/internal/usecase/commands"
	"campreserve/internal/usecase/queries"
)

type LoginResponse struct {
	UserID      string `json:"user_id"`
	Role        string `json:"role"`
	AccessToken string `json:"access_token"`
}

func FromLoginResult(r *commands.LoginResult) *LoginResponse {
	return &LoginResponse{
		UserID:      r.UserID.String(),
		Role:        r.Role.String(),
		AccessToken: r.AccessToken,
	}
}

type UserResponse struct {
	ID            string `json:"id"`
	Email         string `json:"email"`
	Role          string `json:"role"`
	PendingVerify bool   `json:"pending_verify"`
	LastLoginAt   *int64 `json:"last_login_at,omitempty"`
	CreatedAt     int64  `json:"created_at"`
}

func FromUserView(v *queries.UserView) *UserResponse {
	resp := &UserResponse{
		ID:            v.ID.String(),
		Email:         v.Email,
		Role:          v.Role,
		PendingVerify: v.PendingVerify,
		CreatedAt:     v.CreatedAt.Unix(),
	}
	if v.LastLoginAt != nil {
		ts := v.LastLoginAt.Unix()
		resp.LastLoginAt = &ts
	}
	return resp
}
