package response

import (
	"time"

	"pt-booking/internal/data/entity"
)

type AuthResponse struct {
	UserID      string          `json:"user_id"`
	Token       string          `json:"token,omitempty"`
	ExpiresAt   *time.Time      `json:"expires_at,omitempty"`
	Username    string          `json:"username"`
	DisplayName string          `json:"display_name"`
	Role        entity.UserRole `json:"role"`
}

type UserResponse struct {
	ID          string          `json:"id"`
	Username    string          `json:"username"`
	DisplayName string          `json:"display_name"`
	Email       string          `json:"email"`
	Phone       *string         `json:"phone,omitempty"`
	Role        entity.UserRole `json:"role"`
	CreatedAt   time.Time       `json:"created_at"`
}

func UserToResponse(user *entity.User) UserResponse {
	return UserResponse{
		ID:          user.ID.String(),
		Username:    user.Username,
		DisplayName: user.DisplayName(),
		Email:       user.Email,
		Phone:       user.Phone,
		Role:        user.Role,
		CreatedAt:   user.CreatedAt,
	}
}

func AuthToResponse(user *entity.User, session *entity.Session) AuthResponse {
	resp := AuthResponse{
		UserID:      user.ID.String(),
		Username:    user.Username,
		DisplayName: user.DisplayName(),
		Role:        user.Role,
	}

	if session != nil {
		resp.Token = session.Token.String()
		expires := session.ExpiresAt
		resp.ExpiresAt = &expires
	}

	return resp
}
