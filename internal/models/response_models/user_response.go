package response_models

import (
	"time"

	"dailydilli/internal/models/db_models"
)

// UserResponse is the safe projection of a user row (no password hash).
type UserResponse struct {
	ID              string     `json:"id"`
	FirstName       string     `json:"first_name"`
	LastName        string     `json:"last_name"`
	Email           string     `json:"email"`
	TravellingSince *time.Time `json:"travelling_since,omitempty"`
	Role            string     `json:"role"`
	Gender          string     `json:"gender,omitempty"`
	CreatedAt       int64      `json:"created_at"`
}

func BuildUserResponse(user *db_models.User) UserResponse {
	return UserResponse{
		ID:              user.ID.String(),
		FirstName:       user.FirstName,
		LastName:        user.LastName,
		Email:           user.Email,
		TravellingSince: user.TravellingSince,
		Role:            user.Role,
		Gender:          user.Gender,
		CreatedAt:       user.CreatedAt,
	}
}

type SignInResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}
