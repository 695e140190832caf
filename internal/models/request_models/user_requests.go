package request_models

import "time"

type SignUpRequest struct {
	FirstName       string     `json:"first_name" binding:"required"`
	LastName        string     `json:"last_name" binding:"required"`
	Email           string     `json:"email" binding:"required,email"`
	Password        string     `json:"password" binding:"required,min=8"`
	TravellingSince *time.Time `json:"travelling_since"`
	Gender          string     `json:"gender" binding:"required"`
}

type SignInRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type UpdateUserRequest struct {
	FirstName       string     `json:"first_name"`
	LastName        string     `json:"last_name"`
	TravellingSince *time.Time `json:"travelling_since"`
	Gender          string     `json:"gender"`
}
