package services

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"dailydilli/internal/models/db_models"
	"dailydilli/internal/models/request_models"
	"dailydilli/internal/models/response_models"
	"dailydilli/internal/repositories"
	"dailydilli/pkg/utils"
)

type AccountServiceInterface interface {
	SignUp(ctx context.Context, req request_models.SignUpRequest) (*response_models.UserResponse, error)
	SignIn(ctx context.Context, req request_models.SignInRequest) (*response_models.SignInResponse, error)
	GetUser(ctx context.Context, id uuid.UUID) (*response_models.UserResponse, error)
	ListUsers(ctx context.Context) ([]response_models.UserResponse, error)
	UpdateUser(ctx context.Context, caller Caller, id uuid.UUID, req request_models.UpdateUserRequest) (*response_models.UserResponse, error)
	DeleteUser(ctx context.Context, caller Caller, id uuid.UUID) error
}

// Caller identifies the authenticated user making a request.
type Caller struct {
	UserID uuid.UUID
	Role   string
}

func (c Caller) CanActOn(targetID uuid.UUID) bool {
	return c.Role == db_models.RoleAdmin || c.UserID == targetID
}

type AccountService struct {
	userRepo repositories.UserRepository
}

func NewAccountService(userRepo repositories.UserRepository) AccountServiceInterface {
	return &AccountService{userRepo: userRepo}
}

func (s *AccountService) SignUp(ctx context.Context, req request_models.SignUpRequest) (*response_models.UserResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	existing, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, utils.ErrEmailAlreadyExists
	}

	hashed, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &db_models.User{
		FirstName:       req.FirstName,
		LastName:        req.LastName,
		Email:           email,
		Password:        hashed,
		TravellingSince: req.TravellingSince,
		Gender:          strings.ToLower(req.Gender),
		Role:            db_models.RoleUser,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	zap.L().Info("user signed up", zap.String("user_id", user.ID.String()))
	resp := response_models.BuildUserResponse(user)
	return &resp, nil
}

func (s *AccountService) SignIn(ctx context.Context, req request_models.SignInRequest) (*response_models.SignInResponse, error) {
	user, err := s.userRepo.FindByEmail(ctx, strings.ToLower(strings.TrimSpace(req.Email)))
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, utils.ErrInvalidCredentials
	}

	if err := utils.ComparePasswords(user.Password, req.Password); err != nil {
		return nil, utils.ErrInvalidCredentials
	}

	token, err := utils.CreateToken(user.ID, user.Email, user.Role)
	if err != nil {
		return nil, err
	}

	return &response_models.SignInResponse{
		Token: token,
		User:  response_models.BuildUserResponse(user),
	}, nil
}

func (s *AccountService) GetUser(ctx context.Context, id uuid.UUID) (*response_models.UserResponse, error) {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, utils.ErrUserNotFound
	}
	resp := response_models.BuildUserResponse(user)
	return &resp, nil
}

func (s *AccountService) ListUsers(ctx context.Context) ([]response_models.UserResponse, error) {
	users, err := s.userRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	responses := make([]response_models.UserResponse, 0, len(users))
	for i := range users {
		responses = append(responses, response_models.BuildUserResponse(&users[i]))
	}
	return responses, nil
}

func (s *AccountService) UpdateUser(ctx context.Context, caller Caller, id uuid.UUID, req request_models.UpdateUserRequest) (*response_models.UserResponse, error) {
	if !caller.CanActOn(id) {
		return nil, utils.ErrForbidden
	}

	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, utils.ErrUserNotFound
	}

	if req.FirstName != "" {
		user.FirstName = req.FirstName
	}
	if req.LastName != "" {
		user.LastName = req.LastName
	}
	if req.TravellingSince != nil {
		user.TravellingSince = req.TravellingSince
	}
	if req.Gender != "" {
		user.Gender = strings.ToLower(req.Gender)
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	resp := response_models.BuildUserResponse(user)
	return &resp, nil
}

func (s *AccountService) DeleteUser(ctx context.Context, caller Caller, id uuid.UUID) error {
	if !caller.CanActOn(id) {
		return utils.ErrForbidden
	}

	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if user == nil {
		return utils.ErrUserNotFound
	}

	if err := s.userRepo.Delete(ctx, id); err != nil {
		return err
	}
	zap.L().Info("user deleted", zap.String("user_id", id.String()))
	return nil
}
