package service

import (
	"context"
	"errors"

	"github.com/medtrack/medtrack-go/internal/crypto"
	"github.com/medtrack/medtrack-go/internal/model"
	"github.com/medtrack/medtrack-go/internal/repository"
)

var ErrUserNotFound = errors.New("user not found")

// UserService handles user management business logic.
type UserService struct {
	repo *repository.UserRepository
}

// NewUserService creates a new UserService.
func NewUserService(repo *repository.UserRepository) *UserService {
	return &UserService{repo: repo}
}

// ListUsers returns all users ordered by name.
func (s *UserService) ListUsers(ctx context.Context) ([]model.UserResponse, error) {
	users, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]model.UserResponse, len(users))
	for i := range users {
		result[i] = userToResponse(&users[i])
	}
	return result, nil
}

// GetUser returns one user by ID.
func (s *UserService) GetUser(ctx context.Context, id int64) (model.UserResponse, error) {
	user, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return model.UserResponse{}, ErrUserNotFound
		}
		return model.UserResponse{}, err
	}

	return userToResponse(user), nil
}

// UpdateUser updates a user's name and email, re-hashing the password only
// when a new one is supplied.
func (s *UserService) UpdateUser(ctx context.Context, id int64, req model.UpdateUserRequest) (model.UserResponse, error) {
	if req.Name == "" {
		return model.UserResponse{}, ErrNameRequired
	}
	if req.Email == "" {
		return model.UserResponse{}, ErrEmailRequired
	}

	user, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return model.UserResponse{}, ErrUserNotFound
		}
		return model.UserResponse{}, err
	}

	user.Name = req.Name
	user.Email = req.Email
	if req.Password != "" {
		hash, err := crypto.HashPassword(req.Password)
		if err != nil {
			return model.UserResponse{}, err
		}
		user.PasswordHash = hash
	}

	if err := s.repo.Update(ctx, user); err != nil {
		switch {
		case errors.Is(err, repository.ErrUserNotFound):
			return model.UserResponse{}, ErrUserNotFound
		case errors.Is(err, repository.ErrDuplicateEmail):
			return model.UserResponse{}, ErrEmailTaken
		}
		return model.UserResponse{}, err
	}

	updated, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return model.UserResponse{}, err
	}

	return userToResponse(updated), nil
}

// DeleteUser removes a user by ID.
func (s *UserService) DeleteUser(ctx context.Context, id int64) error {
	err := s.repo.Delete(ctx, id)
	if errors.Is(err, repository.ErrUserNotFound) {
		return ErrUserNotFound
	}
	return err
}
