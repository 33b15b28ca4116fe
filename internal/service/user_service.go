package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"kanbanase/internal/apperr"
	"kanbanase/internal/auth"
	"kanbanase/internal/model"
	"kanbanase/internal/repository"

	"github.com/google/uuid"
)

// LoginResult reports whether credentials matched. UserID is set only on
// success.
type LoginResult struct {
	UserID  *uuid.UUID
	Success bool
}

// UserService exposes account operations.
type UserService interface {
	Register(ctx context.Context, email, name, password string) (*model.User, error)
	VerifyLogin(ctx context.Context, email, password string) (*LoginResult, error)
	GetByID(ctx context.Context, id uuid.UUID) (*model.User, error)
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	List(ctx context.Context) ([]model.User, error)
}

type userService struct {
	repo   repository.UserRepositoryInterface
	hasher auth.Hasher
}

func NewUserService(repo repository.UserRepositoryInterface, hasher auth.Hasher) UserService {
	return &userService{repo: repo, hasher: hasher}
}

// Register hashes the password and persists a new user. Fails with a
// conflict error when the email is already taken.
func (s *userService) Register(ctx context.Context, email, name, password string) (*model.User, error) {
	email = strings.ToLower(email)

	exists, err := s.repo.ExistsByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("check email existence: %w", err)
	}
	if exists {
		return nil, apperr.Conflict("Email already exists")
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &model.User{
		ID:             uuid.New(),
		Email:          email,
		HashedPassword: hash,
		Name:           name,
		CreatedAt:      time.Now().UTC(),
	}

	if err := s.repo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}

	return user, nil
}

// VerifyLogin checks the supplied credentials. An unknown email is a
// not-found error; a known email with a wrong password is a plain
// unsuccessful result, not an error.
func (s *userService) VerifyLogin(ctx context.Context, email, password string) (*LoginResult, error) {
	user, err := s.repo.FindByEmail(ctx, strings.ToLower(email))
	if err != nil {
		return nil, fmt.Errorf("find user by email: %w", err)
	}
	if user == nil {
		return nil, apperr.NotFound("User not found")
	}

	if !s.hasher.Verify(user.HashedPassword, password) {
		return &LoginResult{Success: false}, nil
	}
	return &LoginResult{UserID: &user.ID, Success: true}, nil
}

func (s *userService) GetByID(ctx context.Context, id uuid.UUID) (*model.User, error) {
	user, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get user by id: %w", err)
	}
	if user == nil {
		return nil, apperr.NotFound(fmt.Sprintf("User not found with id: %s", id))
	}
	return user, nil
}

// GetByEmail returns (nil, nil) when no user has the email. Unlike GetByID
// this is not an error; callers rely on the distinction.
func (s *userService) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	return s.repo.FindByEmail(ctx, strings.ToLower(email))
}

func (s *userService) List(ctx context.Context) ([]model.User, error) {
	return s.repo.List(ctx)
}
