package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"unicode/utf8"

	"github.com/furqanmax/Simple-POS/internal/auth"
	"github.com/furqanmax/Simple-POS/internal/models"
	"github.com/furqanmax/Simple-POS/internal/repositories"
)

var ErrInvalidCredentials = errors.New("invalid username or password")

type UserService struct {
	UserRepo *repositories.UserRepository
	JWT      *auth.JWTManager
}

func NewUserService(userRepo *repositories.UserRepository, jwt *auth.JWTManager) *UserService {
	return &UserService{UserRepo: userRepo, JWT: jwt}
}

// Login verifies credentials and issues a token. Inactive accounts are
// rejected with the same error as bad passwords.
func (s *UserService) Login(ctx context.Context, req *models.LoginRequest) (*models.LoginResponse, error) {
	user, err := s.UserRepo.GetByUsername(ctx, req.Username)
	if err != nil {
		return nil, ErrInvalidCredentials
	}
	if !user.Active {
		return nil, ErrInvalidCredentials
	}
	if !auth.VerifyPassword(user.PasswordHash, req.Password) {
		return nil, ErrInvalidCredentials
	}

	token, err := s.JWT.GenerateToken(user)
	if err != nil {
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}
	return &models.LoginResponse{Token: token, User: user}, nil
}

func (s *UserService) Create(ctx context.Context, req *models.CreateUserRequest) (*models.User, error) {
	if utf8.RuneCountInString(req.Username) < 3 {
		return nil, errors.New("username must be at least 3 characters")
	}
	if len(req.Password) < 8 {
		return nil, errors.New("password must be at least 8 characters")
	}
	if req.Role != models.RoleAdmin && req.Role != models.RoleUser {
		req.Role = models.RoleUser
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Username:     req.Username,
		PasswordHash: hash,
		Role:         req.Role,
	}
	if err := s.UserRepo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	return user, nil
}

func (s *UserService) List(ctx context.Context) ([]*models.User, error) {
	return s.UserRepo.List(ctx)
}

func (s *UserService) ChangePassword(ctx context.Context, userID int, newPassword string) error {
	if len(newPassword) < 8 {
		return errors.New("password must be at least 8 characters")
	}
	hash, err := auth.HashPassword(newPassword)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	return s.UserRepo.UpdatePassword(ctx, userID, hash)
}

// EnsureAdmin seeds a default admin account on first boot so the terminal
// is usable before any users exist. The password comes from ADMIN_PASSWORD
// or falls back to "admin" with a loud log line.
func (s *UserService) EnsureAdmin(ctx context.Context, password string) error {
	admins, err := s.UserRepo.CountAdmins(ctx)
	if err != nil {
		return err
	}
	if admins > 0 {
		return nil
	}

	if password == "" {
		password = "admin"
		log.Println("[Users] Seeding default admin with password 'admin', change it immediately")
	}
	hash, err := auth.HashPassword(password)
	if err != nil {
		return err
	}
	return s.UserRepo.Create(ctx, &models.User{
		Username:     "admin",
		PasswordHash: hash,
		Role:         models.RoleAdmin,
	})
}

// SetActive enables or disables an account. The last active admin cannot
// be deactivated.
func (s *UserService) SetActive(ctx context.Context, userID int, active bool) error {
	if !active {
		user, err := s.UserRepo.Get(ctx, userID)
		if err != nil {
			return err
		}
		if user.Role == models.RoleAdmin {
			admins, err := s.UserRepo.CountAdmins(ctx)
			if err != nil {
				return err
			}
			if admins <= 1 {
				return errors.New("cannot deactivate the last active admin")
			}
		}
	}
	return s.UserRepo.SetActive(ctx, userID, active)
}
