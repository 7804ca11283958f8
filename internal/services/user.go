package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"eventhub/internal/domain"
)

type userService struct {
	userRepo     domain.UserRepository
	hasher       domain.PasswordHasher
	emailService domain.EmailService
	logger       *slog.Logger
}

// NewUserService creates a UserService. emailService may be nil, in which case no welcome email is sent.
func NewUserService(userRepo domain.UserRepository, hasher domain.PasswordHasher, emailService domain.EmailService, logger *slog.Logger) domain.UserService {
	return &userService{
		userRepo:     userRepo,
		hasher:       hasher,
		emailService: emailService,
		logger:       logger,
	}
}

// Register stores the user with a hashed password. The username check and insert
// happen in one repository call; a welcome email failure does not fail the registration.
func (s *userService) Register(ctx context.Context, in domain.UserInput) (*domain.User, error) {
	hash, err := s.hasher.Hash(in.Password)
	if err != nil {
		return nil, err
	}
	in.Password = hash
	user, err := s.userRepo.CreateUser(ctx, in)
	if err != nil {
		if errors.Is(err, domain.ErrDuplicateUsername) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	if s.emailService != nil && user.Email != "" {
		data := &domain.WelcomeMessageEmailData{
			Email:    user.Email,
			Fullname: user.Fullname,
			Username: user.Username,
		}
		if err := s.emailService.SendWelcomeMessage(ctx, data); err != nil {
			s.logger.WarnContext(ctx, "welcome email failed", "user_id", user.ID, "err", err)
		}
	}
	return user, nil
}

// Update applies the patch, re-hashing the password when one is given.
func (s *userService) Update(ctx context.Context, id int64, patch domain.UserUpdate) (*domain.User, error) {
	if patch.Password != nil {
		hash, err := s.hasher.Hash(*patch.Password)
		if err != nil {
			return nil, err
		}
		patch.Password = &hash
	}
	user, err := s.userRepo.UpdateUser(ctx, id, patch)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) || errors.Is(err, domain.ErrDuplicateUsername) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to update user: %w", err)
	}
	return user, nil
}
