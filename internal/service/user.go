package service

import (
	"context"
	"fmt"

	"lol-tracker/internal/constants"
	"lol-tracker/internal/domain"
	"lol-tracker/internal/repository"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"
)

type UserService struct {
	repo   *repository.UserRepository
	logger zerolog.Logger
}

func NewUserService(repo *repository.UserRepository, logger zerolog.Logger) *UserService {
	return &UserService{repo: repo, logger: logger}
}

func (s *UserService) Register(ctx context.Context, email, password, firstName string) (*domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, constants.DatabaseTimeout)
	defer cancel()

	if email == "" {
		return nil, fmt.Errorf("%w: email is required", domain.ErrValidation)
	}
	if password == "" {
		return nil, fmt.Errorf("%w: password is required", domain.ErrValidation)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user, err := s.repo.Create(ctx, email, string(hash), firstName)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Int64("user_id", user.ID).Str("email", email).Msg("user registered")
	return user, nil
}

// LinkSummoner attaches or replaces the user's summoner name. The add and
// update routes share this path, both reject an empty name. An unknown user
// is reported before any input validation.
func (s *UserService) LinkSummoner(ctx context.Context, userID int64, name string) error {
	ctx, cancel := context.WithTimeout(ctx, constants.DatabaseTimeout)
	defer cancel()

	if _, err := s.repo.GetByID(ctx, userID); err != nil {
		return err
	}
	if name == "" {
		return fmt.Errorf("%w: lol_username not provided", domain.ErrValidation)
	}

	if err := s.repo.SetLolUsername(ctx, userID, name); err != nil {
		return err
	}

	s.logger.Info().Int64("user_id", userID).Str("lol_username", name).Msg("summoner name linked")
	return nil
}

func (s *UserService) Delete(ctx context.Context, userID int64) error {
	ctx, cancel := context.WithTimeout(ctx, constants.DatabaseTimeout)
	defer cancel()

	if err := s.repo.Delete(ctx, userID); err != nil {
		return err
	}

	s.logger.Info().Int64("user_id", userID).Msg("user deleted")
	return nil
}
