package services

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/adanyl0v/go-task-manager/internal/models"
	"github.com/adanyl0v/go-task-manager/internal/repository"
)

type userServiceImpl struct {
	logger zerolog.Logger
	users  repository.UserRepository
}

func NewUserService(
	logger zerolog.Logger,
	users repository.UserRepository,
) UserService {
	return &userServiceImpl{
		logger: logger,
		users:  users,
	}
}

func (s *userServiceImpl) GetUserByID(ctx context.Context, userID int64) (*models.User, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrRecordNotFound) {
			s.logger.Error().
				Int64("user_id", userID).
				Msg("user not found")
			return nil, ErrUserNotFound
		}

		s.logger.Error().
			Err(err).
			Int64("user_id", userID).
			Msg("failed to select user by id")
		return nil, err
	}
	s.logger.Debug().
		Int64("user_id", user.ID).
		Msg("selected user")
	return user, nil
}
