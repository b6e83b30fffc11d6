package services

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/adanyl0v/go-task-manager/internal/models"
	"github.com/adanyl0v/go-task-manager/internal/repository"
)

type authServiceImpl struct {
	logger            zerolog.Logger
	users             repository.UserRepository
	jwtIssuer         string
	jwtSigningKey     []byte
	jwtAccessTokenTTL time.Duration
}

func NewAuthService(
	logger zerolog.Logger,
	users repository.UserRepository,
	jwtIssuer string,
	jwtSigningKey []byte,
	jwtAccessTokenTTL time.Duration,
) AuthService {
	return &authServiceImpl{
		logger:            logger,
		users:             users,
		jwtIssuer:         jwtIssuer,
		jwtSigningKey:     jwtSigningKey,
		jwtAccessTokenTTL: jwtAccessTokenTTL,
	}
}

func (s *authServiceImpl) Signup(ctx context.Context, params SignupParams) (*models.User, error) {
	taken, err := s.users.ExistsByUsername(ctx, params.Username)
	if err != nil {
		s.logger.Error().
			Err(err).
			Str("username", params.Username).
			Msg("failed to check username")
		return nil, err
	} else if taken {
		s.logger.Error().
			Str("username", params.Username).
			Msg("username is already taken")
		return nil, ErrUsernameTaken
	}

	taken, err = s.users.ExistsByEmail(ctx, params.Email)
	if err != nil {
		s.logger.Error().
			Err(err).
			Str("email", params.Email).
			Msg("failed to check email")
		return nil, err
	} else if taken {
		s.logger.Error().
			Str("email", params.Email).
			Msg("email is already in use")
		return nil, ErrEmailTaken
	}

	passwordHash, err := hashPassword(params.Password)
	if err != nil {
		s.logger.Error().
			Err(err).
			Msg("failed to hash password")
		return nil, err
	}

	user := &models.User{
		Username:  params.Username,
		Email:     params.Email,
		Password:  passwordHash,
		CreatedAt: now(),
	}
	err = s.users.Create(ctx, user)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateKey) {
			// Lost a race against a concurrent signup.
			s.logger.Error().
				Str("username", user.Username).
				Str("email", user.Email).
				Msg("user already exists")
			return nil, s.duplicateUserError(ctx, user.Email)
		}

		s.logger.Error().
			Err(err).
			Msg("failed to insert user")
		return nil, err
	}
	s.logger.Debug().
		Int64("user_id", user.ID).
		Str("username", user.Username).
		Msg("inserted user")

	s.logger.Info().
		Int64("user_id", user.ID).
		Msg("registered user")
	return user, nil
}

func (s *authServiceImpl) Signin(ctx context.Context, params SigninParams) (*SigninResult, error) {
	user, err := s.users.FindByUsername(ctx, params.Username)
	if err != nil {
		if errors.Is(err, repository.ErrRecordNotFound) {
			s.logger.Error().
				Str("username", params.Username).
				Msg("user not found")
			return nil, ErrInvalidCredentials
		}

		s.logger.Error().
			Err(err).
			Str("username", params.Username).
			Msg("failed to select user by username")
		return nil, err
	}
	s.logger.Debug().
		Int64("user_id", user.ID).
		Msg("selected user")

	match, err := comparePassword(params.Password, user.Password)
	if err != nil {
		s.logger.Error().
			Err(err).
			Msg("failed to compare password")
		return nil, err
	} else if !match {
		s.logger.Error().
			Int64("user_id", user.ID).
			Msg("passwords do not match")
		return nil, ErrInvalidCredentials
	}

	accessToken, accessTokenExpiresAt, err := s.generateAccessToken(user.ID)
	if err != nil {
		s.logger.Error().
			Err(err).
			Msg("failed to generate access token")
		return nil, err
	}

	s.logger.Info().
		Int64("user_id", user.ID).
		Msg("signed in")
	return &SigninResult{
		User:                 user,
		AccessToken:          accessToken,
		AccessTokenExpiresAt: accessTokenExpiresAt,
	}, nil
}

func (s *authServiceImpl) ParseJWTToken(token string) (*jwt.RegisteredClaims, error) {
	t, err := jwt.ParseWithClaims(
		token,
		&jwt.RegisteredClaims{},
		func(token *jwt.Token) (any, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
			}
			return s.jwtSigningKey, nil
		},
		jwt.WithIssuer(s.jwtIssuer),
		jwt.WithIssuedAt(),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, fmt.Errorf("token is expired: %w", err)
		}
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	claims, ok := t.Claims.(*jwt.RegisteredClaims)
	if !ok {
		return nil, errors.New("failed to parse token: unexpected claims type")
	}
	return claims, nil
}

func (s *authServiceImpl) duplicateUserError(ctx context.Context, email string) error {
	taken, err := s.users.ExistsByEmail(ctx, email)
	if err == nil && taken {
		return ErrEmailTaken
	}
	return ErrUsernameTaken
}

func (s *authServiceImpl) generateAccessToken(userID int64) (string, time.Time, error) {
	tokenUUID, err := uuid.NewRandom()
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to generate id: %w", err)
	}

	now := time.Now()
	expiresAt := now.Add(s.jwtAccessTokenTTL)
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		ID:        tokenUUID.String(),
		Issuer:    s.jwtIssuer,
		Subject:   strconv.FormatInt(userID, 10),
		ExpiresAt: jwt.NewNumericDate(expiresAt),
		NotBefore: jwt.NewNumericDate(now),
		IssuedAt:  jwt.NewNumericDate(now),
	})

	signed, err := token.SignedString(s.jwtSigningKey)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, expiresAt, nil
}
