package v1

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/adanyl0v/go-task-manager/internal/services"
)

const userRegisteredMessage = "User registered successfully!"

type messageResponse struct {
	Message string `json:"message"`
}

type signupRequest struct {
	Username string `json:"username" binding:"required,notblank,min=3,max=20"`
	Email    string `json:"email" binding:"required,email,max=50"`
	Password string `json:"password" binding:"required,min=6,max=40"`
}

func (h *handlerImpl) HandleSignup(c *gin.Context) {
	var req signupRequest
	err := c.ShouldBindJSON(&req)
	if err != nil {
		h.logger.Error().
			Err(err).
			Msg("failed to bind request body")
		abort(c, newBadRequestError(describeBindError(err)))
		return
	}

	_, err = h.auth.Signup(c, services.SignupParams{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		h.logger.Error().
			Err(err).
			Msg("failed to sign up")
		switch {
		case errors.Is(err, services.ErrUsernameTaken):
			abort(c, newConflictError(services.ErrUsernameTaken.Error()))
		case errors.Is(err, services.ErrEmailTaken):
			abort(c, newConflictError(services.ErrEmailTaken.Error()))
		default:
			abort(c, newStatusTextError(http.StatusInternalServerError))
		}
		return
	}

	c.JSON(http.StatusCreated, messageResponse{Message: userRegisteredMessage})
}

type signinRequest struct {
	Username string `json:"username" binding:"required,notblank"`
	Password string `json:"password" binding:"required"`
}

type signinResponse struct {
	AccessToken string        `json:"accessToken"`
	TokenType   string        `json:"tokenType"`
	ID          int64         `json:"id"`
	Username    string        `json:"username"`
	Email       string        `json:"email"`
	ExpiresAt   localDateTime `json:"expiresAt"`
}

func (h *handlerImpl) HandleSignin(c *gin.Context) {
	var req signinRequest
	err := c.ShouldBindJSON(&req)
	if err != nil {
		h.logger.Error().
			Err(err).
			Msg("failed to bind request body")
		abort(c, newBadRequestError(describeBindError(err)))
		return
	}

	result, err := h.auth.Signin(c, services.SigninParams{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		h.logger.Error().
			Err(err).
			Msg("failed to sign in")
		if errors.Is(err, services.ErrInvalidCredentials) {
			abort(c, newUnauthorizedError(services.ErrInvalidCredentials.Error()))
		} else {
			abort(c, newStatusTextError(http.StatusInternalServerError))
		}
		return
	}

	c.JSON(http.StatusOK, signinResponse{
		AccessToken: result.AccessToken,
		TokenType:   "Bearer",
		ID:          result.User.ID,
		Username:    result.User.Username,
		Email:       result.User.Email,
		ExpiresAt:   newLocalDateTime(result.AccessTokenExpiresAt),
	})
}
