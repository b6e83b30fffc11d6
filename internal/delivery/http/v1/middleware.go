package v1

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/adanyl0v/go-task-manager/internal/services"
)

const userIDCtxKey = "user_id"

func (h *handlerImpl) HandleAuthMiddleware(c *gin.Context) {
	const authHeader = "Authorization"
	header := c.GetHeader(authHeader)
	if header == "" {
		h.logger.Error().Msg("authorization header required")
		abort(c, newUnauthorizedError(errAuthorizationRequired.Error()))
		return
	}

	const bearerPrefix = "Bearer"
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || parts[0] != bearerPrefix || parts[1] == "" {
		h.logger.Error().Msg("invalid authorization header")
		abort(c, newUnauthorizedError(errInvalidAuthorization.Error()))
		return
	}

	claims, err := h.auth.ParseJWTToken(parts[1])
	if err != nil {
		h.logger.Error().
			Err(err).
			Msg("failed to parse token")
		abort(c, newUnauthorizedError(errInvalidAccessToken.Error()))
		return
	}

	userID, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil {
		h.logger.Error().
			Err(err).
			Str("subject", claims.Subject).
			Msg("invalid token subject")
		abort(c, newUnauthorizedError(errInvalidAccessToken.Error()))
		return
	}

	user, err := h.users.GetUserByID(c, userID)
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			abort(c, newUnauthorizedError(errInvalidAccessToken.Error()))
			return
		}

		h.logger.Error().
			Err(err).
			Int64("user_id", userID).
			Msg("failed to fetch user")
		abort(c, newStatusTextError(http.StatusInternalServerError))
		return
	}

	c.Set(userIDCtxKey, user.ID)
	c.Next()
}

// currentUserID aborts with 401 when the auth middleware did not run.
func (h *handlerImpl) currentUserID(c *gin.Context) (int64, bool) {
	value, exists := c.Get(userIDCtxKey)
	userID, ok := value.(int64)
	if !exists || !ok {
		h.logger.Error().Msg("no user id found in context")
		abort(c, newUnauthorizedError(errUserNotFoundInContext.Error()))
		return 0, false
	}
	return userID, true
}
