package v1

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/adanyl0v/go-task-manager/internal/models"
)

var (
	errInvalidRequestBody    = errors.New("invalid request body")
	errInvalidTaskID         = errors.New("invalid task id")
	errInvalidTaskStatus     = errors.New("invalid task status")
	errInvalidDateTime       = errors.New("invalid date-time")
	errAuthorizationRequired = errors.New("authorization header required")
	errInvalidAuthorization  = errors.New("invalid authorization header")
	errInvalidAccessToken    = errors.New("invalid or expired access token")
	errUserNotFoundInContext = errors.New("no user id found in context")
)

type apiError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func newAPIError(code int, message string) apiError {
	return apiError{
		Code:    code,
		Message: message,
	}
}

func (e apiError) Error() string {
	return e.Message
}

func abort(c *gin.Context, err apiError) {
	c.AbortWithStatusJSON(err.Code, gin.H{"error": err.Message})
}

func newStatusTextError(status int) apiError {
	return newAPIError(status, http.StatusText(status))
}

func newBadRequestError(message string) apiError {
	return newAPIError(http.StatusBadRequest, message)
}

func newUnauthorizedError(message string) apiError {
	return newAPIError(http.StatusUnauthorized, message)
}

func newNotFoundError(message string) apiError {
	return newAPIError(http.StatusNotFound, message)
}

func newConflictError(message string) apiError {
	return newAPIError(http.StatusConflict, message)
}

// describeBindError turns a binding failure into a message for the client.
// Only the first failed field is reported.
func describeBindError(err error) string {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) && len(validationErrs) > 0 {
		fe := validationErrs[0]
		switch fe.Tag() {
		case "required", "notblank":
			return fmt.Sprintf("%s is required", fe.Field())
		case "min":
			return fmt.Sprintf("%s must be at least %s characters long", fe.Field(), fe.Param())
		case "max":
			return fmt.Sprintf("%s must be at most %s characters long", fe.Field(), fe.Param())
		case "email":
			return fmt.Sprintf("%s must be a valid email address", fe.Field())
		default:
			return fmt.Sprintf("%s is invalid", fe.Field())
		}
	}

	switch {
	case errors.Is(err, models.ErrInvalidTaskStatus):
		return errInvalidTaskStatus.Error()
	case errors.Is(err, errInvalidDateTime):
		return err.Error()
	default:
		return errInvalidRequestBody.Error()
	}
}
