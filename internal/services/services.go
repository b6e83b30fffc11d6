package services

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/adanyl0v/go-task-manager/internal/models"
)

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrUsernameTaken      = errors.New("username is already taken")
	ErrEmailTaken         = errors.New("email is already in use")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrTaskNotFound       = errors.New("task not found")
)

type AuthService interface {
	// Signup registers a user with the given username, email and password.
	//
	// It returns ErrUsernameTaken or ErrEmailTaken if another
	// user already has the given username or email.
	Signup(ctx context.Context, params SignupParams) (*models.User, error)

	// Signin checks the user's password and issues an access token.
	//
	// It returns ErrInvalidCredentials both for an unknown
	// username and for a wrong password.
	Signin(ctx context.Context, params SigninParams) (*SigninResult, error)

	// ParseJWTToken parses the given access token and returns the
	// registered claims. The subject holds the user ID.
	ParseJWTToken(token string) (*jwt.RegisteredClaims, error)
}

type UserService interface {
	// GetUserByID returns ErrUserNotFound if there is no such user.
	GetUserByID(ctx context.Context, userID int64) (*models.User, error)
}

type TaskService interface {
	// ListTasks returns the user's tasks, newest first. A status filter
	// takes precedence over a search filter. Only an empty search means
	// no filter; whitespace in it is matched as given.
	ListTasks(ctx context.Context, params ListTasksParams) ([]models.Task, error)

	// GetTask returns ErrTaskNotFound if the task doesn't
	// exist or belongs to another user. So do the rest.
	GetTask(ctx context.Context, key TaskKey) (*models.Task, error)

	CreateTask(ctx context.Context, params CreateTaskParams) (*models.Task, error)
	UpdateTask(ctx context.Context, params UpdateTaskParams) (*models.Task, error)

	// CompleteTask sets the status to completed whatever it was before.
	CompleteTask(ctx context.Context, key TaskKey) (*models.Task, error)

	DeleteTask(ctx context.Context, key TaskKey) error
}

type SignupParams struct {
	Username string
	Email    string
	Password string
}

type SigninParams struct {
	Username string
	Password string
}

type SigninResult struct {
	User                 *models.User
	AccessToken          string
	AccessTokenExpiresAt time.Time
}

type TaskKey struct {
	ID     int64
	UserID int64
}

type ListTasksParams struct {
	UserID int64
	Status *models.TaskStatus
	Search string
}

type CreateTaskParams struct {
	UserID      int64
	Title       string
	Description *string
	DueAt       time.Time
	// Defaults to models.StatusPending.
	Status *models.TaskStatus
}

type UpdateTaskParams struct {
	TaskKey
	Title       string
	Description *string
	DueAt       time.Time
	// Nil keeps the current status.
	Status *models.TaskStatus
}
