package repository

import (
	"context"
	"errors"

	"github.com/adanyl0v/go-task-manager/internal/models"
)

var (
	ErrRecordNotFound = errors.New("record not found")
	ErrDuplicateKey   = errors.New("duplicate key")
)

// TaskRepository never crosses user boundaries: every method takes
// the owning user's id and filters on it.
type TaskRepository interface {
	// ListByUser returns the user's tasks, newest first.
	ListByUser(ctx context.Context, userID int64) ([]models.Task, error)

	// ListByUserAndStatus is ListByUser narrowed to an exact status.
	ListByUserAndStatus(ctx context.Context, userID int64, status models.TaskStatus) ([]models.Task, error)

	// ListByUserAndTitleContains is ListByUser narrowed to titles that
	// contain substring, ignoring letter case. LIKE wildcards in
	// substring are matched literally.
	ListByUserAndTitleContains(ctx context.Context, userID int64, substring string) ([]models.Task, error)

	// FindByIDAndUser returns ErrRecordNotFound both when the task does
	// not exist and when it belongs to another user.
	FindByIDAndUser(ctx context.Context, id, userID int64) (*models.Task, error)

	Create(ctx context.Context, task *models.Task) error

	// Update writes title, description, due date and status. Owner and
	// creation time are left untouched.
	Update(ctx context.Context, task *models.Task) error

	Delete(ctx context.Context, task *models.Task) error
}

type UserRepository interface {
	// Create returns ErrDuplicateKey if the username or email is taken.
	Create(ctx context.Context, user *models.User) error

	FindByID(ctx context.Context, id int64) (*models.User, error)
	FindByUsername(ctx context.Context, username string) (*models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	ExistsByUsername(ctx context.Context, username string) (bool, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}
