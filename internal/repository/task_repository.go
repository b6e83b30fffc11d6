package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/adanyl0v/go-task-manager/internal/models"
)

type taskRepositoryImpl struct {
	db *gorm.DB
}

func NewTaskRepository(db *gorm.DB) TaskRepository {
	return &taskRepositoryImpl{db: db}
}

func (r *taskRepositoryImpl) ListByUser(ctx context.Context, userID int64) ([]models.Task, error) {
	return r.list(ctx, ownedBy(userID))
}

func (r *taskRepositoryImpl) ListByUserAndStatus(ctx context.Context, userID int64, status models.TaskStatus) ([]models.Task, error) {
	return r.list(ctx, ownedBy(userID), withStatus(status))
}

func (r *taskRepositoryImpl) ListByUserAndTitleContains(ctx context.Context, userID int64, substring string) ([]models.Task, error) {
	return r.list(ctx, ownedBy(userID), titleContains(substring))
}

func (r *taskRepositoryImpl) list(ctx context.Context, scopes ...scope) ([]models.Task, error) {
	tasks := make([]models.Task, 0)
	err := r.db.WithContext(ctx).
		Scopes(scopes...).
		Scopes(newestFirst).
		Find(&tasks).Error
	if err != nil {
		return nil, fmt.Errorf("failed to select tasks: %w", err)
	}
	return tasks, nil
}

func (r *taskRepositoryImpl) FindByIDAndUser(ctx context.Context, id, userID int64) (*models.Task, error) {
	var task models.Task
	err := r.db.WithContext(ctx).
		Scopes(ownedBy(userID)).
		Where("id = ?", id).
		Take(&task).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRecordNotFound
		}
		return nil, fmt.Errorf("failed to select task: %w", err)
	}
	return &task, nil
}

func (r *taskRepositoryImpl) Create(ctx context.Context, task *models.Task) error {
	err := r.db.WithContext(ctx).Create(task).Error
	if err != nil {
		return fmt.Errorf("failed to insert task: %w", err)
	}
	return nil
}

func (r *taskRepositoryImpl) Update(ctx context.Context, task *models.Task) error {
	result := r.db.WithContext(ctx).
		Model(task).
		Scopes(ownedBy(task.UserID)).
		Select("titulo", "descricao", "data_vencimento", "status").
		Updates(task)
	if result.Error != nil {
		return fmt.Errorf("failed to update task: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrRecordNotFound
	}
	return nil
}

func (r *taskRepositoryImpl) Delete(ctx context.Context, task *models.Task) error {
	result := r.db.WithContext(ctx).
		Scopes(ownedBy(task.UserID)).
		Delete(task)
	if result.Error != nil {
		return fmt.Errorf("failed to delete task: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrRecordNotFound
	}
	return nil
}
