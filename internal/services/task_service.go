package services

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/adanyl0v/go-task-manager/internal/models"
	"github.com/adanyl0v/go-task-manager/internal/repository"
)

type taskServiceImpl struct {
	logger zerolog.Logger
	tasks  repository.TaskRepository
}

func NewTaskService(
	logger zerolog.Logger,
	tasks repository.TaskRepository,
) TaskService {
	return &taskServiceImpl{
		logger: logger,
		tasks:  tasks,
	}
}

func (s *taskServiceImpl) ListTasks(ctx context.Context, params ListTasksParams) ([]models.Task, error) {
	var (
		tasks []models.Task
		err   error
	)
	switch {
	case params.Status != nil:
		if !params.Status.Valid() {
			return nil, models.ErrInvalidTaskStatus
		}
		tasks, err = s.tasks.ListByUserAndStatus(ctx, params.UserID, *params.Status)
	case params.Search != "":
		tasks, err = s.tasks.ListByUserAndTitleContains(ctx, params.UserID, params.Search)
	default:
		tasks, err = s.tasks.ListByUser(ctx, params.UserID)
	}
	if err != nil {
		s.logger.Error().
			Err(err).
			Int64("user_id", params.UserID).
			Msg("failed to select tasks")
		return nil, err
	}
	s.logger.Debug().
		Int("count", len(tasks)).
		Int64("user_id", params.UserID).
		Msg("selected tasks")

	s.logger.Info().
		Int("count", len(tasks)).
		Int64("user_id", params.UserID).
		Msg("tasks found")
	return tasks, nil
}

func (s *taskServiceImpl) GetTask(ctx context.Context, key TaskKey) (*models.Task, error) {
	task, err := s.findTask(ctx, key)
	if err != nil {
		return nil, err
	}

	s.logger.Info().
		Int64("task_id", task.ID).
		Int64("user_id", key.UserID).
		Msg("task found")
	return task, nil
}

func (s *taskServiceImpl) CreateTask(ctx context.Context, params CreateTaskParams) (*models.Task, error) {
	status := models.StatusPending
	if params.Status != nil {
		if !params.Status.Valid() {
			return nil, models.ErrInvalidTaskStatus
		}
		status = *params.Status
	}

	task := &models.Task{
		UserID:      params.UserID,
		Title:       params.Title,
		Description: params.Description,
		Status:      status,
		CreatedAt:   now(),
		DueAt:       normalizeTime(params.DueAt),
	}

	err := s.tasks.Create(ctx, task)
	if err != nil {
		s.logger.Error().
			Err(err).
			Int64("user_id", task.UserID).
			Msg("failed to insert task")
		return nil, err
	}
	s.logger.Debug().
		Int64("task_id", task.ID).
		Msg("inserted task")

	s.logger.Info().
		Int64("task_id", task.ID).
		Int64("user_id", task.UserID).
		Msg("created task")
	return task, nil
}

func (s *taskServiceImpl) UpdateTask(ctx context.Context, params UpdateTaskParams) (*models.Task, error) {
	if params.Status != nil && !params.Status.Valid() {
		return nil, models.ErrInvalidTaskStatus
	}

	task, err := s.findTask(ctx, params.TaskKey)
	if err != nil {
		return nil, err
	}

	task.Title = params.Title
	task.Description = params.Description
	task.DueAt = normalizeTime(params.DueAt)
	if params.Status != nil {
		task.Status = *params.Status
	}

	err = s.saveTask(ctx, task)
	if err != nil {
		return nil, err
	}

	s.logger.Info().
		Int64("task_id", task.ID).
		Int64("user_id", task.UserID).
		Msg("updated task")
	return task, nil
}

func (s *taskServiceImpl) CompleteTask(ctx context.Context, key TaskKey) (*models.Task, error) {
	task, err := s.findTask(ctx, key)
	if err != nil {
		return nil, err
	}

	task.Status = models.StatusCompleted
	err = s.saveTask(ctx, task)
	if err != nil {
		return nil, err
	}

	s.logger.Info().
		Int64("task_id", task.ID).
		Int64("user_id", task.UserID).
		Msg("completed task")
	return task, nil
}

func (s *taskServiceImpl) DeleteTask(ctx context.Context, key TaskKey) error {
	task, err := s.findTask(ctx, key)
	if err != nil {
		return err
	}

	err = s.tasks.Delete(ctx, task)
	if err != nil {
		if errors.Is(err, repository.ErrRecordNotFound) {
			s.logger.Error().
				Int64("task_id", key.ID).
				Int64("user_id", key.UserID).
				Msg("task not found")
			return ErrTaskNotFound
		}

		s.logger.Error().
			Err(err).
			Int64("task_id", key.ID).
			Msg("failed to delete task")
		return err
	}
	s.logger.Debug().
		Int64("task_id", key.ID).
		Msg("deleted task")

	s.logger.Info().
		Int64("task_id", key.ID).
		Int64("user_id", key.UserID).
		Msg("deleted task")
	return nil
}

func (s *taskServiceImpl) findTask(ctx context.Context, key TaskKey) (*models.Task, error) {
	task, err := s.tasks.FindByIDAndUser(ctx, key.ID, key.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrRecordNotFound) {
			s.logger.Error().
				Int64("task_id", key.ID).
				Int64("user_id", key.UserID).
				Msg("task not found")
			return nil, ErrTaskNotFound
		}

		s.logger.Error().
			Err(err).
			Int64("task_id", key.ID).
			Msg("failed to select task")
		return nil, err
	}
	s.logger.Debug().
		Int64("task_id", task.ID).
		Msg("selected task")
	return task, nil
}

func (s *taskServiceImpl) saveTask(ctx context.Context, task *models.Task) error {
	err := s.tasks.Update(ctx, task)
	if err != nil {
		if errors.Is(err, repository.ErrRecordNotFound) {
			s.logger.Error().
				Int64("task_id", task.ID).
				Int64("user_id", task.UserID).
				Msg("task not found")
			return ErrTaskNotFound
		}

		s.logger.Error().
			Err(err).
			Int64("task_id", task.ID).
			Msg("failed to update task")
		return err
	}
	s.logger.Debug().
		Int64("task_id", task.ID).
		Str("status", task.Status.String()).
		Msg("updated task")
	return nil
}

// Timestamps are kept in UTC at microsecond precision, which is
// what postgres stores.
func normalizeTime(t time.Time) time.Time {
	return t.UTC().Truncate(time.Microsecond)
}

func now() time.Time {
	return normalizeTime(time.Now())
}
