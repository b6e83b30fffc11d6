package v1

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/adanyl0v/go-task-manager/internal/models"
	"github.com/adanyl0v/go-task-manager/internal/services"
)

const taskDeletedMessage = "Task deleted successfully!"

type taskResponse struct {
	ID          int64             `json:"id"`
	Title       string            `json:"titulo"`
	Description *string           `json:"descricao"`
	CreatedAt   localDateTime     `json:"dataCriacao"`
	DueAt       localDateTime     `json:"dataVencimento"`
	Status      models.TaskStatus `json:"status"`
}

func newTaskResponse(task *models.Task) taskResponse {
	return taskResponse{
		ID:          task.ID,
		Title:       task.Title,
		Description: task.Description,
		CreatedAt:   newLocalDateTime(task.CreatedAt),
		DueAt:       newLocalDateTime(task.DueAt),
		Status:      task.Status,
	}
}

// taskRequest is the body of both create and update.
type taskRequest struct {
	Title       string             `json:"titulo" binding:"required,notblank,max=100"`
	Description *string            `json:"descricao" binding:"omitempty,max=500"`
	DueAt       *localDateTime     `json:"dataVencimento" binding:"required"`
	Status      *models.TaskStatus `json:"status"`
}

func (h *handlerImpl) HandleGetTasks(c *gin.Context) {
	userID, ok := h.currentUserID(c)
	if !ok {
		return
	}

	params := services.ListTasksParams{
		UserID: userID,
		Search: c.Query("search"),
	}
	if rawStatus := c.Query("status"); rawStatus != "" {
		status, err := models.ParseTaskStatus(rawStatus)
		if err != nil {
			h.logger.Error().
				Err(err).
				Str("status", rawStatus).
				Msg("invalid status filter")
			abort(c, newBadRequestError(errInvalidTaskStatus.Error()))
			return
		}
		params.Status = &status
	}

	tasks, err := h.tasks.ListTasks(c, params)
	if err != nil {
		h.logger.Error().
			Err(err).
			Msg("failed to list tasks")
		abort(c, newStatusTextError(http.StatusInternalServerError))
		return
	}

	response := make([]taskResponse, len(tasks))
	for i := range tasks {
		response[i] = newTaskResponse(&tasks[i])
	}

	h.logger.Info().
		Int64("user_id", userID).
		Int("count", len(response)).
		Msg("fetched tasks")
	c.JSON(http.StatusOK, response)
}

func (h *handlerImpl) HandleGetTask(c *gin.Context) {
	key, ok := h.taskKey(c)
	if !ok {
		return
	}

	task, err := h.tasks.GetTask(c, key)
	if err != nil {
		h.abortTaskError(c, err, "failed to get task")
		return
	}

	c.JSON(http.StatusOK, newTaskResponse(task))
}

func (h *handlerImpl) HandleCreateTask(c *gin.Context) {
	userID, ok := h.currentUserID(c)
	if !ok {
		return
	}

	req, ok := h.bindTaskRequest(c)
	if !ok {
		return
	}

	task, err := h.tasks.CreateTask(c, services.CreateTaskParams{
		UserID:      userID,
		Title:       req.Title,
		Description: req.Description,
		DueAt:       req.DueAt.Time(),
		Status:      req.Status,
	})
	if err != nil {
		h.abortTaskError(c, err, "failed to create task")
		return
	}

	h.logger.Info().
		Int64("task_id", task.ID).
		Msg("created task")
	c.JSON(http.StatusOK, newTaskResponse(task))
}

func (h *handlerImpl) HandleUpdateTask(c *gin.Context) {
	key, ok := h.taskKey(c)
	if !ok {
		return
	}

	req, ok := h.bindTaskRequest(c)
	if !ok {
		return
	}

	task, err := h.tasks.UpdateTask(c, services.UpdateTaskParams{
		TaskKey:     key,
		Title:       req.Title,
		Description: req.Description,
		DueAt:       req.DueAt.Time(),
		Status:      req.Status,
	})
	if err != nil {
		h.abortTaskError(c, err, "failed to update task")
		return
	}

	h.logger.Info().
		Int64("task_id", task.ID).
		Msg("updated task")
	c.JSON(http.StatusOK, newTaskResponse(task))
}

func (h *handlerImpl) HandleCompleteTask(c *gin.Context) {
	key, ok := h.taskKey(c)
	if !ok {
		return
	}

	task, err := h.tasks.CompleteTask(c, key)
	if err != nil {
		h.abortTaskError(c, err, "failed to complete task")
		return
	}

	h.logger.Info().
		Int64("task_id", task.ID).
		Msg("completed task")
	c.JSON(http.StatusOK, newTaskResponse(task))
}

func (h *handlerImpl) HandleDeleteTask(c *gin.Context) {
	key, ok := h.taskKey(c)
	if !ok {
		return
	}

	err := h.tasks.DeleteTask(c, key)
	if err != nil {
		h.abortTaskError(c, err, "failed to delete task")
		return
	}

	h.logger.Info().
		Int64("task_id", key.ID).
		Msg("deleted task")
	c.JSON(http.StatusOK, messageResponse{Message: taskDeletedMessage})
}

func (h *handlerImpl) taskKey(c *gin.Context) (services.TaskKey, bool) {
	userID, ok := h.currentUserID(c)
	if !ok {
		return services.TaskKey{}, false
	}

	taskID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		h.logger.Error().
			Err(err).
			Str("id", c.Param("id")).
			Msg("invalid task id")
		abort(c, newBadRequestError(errInvalidTaskID.Error()))
		return services.TaskKey{}, false
	}
	return services.TaskKey{ID: taskID, UserID: userID}, true
}

func (h *handlerImpl) bindTaskRequest(c *gin.Context) (*taskRequest, bool) {
	var req taskRequest
	err := c.ShouldBindJSON(&req)
	if err != nil {
		h.logger.Error().
			Err(err).
			Msg("failed to bind request body")
		abort(c, newBadRequestError(describeBindError(err)))
		return nil, false
	}
	return &req, true
}

func (h *handlerImpl) abortTaskError(c *gin.Context, err error, msg string) {
	h.logger.Error().
		Err(err).
		Msg(msg)
	switch {
	case errors.Is(err, services.ErrTaskNotFound):
		abort(c, newNotFoundError(services.ErrTaskNotFound.Error()))
	case errors.Is(err, models.ErrInvalidTaskStatus):
		abort(c, newBadRequestError(errInvalidTaskStatus.Error()))
	default:
		abort(c, newStatusTextError(http.StatusInternalServerError))
	}
}
