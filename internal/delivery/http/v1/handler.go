package v1

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/adanyl0v/go-task-manager/internal/services"
)

type Handler interface {
	HandleSignup(c *gin.Context)
	HandleSignin(c *gin.Context)
	HandleAuthMiddleware(c *gin.Context)

	HandleGetTasks(c *gin.Context)
	HandleGetTask(c *gin.Context)
	HandleCreateTask(c *gin.Context)
	HandleUpdateTask(c *gin.Context)
	HandleCompleteTask(c *gin.Context)
	HandleDeleteTask(c *gin.Context)
}

type handlerImpl struct {
	logger zerolog.Logger
	auth   services.AuthService
	users  services.UserService
	tasks  services.TaskService
}

func New(
	logger zerolog.Logger,
	authService services.AuthService,
	userService services.UserService,
	taskService services.TaskService,
) Handler {
	mustRegisterValidations(logger)
	return &handlerImpl{
		logger: logger,
		auth:   authService,
		users:  userService,
		tasks:  taskService,
	}
}
