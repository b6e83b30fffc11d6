package v1

import "github.com/gin-gonic/gin"

// RegisterRoutes mounts the auth and task endpoints under /api.
func RegisterRoutes(router gin.IRouter, h Handler) {
	api := router.Group("/api")

	auth := api.Group("/auth")
	auth.POST("/signup", h.HandleSignup)
	auth.POST("/signin", h.HandleSignin)

	tasks := api.Group("/tasks", h.HandleAuthMiddleware)
	tasks.GET("", h.HandleGetTasks)
	tasks.POST("", h.HandleCreateTask)
	tasks.GET("/:id", h.HandleGetTask)
	tasks.PUT("/:id", h.HandleUpdateTask)
	tasks.PUT("/:id/complete", h.HandleCompleteTask)
	tasks.DELETE("/:id", h.HandleDeleteTask)
}
