package routes

import (
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"

	"TASK_MANAGER_API/internal/config"
	"TASK_MANAGER_API/internal/handlers"
	"TASK_MANAGER_API/internal/middleware"
)

// SetupRoutes configures all application routes on an explicit mux
func SetupRoutes(mux *http.ServeMux, cfg *config.Config, authHandler *handlers.AuthHandler, tasksHandler *handlers.TasksHandler, healthHandler *handlers.HealthHandler) {
	jwtCfg := &cfg.JWT

	// Health check routes
	mux.HandleFunc("GET /healthz", healthHandler.HealthCheck)
	mux.HandleFunc("GET /livez", healthHandler.LivenessCheck)
	mux.HandleFunc("GET /readyz", healthHandler.ReadinessCheck)

	// Authentication routes
	mux.HandleFunc("POST /auth/register", authHandler.Register)
	mux.HandleFunc("POST /auth/login", authHandler.Login)

	// Task routes; listing tolerates anonymous access
	mux.HandleFunc("GET /tasks", middleware.OptionalAuth(tasksHandler.ListTasks, jwtCfg))
	mux.HandleFunc("POST /tasks", middleware.RequireAuth(tasksHandler.CreateTask, jwtCfg))
	mux.HandleFunc("GET /tasks/{id}", middleware.RequireAuth(tasksHandler.GetTask, jwtCfg))
	mux.HandleFunc("PUT /tasks/{id}", middleware.RequireAuth(tasksHandler.UpdateTask, jwtCfg))
	mux.HandleFunc("DELETE /tasks/{id}", middleware.RequireAuth(tasksHandler.DeleteTask, jwtCfg))

	// API documentation
	mux.Handle("GET /swagger/", httpSwagger.WrapHandler)

	// Root route
	mux.HandleFunc("GET /{$}", healthHandler.Index)
}
