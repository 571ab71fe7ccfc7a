package http

import (
	"todo_api/internal/http/handlers"
	"todo_api/internal/http/middleware"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
)

func RegisterRoutes(r *gin.Engine, db *pgxpool.Pool, version string) {
	h := handlers.NewHandler(db)
	healthHandler := handlers.NewHealthHandler(db, version)

	// Health checks
	r.GET("/health", healthHandler.Health)
	r.GET("/healthz", healthHandler.Liveness)
	r.GET("/readyz", healthHandler.Readiness)

	r.GET("/", h.Root)

	// Account endpoints, no auth
	r.POST("/register", h.Register)
	r.POST("/login", h.Login)

	// Todos, owner-scoped behind the bearer gate
	todos := r.Group("/todos")
	todos.Use(middleware.Auth(db))
	{
		todos.POST("/", h.CreateTodo)
		todos.GET("/", h.ListTodos)
		todos.GET("/:id", h.GetTodo)
		todos.PUT("/:id", h.UpdateTodo)
		todos.DELETE("/:id", h.DeleteTodo)
	}
}
