package handlers

import (
	"todo_api/internal/domain"
	"todo_api/internal/http/middleware"
	"todo_api/internal/repository"

	"github.com/jackc/pgx/v5/pgxpool"
)

type Handler struct {
	DB       *pgxpool.Pool
	UserRepo *repository.UserRepository
	TodoRepo *repository.TodoRepository
}

func NewHandler(db *pgxpool.Pool) *Handler {
	return &Handler{
		DB:       db,
		UserRepo: repository.NewUserRepository(db),
		TodoRepo: repository.NewTodoRepository(db),
	}
}

// currentUser returns the user injected by the auth middleware.
func currentUser(c interface{ Get(string) (any, bool) }) (*domain.User, bool) {
	v, ok := c.Get(middleware.UserKey)
	if !ok {
		return nil, false
	}
	u, ok := v.(*domain.User)
	return u, ok
}
