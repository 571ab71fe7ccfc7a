package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"todo_api/internal/domain"
	"todo_api/internal/logger"
	"todo_api/internal/repository"

	"github.com/gin-gonic/gin"
)

type CreateTodoRequest struct {
	Title       string  `json:"title" binding:"required"`
	Description *string `json:"description"`
}

type UpdateTodoRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
}

func (h *Handler) CreateTodo(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "could not validate credentials"})
		return
	}

	var req CreateTodoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "bad request"})
		return
	}

	todo := &domain.Todo{
		OwnerID:     user.ID,
		Title:       req.Title,
		Description: req.Description,
	}

	if err := h.TodoRepo.Create(c.Request.Context(), todo); err != nil {
		logger.Error("create todo failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}

	c.JSON(http.StatusOK, todo)
}

func (h *Handler) ListTodos(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "could not validate credentials"})
		return
	}

	skip, _ := strconv.Atoi(c.DefaultQuery("skip", "0"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "100"))

	todos, err := h.TodoRepo.List(c.Request.Context(), user.ID, skip, limit)
	if err != nil {
		logger.Error("list todos failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}
	if todos == nil {
		todos = []*domain.Todo{}
	}

	c.JSON(http.StatusOK, todos)
}

func (h *Handler) GetTodo(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "could not validate credentials"})
		return
	}

	id, ok := todoID(c)
	if !ok {
		return
	}

	todo, err := h.TodoRepo.GetByID(c.Request.Context(), user.ID, id)
	if err != nil {
		if errors.Is(err, repository.ErrTodoNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "todo not found"})
			return
		}
		logger.Error("get todo failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}

	c.JSON(http.StatusOK, todo)
}

func (h *Handler) UpdateTodo(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "could not validate credentials"})
		return
	}

	id, ok := todoID(c)
	if !ok {
		return
	}

	var req UpdateTodoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "bad request"})
		return
	}
	if req.Title != nil && *req.Title == "" {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "title must not be empty"})
		return
	}

	todo, err := h.TodoRepo.Update(c.Request.Context(), user.ID, id, domain.TodoPatch{
		Title:       req.Title,
		Description: req.Description,
	})
	if err != nil {
		if errors.Is(err, repository.ErrTodoNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "todo not found"})
			return
		}
		logger.Error("update todo failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}

	c.JSON(http.StatusOK, todo)
}

func (h *Handler) DeleteTodo(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "could not validate credentials"})
		return
	}

	id, ok := todoID(c)
	if !ok {
		return
	}

	deleted, err := h.TodoRepo.Delete(c.Request.Context(), user.ID, id)
	if err != nil {
		logger.Error("delete todo failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}
	if !deleted {
		c.JSON(http.StatusNotFound, gin.H{"error": "todo not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": fmt.Sprintf("todo %d deleted", id)})
}

// todoID parses the :id route param. A non-numeric id is the same as a
// missing todo.
func todoID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "todo not found"})
		return 0, false
	}
	return id, true
}
