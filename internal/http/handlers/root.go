package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Root is a small service banner for unauthenticated clients.
func (h *Handler) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message":    "todo API",
		"operations": []string{"POST /register", "POST /login", "POST /todos/", "GET /todos/", "GET /todos/:id", "PUT /todos/:id", "DELETE /todos/:id"},
	})
}
