package handlers

import (
	"errors"
	"net/http"

	"todo_api/internal/domain"
	"todo_api/internal/logger"
	"todo_api/internal/repository"
	"todo_api/internal/service"

	"github.com/gin-gonic/gin"
)

// bcrypt hashes at most 72 bytes of input; anything outside the policy
// range is rejected before hashing.
const (
	minPasswordLen = 8
	maxPasswordLen = 72
)

type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

func (h *Handler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "bad request"})
		return
	}

	if len(req.Password) < minPasswordLen || len(req.Password) > maxPasswordLen {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "password must be between 8 and 72 characters"})
		return
	}

	hash, err := service.HashPassword(req.Password)
	if err != nil {
		logger.Error("password hashing failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}

	user := &domain.User{
		Email:          req.Email,
		HashedPassword: hash,
		IsActive:       true,
	}

	if err := h.UserRepo.Create(c.Request.Context(), user); err != nil {
		if errors.Is(err, repository.ErrEmailTaken) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "email already registered"})
			return
		}
		logger.Error("create user failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":        user.ID,
		"email":     user.Email,
		"is_active": user.IsActive,
	})
}

// Login takes form credentials; the username field carries the email. A
// missing account and a wrong password produce the same response.
func (h *Handler) Login(c *gin.Context) {
	email := c.PostForm("username")
	password := c.PostForm("password")
	if email == "" || password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "incorrect email or password"})
		return
	}

	user, err := h.UserRepo.GetByEmail(c.Request.Context(), email)
	if err != nil {
		if !errors.Is(err, repository.ErrUserNotFound) {
			logger.Error("login lookup failed", "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": "incorrect email or password"})
		return
	}

	if !service.CheckPassword(password, user.HashedPassword) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "incorrect email or password"})
		return
	}

	token, err := service.GenerateToken(user.Email)
	if err != nil {
		logger.Error("token generation failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"access_token": token,
		"token_type":   "bearer",
	})
}
