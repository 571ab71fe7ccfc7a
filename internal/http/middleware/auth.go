package middleware

import (
	"net/http"
	"strings"

	"todo_api/internal/repository"
	"todo_api/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
)

// UserKey is the gin context key the resolved user is stored under.
const UserKey = "user"

// Auth extracts and verifies the bearer token, resolves its subject to a
// user and aborts with 401 otherwise. Protected handlers run only after a
// user has been injected into the context.
func Auth(db *pgxpool.Pool) gin.HandlerFunc {
	userRepo := repository.NewUserRepository(db)

	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			unauthorized(c)
			return
		}

		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			unauthorized(c)
			return
		}

		email, err := service.ParseToken(parts[1])
		if err != nil {
			unauthorized(c)
			return
		}

		// A valid token may outlive its account; treat a missing or
		// deactivated user the same as a bad token.
		user, err := userRepo.GetByEmail(c.Request.Context(), email)
		if err != nil || !user.IsActive {
			unauthorized(c)
			return
		}

		c.Set(UserKey, user)
		c.Next()
	}
}

func unauthorized(c *gin.Context) {
	AuthFailures.Inc()
	c.Header("WWW-Authenticate", "Bearer")
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "could not validate credentials"})
}
