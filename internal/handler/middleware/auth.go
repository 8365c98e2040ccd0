package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"rentloop/internal/pkg/jwt"

	"github.com/gin-gonic/gin"
)

// TokenValidator is the slice of jwt.Service the middleware needs.
type TokenValidator interface {
	ValidateToken(tokenString string) (*jwt.Claims, error)
}

type AuthMiddleware struct {
	tokenValidator TokenValidator
}

const ctxUserIDKey = "user_id"

func NewAuthMiddleware(tokenValidator TokenValidator) *AuthMiddleware {
	return &AuthMiddleware{
		tokenValidator: tokenValidator,
	}
}

func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		var token string

		authHeader := c.GetHeader("Authorization")
		if authHeader != "" && strings.HasPrefix(authHeader, "Bearer ") {
			token = strings.TrimSpace(authHeader[len("Bearer "):])
		}

		if token == "" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Access token required",
			})
			c.Abort()
			return
		}

		claims, err := m.tokenValidator.ValidateToken(token)
		if err != nil {
			slog.Warn("Token validation failed in auth middleware", "error", err.Error())
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Invalid or expired token",
			})
			c.Abort()
			return
		}

		c.Set(ctxUserIDKey, claims.UserID)
		c.Next()
	}
}

// GatewayAuth guards the endpoints only the chat gateway may call: sweep
// triggers and identity registration. The gateway authenticates with a
// shared token, not a per-user JWT.
type GatewayAuth struct {
	token string
}

func NewGatewayAuth(token string) *GatewayAuth {
	return &GatewayAuth{token: token}
}

func (m *GatewayAuth) Require() gin.HandlerFunc {
	return func(c *gin.Context) {
		if m.token == "" || c.GetHeader("X-Gateway-Token") != m.token {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Gateway token required",
			})
			c.Abort()
			return
		}
		c.Next()
	}
}

func GetUserID(c *gin.Context) (int64, bool) {
	userID, exists := c.Get(ctxUserIDKey)
	if !exists {
		return 0, false
	}

	id, ok := userID.(int64)
	return id, ok
}
