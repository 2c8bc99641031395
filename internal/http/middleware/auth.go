package middleware

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const (
	userNameKey = "auth_user_name"
	userRoleKey = "auth_user_role"
	userIDKey   = "auth_user_id"
)

// Auth validates the bearer token and stores the caller's identity in the
// context. Booking endpoints rely on it to resolve the passenger name; how
// the identity was originally verified is the auth handler's business.
func Auth(secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing bearer token"})
			return
		}

		raw := strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
		token, err := jwt.Parse(raw, func(t *jwt.Token) (any, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
			}
			return secret, nil
		})
		if err != nil || !token.Valid {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired token"})
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token claims"})
			return
		}

		if name, ok := claims["name"].(string); ok {
			c.Set(userNameKey, name)
		}
		if role, ok := claims["role"].(string); ok {
			c.Set(userRoleKey, role)
		}
		if id, ok := claims["user_id"].(float64); ok {
			c.Set(userIDKey, int64(id))
		}
		c.Next()
	}
}

// GetUserName returns the authenticated caller's display name, if any.
func GetUserName(c *gin.Context) string {
	if v, ok := c.Get(userNameKey); ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

// GetUserRole returns the authenticated caller's role, if any.
func GetUserRole(c *gin.Context) string {
	if v, ok := c.Get(userRoleKey); ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}
