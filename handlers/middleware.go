package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/minwoopark/board-api/token"
)

// Context keys set by AuthRequired for downstream handlers.
const (
	ctxUsername = "username"
	ctxNickname = "nickname"
)

// AuthRequired verifies the bearer token and stores the verified identity on
// the request context. Expired and malformed tokens both abort with 401,
// with distinct messages.
func AuthRequired(issuer *token.Issuer) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header required"})
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid authorization header format"})
			return
		}

		claims, err := issuer.Verify(parts[1])
		if err != nil {
			if errors.Is(err, token.ErrExpired) {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Token expired"})
			} else {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			}
			return
		}

		c.Set(ctxUsername, claims.Subject)
		c.Set(ctxNickname, claims.Nickname)
		c.Next()
	}
}
