package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// LoginPath is where anonymous requests to protected endpoints are sent.
// The original action is discarded, matching a classic login-redirect flow.
const LoginPath = "/auth/login"

func parseUserID(secret []byte, c *gin.Context) (int, bool) {
	tokenString := c.GetHeader("Authorization")
	tokenString = strings.TrimPrefix(tokenString, "Bearer ")
	if tokenString == "" {
		return 0, false
	}

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		return secret, nil
	})
	if err != nil || !token.Valid {
		return 0, false
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return 0, false
	}
	id, ok := claims["user_id"].(float64)
	if !ok {
		return 0, false
	}

	return int(id), true
}

// Auth guards protected endpoints. Anonymous or invalid-token requests are
// redirected to the login flow and aborted.
func Auth(secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := parseUserID(secret, c)
		if !ok {
			c.Redirect(http.StatusFound, LoginPath)
			c.Abort()
			return
		}

		c.Set("user_id", userID)
		c.Next()
	}
}

// OptionalAuth resolves the requester on public endpoints that personalize
// their response (the profile's follow flag). It never aborts.
func OptionalAuth(secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		if userID, ok := parseUserID(secret, c); ok {
			c.Set("user_id", userID)
		}
		c.Next()
	}
}
