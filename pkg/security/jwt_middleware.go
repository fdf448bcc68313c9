// Package security validates the JWT issued by the plant's SSO gateway and
// exposes the operator identity claims that stamp the *_by workflow fields.
// Login and user management live outside this service.
package security

import (
	"fmt"
	"net/http"
	"os"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

func jwtSecret() []byte {
	return []byte(os.Getenv("JWT_SECRET"))
}

// JWTMiddleware validates the bearer token and stores the operator claims
// on the request context.
func JWTMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header missing"})
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method")
			}
			return jwtSecret(), nil
		})

		if err != nil || !token.Valid {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			c.Abort()
			return
		}

		claims := token.Claims.(jwt.MapClaims)
		c.Set("operator", claims["operator"])
		c.Set("division", claims["division"])
		c.Next()
	}
}

// RequireDivision ensures the token's division claim matches one of the
// allowed divisions.
func RequireDivision(divisions ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		division, exists := c.Get("division")
		if !exists {
			c.JSON(http.StatusForbidden, gin.H{"error": "Forbidden: missing division claim"})
			c.Abort()
			return
		}

		name, ok := division.(string)
		if !ok {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Invalid division format"})
			c.Abort()
			return
		}

		for _, allowed := range divisions {
			if strings.EqualFold(name, allowed) {
				c.Next()
				return
			}
		}

		c.JSON(http.StatusForbidden, gin.H{"error": "Forbidden: insufficient permissions"})
		c.Abort()
	}
}

// OperatorFromContext returns the operator name claim, if present.
func OperatorFromContext(c *gin.Context) (string, bool) {
	operator, exists := c.Get("operator")
	if !exists {
		return "", false
	}
	name, ok := operator.(string)
	return name, ok && name != ""
}
