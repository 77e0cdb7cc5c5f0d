package middlewares

import (
	"net/http"
	"strings"

	"PaiDeFerro/config"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// AuthMiddleware validates the bearer token on admin routes and puts the
// parent identity into the request context. The handlers trust that this
// already ran; none of them re-check credentials.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
			return config.JWTSecret(), nil
		})
		if err != nil || !token.Valid {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			c.Abort()
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			c.Abort()
			return
		}

		parentID, ok := claims["parent_id"].(string)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid token: missing parent_id"})
			c.Abort()
			return
		}
		c.Set("parent_id", parentID)

		userType, ok := claims["user_type"].(string)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid token: missing user_type"})
			c.Abort()
			return
		}
		if userType != "parent" {
			c.JSON(http.StatusForbidden, gin.H{"error": "forbidden: parents only"})
			c.Abort()
			return
		}
		c.Set("user_type", userType)

		c.Next()
	}
}
