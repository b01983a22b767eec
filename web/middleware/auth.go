package middleware

import (
	"net/http"
	"os"
	"strings"

	"otttrusted/auth"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// authenticate resolves the bearer token issued at login back to its user.
// Aborts with a generic 401 on any failure.
func authenticate(c *gin.Context, gate *auth.Gate) (auth.User, bool) {
	tokenString := bearerToken(c)
	if tokenString == "" {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return auth.User{}, false
	}

	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(os.Getenv("SECRET")), nil
	})
	if err != nil || !token.Valid {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return auth.User{}, false
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return auth.User{}, false
	}

	sub, _ := claims["sub"].(string)
	user, found := gate.ByID(sub)
	if !found {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return auth.User{}, false
	}
	return user, true
}

// RequireAuth loads the acting user into the context under "user".
func RequireAuth(gate *auth.Gate) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := authenticate(c, gate)
		if !ok {
			return
		}
		c.Set("user", user)
		c.Next()
	}
}

// AdminAuth is RequireAuth plus the ADMIN role check.
func AdminAuth(gate *auth.Gate) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := authenticate(c, gate)
		if !ok {
			return
		}
		if user.Role != auth.RoleAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Admin access required"})
			return
		}
		c.Set("user", user)
		c.Next()
	}
}

func bearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if strings.HasPrefix(header, "Bearer ") {
		return strings.TrimPrefix(header, "Bearer ")
	}
	// fall back to a cookie for browser clients
	if cookie, err := c.Cookie("Authorization"); err == nil {
		return cookie
	}
	return ""
}
