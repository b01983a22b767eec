package controllers

import (
	"net/http"
	"os"
	"time"

	"otttrusted/auth"
	"otttrusted/catalog"
	"otttrusted/orders"
	"otttrusted/settings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

var (
	gate      *auth.Gate
	catalogM  *catalog.Manager
	orderM    *orders.Manager
	settingsM *settings.Manager
)

// Setup wires the shared state managers into the handler package.
func Setup(g *auth.Gate, c *catalog.Manager, o *orders.Manager, s *settings.Manager) {
	gate = g
	catalogM = c
	orderM = o
	settingsM = s
}

func issueToken(user auth.User) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": user.ID,
		"exp": time.Now().Add(time.Hour * 24 * 30).Unix(),
	})
	return token.SignedString([]byte(os.Getenv("SECRET")))
}

func Signup(c *gin.Context) {
	var body struct {
		Name     string `json:"name"`
		Email    string `json:"email"`
		Phone    string `json:"phone"`
		Password string `json:"password"`
	}

	if c.Bind(&body) != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Failed to read body",
		})
		return
	}

	// register implies login
	user, err := gate.Register(body.Name, body.Email, body.Phone, body.Password)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to create user",
		})
		return
	}

	tokenString, err := issueToken(user)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to create token",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token": tokenString,
		"user":  user.Sanitized(),
	})
}

func Login(c *gin.Context) {
	var body struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}

	if c.Bind(&body) != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Failed to read body",
		})
		return
	}

	user, err := gate.Login(body.Email, body.Password)
	if err != nil {
		// generic on purpose, no field-level detail
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid email or password",
		})
		return
	}

	tokenString, err := issueToken(user)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to create token",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token": tokenString,
		"user":  user.Sanitized(),
	})
}

func Logout(c *gin.Context) {
	if err := gate.Logout(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to clear session",
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{})
}

func User(c *gin.Context) {
	user, _ := c.Get("user")

	userinfo := user.(auth.User)

	c.JSON(http.StatusOK, gin.H{
		"id":    userinfo.ID,
		"name":  userinfo.Name,
		"email": userinfo.Email,
		"phone": userinfo.Phone,
		"role":  userinfo.Role,
	})
}
