package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Services returns the catalog, recommended services first.
func Services(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"services": catalogM.List(),
	})
}

// Settings returns the site configuration used by the landing and checkout
// views.
func Settings(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"settings": settingsM.Get(),
	})
}
