package controllers

import (
	"net/http"
	"strconv"

	"otttrusted/settings"
	"otttrusted/utils"

	"github.com/gin-gonic/gin"
)

func AddReview(c *gin.Context) {
	var r settings.Review
	if err := c.BindJSON(&r); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	if r.ID == "" {
		r.ID = utils.GenerateUUID()
	}
	if err := settingsM.AddReview(r); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save review"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"review": r})
}

// UpdateReview edits the testimonial at the given display position.
func UpdateReview(c *gin.Context) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid review index"})
		return
	}

	var patch settings.ReviewPatch
	if err := c.BindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	if err := settingsM.UpdateReview(index, patch); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save review"})
		return
	}

	c.JSON(http.StatusOK, gin.H{})
}

func RemoveReview(c *gin.Context) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid review index"})
		return
	}

	if err := settingsM.RemoveReview(index); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to remove review"})
		return
	}

	c.JSON(http.StatusOK, gin.H{})
}
