package api

import (
	"net/http"

	"storefront-backend/internal/session"

	"github.com/gin-gonic/gin"
)

// The theme preference lives in the durable tier under the "theme" key,
// alongside (but unrelated to) the auth session entries.

var themeTier session.Tier

// InitThemeSettings wires the durable tier into the settings endpoints.
func InitThemeSettings(tier session.Tier) {
	themeTier = tier
}

// UpdateThemeRequest represents the request body for updating the theme
type UpdateThemeRequest struct {
	Theme string `json:"theme" binding:"required"`
}

// GetThemeSettings returns the stored theme preference
// GET /api/settings/theme
func GetThemeSettings(c *gin.Context) {
	theme, ok := themeTier.Get(session.KeyTheme)
	if !ok {
		theme = "light"
	}
	c.JSON(http.StatusOK, gin.H{"theme": theme})
}

// UpdateThemeSettings stores the theme preference
// PUT /api/settings/theme
func UpdateThemeSettings(c *gin.Context) {
	var req UpdateThemeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if req.Theme != "dark" && req.Theme != "light" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "theme must be \"dark\" or \"light\""})
		return
	}

	themeTier.Set(session.KeyTheme, req.Theme)
	c.JSON(http.StatusOK, gin.H{
		"message": "Theme updated successfully",
		"theme":   req.Theme,
	})
}
