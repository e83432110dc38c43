package handlers

import (
	"net/http"

	"go-card-ledger/internal/database"
	"go-card-ledger/internal/models"

	"github.com/gin-gonic/gin"
)

type ProfileRequest struct {
	Name         string `json:"name"`
	BusinessName string `json:"business_name"`
	Currency     string `json:"currency"`
}

// --- GET: /api/profile ---
// Always answers, even on first launch (defaults with INR currency)
func GetProfile(c *gin.Context) {
	c.JSON(http.StatusOK, database.Profile())
}

// --- PUT: /api/profile ---
func UpdateProfile(c *gin.Context) {
	var req ProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	currency := req.Currency
	if currency == "" {
		currency = "INR"
	}

	profile := models.UserProfile{
		Name:         req.Name,
		BusinessName: req.BusinessName,
		Currency:     currency,
	}
	if err := database.SaveProfile(profile); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save profile"})
		return
	}

	c.JSON(http.StatusOK, profile)
}
