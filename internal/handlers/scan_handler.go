package handlers

import (
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"go-card-ledger/internal/ai"

	"github.com/gin-gonic/gin"
)

// --- POST: /api/scan-card ---
// Takes the photographed business card as a multipart upload and returns the
// extracted contact fields. The response ALWAYS carries the full field set:
// if Gemini is unreachable or confused, the fields come back empty and the
// user types them in on the form instead.
func ScanCard(c *gin.Context) {
	fileHeader, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No image uploaded"})
		return
	}

	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Server missing Gemini API Key"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Could not read the uploaded image"})
		return
	}
	defer file.Close()

	imageBytes, err := io.ReadAll(file)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Could not read the uploaded image"})
		return
	}

	// Gemini wants the bare format, not a MIME type
	format := strings.TrimPrefix(filepath.Ext(fileHeader.Filename), ".")
	if format == "jpg" || format == "" {
		format = "jpeg"
	}

	fields := ai.ScanCard(imageBytes, format, apiKey)
	c.JSON(http.StatusOK, fields)
}
