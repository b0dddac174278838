package controllers

import (
	"context"
	"io"
	"net/http"
	"strings"

	"github.com/Guillo-bit/NutrIA/models"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// FoodAnalyzer runs the image analysis pipeline.
type FoodAnalyzer interface {
	AnalyzeImage(ctx context.Context, image []byte, mimeType string) (*models.AnalysisResult, error)
}

type AnalysisController struct {
	svc FoodAnalyzer
	log *zap.Logger
}

func NewAnalysisController(svc FoodAnalyzer, log *zap.Logger) *AnalysisController {
	return &AnalysisController{svc: svc, log: log}
}

// POST /analyze-food  (multipart form, field "file")
func (ctl *AnalysisController) AnalyzeFood(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "No file uploaded"})
		return
	}

	contentType := fileHeader.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, "image/") {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "File must be an image"})
		return
	}

	f, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Internal server error: " + err.Error()})
		return
	}
	defer f.Close()

	image, err := io.ReadAll(f)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Internal server error: " + err.Error()})
		return
	}
	if len(image) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "Empty image file"})
		return
	}

	ctl.log.Info("received image",
		zap.String("filename", fileHeader.Filename),
		zap.Int("size_bytes", len(image)),
		zap.String("request_id", c.GetString("requestID")))

	result, err := ctl.svc.AnalyzeImage(c.Request.Context(), image, contentType)
	if err != nil {
		ctl.log.Error("error analyzing food image", zap.Error(err),
			zap.String("request_id", c.GetString("requestID")))
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Food detection failed: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, result)
}
