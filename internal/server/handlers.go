package server

import (
	"errors"
	"log/slog"
	"net/http"
	"path/filepath"

	"github.com/gin-gonic/gin"

	"adcraft/internal/app"
	"adcraft/internal/library"
)

func (s *Server) handleGenerateFromPrompt(c *gin.Context) {
	prompt := c.PostForm("prompt")

	record, err := s.service.GenerateFromPrompt(c.Request.Context(), prompt)
	if err != nil {
		if errors.Is(err, app.ErrEmptyPrompt) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Please provide a prompt"})
			return
		}
		slog.Error("Prompt generation failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate ad. Please try again."})
		return
	}

	c.JSON(http.StatusOK, record)
}

func (s *Server) handleGenerateFromTwitter(c *gin.Context) {
	record, err := s.service.GenerateFromTrends(c.Request.Context())
	if err != nil {
		if errors.Is(err, app.ErrNoTrendingContent) {
			c.JSON(http.StatusNotFound, gin.H{"error": "No viral content found on Twitter"})
			return
		}
		slog.Error("Twitter generation failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate ad. Please try again."})
		return
	}

	c.JSON(http.StatusOK, record)
}

func (s *Server) handleListAds(c *gin.Context) {
	records, err := s.service.ListAds()
	if err != nil {
		slog.Error("Listing ads failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list ads"})
		return
	}

	if records == nil {
		records = []library.AdRecord{}
	}
	c.JSON(http.StatusOK, records)
}

func (s *Server) handleVideo(c *gin.Context) {
	filename := filepath.Base(c.Param("filename"))

	path, err := s.service.Library().VideoPath(filename)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Video not found"})
		return
	}

	c.Header("Content-Type", "video/mp4")
	c.File(path)
}
