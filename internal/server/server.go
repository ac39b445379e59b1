// Package server exposes the generation pipeline over HTTP.
package server

import (
	"log/slog"

	"github.com/gin-gonic/gin"

	"adcraft/internal/app"
)

type Server struct {
	service *app.Service
	addr    string
}

func New(service *app.Service, addr string) *Server {
	return &Server{service: service, addr: addr}
}

// Router builds the gin engine with all routes registered.
func (s *Server) Router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), requestLogger())

	r.POST("/generate-from-prompt", s.handleGenerateFromPrompt)
	r.GET("/generate-from-twitter", s.handleGenerateFromTwitter)
	r.GET("/list-ads", s.handleListAds)
	r.GET("/video/:filename", s.handleVideo)

	return r
}

// Run blocks serving HTTP until the listener fails.
func (s *Server) Run() error {
	slog.Info("Starting HTTP server", "addr", s.addr)
	return s.Router().Run(s.addr)
}

func requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()
		slog.Info("Request handled",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
		)
	}
}
