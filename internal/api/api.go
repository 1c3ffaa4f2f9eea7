// Package api implements the HTTP API for the comparison service.
package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/jonesrussell/gocompare/internal/config"
	"github.com/jonesrussell/gocompare/internal/content"
	"github.com/jonesrussell/gocompare/internal/logger"
	"github.com/jonesrussell/gocompare/internal/selection"
)

// requestIDHeader carries the per-request ID back to the caller.
const requestIDHeader = "X-Request-ID"

// Handlers holds the dependencies shared by the API handlers. The device
// cache lives for the server's lifetime, so repeat comparisons of the same
// slugs skip the content API.
type Handlers struct {
	client content.Reader
	cache  *selection.DeviceCache
	cfg    config.Interface
	log    logger.Interface
}

// NewHandlers creates the API handler set.
func NewHandlers(client content.Reader, cfg config.Interface, log logger.Interface) *Handlers {
	return &Handlers{
		client: client,
		cache:  selection.NewDeviceCache(),
		cfg:    cfg,
		log:    log.WithComponent("api"),
	}
}

// SetupRouter creates and configures the Gin router with all routes.
func SetupRouter(h *Handlers) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(requestIDMiddleware())
	router.Use(loggingMiddleware(h.log))
	router.Use(corsMiddleware())

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	v1 := router.Group("/api/v1")
	v1.GET("/search", h.handleSearch)
	v1.GET("/compare", h.handleCompare)

	return router
}

// NewServer wraps the router in an http.Server with the configured timeouts.
func NewServer(h *Handlers) *http.Server {
	serverCfg := h.cfg.GetServerConfig()
	return &http.Server{
		Addr:         serverCfg.Address,
		Handler:      SetupRouter(h),
		ReadTimeout:  serverCfg.ReadTimeout,
		WriteTimeout: serverCfg.WriteTimeout,
		IdleTimeout:  serverCfg.IdleTimeout,
	}
}

// requestIDMiddleware assigns each request a UUID and echoes it in the
// response headers.
func requestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(requestIDHeader)
		if requestID == "" {
			requestID = uuid.NewString()
		}
		c.Set("request_id", requestID)
		c.Writer.Header().Set(requestIDHeader, requestID)
		c.Next()
	}
}

// loggingMiddleware creates a middleware that logs HTTP requests
func loggingMiddleware(log logger.Interface) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		query := c.Request.URL.RawQuery

		c.Next()

		log.WithRequestID(c.GetString("request_id")).Info("HTTP Request",
			"method", c.Request.Method,
			"path", path,
			"query", query,
			"status", c.Writer.Status(),
			"latency", time.Since(start),
		)
	}
}

// corsMiddleware adds CORS headers to allow frontend access
func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Headers",
			"Content-Type, Content-Length, Accept-Encoding, Authorization, accept, origin, Cache-Control")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, OPTIONS")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}
