package server

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"meetingnotes-backend/internal/auth"
	"meetingnotes-backend/internal/documents"
	"meetingnotes-backend/internal/mailer"
	"meetingnotes-backend/internal/shared/config"
	"meetingnotes-backend/internal/shared/metrics"
	"meetingnotes-backend/internal/shared/server/middleware"
	"meetingnotes-backend/internal/shared/server/respond"
	"meetingnotes-backend/internal/summarize"
)

// RouterDeps carries the handlers the router wires up.
type RouterDeps struct {
	Config           config.Config
	DocumentsHandler *documents.Handler
	SummarizeHandler *summarize.Handler
	MailHandler      *mailer.Handler
	GoogleAuth       *auth.GoogleService
}

// NewRouter constructs the Gin engine with middleware and routes registered.
func NewRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(deps.Config.CORSAllowOrigin),
		middleware.Auth(deps.Config.Env),
		middleware.RateLimit(rateLimits()),
	)

	r.GET("/metrics", metrics.Handler())

	api := r.Group("/api/v1")
	api.GET("/health", func(c *gin.Context) {
		respond.JSON(c, http.StatusOK, gin.H{"ok": true})
	})

	if deps.GoogleAuth != nil {
		deps.GoogleAuth.RegisterRoutes(api)
	}
	if deps.DocumentsHandler != nil {
		deps.DocumentsHandler.RegisterRoutes(api)
	}
	if deps.SummarizeHandler != nil {
		deps.SummarizeHandler.RegisterRoutes(api)
	}
	if deps.MailHandler != nil {
		deps.MailHandler.RegisterRoutes(api)
	}

	return r
}

// rateLimits throttles the expensive upstream calls per user.
func rateLimits() middleware.RateLimitConfig {
	return middleware.RateLimitConfig{
		Rules: map[string]middleware.RateLimitRule{
			"SUMMARIZE": {Rate: 0.5, Burst: 3},
			"EMAIL":     {Rate: 0.2, Burst: 2},
		},
		GroupFor: func(c *gin.Context) string {
			path := c.Request.URL.Path
			switch {
			case strings.HasSuffix(path, "/summarize"):
				return "SUMMARIZE"
			case strings.HasSuffix(path, "/send-email"):
				return "EMAIL"
			default:
				return ""
			}
		},
	}
}

// Addr normalizes the listen address.
func Addr(port string) string {
	if port == "" {
		return ":8080"
	}
	if port[0] == ':' {
		return port
	}
	return ":" + port
}
