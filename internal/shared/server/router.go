package server

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"discovery-backend/internal/account"
	googleauth "discovery-backend/internal/auth"
	"discovery-backend/internal/profiles"
	"discovery-backend/internal/shared/config"
	"discovery-backend/internal/shared/metrics"
	"discovery-backend/internal/shared/server/middleware"
	"discovery-backend/internal/shared/server/respond"
	"discovery-backend/internal/users"
)

// RouterDeps carries the wired handlers; construction happens in bootstrap.
type RouterDeps struct {
	Config         config.Config
	ProfileHandler *profiles.Handler
	UsersHandler   *users.Handler
	AccountHandler *account.Handler
	GoogleAuth     *googleauth.GoogleService
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
		middleware.RateLimit(insightsRateLimit()),
	)

	r.GET("/metrics", metrics.Handler())

	api := r.Group("/api/v1")
	api.GET("/health", func(c *gin.Context) {
		respond.JSON(c, http.StatusOK, gin.H{"ok": true})
	})
	if deps.GoogleAuth != nil {
		deps.GoogleAuth.RegisterRoutes(api)
	}
	if deps.UsersHandler != nil {
		deps.UsersHandler.RegisterRoutes(api)
	}
	if deps.ProfileHandler != nil {
		deps.ProfileHandler.RegisterRoutes(api)
	}
	if deps.AccountHandler != nil {
		deps.AccountHandler.RegisterRoutes(api)
	}

	return r
}

// insightsRateLimit throttles insight generation per principal; other routes
// have no matching rule and pass through.
func insightsRateLimit() middleware.RateLimitConfig {
	return middleware.RateLimitConfig{
		Rules: map[string]middleware.RateLimitRule{
			"insights": {Rate: 2, Burst: 10},
		},
		GroupFor: func(c *gin.Context) string {
			if strings.HasPrefix(c.Request.URL.Path, "/api/v1/insights") {
				return "insights"
			}
			return ""
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
