package handlers

import (
	"net/http"
	"time"

	"github.com/waste3d/course-provider/internal/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type RouterConfig struct {
	AllowedOrigins []string
	// RateLimit is requests per minute per client IP; zero disables limiting.
	RateLimit int
}

// NewRouter mounts the GraphQL executor at POST /graphql behind bearer
// authentication. limiter may be nil.
func NewRouter(
	executor http.Handler,
	validator middleware.TokenValidator,
	limiter *middleware.RateLimiter,
	cfg RouterConfig,
	log *zap.Logger,
) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestLogger(log))

	corsConfig := cors.DefaultConfig()
	if len(cfg.AllowedOrigins) == 0 || (len(cfg.AllowedOrigins) == 1 && cfg.AllowedOrigins[0] == "*") {
		corsConfig.AllowAllOrigins = true
	} else {
		corsConfig.AllowOrigins = cfg.AllowedOrigins
		corsConfig.AllowCredentials = true
	}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization"}
	corsConfig.AllowMethods = []string{"GET", "POST", "OPTIONS"}
	r.Use(cors.New(corsConfig))

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	chain := []gin.HandlerFunc{}
	if limiter != nil && cfg.RateLimit > 0 {
		chain = append(chain, limiter.Limit("graphql", cfg.RateLimit, time.Minute))
	}
	chain = append(chain,
		middleware.AuthMiddleware(validator, log),
		gin.WrapH(executor),
	)
	r.POST("/graphql", chain...)

	return r
}
