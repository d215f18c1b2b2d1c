package main

import (
	"context"
	"errors"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/waste3d/course-provider/config"
	"github.com/waste3d/course-provider/internal/application"
	"github.com/waste3d/course-provider/internal/infrastructure/logging"
	"github.com/waste3d/course-provider/internal/infrastructure/repository"
	"github.com/waste3d/course-provider/internal/infrastructure/security"
	"github.com/waste3d/course-provider/internal/middleware"
	"github.com/waste3d/course-provider/internal/transport/gql"
	grpc_server "github.com/waste3d/course-provider/internal/transport/grpc"
	handlers "github.com/waste3d/course-provider/internal/transport/http"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		log.Fatalf("Config load failed: %v", err)
	}

	logger, err := logging.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		log.Fatalf("Logger init failed: %v", err)
	}
	defer logger.Sync()

	db, err := gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{TranslateError: true})
	if err != nil {
		logger.Fatal("DB connect failed", zap.Error(err))
	}

	sessions := repository.NewSessions(db)
	if err := sessions.Migrate(context.Background()); err != nil {
		logger.Fatal("DB migrate failed", zap.Error(err))
	}

	tokens, err := security.NewTokenManager([]byte(cfg.JWTSigningKey), cfg.JWTIssuer, cfg.JWTAudience)
	if err != nil {
		logger.Fatal("Token manager init failed", zap.Error(err))
	}

	courseService := application.NewCourseService(repository.NewCourseRepository(sessions), logger)
	executor, err := gql.NewHandler(courseService)
	if err != nil {
		logger.Fatal("GraphQL schema init failed", zap.Error(err))
	}

	var limiter *middleware.RateLimiter
	if cfg.RedisAddr != "" {
		rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		if err := rdb.Ping(context.Background()).Err(); err != nil {
			logger.Fatal("Redis connect failed", zap.Error(err))
		}
		defer rdb.Close()
		limiter = middleware.NewRateLimiter(rdb, logger)
		logger.Info("Rate limiting enabled", zap.String("redis", cfg.RedisAddr), zap.Int("per_minute", cfg.RateLimit))
	}

	gin.SetMode(gin.ReleaseMode)
	router := handlers.NewRouter(executor, tokens, limiter, handlers.RouterConfig{
		AllowedOrigins: cfg.Origins(),
		RateLimit:      cfg.RateLimit,
	}, logger)

	srv := &http.Server{
		Addr:              cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	var healthSrv *grpc_server.HealthServer
	if cfg.GRPCPort != "" {
		lis, err := net.Listen("tcp", cfg.GRPCPort)
		if err != nil {
			logger.Fatal("gRPC listen failed", zap.Error(err))
		}
		healthSrv = grpc_server.NewHealthServer(sessions, logger)
		healthSrv.Check(context.Background())
		go func() {
			logger.Info("Health server running", zap.String("addr", cfg.GRPCPort))
			if err := healthSrv.Serve(lis); err != nil {
				logger.Error("gRPC serve failed", zap.Error(err))
			}
		}()
	}

	go func() {
		logger.Info("Course provider running", zap.String("addr", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("HTTP serve failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, syscall.SIGINT)
	<-quit

	logger.Info("Shutting down server...")
	if healthSrv != nil {
		healthSrv.Stop()
	}
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("HTTP shutdown failed", zap.Error(err))
	}
}
