package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/lk2023060901/premio-backend/internal/conf"
	contentservice "github.com/lk2023060901/premio-backend/internal/content/service"
	credentialservice "github.com/lk2023060901/premio-backend/internal/credential/service"
	exportservice "github.com/lk2023060901/premio-backend/internal/export/service"
	"github.com/lk2023060901/premio-backend/internal/pkg/logger"
	"github.com/lk2023060901/premio-backend/internal/pkg/middleware"
	"github.com/lk2023060901/premio-backend/internal/pkg/response"
	"go.uber.org/zap"
)

type HTTPServer struct {
	server *http.Server
	logger *logger.Logger
}

// NewHTTPServer 注册路由并创建 HTTP 服务，limiter 为 nil 时不限流
func NewHTTPServer(
	config *conf.Config,
	log *logger.Logger,
	contentService *contentservice.ContentService,
	credentialService *credentialservice.CredentialService,
	exportService *exportservice.ExportService,
	limiter middleware.Limiter,
) *HTTPServer {
	if config.Server.Mode != "" {
		gin.SetMode(config.Server.Mode)
	}

	router := gin.New()
	router.Use(
		logger.GinLoggerWithConfig(log, logger.MiddlewareOptions{SkipPaths: []string{"/health"}}),
		logger.GinRecovery(log),
	)

	// Health check
	router.GET("/health", func(c *gin.Context) {
		response.Success(c, gin.H{
			"status": "ok",
			"time":   time.Now().Format(time.RFC3339),
		})
	})

	// API routes
	api := router.Group("/api/v1")
	api.Use(middleware.ClientID())
	if limiter != nil {
		api.Use(middleware.RateLimiter(limiter, config.RateLimit.RateLimiterConfig, log))
	}

	api.GET("/tools", contentService.ListTools)
	api.POST("/tools/:tool", contentService.RunTool)

	settings := api.Group("/settings/api-key")
	{
		settings.GET("", credentialService.GetStatus)
		settings.PUT("", credentialService.Save)
		settings.DELETE("", credentialService.Delete)
		settings.POST("/verify", credentialService.Verify)
	}

	api.POST("/exports", exportService.Create)

	return &HTTPServer{
		server: &http.Server{
			Addr:         config.Server.Addr(),
			Handler:      router,
			ReadTimeout:  config.Server.ReadTimeout,
			WriteTimeout: config.Server.WriteTimeout,
		},
		logger: log,
	}
}

// Handler 返回路由，便于测试
func (s *HTTPServer) Handler() http.Handler {
	return s.server.Handler
}

func (s *HTTPServer) Start() error {
	s.logger.Info("starting HTTP server", zap.String("addr", s.server.Addr))

	if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}

func (s *HTTPServer) Stop(ctx context.Context) error {
	s.logger.Info("stopping HTTP server")
	return s.server.Shutdown(ctx)
}
