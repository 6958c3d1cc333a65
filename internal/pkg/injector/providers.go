package injector

import (
	"github.com/lk2023060901/premio-backend/internal/ai/provider/openrouter"
	"github.com/lk2023060901/premio-backend/internal/conf"
	credentialbiz "github.com/lk2023060901/premio-backend/internal/credential/biz"
	credentialdata "github.com/lk2023060901/premio-backend/internal/credential/data"
	"github.com/lk2023060901/premio-backend/internal/data"
	exportbiz "github.com/lk2023060901/premio-backend/internal/export/biz"
	"github.com/lk2023060901/premio-backend/internal/pkg/logger"
	"github.com/lk2023060901/premio-backend/internal/pkg/middleware"
	"github.com/lk2023060901/premio-backend/internal/pkg/render"
	"github.com/lk2023060901/premio-backend/internal/server"
	"go.uber.org/zap"
)

// Provider functions for dependencies that depend on configuration

func provideData(config *conf.Config, log *logger.Logger) (*data.Data, func(), error) {
	return data.NewData(config, log)
}

func provideOpenRouter(config *conf.Config) (*openrouter.Provider, error) {
	openRouterCfg := config.OpenRouter
	return openrouter.New(&openRouterCfg)
}

func provideRenderer(config *conf.Config, log *logger.Logger) (*render.Renderer, error) {
	renderer, err := render.New(config.Render.Engine)
	if err != nil {
		return nil, err
	}
	log.Info("markdown renderer ready", zap.String("engine", string(renderer.Engine())))
	return renderer, nil
}

func provideCredentialRepo(config *conf.Config, d *data.Data, log *logger.Logger) credentialbiz.CredentialRepo {
	if config.Credential.Backend == conf.CredentialBackendRedis && d.RedisClient != nil {
		log.Info("api keys stored in redis")
		return credentialdata.NewRedisRepo(d.RedisClient)
	}
	log.Info("api keys stored in memory")
	return credentialdata.NewMemoryRepo()
}

// provideObjectStore 未配置存储时返回 nil 接口，导出不可用
func provideObjectStore(d *data.Data) exportbiz.ObjectStore {
	if d.MinIOClient == nil {
		return nil
	}
	return d.MinIOClient
}

// provideLimiter 未启用限流时返回 nil 接口
func provideLimiter(config *conf.Config, d *data.Data, log *logger.Logger) middleware.Limiter {
	if !config.RateLimit.Enabled || d.RedisClient == nil {
		return nil
	}
	log.Info("rate limiting enabled",
		zap.Int("max_requests", config.RateLimit.MaxRequests),
		zap.Int("window_seconds", config.RateLimit.WindowSeconds),
		zap.String("strategy", string(config.RateLimit.Strategy)),
	)
	return middleware.NewRedisLimiter(d.RedisClient)
}

func newApp(
	config *conf.Config,
	log *logger.Logger,
	httpServer *server.HTTPServer,
	provider *openrouter.Provider,
) (*App, func()) {
	cleanup := func() {
		provider.Close()
	}

	return &App{
		Config:     config,
		Logger:     log,
		HTTPServer: httpServer,
		cleanup:    cleanup,
	}, cleanup
}
