package conf

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/lk2023060901/premio-backend/internal/ai/provider/types"
	"github.com/lk2023060901/premio-backend/internal/pkg/logger"
	"github.com/lk2023060901/premio-backend/internal/pkg/middleware"
	"github.com/lk2023060901/premio-backend/internal/pkg/minio"
	"github.com/lk2023060901/premio-backend/internal/pkg/redis"
	"github.com/lk2023060901/premio-backend/internal/pkg/render"
	"github.com/spf13/viper"
)

// EnvPrefix 环境变量前缀，例如 PREMIO_SERVER_PORT
const EnvPrefix = "PREMIO"

// CredentialBackend 凭证存储后端
type CredentialBackend string

const (
	CredentialBackendMemory CredentialBackend = "memory"
	CredentialBackendRedis  CredentialBackend = "redis"
)

type Config struct {
	Server     ServerConfig     `mapstructure:"server"`
	Log        logger.Config    `mapstructure:"log"`
	OpenRouter types.Config     `mapstructure:"openrouter"`
	Credential CredentialConfig `mapstructure:"credential"`
	Redis      redis.Config     `mapstructure:"redis"`
	Storage    minio.Config     `mapstructure:"storage"`
	Render     RenderConfig     `mapstructure:"render"`
	RateLimit  RateLimitConfig  `mapstructure:"rate_limit"`
}

type ServerConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	Mode            string        `mapstructure:"mode"` // gin 模式：debug, release, test
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

// Addr 监听地址
func (c *ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

type CredentialConfig struct {
	Backend CredentialBackend `mapstructure:"backend"`
}

type RenderConfig struct {
	Engine render.Engine `mapstructure:"engine"`
}

type RateLimitConfig struct {
	Enabled                      bool `mapstructure:"enabled"`
	middleware.RateLimiterConfig `mapstructure:",squash"`
}

// UsesRedis 是否需要 Redis 连接
func (c *Config) UsesRedis() bool {
	return c.Credential.Backend == CredentialBackendRedis || c.RateLimit.Enabled
}

// LoadConfig 读取配置文件并应用环境变量覆盖，path 为空时只使用默认值与环境变量
func LoadConfig(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &config, nil
}

// Validate 校验配置
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be between 1 and 65535, got %d", c.Server.Port)
	}

	if err := c.Log.Validate(); err != nil {
		return fmt.Errorf("log: %w", err)
	}

	if err := c.OpenRouter.Validate(); err != nil {
		return fmt.Errorf("openrouter: %w", err)
	}

	switch c.Credential.Backend {
	case CredentialBackendMemory, CredentialBackendRedis:
	default:
		return fmt.Errorf("credential.backend must be memory or redis, got %q", c.Credential.Backend)
	}

	if c.UsesRedis() {
		if err := c.Redis.Validate(); err != nil {
			return err
		}
	}

	if c.Storage.Enabled() {
		if err := c.Storage.Validate(); err != nil {
			return err
		}
	}

	if _, err := render.New(c.Render.Engine); err != nil {
		return fmt.Errorf("render: %w", err)
	}

	if c.RateLimit.Enabled {
		switch c.RateLimit.Strategy {
		case middleware.StrategyClient, middleware.StrategyIP:
		default:
			return errors.New("rate_limit.strategy must be client or ip")
		}
	}

	return nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.mode", "release")
	v.SetDefault("server.read_timeout", 30*time.Second)
	v.SetDefault("server.write_timeout", 120*time.Second)
	v.SetDefault("server.shutdown_timeout", 10*time.Second)

	logDefaults := logger.DefaultConfig()
	v.SetDefault("log.level", logDefaults.Level)
	v.SetDefault("log.format", logDefaults.Format)
	v.SetDefault("log.output", logDefaults.Output)
	v.SetDefault("log.enable_caller", logDefaults.EnableCaller)
	v.SetDefault("log.enable_stacktrace", logDefaults.EnableStacktrace)
	v.SetDefault("log.file.filename", logDefaults.File.Filename)
	v.SetDefault("log.file.max_size", logDefaults.File.MaxSize)
	v.SetDefault("log.file.max_age", logDefaults.File.MaxAge)
	v.SetDefault("log.file.max_backups", logDefaults.File.MaxBackups)
	v.SetDefault("log.file.compress", logDefaults.File.Compress)

	v.SetDefault("openrouter.base_url", types.DefaultBaseURL)
	v.SetDefault("openrouter.referer", "")
	v.SetDefault("openrouter.app_title", types.DefaultAppTitle)
	v.SetDefault("openrouter.timeout", time.Duration(0))

	v.SetDefault("credential.backend", string(CredentialBackendMemory))

	redisDefaults := redis.DefaultConfig()
	v.SetDefault("redis.mode", string(redisDefaults.Mode))
	v.SetDefault("redis.addr", redisDefaults.Addr)
	v.SetDefault("redis.username", "")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", redisDefaults.DB)
	v.SetDefault("redis.pool_size", redisDefaults.PoolSize)
	v.SetDefault("redis.min_idle_conns", redisDefaults.MinIdleConns)
	v.SetDefault("redis.dial_timeout", redisDefaults.DialTimeout)
	v.SetDefault("redis.read_timeout", redisDefaults.ReadTimeout)
	v.SetDefault("redis.write_timeout", redisDefaults.WriteTimeout)
	v.SetDefault("redis.pool_timeout", redisDefaults.PoolTimeout)
	v.SetDefault("redis.max_retries", redisDefaults.MaxRetries)
	v.SetDefault("redis.key_prefix", "premio:")

	storageDefaults := minio.DefaultConfig()
	v.SetDefault("storage.endpoint", "")
	v.SetDefault("storage.access_key_id", "")
	v.SetDefault("storage.secret_access_key", "")
	v.SetDefault("storage.region", "")
	v.SetDefault("storage.use_ssl", false)
	v.SetDefault("storage.bucket", storageDefaults.Bucket)
	v.SetDefault("storage.prefix", "exports")
	v.SetDefault("storage.presign_expiry", storageDefaults.PresignExpiry)

	v.SetDefault("render.engine", string(render.EngineGoldmark))

	v.SetDefault("rate_limit.enabled", false)
	v.SetDefault("rate_limit.max_requests", 60)
	v.SetDefault("rate_limit.window_seconds", 60)
	v.SetDefault("rate_limit.strategy", string(middleware.StrategyClient))
}
