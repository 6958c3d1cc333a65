package redis

import (
	"context"
	"fmt"

	"github.com/lk2023060901/premio-backend/internal/pkg/logger"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// Client Redis 客户端封装
type Client struct {
	config *Config
	logger *logger.Logger
	rdb    redis.UniversalClient
}

// New 创建 Redis 客户端并做一次健康检查
func New(cfg *Config, log *logger.Logger) (*Client, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	client := &Client{
		config: cfg,
		logger: log,
		rdb:    newUniversalClient(cfg),
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.DialTimeout)
	defer cancel()

	if err := client.Ping(ctx); err != nil {
		client.rdb.Close()
		return nil, fmt.Errorf("redis ping failed: %w", err)
	}

	log.Info("redis client initialized successfully",
		zap.String("mode", string(cfg.Mode)),
		zap.Strings("addrs", addrs(cfg)),
	)

	return client, nil
}

func universalOptions(cfg *Config) *redis.UniversalOptions {
	opts := &redis.UniversalOptions{
		Addrs:    addrs(cfg),
		Username: cfg.Username,
		Password: cfg.Password,

		PoolSize:     cfg.PoolSize,
		MinIdleConns: cfg.MinIdleConns,

		DialTimeout:  cfg.DialTimeout,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		PoolTimeout:  cfg.PoolTimeout,

		MaxRetries: cfg.MaxRetries,
	}

	switch cfg.Mode {
	case ModeSentinel:
		opts.MasterName = cfg.MasterName
		opts.DB = cfg.DB
	case ModeCluster:
		// 集群模式不支持选库
	default:
		opts.DB = cfg.DB
	}
	return opts
}

// newUniversalClient 按部署模式创建客户端，集群模式下单个地址也不会退化为单机
func newUniversalClient(cfg *Config) redis.UniversalClient {
	opts := universalOptions(cfg)
	switch cfg.Mode {
	case ModeSentinel:
		return redis.NewFailoverClient(opts.Failover())
	case ModeCluster:
		return redis.NewClusterClient(opts.Cluster())
	default:
		return redis.NewClient(opts.Simple())
	}
}

func addrs(cfg *Config) []string {
	switch cfg.Mode {
	case ModeSentinel:
		return cfg.SentinelAddrs
	case ModeCluster:
		return cfg.ClusterAddrs
	default:
		return []string{cfg.Addr}
	}
}

// Key 拼接键前缀
func (c *Client) Key(key string) string {
	return c.config.KeyPrefix + key
}

// Ping 健康检查
func (c *Client) Ping(ctx context.Context) error {
	if c.rdb == nil {
		return ErrNotInitialized
	}
	if err := c.rdb.Ping(ctx).Err(); err != nil {
		c.logger.Error("redis ping failed", zap.Error(err))
		return err
	}
	return nil
}

// Close 关闭客户端
func (c *Client) Close() error {
	if c.rdb == nil {
		return nil
	}
	if err := c.rdb.Close(); err != nil {
		c.logger.Error("close redis client failed", zap.Error(err))
		return err
	}
	c.logger.Info("redis client closed")
	return nil
}
