package middleware

import (
	"context"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	apperrors "github.com/lk2023060901/premio-backend/internal/pkg/errors"
	"github.com/lk2023060901/premio-backend/internal/pkg/logger"
	"github.com/lk2023060901/premio-backend/internal/pkg/redis"
	"github.com/lk2023060901/premio-backend/internal/pkg/response"
	"github.com/lk2023060901/premio-backend/internal/pkg/validator"
	"go.uber.org/zap"
)

// RateLimitStrategy 限流维度
type RateLimitStrategy string

const (
	StrategyClient RateLimitStrategy = "client"
	StrategyIP     RateLimitStrategy = "ip"
)

// RateLimiterConfig 限流配置
type RateLimiterConfig struct {
	// 时间窗口内允许的最大请求数
	MaxRequests int `mapstructure:"max_requests"`
	// 时间窗口（秒）
	WindowSeconds int `mapstructure:"window_seconds"`
	// 限流维度：client（默认）或 ip
	Strategy RateLimitStrategy `mapstructure:"strategy"`
}

// Limiter 滑动窗口计数器，由 Redis 实现
type Limiter interface {
	Allow(ctx context.Context, key string, limit, windowSeconds int) (allowed bool, remaining int, resetAt int64, err error)
}

// RateLimiter 基于滑动窗口的限流中间件
// 限流器故障时放行请求
func RateLimiter(limiter Limiter, cfg RateLimiterConfig, log *logger.Logger) gin.HandlerFunc {
	if cfg.MaxRequests <= 0 {
		cfg.MaxRequests = 60
	}
	if cfg.WindowSeconds <= 0 {
		cfg.WindowSeconds = 60
	}
	if cfg.Strategy == "" {
		cfg.Strategy = StrategyClient
	}

	return func(c *gin.Context) {
		key := buildRateLimitKey(c, cfg.Strategy)

		allowed, remaining, resetAt, err := limiter.Allow(c.Request.Context(), key, cfg.MaxRequests, cfg.WindowSeconds)
		if err != nil {
			log.Warn("rate limiter unavailable, request allowed", zap.Error(err), zap.String("key", key))
			c.Next()
			return
		}

		c.Header("X-RateLimit-Limit", fmt.Sprintf("%d", cfg.MaxRequests))
		c.Header("X-RateLimit-Remaining", fmt.Sprintf("%d", remaining))
		c.Header("X-RateLimit-Reset", fmt.Sprintf("%d", resetAt))

		if !allowed {
			c.Header("Retry-After", fmt.Sprintf("%d", cfg.WindowSeconds))
			response.ErrorWithCode(c, apperrors.ErrTooManyRequests,
				fmt.Sprintf("too many requests, please try again in %d seconds", cfg.WindowSeconds))
			c.Abort()
			return
		}

		c.Next()
	}
}

func buildRateLimitKey(c *gin.Context, strategy RateLimitStrategy) string {
	prefix := "rate_limit"

	if strategy == StrategyClient {
		if id := c.GetString(ContextKeyClientID); id != "" {
			return fmt.Sprintf("%s:client:%s", prefix, id)
		}
	}
	return fmt.Sprintf("%s:ip:%s", prefix, validator.IPOrDefault(c.ClientIP(), "unknown"))
}

// 原子性滑动窗口：清理窗口外记录，未超限时记录本次请求
const slidingWindowScript = `
local key = KEYS[1]
local now = tonumber(ARGV[1])
local window = tonumber(ARGV[2])
local limit = tonumber(ARGV[3])
local member = ARGV[4]

redis.call('ZREMRANGEBYSCORE', key, 0, now - window * 1000)

local current = redis.call('ZCARD', key)
if current < limit then
	redis.call('ZADD', key, now, member)
	redis.call('PEXPIRE', key, window * 1000)
	return {1, limit - current - 1, math.floor((now + window * 1000) / 1000)}
end

local oldest = redis.call('ZRANGE', key, 0, 0, 'WITHSCORES')[2]
return {0, 0, math.floor((tonumber(oldest) + window * 1000) / 1000)}
`

// RedisLimiter 基于 Redis 有序集合的 Limiter
type RedisLimiter struct {
	client *redis.Client
}

// NewRedisLimiter 创建 Redis 限流器
func NewRedisLimiter(client *redis.Client) *RedisLimiter {
	return &RedisLimiter{client: client}
}

// windowMember 有序集合成员，多实例同一时刻的请求也互不覆盖
func windowMember(now time.Time) string {
	return fmt.Sprintf("%d-%s", now.UnixNano(), uuid.NewString())
}

// Allow 检查并记录一次请求
func (l *RedisLimiter) Allow(ctx context.Context, key string, limit, windowSeconds int) (bool, int, int64, error) {
	now := time.Now()
	result, err := l.client.Eval(ctx, slidingWindowScript, []string{key}, now.UnixMilli(), windowSeconds, limit, windowMember(now))
	if err != nil {
		return false, 0, 0, err
	}

	values, ok := result.([]interface{})
	if !ok || len(values) != 3 {
		return false, 0, 0, fmt.Errorf("invalid rate limit result")
	}

	allowed, _ := values[0].(int64)
	remaining, _ := values[1].(int64)
	resetAt, _ := values[2].(int64)

	return allowed == 1, int(remaining), resetAt, nil
}
