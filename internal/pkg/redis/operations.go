package redis

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// 键名会记录到日志，值不会：值可能是凭证

// Set 设置键值，expiration 为 0 表示不过期
func (c *Client) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error {
	err := c.rdb.Set(ctx, c.Key(key), value, expiration).Err()
	if err != nil {
		c.logger.Error("redis set failed",
			zap.String("key", key),
			zap.Error(err),
		)
	}
	return err
}

// Get 获取键值，不存在时返回 ErrNil
func (c *Client) Get(ctx context.Context, key string) (string, error) {
	val, err := c.rdb.Get(ctx, c.Key(key)).Result()
	if err != nil && !IsNil(err) {
		c.logger.Error("redis get failed",
			zap.String("key", key),
			zap.Error(err),
		)
	}
	return val, err
}

// Del 删除键
func (c *Client) Del(ctx context.Context, keys ...string) (int64, error) {
	prefixed := make([]string, len(keys))
	for i, key := range keys {
		prefixed[i] = c.Key(key)
	}

	n, err := c.rdb.Del(ctx, prefixed...).Result()
	if err != nil {
		c.logger.Error("redis del failed",
			zap.Strings("keys", keys),
			zap.Error(err),
		)
	}
	return n, err
}

// Eval 执行 Lua 脚本，keys 会自动加前缀
func (c *Client) Eval(ctx context.Context, script string, keys []string, args ...interface{}) (interface{}, error) {
	prefixed := make([]string, len(keys))
	for i, key := range keys {
		prefixed[i] = c.Key(key)
	}

	result, err := c.rdb.Eval(ctx, script, prefixed, args...).Result()
	if err != nil && !IsNil(err) {
		c.logger.Error("redis eval failed",
			zap.Strings("keys", keys),
			zap.Error(err),
		)
	}
	return result, err
}
