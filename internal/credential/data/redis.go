package data

import (
	"context"

	"github.com/lk2023060901/premio-backend/internal/credential/biz"
	"github.com/lk2023060901/premio-backend/internal/pkg/redis"
)

// RedisRepo 基于 Redis 的凭证存储，不设置过期时间
type RedisRepo struct {
	client *redis.Client
}

// NewRedisRepo 创建 Redis 凭证存储
func NewRedisRepo(client *redis.Client) *RedisRepo {
	return &RedisRepo{client: client}
}

func (r *RedisRepo) Get(ctx context.Context, owner string) (string, error) {
	key, err := r.client.Get(ctx, biz.Key(owner))
	if redis.IsNil(err) {
		return "", biz.ErrCredentialNotFound
	}
	return key, err
}

func (r *RedisRepo) Save(ctx context.Context, owner, key string) error {
	return r.client.Set(ctx, biz.Key(owner), key, 0)
}

func (r *RedisRepo) Delete(ctx context.Context, owner string) error {
	_, err := r.client.Del(ctx, biz.Key(owner))
	return err
}
