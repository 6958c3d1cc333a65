package data

import (
	"context"
	"fmt"
	"time"

	"github.com/lk2023060901/premio-backend/internal/conf"
	"github.com/lk2023060901/premio-backend/internal/pkg/logger"
	"github.com/lk2023060901/premio-backend/internal/pkg/minio"
	"github.com/lk2023060901/premio-backend/internal/pkg/redis"
	"go.uber.org/zap"
)

// Data 外部连接，未启用的依赖为 nil
type Data struct {
	RedisClient *redis.Client
	MinIOClient *minio.Client
	Logger      *logger.Logger
}

func NewData(config *conf.Config, log *logger.Logger) (*Data, func(), error) {
	d := &Data{Logger: log}

	if config.UsesRedis() {
		redisCfg := config.Redis
		redisClient, err := redis.New(&redisCfg, log)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to connect to redis: %w", err)
		}
		d.RedisClient = redisClient
	}

	if config.Storage.Enabled() {
		minioClient, err := initMinIO(config, log)
		if err != nil {
			d.close()
			return nil, nil, fmt.Errorf("failed to init minio: %w", err)
		}
		d.MinIOClient = minioClient
	} else {
		log.Info("export storage not configured, exports disabled")
	}

	cleanup := func() {
		log.Info("cleaning up data resources")
		d.close()
	}

	return d, cleanup, nil
}

func (d *Data) close() {
	if d.RedisClient != nil {
		d.RedisClient.Close()
	}

	if d.MinIOClient != nil {
		d.MinIOClient.Close()
	}
}

func initMinIO(config *conf.Config, log *logger.Logger) (*minio.Client, error) {
	storageCfg := config.Storage
	minioClient, err := minio.NewClient(&storageCfg, log)
	if err != nil {
		return nil, err
	}

	// Create bucket if not exists
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := minioClient.EnsureBucket(ctx); err != nil {
		return nil, err
	}

	log.Info("export storage ready", zap.String("bucket", minioClient.Bucket()))
	return minioClient, nil
}
