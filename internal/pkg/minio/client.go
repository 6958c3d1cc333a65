package minio

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/lk2023060901/premio-backend/internal/pkg/logger"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"go.uber.org/zap"
)

// Client wraps the MinIO client, bound to a single bucket
type Client struct {
	client *minio.Client
	config *Config
	logger *logger.Logger
	mu     sync.RWMutex
	closed bool
}

// NewClient creates a new MinIO client. No network call is made.
func NewClient(cfg *Config, log *logger.Logger) (*Client, error) {
	if cfg == nil {
		return nil, ErrInvalidArgument
	}

	cfg.SetDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, WrapErrorWithMessage("NewClient", err, "invalid configuration")
	}

	opts := &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		Secure: cfg.UseSSL,
		Region: cfg.Region,
	}

	minioClient, err := minio.New(cfg.Endpoint, opts)
	if err != nil {
		return nil, WrapErrorWithMessage("NewClient", err, "failed to create minio client")
	}

	log.Info("minio client initialized successfully",
		zap.String("endpoint", cfg.Endpoint),
		zap.String("bucket", cfg.Bucket),
		zap.Bool("use_ssl", cfg.UseSSL),
	)

	return &Client{
		client: minioClient,
		config: cfg,
		logger: log.Named("minio"),
	}, nil
}

// Bucket returns the configured bucket
func (c *Client) Bucket() string {
	return c.config.Bucket
}

// PresignExpiry returns the configured download URL lifetime
func (c *Client) PresignExpiry() time.Duration {
	return c.config.PresignExpiry
}

// EnsureBucket creates the bucket if it does not exist
func (c *Client) EnsureBucket(ctx context.Context) error {
	if err := c.checkClosed(); err != nil {
		return err
	}

	exists, err := c.client.BucketExists(ctx, c.config.Bucket)
	if err != nil {
		return WrapError("EnsureBucket", err, c.config.Bucket, "")
	}
	if exists {
		return nil
	}

	err = c.client.MakeBucket(ctx, c.config.Bucket, minio.MakeBucketOptions{Region: c.config.Region})
	if err != nil && !IsBucketAlreadyExists(err) {
		return WrapError("EnsureBucket", err, c.config.Bucket, "")
	}

	c.logger.Info("bucket created", zap.String("bucket", c.config.Bucket))
	return nil
}

// Close closes the client
func (c *Client) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return nil
	}
	c.closed = true

	c.logger.Info("minio client closed")
	return nil
}

// IsClosed returns whether the client is closed
func (c *Client) IsClosed() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.closed
}

func (c *Client) checkClosed() error {
	if c.IsClosed() {
		return fmt.Errorf("minio: client is closed")
	}
	return nil
}
