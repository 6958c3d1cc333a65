package minio

import (
	"errors"
	"time"
)

// Config represents the configuration for the export storage client
type Config struct {
	// Endpoint is the S3-compatible object storage endpoint, e.g. "localhost:9000".
	// An empty endpoint disables storage.
	Endpoint string `mapstructure:"endpoint"`

	AccessKeyID     string `mapstructure:"access_key_id"`
	SecretAccessKey string `mapstructure:"secret_access_key"`

	// Region is optional, e.g. "us-east-1"
	Region string `mapstructure:"region"`

	// UseSSL determines whether to use HTTPS (true) or HTTP (false)
	UseSSL bool `mapstructure:"use_ssl"`

	// Bucket holds every exported object; created on startup if missing
	Bucket string `mapstructure:"bucket"`

	// Prefix is prepended to every object name
	Prefix string `mapstructure:"prefix"`

	// PresignExpiry is how long download URLs stay valid
	PresignExpiry time.Duration `mapstructure:"presign_expiry"`
}

// Enabled reports whether storage is configured
func (c *Config) Enabled() bool {
	return c != nil && c.Endpoint != ""
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Endpoint == "" {
		return errors.New("minio: endpoint is required")
	}

	if c.AccessKeyID == "" {
		return errors.New("minio: access key ID is required")
	}

	if c.SecretAccessKey == "" {
		return errors.New("minio: secret access key is required")
	}

	if err := ValidateBucketName(c.Bucket); err != nil {
		return WrapErrorWithMessage("Validate", ErrInvalidBucketName, err.Error())
	}

	// S3 caps presigned URLs at seven days
	if c.PresignExpiry <= 0 || c.PresignExpiry > 7*24*time.Hour {
		return errors.New("minio: presign expiry must be between 1s and 7 days")
	}

	return nil
}

// SetDefaults sets default values for unspecified configuration fields
func (c *Config) SetDefaults() {
	if c.Bucket == "" {
		c.Bucket = "premio-exports"
	}

	if c.PresignExpiry == 0 {
		c.PresignExpiry = 15 * time.Minute
	}
}

// DefaultConfig returns a configuration with default values and storage disabled
func DefaultConfig() *Config {
	cfg := &Config{}
	cfg.SetDefaults()
	return cfg
}
