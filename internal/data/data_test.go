package data

import (
	"testing"

	"github.com/lk2023060901/premio-backend/internal/conf"
	"github.com/lk2023060901/premio-backend/internal/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewData_NothingEnabled(t *testing.T) {
	cfg, err := conf.LoadConfig("")
	require.NoError(t, err)

	d, cleanup, err := NewData(cfg, logger.NewNop())
	require.NoError(t, err)
	defer cleanup()

	assert.Nil(t, d.RedisClient)
	assert.Nil(t, d.MinIOClient)
}

func TestNewData_RedisUnreachable(t *testing.T) {
	cfg, err := conf.LoadConfig("")
	require.NoError(t, err)
	cfg.Credential.Backend = conf.CredentialBackendRedis
	cfg.Redis.Addr = "127.0.0.1:1"

	_, _, err = NewData(cfg, logger.NewNop())
	assert.Error(t, err)
}
