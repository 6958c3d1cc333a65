package biz_test

import (
	"context"
	"errors"
	"testing"

	"github.com/lk2023060901/premio-backend/internal/ai/provider/types"
	"github.com/lk2023060901/premio-backend/internal/credential/biz"
	"github.com/lk2023060901/premio-backend/internal/credential/data"
	"github.com/lk2023060901/premio-backend/internal/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

type fakeVerifier struct {
	valid string
	got   []string
}

func (f *fakeVerifier) VerifyKey(_ context.Context, credential string) error {
	f.got = append(f.got, credential)
	if credential == "" {
		return types.NewMissingCredentialError()
	}
	if credential != f.valid {
		return types.ClassifyStatus(401, "")
	}
	return nil
}

type failingRepo struct{}

func (failingRepo) Get(context.Context, string) (string, error) { return "", errors.New("dial tcp: refused") }
func (failingRepo) Save(context.Context, string, string) error { return errors.New("dial tcp: refused") }
func (failingRepo) Delete(context.Context, string) error        { return errors.New("dial tcp: refused") }

func newUseCase(t *testing.T) (*biz.CredentialUseCase, *fakeVerifier, *observer.ObservedLogs) {
	t.Helper()
	core, logs := observer.New(zapcore.DebugLevel)
	verifier := &fakeVerifier{valid: "sk-or-v1-valid"}
	uc := biz.NewCredentialUseCase(data.NewMemoryRepo(), verifier, &logger.Logger{Logger: zap.New(core)})
	return uc, verifier, logs
}

func TestKey(t *testing.T) {
	assert.Equal(t, "premio-api-key:default", biz.Key("default"))
}

func TestSaveAndGet(t *testing.T) {
	uc, _, _ := newUseCase(t)
	ctx := context.Background()

	_, err := uc.Get(ctx, "alice")
	assert.ErrorIs(t, err, biz.ErrCredentialNotFound)

	require.NoError(t, uc.Save(ctx, "alice", "  sk-or-v1-abcdef123456 \n"))

	key, err := uc.Get(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, "sk-or-v1-abcdef123456", key)
}

func TestSave_BlankClears(t *testing.T) {
	uc, _, _ := newUseCase(t)
	ctx := context.Background()

	require.NoError(t, uc.Save(ctx, "alice", "sk-or-v1-abc"))
	require.NoError(t, uc.Save(ctx, "alice", "   "))

	_, err := uc.Get(ctx, "alice")
	assert.ErrorIs(t, err, biz.ErrCredentialNotFound)
}

func TestOwnerRequired(t *testing.T) {
	uc, _, _ := newUseCase(t)
	ctx := context.Background()

	assert.ErrorIs(t, uc.Save(ctx, "", "k"), biz.ErrOwnerRequired)
	assert.ErrorIs(t, uc.Delete(ctx, ""), biz.ErrOwnerRequired)
	_, err := uc.Get(ctx, "")
	assert.ErrorIs(t, err, biz.ErrOwnerRequired)
}

func TestLookup(t *testing.T) {
	uc, _, _ := newUseCase(t)
	ctx := context.Background()

	key, err := uc.Lookup(ctx, "alice")
	require.NoError(t, err)
	assert.Empty(t, key)

	failing := biz.NewCredentialUseCase(failingRepo{}, &fakeVerifier{}, logger.NewNop())
	_, err = failing.Lookup(ctx, "alice")
	assert.Error(t, err)
	assert.NotErrorIs(t, err, biz.ErrCredentialNotFound)
}

func TestStatus(t *testing.T) {
	uc, _, _ := newUseCase(t)
	ctx := context.Background()

	status, err := uc.Status(ctx, "alice")
	require.NoError(t, err)
	assert.False(t, status.Configured)
	assert.Empty(t, status.Hint)

	require.NoError(t, uc.Save(ctx, "alice", "sk-or-v1-abcdef123456"))

	status, err = uc.Status(ctx, "alice")
	require.NoError(t, err)
	assert.True(t, status.Configured)
	assert.Equal(t, "****3456", status.Hint)
}

func TestVerify(t *testing.T) {
	uc, verifier, _ := newUseCase(t)
	ctx := context.Background()

	require.NoError(t, uc.Verify(ctx, "alice", " sk-or-v1-valid "))

	err := uc.Verify(ctx, "alice", "sk-or-v1-wrong")
	genErr, ok := types.AsGenerationError(err)
	require.True(t, ok)
	assert.Equal(t, types.ErrorKindInvalidCredential, genErr.Kind)

	// 未提供候选凭证时使用已保存的凭证
	err = uc.Verify(ctx, "alice", "")
	genErr, ok = types.AsGenerationError(err)
	require.True(t, ok)
	assert.Equal(t, types.ErrorKindMissingCredential, genErr.Kind)

	require.NoError(t, uc.Save(ctx, "alice", "sk-or-v1-valid"))
	require.NoError(t, uc.Verify(ctx, "alice", ""))

	assert.Equal(t, []string{"sk-or-v1-valid", "sk-or-v1-wrong", "", "sk-or-v1-valid"}, verifier.got)
}

func TestCredentialNeverLogged(t *testing.T) {
	uc, _, logs := newUseCase(t)
	ctx := context.Background()
	secret := "sk-or-v1-supersecretvalue"

	require.NoError(t, uc.Save(ctx, "alice", secret))
	require.NoError(t, uc.Verify(ctx, "alice", ""))
	require.NoError(t, uc.Delete(ctx, "alice"))

	require.NotZero(t, logs.Len())
	tail := secret[len(secret)-4:]
	for _, entry := range logs.All() {
		assert.NotContains(t, entry.Message, secret)
		for _, v := range entry.ContextMap() {
			if s, ok := v.(string); ok {
				assert.NotContains(t, s, secret)
				assert.NotContains(t, s, tail)
			}
		}
	}

	saved := logs.FilterMessage("api key saved").All()
	require.Len(t, saved, 1)
	assert.Equal(t, map[string]interface{}{"owner": "alice", "configured": true}, saved[0].ContextMap())
}
