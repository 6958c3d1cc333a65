package data

import (
	"context"
	"sync"

	"github.com/lk2023060901/premio-backend/internal/credential/biz"
)

// MemoryRepo 进程内凭证存储，重启后丢失
type MemoryRepo struct {
	mu   sync.RWMutex
	keys map[string]string
}

// NewMemoryRepo 创建进程内存储
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{keys: make(map[string]string)}
}

func (r *MemoryRepo) Get(_ context.Context, owner string) (string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	key, ok := r.keys[biz.Key(owner)]
	if !ok {
		return "", biz.ErrCredentialNotFound
	}
	return key, nil
}

func (r *MemoryRepo) Save(_ context.Context, owner, key string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.keys[biz.Key(owner)] = key
	return nil
}

func (r *MemoryRepo) Delete(_ context.Context, owner string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.keys, biz.Key(owner))
	return nil
}
