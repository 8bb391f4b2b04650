package metadata

import (
	"context"
	"maps"
	"sync"
)

// MemoryRepository keeps records in a map. Values are copied on the way in
// and out so callers cannot alias stored bytes.
type MemoryRepository struct {
	mu   sync.Mutex
	data map[string][]byte
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{data: make(map[string][]byte)}
}

func (r *MemoryRepository) Get(ctx context.Context, key string) ([]byte, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return clone(r.data[key]), nil
}

func (r *MemoryRepository) Set(ctx context.Context, key string, value []byte) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.data[key] = clone(value)
	return nil
}

func (r *MemoryRepository) Delete(ctx context.Context, key string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.data, key)
	return nil
}

func (r *MemoryRepository) Clear(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	clear(r.data)
	return nil
}

func (r *MemoryRepository) List(ctx context.Context) (map[string][]byte, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make(map[string][]byte, len(r.data))
	for k, v := range r.data {
		out[k] = clone(v)
	}
	return out, nil
}

// InTx holds the repository lock for the whole of fn, which works on a
// staged copy swapped in only when fn succeeds. fn must use the repo it is
// given; calling r from inside fn deadlocks.
func (r *MemoryRepository) InTx(ctx context.Context, fn func(ctx context.Context, repo Repository) error) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	staged := &memoryTx{data: maps.Clone(r.data)}
	if err := fn(ctx, staged); err != nil {
		return err
	}
	r.data = staged.data
	return nil
}

// memoryTx is the unlocked view handed to InTx callbacks.
type memoryTx struct {
	data map[string][]byte
}

func (t *memoryTx) Get(ctx context.Context, key string) ([]byte, error) {
	return clone(t.data[key]), nil
}

func (t *memoryTx) Set(ctx context.Context, key string, value []byte) error {
	t.data[key] = clone(value)
	return nil
}

func (t *memoryTx) Delete(ctx context.Context, key string) error {
	delete(t.data, key)
	return nil
}

func (t *memoryTx) Clear(ctx context.Context) error {
	clear(t.data)
	return nil
}

func (t *memoryTx) List(ctx context.Context) (map[string][]byte, error) {
	out := make(map[string][]byte, len(t.data))
	for k, v := range t.data {
		out[k] = clone(v)
	}
	return out, nil
}

func clone(b []byte) []byte {
	if b == nil {
		return nil
	}
	return append([]byte{}, b...)
}
