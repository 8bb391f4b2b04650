package services

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/dmitrijs2005/jobhunt/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/jobhunt/internal/cryptox"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	cryptox.DefaultParams = cryptox.Params{Memory: 64, Time: 1, Threads: 1, KeyLen: 16, SaltLen: 8}
	goleak.VerifyTestMain(m)
}

var errBoom = errors.New("boom")

// flakyRepo fails writes while failWrites is set.
type flakyRepo struct {
	*metadata.MemoryRepository
	mu         sync.Mutex
	failWrites bool
	failReads  bool
	sets       int
}

func newFlakyRepo() *flakyRepo {
	return &flakyRepo{MemoryRepository: metadata.NewMemoryRepository()}
}

func (r *flakyRepo) setFail(v bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.failWrites = v
}

func (r *flakyRepo) setFailReads(v bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.failReads = v
}

func (r *flakyRepo) Get(ctx context.Context, key string) ([]byte, error) {
	r.mu.Lock()
	fail := r.failReads
	r.mu.Unlock()
	if fail {
		return nil, errBoom
	}
	return r.MemoryRepository.Get(ctx, key)
}

func (r *flakyRepo) Set(ctx context.Context, key string, value []byte) error {
	r.mu.Lock()
	fail := r.failWrites
	r.sets++
	r.mu.Unlock()
	if fail {
		return errBoom
	}
	return r.MemoryRepository.Set(ctx, key, value)
}

// fixedClock returns a clock that advances one second per call.
func fixedClock(start time.Time) func() time.Time {
	var mu sync.Mutex
	t := start
	return func() time.Time {
		mu.Lock()
		defer mu.Unlock()
		t = t.Add(time.Second)
		return t
	}
}

func (r *flakyRepo) InTx(ctx context.Context, fn func(ctx context.Context, repo metadata.Repository) error) error {
	r.mu.Lock()
	fail := r.failWrites
	r.mu.Unlock()
	if fail {
		return errBoom
	}
	return r.MemoryRepository.InTx(ctx, fn)
}
