package storage

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wound-analyzer/internal/domain/entity"
)

func TestMemoryUserRepository_GetCreatesOnce(t *testing.T) {
	repo := NewMemoryUserRepository()
	ctx := context.Background()

	user, err := repo.Get(ctx, 1, 10)
	require.NoError(t, err)
	require.Equal(t, entity.StateMainMenu, user.State)

	_, err = repo.Get(ctx, 1, 10)
	require.NoError(t, err)
	require.Equal(t, 1, repo.Len())
}

func TestMemoryUserRepository_ReturnsCopies(t *testing.T) {
	repo := NewMemoryUserRepository()
	ctx := context.Background()

	user, err := repo.Get(ctx, 1, 10)
	require.NoError(t, err)
	user.SetState(entity.StateAwaitingPhoto)

	stored, err := repo.Get(ctx, 1, 10)
	require.NoError(t, err)
	require.Equal(t, entity.StateMainMenu, stored.State)

	require.NoError(t, repo.Save(ctx, user))
	stored, err = repo.Get(ctx, 1, 10)
	require.NoError(t, err)
	require.Equal(t, entity.StateAwaitingPhoto, stored.State)
}

func TestMemoryUserRepository_Transition(t *testing.T) {
	repo := NewMemoryUserRepository()
	ctx := context.Background()

	ok, err := repo.Transition(ctx, 5, 50, entity.StateAwaitingNote, entity.StateProcessing)
	require.NoError(t, err)
	require.False(t, ok)
	require.Equal(t, 1, repo.Len())

	ok, err = repo.Transition(ctx, 5, 50, entity.StateMainMenu, entity.StateProcessing)
	require.NoError(t, err)
	require.True(t, ok)

	user, err := repo.Get(ctx, 5, 50)
	require.NoError(t, err)
	require.Equal(t, entity.StateProcessing, user.State)
}

func TestMemoryUserRepository_TransitionConcurrent(t *testing.T) {
	repo := NewMemoryUserRepository()
	ctx := context.Background()

	const workers = 32
	var (
		wg   sync.WaitGroup
		wins atomic.Int32
	)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ok, err := repo.Transition(ctx, 7, 70, entity.StateMainMenu, entity.StateProcessing)
			assert.NoError(t, err)
			if ok {
				wins.Add(1)
			}
		}()
	}
	wg.Wait()

	require.Equal(t, int32(1), wins.Load())
}
