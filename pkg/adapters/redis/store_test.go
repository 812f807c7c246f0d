package redis_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	backend "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	redisStore "github.com/aretw0/arbor/pkg/adapters/redis"
	"github.com/aretw0/arbor/pkg/domain"
)

func newTestStore(t *testing.T, opts ...redisStore.Option) (*redisStore.Store, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := backend.NewClient(&backend.Options{Addr: mr.Addr()})
	store := redisStore.NewFromClient(client, opts...)
	t.Cleanup(func() { store.Close() })
	return store, mr
}

func TestStore_SaveAndLoad(t *testing.T) {
	ctx := context.Background()
	store, _ := newTestStore(t)

	snap := domain.SessionSnapshot{
		UserID:     "u1",
		Entered:    true,
		NodeName:   "menu",
		Depth:      2,
		InsideNode: true,
		UpdatedAt:  time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
	}
	require.NoError(t, store.Save(ctx, snap))

	got, err := store.Load(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, snap, got)
}

func TestStore_LoadMissing(t *testing.T) {
	store, _ := newTestStore(t)

	_, err := store.Load(context.Background(), "ghost")
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)
}

func TestStore_ListReturnsIndexedSnapshots(t *testing.T) {
	ctx := context.Background()
	store, _ := newTestStore(t)

	require.NoError(t, store.Save(ctx, domain.SessionSnapshot{UserID: "u1", Depth: 1}))
	require.NoError(t, store.Save(ctx, domain.SessionSnapshot{UserID: "u2", Depth: 2}))

	snaps, err := store.List(ctx)
	require.NoError(t, err)
	assert.Len(t, snaps, 2)
}

func TestStore_ListSkipsExpiredValues(t *testing.T) {
	ctx := context.Background()
	store, mr := newTestStore(t, redisStore.WithTTL(time.Minute))

	require.NoError(t, store.Save(ctx, domain.SessionSnapshot{UserID: "u1"}))
	mr.FastForward(2 * time.Minute)

	snaps, err := store.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, snaps)
}

func TestStore_Delete(t *testing.T) {
	ctx := context.Background()
	store, _ := newTestStore(t)

	require.NoError(t, store.Save(ctx, domain.SessionSnapshot{UserID: "u1"}))
	require.NoError(t, store.Delete(ctx, "u1"))

	_, err := store.Load(ctx, "u1")
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)

	snaps, err := store.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, snaps)
}

func TestStore_CustomPrefix(t *testing.T) {
	ctx := context.Background()
	store, mr := newTestStore(t, redisStore.WithPrefix("custom:"))

	require.NoError(t, store.Save(ctx, domain.SessionSnapshot{UserID: "u1"}))
	assert.True(t, mr.Exists("custom:u1"))
	assert.True(t, mr.Exists("custom:index"))
}
