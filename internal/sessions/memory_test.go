package sessions

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Ifrah-c/personal-note-app/internal/models"
)

type fakeClock struct {
	mu sync.Mutex
	t  time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.t
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.t = c.t.Add(d)
}

func newTestMemoryStore(ttl time.Duration) (*MemoryStore, *fakeClock) {
	clock := &fakeClock{t: time.Date(2026, 10, 14, 9, 30, 0, 0, time.UTC)}
	s := NewMemoryStore(ttl)
	s.now = clock.Now
	return s, clock
}

func TestMemoryStore_SaveGetDelete(t *testing.T) {
	ctx := context.Background()
	store, _ := newTestMemoryStore(time.Hour)

	sess := &models.Session{ID: "abc", UserID: 3, Username: "alice"}
	require.NoError(t, store.Save(ctx, sess))

	got, err := store.Get(ctx, "abc")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, *sess, *got)

	// returned value is a copy
	got.Username = "mallory"
	again, _ := store.Get(ctx, "abc")
	assert.Equal(t, "alice", again.Username)

	require.NoError(t, store.Delete(ctx, "abc"))
	got, err = store.Get(ctx, "abc")
	assert.NoError(t, err)
	assert.Nil(t, got)

	assert.NoError(t, store.Delete(ctx, "abc"))
}

func TestMemoryStore_Expiry(t *testing.T) {
	ctx := context.Background()
	store, clock := newTestMemoryStore(time.Minute)

	require.NoError(t, store.Save(ctx, &models.Session{ID: "old", UserID: 1}))

	clock.Advance(59 * time.Second)
	got, err := store.Get(ctx, "old")
	require.NoError(t, err)
	assert.NotNil(t, got)

	clock.Advance(time.Second)
	got, err = store.Get(ctx, "old")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestMemoryStore_SaveSweepsExpired(t *testing.T) {
	ctx := context.Background()
	store, clock := newTestMemoryStore(time.Minute)

	require.NoError(t, store.Save(ctx, &models.Session{ID: "a", UserID: 1}))
	clock.Advance(2 * time.Minute)
	require.NoError(t, store.Save(ctx, &models.Session{ID: "b", UserID: 2}))

	store.mu.Lock()
	_, stale := store.entries["a"]
	n := len(store.entries)
	store.mu.Unlock()

	assert.False(t, stale)
	assert.Equal(t, 1, n)
}

func TestMemoryStore_Concurrent(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore(time.Hour)

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			id := string(rune('a' + i))
			_ = store.Save(ctx, &models.Session{ID: id, UserID: int64(i)})
			got, err := store.Get(ctx, id)
			assert.NoError(t, err)
			if assert.NotNil(t, got) {
				assert.Equal(t, int64(i), got.UserID)
			}
			_ = store.Delete(ctx, id)
		}(i)
	}
	wg.Wait()

	store.mu.Lock()
	defer store.mu.Unlock()
	assert.Empty(t, store.entries)
}
