package presence

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTryLoginConcurrentSingleWinner(t *testing.T) {
	registry := NewRegistry()

	const attempts = 64
	results := make(chan bool, attempts)

	var wg sync.WaitGroup
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results <- registry.TryLogin("alice")
		}()
	}
	wg.Wait()
	close(results)

	wins := 0
	for ok := range results {
		if ok {
			wins++
		}
	}

	require.Equal(t, 1, wins)
	assert.True(t, registry.IsOnline("alice"))
	assert.Equal(t, 1, registry.Count())
}

func TestLogoutAllowsRelogin(t *testing.T) {
	registry := NewRegistry()

	require.True(t, registry.TryLogin("alice"))
	require.False(t, registry.TryLogin("alice"))

	registry.Logout("alice")

	assert.False(t, registry.IsOnline("alice"))
	assert.True(t, registry.TryLogin("alice"))
}

func TestLogoutIsIdempotent(t *testing.T) {
	registry := NewRegistry()

	registry.Logout("ghost")
	registry.Logout("ghost")

	assert.Equal(t, 0, registry.Count())
}

func TestRenameMovesSession(t *testing.T) {
	registry := NewRegistry()

	require.True(t, registry.TryLogin("alice"))

	registry.Rename("alice", "alicia")

	assert.False(t, registry.IsOnline("alice"))
	assert.True(t, registry.IsOnline("alicia"))
	assert.Equal(t, 1, registry.Count())
}

func TestRenameInsertsNewNameUnconditionally(t *testing.T) {
	registry := NewRegistry()

	registry.Rename("alice", "alicia")

	assert.False(t, registry.IsOnline("alice"))
	assert.True(t, registry.IsOnline("alicia"))
}

func TestSnapshotIsSorted(t *testing.T) {
	registry := NewRegistry()

	for _, username := range []string{"carol", "alice", "bob"} {
		require.True(t, registry.TryLogin(username))
	}

	assert.Equal(t, []string{"alice", "bob", "carol"}, registry.Snapshot())
	assert.Equal(t, 3, registry.Count())
}
