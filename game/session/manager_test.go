package session

import (
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wricardo/santorini/game/engine"
)

func testPawns(t *testing.T) [4]engine.PawnSpec {
	t.Helper()
	specs, err := engine.ParsePawnSpecs([]string{"a;0;0", "b;0;1", "c;4;4", "d;4;3"})
	require.NoError(t, err)
	return specs
}

func TestManager_Create(t *testing.T) {
	manager := NewManager()

	t.Run("generated ID", func(t *testing.T) {
		sess, err := manager.Create("", nil, testPawns(t))
		require.NoError(t, err)
		assert.Equal(t, sess.Engine.GetState().ID, sess.ID)
		assert.Equal(t, "standard", sess.Ruleset.Name)
		assert.False(t, sess.CreatedAt.IsZero())
	})

	t.Run("explicit ID", func(t *testing.T) {
		sess, err := manager.Create("Game1", nil, testPawns(t))
		require.NoError(t, err)
		assert.Equal(t, "Game1", sess.ID)

		_, err = manager.Create("game1", nil, testPawns(t))
		assert.ErrorIs(t, err, ErrSessionAlreadyExists)
	})

	t.Run("invalid ruleset", func(t *testing.T) {
		rules := engine.DefaultRuleset()
		rules.CapSupply = 0
		_, err := manager.Create("", rules, testPawns(t))
		assert.Error(t, err)
	})

	assert.Len(t, manager.List(), 2)
}

func TestManager_Get(t *testing.T) {
	manager := NewManager()
	created, err := manager.Create("AbCd", nil, testPawns(t))
	require.NoError(t, err)

	got, err := manager.Get("abcd")
	require.NoError(t, err)
	assert.Same(t, created, got)

	got, err = manager.Get(strings.ToUpper("abcd"))
	require.NoError(t, err)
	assert.Same(t, created, got)

	_, err = manager.Get("missing")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestManager_ListAndDelete(t *testing.T) {
	manager := NewManager()
	for _, id := range []string{"one", "two", "three"} {
		_, err := manager.Create(id, nil, testPawns(t))
		require.NoError(t, err)
	}
	assert.Len(t, manager.List(), 3)

	require.NoError(t, manager.Delete("TWO"))
	assert.Len(t, manager.List(), 2)
	assert.ErrorIs(t, manager.Delete("two"), ErrSessionNotFound)
}

func TestManager_UpdateLastAccessed(t *testing.T) {
	manager := NewManager()
	sess, err := manager.Create("x", nil, testPawns(t))
	require.NoError(t, err)

	before := sess.LastAccessedAt
	time.Sleep(5 * time.Millisecond)
	require.NoError(t, manager.UpdateLastAccessed("x"))
	assert.True(t, sess.LastAccessedAt.After(before))

	assert.ErrorIs(t, manager.UpdateLastAccessed("y"), ErrSessionNotFound)
}

func TestManager_ConcurrentAccess(t *testing.T) {
	manager := NewManager()
	pawns := testPawns(t)
	var wg sync.WaitGroup

	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			sess, err := manager.Create("", nil, pawns)
			if assert.NoError(t, err) {
				_, err = manager.Get(sess.ID)
				assert.NoError(t, err)
			}
		}()
	}
	wg.Wait()

	assert.Len(t, manager.List(), 20)
}
