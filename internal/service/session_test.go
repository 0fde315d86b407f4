package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yoshuavic8/church-management-sub002/internal/domain"
)

func admin() *domain.Actor {
	return &domain.Actor{ID: "a-1", FirstName: "Ruth", Role: "admin", RoleLevel: 5}
}

func TestActorCache_EmptyIsNeverAuthenticated(t *testing.T) {
	cache := NewActorCache()

	_, ok := cache.Snapshot()
	assert.False(t, ok)
	assert.False(t, cache.IsAdmin())

	_, err := cache.Resolve(nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUnauthenticated)
}

func TestActorCache_PrefersLiveAndSnapshots(t *testing.T) {
	cache := NewActorCache()

	actor, err := cache.Resolve(admin())
	require.NoError(t, err)
	assert.Equal(t, "a-1", actor.ID)

	cached, ok := cache.Snapshot()
	require.True(t, ok)
	assert.Equal(t, "a-1", cached.ID)
	assert.True(t, cache.IsAdmin())
}

func TestActorCache_FallsBackWhenLiveIsLost(t *testing.T) {
	cache := NewActorCache()
	cache.Set(admin())

	// The live value vanished (camera-permission prompt analogue); the last
	// known good snapshot keeps the operator signed in.
	actor, err := cache.Resolve(nil)

	require.NoError(t, err)
	assert.Equal(t, "a-1", actor.ID)
	assert.True(t, cache.IsAdmin())
}

func TestActorCache_LiveValueReplacesSnapshot(t *testing.T) {
	cache := NewActorCache()
	cache.Set(admin())

	leader := &domain.Actor{ID: "a-2", Role: "leader", RoleLevel: 2}
	_, err := cache.Resolve(leader)
	require.NoError(t, err)

	cached, ok := cache.Snapshot()
	require.True(t, ok)
	assert.Equal(t, "a-2", cached.ID)
	assert.False(t, cache.IsAdmin())
}

func TestActorCache_SetIgnoresNil(t *testing.T) {
	cache := NewActorCache()
	cache.Set(admin())

	cache.Set(nil)

	_, ok := cache.Snapshot()
	assert.True(t, ok)
}

func TestActorCache_SnapshotIsACopy(t *testing.T) {
	cache := NewActorCache()
	live := admin()
	cache.Set(live)

	live.Role = "member"
	live.RoleLevel = 1

	cached, ok := cache.Snapshot()
	require.True(t, ok)
	assert.Equal(t, "admin", cached.Role)
}

func TestActorAdminEligibility(t *testing.T) {
	assert.True(t, (&domain.Actor{Role: "admin"}).IsAdmin())
	assert.True(t, (&domain.Actor{Role: "pastor", RoleLevel: 4}).IsAdmin())
	assert.False(t, (&domain.Actor{Role: "leader", RoleLevel: 3}).IsAdmin())
	assert.False(t, (*domain.Actor)(nil).IsAdmin())
}
