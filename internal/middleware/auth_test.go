package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/ginext"
	"github.com/wb-go/wbf/logger"
	"github.com/yoshuavic8/church-management-sub002/internal/domain"
	"github.com/yoshuavic8/church-management-sub002/internal/service"
	pmocks "github.com/yoshuavic8/church-management-sub002/internal/service/ports/mocks"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

func adminActor() *domain.Actor {
	return &domain.Actor{
		ID:        "op-1",
		FirstName: "Yosua",
		Role:      "admin",
		RoleLevel: 5,
	}
}

func setupGate(t *testing.T, cache *service.ActorCache) (*pmocks.MockIdentityProvider, http.Handler) {
	t.Helper()
	ids := pmocks.NewMockIdentityProvider(t)

	r := ginext.New("test")
	r.GET("/guarded", AdminOnly(cache, ids, newTestLogger(t)), func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{"status": "ok"})
	})

	return ids, r
}

func get(r http.Handler, token string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/guarded", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	r.ServeHTTP(w, req)
	return w
}

func TestAdminOnly_AllowsVerifiedAdmin(t *testing.T) {
	cache := service.NewActorCache()
	ids, r := setupGate(t, cache)

	ids.EXPECT().CurrentActor(mock.Anything, "tok-1").Return(adminActor(), nil)

	w := get(r, "tok-1")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, cache.IsAdmin())
}

func TestAdminOnly_MissingTokenRejected(t *testing.T) {
	cache := service.NewActorCache()
	_, r := setupGate(t, cache)

	w := get(r, "")

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAdminOnly_NonAdminForbidden(t *testing.T) {
	cache := service.NewActorCache()
	ids, r := setupGate(t, cache)

	ids.EXPECT().CurrentActor(mock.Anything, "tok-2").Return(&domain.Actor{
		ID:        "m-9",
		Role:      "member",
		RoleLevel: 1,
	}, nil)

	w := get(r, "tok-2")

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestAdminOnly_TransportFailureFallsBackToCache(t *testing.T) {
	cache := service.NewActorCache()
	cache.Set(adminActor())
	ids, r := setupGate(t, cache)

	ids.EXPECT().CurrentActor(mock.Anything, "tok-3").Return(nil, assert.AnError)

	w := get(r, "tok-3")

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAdminOnly_TransportFailureWithEmptyCacheRejected(t *testing.T) {
	cache := service.NewActorCache()
	ids, r := setupGate(t, cache)

	ids.EXPECT().CurrentActor(mock.Anything, "tok-4").Return(nil, assert.AnError)

	w := get(r, "tok-4")

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAdminOnly_ExplicitRejectionBeatsCache(t *testing.T) {
	cache := service.NewActorCache()
	cache.Set(adminActor())
	ids, r := setupGate(t, cache)

	ids.EXPECT().CurrentActor(mock.Anything, "revoked").
		Return(nil, domain.ErrUnauthenticated)

	w := get(r, "revoked")

	require.Equal(t, http.StatusUnauthorized, w.Code)
}
