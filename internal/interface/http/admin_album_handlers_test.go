package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	domuser "example.com/musicstore/internal/domain/user"
)

func TestAdminAlbums_RequiresAdminRole(t *testing.T) {
	env := newTestEnv(t)
	customer := env.tokenFor(t, "TestUserA", domuser.RoleCodeCustomer)

	payload := map[string]any{"title": "IV", "price": 9.99, "artist_id": 1, "genre_id": 1}

	rec := postJSON(t, env.router, "/admin/albums/", customer, payload)
	require.Equal(t, http.StatusForbidden, rec.Code)

	rec = postJSON(t, env.router, "/admin/albums/", "", payload)
	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAdminAlbums_CreateInvalidatesListing(t *testing.T) {
	env := newTestEnv(t)
	env.catalog.seedLinkedAlbums(10)
	admin := env.tokenFor(t, "StoreManager", domuser.RoleCodeAdmin)

	// Warm the listing cache, then mutate the catalog.
	getPath(t, env.router, "/")
	require.Equal(t, 1, env.catalog.topQueries)

	payload := map[string]any{"title": "IV", "price": 9.99, "artist_id": 1, "genre_id": 1}
	rec := postJSON(t, env.router, "/admin/albums/", admin, payload)
	require.Equal(t, http.StatusCreated, rec.Code)

	getPath(t, env.router, "/")
	require.Equal(t, 2, env.catalog.topQueries, "a catalog mutation must invalidate the cached listing")
}

func TestAdminAlbums_DeleteUnknown(t *testing.T) {
	env := newTestEnv(t)
	admin := env.tokenFor(t, "StoreManager", domuser.RoleCodeAdmin)

	req := httptest.NewRequest(http.MethodDelete, "/admin/albums/42", nil)
	req.Header.Set("Authorization", "Bearer "+admin)
	rec := httptest.NewRecorder()
	env.router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestAdminAlbums_UpdateMergesFields(t *testing.T) {
	env := newTestEnv(t)
	env.catalog.seedLinkedAlbums(1)
	admin := env.tokenFor(t, "StoreManager", domuser.RoleCodeAdmin)

	req := httptest.NewRequest(http.MethodPut, "/admin/albums/1", jsonBody(t, map[string]any{"price": 4.99}))
	req.Header.Set("Authorization", "Bearer "+admin)
	rec := httptest.NewRecorder()
	env.router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Equal(t, "Album 1", resp["title"], "unset fields keep their stored values")
	require.Equal(t, 4.99, resp["price"])
}
