package handler

import (
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oseyo/open-space-listing/internal/clock"
	"github.com/oseyo/open-space-listing/internal/database"
	"github.com/oseyo/open-space-listing/internal/repository"
)

func newFavoriteHandler(t *testing.T) *FavoriteHandler {
	t.Helper()
	db, err := sql.Open("sqlite3", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	require.NoError(t, database.EnsureSchema(context.Background(), db))

	return &FavoriteHandler{
		Favorites: repository.NewFavoriteRepo(db),
		Clock:     clock.Fixed{T: testNow},
	}
}

func addFavorite(t *testing.T, h *FavoriteHandler, activity string) int {
	t.Helper()
	e := echo.New()
	form := url.Values{"activity": {activity}}
	req := httptest.NewRequest(http.MethodPost, "/v1/favorites", strings.NewReader(form.Encode()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	rec := httptest.NewRecorder()
	require.NoError(t, h.AddFavorite(e.NewContext(req, rec)))
	return rec.Code
}

func listFavorites(t *testing.T, h *FavoriteHandler) []repository.Favorite {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/v1/favorites", nil)
	rec := httptest.NewRecorder()
	require.NoError(t, h.ListFavorites(e.NewContext(req, rec)))
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Items []repository.Favorite `json:"items"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body.Items
}

func TestAddFavorite_InsertIfAbsent(t *testing.T) {
	h := newFavoriteHandler(t)

	assert.Equal(t, http.StatusNoContent, addFavorite(t, h, "걷기"))
	assert.Equal(t, http.StatusNoContent, addFavorite(t, h, "걷기"))

	items := listFavorites(t, h)
	require.Len(t, items, 1)
	assert.Equal(t, "걷기", items[0].Activity)
}

func TestAddFavorite_BlankIsSilentlyIgnored(t *testing.T) {
	h := newFavoriteHandler(t)

	assert.Equal(t, http.StatusNoContent, addFavorite(t, h, "  "))
	assert.Empty(t, listFavorites(t, h))
}

func TestRemoveFavorite_EncodedPathSegment(t *testing.T) {
	h := newFavoriteHandler(t)
	require.Equal(t, http.StatusNoContent, addFavorite(t, h, "걷기"))

	e := echo.New()
	req := httptest.NewRequest(http.MethodDelete, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath("/v1/favorites/:activity")
	c.SetParamNames("activity")
	c.SetParamValues(url.PathEscape("걷기"))
	require.NoError(t, h.RemoveFavorite(c))

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, listFavorites(t, h))
}
