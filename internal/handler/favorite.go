package handler // favorites endpoints

import (
    "net/http" // http defines status codes
    "net/url"  // url decodes the activity path segment
    "strings"  // strings trims the submitted activity

    "github.com/labstack/echo/v4" // echo provides the web context

    "github.com/oseyo/open-space-listing/internal/clock"
    "github.com/oseyo/open-space-listing/internal/repository"
)

// FavoriteHandler aggregates what the favorites endpoints need.
type FavoriteHandler struct {
    Favorites *repository.FavoriteRepo // favorites persistence
    Clock     clock.Clock              // stamps first-insert time
}

// AddFavorite handles POST /v1/favorites.  The activity is trimmed; a blank
// submission is silently ignored (204), matching the insert-if-absent
// contract where blanks are not errors.
func (h *FavoriteHandler) AddFavorite(c echo.Context) error {
    var body struct {
        Activity string `form:"activity" json:"activity"`
    }
    if err := c.Bind(&body); err != nil {
        return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
    }
    activity := strings.TrimSpace(body.Activity)
    if activity == "" {
        return c.NoContent(http.StatusNoContent) // blank input changes nothing
    }
    createdAt := clock.Format(h.Clock.Now())
    if err := h.Favorites.Add(c.Request().Context(), activity, createdAt); err != nil {
        return c.JSON(http.StatusInternalServerError, map[string]string{"error": "could not save favorite"})
    }
    return c.NoContent(http.StatusNoContent)
}

// RemoveFavorite handles DELETE /v1/favorites/:activity with an exact-match
// delete; removing an absent activity is a no-op 204.
func (h *FavoriteHandler) RemoveFavorite(c echo.Context) error {
    // Activities are usually Korean text, so the path segment arrives
    // percent-encoded.
    activity, err := url.PathUnescape(c.Param("activity"))
    if err != nil || activity == "" {
        return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid activity"})
    }
    if err := h.Favorites.Remove(c.Request().Context(), activity); err != nil {
        return c.JSON(http.StatusInternalServerError, map[string]string{"error": "could not remove favorite"})
    }
    return c.NoContent(http.StatusNoContent)
}

// ListFavorites handles GET /v1/favorites, most recently added first.
func (h *FavoriteHandler) ListFavorites(c echo.Context) error {
    items, err := h.Favorites.ListAll(c.Request().Context())
    if err != nil {
        return c.JSON(http.StatusInternalServerError, map[string]string{"error": "failed to load favorites"})
    }
    return c.JSON(http.StatusOK, map[string]any{"items": items})
}
