package handler // place-search endpoint

import (
    "errors"   // errors matches the typed search failures
    "net/http" // http defines status codes
    "strconv"  // strconv parses the size query parameter

    "github.com/labstack/echo/v4" // echo provides the web context

    "github.com/oseyo/open-space-listing/internal/place"
)

// PlaceHandler wraps the external place-search client.
type PlaceHandler struct {
    Search      *place.Client // Kakao keyword search
    DefaultSize int           // candidate count when the request does not ask for one
}

// SearchPlaces handles GET /v1/places/search?query=&size=.  Each typed
// failure of the search client maps onto its own status and message so the
// UI can tell "fix your query" from "try again later" from "the service is
// misconfigured":
//
//	blank query    -> 400
//	missing config -> 503
//	rate limited   -> 503 (try again later)
//	request failed -> 502 with the upstream status
//	transport      -> 502 with the cause
//	no results     -> 404
func (h *PlaceHandler) SearchPlaces(c echo.Context) error {
    query := c.QueryParam("query")
    // The configured default applies when the request does not ask for a
    // size; the client clamps either way.
    size := h.DefaultSize
    if s := c.QueryParam("size"); s != "" {
        if n, err := strconv.Atoi(s); err == nil {
            size = n
        }
    }

    candidates, err := h.Search.Search(c.Request().Context(), query, size)
    if err != nil {
        var reqFailed *place.RequestFailedError
        var transport *place.TransportError
        switch {
        case errors.Is(err, place.ErrQueryRequired):
            return c.JSON(http.StatusBadRequest, map[string]string{"error": "query is required"})
        case errors.Is(err, place.ErrConfigMissing):
            return c.JSON(http.StatusServiceUnavailable, map[string]string{"error": "place search is not configured"})
        case errors.Is(err, place.ErrRateLimited):
            return c.JSON(http.StatusServiceUnavailable, map[string]string{"error": "place search is busy, try again later"})
        case errors.Is(err, place.ErrNoResults):
            return c.JSON(http.StatusNotFound, map[string]string{"error": "no results"})
        case errors.As(err, &reqFailed):
            return c.JSON(http.StatusBadGateway, map[string]string{"error": reqFailed.Error()})
        case errors.As(err, &transport):
            return c.JSON(http.StatusBadGateway, map[string]string{"error": transport.Error()})
        default:
            return c.JSON(http.StatusInternalServerError, map[string]string{"error": "place search failed"})
        }
    }
    return c.JSON(http.StatusOK, map[string]any{"candidates": candidates})
}
