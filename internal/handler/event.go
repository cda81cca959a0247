// Package handler exposes the HTTP boundary of the service.  This file
// contains the event endpoints: create, delete, the active listing and the
// map payload.  Handlers own all input validation; the repositories trust
// what they are handed.  Every failure is converted here into a single JSON
// error message per the boundary policy — nothing propagates far enough to
// crash the process.
package handler

import (
    "errors"   // errors drives sentinel matching for the taxonomy
    "log"      // log carries the filter's exclusion warnings
    "net/http" // http defines status codes

    "github.com/go-playground/validator/v10" // request-shape validation
    "github.com/labstack/echo/v4"            // echo provides the web context and JSON helpers

    "github.com/oseyo/open-space-listing/internal/clock"
    "github.com/oseyo/open-space-listing/internal/event"
    "github.com/oseyo/open-space-listing/internal/imaging"
    "github.com/oseyo/open-space-listing/internal/mapview"
    "github.com/oseyo/open-space-listing/internal/repository"
)

// validate checks request shapes.  Cross-field rules (end after start,
// capacity clamping) live in event.New, not in tags.
var validate = validator.New()

// EventHandler aggregates what the event endpoints need.
type EventHandler struct {
    Events *repository.EventRepo // event persistence
    Clock  clock.Clock           // injected time source
}

// createEventRequest binds the creation form.  The photo file travels
// separately in the multipart body and is read via FormFile.
type createEventRequest struct {
    Title           string  `form:"title" json:"title" validate:"required"`
    Start           string  `form:"start" json:"start" validate:"required"`
    End             string  `form:"end" json:"end" validate:"required"`
    Address         string  `form:"address" json:"address" validate:"required"`
    AddressDetail   string  `form:"address_detail" json:"address_detail"`
    Lat             float64 `form:"lat" json:"lat" validate:"required"`
    Lng             float64 `form:"lng" json:"lng" validate:"required"`
    CapacityEnabled bool    `form:"capacity_enabled" json:"capacity_enabled"`
    CapacityMax     int     `form:"capacity_max" json:"capacity_max"`
}

// activeEvent decorates a stored event with its display strings for the
// listing response.
type activeEvent struct {
    repository.Event
    Period    string `json:"period"`              // formatted start/end window
    Remaining string `json:"remaining,omitempty"` // e.g. "남음 2시간"
}

// CreateEvent handles POST /v1/events.  It validates the form, encodes the
// optional photo, builds the event through the validated constructor and
// persists it.  201 with the stored record on success.
func (h *EventHandler) CreateEvent(c echo.Context) error {
    var req createEventRequest
    if err := c.Bind(&req); err != nil { // bind form or JSON body
        return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
    }
    if err := validate.Struct(req); err != nil { // shape validation
        return c.JSON(http.StatusBadRequest, map[string]string{"error": validationMessage(err)})
    }

    // The photo is optional and best effort: a missing file or a blob that
    // cannot be decoded simply leaves the event photoless.
    photo := ""
    if fh, err := c.FormFile("photo"); err == nil && fh != nil {
        if src, err := fh.Open(); err == nil {
            photo = imaging.EncodePhoto(src)
            _ = src.Close()
        }
    }

    e, err := event.New(event.NewInput{
        Title:           req.Title,
        Photo:           photo,
        Start:           req.Start,
        End:             req.End,
        Address:         req.Address,
        AddressDetail:   req.AddressDetail,
        Lat:             req.Lat,
        Lng:             req.Lng,
        CapacityEnabled: req.CapacityEnabled,
        CapacityMax:     req.CapacityMax,
    }, h.Clock)
    if err != nil {
        if errors.Is(err, event.ErrValidation) {
            return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
        }
        return c.JSON(http.StatusInternalServerError, map[string]string{"error": "could not create event"})
    }

    if err := h.Events.Create(c.Request().Context(), e); err != nil {
        // The store rejected the write; report it rather than pretending the
        // event exists.
        return c.JSON(http.StatusInternalServerError, map[string]string{"error": "could not save event"})
    }
    return c.JSON(http.StatusCreated, e)
}

// DeleteEvent handles DELETE /v1/events/:id.  Deletion is a hard delete and
// idempotent: deleting an id that is already gone succeeds with 204.
func (h *EventHandler) DeleteEvent(c echo.Context) error {
    id := c.Param("id")
    if id == "" {
        return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid id"})
    }
    if err := h.Events.DeleteByID(c.Request().Context(), id); err != nil {
        return c.JSON(http.StatusInternalServerError, map[string]string{"error": "could not delete event"})
    }
    return c.NoContent(http.StatusNoContent)
}

// ListActiveEvents handles GET /v1/events/active.  It loads everything in
// creation-descending order, filters to the windows containing now and
// decorates each survivor with its period and remaining-time strings.
func (h *EventHandler) ListActiveEvents(c echo.Context) error {
    all, err := h.Events.ListAll(c.Request().Context())
    if err != nil {
        return c.JSON(http.StatusInternalServerError, map[string]string{"error": "failed to load events"})
    }
    now := h.Clock.Now()
    active := event.ActiveAt(all, now, log.Printf)
    items := make([]activeEvent, 0, len(active))
    for _, e := range active {
        items = append(items, activeEvent{
            Event:     e,
            Period:    event.FormatPeriod(e.StartAt, e.EndAt),
            Remaining: event.Remaining(e.EndAt, now),
        })
    }
    return c.JSON(http.StatusOK, map[string]any{"items": items})
}

// MapPoints handles GET /v1/map/points and returns the marker payload plus
// the initial center for the external map renderer.
func (h *EventHandler) MapPoints(c echo.Context) error {
    all, err := h.Events.ListAll(c.Request().Context())
    if err != nil {
        return c.JSON(http.StatusInternalServerError, map[string]string{"error": "failed to load events"})
    }
    active := event.ActiveAt(all, h.Clock.Now(), log.Printf)
    return c.JSON(http.StatusOK, mapview.Build(active))
}

// validationMessage turns the first field error into the user-facing
// message, mirroring the per-field wording used elsewhere at this boundary.
func validationMessage(err error) string {
    var fieldErrs validator.ValidationErrors
    if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
        switch fieldErrs[0].Field() {
        case "Title":
            return "title is required"
        case "Start", "End":
            return "start and end are required"
        case "Address", "Lat", "Lng":
            return "a selected place is required"
        }
    }
    return "missing required fields"
}
