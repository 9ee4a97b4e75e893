package api

import (
	"errors"
	"net/http"

	"github.com/SherClockHolmes/webpush-go"
	"github.com/gin-gonic/gin"

	"roombook-backend/internal/booking"
	"roombook-backend/internal/catalog"
	"roombook-backend/internal/directory"
	"roombook-backend/internal/watch"
)

// Handler holds shared dependencies for API handlers.
type Handler struct {
	dir      *directory.Directory
	registry *watch.Registry
	webpush  *webpush.Options
}

// NewHandler creates a new API handler.
func NewHandler(dir *directory.Directory, registry *watch.Registry, webpushOptions *webpush.Options) *Handler {
	return &Handler{
		dir:      dir,
		registry: registry,
		webpush:  webpushOptions,
	}
}

// abortWithBookingError maps core errors onto HTTP statuses. None of them is
// fatal; the server keeps serving subsequent requests.
func abortWithBookingError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, catalog.ErrNoSuchBuilding),
		errors.Is(err, catalog.ErrNoSuchFloor),
		errors.Is(err, catalog.ErrNoSuchRoom):
		status = http.StatusNotFound
	case errors.Is(err, catalog.ErrBuildingExists),
		errors.Is(err, catalog.ErrRoomExists),
		errors.Is(err, booking.ErrSlotUnavailable):
		status = http.StatusConflict
	case errors.Is(err, booking.ErrInvalidDuration):
		status = http.StatusBadRequest
	}
	c.AbortWithStatusJSON(status, gin.H{"error": err.Error()})
}
