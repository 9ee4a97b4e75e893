package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"roombook-backend/internal/parse"
)

type bookingRequest struct {
	Building string `json:"building" binding:"required"`
	Floor    *int   `json:"floor" binding:"required"`
	Room     string `json:"room" binding:"required"`
	Slot     string `json:"slot" binding:"required"`
}

// Book handles POST /api/bookings.
func (h *Handler) Book(c *gin.Context) {
	var req bookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	start, end, err := parse.Slot(req.Slot)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.dir.Book(req.Building, *req.Floor, req.Room, start, end); err != nil {
		abortWithBookingError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"building": req.Building,
		"floor":    *req.Floor,
		"room":     req.Room,
		"booked":   req.Slot,
	})
}

// Cancel handles DELETE /api/bookings. A missing booking is a negative
// outcome, not an error.
func (h *Handler) Cancel(c *gin.Context) {
	var req bookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	start, end, err := parse.Slot(req.Slot)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	cancelled, err := h.dir.Cancel(req.Building, *req.Floor, req.Room, start, end)
	if err != nil {
		abortWithBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"cancelled": cancelled})
}

// ListBookings handles GET /api/bookings: every stored interval across all
// rooms in building → floor → room order.
func (h *Handler) ListBookings(c *gin.Context) {
	bookings := h.dir.ListBookings()
	lines := make([]string, len(bookings))
	for i, b := range bookings {
		lines[i] = b.String()
	}
	c.JSON(http.StatusOK, gin.H{"bookings": bookings, "lines": lines})
}
