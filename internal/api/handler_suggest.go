package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"roombook-backend/internal/parse"
)

// Suggest handles GET /api/suggestions?slot=9:11. An empty offer list is a
// normal response, signalled explicitly.
func (h *Handler) Suggest(c *gin.Context) {
	slot := c.Query("slot")
	if slot == "" {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "slot is required"})
		return
	}
	start, end, err := parse.Slot(slot)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	offers := h.dir.Suggest(start, end)
	if len(offers) == 0 {
		c.JSON(http.StatusOK, gin.H{"suggestions": []string{}, "message": "no suggestions available"})
		return
	}
	lines := make([]string, len(offers))
	for i, o := range offers {
		lines[i] = o.String()
	}
	c.JSON(http.StatusOK, gin.H{"suggestions": offers, "lines": lines})
}
