package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// roomResponse lists one room with its free slots as "start:end" strings in
// ascending order.
type roomResponse struct {
	Room      string   `json:"room"`
	Floor     int      `json:"floor"`
	Building  string   `json:"building"`
	FreeSlots []string `json:"freeSlots"`
}

// ListRooms handles GET /api/rooms.
func (h *Handler) ListRooms(c *gin.Context) {
	rooms := h.dir.ListFreeSlots()
	responses := make([]roomResponse, 0, len(rooms))
	for _, r := range rooms {
		slots := make([]string, len(r.FreeSlots))
		for i, s := range r.FreeSlots {
			slots[i] = s.String()
		}
		responses = append(responses, roomResponse{
			Room:      r.Room,
			Floor:     r.Floor,
			Building:  r.Building,
			FreeSlots: slots,
		})
	}
	c.JSON(http.StatusOK, responses)
}
