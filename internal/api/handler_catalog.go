package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

type addBuildingRequest struct {
	Name string `json:"name" binding:"required"`
}

// AddBuilding handles POST /api/buildings.
func (h *Handler) AddBuilding(c *gin.Context) {
	var req addBuildingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.dir.AddBuilding(req.Name); err != nil {
		abortWithBookingError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"building": req.Name})
}

type addFloorRequest struct {
	Floor *int `json:"floor" binding:"required"`
}

// AddFloor handles POST /api/buildings/{building}/floors.
func (h *Handler) AddFloor(c *gin.Context) {
	building := c.Param("building")
	var req addFloorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.dir.AddFloor(building, *req.Floor); err != nil {
		abortWithBookingError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"building": building, "floor": *req.Floor})
}

type addRoomRequest struct {
	Name string `json:"name" binding:"required"`
}

// AddRoom handles POST /api/buildings/{building}/floors/{floor}/rooms.
func (h *Handler) AddRoom(c *gin.Context) {
	building := c.Param("building")
	floor, err := strconv.Atoi(c.Param("floor"))
	if err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid floor number"})
		return
	}
	var req addRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.dir.AddRoom(building, floor, req.Name); err != nil {
		abortWithBookingError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"building": building, "floor": floor, "room": req.Name})
}
