package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"roombook-backend/internal/booking"
)

func TestCatalogRegistration(t *testing.T) {
	c := New()

	require.NoError(t, c.AddBuilding("B1"))
	assert.ErrorIs(t, c.AddBuilding("B1"), ErrBuildingExists)

	require.NoError(t, c.AddFloor("B1", 1))
	assert.NoError(t, c.AddFloor("B1", 1), "re-adding a floor is a no-op")
	assert.ErrorIs(t, c.AddFloor("B2", 1), ErrNoSuchBuilding)

	require.NoError(t, c.AddRoom("B1", 1, "R1"))
	assert.ErrorIs(t, c.AddRoom("B1", 1, "R1"), ErrRoomExists)
	assert.ErrorIs(t, c.AddRoom("B1", 2, "R2"), ErrNoSuchFloor)
	assert.ErrorIs(t, c.AddRoom("B2", 1, "R2"), ErrNoSuchBuilding)
}

func TestCatalogFindRoom(t *testing.T) {
	c := New()
	require.NoError(t, c.AddBuilding("B1"))
	require.NoError(t, c.AddFloor("B1", 1))
	require.NoError(t, c.AddRoom("B1", 1, "R1"))

	room, err := c.FindRoom("B1", 1, "R1")
	require.NoError(t, err)
	assert.Equal(t, "R1", room.Name)
	assert.Equal(t, 1, room.Floor)
	assert.Equal(t, "B1", room.Building)

	_, err = c.FindRoom("B1", 1, "R9")
	assert.ErrorIs(t, err, ErrNoSuchRoom)
	_, err = c.FindRoom("B1", 9, "R1")
	assert.ErrorIs(t, err, ErrNoSuchFloor)
	_, err = c.FindRoom("B9", 1, "R1")
	assert.ErrorIs(t, err, ErrNoSuchBuilding)
}

// The same room name may exist on different floors and buildings.
func TestCatalogRoomNameScoping(t *testing.T) {
	c := New()
	for _, b := range []string{"B1", "B2"} {
		require.NoError(t, c.AddBuilding(b))
		require.NoError(t, c.AddFloor(b, 1))
		require.NoError(t, c.AddRoom(b, 1, "R1"))
	}
	require.NoError(t, c.AddFloor("B1", 2))
	require.NoError(t, c.AddRoom("B1", 2, "R1"))

	r1, err := c.FindRoom("B1", 2, "R1")
	require.NoError(t, err)
	r2, err := c.FindRoom("B2", 1, "R1")
	require.NoError(t, err)
	assert.NotSame(t, r1, r2)
}

func TestCatalogWalkOrder(t *testing.T) {
	c := New()
	// Register out of order on purpose.
	require.NoError(t, c.AddBuilding("B2"))
	require.NoError(t, c.AddBuilding("B1"))
	require.NoError(t, c.AddFloor("B1", 2))
	require.NoError(t, c.AddFloor("B1", 1))
	require.NoError(t, c.AddFloor("B2", 1))
	require.NoError(t, c.AddRoom("B1", 1, "R2"))
	require.NoError(t, c.AddRoom("B1", 1, "R1"))
	require.NoError(t, c.AddRoom("B1", 2, "R3"))
	require.NoError(t, c.AddRoom("B2", 1, "R4"))

	var visited []string
	c.Walk(func(r *booking.Room) bool {
		visited = append(visited, r.Building+"/"+r.Name)
		return true
	})

	// Buildings lexicographic, floors ascending, rooms in creation order.
	assert.Equal(t, []string{"B1/R2", "B1/R1", "B1/R3", "B2/R4"}, visited)
}

func TestCatalogWalkEarlyStop(t *testing.T) {
	c := New()
	require.NoError(t, c.AddBuilding("B1"))
	require.NoError(t, c.AddFloor("B1", 1))
	for _, name := range []string{"R1", "R2", "R3"} {
		require.NoError(t, c.AddRoom("B1", 1, name))
	}

	var count int
	c.Walk(func(r *booking.Room) bool {
		count++
		return count < 2
	})
	assert.Equal(t, 2, count)
}
