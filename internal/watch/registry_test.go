package watch

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistryPutGetDelete(t *testing.T) {
	r := NewRegistry()
	key := RoomKey{Building: "B1", Floor: 1, Room: "R1"}

	r.Put(Subscription{Endpoint: "https://example.com/push", P256DH: "p", Auth: "a", Rooms: []RoomKey{key}})

	sub, ok := r.Get("https://example.com/push")
	require.True(t, ok)
	assert.Equal(t, []RoomKey{key}, sub.Rooms)

	// Put replaces the subscription for its endpoint.
	r.Put(Subscription{Endpoint: "https://example.com/push", P256DH: "p2", Auth: "a2"})
	sub, ok = r.Get("https://example.com/push")
	require.True(t, ok)
	assert.Equal(t, "p2", sub.P256DH)
	assert.Empty(t, sub.Rooms)

	r.Delete("https://example.com/push")
	_, ok = r.Get("https://example.com/push")
	assert.False(t, ok)
}

func TestRegistryForRoom(t *testing.T) {
	r := NewRegistry()
	r1 := RoomKey{Building: "B1", Floor: 1, Room: "R1"}
	r2 := RoomKey{Building: "B1", Floor: 2, Room: "R1"}

	r.Put(Subscription{Endpoint: "e1", Rooms: []RoomKey{r1}})
	r.Put(Subscription{Endpoint: "e2", Rooms: []RoomKey{r1, r2}})
	r.Put(Subscription{Endpoint: "e3", Rooms: []RoomKey{r2}})

	watchers := r.ForRoom(r1)
	endpoints := make([]string, len(watchers))
	for i, w := range watchers {
		endpoints[i] = w.Endpoint
	}
	assert.ElementsMatch(t, []string{"e1", "e2"}, endpoints)

	assert.Empty(t, r.ForRoom(RoomKey{Building: "B9", Floor: 1, Room: "R1"}))
}
