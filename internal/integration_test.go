package internal

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"roombook-backend/config"
	"roombook-backend/internal/api"
	"roombook-backend/internal/directory"
	"roombook-backend/internal/seed"
	"roombook-backend/internal/watch"
)

const testLayout = `
buildings:
  - name: B1
    floors:
      - number: 1
        rooms: [R1, R2]
      - number: 2
        rooms: [R3]
`

// TestBookingLifecycle drives the whole stack: seed a layout from YAML, then
// book, list, suggest, and cancel through the HTTP API.
func TestBookingLifecycle(t *testing.T) {
	// --- Test Setup ---
	layoutPath := filepath.Join(t.TempDir(), "layout.yaml")
	require.NoError(t, os.WriteFile(layoutPath, []byte(testLayout), 0o644))

	cfg := config.Default()
	cfg.Server.RateLimitPerSec = 10000
	cfg.Server.RateLimitBurst = 10000

	dir := directory.New(directory.Config{
		DayStart:       cfg.Booking.DayStart,
		DayEnd:         cfg.Booking.DayEnd,
		MaxSuggestions: cfg.Booking.MaxSuggestions,
	})

	layout, err := seed.LoadLayout(layoutPath)
	require.NoError(t, err)
	require.NoError(t, seed.Apply(layout, dir))

	router := api.NewRouter(cfg, dir, watch.NewRegistry(), nil)
	server := httptest.NewServer(router)
	defer server.Close()

	client := server.Client()

	postJSON := func(t *testing.T, method, path string, body any) *http.Response {
		t.Helper()
		buf, err := json.Marshal(body)
		require.NoError(t, err)
		req, err := http.NewRequest(method, server.URL+path, bytes.NewReader(buf))
		require.NoError(t, err)
		req.Header.Set("Content-Type", "application/json")
		resp, err := client.Do(req)
		require.NoError(t, err)
		return resp
	}

	// Read endpoints are cached by request URI, so each GET below carries a
	// distinct query string to observe fresh state.
	t.Run("seeded rooms are fully free", func(t *testing.T) {
		resp, err := client.Get(server.URL + "/api/rooms?seeded=1")
		require.NoError(t, err)
		defer resp.Body.Close()
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var rooms []struct {
			Room      string   `json:"room"`
			Floor     int      `json:"floor"`
			Building  string   `json:"building"`
			FreeSlots []string `json:"freeSlots"`
		}
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&rooms))
		require.Len(t, rooms, 3)
		for _, r := range rooms {
			assert.Equal(t, []string{"1:24"}, r.FreeSlots)
		}
		assert.Equal(t, "R1", rooms[0].Room)
		assert.Equal(t, "R2", rooms[1].Room)
		assert.Equal(t, "R3", rooms[2].Room)
	})

	t.Run("book and list bookings", func(t *testing.T) {
		resp := postJSON(t, http.MethodPost, "/api/bookings",
			map[string]any{"building": "B1", "floor": 1, "room": "R1", "slot": "2:5"})
		defer resp.Body.Close()
		require.Equal(t, http.StatusCreated, resp.StatusCode)

		resp2, err := client.Get(server.URL + "/api/bookings?after=book")
		require.NoError(t, err)
		defer resp2.Body.Close()
		require.Equal(t, http.StatusOK, resp2.StatusCode)

		var listResp struct {
			Lines []string `json:"lines"`
		}
		require.NoError(t, json.NewDecoder(resp2.Body).Decode(&listResp))
		assert.Equal(t, []string{"2:5 1 B1 R1"}, listResp.Lines)
	})

	t.Run("conflicting booking falls back to suggestions", func(t *testing.T) {
		resp := postJSON(t, http.MethodPost, "/api/bookings",
			map[string]any{"building": "B1", "floor": 1, "room": "R1", "slot": "3:6"})
		defer resp.Body.Close()
		require.Equal(t, http.StatusConflict, resp.StatusCode)

		resp2, err := client.Get(server.URL + "/api/suggestions?slot=3:6")
		require.NoError(t, err)
		defer resp2.Body.Close()
		require.Equal(t, http.StatusOK, resp2.StatusCode)

		var suggestResp struct {
			Lines []string `json:"lines"`
		}
		require.NoError(t, json.NewDecoder(resp2.Body).Decode(&suggestResp))
		// R1 is busy 2-5 so its earliest 3-hour slot starts at 5; R2 and R3
		// are free at the desired time. Offers keep room-iteration order.
		assert.Equal(t, []string{
			"R1 1 B1 available at 5:8",
			"R2 1 B1 available at 3:6",
			"R3 2 B1 available at 3:6",
		}, suggestResp.Lines)
	})

	t.Run("cancel frees the slot", func(t *testing.T) {
		resp := postJSON(t, http.MethodDelete, "/api/bookings",
			map[string]any{"building": "B1", "floor": 1, "room": "R1", "slot": "2:5"})
		defer resp.Body.Close()
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var cancelResp struct {
			Cancelled bool `json:"cancelled"`
		}
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&cancelResp))
		assert.True(t, cancelResp.Cancelled)

		resp2 := postJSON(t, http.MethodPost, "/api/bookings",
			map[string]any{"building": "B1", "floor": 1, "room": "R1", "slot": "2:5"})
		defer resp2.Body.Close()
		assert.Equal(t, http.StatusCreated, resp2.StatusCode)
	})
}

func TestSeedRejectsConflictingLayout(t *testing.T) {
	layoutPath := filepath.Join(t.TempDir(), "layout.yaml")
	dupLayout := `
buildings:
  - name: B1
    floors:
      - number: 1
        rooms: [R1, R1]
`
	require.NoError(t, os.WriteFile(layoutPath, []byte(dupLayout), 0o644))

	layout, err := seed.LoadLayout(layoutPath)
	require.NoError(t, err)

	dir := directory.New(directory.Config{DayStart: 1, DayEnd: 24, MaxSuggestions: 3})
	assert.Error(t, seed.Apply(layout, dir))
}
