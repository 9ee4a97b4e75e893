// Package catalog is the building → floor → room registry. It holds no
// interval logic; structural mutation and lookup are serialized under one
// coarse lock so registration never races a traversal.
package catalog

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"roombook-backend/internal/booking"
)

var (
	ErrNoSuchBuilding = errors.New("building does not exist")
	ErrNoSuchFloor    = errors.New("floor does not exist")
	ErrNoSuchRoom     = errors.New("room does not exist")
	ErrBuildingExists = errors.New("building already exists")
	ErrRoomExists     = errors.New("room already exists")
)

// Floor holds the rooms registered on one floor, in creation order.
type Floor struct {
	Number int
	Rooms  []*booking.Room
}

// Building maps floor numbers to floors.
type Building struct {
	Name   string
	Floors map[int]*Floor
}

// Catalog is the process-wide registry of buildings.
type Catalog struct {
	mu        sync.RWMutex
	buildings map[string]*Building
}

// New creates an empty catalog.
func New() *Catalog {
	return &Catalog{buildings: make(map[string]*Building)}
}

// AddBuilding registers a building. Duplicate names are rejected.
func (c *Catalog) AddBuilding(name string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.buildings[name]; ok {
		return fmt.Errorf("%w: %s", ErrBuildingExists, name)
	}
	c.buildings[name] = &Building{Name: name, Floors: make(map[int]*Floor)}
	return nil
}

// AddFloor registers a floor on an existing building. Re-adding an existing
// floor is a no-op.
func (c *Catalog) AddFloor(building string, number int) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	b, ok := c.buildings[building]
	if !ok {
		return fmt.Errorf("%w: %s", ErrNoSuchBuilding, building)
	}
	if _, ok := b.Floors[number]; !ok {
		b.Floors[number] = &Floor{Number: number}
	}
	return nil
}

// AddRoom registers a room on an existing floor. Room names must be unique
// within their floor so FindRoom stays unambiguous.
func (c *Catalog) AddRoom(building string, floor int, name string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	b, ok := c.buildings[building]
	if !ok {
		return fmt.Errorf("%w: %s", ErrNoSuchBuilding, building)
	}
	f, ok := b.Floors[floor]
	if !ok {
		return fmt.Errorf("%w: floor %d in building %s", ErrNoSuchFloor, floor, building)
	}
	for _, r := range f.Rooms {
		if r.Name == name {
			return fmt.Errorf("%w: %s on floor %d of %s", ErrRoomExists, name, floor, building)
		}
	}
	f.Rooms = append(f.Rooms, booking.NewRoom(name, floor, building))
	return nil
}

// FindRoom resolves a room by identity.
func (c *Catalog) FindRoom(building string, floor int, name string) (*booking.Room, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	b, ok := c.buildings[building]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNoSuchBuilding, building)
	}
	f, ok := b.Floors[floor]
	if !ok {
		return nil, fmt.Errorf("%w: floor %d in building %s", ErrNoSuchFloor, floor, building)
	}
	for _, r := range f.Rooms {
		if r.Name == name {
			return r, nil
		}
	}
	return nil, fmt.Errorf("%w: %s on floor %d of %s", ErrNoSuchRoom, name, floor, building)
}

// Walk visits every room in building (lexicographic) → floor (ascending) →
// room (creation) order, holding the catalog read lock for the whole
// traversal. The visitor returns false to stop early.
func (c *Catalog) Walk(visit func(*booking.Room) bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	names := make([]string, 0, len(c.buildings))
	for name := range c.buildings {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		b := c.buildings[name]
		floors := make([]int, 0, len(b.Floors))
		for n := range b.Floors {
			floors = append(floors, n)
		}
		sort.Ints(floors)
		for _, n := range floors {
			for _, r := range b.Floors[n].Rooms {
				if !visit(r) {
					return
				}
			}
		}
	}
}
