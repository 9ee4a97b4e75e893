// Package seed loads an initial building → floor → room layout from a YAML
// file and applies it through the directory at startup.
package seed

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"roombook-backend/internal/directory"
)

// Layout describes the initial topology.
type Layout struct {
	Buildings []BuildingLayout `yaml:"buildings"`
}

// BuildingLayout is one building with its floors.
type BuildingLayout struct {
	Name   string        `yaml:"name"`
	Floors []FloorLayout `yaml:"floors"`
}

// FloorLayout is one floor with its room names.
type FloorLayout struct {
	Number int      `yaml:"number"`
	Rooms  []string `yaml:"rooms"`
}

// LoadLayout reads a layout file.
func LoadLayout(path string) (*Layout, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var layout Layout
	if err := yaml.NewDecoder(f).Decode(&layout); err != nil {
		return nil, fmt.Errorf("failed to decode layout %s: %w", path, err)
	}
	return &layout, nil
}

// Apply registers the layout through the directory. Conflicts (duplicate
// buildings or rooms within the file) abort the seed.
func Apply(layout *Layout, dir *directory.Directory) error {
	for _, b := range layout.Buildings {
		if err := dir.AddBuilding(b.Name); err != nil {
			return fmt.Errorf("seed building %s: %w", b.Name, err)
		}
		for _, f := range b.Floors {
			if err := dir.AddFloor(b.Name, f.Number); err != nil {
				return fmt.Errorf("seed floor %d of %s: %w", f.Number, b.Name, err)
			}
			for _, room := range f.Rooms {
				if err := dir.AddRoom(b.Name, f.Number, room); err != nil {
					return fmt.Errorf("seed room %s on floor %d of %s: %w", room, f.Number, b.Name, err)
				}
			}
		}
	}
	return nil
}
