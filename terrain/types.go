package terrain

import (
	"errors"
	"math"
)

// ErrBadOptions indicates generator options that cannot produce terrain.
var ErrBadOptions = errors.New("terrain: invalid generator options")

// ErrUnknownKind indicates a kind name ParseKind does not recognize.
var ErrUnknownKind = errors.New("terrain: unknown kind")

// Kind classifies a cell.
type Kind uint8

const (
	Plains Kind = iota
	Forest
	Hills
	Mountain
	Water
	Wall
	kindCount
)

// movement holds the entry cost of every kind; +Inf marks impassable kinds.
var movement = [kindCount]float64{
	Plains:   1,
	Forest:   2,
	Hills:    3,
	Mountain: 5,
	Water:    math.Inf(1),
	Wall:     math.Inf(1),
}

// Cell is the value stored in a painted map.
type Cell struct {
	Kind      Kind
	Elevation float64 // normalized noise sample in [0, 1)
	Moisture  float64 // normalized noise sample in [0, 1)
}

// Options configures a Generator.
type Options struct {
	Seed        int64
	Octaves     int     // noise layers, at least 1
	Frequency   float64 // base frequency, > 0
	Persistence float64 // amplitude falloff per octave, in (0, 1]

	SeaLevel       float64 // elevation below which cells are Water
	HillLevel      float64 // elevation above which cells are Hills
	MountainLevel  float64 // elevation above which cells are Mountain
	ForestMoisture float64 // moisture above which low land is Forest
}

// DefaultOptions returns the settings used when a scenario does not override them.
func DefaultOptions() Options {
	return Options{
		Seed:           1,
		Octaves:        4,
		Frequency:      0.08,
		Persistence:    0.5,
		SeaLevel:       0.3,
		HillLevel:      0.62,
		MountainLevel:  0.75,
		ForestMoisture: 0.55,
	}
}
