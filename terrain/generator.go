package terrain

import (
	"fmt"
	"math"

	opensimplex "github.com/ojrac/opensimplex-go"

	"github.com/katalvlaran/gridmap/grid"
	"github.com/katalvlaran/gridmap/hexgrid"
	"github.com/katalvlaran/gridmap/taxicab"
)

// Generator samples deterministic terrain from two noise fields.
type Generator struct {
	opts      Options
	elevation opensimplex.Noise
	moisture  opensimplex.Noise
}

// NewGenerator validates opts and seeds the noise fields.
// Returns ErrBadOptions when the octave settings or thresholds are unusable.
func NewGenerator(opts Options) (*Generator, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}

	return &Generator{
		opts:      opts,
		elevation: opensimplex.NewNormalized(opts.Seed),
		moisture:  opensimplex.NewNormalized(opts.Seed + 1),
	}, nil
}

func (o Options) validate() error {
	switch {
	case o.Octaves < 1:
		return fmt.Errorf("%w: octaves %d", ErrBadOptions, o.Octaves)
	case !(o.Frequency > 0) || math.IsInf(o.Frequency, 0):
		return fmt.Errorf("%w: frequency %v", ErrBadOptions, o.Frequency)
	case !(o.Persistence > 0 && o.Persistence <= 1):
		return fmt.Errorf("%w: persistence %v", ErrBadOptions, o.Persistence)
	case !(o.SeaLevel <= o.HillLevel && o.HillLevel <= o.MountainLevel):
		return fmt.Errorf("%w: levels sea %v, hill %v, mountain %v",
			ErrBadOptions, o.SeaLevel, o.HillLevel, o.MountainLevel)
	}

	return nil
}

// Options returns the validated settings.
func (g *Generator) Options() Options { return g.opts }

// Sample returns the cell at plane position (x, y).
func (g *Generator) Sample(x, y float64) Cell {
	elev := octaveNoise(g.elevation, x, y, g.opts.Octaves, g.opts.Frequency, g.opts.Persistence)
	moist := octaveNoise(g.moisture, x, y, g.opts.Octaves, g.opts.Frequency, g.opts.Persistence)

	return Cell{
		Kind:      g.opts.Classify(elev, moist),
		Elevation: elev,
		Moisture:  moist,
	}
}

// Classify maps an elevation and moisture sample to a kind.
// Generated terrain never contains Wall; walls are placed explicitly.
func (o Options) Classify(elevation, moisture float64) Kind {
	switch {
	case elevation < o.SeaLevel:
		return Water
	case elevation > o.MountainLevel:
		return Mountain
	case elevation > o.HillLevel:
		return Hills
	case moisture > o.ForestMoisture:
		return Forest
	default:
		return Plains
	}
}

// octaveNoise layers octaves of noise, doubling the frequency each time, and
// renormalizes the sum to the range of a single octave.
func octaveNoise(noise opensimplex.Noise, x, y float64, octaves int, frequency, persistence float64) float64 {
	total, amplitude, maxVal := 0.0, 1.0, 0.0
	for i := 0; i < octaves; i++ {
		total += noise.Eval2(x*frequency, y*frequency) * amplitude
		maxVal += amplitude
		amplitude *= persistence
		frequency *= 2
	}

	return total / maxVal
}

// Paint overwrites every member of m with the cell sampled at project(p)
// and returns the number of cells painted.
func Paint[P comparable](m grid.Store[P, Cell], project func(P) (x, y float64), g *Generator) int {
	points := make([]P, 0, m.Count())
	for p := range m.All() {
		points = append(points, p)
	}
	for _, p := range points {
		m.Set(p, g.Sample(project(p)))
	}

	return len(points)
}

// HexPlane projects a hexagon to the plane with unit spacing between neighbor centers.
func HexPlane(a hexgrid.Axial) (x, y float64) {
	return hexgrid.Center(a, 1/math.Sqrt(3))
}

// TaxicabPlane projects a point to the plane unchanged.
func TaxicabPlane(p taxicab.Point) (x, y float64) {
	return float64(p.X), float64(p.Y)
}
