package scenario

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/gridmap/hexgrid"
	"github.com/katalvlaran/gridmap/taxicab"
	"github.com/katalvlaran/gridmap/terrain"
)

// Load reads and parses the scenario file at path.
// An unnamed scenario is named after the file.
func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("scenario: read %s: %w", path, err)
	}
	s, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if s.Name == "" {
		s.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}

	return s, nil
}

// Parse decodes a YAML scenario, fills defaults and validates it.
func Parse(data []byte) (*Scenario, error) {
	var s Scenario
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("scenario: decode: %w", err)
	}
	s.applyDefaults()
	if err := s.Validate(); err != nil {
		return nil, err
	}

	return &s, nil
}

func (s *Scenario) applyDefaults() {
	s.Topology = strings.ToLower(strings.TrimSpace(s.Topology))
	if name, ok := topologyAliases[s.Topology]; ok {
		s.Topology = name
	}
	s.Shape = strings.ToLower(strings.TrimSpace(s.Shape))
	if s.Shape == "" {
		s.Shape = defaultShape[s.Topology]
	}
	if s.Shape == Square && s.Height == 0 {
		s.Height = s.Width
	}
	for i := range s.Paths {
		if s.Paths[i].Name == "" {
			s.Paths[i].Name = fmt.Sprintf("path-%d", i+1)
		}
	}
	for i := range s.Fields {
		if s.Fields[i].Name == "" {
			s.Fields[i].Name = fmt.Sprintf("field-%d", i+1)
		}
	}
}

// Validate reports the first problem that would stop Run.
func (s *Scenario) Validate() error {
	kinds, ok := shapes[s.Topology]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownTopology, s.Topology)
	}
	isDense, ok := kinds[s.Shape]
	if !ok {
		return fmt.Errorf("%w: %q for %s", ErrUnknownShape, s.Shape, s.Topology)
	}
	switch s.Shape {
	case Circle:
		if s.Radius < 0 {
			return fmt.Errorf("%w: radius %d", ErrBadDimensions, s.Radius)
		}
	case Square:
		if s.Width <= 0 || s.Height != s.Width {
			return fmt.Errorf("%w: square %dx%d", ErrBadDimensions, s.Width, s.Height)
		}
	default:
		if s.Width <= 0 || s.Height <= 0 {
			return fmt.Errorf("%w: %s %dx%d", ErrBadDimensions, s.Shape, s.Width, s.Height)
		}
	}
	if !isDense && (s.WrapX || s.WrapY) {
		return fmt.Errorf("%w: %s", ErrBadWrap, s.Shape)
	}
	if s.Terrain != nil {
		if _, err := terrain.NewGenerator(s.Terrain.Options()); err != nil {
			return err
		}
	}
	for _, c := range s.Blocked {
		if err := s.checkCoord(c); err != nil {
			return fmt.Errorf("%w: blocked: %v", ErrBadRequest, err)
		}
	}
	for _, p := range s.Paths {
		if err := s.checkCoord(p.From); err != nil {
			return fmt.Errorf("%w: path %s: %v", ErrBadRequest, p.Name, err)
		}
		if err := s.checkCoord(p.To); err != nil {
			return fmt.Errorf("%w: path %s: %v", ErrBadRequest, p.Name, err)
		}
		if p.Weight != nil && (*p.Weight < 0 || math.IsNaN(*p.Weight)) {
			return fmt.Errorf("%w: path %s: weight %v", ErrBadRequest, p.Name, *p.Weight)
		}
	}
	for _, f := range s.Fields {
		if err := s.checkCoord(f.From); err != nil {
			return fmt.Errorf("%w: field %s: %v", ErrBadRequest, f.Name, err)
		}
		if f.Budget < 0 || math.IsNaN(f.Budget) {
			return fmt.Errorf("%w: field %s: budget %v", ErrBadRequest, f.Name, f.Budget)
		}
	}

	return nil
}

func (s *Scenario) checkCoord(c string) error {
	var err error
	switch s.Topology {
	case Hex:
		_, err = hexgrid.ParseAxial(c)
	case Taxicab:
		_, err = taxicab.ParsePoint(c)
	}

	return err
}

// Options merges the non-zero fields over terrain.DefaultOptions.
func (t *Terrain) Options() terrain.Options {
	o := terrain.DefaultOptions()
	if t.Seed != 0 {
		o.Seed = t.Seed
	}
	if t.Octaves != 0 {
		o.Octaves = t.Octaves
	}
	if t.Frequency != 0 {
		o.Frequency = t.Frequency
	}
	if t.Persistence != 0 {
		o.Persistence = t.Persistence
	}
	if t.SeaLevel != 0 {
		o.SeaLevel = t.SeaLevel
	}
	if t.HillLevel != 0 {
		o.HillLevel = t.HillLevel
	}
	if t.MountainLevel != 0 {
		o.MountainLevel = t.MountainLevel
	}
	if t.ForestMoisture != 0 {
		o.ForestMoisture = t.ForestMoisture
	}

	return o
}
