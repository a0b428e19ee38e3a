package scenario

import (
	"fmt"
	"io"
	"log/slog"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/gridmap/actionfield"
	"github.com/katalvlaran/gridmap/astar"
	"github.com/katalvlaran/gridmap/bfs"
	"github.com/katalvlaran/gridmap/dense"
	"github.com/katalvlaran/gridmap/grid"
	"github.com/katalvlaran/gridmap/hexgrid"
	"github.com/katalvlaran/gridmap/regions"
	"github.com/katalvlaran/gridmap/taxicab"
	"github.com/katalvlaran/gridmap/terrain"
)

// world bundles a built map with the topology-specific helpers Run needs.
type world[P comparable] struct {
	m       grid.Store[P, terrain.Cell]
	parse   func(string) (P, error)
	project func(P) (x, y float64)
	joints  func(m grid.Reader[P, terrain.Cell], path []P) ([]string, error)
}

// Run fills the defaults of s, validates it, builds and paints its map, and
// runs every request. A nil logger discards output.
func Run(s *Scenario, logger *slog.Logger) (*Report, error) {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	s.applyDefaults()
	if err := s.Validate(); err != nil {
		return nil, err
	}
	logger = logger.With("scenario", s.Name)

	switch s.Topology {
	case Hex:
		w, err := hexWorld(s)
		if err != nil {
			return nil, err
		}
		return execute(s, w, logger)
	default:
		w, err := taxicabWorld(s)
		if err != nil {
			return nil, err
		}
		return execute(s, w, logger)
	}
}

var plains = terrain.Cell{Kind: terrain.Plains}

func hexWorld(s *Scenario) (world[hexgrid.Axial], error) {
	w := world[hexgrid.Axial]{
		parse:   hexgrid.ParseAxial,
		project: terrain.HexPlane,
		joints: func(m grid.Reader[hexgrid.Axial, terrain.Cell], path []hexgrid.Axial) ([]string, error) {
			js, err := hexgrid.JointsAlong(m, path)
			return stringsOf(js, err)
		},
	}
	var err error
	switch s.Shape {
	case Rhombus:
		w.m, err = hexgrid.Rhombus(s.Width, s.Height, plains,
			dense.WithOrigin(s.OriginX, s.OriginY), dense.WithWrap(s.WrapX, s.WrapY))
	case Circle:
		w.m, err = hexgrid.Circle(s.Radius, plains)
	case WidthFirst:
		w.m, err = hexgrid.WidthFirst(s.Height, s.Width, s.OddShift, plains)
	case HeightFirst:
		w.m, err = hexgrid.HeightFirst(s.Height, s.Width, s.OddShift, plains)
	default:
		err = fmt.Errorf("%w: %q for %s", ErrUnknownShape, s.Shape, s.Topology)
	}
	if err != nil {
		return w, fmt.Errorf("scenario: build map: %w", err)
	}

	return w, nil
}

func taxicabWorld(s *Scenario) (world[taxicab.Point], error) {
	w := world[taxicab.Point]{
		parse:   taxicab.ParsePoint,
		project: terrain.TaxicabPlane,
		joints: func(m grid.Reader[taxicab.Point, terrain.Cell], path []taxicab.Point) ([]string, error) {
			js, err := taxicab.JointsAlong(m, path)
			return stringsOf(js, err)
		},
	}
	m, err := taxicab.Rectangle(s.Width, s.Height, plains,
		dense.WithOrigin(s.OriginX, s.OriginY), dense.WithWrap(s.WrapX, s.WrapY))
	if err != nil {
		return w, fmt.Errorf("scenario: build map: %w", err)
	}
	w.m = m

	return w, nil
}

func stringsOf[J fmt.Stringer](js []J, err error) ([]string, error) {
	if err != nil {
		return nil, err
	}
	out := make([]string, len(js))
	for i, j := range js {
		out[i] = j.String()
	}

	return out, nil
}

func execute[P comparable](s *Scenario, w world[P], logger *slog.Logger) (*Report, error) {
	rep := &Report{
		Name:     s.Name,
		Topology: s.Topology,
		Shape:    s.Shape,
		Cells:    w.m.Count(),
		Kinds:    make(map[string]int),
	}
	logger.Info("map built", "topology", s.Topology, "shape", s.Shape, "cells", rep.Cells)

	if s.Terrain != nil {
		gen, err := terrain.NewGenerator(s.Terrain.Options())
		if err != nil {
			return nil, err
		}
		n := terrain.Paint(w.m, w.project, gen)
		logger.Debug("terrain painted", "cells", n, "seed", gen.Options().Seed)
	}

	for _, c := range s.Blocked {
		p, err := w.parse(c)
		if err != nil {
			return nil, fmt.Errorf("%w: blocked: %v", ErrBadRequest, err)
		}
		// Sparse maps would grow on Set; blocking only applies to members.
		if !w.m.Contains(p) {
			logger.Warn("blocked cell outside map", "cell", c)
			continue
		}
		w.m.Set(p, terrain.Cell{Kind: terrain.Wall})
		rep.Blocked++
		logger.Debug("cell blocked", "cell", c)
	}
	for _, c := range w.m.All() {
		rep.Kinds[c.Kind.String()]++
	}

	part, err := regions.New[P, terrain.Cell](w.m, terrain.Rules[P]{}.Passable)
	if err != nil {
		return nil, fmt.Errorf("scenario: regions: %w", err)
	}
	rep.Regions = part.Len()
	logger.Info("regions labeled", "regions", rep.Regions)

	for _, req := range s.Paths {
		res, err := runPath(w, part, req)
		if err != nil {
			return nil, err
		}
		logger.Info("path solved", "name", req.Name, "found", res.Found,
			"cost", res.Cost, "steps", res.Steps, "expanded", res.Expanded)
		rep.Paths = append(rep.Paths, res)
	}
	for _, req := range s.Fields {
		res, err := runField(w, req)
		if err != nil {
			return nil, err
		}
		logger.Info("field solved", "name", req.Name, "reachable", res.Reachable,
			"connected", res.Connected, "max_cost", res.MaxCost)
		rep.Fields = append(rep.Fields, res)
	}

	return rep, nil
}

func runPath[P comparable](w world[P], part *regions.Partition[P, terrain.Cell], req PathRequest) (PathResult, error) {
	res := PathResult{Name: req.Name, From: req.From, To: req.To}
	from, err := w.parse(req.From)
	if err != nil {
		return res, fmt.Errorf("%w: path %s: %v", ErrBadRequest, req.Name, err)
	}
	to, err := w.parse(req.To)
	if err != nil {
		return res, fmt.Errorf("%w: path %s: %v", ErrBadRequest, req.Name, err)
	}

	pf := astar.New[P, terrain.Cell](w.m, from, to).WithRules(terrain.Rules[P]{})
	if req.Weight != nil {
		pf.WithHeuristicWeight(*req.Weight)
	}
	path, err := pf.Solve()
	if err != nil {
		return res, fmt.Errorf("scenario: path %s: %w", req.Name, err)
	}
	res.Found, res.Cost, res.Steps, res.Expanded = path.Found, path.Cost, path.Len(), path.Expanded
	if !path.Found {
		res.Clear = clearance(part, from, to)
		return res, nil
	}
	for _, p := range path.Points {
		res.Route = append(res.Route, fmt.Sprint(p))
	}
	if res.Joints, err = w.joints(w.m, path.Points); err != nil {
		return res, fmt.Errorf("scenario: path %s: %w", req.Name, err)
	}

	return res, nil
}

func runField[P comparable](w world[P], req FieldRequest) (FieldResult, error) {
	res := FieldResult{Name: req.Name, From: req.From, Budget: req.Budget}
	from, err := w.parse(req.From)
	if err != nil {
		return res, fmt.Errorf("%w: field %s: %v", ErrBadRequest, req.Name, err)
	}

	f, err := actionfield.New[P, terrain.Cell](w.m, from, req.Budget).
		WithRules(terrain.Rules[P]{}).
		Solve()
	if err != nil {
		return res, fmt.Errorf("scenario: field %s: %w", req.Name, err)
	}
	res.Reachable = f.Len()
	for r := range f.All() {
		res.MaxCost = r.Cost
	}

	// Cells reachable with an unlimited budget; the start itself counts even
	// when it is impassable, matching the field.
	if f.Len() > 0 {
		walk, err := bfs.Walk[P, terrain.Cell](w.m, from, bfs.WithPassable(terrain.Rules[P]{}.Passable))
		if err != nil {
			return res, fmt.Errorf("scenario: field %s: %w", req.Name, err)
		}
		res.Connected = len(walk.Order)
	}

	return res, nil
}

// clearance returns how many impassable cells must be cleared to join the
// regions of from and to, or 0 when either endpoint has no region.
func clearance[P comparable](part *regions.Partition[P, terrain.Cell], from, to P) int {
	a, okA := part.Label(from)
	b, okB := part.Label(to)
	if !okA || !okB {
		return 0
	}
	_, cost, err := part.Bridge(a, b)
	if err != nil {
		return 0
	}

	return cost
}

// YAML encodes the report.
func (r *Report) YAML() ([]byte, error) {
	out, err := yaml.Marshal(r)
	if err != nil {
		return nil, fmt.Errorf("scenario: encode report: %w", err)
	}

	return out, nil
}
