package scenario

import "errors"

// Sentinel errors returned by Parse, Load, Validate and Run.
var (
	// ErrUnknownTopology indicates a topology name other than hex or taxicab.
	ErrUnknownTopology = errors.New("scenario: unknown topology")

	// ErrUnknownShape indicates a shape the topology cannot build.
	ErrUnknownShape = errors.New("scenario: unknown shape")

	// ErrBadDimensions indicates missing or non-positive map dimensions.
	ErrBadDimensions = errors.New("scenario: bad map dimensions")

	// ErrBadWrap indicates wraparound requested on a sparse shape.
	ErrBadWrap = errors.New("scenario: wraparound needs a dense shape")

	// ErrBadRequest indicates a path or field request that cannot run.
	ErrBadRequest = errors.New("scenario: bad request")
)

// Topology names.
const (
	Hex     = "hex"
	Taxicab = "taxicab"
)

// Shape names. Rectangle and Square are taxicab shapes; the rest are hex shapes.
const (
	Rectangle   = "rectangle"
	Square      = "square"
	Rhombus     = "rhombus"
	Circle      = "circle"
	WidthFirst  = "width_first"
	HeightFirst = "height_first"
)

// topologyAliases maps accepted spellings to topology names.
var topologyAliases = map[string]string{
	"hex":         Hex,
	"hexagonal":   Hex,
	"taxicab":     Taxicab,
	"manhattan":   Taxicab,
	"rectilinear": Taxicab,
}

// shapes lists the shapes of every topology and whether they are dense.
var shapes = map[string]map[string]bool{
	Hex:     {Rhombus: true, Circle: false, WidthFirst: false, HeightFirst: false},
	Taxicab: {Rectangle: true, Square: true},
}

// defaultShape is used when a scenario leaves the shape empty.
var defaultShape = map[string]string{
	Hex:     Rhombus,
	Taxicab: Rectangle,
}

// Scenario is a decoded scenario file.
type Scenario struct {
	Name     string `yaml:"name"`
	Topology string `yaml:"topology"`
	Shape    string `yaml:"shape"`

	// Width and Height size rectangles and rhombi; for width_first and
	// height_first they are the column and row counts. Square uses Width.
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
	Radius int `yaml:"radius"` // circle only

	OddShift bool `yaml:"odd_shift"`
	OriginX  int  `yaml:"origin_x"`
	OriginY  int  `yaml:"origin_y"`
	WrapX    bool `yaml:"wrap_x"`
	WrapY    bool `yaml:"wrap_y"`

	Terrain *Terrain       `yaml:"terrain"`
	Blocked []string       `yaml:"blocked"`
	Paths   []PathRequest  `yaml:"paths"`
	Fields  []FieldRequest `yaml:"fields"`
}

// Terrain enables procedural terrain. Zero fields take terrain.DefaultOptions values.
type Terrain struct {
	Seed           int64   `yaml:"seed"`
	Octaves        int     `yaml:"octaves"`
	Frequency      float64 `yaml:"frequency"`
	Persistence    float64 `yaml:"persistence"`
	SeaLevel       float64 `yaml:"sea_level"`
	HillLevel      float64 `yaml:"hill_level"`
	MountainLevel  float64 `yaml:"mountain_level"`
	ForestMoisture float64 `yaml:"forest_moisture"`
}

// PathRequest asks for the cheapest route between two coordinates.
type PathRequest struct {
	Name   string   `yaml:"name"`
	From   string   `yaml:"from"`
	To     string   `yaml:"to"`
	Weight *float64 `yaml:"weight,omitempty"` // heuristic weight, 1 when unset
}

// FieldRequest asks for every cell reachable from a coordinate within a budget.
type FieldRequest struct {
	Name   string  `yaml:"name"`
	From   string  `yaml:"from"`
	Budget float64 `yaml:"budget"`
}

// Report is the outcome of Run.
type Report struct {
	Name     string         `yaml:"name"`
	Topology string         `yaml:"topology"`
	Shape    string         `yaml:"shape"`
	Cells    int            `yaml:"cells"`
	Blocked  int            `yaml:"blocked"`
	Kinds    map[string]int `yaml:"kinds"`
	Regions  int            `yaml:"regions"`
	Paths    []PathResult   `yaml:"paths,omitempty"`
	Fields   []FieldResult  `yaml:"fields,omitempty"`
}

// PathResult reports one path request.
type PathResult struct {
	Name     string   `yaml:"name"`
	From     string   `yaml:"from"`
	To       string   `yaml:"to"`
	Found    bool     `yaml:"found"`
	Cost     float64  `yaml:"cost"`
	Steps    int      `yaml:"steps"`
	Expanded int      `yaml:"expanded"`
	Route    []string `yaml:"route,omitempty"`
	Joints   []string `yaml:"joints,omitempty"`
	// Clear is set on a failed search: the fewest impassable cells that
	// would have to be cleared to join the endpoints' regions.
	Clear int `yaml:"clear,omitempty"`
}

// FieldResult reports one reachability request.
type FieldResult struct {
	Name      string  `yaml:"name"`
	From      string  `yaml:"from"`
	Budget    float64 `yaml:"budget"`
	Reachable int     `yaml:"reachable"`
	MaxCost   float64 `yaml:"max_cost"`
	Connected int     `yaml:"connected"`
}
