package regions

import "errors"

// Sentinel errors for region analysis.
var (
	// ErrNilMap is returned when New receives a nil map.
	ErrNilMap = errors.New("regions: map is nil")

	// ErrRegionIndex indicates an invalid region index.
	ErrRegionIndex = errors.New("regions: region index out of range")

	// ErrNoPath is returned when no bridge exists between two regions.
	ErrNoPath = errors.New("regions: no path between specified regions")
)
