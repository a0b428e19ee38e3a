package dense

import "errors"

// Sentinel errors for dense map operations.
var (
	// ErrEmptyExtent indicates a width or height that is not positive.
	ErrEmptyExtent = errors.New("dense: width and height must be positive")

	// ErrBadAmount indicates a negative extension amount.
	ErrBadAmount = errors.New("dense: extension amount must be non-negative")

	// ErrBadSide indicates an undefined Side value.
	ErrBadSide = errors.New("dense: unknown side")

	// ErrWrappedAxis indicates an extension along an axis that wraps around.
	ErrWrappedAxis = errors.New("dense: cannot extend along a wrapped axis")

	// ErrOutOfBounds is the panic value of the unchecked accessor At.
	ErrOutOfBounds = errors.New("dense: coordinate outside the map extent")
)

// Side names one of the four edges of the storage rectangle.
type Side uint8

const (
	// PosX is the high end of the x axis.
	PosX Side = iota
	// NegX is the low end of the x axis.
	NegX
	// PosY is the high end of the y axis.
	PosY
	// NegY is the low end of the y axis.
	NegY
)

// Options configures addressing of a dense map.
type Options struct {
	// OriginX, OriginY is the logical coordinate stored at offset (0, 0).
	OriginX, OriginY int
	// WrapX, WrapY enable modular addressing on each axis.
	WrapX, WrapY bool
}

// Option is a functional option for New.
type Option func(*Options)

// DefaultOptions returns origin (0, 0) and no wraparound.
func DefaultOptions() Options {
	return Options{}
}

// WithOrigin places the logical coordinate (x, y) at storage offset (0, 0).
func WithOrigin(x, y int) Option {
	return func(o *Options) {
		o.OriginX, o.OriginY = x, y
	}
}

// WithWrap enables wraparound on the x and/or y axis.
func WithWrap(x, y bool) Option {
	return func(o *Options) {
		o.WrapX, o.WrapY = x, y
	}
}
