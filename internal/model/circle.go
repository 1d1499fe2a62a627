package model

import (
	"fmt"
	"math"
)

// Bounds applied by the validators. Every stored coordinate lies within
// [MinCoordinate, MaxCoordinate]. The radius lies within [MinRadius, MaxRadius]
// except where noted on NewWithRadius, Resize and Combine.
const (
	// MinCoordinate is the lowest value an origin coordinate can hold.
	MinCoordinate = -100

	// MaxCoordinate is the highest value an origin coordinate can hold.
	MaxCoordinate = 100

	// MinRadius is the radius substituted for negative input.
	MinRadius = 1

	// MaxRadius is the upper clamp for radius input.
	MaxRadius = 100
)

// Circle is a circle with an integer origin and an integer radius.
//
// A Circle is mutated in place by Move, Resize, Combine and Double. It
// carries no internal synchronization: callers sharing a Circle between
// goroutines must guard it themselves.
type Circle struct {
	x      int
	y      int
	radius int
}

// New returns a unit circle at the origin. It is equivalent to NewAt(0, 0, 1).
func New() *Circle {
	return NewAt(0, 0, 1)
}

// NewWithRadius returns a circle at the origin with the given radius.
//
// Unlike NewAt, the radius is stored as given: it is NOT passed through
// ValidateRadius, so NewWithRadius(-5).Radius() is -5. The circle is first
// built with New and the radius then overwritten.
func NewWithRadius(radius int) *Circle {
	c := New()
	c.radius = radius
	return c
}

// NewAt returns a circle with the given origin and radius, each clamped by
// its validator.
func NewAt(x, y, radius int) *Circle {
	return &Circle{
		x:      ValidateCoordinate(x),
		y:      ValidateCoordinate(y),
		radius: ValidateRadius(radius),
	}
}

// ValidateRadius clamps a radius: negative input becomes MinRadius and input
// above MaxRadius becomes MaxRadius. Zero is returned unchanged.
func ValidateRadius(radius int) int {
	switch {
	case radius < 0:
		return MinRadius
	case radius > MaxRadius:
		return MaxRadius
	default:
		return radius
	}
}

// ValidateCoordinate clamps a coordinate to [MinCoordinate, MaxCoordinate].
func ValidateCoordinate(coordinate int) int {
	switch {
	case coordinate > MaxCoordinate:
		return MaxCoordinate
	case coordinate < MinCoordinate:
		return MinCoordinate
	default:
		return coordinate
	}
}

// Area returns π·r².
func (c *Circle) Area() float64 {
	return math.Pi * float64(c.radius) * float64(c.radius)
}

// Perimeter returns the circumference, computed as Diameter()·π.
func (c *Circle) Perimeter() float64 {
	return float64(c.Diameter()) * math.Pi
}

// Diameter returns twice the radius.
func (c *Circle) Diameter() int {
	return 2 * c.radius
}

// Move sets the origin to (x, y), clamping both coordinates.
func (c *Circle) Move(x, y int) {
	c.x = ValidateCoordinate(x)
	c.y = ValidateCoordinate(y)
}

// Resize sets the radius, clamping it with ValidateRadius.
func (c *Circle) Resize(radius int) {
	c.radius = ValidateRadius(radius)
}

// Radius returns the current radius.
func (c *Circle) Radius() int {
	return c.radius
}

// X returns the x coordinate of the origin.
func (c *Circle) X() int {
	return c.x
}

// Y returns the y coordinate of the origin.
func (c *Circle) Y() int {
	return c.y
}

// Origin returns a snapshot of the origin as {x, y}.
func (c *Circle) Origin() [2]int {
	return [2]int{c.x, c.y}
}

// Combine merges other into c. The radii are summed without clamping, so the
// result may exceed MaxRadius. The new origin is the midpoint of both
// origins, truncated toward zero, and is clamped through Move.
//
// other is only read. Passing c itself is allowed; see Double.
func (c *Circle) Combine(other *Circle) {
	c.radius += other.Radius()

	// Go integer division truncates toward zero, which is the required
	// rounding for negative midpoints.
	origin := other.Origin()
	c.Move((c.x+origin[0])/2, (c.y+origin[1])/2)
}

// Double combines c with itself: the radius doubles and the origin is kept.
func (c *Circle) Double() {
	c.Combine(c)
}

// String returns the standard-form equation "(x-X)^2 + (y-Y)^2 = R^2".
// Negative values are formatted with their own sign, yielding e.g. "(x--5)".
func (c *Circle) String() string {
	return fmt.Sprintf("(x-%d)^2 + (y-%d)^2 = %d^2", c.x, c.y, c.radius)
}
