package wander

import (
	"math"

	"github.com/stigoleg/afk/internal/config"
)

// Displacement is one relative pointer offset and the radius it was sampled on.
type Displacement struct {
	DX       int
	DY       int
	Distance int
}

// Sample draws a displacement whose length is approximately a distance taken
// uniformly from the configured bounds.
//
// The x magnitude is uniform along its axis and y is derived from it, so the
// points sit on the circle but cluster near the axes rather than spreading
// evenly by angle.
func Sample(cfg config.Config, rnd Random) (Displacement, error) {
	if !cfg.DistanceBoundsValid() {
		return Displacement{}, ErrInvalidDistanceBounds
	}
	if !cfg.DistanceInRange() {
		return Displacement{}, ErrDistanceOutOfRange
	}

	distance := rnd.IntRange(cfg.MinDistance, cfg.MaxDistance)

	// A negative distance can only come from negative bounds; sample on its magnitude.
	radius := distance
	if radius < 0 {
		radius = -radius
	}

	x := rnd.IntRange(0, radius)
	dx := x
	if !rnd.Bool() {
		dx = -x
	}

	r2 := int64(radius) * int64(radius)
	x2 := int64(x) * int64(x)
	rest := r2 - x2
	y := int64(math.Sqrt(float64(rest)))
	// float64 rounding can overshoot by one near the largest radius.
	for y > 0 && y*y > rest {
		y--
	}
	dy := int(y)
	if !rnd.Bool() {
		dy = -dy
	}

	return Displacement{DX: dx, DY: dy, Distance: distance}, nil
}
