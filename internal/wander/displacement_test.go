package wander

import (
	"testing"

	"github.com/stigoleg/afk/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSampleScripted(t *testing.T) {
	tests := []struct {
		name string
		cfg  config.Config
		rnd  *scriptedRandom
		want Displacement
	}{
		{
			name: "3-4-5 positive",
			cfg:  config.Config{MinDistance: 1, MaxDistance: 10},
			rnd:  &scriptedRandom{ints: []int{5, 3}, bools: []bool{true, true}},
			want: Displacement{DX: 3, DY: 4, Distance: 5},
		},
		{
			name: "3-4-5 both negative",
			cfg:  config.Config{MinDistance: 1, MaxDistance: 10},
			rnd:  &scriptedRandom{ints: []int{5, 3}, bools: []bool{false, false}},
			want: Displacement{DX: -3, DY: -4, Distance: 5},
		},
		{
			name: "all on x axis",
			cfg:  config.Config{MinDistance: 1, MaxDistance: 100},
			rnd:  &scriptedRandom{ints: []int{100, 100}, bools: []bool{false, true}},
			want: Displacement{DX: -100, DY: 0, Distance: 100},
		},
		{
			name: "all on y axis",
			cfg:  config.Config{MinDistance: 1, MaxDistance: 100},
			rnd:  &scriptedRandom{ints: []int{42, 0}, bools: []bool{true, false}},
			want: Displacement{DX: 0, DY: -42, Distance: 42},
		},
		{
			name: "truncated square root",
			cfg:  config.Config{MinDistance: 1, MaxDistance: 100},
			// sqrt(10*10 - 3*3) = sqrt(91) = 9.539...
			rnd:  &scriptedRandom{ints: []int{10, 3}, bools: []bool{true, true}},
			want: Displacement{DX: 3, DY: 9, Distance: 10},
		},
		{
			name: "zero range",
			cfg:  config.Config{},
			rnd:  &scriptedRandom{bools: []bool{false, false}},
			want: Displacement{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Sample(tt.cfg, tt.rnd)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSampleInvalidDistanceBounds(t *testing.T) {
	rnd := &scriptedRandom{}
	_, err := Sample(config.Config{MinDistance: 50, MaxDistance: 10}, rnd)
	assert.ErrorIs(t, err, ErrInvalidDistanceBounds)
	assert.Zero(t, rnd.calls, "no samples drawn for invalid bounds")
}

func TestSampleBoundsAndCircle(t *testing.T) {
	configs := []config.Config{
		config.Default(),
		{MinDistance: 0, MaxDistance: 0},
		{MinDistance: 1, MaxDistance: 1},
		{MinDistance: 10, MaxDistance: 20},
		{MinDistance: 0, MaxDistance: 5000},
	}

	rnd := NewRandomWithSeed(42)
	for _, cfg := range configs {
		for i := 0; i < 2000; i++ {
			d, err := Sample(cfg, rnd)
			require.NoError(t, err)

			require.GreaterOrEqual(t, d.Distance, cfg.MinDistance)
			require.LessOrEqual(t, d.Distance, cfg.MaxDistance)

			r2 := d.Distance * d.Distance
			got := d.DX*d.DX + d.DY*d.DY
			// Truncating y loses less than one unit: y <= sqrt(r2-x2) < y+1.
			require.LessOrEqual(t, got, r2, "displacement %+v leaves the circle", d)
			require.Less(t, r2-got, 2*abs(d.DY)+1, "displacement %+v too far inside the circle", d)
		}
	}
}

func TestSampleSignSymmetry(t *testing.T) {
	cfg := config.Config{MinDistance: 50, MaxDistance: 50}
	rnd := NewRandomWithSeed(7)

	const iterations = 10000
	var negX, negY, nonZeroX, nonZeroY int
	for i := 0; i < iterations; i++ {
		d, err := Sample(cfg, rnd)
		require.NoError(t, err)
		if d.DX != 0 {
			nonZeroX++
			if d.DX < 0 {
				negX++
			}
		}
		if d.DY != 0 {
			nonZeroY++
			if d.DY < 0 {
				negY++
			}
		}
	}

	assert.InDelta(t, 0.5, float64(negX)/float64(nonZeroX), 0.05)
	assert.InDelta(t, 0.5, float64(negY)/float64(nonZeroY), 0.05)
}

func TestSampleNegativeDistance(t *testing.T) {
	rnd := &scriptedRandom{ints: []int{-5, 3}, bools: []bool{true, true}}
	d, err := Sample(config.Config{MinDistance: -10, MaxDistance: 10}, rnd)
	require.NoError(t, err)
	assert.Equal(t, Displacement{DX: 3, DY: 4, Distance: -5}, d)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
