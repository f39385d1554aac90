package heart

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSampleAtZero(t *testing.T) {
	p := Sample(0, 1, Point{})
	require.Equal(t, Point{X: 0, Y: -5}, p)
}

func TestSampleBottomTip(t *testing.T) {
	p := Sample(math.Pi, 1, Point{})
	assert.InDelta(t, 0, p.X, 1e-9)
	assert.InDelta(t, 17, p.Y, 1e-9)
}

func TestSamplePeriodic(t *testing.T) {
	tests := []struct {
		name   string
		t      float64
		scale  float64
		center Point
	}{
		{"origin", 0.3, 1, Point{}},
		{"enlarged", 1.7, 11, Point{X: 320, Y: 240}},
		{"halo scale", 4.2, 11.6, Point{X: 320, Y: 240}},
		{"offset", 5.9, 2.5, Point{X: -40, Y: 12}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := Sample(tt.t, tt.scale, tt.center)
			b := Sample(tt.t+2*math.Pi, tt.scale, tt.center)
			assert.InDelta(t, a.X, b.X, 1e-9)
			assert.InDelta(t, a.Y, b.Y, 1e-9)
		})
	}
}

func TestSampleScalesAroundCenter(t *testing.T) {
	center := Point{X: 320, Y: 240}
	unit := Sample(2.1, 1, Point{})
	p := Sample(2.1, 11, center)
	assert.InDelta(t, unit.X*11+320, p.X, 1e-9)
	assert.InDelta(t, unit.Y*11+240, p.Y, 1e-9)
}
