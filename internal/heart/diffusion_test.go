package heart

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fixedRand returns the same values on every call.
type fixedRand struct {
	f float64
	n int
}

func (r fixedRand) Float64() float64 { return r.f }
func (r fixedRand) IntN(int) int      { return r.n }

var testCenter = Point{X: 320, Y: 240}

func meanDisplacement(r Rand, p Point, beta float64, n int) float64 {
	var sum float64
	for range n {
		q := Scatter(r, p, testCenter, beta)
		sum += math.Hypot(q.X-p.X, q.Y-p.Y)
	}
	return sum / float64(n)
}

func TestScatterMeanGrowsWithBeta(t *testing.T) {
	r := NewRand(7)
	p := Point{X: 420, Y: 180}

	small := meanDisplacement(r, p, 0.05, 20000)
	large := meanDisplacement(r, p, 0.17, 20000)

	require.Greater(t, large, small)
	// Displacement is linear in beta, so the ratio sits near 0.17/0.05.
	assert.InDelta(t, 0.17/0.05, large/small, 0.3)
}

func TestScatterPullsTowardCenter(t *testing.T) {
	r := NewRand(1)
	p := Point{X: 400, Y: 300}
	for range 1000 {
		q := Scatter(r, p, testCenter, 0.17)
		assert.LessOrEqual(t, q.X, p.X)
		assert.LessOrEqual(t, q.Y, p.Y)
	}
}

func TestScatterFiniteAtZeroDraw(t *testing.T) {
	// Float64 of 0 maps to u = 1, a zero displacement.
	q := Scatter(fixedRand{f: 0}, Point{X: 400, Y: 300}, testCenter, 0.5)
	require.Equal(t, Point{X: 400, Y: 300}, q)
}

func TestShrinkPushesOutward(t *testing.T) {
	p := Point{X: 420, Y: 240}
	q := Shrink(p, testCenter, 6)

	d := 100.0 * 100.0
	want := 420 + 6*100/math.Pow(d, 0.6)
	assert.InDelta(t, want, q.X, 1e-9)
	assert.Equal(t, 240.0, q.Y)
}

func TestShrinkWeakensWithDistance(t *testing.T) {
	near := Shrink(Point{X: 340, Y: 240}, testCenter, 10)
	far := Shrink(Point{X: 520, Y: 240}, testCenter, 10)
	assert.Greater(t, near.X-340, far.X-520)
}

func TestShrinkAtCenter(t *testing.T) {
	require.Equal(t, testCenter, Shrink(testCenter, testCenter, 10))
}

func TestRescale(t *testing.T) {
	p := Point{X: 320, Y: 340}
	// IntN(3) == 1 is a zero jitter.
	q := Rescale(fixedRand{n: 1}, p, testCenter, 5)

	d := 100.0 * 100.0
	want := 340 - 5*100/math.Pow(d, 0.520)
	assert.Equal(t, 320.0, q.X)
	assert.InDelta(t, want, q.Y, 1e-9)
}

func TestRescaleJitter(t *testing.T) {
	p := Point{X: 400, Y: 300}
	lo := Rescale(fixedRand{n: 0}, p, testCenter, 0)
	hi := Rescale(fixedRand{n: 2}, p, testCenter, 0)
	assert.Equal(t, Point{X: 401, Y: 301}, lo)
	assert.Equal(t, Point{X: 399, Y: 299}, hi)
}

func TestRescaleAtCenter(t *testing.T) {
	q := Rescale(fixedRand{n: 1}, testCenter, testCenter, 10)
	require.Equal(t, testCenter, q)
}
