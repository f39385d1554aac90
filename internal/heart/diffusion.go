package heart

import "math"

// Magic exponents applied to the squared distance from the center.
const (
	shrinkExponent  = 0.6
	rescaleExponent = 0.520
)

// Scatter pulls p toward center by an exponentially distributed ratio per
// axis. Larger beta scatters further.
func Scatter(r Rand, p, center Point, beta float64) Point {
	// 1 - Float64 lies in (0, 1], so the log stays finite.
	ratioX := -beta * math.Log(1-r.Float64())
	ratioY := -beta * math.Log(1-r.Float64())

	dx := ratioX * (p.X - center.X)
	dy := ratioY * (p.Y - center.Y)

	return Point{X: p.X - dx, Y: p.Y - dy}
}

// Shrink pushes p outward from center by a force that decays with
// distance. A point on the center is returned unchanged.
func Shrink(p, center Point, ratio float64) Point {
	vx, vy := p.X-center.X, p.Y-center.Y
	d := vx*vx + vy*vy
	if d == 0 {
		return p
	}

	force := -1 / math.Pow(d, shrinkExponent)
	dx := ratio * force * vx
	dy := ratio * force * vy

	return Point{X: p.X - dx, Y: p.Y - dy}
}

// Rescale moves p along the center ray by ratio, weakened with distance,
// and adds a jitter of -1, 0 or 1 on each axis.
func Rescale(r Rand, p, center Point, ratio float64) Point {
	vx, vy := p.X-center.X, p.Y-center.Y
	d := vx*vx + vy*vy

	var force float64
	if d != 0 {
		force = 1 / math.Pow(d, rescaleExponent)
	}

	dx := ratio*force*vx + float64(randInt(r, -1, 1))
	dy := ratio*force*vy + float64(randInt(r, -1, 1))

	return Point{X: p.X - dx, Y: p.Y - dy}
}
