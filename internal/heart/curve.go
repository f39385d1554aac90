package heart

import "math"

// Sample evaluates the heart curve at t, enlarges it by scale and moves
// it onto center. The curve has period 2π; uniform t does not give
// uniform spacing along the outline.
func Sample(t, scale float64, center Point) Point {
	x := 16 * math.Pow(math.Sin(t), 3)
	y := -(13*math.Cos(t) - 5*math.Cos(2*t) - 2*math.Cos(3*t) - math.Cos(4*t))

	return Point{
		X: x*scale + center.X,
		Y: y*scale + center.Y,
	}
}
