package heart

// Point is a position in canvas space: origin top-left, y down.
type Point struct {
	X, Y float64
}

// Sprite is a filled square of side Size drawn at (X, Y).
type Sprite struct {
	X, Y float64
	Size int
}

// Key is the canonical integer form of a point used for deduplication.
type Key struct {
	X, Y int
}

// TruncKey truncates both coordinates toward zero.
func TruncKey(p Point) Key {
	return Key{X: int(p.X), Y: int(p.Y)}
}

// Point returns the key as a point.
func (k Key) Point() Point {
	return Point{X: float64(k.X), Y: float64(k.Y)}
}

// pointSet keeps unique points in insertion order.
type pointSet struct {
	seen   map[Point]struct{}
	points []Point
}

func newPointSet(capacity int) *pointSet {
	return &pointSet{
		seen:   make(map[Point]struct{}, capacity),
		points: make([]Point, 0, capacity),
	}
}

// add inserts p and reports whether it was new.
func (s *pointSet) add(p Point) bool {
	if _, ok := s.seen[p]; ok {
		return false
	}
	s.seen[p] = struct{}{}
	s.points = append(s.points, p)
	return true
}
