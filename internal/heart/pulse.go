package heart

import "math"

// Pulse is the periodic driver of the animation. It stays within
// [-2/π, 2/π] and repeats every 5 frames.
func Pulse(frame int) float64 {
	p := float64(frame) / 10 * math.Pi
	return 2 * (2 * math.Sin(4*p)) / (2 * math.Pi)
}

// ScaleRatio is the rescale strength applied to the static point sets.
func ScaleRatio(frame int) float64 {
	return 10 * Pulse(frame)
}

// HaloRadius is the shrink ratio for halo points. Never below 4.
func HaloRadius(frame int) int {
	return int(4 + 6*(1+Pulse(frame)))
}

// HaloNumber is how many halo samples a frame attempts.
func HaloNumber(frame int) int {
	p := Pulse(frame)
	return int(3000 + 4000*math.Abs(p*p))
}

// IsBeat reports whether frame sits on a local maximum of the pulse.
func IsBeat(frame int) bool {
	p := Pulse(frame)
	return p > Pulse(frame-1) && p >= Pulse(frame+1)
}
