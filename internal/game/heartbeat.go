package game

import (
	"math"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/speaker"

	"github.com/iburimskiy/particle-heart/internal/config"
)

// Heartbeat plays a short low thump through the speaker on every beat.
type Heartbeat struct {
	sampleRate beep.SampleRate
}

// NewHeartbeat initializes the speaker. It fails when no audio device is
// available; callers run muted in that case.
func NewHeartbeat() (*Heartbeat, error) {
	sr := beep.SampleRate(config.SampleRate)
	if err := speaker.Init(sr, sr.N(time.Second/20)); err != nil {
		return nil, err
	}
	return &Heartbeat{sampleRate: sr}, nil
}

func (h *Heartbeat) Beat() {
	speaker.Play(thump(h.sampleRate, config.ThumpDuration))
}

// Close stops anything still playing.
func (h *Heartbeat) Close() {
	speaker.Lock()
	speaker.Clear()
	speaker.Unlock()
}

// thump is a sine at ThumpFrequency under a quadratic decay.
func thump(sr beep.SampleRate, d time.Duration) beep.Streamer {
	total := sr.N(d)
	pos := 0
	return beep.StreamerFunc(func(samples [][2]float64) (n int, ok bool) {
		for i := range samples {
			if pos >= total {
				return i, i > 0
			}
			env := clamp01(1 - float64(pos)/float64(total))
			t := float64(pos) / float64(sr)
			v := config.ThumpVolume * env * env * math.Sin(2*math.Pi*config.ThumpFrequency*t)
			samples[i] = [2]float64{v, v}
			pos++
		}
		return len(samples), true
	})
}
