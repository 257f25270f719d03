// Package tone synthesizes and plays the short alert tones used by the
// interval timer.
package tone

import (
	"math"
	"time"
)

const (
	// DefaultSampleRate is used when a caller passes a non-positive rate.
	DefaultSampleRate = 44100

	startGain = 0.3
	endGain   = 0.01
)

// Synthesize renders a mono 16-bit sine tone. The gain starts at 0.3 and
// decays exponentially to 0.01 by the end of the tone.
func Synthesize(frequencyHz float64, duration time.Duration, sampleRate int) []int16 {
	if sampleRate <= 0 {
		sampleRate = DefaultSampleRate
	}
	n := int(duration.Seconds() * float64(sampleRate))
	if n <= 0 || frequencyHz <= 0 {
		return nil
	}

	samples := make([]int16, n)
	decay := math.Log(endGain/startGain) / float64(n)
	step := 2 * math.Pi * frequencyHz / float64(sampleRate)
	for i := range samples {
		gain := startGain * math.Exp(decay*float64(i))
		samples[i] = int16(math.Sin(step*float64(i)) * gain * math.MaxInt16)
	}
	return samples
}
