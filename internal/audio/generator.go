package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
)

// noise is a linear congruential generator yielding samples in [-1, 1].
type noise struct {
	seed int64
}

func (n *noise) next() float64 {
	n.seed = (n.seed*1103515245 + 12345) & 0x7fffffff
	return float64(n.seed)/float64(0x7fffffff)*2 - 1
}

// RumbleGenerator produces the engine's endless low roar: low-passed noise
// over a slowly wobbling bass tone.
type RumbleGenerator struct {
	sr    beep.SampleRate
	pos   int
	src   noise
	state float64 // Low-pass filter memory
}

// NewRumbleGenerator creates a rumble generator.
func NewRumbleGenerator(sr beep.SampleRate, seed int64) *RumbleGenerator {
	return &RumbleGenerator{sr: sr, src: noise{seed: seed}}
}

func (g *RumbleGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)

		// One-pole low-pass keeps the hiss dark.
		g.state += 0.08 * (g.src.next() - g.state)

		freq := 55 + 8*math.Sin(2*math.Pi*3*t)
		tone := 0.25 * math.Sin(2*math.Pi*freq*t)

		sample := 0.6*g.state + tone
		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *RumbleGenerator) Err() error {
	return nil
}

// BlastGenerator produces an explosion: a noise burst with a sharp attack
// and an exponential tail, mixed with a falling thump.
type BlastGenerator struct {
	sr  beep.SampleRate
	pos int
	src noise
}

// NewBlastGenerator creates a blast generator.
func NewBlastGenerator(sr beep.SampleRate, seed int64) *BlastGenerator {
	return &BlastGenerator{sr: sr, src: noise{seed: seed}}
}

func (g *BlastGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	attack := g.sr.N(5 * time.Millisecond)
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)

		envelope := math.Exp(-t * 4)
		if g.pos < attack {
			envelope *= float64(g.pos) / float64(attack)
		}

		thumpFreq := 40 + 80*math.Exp(-t*10)
		thump := 0.4 * math.Sin(2*math.Pi*thumpFreq*t)

		sample := envelope * (0.6*g.src.next() + thump)
		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *BlastGenerator) Err() error {
	return nil
}
