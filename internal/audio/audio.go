package audio

import (
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/speaker"

	"github.com/diegok/neonpong/internal/game"
)

const (
	sampleRate = beep.SampleRate(44100)
)

// Player turns simulation events into short retro cues.
type Player struct {
	mu      sync.Mutex
	enabled bool
}

// New initializes the speaker. A muted player never touches the audio device.
func New(mute bool) (*Player, error) {
	p := &Player{}
	if mute {
		return p, nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/30)); err != nil {
		return p, fmt.Errorf("failed to initialize speaker: %w", err)
	}
	p.enabled = true
	return p, nil
}

// Enabled reports whether sounds reach the speaker.
func (p *Player) Enabled() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.enabled
}

// Play queues the cue for the given events, if any.
func (p *Player) Play(events game.Events) {
	if !p.Enabled() {
		return
	}
	if s := soundFor(events); s != nil {
		speaker.Play(s)
	}
}

// Close shuts down the audio system
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.enabled {
		speaker.Close()
		p.enabled = false
	}
}

// soundFor picks a single cue for a step; the loudest event wins.
func soundFor(events game.Events) beep.Streamer {
	switch {
	case events.Has(game.EventGameOver):
		// Rising fanfare
		return beep.Seq(
			squareWave(440, 120*time.Millisecond),
			squareWave(554, 120*time.Millisecond),
			squareWave(659, 120*time.Millisecond),
			squareWave(880, 300*time.Millisecond),
		)
	case events.Has(game.EventPlayerScored):
		return beep.Seq(
			squareWave(523, 80*time.Millisecond),
			squareWave(784, 150*time.Millisecond),
		)
	case events.Has(game.EventComputerScored):
		// Descending tone
		return beep.Seq(
			squareWave(660, 100*time.Millisecond),
			squareWave(440, 100*time.Millisecond),
			squareWave(330, 150*time.Millisecond),
		)
	case events.Has(game.EventPaddleHit):
		return squareWave(880, 50*time.Millisecond)
	case events.Has(game.EventOpponentHit):
		return squareWave(660, 50*time.Millisecond)
	case events.Has(game.EventWallBounce):
		return tone(440, 30*time.Millisecond)
	}
	return nil
}

// tone generates a sine wave tone at the given frequency for the given duration
func tone(freq float64, duration time.Duration) beep.Streamer {
	numSamples := sampleRate.N(duration)
	phase := 0.0
	phaseStep := 2 * math.Pi * freq / float64(sampleRate)

	return beep.StreamerFunc(func(samples [][2]float64) (n int, ok bool) {
		for i := range samples {
			if numSamples <= 0 {
				return i, i > 0
			}
			val := math.Sin(phase) * 0.3
			samples[i][0] = val
			samples[i][1] = val
			phase += phaseStep
			numSamples--
		}
		return len(samples), true
	})
}

// squareWave generates a square wave tone (more retro/8-bit feel)
func squareWave(freq float64, duration time.Duration) beep.Streamer {
	numSamples := sampleRate.N(duration)
	phase := 0.0
	phaseStep := freq / float64(sampleRate)

	return beep.StreamerFunc(func(samples [][2]float64) (n int, ok bool) {
		for i := range samples {
			if numSamples <= 0 {
				return i, i > 0
			}
			val := 0.2
			if math.Mod(phase, 1.0) > 0.5 {
				val = -val
			}
			samples[i][0] = val
			samples[i][1] = val
			phase += phaseStep
			numSamples--
		}
		return len(samples), true
	})
}
