// Package audio plays synthesized match sound effects through the beep speaker
package audio

import (
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/vi-pong/core"
	"github.com/lixenwraith/vi-pong/engine"
)

const (
	sampleRate   = beep.SampleRate(48000)
	bufferLength = 100 * time.Millisecond
)

// Paddle hit: sine blip whose pitch climbs with the rally
const (
	hitBaseFreq  = 440.0
	hitStepFreq  = 40.0
	hitMaxFreq   = 1320.0
	hitDuration  = 60 * time.Millisecond
	hitGain      = -0.7 // effects.Gain multiplies by 1+Gain
	wallFreq     = 220.0
	wallDuration = 35 * time.Millisecond
)

// Score and game over
const (
	scoreHumanFreq   = 660.0
	scoreAIFreq      = 110.0
	scoreDuration    = 250 * time.Millisecond
	gameOverFromFreq = 660.0
	gameOverToFreq   = 110.0
	gameOverDuration = 700 * time.Millisecond
	squareAmplitude  = 0.15
)

var _ engine.Listener = (*SoundManager)(nil)

// SoundManager turns match events into short tones
// Every call is a no-op until Initialize succeeds, and while muted
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
	muted       bool
}

// NewSoundManager creates a new sound manager
func NewSoundManager(muted bool) *SoundManager {
	return &SoundManager{
		mixer: &beep.Mixer{},
		muted: muted,
	}
}

// Initialize opens the speaker and starts the mixer
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(bufferLength)); err != nil {
		return err
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup drops queued sounds and closes the speaker
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()

	speaker.Close()
	sm.initialized = false
}

// SetMuted toggles output without closing the speaker
func (sm *SoundManager) SetMuted(muted bool) {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.muted = muted
}

func (sm *SoundManager) Muted() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.muted
}

// OnPaddleHit plays a blip, higher for longer rallies
func (sm *SoundManager) OnPaddleHit(_ core.Side, rally int) {
	sm.playSine(HitFrequency(rally), hitDuration)
}

// OnWallBounce plays a low blip
func (sm *SoundManager) OnWallBounce() {
	sm.playSine(wallFreq, wallDuration)
}

// OnScore plays a bright square tone for the human, a buzz for the AI
func (sm *SoundManager) OnScore(scorer core.Side, _, _ int) {
	var gen beep.Streamer
	if scorer == core.SideHuman {
		gen = NewSquareGenerator(sampleRate, scoreHumanFreq, squareAmplitude)
	} else {
		gen = NewBuzzGenerator(sampleRate, scoreAIFreq)
	}
	sm.play(beep.Take(sampleRate.N(scoreDuration), gen))
}

// OnPhaseChange plays a falling sweep when a match ends
func (sm *SoundManager) OnPhaseChange(_, to engine.Phase) {
	if to != engine.PhaseGameOver {
		return
	}
	n := sampleRate.N(gameOverDuration)
	sm.play(beep.Take(n, NewSweepGenerator(sampleRate, gameOverFromFreq, gameOverToFreq, n)))
}

// HitFrequency maps a rally count to the paddle hit pitch
func HitFrequency(rally int) float64 {
	if rally < 1 {
		rally = 1
	}
	return math.Min(hitBaseFreq+hitStepFreq*float64(rally-1), hitMaxFreq)
}

func (sm *SoundManager) playSine(freq float64, d time.Duration) {
	tone, err := generators.SineTone(sampleRate, freq)
	if err != nil {
		return
	}
	sm.play(&effects.Gain{
		Streamer: beep.Take(sampleRate.N(d), tone),
		Gain:     hitGain,
	})
}

// play queues s on the mixer; the speaker lock guards the mixer against the playback goroutine
func (sm *SoundManager) play(s beep.Streamer) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || sm.muted {
		return
	}

	speaker.Lock()
	sm.mixer.Add(s)
	speaker.Unlock()
}

// SquareGenerator generates a plain square wave
type SquareGenerator struct {
	sr        beep.SampleRate
	freq      float64
	amplitude float64
	pos       int
}

// NewSquareGenerator creates a square wave generator
func NewSquareGenerator(sr beep.SampleRate, freq, amplitude float64) *SquareGenerator {
	return &SquareGenerator{
		sr:        sr,
		freq:      freq,
		amplitude: amplitude,
	}
}

func (g *SquareGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	period := float64(g.sr) / g.freq
	for i := range samples {
		sample := g.amplitude
		if math.Mod(float64(g.pos), period) >= period/2 {
			sample = -g.amplitude
		}
		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *SquareGenerator) Err() error {
	return nil
}

// BuzzGenerator generates a low-pitch buzz sound
type BuzzGenerator struct {
	sr   beep.SampleRate
	freq float64
	pos  int
}

// NewBuzzGenerator creates a buzz sound generator
func NewBuzzGenerator(sr beep.SampleRate, freq float64) *BuzzGenerator {
	return &BuzzGenerator{
		sr:   sr,
		freq: freq,
	}
}

func (g *BuzzGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)

		// Odd harmonics for a harsh edge
		sample := 0.0
		sample += 0.3 * math.Sin(2*math.Pi*g.freq*t)
		sample += 0.15 * math.Sin(2*math.Pi*g.freq*2*t)
		sample += 0.075 * math.Sin(2*math.Pi*g.freq*3*t)

		// 20ms fade in
		envelope := math.Min(t/0.02, 1.0)
		sample *= envelope * 0.2

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *BuzzGenerator) Err() error {
	return nil
}

// SweepGenerator glides a square wave from one pitch to another over length samples, fading out
type SweepGenerator struct {
	sr       beep.SampleRate
	from, to float64
	length   int
	pos      int
	phase    float64
}

// NewSweepGenerator creates a sweep generator; length below 1 is treated as 1
func NewSweepGenerator(sr beep.SampleRate, from, to float64, length int) *SweepGenerator {
	if length < 1 {
		length = 1
	}
	return &SweepGenerator{
		sr:     sr,
		from:   from,
		to:     to,
		length: length,
	}
}

func (g *SweepGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		progress := math.Min(float64(g.pos)/float64(g.length), 1.0)
		freq := g.from + (g.to-g.from)*progress

		sample := squareAmplitude
		if g.phase >= 0.5 {
			sample = -squareAmplitude
		}
		sample *= 1.0 - progress

		samples[i][0] = sample
		samples[i][1] = sample

		g.phase += freq / float64(g.sr)
		if g.phase >= 1.0 {
			g.phase -= 1.0
		}
		g.pos++
	}
	return len(samples), true
}

func (g *SweepGenerator) Err() error {
	return nil
}
