// Package audio plays the game's sound cues through the system speaker.
// Every cue is synthesised on the fly; there are no sample files.
package audio

import (
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/trails/internal/core"
)

// DefaultSampleRate is used when Options.SampleRate is zero.
const DefaultSampleRate = beep.SampleRate(44100)

// Cuer is anything that can play a sound cue. Playback never blocks.
type Cuer interface {
	Play(cue core.SoundCue)
}

// Nop drops every cue. It is used when sound is disabled or the speaker
// could not be opened.
type Nop struct{}

// Play does nothing.
func (Nop) Play(core.SoundCue) {}

// Options configures a Player.
type Options struct {
	SampleRate beep.SampleRate
	// Volume is a linear gain in (0, 1]. Zero means 0.5.
	Volume float64
}

// Player mixes cues into a single speaker stream.
type Player struct {
	mu          sync.Mutex
	rate        beep.SampleRate
	volume      float64
	mixer       *beep.Mixer
	initialized bool
}

// NewPlayer creates a player. Call Init before Play.
func NewPlayer(opts Options) *Player {
	if opts.SampleRate == 0 {
		opts.SampleRate = DefaultSampleRate
	}
	if opts.Volume <= 0 || opts.Volume > 1 {
		opts.Volume = 0.5
	}
	return &Player{
		rate:   opts.SampleRate,
		volume: opts.Volume,
		mixer:  &beep.Mixer{},
	}
}

// Init opens the speaker and starts the mixer.
func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}
	if err := speaker.Init(p.rate, p.rate.N(100*time.Millisecond)); err != nil {
		return fmt.Errorf("audio: cannot open speaker: %w", err)
	}
	speaker.Play(p.mixer)
	p.initialized = true
	return nil
}

// Play queues cue on the mixer and returns immediately.
func (p *Player) Play(cue core.SoundCue) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	s, err := Synthesize(cue, p.rate)
	if err != nil || s == nil {
		return
	}
	speaker.Lock()
	p.mixer.Add(gain(s, p.volume))
	speaker.Unlock()
}

// Close stops playback and releases the speaker.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	speaker.Clear()
	speaker.Close()
	p.initialized = false
}

// note is one tone of a cue.
type note struct {
	freq   float64
	length time.Duration
	square bool
}

var cueNotes = map[core.SoundCue][]note{
	// Two rising blips.
	core.CueCollect: {
		{freq: 1318.5, length: 60 * time.Millisecond},
		{freq: 1975.5, length: 90 * time.Millisecond},
	},
	// C major arpeggio.
	core.CueLevelComplete: {
		{freq: 523.25, length: 110 * time.Millisecond},
		{freq: 659.25, length: 110 * time.Millisecond},
		{freq: 783.99, length: 110 * time.Millisecond},
		{freq: 1046.5, length: 260 * time.Millisecond},
	},
	// Low buzz.
	core.CueBlocked: {
		{freq: 110, length: 150 * time.Millisecond, square: true},
	},
}

// Duration returns the playing time of cue, or zero for cues without sound.
func Duration(cue core.SoundCue) time.Duration {
	var d time.Duration
	for _, n := range cueNotes[cue] {
		d += n.length
	}
	return d
}

// Synthesize builds the finite stream for cue. It returns nil for cues
// without sound.
func Synthesize(cue core.SoundCue, rate beep.SampleRate) (beep.Streamer, error) {
	notes, ok := cueNotes[cue]
	if !ok {
		return nil, nil
	}

	parts := make([]beep.Streamer, 0, len(notes))
	for _, n := range notes {
		var (
			tone beep.Streamer
			err  error
		)
		if n.square {
			tone, err = generators.SquareTone(rate, n.freq)
		} else {
			tone, err = generators.SineTone(rate, n.freq)
		}
		if err != nil {
			return nil, fmt.Errorf("audio: %s tone %.1fHz: %w", cue, n.freq, err)
		}
		samples := rate.N(n.length)
		parts = append(parts, newFade(beep.Take(samples, tone), samples, rate.N(5*time.Millisecond)))
	}
	return beep.Seq(parts...), nil
}

// gain wraps s in a volume effect. math.Log2(0) is -Inf, so zero is silent.
func gain(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// fade applies a linear attack and release to a stream of known length.
type fade struct {
	streamer beep.Streamer
	pos      int
	total    int
	ramp     int
}

func newFade(s beep.Streamer, total, ramp int) *fade {
	return &fade{streamer: s, total: total, ramp: max(min(ramp, total/2), 1)}
}

func (f *fade) Stream(samples [][2]float64) (int, bool) {
	n, ok := f.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		vol := 1.0
		if f.pos < f.ramp {
			vol = float64(f.pos) / float64(f.ramp)
		}
		if left := f.total - f.pos; left < f.ramp {
			vol = min(vol, float64(left)/float64(f.ramp))
		}
		samples[i][0] *= vol
		samples[i][1] *= vol
		f.pos++
	}
	return n, ok
}

func (f *fade) Err() error { return f.streamer.Err() }
