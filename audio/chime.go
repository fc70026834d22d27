// Package audio plays the optional chime that marks an arc respawn.
package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

// Chime is something that can ping
type Chime interface {
	Play()
	Close()
}

// Settings describe the chime tone
type Settings struct {
	SampleRate int
	Frequency  float64
	Duration   time.Duration
	Volume     float64 // 0.0-1.0
}

// Nop is the silent Chime used when audio is disabled or unavailable
type Nop struct{}

func (Nop) Play()  {}
func (Nop) Close() {}

// Speaker plays chimes through the system audio device
type Speaker struct {
	mu          sync.Mutex
	settings    Settings
	initialized bool
}

func NewSpeaker(s Settings) *Speaker {
	return &Speaker{settings: s}
}

// Init opens the audio device with a 100ms buffer
func (sp *Speaker) Init() error {
	sp.mu.Lock()
	defer sp.mu.Unlock()

	if sp.initialized {
		return nil
	}
	rate := beep.SampleRate(sp.settings.SampleRate)
	if err := speaker.Init(rate, rate.N(100*time.Millisecond)); err != nil {
		return err
	}
	sp.initialized = true
	return nil
}

// Play queues a fresh chime, a no-op before Init succeeds
func (sp *Speaker) Play() {
	sp.mu.Lock()
	defer sp.mu.Unlock()

	if !sp.initialized {
		return
	}
	speaker.Play(CreateChime(sp.settings))
}

func (sp *Speaker) Close() {
	sp.mu.Lock()
	defer sp.mu.Unlock()

	if !sp.initialized {
		return
	}
	speaker.Close()
	sp.initialized = false
}
