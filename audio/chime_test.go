package audio

import (
	"math"
	"testing"
	"time"

	"github.com/gopxl/beep"
)

func drain(s beep.Streamer) [][2]float64 {
	var out [][2]float64
	buf := make([][2]float64, 512)
	for {
		n, ok := s.Stream(buf)
		out = append(out, buf[:n]...)
		if !ok {
			return out
		}
	}
}

func testSettings() Settings {
	return Settings{
		SampleRate: 44100,
		Frequency:  880,
		Duration:   100 * time.Millisecond,
		Volume:     0.5,
	}
}

func TestCreateChime_Length(t *testing.T) {
	s := testSettings()
	samples := drain(CreateChime(s))
	want := beep.SampleRate(s.SampleRate).N(s.Duration)
	if len(samples) != want {
		t.Errorf("samples = %d, want %d", len(samples), want)
	}
}

func TestCreateChime_EnvelopeAndGain(t *testing.T) {
	s := testSettings()
	samples := drain(CreateChime(s))

	if math.Abs(samples[0][0]) > 1e-9 {
		t.Errorf("first sample = %v, attack should start silent", samples[0][0])
	}
	last := samples[len(samples)-1][0]
	if math.Abs(last) > 0.01 {
		t.Errorf("last sample = %v, release should end near silent", last)
	}

	peak := 0.0
	for _, smp := range samples {
		peak = math.Max(peak, math.Abs(smp[0]))
	}
	if peak == 0 || peak > s.Volume+1e-9 {
		t.Errorf("peak = %v, want in (0, %v]", peak, s.Volume)
	}
}

func TestCreateChime_ZeroVolumeSilent(t *testing.T) {
	s := testSettings()
	s.Volume = 0
	for i, smp := range drain(CreateChime(s)) {
		if smp[0] != 0 || smp[1] != 0 {
			t.Fatalf("sample %d = %v, want silence", i, smp)
		}
	}
}

func TestSpeaker_PlayBeforeInitIsNoop(t *testing.T) {
	sp := NewSpeaker(testSettings())
	sp.Play()
	sp.Close()
}

func TestNop(t *testing.T) {
	var c Chime = Nop{}
	c.Play()
	c.Close()
}
