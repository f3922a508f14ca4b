package audio

import (
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/gopxl/beep"
)

func TestChimeIsFinite(t *testing.T) {
	s := NewChime(0)
	buf := make([][2]float64, 1024)

	total := 0
	for {
		n, ok := s.Stream(buf)
		total += n
		if !ok {
			break
		}
		if total > sampleRate.N(chimeDuration)*2 {
			t.Fatal("Chime did not terminate")
		}
	}
	if want := sampleRate.N(chimeDuration); total != want {
		t.Errorf("Expected %d samples, got %d", want, total)
	}
}

func TestChimeGeneratorDecays(t *testing.T) {
	g := NewChimeGenerator(sampleRate, chimeBase)
	buf := make([][2]float64, g.total)
	g.Stream(buf)

	peak := func(from, to int) float64 {
		m := 0.0
		for _, s := range buf[from:to] {
			m = math.Max(m, math.Abs(s[0]))
		}
		return m
	}
	head := peak(0, g.total/10)
	tail := peak(g.total*9/10, g.total)
	if head <= tail*10 {
		t.Errorf("Expected strong decay, head %.4f tail %.4f", head, tail)
	}
	if head > chimeGain*1.3+1e-9 {
		t.Errorf("Peak %.4f exceeds gain", head)
	}
	for _, s := range buf {
		if s[0] != s[1] {
			t.Fatal("Chime should be identical on both channels")
		}
	}
}

func TestDisabledManagerIsInert(t *testing.T) {
	sm := NewSoundManager(false)
	if err := sm.Initialize(); err != nil {
		t.Fatalf("Disabled initialize should not fail: %v", err)
	}
	sm.PlayChime(2)
	if sm.Enabled() || sm.Played() != 0 {
		t.Error("Disabled manager should never play")
	}
	sm.Cleanup()
}

func TestChimePitchWrapsNegativeIndex(t *testing.T) {
	// Negative slots must not panic on the ratio table
	NewChime(-1)
	NewChime(len(chimeRatios) * 3)
}

func TestInitializeWrapsSpeakerError(t *testing.T) {
	errDevice := errors.New("no audio device")
	orig := speakerInit
	speakerInit = func(beep.SampleRate, int) error { return errDevice }
	defer func() { speakerInit = orig }()

	sm := NewSoundManager(true)
	err := sm.Initialize()
	if !errors.Is(err, errDevice) {
		t.Fatalf("Expected wrapped device error, got %v", err)
	}
	if !strings.HasPrefix(err.Error(), "init speaker: ") {
		t.Errorf("Expected init speaker context, got %q", err.Error())
	}
	if sm.Enabled() {
		t.Error("Manager must stay disabled after a failed init")
	}
}
