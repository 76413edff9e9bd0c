package orion

import (
	"testing"
	"time"
)

func TestFrameTimesFirstTickHasNoDelta(t *testing.T) {
	var ft FrameTimes
	ft.tickAt(time.Unix(100, 0))

	if ft.FrameCount != 1 {
		t.Errorf("FrameCount = %d, want 1", ft.FrameCount)
	}

	if ft.Delta != 0 || ft.FPS() != 0 {
		t.Errorf("Delta = %v, FPS = %v, want both zero", ft.Delta, ft.FPS())
	}
}

func TestFrameTimesAverage(t *testing.T) {
	var ft FrameTimes

	now := time.Unix(100, 0)
	for range 10 {
		ft.tickAt(now)
		now = now.Add(16 * time.Millisecond)
	}

	if ft.Delta != 16*time.Millisecond {
		t.Errorf("Delta = %v, want 16ms", ft.Delta)
	}

	if ft.AverageDuration != 16*time.Millisecond {
		t.Errorf("AverageDuration = %v, want 16ms", ft.AverageDuration)
	}

	if fps := ft.FPS(); fps < 62 || fps > 63 {
		t.Errorf("FPS = %v, want 62.5", fps)
	}
}

func TestFrameTimesMax(t *testing.T) {
	var ft FrameTimes

	now := time.Unix(0, 0)
	for _, step := range []time.Duration{10, 50, 20} {
		ft.tickAt(now)
		now = now.Add(step * time.Millisecond)
	}
	ft.tickAt(now)

	if ft.MaxDuration != 50*time.Millisecond {
		t.Errorf("MaxDuration = %v, want 50ms", ft.MaxDuration)
	}
}
