package glimpse

import "log/slog"

type InputState struct {
	// true once the platform asked the window to close. Stays true.
	CloseRequested bool

	// number of times PollEvents has been called
	Polls uint64
}

func (s *InputState) requestClose() {
	if !s.CloseRequested {
		slog.Info("Window close requested", slog.Uint64("poll", s.Polls))
	}

	s.CloseRequested = true
}

func (s *InputState) nextTick() {
	s.Polls += 1
}
