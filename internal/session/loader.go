package session

import "time"

// Phase is the state of the initial loading overlay.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseLoading
	PhaseFadingOut
	PhaseLoaded
)

func (p Phase) String() string {
	switch p {
	case PhaseLoading:
		return "loading"
	case PhaseFadingOut:
		return "fading_out"
	case PhaseLoaded:
		return "loaded"
	}
	return "idle"
}

// LoadStep asks the host to call AdvanceLoad(Gen) after Delay.
type LoadStep struct {
	Gen   uint64
	Delay time.Duration
}

// loader tracks the overlay phase. gen invalidates steps scheduled before a
// teardown or a restart.
type loader struct {
	phase Phase
	gen   uint64
}

// OnMounted starts the loading sequence and returns the first timer step.
func (s *Session) OnMounted() LoadStep {
	s.loader.gen++
	s.loader.phase = PhaseLoading
	s.centered = false
	return LoadStep{Gen: s.loader.gen, Delay: s.opts.FadeDelay}
}

// AdvanceLoad moves the overlay to its next phase. Steps from a stale
// generation are ignored. It returns the next step, if any.
func (s *Session) AdvanceLoad(gen uint64) (LoadStep, bool) {
	if gen != s.loader.gen {
		return LoadStep{}, false
	}
	switch s.loader.phase {
	case PhaseLoading:
		s.loader.phase = PhaseFadingOut
		return LoadStep{Gen: gen, Delay: s.opts.HideDelay}, true
	case PhaseFadingOut:
		s.loader.phase = PhaseLoaded
	}
	return LoadStep{}, false
}

// Teardown cancels any pending load step.
func (s *Session) Teardown() {
	s.loader.gen++
}

// Phase returns the overlay phase.
func (s *Session) Phase() Phase { return s.loader.phase }

// Loading reports whether the overlay is still shown.
func (s *Session) Loading() bool {
	return s.loader.phase == PhaseLoading || s.loader.phase == PhaseFadingOut
}

// FadingOut reports whether the overlay is in its fade-out phase.
func (s *Session) FadingOut() bool {
	return s.loader.phase == PhaseFadingOut
}
