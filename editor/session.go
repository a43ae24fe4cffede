package editor

import (
	"log/slog"

	"drawboard/shape"
)

// Capture is the global pointer subscription a gesture needs so that moves
// and the final release reach it even off the canvas.
type Capture interface {
	Acquire()
	Release()
}

type nopCapture struct{}

func (nopCapture) Acquire() {}
func (nopCapture) Release() {}

// Session owns the editor state and holds capture exactly while a gesture
// is active.
type Session struct {
	state   State
	capture Capture
	held    bool
	rev     uint64
	log     *slog.Logger
}

func NewSession(s State, c Capture, log *slog.Logger) *Session {
	if c == nil {
		c = nopCapture{}
	}
	if log == nil {
		log = slog.Default()
	}
	if s.Gesture == nil {
		s.Gesture = Idle{}
	}
	return &Session{state: s, capture: c, log: log}
}

func (s *Session) State() State {
	return s.state
}

// Revision counts the events that reached the reducer. It is unchanged
// while the state is, so views can cache against it.
func (s *Session) Revision() uint64 {
	return s.rev
}

// Captured reports whether pointer capture is currently held.
func (s *Session) Captured() bool {
	return s.held
}

func (s *Session) Cursor(p shape.Point) Cursor {
	return CursorAt(s.state, p)
}

// Dispatch feeds ev through the reducer. Moves are dropped unless capture
// is held. A pointer-up or cancel releases capture however the reducer
// returns.
func (s *Session) Dispatch(ev Event) {
	switch ev.(type) {
	case PointerMove:
		if !s.held {
			return
		}
	case PointerUp, Cancel:
		defer s.release()
	}

	prev := s.state
	s.state = Reduce(s.state, ev)
	s.rev++

	if s.state.Active() && !s.held {
		s.acquire()
	} else if !s.state.Active() && s.held {
		s.release()
	}

	if prev.GestureName() != s.state.GestureName() || prev.Mode != s.state.Mode {
		s.log.Debug("transition",
			"from", prev.GestureName(),
			"to", s.state.GestureName(),
			"mode", s.state.Mode.String(),
			"rectangles", len(s.state.Board.Rectangles),
			"arrows", len(s.state.Board.Arrows),
			"groups", len(s.state.Board.Groups))
	}
}

// Close abandons any gesture in flight and lets go of capture.
func (s *Session) Close() {
	if s.state.Active() {
		s.log.Debug("gesture abandoned", "gesture", s.state.GestureName())
		s.state.Gesture = Idle{}
		s.rev++
	}
	s.release()
}

func (s *Session) acquire() {
	s.held = true
	s.capture.Acquire()
	s.log.Debug("pointer captured", "gesture", s.state.GestureName())
}

func (s *Session) release() {
	if !s.held {
		return
	}
	s.held = false
	s.capture.Release()
	s.log.Debug("pointer released")
}
