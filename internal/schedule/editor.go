package schedule

import (
	"errors"

	"roomboard/internal/room"
)

// Editor errors.
var (
	ErrSessionActive = errors.New("an interaction session is already active")
	ErrSessionEnded  = errors.New("interaction session has ended")
)

// SessionKind distinguishes the two pointer interactions of the timeline
// editor.
type SessionKind int

const (
	KindDrag SessionKind = iota
	KindResize
)

// Editor owns the single interaction-state slot of the timeline editor:
// at most one drag or resize session exists at a time, and a new one
// cannot start until the previous one is released. This replaces the bare
// nullable drag-state global of a pointer-driven UI with an exclusively
// held session handle.
type Editor struct {
	active *Session
}

// Session is one live drag or resize interaction on one interval. Updates
// take the accumulated pointer delta in minutes relative to where the
// interaction started and recompute the snapped geometry from the original
// position, so repeated updates never drift across the snapping grid.
type Session struct {
	editor *Editor
	room   *room.Room
	day    room.DayOfWeek
	index  int
	kind   SessionKind
	edge   room.Edge

	// geometry at pointer-down
	originStart int
	originEnd   int

	ended bool
}

// NewEditor returns an editor with no active session.
func NewEditor() *Editor {
	return &Editor{}
}

// Active reports whether an interaction session is currently held.
func (e *Editor) Active() bool {
	return e.active != nil
}

// BeginDrag starts moving an interval. It fails when another session is
// active, the room is read-only, or the interval does not exist.
func (e *Editor) BeginDrag(r *room.Room, day room.DayOfWeek, index int) (*Session, error) {
	return e.begin(r, day, index, KindDrag, room.EdgeStart)
}

// BeginResize starts moving one edge of an interval, under the same rules
// as BeginDrag.
func (e *Editor) BeginResize(r *room.Room, day room.DayOfWeek, index int, edge room.Edge) (*Session, error) {
	return e.begin(r, day, index, KindResize, edge)
}

func (e *Editor) begin(r *room.Room, day room.DayOfWeek, index int, kind SessionKind, edge room.Edge) (*Session, error) {
	if e.active != nil {
		return nil, ErrSessionActive
	}
	if !r.Editable {
		return nil, room.ErrRoomReadOnly
	}
	ivs := r.Hours.Day(day)
	if index < 0 || index >= len(ivs) {
		return nil, room.ErrIntervalNotFound
	}
	s := &Session{
		editor:      e,
		room:        r,
		day:         day,
		index:       index,
		kind:        kind,
		edge:        edge,
		originStart: ivs[index].Start,
		originEnd:   ivs[index].End,
	}
	e.active = s
	return s, nil
}

// Update applies the accumulated pointer delta (minutes, signed) to the
// session's interval through the room's snapping and clamping mutation
// rules.
func (s *Session) Update(deltaMinutes int) error {
	if s.ended {
		return ErrSessionEnded
	}
	switch s.kind {
	case KindDrag:
		return s.room.MoveInterval(s.day, s.index, s.originStart+deltaMinutes)
	default:
		origin := s.originStart
		if s.edge == room.EdgeEnd {
			origin = s.originEnd
		}
		return s.room.ResizeInterval(s.day, s.index, s.edge, origin+deltaMinutes)
	}
}

// Interval returns the session interval's current geometry.
func (s *Session) Interval() room.Interval {
	return s.room.Hours.Day(s.day)[s.index]
}

// End releases the interaction slot. The session cannot be updated again;
// a new one may then begin. Calling End twice is harmless.
func (s *Session) End() {
	if s.ended {
		return
	}
	s.ended = true
	if s.editor.active == s {
		s.editor.active = nil
	}
}
