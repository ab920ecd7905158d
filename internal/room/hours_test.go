package room

import (
	"errors"
	"testing"
)

func editableRoom() *Room {
	return &Room{
		Email:       "boardroom@example.org",
		DisplayName: "Boardroom",
		Editable:    true,
		Hours:       NewWorkingHours(),
	}
}

func TestAddInterval(t *testing.T) {
	r := editableRoom()

	if err := r.AddInterval(Monday); err != nil {
		t.Fatalf("AddInterval: %v", err)
	}
	if err := r.AddInterval(Monday); err != nil {
		t.Fatalf("AddInterval second: %v", err)
	}

	ivs := r.Hours.Day(Monday)
	if len(ivs) != 2 {
		t.Fatalf("expected 2 intervals, got %d", len(ivs))
	}
	want := Interval{Start: 480, End: 1020} // 08:00-17:00 default
	if ivs[0] != want || ivs[1] != want {
		t.Errorf("expected default intervals %v, got %v", want, ivs)
	}
}

func TestMoveInterval(t *testing.T) {
	tests := []struct {
		name     string
		initial  Interval
		newStart int
		want     Interval
	}{
		{
			name:     "raw 47 snaps to 30 preserving duration",
			initial:  Interval{Start: 480, End: 540},
			newStart: 47,
			want:     Interval{Start: 30, End: 90},
		},
		{
			name:     "on grid unchanged",
			initial:  Interval{Start: 480, End: 1020},
			newStart: 600,
			want:     Interval{Start: 600, End: 1140},
		},
		{
			name:     "clamped to end of day",
			initial:  Interval{Start: 480, End: 600},
			newStart: 1410,
			want:     Interval{Start: 1320, End: 1440},
		},
		{
			name:     "negative clamps to midnight",
			initial:  Interval{Start: 480, End: 540},
			newStart: -90,
			want:     Interval{Start: 0, End: 60},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := editableRoom()
			if err := r.Hours.Add(Tuesday, tt.initial); err != nil {
				t.Fatalf("Add: %v", err)
			}
			if err := r.MoveInterval(Tuesday, 0, tt.newStart); err != nil {
				t.Fatalf("MoveInterval: %v", err)
			}
			got := r.Hours.Day(Tuesday)[0]
			if got != tt.want {
				t.Errorf("MoveInterval(%d) = %v, want %v", tt.newStart, got, tt.want)
			}
			if got.Duration() != tt.initial.Duration() {
				t.Errorf("duration changed: %d -> %d", tt.initial.Duration(), got.Duration())
			}
		})
	}
}

func TestResizeInterval(t *testing.T) {
	tests := []struct {
		name        string
		initial     Interval
		edge        Edge
		newBoundary int
		want        Interval
	}{
		{
			name:        "end edge snaps",
			initial:     Interval{Start: 480, End: 1020},
			edge:        EdgeEnd,
			newBoundary: 1130,
			want:        Interval{Start: 480, End: 1110},
		},
		{
			name:        "start edge snaps",
			initial:     Interval{Start: 480, End: 1020},
			edge:        EdgeStart,
			newBoundary: 431,
			want:        Interval{Start: 420, End: 1020},
		},
		{
			name:        "minimum one slot when shrinking from end",
			initial:     Interval{Start: 480, End: 1020},
			edge:        EdgeEnd,
			newBoundary: 480,
			want:        Interval{Start: 480, End: 510},
		},
		{
			name:        "minimum one slot when shrinking from start",
			initial:     Interval{Start: 480, End: 510},
			edge:        EdgeStart,
			newBoundary: 510,
			want:        Interval{Start: 480, End: 510},
		},
		{
			name:        "end clamped to end of day",
			initial:     Interval{Start: 1380, End: 1410},
			edge:        EdgeEnd,
			newBoundary: 2000,
			want:        Interval{Start: 1380, End: 1440},
		},
		{
			name:        "start clamped to midnight",
			initial:     Interval{Start: 60, End: 120},
			edge:        EdgeStart,
			newBoundary: -40,
			want:        Interval{Start: 0, End: 120},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := editableRoom()
			if err := r.Hours.Add(Friday, tt.initial); err != nil {
				t.Fatalf("Add: %v", err)
			}
			if err := r.ResizeInterval(Friday, 0, tt.edge, tt.newBoundary); err != nil {
				t.Fatalf("ResizeInterval: %v", err)
			}
			got := r.Hours.Day(Friday)[0]
			if got != tt.want {
				t.Errorf("ResizeInterval = %v, want %v", got, tt.want)
			}
			if got.Duration() < MinIntervalMinutes {
				t.Errorf("interval narrower than one slot: %v", got)
			}
			if got.Start < 0 || got.End > 1440 {
				t.Errorf("interval out of day bounds: %v", got)
			}
		})
	}
}

func TestDeleteInterval(t *testing.T) {
	r := editableRoom()
	_ = r.Hours.Add(Monday, Interval{Start: 480, End: 720})
	_ = r.Hours.Add(Monday, Interval{Start: 780, End: 1020})

	if err := r.DeleteInterval(Monday, 0); err != nil {
		t.Fatalf("DeleteInterval: %v", err)
	}
	ivs := r.Hours.Day(Monday)
	if len(ivs) != 1 || ivs[0].Start != 780 {
		t.Errorf("expected only the afternoon interval, got %v", ivs)
	}

	if err := r.DeleteInterval(Monday, 5); !errors.Is(err, ErrIntervalNotFound) {
		t.Errorf("expected ErrIntervalNotFound, got %v", err)
	}
}

func TestReadOnlyRoomRejectsMutation(t *testing.T) {
	r := &Room{DisplayName: "Lobby", Editable: false, Hours: NewWorkingHours()}
	_ = r.Hours.Add(Monday, Interval{Start: 480, End: 1020})

	ops := map[string]func() error{
		"add":    func() error { return r.AddInterval(Monday) },
		"move":   func() error { return r.MoveInterval(Monday, 0, 600) },
		"resize": func() error { return r.ResizeInterval(Monday, 0, EdgeEnd, 1080) },
		"delete": func() error { return r.DeleteInterval(Monday, 0) },
	}
	for name, op := range ops {
		t.Run(name, func(t *testing.T) {
			if err := op(); !errors.Is(err, ErrRoomReadOnly) {
				t.Errorf("expected ErrRoomReadOnly, got %v", err)
			}
		})
	}

	// The interval must be untouched.
	if got := r.Hours.Day(Monday)[0]; got != (Interval{Start: 480, End: 1020}) {
		t.Errorf("read-only room was mutated: %v", got)
	}
}

func TestUnknownDay(t *testing.T) {
	r := editableRoom()
	if err := r.AddInterval(DayOfWeek("funday")); !errors.Is(err, ErrUnknownDay) {
		t.Errorf("expected ErrUnknownDay, got %v", err)
	}
}

func TestOverlappingIntervalsTolerated(t *testing.T) {
	r := editableRoom()
	_ = r.Hours.Add(Monday, Interval{Start: 480, End: 720})
	_ = r.Hours.Add(Monday, Interval{Start: 600, End: 900})

	if err := r.MoveInterval(Monday, 1, 480); err != nil {
		t.Fatalf("MoveInterval onto overlap: %v", err)
	}
	if len(r.Hours.Day(Monday)) != 2 {
		t.Errorf("overlapping intervals should both survive")
	}
}

func TestCloneIsIndependent(t *testing.T) {
	wh := NewWorkingHours()
	_ = wh.Add(Monday, Interval{Start: 480, End: 720})

	clone := wh.Clone()
	if err := clone.Move(Monday, 0, 600); err != nil {
		t.Fatalf("Move on clone: %v", err)
	}
	if wh.Day(Monday)[0].Start != 480 {
		t.Errorf("mutating clone changed original")
	}
}
