package dateutil

import (
	"errors"
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	amsterdam, err := time.LoadLocation("Europe/Amsterdam")
	if err != nil {
		t.Fatalf("loading zone: %v", err)
	}

	t.Run("valid date", func(t *testing.T) {
		got, err := ParseDate("2025-01-15", amsterdam)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		want := time.Date(2025, 1, 15, 0, 0, 0, 0, amsterdam)
		if !got.Equal(want) {
			t.Errorf("got %v, want %v", got, want)
		}
	})

	t.Run("empty defaults to today", func(t *testing.T) {
		got, err := ParseDate("", amsterdam)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		today := TruncateToDay(time.Now().In(amsterdam))
		if !got.Equal(today) {
			t.Errorf("got %v, want %v", got, today)
		}
	})

	t.Run("invalid format", func(t *testing.T) {
		_, err := ParseDate("01-15-2025", amsterdam)
		if !errors.Is(err, ErrInvalidDateFormat) {
			t.Errorf("got error %v, want %v", err, ErrInvalidDateFormat)
		}
	})
}

func TestWeekStart(t *testing.T) {
	tests := []struct {
		name string
		in   time.Time
		want time.Time
	}{
		{
			name: "wednesday rolls back to sunday",
			in:   time.Date(2025, 1, 15, 14, 30, 0, 0, time.UTC),
			want: time.Date(2025, 1, 12, 0, 0, 0, 0, time.UTC),
		},
		{
			name: "sunday stays",
			in:   time.Date(2025, 1, 12, 9, 0, 0, 0, time.UTC),
			want: time.Date(2025, 1, 12, 0, 0, 0, 0, time.UTC),
		},
		{
			name: "saturday rolls back six days",
			in:   time.Date(2025, 1, 18, 23, 59, 0, 0, time.UTC),
			want: time.Date(2025, 1, 12, 0, 0, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := WeekStart(tt.in)
			if !got.Equal(tt.want) {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestTruncateToDay(t *testing.T) {
	in := time.Date(2025, 3, 10, 17, 45, 12, 999, time.UTC)
	want := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	if got := TruncateToDay(in); !got.Equal(want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestParseRelativeDate(t *testing.T) {
	// Wednesday
	relativeTo := time.Date(2025, 1, 15, 10, 30, 0, 0, time.UTC)

	tests := []struct {
		name    string
		input   string
		want    time.Time
		wantErr error
	}{
		{"empty is today", "", time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC), nil},
		{"today keyword", "today", time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC), nil},
		{"tomorrow", "tomorrow", time.Date(2025, 1, 16, 0, 0, 0, 0, time.UTC), nil},
		{"next-week", "next-week", time.Date(2025, 1, 22, 0, 0, 0, 0, time.UTC), nil},
		{"friday this week", "friday", time.Date(2025, 1, 17, 0, 0, 0, 0, time.UTC), nil},
		{"monday wraps to next week", "monday", time.Date(2025, 1, 20, 0, 0, 0, 0, time.UTC), nil},
		{"same weekday goes forward a week", "wednesday", time.Date(2025, 1, 22, 0, 0, 0, 0, time.UTC), nil},
		{"next-friday", "next-friday", time.Date(2025, 1, 17, 0, 0, 0, 0, time.UTC), nil},
		{"case insensitive", "TOMORROW", time.Date(2025, 1, 16, 0, 0, 0, 0, time.UTC), nil},
		{"absolute date", "2025-02-01", time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC), nil},
		{"past date rejected", "2025-01-10", time.Time{}, ErrDateInPast},
		{"garbage", "someday", time.Time{}, ErrInvalidDateFormat},
		{"next-garbage", "next-someday", time.Time{}, ErrInvalidDateFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseRelativeDate(tt.input, relativeTo)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("got error %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !got.Equal(tt.want) {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}
