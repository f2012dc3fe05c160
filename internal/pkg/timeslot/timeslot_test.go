package timeslot

import (
	"errors"
	"testing"

	"github.com/hoangle/english-center/internal/pkg/apperrors"
)

func TestNew_RejectsInvertedRange(t *testing.T) {
	_, err := New(Monday, 10*60, 9*60)

	if err == nil {
		t.Fatal("expected error for start after end, got nil")
	}
	if !errors.Is(err, apperrors.ErrInvalidTimeRange) {
		t.Errorf("expected ErrInvalidTimeRange, got %v", err)
	}
}

func TestNew_RejectsEmptyRange(t *testing.T) {
	_, err := New(Monday, 9*60, 9*60)

	if err == nil {
		t.Fatal("expected error for zero-length slot, got nil")
	}
	if !errors.Is(err, apperrors.ErrInvalidTimeRange) {
		t.Errorf("expected ErrInvalidTimeRange, got %v", err)
	}
}

func TestNew_RejectsUnknownWeekday(t *testing.T) {
	_, err := New(Weekday("funday"), 9*60, 10*60)

	if err == nil {
		t.Fatal("expected error for unknown weekday, got nil")
	}
	if !errors.Is(err, apperrors.ErrValidationFailed) {
		t.Errorf("expected ErrValidationFailed, got %v", err)
	}
}

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name string
		a    Slot
		b    Slot
		want bool
	}{
		{
			name: "identical slots overlap",
			a:    Slot{Weekday: Monday, Start: 8 * 60, End: 9 * 60},
			b:    Slot{Weekday: Monday, Start: 8 * 60, End: 9 * 60},
			want: true,
		},
		{
			name: "partial overlap",
			a:    Slot{Weekday: Monday, Start: 8 * 60, End: 9 * 60},
			b:    Slot{Weekday: Monday, Start: 8*60 + 30, End: 9*60 + 30},
			want: true,
		},
		{
			name: "containment",
			a:    Slot{Weekday: Monday, Start: 8 * 60, End: 11 * 60},
			b:    Slot{Weekday: Monday, Start: 9 * 60, End: 10 * 60},
			want: true,
		},
		{
			name: "back to back slots do not overlap",
			a:    Slot{Weekday: Monday, Start: 7 * 60, End: 8*60 + 30},
			b:    Slot{Weekday: Monday, Start: 8*60 + 30, End: 10 * 60},
			want: false,
		},
		{
			name: "same times on different weekdays do not overlap",
			a:    Slot{Weekday: Monday, Start: 8 * 60, End: 9 * 60},
			b:    Slot{Weekday: Tuesday, Start: 8 * 60, End: 9 * 60},
			want: false,
		},
		{
			name: "disjoint slots do not overlap",
			a:    Slot{Weekday: Friday, Start: 8 * 60, End: 9 * 60},
			b:    Slot{Weekday: Friday, Start: 14 * 60, End: 15 * 60},
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Overlaps(tt.b); got != tt.want {
				t.Errorf("Overlaps(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
			// Overlap is symmetric
			if got := tt.b.Overlaps(tt.a); got != tt.want {
				t.Errorf("Overlaps(%v, %v) = %v, want %v", tt.b, tt.a, got, tt.want)
			}
		})
	}
}

func TestParseClock(t *testing.T) {
	tests := []struct {
		in      string
		want    int
		wantErr bool
	}{
		{in: "08:30", want: 8*60 + 30},
		{in: "00:00", want: 0},
		{in: "23:59", want: 23*60 + 59},
		{in: "24:00", wantErr: true},
		{in: "08:60", wantErr: true},
		{in: "0830", wantErr: true},
		{in: "eight:30", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseClock(tt.in)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseClock(%q) expected error, got %d", tt.in, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseClock(%q) unexpected error: %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("ParseClock(%q) = %d, want %d", tt.in, got, tt.want)
			}
		})
	}
}

func TestFormatClock_RoundTrips(t *testing.T) {
	for _, minute := range []int{0, 7 * 60, 8*60 + 30, 23*60 + 59} {
		parsed, err := ParseClock(FormatClock(minute))
		if err != nil {
			t.Fatalf("round trip of %d failed: %v", minute, err)
		}
		if parsed != minute {
			t.Errorf("round trip of %d produced %d", minute, parsed)
		}
	}
}

func TestParseWeekday(t *testing.T) {
	day, err := ParseWeekday(" Wednesday ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if day != Wednesday {
		t.Errorf("expected wednesday, got %s", day)
	}

	if _, err := ParseWeekday("midweek"); err == nil {
		t.Error("expected error for unknown weekday, got nil")
	}
}

func TestWeekdayIndex_IsMondayFirst(t *testing.T) {
	if Monday.Index() != 0 {
		t.Errorf("monday index = %d, want 0", Monday.Index())
	}
	if Sunday.Index() != 6 {
		t.Errorf("sunday index = %d, want 6", Sunday.Index())
	}
}
