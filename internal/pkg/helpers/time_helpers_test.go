package helpers

import (
	"testing"
	"time"
)

func TestWeekStart(t *testing.T) {
	tests := []struct {
		name string
		ref  time.Time
		want time.Time
	}{
		{
			name: "wednesday rolls back to monday",
			ref:  time.Date(2026, time.March, 4, 15, 30, 0, 0, time.UTC),
			want: time.Date(2026, time.March, 2, 0, 0, 0, 0, time.UTC),
		},
		{
			name: "monday keeps its own week",
			ref:  time.Date(2026, time.March, 2, 0, 0, 0, 0, time.UTC),
			want: time.Date(2026, time.March, 2, 0, 0, 0, 0, time.UTC),
		},
		{
			name: "sunday belongs to the preceding monday",
			ref:  time.Date(2026, time.March, 8, 23, 59, 0, 0, time.UTC),
			want: time.Date(2026, time.March, 2, 0, 0, 0, 0, time.UTC),
		},
		{
			name: "month boundary",
			ref:  time.Date(2026, time.April, 1, 10, 0, 0, 0, time.UTC),
			want: time.Date(2026, time.March, 30, 0, 0, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := WeekStart(tt.ref)
			if !got.Equal(tt.want) {
				t.Errorf("WeekStart(%v) = %v, want %v", tt.ref, got, tt.want)
			}
		})
	}
}
