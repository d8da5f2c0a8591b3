package matching

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-MatchingService/internal/domain"
	"github.com/m04kA/SMC-MatchingService/pkg/types"
)

func windowOn(date time.Time, start, end string) domain.AvailabilityWindow {
	return domain.AvailabilityWindow{
		Date:      date,
		StartTime: types.TimeString(start),
		EndTime:   types.TimeString(end),
	}
}

func TestIsAvailable(t *testing.T) {
	date := time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		windows []domain.AvailabilityWindow
		start   string
		end     string
		want    bool
	}{
		{
			name:    "window contains request",
			windows: []domain.AvailabilityWindow{windowOn(date, "08:00", "18:00")},
			start:   "10:00", end: "12:00",
			want: true,
		},
		{
			name:    "exact boundary match counts as contained",
			windows: []domain.AvailabilityWindow{windowOn(date, "10:00", "12:00")},
			start:   "10:00", end: "12:00",
			want: true,
		},
		{
			name:    "window starts too late",
			windows: []domain.AvailabilityWindow{windowOn(date, "10:30", "18:00")},
			start:   "10:00", end: "12:00",
			want: false,
		},
		{
			name:    "window ends too early",
			windows: []domain.AvailabilityWindow{windowOn(date, "08:00", "11:30")},
			start:   "10:00", end: "12:00",
			want: false,
		},
		{
			name: "adjacent windows do not combine",
			windows: []domain.AvailabilityWindow{
				windowOn(date, "08:00", "11:00"),
				windowOn(date, "11:00", "14:00"),
			},
			start: "10:00", end: "12:00",
			want: false,
		},
		{
			name: "one of several windows contains request",
			windows: []domain.AvailabilityWindow{
				windowOn(date, "06:00", "08:00"),
				windowOn(date, "09:30", "13:00"),
			},
			start: "10:00", end: "12:00",
			want: true,
		},
		{
			name:    "different day",
			windows: []domain.AvailabilityWindow{windowOn(date.AddDate(0, 0, 1), "08:00", "18:00")},
			start:   "10:00", end: "12:00",
			want: false,
		},
		{
			name: "same day ignoring time of day on window date",
			windows: []domain.AvailabilityWindow{
				windowOn(date.Add(17*time.Hour+45*time.Minute), "08:00", "18:00"),
			},
			start: "10:00", end: "12:00",
			want: true,
		},
		{
			name:    "malformed window is skipped",
			windows: []domain.AvailabilityWindow{windowOn(date, "junk", "18:00")},
			start:   "10:00", end: "12:00",
			want: false,
		},
		{
			name:    "no windows at all",
			windows: nil,
			start:   "10:00", end: "12:00",
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			provider := &domain.Provider{Availability: tt.windows}
			got := isAvailable(provider, date, types.TimeString(tt.start), types.TimeString(tt.end))
			assert.Equal(t, tt.want, got)
		})
	}
}
