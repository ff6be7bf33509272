package stats

import (
	"math"
	"testing"
	"time"
)

func TestIsNightHour(t *testing.T) {
	for hour := 0; hour < 24; hour++ {
		want := hour >= 19 || hour < 6
		if got := IsNightHour(hour); got != want {
			t.Errorf("IsNightHour(%d) = %v, want %v", hour, got, want)
		}
	}
}

func TestAverageTime(t *testing.T) {
	tests := []struct {
		name  string
		times []time.Time
		want  string
	}{
		{
			name:  "empty input returns sentinel",
			times: nil,
			want:  "--:--",
		},
		{
			name:  "single time",
			times: []time.Time{clock(20, 30)},
			want:  "20:30",
		},
		{
			name: "cross-midnight pair averages to midnight",
			// 23:30 and 00:30 must average to 00:00, not 12:00
			times: []time.Time{clock(23, 30), clock(0, 30)},
			want:  "00:00",
		},
		{
			name:  "late evening with early morning",
			times: []time.Time{clock(23, 30), clock(0, 15)},
			want:  "23:52",
		},
		{
			name:  "plain daytime average",
			times: []time.Time{clock(8, 0), clock(10, 0)},
			want:  "09:00",
		},
		{
			name: "early morning times stay together",
			// Both in the pre-dawn band, shifted consistently
			times: []time.Time{clock(5, 0), clock(5, 30)},
			want:  "05:15",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := AverageTime(tt.times); got != tt.want {
				t.Errorf("AverageTime() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestTimeVariation(t *testing.T) {
	tests := []struct {
		name  string
		times []time.Time
		want  float64
	}{
		{name: "empty", times: nil, want: 0},
		{name: "single input", times: []time.Time{clock(20, 0)}, want: 0},
		{
			name:  "identical bedtimes",
			times: []time.Time{clock(20, 0), clock(20, 0), clock(20, 0)},
			want:  0,
		},
		{
			name: "half hour spread",
			// 20:00 and 20:30: population std dev is 15 minutes
			times: []time.Time{clock(20, 0), clock(20, 30)},
			want:  15,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := TimeVariation(tt.times)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("TimeVariation() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestMinutesToHHMM(t *testing.T) {
	tests := []struct {
		minutes int
		want    string
	}{
		{0, "00:00"},
		{90, "01:30"},
		{1230, "20:30"},
		{1440, "00:00"},
		{1500, "01:00"}, // wraps past midnight
		{-30, "23:30"},  // negative normalizes backwards
	}

	for _, tt := range tests {
		if got := MinutesToHHMM(tt.minutes); got != tt.want {
			t.Errorf("MinutesToHHMM(%d) = %q, want %q", tt.minutes, got, tt.want)
		}
	}
}

func TestTimeStringToMinutes(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"00:00", 0},
		{"20:30", 1230},
		{"07:10", 430},
		{"--:--", 0},
		{"garbage", 0},
		{"12:xx", 0},
	}

	for _, tt := range tests {
		if got := TimeStringToMinutes(tt.in); got != tt.want {
			t.Errorf("TimeStringToMinutes(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

// clock builds a timestamp on a fixed reference day with the given wall time.
func clock(hour, minute int) time.Time {
	return time.Date(2024, 1, 15, hour, minute, 0, 0, time.UTC)
}
