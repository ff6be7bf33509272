package stats

import (
	"math"
	"testing"
	"time"
)

// testNow is the injected clock reference for session tests, several days
// after the reference events so the recent-event fallback stays inert
// unless a test wants it.
var testNow = time.Date(2024, 1, 10, 12, 0, 0, 0, time.UTC)

func timePtr(t time.Time) *time.Time { return &t }
func intPtr(i int) *int              { return &i }

func TestNightSessionDurations_WakePairing(t *testing.T) {
	tests := []struct {
		name   string
		events []Event
		want   []float64 // minutes
	}{
		{
			name: "sleep paired with next wake, delay applied",
			// 20:00 + 10 min onset delay to 07:00 next day = 650 minutes
			events: []Event{
				{Type: EventSleep, StartTime: time.Date(2024, 1, 1, 20, 0, 0, 0, time.UTC), SleepDelay: intPtr(10)},
				{Type: EventWake, StartTime: time.Date(2024, 1, 2, 7, 0, 0, 0, time.UTC)},
			},
			want: []float64{650},
		},
		{
			name: "garbage delay is capped at 180 minutes",
			// 300 min claimed delay clamps to 180: 20:00+3h to 07:00 = 8h = 480
			events: []Event{
				{Type: EventSleep, StartTime: time.Date(2024, 1, 1, 20, 0, 0, 0, time.UTC), SleepDelay: intPtr(300)},
				{Type: EventWake, StartTime: time.Date(2024, 1, 2, 7, 0, 0, 0, time.UTC)},
			},
			want: []float64{480},
		},
		{
			name: "second nocturnal sleep start ends the search",
			// The 20:00 event never pairs; 22:00 pairs with the wake
			events: []Event{
				{Type: EventSleep, StartTime: time.Date(2024, 1, 1, 20, 0, 0, 0, time.UTC)},
				{Type: EventBedtime, StartTime: time.Date(2024, 1, 1, 22, 0, 0, 0, time.UTC)},
				{Type: EventWake, StartTime: time.Date(2024, 1, 2, 7, 0, 0, 0, time.UTC)},
			},
			want: []float64{540},
		},
		{
			name: "wake beyond the 18h window is ignored",
			events: []Event{
				{Type: EventSleep, StartTime: time.Date(2024, 1, 1, 20, 0, 0, 0, time.UTC)},
				{Type: EventWake, StartTime: time.Date(2024, 1, 2, 18, 0, 0, 0, time.UTC)},
			},
			want: nil,
		},
		{
			name: "feeding events between sleep and wake do not stop the pairing",
			events: []Event{
				{Type: EventSleep, StartTime: time.Date(2024, 1, 1, 20, 0, 0, 0, time.UTC)},
				{Type: EventNightFeeding, StartTime: time.Date(2024, 1, 2, 2, 0, 0, 0, time.UTC)},
				{Type: EventWake, StartTime: time.Date(2024, 1, 2, 7, 0, 0, 0, time.UTC)},
			},
			want: []float64{660},
		},
		{
			name: "daytime sleep start is not a nocturnal session",
			events: []Event{
				{Type: EventSleep, StartTime: time.Date(2024, 1, 1, 14, 0, 0, 0, time.UTC)},
				{Type: EventWake, StartTime: time.Date(2024, 1, 1, 16, 0, 0, 0, time.UTC)},
			},
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NightSessionDurations(tt.events, testNow)
			assertDurations(t, got, tt.want)
		})
	}
}

func TestNightSessionDurations_LegacyEndTime(t *testing.T) {
	// Old-format events carry their own endTime instead of a wake event.
	events := []Event{
		{
			Type:       EventSleep,
			StartTime:  time.Date(2024, 1, 1, 21, 0, 0, 0, time.UTC),
			EndTime:    timePtr(time.Date(2024, 1, 2, 6, 30, 0, 0, time.UTC)),
			SleepDelay: intPtr(15),
		},
	}
	// 21:15 to 06:30 = 555 minutes
	assertDurations(t, NightSessionDurations(events, testNow), []float64{555})
}

func TestNightSessionDurations_CrossMidnightCorrection(t *testing.T) {
	// endTime logged with the clock time of the next morning but the same
	// calendar date: the negative difference gains a day.
	events := []Event{
		{
			Type:      EventSleep,
			StartTime: time.Date(2024, 1, 1, 21, 0, 0, 0, time.UTC),
			EndTime:   timePtr(time.Date(2024, 1, 1, 6, 30, 0, 0, time.UTC)),
		},
	}
	assertDurations(t, NightSessionDurations(events, testNow), []float64{570})
}

func TestNightSessionDurations_RecentFallback(t *testing.T) {
	now := time.Date(2024, 1, 2, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		start time.Time
		want  []float64
	}{
		{
			name:  "recent unresolved event assumes 10 hours",
			start: time.Date(2024, 1, 1, 20, 30, 0, 0, time.UTC),
			want:  []float64{600},
		},
		{
			name:  "old unresolved event is dropped",
			start: time.Date(2023, 12, 20, 20, 30, 0, 0, time.UTC),
			want:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			events := []Event{{Type: EventSleep, StartTime: tt.start}}
			assertDurations(t, NightSessionDurations(events, now), tt.want)
		})
	}
}

func TestNightSessionDurations_RangeBounds(t *testing.T) {
	tests := []struct {
		name string
		wake time.Time
		want []float64
	}{
		{
			name: "under two hours is rejected",
			wake: time.Date(2024, 1, 1, 21, 30, 0, 0, time.UTC),
			want: nil,
		},
		{
			name: "over sixteen hours is rejected",
			wake: time.Date(2024, 1, 2, 13, 30, 0, 0, time.UTC),
			want: nil,
		},
		{
			name: "two hours exactly is accepted",
			wake: time.Date(2024, 1, 1, 22, 0, 0, 0, time.UTC),
			want: []float64{120},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			events := []Event{
				{Type: EventSleep, StartTime: time.Date(2024, 1, 1, 20, 0, 0, 0, time.UTC)},
				{Type: EventWake, StartTime: tt.wake},
			}
			assertDurations(t, NightSessionDurations(events, testNow), tt.want)
		})
	}
}

func TestNightSessionDurations_DidNotSleep(t *testing.T) {
	// A failed attempt yields no duration through any resolution path:
	// wake pairing, its own endTime, or the recent fallback.
	now := time.Date(2024, 1, 2, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name   string
		events []Event
		want   []float64
	}{
		{
			name: "failed attempt with wake pairing",
			events: []Event{
				{Type: EventSleep, StartTime: time.Date(2024, 1, 1, 20, 0, 0, 0, time.UTC), DidNotSleep: true},
				{Type: EventWake, StartTime: time.Date(2024, 1, 2, 7, 0, 0, 0, time.UTC)},
			},
			want: nil,
		},
		{
			name: "failed attempt with its own endTime",
			events: []Event{
				{
					Type:        EventSleep,
					StartTime:   time.Date(2024, 1, 1, 21, 0, 0, 0, time.UTC),
					EndTime:     timePtr(time.Date(2024, 1, 2, 6, 30, 0, 0, time.UTC)),
					DidNotSleep: true,
				},
			},
			want: nil,
		},
		{
			name: "recent failed attempt gets no fallback",
			events: []Event{
				{Type: EventSleep, StartTime: time.Date(2024, 1, 1, 20, 30, 0, 0, time.UTC), DidNotSleep: true},
			},
			want: nil,
		},
		{
			name: "successful night alongside a failed attempt still counts",
			events: []Event{
				{Type: EventSleep, StartTime: time.Date(2023, 12, 30, 22, 0, 0, 0, time.UTC), DidNotSleep: true},
				{Type: EventSleep, StartTime: time.Date(2024, 1, 1, 20, 0, 0, 0, time.UTC)},
				{Type: EventWake, StartTime: time.Date(2024, 1, 2, 7, 0, 0, 0, time.UTC)},
			},
			want: []float64{660},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assertDurations(t, NightSessionDurations(tt.events, now), tt.want)
		})
	}
}

func TestAvgSleepDurationHours(t *testing.T) {
	// 20:00 with 10 min delay to 07:00 next day: 10h50m = 10.833 hours
	events := []Event{
		{Type: EventSleep, StartTime: time.Date(2024, 1, 1, 20, 0, 0, 0, time.UTC), SleepDelay: intPtr(10)},
		{Type: EventWake, StartTime: time.Date(2024, 1, 2, 7, 0, 0, 0, time.UTC)},
	}
	got := AvgSleepDurationHours(events, testNow)
	if math.Abs(got-10.8333333) > 1e-4 {
		t.Errorf("AvgSleepDurationHours() = %v, want ~10.833", got)
	}

	if got := AvgSleepDurationHours(nil, testNow); got != 0 {
		t.Errorf("AvgSleepDurationHours(nil) = %v, want 0", got)
	}
}

func TestInferredWakeTime(t *testing.T) {
	tests := []struct {
		name   string
		events []Event
		want   string
	}{
		{
			name: "averages explicit end times of nocturnal sleeps",
			events: []Event{
				{Type: EventSleep, StartTime: time.Date(2024, 1, 1, 21, 0, 0, 0, time.UTC), EndTime: timePtr(time.Date(2024, 1, 2, 7, 0, 0, 0, time.UTC))},
				{Type: EventSleep, StartTime: time.Date(2024, 1, 2, 21, 0, 0, 0, time.UTC), EndTime: timePtr(time.Date(2024, 1, 3, 7, 30, 0, 0, time.UTC))},
			},
			want: "07:15",
		},
		{
			name: "standalone wake events are not consulted",
			events: []Event{
				{Type: EventWake, StartTime: time.Date(2024, 1, 2, 7, 0, 0, 0, time.UTC)},
			},
			want: "--:--",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := InferredWakeTime(tt.events); got != tt.want {
				t.Errorf("InferredWakeTime() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestMorningWakeTime(t *testing.T) {
	tests := []struct {
		name   string
		events []Event
		want   string
	}{
		{
			name: "only end times in the morning band count",
			events: []Event{
				// 07:00 is in band, 13:00 is not
				{Type: EventSleep, StartTime: time.Date(2024, 1, 1, 21, 0, 0, 0, time.UTC), EndTime: timePtr(time.Date(2024, 1, 2, 7, 0, 0, 0, time.UTC))},
				{Type: EventSleep, StartTime: time.Date(2024, 1, 2, 21, 0, 0, 0, time.UTC), EndTime: timePtr(time.Date(2024, 1, 3, 13, 0, 0, 0, time.UTC))},
			},
			want: "07:00",
		},
		{
			name: "falls back to standalone wake events in the band",
			events: []Event{
				{Type: EventWake, StartTime: time.Date(2024, 1, 2, 6, 40, 0, 0, time.UTC)},
				{Type: EventWake, StartTime: time.Date(2024, 1, 3, 7, 20, 0, 0, time.UTC)},
			},
			want: "07:00",
		},
		{
			name:   "no qualifying data returns sentinel",
			events: []Event{{Type: EventWake, StartTime: time.Date(2024, 1, 2, 14, 0, 0, 0, time.UTC)}},
			want:   "--:--",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MorningWakeTime(tt.events); got != tt.want {
				t.Errorf("MorningWakeTime() = %q, want %q", got, tt.want)
			}
		})
	}
}

func assertDurations(t *testing.T, got, want []float64) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("got %d durations (%v), want %d (%v)", len(got), got, len(want), want)
	}
	for i := range want {
		if math.Abs(got[i]-want[i]) > 1e-9 {
			t.Errorf("duration[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}
