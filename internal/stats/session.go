package stats

import "time"

const (
	// PairingWindowHours bounds the forward search for a wake event that
	// closes a sleep session.
	PairingWindowHours = 18

	// RecentFallbackDays is how recent an unresolved sleep event must be
	// to receive the assumed fallback duration instead of being dropped.
	RecentFallbackDays = 2

	// FallbackSleepMinutes is the assumed duration for a recent sleep
	// event with no wake pairing and no explicit end time (10 hours).
	FallbackSleepMinutes = 600

	// MinNightSessionMinutes and MaxNightSessionMinutes bound accepted
	// nocturnal session durations (2-16 hours). Values outside the range
	// are treated as failed inferences and discarded, not clamped.
	MinNightSessionMinutes = 120
	MaxNightSessionMinutes = 960

	// Morning wake times are only trusted inside this clock band.
	morningBandStartHour = 4
	morningBandEndHour   = 11
)

// NightSessionDurations reconstructs nocturnal sleep sessions from the
// event stream and returns their durations in minutes.
//
// Caregiver logs are frequently incomplete: a wake event may be missing,
// or an old-format event may carry its own end time. For each nocturnal
// sleep start the resolution order is:
//
//  1. a wake event found within the pairing window,
//  2. the event's own explicit end time,
//  3. the assumed fallback duration if the event is recent enough,
//  4. dropped.
//
// A later nocturnal sleep start encountered before any wake event ends
// the search for the current one. Only durations within the accepted
// nocturnal range are returned.
func NightSessionDurations(events []Event, now time.Time) []float64 {
	sorted := make([]Event, 0, len(events))
	for _, e := range events {
		if e.Type == EventNightWaking {
			continue // handled by the night-waking counter
		}
		sorted = append(sorted, e)
	}
	sorted = sortedByStart(sorted)

	var durations []float64
	for i, e := range sorted {
		if !e.IsSleepStart() || !e.IsNocturnal() {
			continue
		}
		if e.DidNotSleep {
			// Failed attempts carry no duration, whatever else was logged.
			continue
		}

		onset := e.StartTime.Add(time.Duration(e.cappedDelay()) * time.Minute)

		minutes, resolved := pairWithWake(sorted, i, onset)
		if !resolved && e.EndTime != nil {
			minutes = sessionMinutes(onset, *e.EndTime)
			resolved = true
		}
		if !resolved {
			if now.Sub(e.StartTime) <= RecentFallbackDays*24*time.Hour {
				// Likely still in progress or awaiting a wake log.
				minutes = FallbackSleepMinutes
				resolved = true
			}
		}

		if resolved && minutes >= MinNightSessionMinutes && minutes <= MaxNightSessionMinutes {
			durations = append(durations, minutes)
		}
	}

	return durations
}

// pairWithWake searches forward from index i for a wake event inside the
// pairing window. The search stops at the first later nocturnal sleep
// start, or when the window is exceeded.
func pairWithWake(sorted []Event, i int, onset time.Time) (float64, bool) {
	start := sorted[i].StartTime
	for j := i + 1; j < len(sorted); j++ {
		next := sorted[j]
		if next.StartTime.Sub(start) > PairingWindowHours*time.Hour {
			return 0, false
		}
		if next.Type == EventWake {
			return sessionMinutes(onset, next.StartTime), true
		}
		if next.IsSleepStart() && next.IsNocturnal() {
			return 0, false
		}
	}
	return 0, false
}

// sessionMinutes computes end minus onset in minutes, correcting a
// negative result by one day for end timestamps logged without the date
// rolled over.
func sessionMinutes(onset, end time.Time) float64 {
	minutes := end.Sub(onset).Minutes()
	if minutes < 0 {
		minutes += minutesPerDay
	}
	return minutes
}

// AvgSleepDurationHours averages the reconstructed nocturnal session
// durations, in hours. Returns 0 when no session could be reconstructed.
func AvgSleepDurationHours(events []Event, now time.Time) float64 {
	durations := NightSessionDurations(events, now)
	if len(durations) == 0 {
		return 0
	}
	total := 0.0
	for _, d := range durations {
		total += d
	}
	return total / float64(len(durations)) / 60.0
}

// InferredWakeTime circular-averages the explicit end times of nocturnal
// sleep events. It deliberately does not reuse the wake-pairing logic:
// when a standalone wake event exists, its own start time is the
// authoritative wake clock time and is handled by the caller instead.
func InferredWakeTime(events []Event) string {
	var ends []time.Time
	for _, e := range events {
		if e.IsSleepStart() && e.IsNocturnal() && e.EndTime != nil {
			ends = append(ends, *e.EndTime)
		}
	}
	return AverageTime(ends)
}

// MorningWakeTime averages wake times restricted to the 04:00-11:00 band.
// Paired nocturnal end times are preferred; standalone wake events in the
// band serve as a fallback when no paired session qualifies.
func MorningWakeTime(events []Event) string {
	var ends []time.Time
	for _, e := range events {
		if e.IsSleepStart() && e.IsNocturnal() && e.EndTime != nil && inMorningBand(*e.EndTime) {
			ends = append(ends, *e.EndTime)
		}
	}
	if len(ends) == 0 {
		for _, e := range events {
			if e.Type == EventWake && inMorningBand(e.StartTime) {
				ends = append(ends, e.StartTime)
			}
		}
	}
	return AverageTime(ends)
}

func inMorningBand(t time.Time) bool {
	return t.Hour() >= morningBandStartHour && t.Hour() < morningBandEndHour
}

// avgWakeTime is the facade's wake-time metric: standalone wake events
// carry the authoritative clock time when present, otherwise the inferred
// average of explicit nocturnal end times is used.
func avgWakeTime(events []Event) string {
	var wakes []time.Time
	for _, e := range events {
		if e.Type == EventWake {
			wakes = append(wakes, e.StartTime)
		}
	}
	if len(wakes) > 0 {
		return AverageTime(wakes)
	}
	return InferredWakeTime(events)
}
