package stats

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

const (
	// NightStartHour is the first evening hour considered nocturnal.
	NightStartHour = 19
	// NightEndHour is the first morning hour no longer considered nocturnal.
	NightEndHour = 6

	// MaxSleepDelayMinutes caps the sleep-onset delay wherever it is
	// applied, guarding against garbage input.
	MaxSleepDelayMinutes = 180

	// TimeSentinel is returned in place of an HH:MM time when no data exists.
	TimeSentinel = "--:--"
	// DelaySentinel is returned in place of a formatted delay when no data exists.
	DelaySentinel = "--"

	minutesPerDay = 24 * 60
)

// IsNightHour reports whether the given clock hour falls in the night
// window 19:00-06:00. Every nocturnal-vs-daytime classification in this
// package goes through this predicate.
func IsNightHour(hour int) bool {
	return hour >= NightStartHour || hour < NightEndHour
}

// AverageTime computes the circular average of the clock times of the
// given timestamps and formats it as HH:MM. Times before NightEndHour are
// shifted by 24h so early-morning values stay contiguous with the
// preceding evening: 23:30 and 00:30 average to 00:00, not 12:00.
// Returns TimeSentinel for empty input.
func AverageTime(times []time.Time) string {
	return averageClockTimes(times, NightEndHour)
}

// averageClockTimes is the single circular-average implementation; the
// boundary hour decides which early clock times are treated as belonging
// to the previous evening.
func averageClockTimes(times []time.Time, boundaryHour int) string {
	if len(times) == 0 {
		return TimeSentinel
	}

	total := 0
	for _, t := range times {
		minutes := t.Hour()*60 + t.Minute()
		if t.Hour() < boundaryHour {
			minutes += minutesPerDay
		}
		total += minutes
	}

	return MinutesToHHMM(total / len(times))
}

// TimeVariation returns the population standard deviation, in minutes, of
// the minute-of-day values of the given timestamps. No circular adjustment
// is applied; bedtimes rarely straddle midnight closely enough to matter.
// Returns 0 for one or fewer inputs.
func TimeVariation(times []time.Time) float64 {
	if len(times) <= 1 {
		return 0
	}

	minutes := make([]float64, len(times))
	sum := 0.0
	for i, t := range times {
		minutes[i] = float64(t.Hour()*60 + t.Minute())
		sum += minutes[i]
	}
	mean := sum / float64(len(minutes))

	sumSquares := 0.0
	for _, m := range minutes {
		diff := m - mean
		sumSquares += diff * diff
	}

	return math.Sqrt(sumSquares / float64(len(minutes)))
}

// MinutesToHHMM converts minutes after midnight to HH:MM, normalizing
// values outside [0, 1440).
func MinutesToHHMM(minutes int) string {
	minutes = ((minutes % minutesPerDay) + minutesPerDay) % minutesPerDay
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// TimeStringToMinutes parses an HH:MM string back into minutes after
// midnight. The sentinel and malformed strings parse to 0.
func TimeStringToMinutes(s string) int {
	if s == TimeSentinel {
		return 0
	}
	parts := strings.SplitN(s, ":", 2)
	if len(parts) != 2 {
		return 0
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0
	}
	return h*60 + m
}

// formatDelayMinutes renders a delay as a short human string: "N min"
// under an hour, "Nh" for whole hours, "Nh Mm" otherwise.
func formatDelayMinutes(minutes int) string {
	if minutes < 60 {
		return fmt.Sprintf("%d min", minutes)
	}
	if minutes%60 == 0 {
		return fmt.Sprintf("%dh", minutes/60)
	}
	return fmt.Sprintf("%dh %dm", minutes/60, minutes%60)
}
