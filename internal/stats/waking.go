package stats

import (
	"regexp"
	"strconv"
	"strings"
)

// Night wakings are logged two ways: as explicit night_waking events, or
// only mentioned in the free-text notes of the surrounding sleep event.
// The note scan is additive and is not deduplicated against explicit
// events; when a caregiver logs both for the same episode it is counted
// twice. That is the documented behavior, kept until product intent says
// otherwise.

// wakingKeywords are the Spanish phrases caregivers use in notes when a
// waking went unlogged.
var wakingKeywords = []string{
	"se despertó",
	"despertó",
	"despierta",
	"lloró",
	"pesadilla",
}

// wakingCountPattern extracts an explicit count like "3 veces" or "1 vez".
var wakingCountPattern = regexp.MustCompile(`(\d+)\s*(?:veces|vez)`)

// CountNightWakings returns the total number of waking episodes: explicit
// night_waking events plus heuristic mentions in sleep-event notes. A note
// with a "<N> veces" pattern contributes N; any other keyword match
// contributes 1.
func CountNightWakings(events []Event) int {
	total := 0
	for _, e := range events {
		if e.Type == EventNightWaking {
			total++
			continue
		}
		if !e.IsSleepStart() || e.Notes == "" {
			continue
		}
		total += wakingsFromNote(e.Notes)
	}
	return total
}

func wakingsFromNote(note string) int {
	lower := strings.ToLower(note)

	matched := false
	for _, kw := range wakingKeywords {
		if strings.Contains(lower, kw) {
			matched = true
			break
		}
	}
	if !matched {
		return 0
	}

	if m := wakingCountPattern.FindStringSubmatch(lower); m != nil {
		if n, err := strconv.Atoi(m[1]); err == nil {
			return n
		}
	}
	return 1
}

// AvgWakeupsPerNight divides the total waking count by the number of
// nocturnal sleep events in the stream; 0 when there are none.
func AvgWakeupsPerNight(events []Event) float64 {
	nights := 0
	for _, e := range events {
		if e.IsSleepStart() && e.IsNocturnal() {
			nights++
		}
	}
	if nights == 0 {
		return 0
	}
	return float64(CountNightWakings(events)) / float64(nights)
}

// AvgNightWakingDurationMinutes averages the duration of night_waking
// events that carry both timestamps; 0 when none qualify.
func AvgNightWakingDurationMinutes(events []Event) float64 {
	total := 0.0
	count := 0
	for _, e := range events {
		if e.Type != EventNightWaking || e.EndTime == nil {
			continue
		}
		total += e.EndTime.Sub(e.StartTime).Minutes()
		count++
	}
	if count == 0 {
		return 0
	}
	return total / float64(count)
}
