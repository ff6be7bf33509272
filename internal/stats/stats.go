package stats

import (
	"math"
	"time"
)

// RecentEventsWindowDays is the window for the recent-events count field.
const RecentEventsWindowDays = 7

// Options configures ProcessSleepStatistics.
type Options struct {
	// StatsFrom, when set, discards events starting before the cutoff.
	// Used by plan-generation contexts wanting "since this plan started"
	// windows.
	StatsFrom *time.Time
}

// ProcessedSleepStats is the flat statistics record produced by the
// facade. All values degrade to sentinels or zeros when no data exists;
// downstream rendering never needs null checks beyond sentinel comparison.
// @Description Aggregated sleep statistics for a child.
type ProcessedSleepStats struct {
	// Average nocturnal sleep duration in hours
	AvgSleepDurationHours float64 `json:"avg_sleep_duration_hours" example:"10.4"`
	// Average nap duration in hours
	AvgNapDurationHours float64 `json:"avg_nap_duration_hours" example:"1.5"`
	// Average bedtime (HH:MM, or the sentinel when no data)
	AvgBedtime string `json:"avg_bedtime" example:"20:30"`
	// Average actual-sleep time, bedtime plus onset delay (HH:MM)
	AvgSleepTime string `json:"avg_sleep_time" example:"20:45"`
	// Average wake time (HH:MM)
	AvgWakeTime string `json:"avg_wake_time" example:"07:10"`
	// Bedtime standard deviation in minutes
	BedtimeVariationMinutes float64 `json:"bedtime_variation_minutes" example:"18.5"`
	// Average bedtime-to-asleep delay, humanized ("--" when no data)
	AvgBedtimeToSleepDelay string `json:"avg_bedtime_to_sleep_delay" example:"15 min"`
	// Average nap sleep-onset delay, humanized
	AvgNapSleepDelay string `json:"avg_nap_sleep_delay" example:"10 min"`
	// Total night-waking episodes (explicit events plus note mentions)
	TotalNightWakings int `json:"total_night_wakings" example:"4"`
	// Night wakings per nocturnal sleep event
	AvgNightWakingsPerNight float64 `json:"avg_night_wakings_per_night" example:"0.6"`
	// Average night-waking duration in minutes
	AvgNightWakingDurationMinutes float64 `json:"avg_night_waking_duration_minutes" example:"12"`
	// Total sleep hours per elapsed day
	TotalSleepHoursPerDay float64 `json:"total_sleep_hours_per_day" example:"11.8"`
	// Total events considered
	TotalEvents int `json:"total_events" example:"42"`
	// Events in the last 7 days
	RecentEvents int `json:"recent_events" example:"12"`
	// Sleep/bedtime events considered
	SleepEvents int `json:"sleep_events" example:"14"`
	// Nap events considered
	NapEvents int `json:"nap_events" example:"20"`
	// Minute duplicate of AvgSleepDurationHours for numeric consumers
	AvgSleepDurationMinutes float64 `json:"avg_sleep_duration_minutes" example:"625"`
	// Minute duplicate of AvgNapDurationHours for numeric consumers
	AvgNapDurationMinutes float64 `json:"avg_nap_duration_minutes" example:"90"`
	// Most frequent emotional state (empty when none recorded)
	DominantEmotionalState string `json:"dominant_emotional_state" example:"calm"`
	// Frequency table of emotional states
	EmotionalStates map[string]int `json:"emotional_states"`
}

// ProcessSleepStatistics is the single entry point combining session
// reconstruction, nap aggregation, night-waking counting and time
// averages into one output record. It is a pure function of
// (events, opts, now); the same input always yields identical output.
func ProcessSleepStatistics(events []Event, opts Options, now time.Time) ProcessedSleepStats {
	if opts.StatsFrom != nil {
		var kept []Event
		for _, e := range events {
			if !e.StartTime.Before(*opts.StatsFrom) {
				kept = append(kept, e)
			}
		}
		events = kept
	}
	sorted := sortedByStart(events)

	result := ProcessedSleepStats{
		AvgBedtime:             TimeSentinel,
		AvgSleepTime:           TimeSentinel,
		AvgWakeTime:            TimeSentinel,
		AvgBedtimeToSleepDelay: DelaySentinel,
		AvgNapSleepDelay:       DelaySentinel,
		EmotionalStates:        map[string]int{},
	}
	result.TotalEvents = len(sorted)

	recentCutoff := now.AddDate(0, 0, -RecentEventsWindowDays)
	var bedtimes, sleepTimes []time.Time
	for _, e := range sorted {
		if !e.StartTime.Before(recentCutoff) {
			result.RecentEvents++
		}
		switch {
		case e.IsSleepStart():
			result.SleepEvents++
			bedtimes = append(bedtimes, e.StartTime)
			sleepTimes = append(sleepTimes, e.StartTime.Add(time.Duration(e.cappedDelay())*time.Minute))
		case e.Type == EventNap:
			result.NapEvents++
		}
	}

	result.AvgSleepDurationHours = AvgSleepDurationHours(sorted, now)
	result.AvgSleepDurationMinutes = result.AvgSleepDurationHours * 60
	result.AvgNapDurationHours = AvgNapDurationHours(sorted)
	result.AvgNapDurationMinutes = result.AvgNapDurationHours * 60

	result.AvgBedtime = AverageTime(bedtimes)
	result.AvgSleepTime = AverageTime(sleepTimes)
	result.AvgWakeTime = avgWakeTime(sorted)
	result.BedtimeVariationMinutes = TimeVariation(bedtimes)
	result.AvgBedtimeToSleepDelay = avgBedtimeToSleepDelay(sorted)
	result.AvgNapSleepDelay = AvgNapSleepDelay(sorted)

	result.TotalNightWakings = CountNightWakings(sorted)
	result.AvgNightWakingsPerNight = AvgWakeupsPerNight(sorted)
	result.AvgNightWakingDurationMinutes = AvgNightWakingDurationMinutes(sorted)

	result.TotalSleepHoursPerDay = totalSleepHoursPerDay(sorted, now)

	result.DominantEmotionalState, result.EmotionalStates = emotionalStateTable(sorted)

	return result
}

// totalSleepHoursPerDay divides all reconstructed night and nap minutes
// by the elapsed days between the earliest event and now. This is the
// "per elapsed day of the whole period" average; the day-bucketed
// aggregation offers the days-with-data alternative.
func totalSleepHoursPerDay(sorted []Event, now time.Time) float64 {
	if len(sorted) == 0 {
		return 0
	}

	totalMinutes := 0.0
	for _, d := range NightSessionDurations(sorted, now) {
		totalMinutes += d
	}
	for _, e := range sorted {
		if e.Type == EventNap && e.EndTime != nil && !e.DidNotSleep {
			totalMinutes += e.EndTime.Sub(e.StartTime).Minutes()
		}
	}

	days := int(math.Ceil(now.Sub(sorted[0].StartTime).Hours() / 24))
	if days < 1 {
		days = 1
	}
	return totalMinutes / 60 / float64(days)
}

// emotionalStateTable builds the frequency table and picks the dominant
// state: the first state reaching the maximum count, in the order states
// were first observed.
func emotionalStateTable(sorted []Event) (string, map[string]int) {
	counts := map[string]int{}
	var order []string
	for _, e := range sorted {
		if e.EmotionalState == "" {
			continue
		}
		if _, seen := counts[e.EmotionalState]; !seen {
			order = append(order, e.EmotionalState)
		}
		counts[e.EmotionalState]++
	}

	dominant := ""
	best := 0
	for _, state := range order {
		if counts[state] > best {
			dominant = state
			best = counts[state]
		}
	}
	return dominant, counts
}
