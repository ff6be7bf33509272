package stats

import (
	"sort"
	"time"
)

// MaxNapMinutes is the exclusive upper bound for a nap duration in the
// daily aggregation; longer spans are treated as logging mistakes.
const MaxNapMinutes = 300

// Denominator selects what daily averages are divided by.
type Denominator string

const (
	// DenominatorPeriod divides by the number of days in the requested period.
	DenominatorPeriod Denominator = "period"
	// DenominatorDataDays divides by the number of days that have any
	// recorded sleep, guarding against under-reporting when recent days
	// simply lack logs yet. This is the default.
	DenominatorDataDays Denominator = "dataDays"
)

// DailyOptions configures the daily aggregation.
type DailyOptions struct {
	Denominator Denominator
}

// DaySleep is the per-calendar-day total.
// @Description Sleep minutes recorded for a single calendar day.
type DaySleep struct {
	// Calendar day in YYYY-MM-DD form
	DateKey string `json:"date_key" example:"2024-01-15"`
	// Night sleep minutes attributed to this day
	NightMinutes float64 `json:"night_minutes" example:"625"`
	// Nap minutes attributed to this day
	NapMinutes float64 `json:"nap_minutes" example:"90"`
	// Night plus nap minutes
	TotalMinutes float64 `json:"total_minutes" example:"715"`
}

// DailyAggregatedSleepStats is the day-bucketed output record.
// @Description Per-day sleep totals and averages for a period.
type DailyAggregatedSleepStats struct {
	// Days in the requested period
	PeriodDays int `json:"period_days" example:"7"`
	// Days that have any recorded sleep
	DaysWithData int `json:"days_with_data" example:"5"`
	// Total night minutes in the period
	TotalNightMinutes float64 `json:"total_night_minutes" example:"3125"`
	// Total nap minutes in the period
	TotalNapMinutes float64 `json:"total_nap_minutes" example:"450"`
	// Average night minutes per day (per selected denominator)
	AvgNightMinutesPerDay float64 `json:"avg_night_minutes_per_day" example:"625"`
	// Average nap minutes per day (per selected denominator)
	AvgNapMinutesPerDay float64 `json:"avg_nap_minutes_per_day" example:"90"`
	// Night share of total sleep time (0-100)
	NightSharePercent float64 `json:"night_share_percent" example:"87.4"`
	// Nap share of total sleep time (0-100)
	NapSharePercent float64 `json:"nap_share_percent" example:"12.6"`
	// Per-day totals, sorted by date ascending
	Days []DaySleep `json:"days"`
}

// AggregateDailySleep buckets reconstructed sleep by calendar day so that
// averages are not skewed by days without any data.
//
// Nights are attributed to the day of the wake event, the morning they
// end: "last night's sleep" belongs to today's summary. Naps are
// attributed to their start day.
func AggregateDailySleep(events []Event, periodDays int, opts DailyOptions, now time.Time) DailyAggregatedSleepStats {
	if periodDays < 1 {
		periodDays = 1
	}
	denominator := opts.Denominator
	if denominator == "" {
		denominator = DenominatorDataDays
	}

	cutoff := now.AddDate(0, 0, -periodDays)
	var inPeriod []Event
	for _, e := range events {
		if !e.StartTime.Before(cutoff) && !e.StartTime.After(now) {
			inPeriod = append(inPeriod, e)
		}
	}
	sorted := sortedByStart(inPeriod)

	nightByDay := make(map[string]float64)
	napByDay := make(map[string]float64)
	consumed := make([]bool, len(sorted))

	// Adjacent sleep->wake pairs, attributed to the wake day.
	for i := 0; i < len(sorted)-1; i++ {
		e, next := sorted[i], sorted[i+1]
		if !e.IsSleepStart() || !e.IsNocturnal() || e.DidNotSleep || next.Type != EventWake {
			continue
		}
		onset := e.StartTime.Add(time.Duration(e.cappedDelay()) * time.Minute)
		minutes := sessionMinutes(onset, next.StartTime)
		if minutes >= MinNightSessionMinutes && minutes <= MaxNightSessionMinutes {
			nightByDay[dateKey(next.StartTime)] += minutes
			consumed[i] = true
			consumed[i+1] = true
		}
	}

	// Legacy sleep events with their own end time, attributed to the end day.
	for i, e := range sorted {
		if consumed[i] || !e.IsSleepStart() || !e.IsNocturnal() || e.DidNotSleep || e.EndTime == nil {
			continue
		}
		onset := e.StartTime.Add(time.Duration(e.cappedDelay()) * time.Minute)
		minutes := sessionMinutes(onset, *e.EndTime)
		if minutes >= MinNightSessionMinutes && minutes <= MaxNightSessionMinutes {
			nightByDay[dateKey(*e.EndTime)] += minutes
		}
	}

	// Naps, attributed to the start day.
	for _, e := range sorted {
		if e.Type != EventNap || e.EndTime == nil || e.DidNotSleep {
			continue
		}
		minutes := e.EndTime.Sub(e.StartTime).Minutes()
		if minutes > 0 && minutes < MaxNapMinutes {
			napByDay[dateKey(e.StartTime)] += minutes
		}
	}

	result := DailyAggregatedSleepStats{
		PeriodDays: periodDays,
		Days:       []DaySleep{},
	}

	keys := make(map[string]struct{})
	for k := range nightByDay {
		keys[k] = struct{}{}
	}
	for k := range napByDay {
		keys[k] = struct{}{}
	}
	for k := range keys {
		day := DaySleep{
			DateKey:      k,
			NightMinutes: nightByDay[k],
			NapMinutes:   napByDay[k],
		}
		day.TotalMinutes = day.NightMinutes + day.NapMinutes
		if day.TotalMinutes > 0 {
			result.DaysWithData++
		}
		result.TotalNightMinutes += day.NightMinutes
		result.TotalNapMinutes += day.NapMinutes
		result.Days = append(result.Days, day)
	}
	sort.Slice(result.Days, func(i, j int) bool {
		return result.Days[i].DateKey < result.Days[j].DateKey
	})

	days := result.DaysWithData
	if denominator == DenominatorPeriod {
		days = periodDays
	}
	if days > 0 {
		result.AvgNightMinutesPerDay = result.TotalNightMinutes / float64(days)
		result.AvgNapMinutesPerDay = result.TotalNapMinutes / float64(days)
	}

	if total := result.AvgNightMinutesPerDay + result.AvgNapMinutesPerDay; total > 0 {
		result.NightSharePercent = result.AvgNightMinutesPerDay / total * 100
		result.NapSharePercent = result.AvgNapMinutesPerDay / total * 100
	}

	return result
}

// dateKey formats the local calendar date of a timestamp.
func dateKey(t time.Time) string {
	return t.Format("2006-01-02")
}
