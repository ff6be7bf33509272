// Package stats implements the sleep-event aggregation engine. It
// reconstructs sleep sessions from a sparse stream of caregiver-logged
// events, handles overnight boundary crossing, and derives descriptive
// statistics for a time window.
//
// Every function in this package is pure: callers fetch events from the
// store, pass them in together with a "now" reference, and receive plain
// data back. There is no clock access, no I/O, and no shared state.
package stats

import (
	"sort"
	"time"
)

// EventType is the category of a logged event.
type EventType string

const (
	// EventSleep marks the start of a night sleep session.
	EventSleep EventType = "sleep"
	// EventBedtime is a legacy alias of EventSleep kept for old client data.
	EventBedtime EventType = "bedtime"
	// EventNap is a daytime nap with an explicit duration.
	EventNap EventType = "nap"
	// EventWake marks the child waking up in the morning.
	EventWake EventType = "wake"
	// EventNightWaking is a mid-night waking episode.
	EventNightWaking EventType = "night_waking"
	// EventNightFeeding is a feeding during the night.
	EventNightFeeding EventType = "night_feeding"
	// EventFeeding is a daytime feeding.
	EventFeeding EventType = "feeding"
)

// Event is a single caregiver-logged record. StartTime is always set;
// ingestion drops records without one. All other fields are optional and
// every consumer in this package tolerates their absence.
type Event struct {
	Type           EventType
	StartTime      time.Time
	EndTime        *time.Time
	SleepDelay     *int // minutes to fall asleep after StartTime
	DidNotSleep    bool // failed sleep/nap attempt
	Notes          string
	EmotionalState string
}

// IsSleepStart reports whether the event can open a night sleep session.
func (e Event) IsSleepStart() bool {
	return e.Type == EventSleep || e.Type == EventBedtime
}

// IsNocturnal reports whether the event starts inside the night window.
func (e Event) IsNocturnal() bool {
	return IsNightHour(e.StartTime.Hour())
}

// cappedDelay returns the sleep-onset delay in minutes, clamped to
// MaxSleepDelayMinutes. Negative and missing delays count as zero.
func (e Event) cappedDelay() int {
	if e.SleepDelay == nil || *e.SleepDelay < 0 {
		return 0
	}
	if *e.SleepDelay > MaxSleepDelayMinutes {
		return MaxSleepDelayMinutes
	}
	return *e.SleepDelay
}

// sortedByStart returns a copy of events ordered by StartTime ascending.
func sortedByStart(events []Event) []Event {
	sorted := make([]Event, len(events))
	copy(sorted, events)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].StartTime.Before(sorted[j].StartTime)
	})
	return sorted
}
