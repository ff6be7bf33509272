package domain

import (
	"testing"
	"time"
	_ "time/tzdata" // Embed timezone database for CI/minimal containers

	"github.com/google/uuid"

	"github.com/mkowalczyk/lullaby/internal/stats"
)

func TestToStatsEvent(t *testing.T) {
	start := time.Date(2024, 1, 15, 20, 30, 0, 0, time.UTC)
	end := time.Date(2024, 1, 16, 7, 0, 0, 0, time.UTC)
	delay := 15

	e := &SleepEvent{
		ID:             uuid.New(),
		ChildID:        uuid.New(),
		Type:           "sleep",
		StartTime:      start,
		EndTime:        &end,
		SleepDelay:     &delay,
		Notes:          "se despertó 2 veces",
		EmotionalState: "calm",
	}

	got := e.ToStatsEvent(time.UTC)

	if got.Type != stats.EventSleep {
		t.Errorf("Type = %q, want %q", got.Type, stats.EventSleep)
	}
	if !got.StartTime.Equal(start) {
		t.Errorf("StartTime = %v, want %v", got.StartTime, start)
	}
	if got.EndTime == nil || !got.EndTime.Equal(end) {
		t.Errorf("EndTime = %v, want %v", got.EndTime, end)
	}
	if got.SleepDelay == nil || *got.SleepDelay != delay {
		t.Errorf("SleepDelay = %v, want %d", got.SleepDelay, delay)
	}
	if got.Notes != "se despertó 2 veces" {
		t.Errorf("Notes = %q", got.Notes)
	}
	if got.EmotionalState != "calm" {
		t.Errorf("EmotionalState = %q", got.EmotionalState)
	}
}

func TestToStatsEvents_DropsRecordsWithoutStartTime(t *testing.T) {
	start := time.Date(2024, 1, 15, 20, 30, 0, 0, time.UTC)
	events := []SleepEvent{
		{Type: "sleep", StartTime: start},
		{Type: "nap"}, // zero StartTime
		{Type: "wake", StartTime: start.Add(11 * time.Hour)},
	}

	got := ToStatsEvents(events, time.UTC)

	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}
	if got[0].Type != stats.EventSleep || got[1].Type != stats.EventWake {
		t.Errorf("unexpected kept events: %q, %q", got[0].Type, got[1].Type)
	}
}

func TestToStatsEvents_Empty(t *testing.T) {
	if got := ToStatsEvents(nil, time.UTC); len(got) != 0 {
		t.Errorf("len = %d, want 0", len(got))
	}
}

func TestToStatsEvent_ShiftsIntoLocation(t *testing.T) {
	madrid, err := time.LoadLocation("Europe/Madrid")
	if err != nil {
		t.Fatalf("LoadLocation: %v", err)
	}

	// 18:30 UTC on a summer date is 20:30 in Madrid (CEST).
	start := time.Date(2024, 7, 15, 18, 30, 0, 0, time.UTC)
	end := time.Date(2024, 7, 16, 5, 0, 0, 0, time.UTC)
	e := &SleepEvent{Type: "sleep", StartTime: start, EndTime: &end}

	got := e.ToStatsEvent(madrid)

	if got.StartTime.Hour() != 20 || got.StartTime.Minute() != 30 {
		t.Errorf("StartTime clock = %02d:%02d, want 20:30", got.StartTime.Hour(), got.StartTime.Minute())
	}
	if !got.StartTime.Equal(start) {
		t.Errorf("StartTime = %v, not the same instant as %v", got.StartTime, start)
	}
	if got.EndTime == nil || got.EndTime.Hour() != 7 {
		t.Errorf("EndTime clock hour = %v, want 7", got.EndTime)
	}
}
