package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/mkowalczyk/lullaby/internal/stats"
)

// SleepEvent is a single caregiver-logged record: sleep, nap, wake,
// night waking or feeding. Only StartTime is mandatory; everything else
// depends on what the caregiver managed to log.
type SleepEvent struct {
	ID              uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	ChildID         uuid.UUID  `gorm:"type:uuid;not null;index:idx_sleep_events_child_start" json:"child_id"`
	Type            string     `gorm:"type:varchar(20);not null" json:"type"`
	StartTime       time.Time  `gorm:"not null;index:idx_sleep_events_child_start,sort:desc" json:"start_time"`
	EndTime         *time.Time `json:"end_time,omitempty"`
	SleepDelay      *int       `gorm:"type:smallint" json:"sleep_delay,omitempty"`
	DidNotSleep     bool       `gorm:"not null;default:false" json:"did_not_sleep"`
	Notes           string     `gorm:"type:text" json:"notes,omitempty"`
	EmotionalState  string     `gorm:"type:varchar(40)" json:"emotional_state,omitempty"`
	ClientRequestID *string    `gorm:"type:varchar(255);uniqueIndex:idx_child_client_request,where:client_request_id IS NOT NULL" json:"client_request_id,omitempty"`
	CreatedAt       time.Time  `gorm:"autoCreateTime" json:"created_at"`

	// Associations
	Child Child `gorm:"foreignKey:ChildID;constraint:OnDelete:CASCADE" json:"-"`
}

func (SleepEvent) TableName() string {
	return "sleep_events"
}

// ToStatsEvent converts the stored record into the statistics engine's
// event shape. Field ambiguity is resolved here, once, at the boundary;
// the engine never sees a record without a start time. Timestamps are
// shifted into loc so the engine's night-hour and calendar-day logic
// sees the child's clock, not UTC.
func (e *SleepEvent) ToStatsEvent(loc *time.Location) stats.Event {
	var end *time.Time
	if e.EndTime != nil {
		t := e.EndTime.In(loc)
		end = &t
	}
	return stats.Event{
		Type:           stats.EventType(e.Type),
		StartTime:      e.StartTime.In(loc),
		EndTime:        end,
		SleepDelay:     e.SleepDelay,
		DidNotSleep:    e.DidNotSleep,
		Notes:          e.Notes,
		EmotionalState: e.EmotionalState,
	}
}

// ToStatsEvents converts a batch of stored events, dropping any without a
// start time (pre-migration rows may lack one).
func ToStatsEvents(events []SleepEvent, loc *time.Location) []stats.Event {
	out := make([]stats.Event, 0, len(events))
	for i := range events {
		if events[i].StartTime.IsZero() {
			continue
		}
		out = append(out, events[i].ToStatsEvent(loc))
	}
	return out
}

// CreateSleepEventRequest is the request body for logging an event.
// @Description Request payload for recording a sleep-related event.
type CreateSleepEventRequest struct {
	// Event type
	Type string `json:"type" validate:"required,oneof=sleep bedtime nap wake night_waking night_feeding feeding" example:"sleep" enums:"sleep,bedtime,nap,wake,night_waking,night_feeding,feeding"`
	// Event start time in RFC3339 format
	StartTime time.Time `json:"start_time" validate:"required" example:"2024-01-15T20:30:00Z"`
	// Optional end time (must be after start_time)
	EndTime *time.Time `json:"end_time,omitempty" validate:"omitempty,gtfield=StartTime" example:"2024-01-16T07:00:00Z"`
	// Minutes to fall asleep after start_time
	SleepDelay *int `json:"sleep_delay,omitempty" validate:"omitempty,min=0" example:"15" minimum:"0"`
	// True when the child did not fall asleep during this attempt
	DidNotSleep bool `json:"did_not_sleep,omitempty" example:"false"`
	// Free-text caregiver notes
	Notes string `json:"notes,omitempty" validate:"omitempty,max=2000" example:"se despertó 2 veces"`
	// Emotional state tag
	EmotionalState string `json:"emotional_state,omitempty" validate:"omitempty,max=40" example:"calm"`
	// Optional client-generated ID for idempotent requests (max 255 chars)
	ClientRequestID *string `json:"client_request_id,omitempty" validate:"omitempty,max=255" example:"client-uuid-12345"`
}

// UpdateSleepEventRequest is the request body for amending an event.
// @Description Partial update payload; only provided fields change.
type UpdateSleepEventRequest struct {
	Type           *string    `json:"type,omitempty" validate:"omitempty,oneof=sleep bedtime nap wake night_waking night_feeding feeding"`
	StartTime      *time.Time `json:"start_time,omitempty"`
	EndTime        *time.Time `json:"end_time,omitempty"`
	SleepDelay     *int       `json:"sleep_delay,omitempty" validate:"omitempty,min=0"`
	DidNotSleep    *bool      `json:"did_not_sleep,omitempty"`
	Notes          *string    `json:"notes,omitempty" validate:"omitempty,max=2000"`
	EmotionalState *string    `json:"emotional_state,omitempty" validate:"omitempty,max=40"`
}

// SleepEventResponse is the response body for event endpoints.
// @Description Sleep-related event record.
type SleepEventResponse struct {
	ID              uuid.UUID  `json:"id" example:"550e8400-e29b-41d4-a716-446655440000"`
	ChildID         uuid.UUID  `json:"child_id" example:"660e8400-e29b-41d4-a716-446655440001"`
	Type            string     `json:"type" example:"sleep"`
	StartTime       time.Time  `json:"start_time" example:"2024-01-15T20:30:00Z"`
	EndTime         *time.Time `json:"end_time,omitempty" example:"2024-01-16T07:00:00Z"`
	SleepDelay      *int       `json:"sleep_delay,omitempty" example:"15"`
	DidNotSleep     bool       `json:"did_not_sleep" example:"false"`
	Notes           string     `json:"notes,omitempty" example:"se despertó 2 veces"`
	EmotionalState  string     `json:"emotional_state,omitempty" example:"calm"`
	ClientRequestID *string    `json:"client_request_id,omitempty" example:"client-uuid-12345"`
	CreatedAt       time.Time  `json:"created_at" example:"2024-01-16T07:05:00Z"`
}

func (e *SleepEvent) ToResponse() SleepEventResponse {
	return SleepEventResponse{
		ID:              e.ID,
		ChildID:         e.ChildID,
		Type:            e.Type,
		StartTime:       e.StartTime,
		EndTime:         e.EndTime,
		SleepDelay:      e.SleepDelay,
		DidNotSleep:     e.DidNotSleep,
		Notes:           e.Notes,
		EmotionalState:  e.EmotionalState,
		ClientRequestID: e.ClientRequestID,
		CreatedAt:       e.CreatedAt,
	}
}

// SleepEventListResponse is the response body for listing events.
// @Description Paginated list of sleep events.
type SleepEventListResponse struct {
	// Array of event records
	Data []SleepEventResponse `json:"data"`
	// Pagination metadata
	Pagination PaginationResponse `json:"pagination"`
}

// PaginationResponse contains pagination metadata.
// @Description Cursor-based pagination info.
type PaginationResponse struct {
	// Cursor for fetching the next page (empty if no more pages)
	NextCursor string `json:"next_cursor,omitempty" example:"eyJpZCI6IjU1MGU4NDAwLWUyOWItNDFkNC1hNzE2LTQ0NjY1NTQ0MDAwMCJ9"`
	// True if more results are available
	HasMore bool `json:"has_more" example:"true"`
}

// SleepEventFilter contains filter parameters for listing events
type SleepEventFilter struct {
	From   *time.Time
	To     *time.Time
	Limit  int
	Cursor string
}
