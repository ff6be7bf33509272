package domain

import (
	"time"

	"github.com/google/uuid"
)

type Child struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Name      string    `gorm:"type:varchar(100);not null" json:"name"`
	BirthDate time.Time `gorm:"not null" json:"birth_date"`
	Timezone  string    `gorm:"type:varchar(64);not null;default:'UTC'" json:"timezone"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (Child) TableName() string {
	return "children"
}

// Location resolves the child's IANA timezone, falling back to UTC for
// unset or unresolvable values. Event timestamps are stored in UTC and
// shifted into this location before any clock-hour classification.
func (c *Child) Location() *time.Location {
	if c.Timezone == "" {
		return time.UTC
	}
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

// AgeMonths returns the child's age in whole months at the given time.
func (c *Child) AgeMonths(now time.Time) int {
	months := (now.Year()-c.BirthDate.Year())*12 + int(now.Month()) - int(c.BirthDate.Month())
	if now.Day() < c.BirthDate.Day() {
		months--
	}
	if months < 0 {
		return 0
	}
	return months
}

// CreateChildRequest is the request body for registering a child.
// @Description Request payload for registering a child profile.
type CreateChildRequest struct {
	// Child's display name
	Name string `json:"name" validate:"required,max=100" example:"Ana"`
	// Birth date in RFC3339 format
	BirthDate time.Time `json:"birth_date" validate:"required" example:"2023-06-01T00:00:00Z"`
	// IANA timezone for local time interpretation
	Timezone string `json:"timezone" validate:"required,timezone" example:"Europe/Madrid"`
}

// ChildResponse is the response body for child endpoints.
// @Description Child profile record.
type ChildResponse struct {
	ID        uuid.UUID `json:"id" example:"550e8400-e29b-41d4-a716-446655440000"`
	Name      string    `json:"name" example:"Ana"`
	BirthDate time.Time `json:"birth_date" example:"2023-06-01T00:00:00Z"`
	Timezone  string    `json:"timezone" example:"Europe/Madrid"`
	CreatedAt time.Time `json:"created_at" example:"2024-01-16T07:05:00Z"`
}

func (c *Child) ToResponse() ChildResponse {
	return ChildResponse{
		ID:        c.ID,
		Name:      c.Name,
		BirthDate: c.BirthDate,
		Timezone:  c.Timezone,
		CreatedAt: c.CreatedAt,
	}
}
