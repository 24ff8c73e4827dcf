package domain

import (
	"time"

	"github.com/google/uuid"
)

// Channel is the medium a campaign reaches its prospects through.
type Channel string

const (
	ChannelEmail    Channel = "email"
	ChannelLinkedIn Channel = "linkedin"
)

// Valid reports whether c is a known channel.
func (c Channel) Valid() bool {
	return c == ChannelEmail || c == ChannelLinkedIn
}

// Cadence configures the spacing and length of a campaign's sequence.
type Cadence struct {
	StepDelayDays int `json:"step_delay_days"`
	StepCount     int `json:"step_count"`
}

// Campaign represents a named, channel-typed outreach sequence. Deleting a
// campaign removes its prospects.
type Campaign struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Channel   Channel   `json:"channel"`
	Cadence   Cadence   `json:"cadence"`
	CreatedAt time.Time `json:"created_at"`
}
