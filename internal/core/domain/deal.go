package domain

import (
	"time"

	"github.com/google/uuid"
)

// Stage is a deal's position in the sales pipeline.
type Stage string

const (
	StageLead        Stage = "lead"
	StageQualified   Stage = "qualified"
	StageProposal    Stage = "proposal"
	StageNegotiation Stage = "negotiation"
	StageClosedWon   Stage = "closed_won"
	StageClosedLost  Stage = "closed_lost"
)

// Valid reports whether s is a known pipeline stage.
func (s Stage) Valid() bool {
	switch s {
	case StageLead, StageQualified, StageProposal, StageNegotiation, StageClosedWon, StageClosedLost:
		return true
	}
	return false
}

// Deal is a pipeline opportunity, optionally linked to a converted prospect.
// Value is stored in integer currency units (e.g. cents).
type Deal struct {
	ID            uuid.UUID  `json:"id"`
	ProspectID    *uuid.UUID `json:"prospect_id,omitempty"`
	Title         string     `json:"title"`
	Value         int64      `json:"value"`
	Stage         Stage      `json:"stage"`
	FollowupCount int        `json:"followup_count"`
	FollowUpDate  *time.Time `json:"follow_up_date,omitempty"`
	UpdatedAt     time.Time  `json:"updated_at"`
}
