// Package guard holds the confirmation gate in front of closing a deal as
// lost, and the fixed-step follow-up snooze.
package guard

import (
	"time"

	"outreach-engine/internal/core/domain"
)

// Decision is the outcome of a stage change check. When NeedsConfirmation
// is set the change was not applied; the caller either logs another
// follow-up or retries with confirmation.
type Decision struct {
	Allowed           bool `json:"allowed"`
	NeedsConfirmation bool `json:"needs_confirmation"`
	FollowupCount     int  `json:"followup_count"`
	Remaining         int  `json:"remaining"`
}

// Guard applies the follow-up threshold and snooze step.
type Guard struct {
	MinFollowups int
	SnoozeDays   int
}

// New returns a guard with the production defaults.
func New() Guard {
	return Guard{MinFollowups: 5, SnoozeDays: 3}
}

// Check decides whether deal may move to stage. Only closed_lost is gated,
// and only while the deal has fewer than MinFollowups follow-ups; an
// explicit confirmation always passes.
func (g Guard) Check(deal domain.Deal, stage domain.Stage, confirmed bool) Decision {
	d := Decision{FollowupCount: deal.FollowupCount}
	if stage != domain.StageClosedLost || deal.FollowupCount >= g.MinFollowups {
		d.Allowed = true
		return d
	}
	d.Remaining = g.MinFollowups - deal.FollowupCount
	if confirmed {
		d.Allowed = true
		return d
	}
	d.NeedsConfirmation = true
	return d
}

// Snooze pushes the deal's follow-up date forward by SnoozeDays. A deal
// without a date is snoozed from today.
func (g Guard) Snooze(deal domain.Deal, today time.Time) domain.Deal {
	return g.shift(deal, today, g.SnoozeDays)
}

// Unsnooze moves the follow-up date back by SnoozeDays.
func (g Guard) Unsnooze(deal domain.Deal, today time.Time) domain.Deal {
	return g.shift(deal, today, -g.SnoozeDays)
}

func (g Guard) shift(deal domain.Deal, today time.Time, days int) domain.Deal {
	base := today
	if deal.FollowUpDate != nil {
		base = *deal.FollowUpDate
	}
	next := domain.AddDays(base, days)
	deal.FollowUpDate = &next
	return deal
}
