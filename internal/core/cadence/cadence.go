// Package cadence decides when a prospect next needs attention and which
// prospects are actionable on a given day. Nothing here is cached; the
// queue is recomputed from current state on every read.
package cadence

import (
	"bytes"
	"slices"
	"time"

	"outreach-engine/internal/core/domain"
)

// NextActionDate returns the scheduling date for p right after ev was
// applied to it. Sends schedule the next step StepDelayDays after the
// contact day; every other event takes the prospect off the cadence. A
// send past the campaign's last step also clears the date.
func NextActionDate(p domain.Prospect, c domain.Campaign, ev domain.Event, loc *time.Location) *time.Time {
	switch ev.Canonical() {
	case domain.EventConnectionSent, domain.EventMessageSent:
	default:
		return nil
	}
	if p.LastContactedAt == nil {
		return nil
	}
	if c.Cadence.StepCount > 0 && p.CurrentStep > c.Cadence.StepCount {
		return nil
	}
	delay := c.Cadence.StepDelayDays
	if delay < 1 {
		delay = 1
	}
	d := domain.AddDays(domain.DateOf(*p.LastContactedAt, loc), delay)
	return &d
}

// Actionable reports whether p belongs in the today queue. Queued and
// connected prospects are always actionable; in-sequence prospects only
// once their next action date has arrived. Pending connections and
// finished prospects never are.
func Actionable(p domain.Prospect, today time.Time) bool {
	switch p.Status {
	case domain.StatusQueued, domain.StatusConnected:
		return true
	case domain.StatusInSequence:
		return p.NextActionDate != nil && !p.NextActionDate.After(today)
	default:
		return false
	}
}

// TodayQueue filters prospects down to those actionable on today and
// orders them by next action date, never-scheduled first, then by id.
func TodayQueue(prospects []domain.Prospect, today time.Time) []domain.Prospect {
	out := make([]domain.Prospect, 0, len(prospects))
	for _, p := range prospects {
		if Actionable(p, today) {
			out = append(out, p)
		}
	}
	slices.SortFunc(out, compare)
	return out
}

func compare(a, b domain.Prospect) int {
	switch {
	case a.NextActionDate == nil && b.NextActionDate != nil:
		return -1
	case a.NextActionDate != nil && b.NextActionDate == nil:
		return 1
	case a.NextActionDate != nil && b.NextActionDate != nil:
		if c := a.NextActionDate.Compare(*b.NextActionDate); c != 0 {
			return c
		}
	}
	return bytes.Compare(a.ID[:], b.ID[:])
}
