// Package lifecycle owns prospect status transitions. Every legal move is
// listed in a single table keyed by channel and event; anything not in the
// table is rejected with a *domain.TransitionError.
package lifecycle

import (
	"fmt"
	"slices"
	"time"

	"outreach-engine/internal/core/cadence"
	"outreach-engine/internal/core/domain"
)

// Request is an event reported against a prospect. Outcome is only read
// for mark_replied.
type Request struct {
	Event   domain.Event
	Outcome domain.ReplyOutcome
}

type key struct {
	channel domain.Channel
	event   domain.Event
}

type edge struct {
	from []domain.Status
	to   domain.Status
}

var active = []domain.Status{
	domain.StatusQueued,
	domain.StatusPendingConnection,
	domain.StatusConnected,
	domain.StatusInSequence,
	domain.StatusReplied,
}

var table = buildTable()

func buildTable() map[key]edge {
	t := map[key]edge{
		{domain.ChannelLinkedIn, domain.EventConnectionSent}: {
			from: []domain.Status{domain.StatusQueued},
			to:   domain.StatusPendingConnection,
		},
		{domain.ChannelLinkedIn, domain.EventConnected}: {
			from: []domain.Status{domain.StatusPendingConnection},
			to:   domain.StatusConnected,
		},
		{domain.ChannelLinkedIn, domain.EventMessageSent}: {
			from: []domain.Status{domain.StatusConnected, domain.StatusInSequence},
			to:   domain.StatusInSequence,
		},
		{domain.ChannelEmail, domain.EventMessageSent}: {
			from: []domain.Status{domain.StatusQueued, domain.StatusInSequence},
			to:   domain.StatusInSequence,
		},
	}
	for _, ch := range []domain.Channel{domain.ChannelEmail, domain.ChannelLinkedIn} {
		// the reply outcome may redirect "to" at apply time
		t[key{ch, domain.EventMarkReplied}] = edge{
			from: []domain.Status{domain.StatusInSequence},
			to:   domain.StatusReplied,
		}
		t[key{ch, domain.EventMarkConverted}] = edge{
			from: []domain.Status{domain.StatusReplied},
			to:   domain.StatusConverted,
		}
		t[key{ch, domain.EventMarkNotInterested}] = edge{
			from: active,
			to:   domain.StatusNotInterested,
		}
		t[key{ch, domain.EventRestore}] = edge{
			from: []domain.Status{domain.StatusNotInterested},
			to:   domain.StatusQueued,
		}
	}
	return t
}

// Legal reports whether ev may be applied to a prospect on channel in
// status from.
func Legal(channel domain.Channel, from domain.Status, ev domain.Event) bool {
	e, ok := table[key{channel, ev.Canonical()}]
	return ok && slices.Contains(e.from, from)
}

// Events returns the events currently legal for p.
func Events(p domain.Prospect) []domain.Event {
	var out []domain.Event
	for _, ev := range []domain.Event{
		domain.EventConnectionSent,
		domain.EventConnected,
		domain.EventMessageSent,
		domain.EventMarkReplied,
		domain.EventMarkConverted,
		domain.EventMarkNotInterested,
		domain.EventRestore,
	} {
		if Legal(p.Channel, p.Status, ev) {
			out = append(out, ev)
		}
	}
	return out
}

// Apply runs req against p and returns the updated prospect. p is not
// modified. Scheduling fields are stamped by the cadence package using the
// campaign's step delay and dates derived in loc.
func Apply(p domain.Prospect, c domain.Campaign, req Request, now time.Time, loc *time.Location) (domain.Prospect, error) {
	ev := req.Event.Canonical()
	e, ok := table[key{p.Channel, ev}]
	if !ok {
		reason := "unknown event"
		if _, other := table[key{otherChannel(p.Channel), ev}]; other {
			reason = fmt.Sprintf("not available on %s campaigns", p.Channel)
		}
		return p, &domain.TransitionError{Event: req.Event, From: p.Status, Reason: reason}
	}
	if !slices.Contains(e.from, p.Status) {
		return p, &domain.TransitionError{
			Event:  req.Event,
			From:   p.Status,
			Reason: fmt.Sprintf("legal only from %v", e.from),
		}
	}

	next := p
	next.Status = e.to
	switch ev {
	case domain.EventConnectionSent, domain.EventMessageSent:
		next.CurrentStep++
		t := now
		next.LastContactedAt = &t
	case domain.EventMarkReplied:
		next.Status = req.Outcome.Status()
	}
	next.NextActionDate = cadence.NextActionDate(next, c, ev, loc)
	next.Version++
	next.UpdatedAt = now
	return next, nil
}

func otherChannel(c domain.Channel) domain.Channel {
	if c == domain.ChannelEmail {
		return domain.ChannelLinkedIn
	}
	return domain.ChannelEmail
}
