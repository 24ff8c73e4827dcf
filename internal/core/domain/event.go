package domain

import "strings"

// Event is a user-reported action applied to a prospect.
type Event string

const (
	EventConnectionSent    Event = "connection_sent"
	EventConnected         Event = "connected"
	EventMessageSent       Event = "message_sent"
	EventMarkSent          Event = "mark_sent" // alias of message_sent
	EventMarkReplied       Event = "mark_replied"
	EventMarkConverted     Event = "mark_converted"
	EventMarkNotInterested Event = "mark_not_interested"
	EventRestore           Event = "restore"
)

// Canonical folds aliases onto the event they stand for.
func (e Event) Canonical() Event {
	if e == EventMarkSent {
		return EventMessageSent
	}
	return e
}

// ReplyOutcome is the caller's classification of a reply. It decides
// whether mark_replied lands on replied, converted or not_interested.
type ReplyOutcome string

const (
	OutcomePositive      ReplyOutcome = "positive"
	OutcomeMeetingBooked ReplyOutcome = "meeting_booked"
	OutcomeClosed        ReplyOutcome = "closed"
	OutcomeDeclined      ReplyOutcome = "declined"
	OutcomeNotInterested ReplyOutcome = "not_interested"
	OutcomeUnsubscribe   ReplyOutcome = "unsubscribe"
	OutcomeNeutral       ReplyOutcome = "neutral"
)

// Status returns the prospect status a reply with this outcome resolves to.
func (o ReplyOutcome) Status() Status {
	switch ReplyOutcome(strings.ToLower(strings.TrimSpace(string(o)))) {
	case OutcomePositive, OutcomeMeetingBooked, OutcomeClosed:
		return StatusConverted
	case OutcomeDeclined, OutcomeNotInterested, OutcomeUnsubscribe:
		return StatusNotInterested
	default:
		return StatusReplied
	}
}
