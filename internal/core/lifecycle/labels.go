package lifecycle

import (
	"fmt"

	"outreach-engine/internal/core/domain"
)

// DefaultLabeledFollowups is how many follow-ups get a numbered label
// before steps fall back to a generic "step n".
const DefaultLabeledFollowups = 3

// StepLabel describes what the prospect's current step means. Step 2 of an
// active sequence is the first message, steps 3 through 2+labeledFollowups
// are follow-ups 1..labeledFollowups and anything later is "step n".
func StepLabel(p domain.Prospect, labeledFollowups int) string {
	n := p.CurrentStep
	switch p.Status {
	case domain.StatusQueued:
		if n <= 1 {
			return "send first touch"
		}
		return fmt.Sprintf("resume at step %d", n)
	case domain.StatusPendingConnection:
		return "awaiting acceptance"
	case domain.StatusConnected:
		if n <= 2 {
			return "send first message"
		}
	case domain.StatusInSequence:
		switch {
		case n <= 2:
			return "first message"
		case n-2 <= labeledFollowups:
			return fmt.Sprintf("follow-up %d", n-2)
		}
	case domain.StatusReplied:
		return "replied"
	case domain.StatusConverted:
		return "converted"
	case domain.StatusNotInterested:
		return "not interested"
	}
	return fmt.Sprintf("step %d", n)
}
