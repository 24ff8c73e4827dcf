package lifecycle

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"outreach-engine/internal/core/domain"
)

func TestStepLabel(t *testing.T) {
	cases := []struct {
		status domain.Status
		step   int
		want   string
	}{
		{domain.StatusQueued, 1, "send first touch"},
		{domain.StatusPendingConnection, 2, "awaiting acceptance"},
		{domain.StatusConnected, 2, "send first message"},
		{domain.StatusConnected, 1, "send first message"},
		{domain.StatusConnected, 4, "step 4"},
		{domain.StatusInSequence, 2, "first message"},
		{domain.StatusInSequence, 3, "follow-up 1"},
		{domain.StatusInSequence, 4, "follow-up 2"},
		{domain.StatusInSequence, 5, "follow-up 3"},
		{domain.StatusInSequence, 6, "step 6"},
		{domain.StatusInSequence, 11, "step 11"},
		{domain.StatusReplied, 3, "replied"},
		{domain.StatusConverted, 3, "converted"},
		{domain.StatusNotInterested, 3, "not interested"},
	}
	for _, tc := range cases {
		p := domain.Prospect{Status: tc.status, CurrentStep: tc.step}
		assert.Equal(t, tc.want, StepLabel(p, DefaultLabeledFollowups), "%s step %d", tc.status, tc.step)
	}

	p := domain.Prospect{Status: domain.StatusInSequence, CurrentStep: 6}
	assert.Equal(t, "follow-up 4", StepLabel(p, 4))
}
