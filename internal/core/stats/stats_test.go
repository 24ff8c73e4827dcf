package stats

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"outreach-engine/internal/core/domain"
)

func TestAggregate(t *testing.T) {
	today := time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)
	due := today
	later := today.AddDate(0, 0, 2)
	prospects := []domain.Prospect{
		{Status: domain.StatusQueued},
		{Status: domain.StatusQueued},
		{Status: domain.StatusPendingConnection, NextActionDate: &due},
		{Status: domain.StatusConnected},
		{Status: domain.StatusInSequence, NextActionDate: &due},
		{Status: domain.StatusInSequence, NextActionDate: &later},
		{Status: domain.StatusReplied},
		{Status: domain.StatusConverted},
		{Status: domain.StatusNotInterested},
	}

	got := Aggregate(prospects, 125000, today)

	assert.Equal(t, 9, got.Total)
	assert.Equal(t, 2, got.ByStatus[domain.StatusQueued])
	assert.Equal(t, 2, got.ByStatus[domain.StatusInSequence])
	assert.Equal(t, 1, got.ByStatus[domain.StatusNotInterested])
	assert.Equal(t, 6, got.Contacted)
	assert.Equal(t, 2, got.Responded)
	assert.InDelta(t, 2.0/6.0, got.ResponseRate, 1e-9)
	assert.Equal(t, 1, got.Converted)
	assert.Equal(t, int64(125000), got.TotalPipelineValue)
	assert.Equal(t, 4, got.ToContactToday)
}

func TestAggregateEmptyCampaign(t *testing.T) {
	got := Aggregate(nil, 0, time.Now())
	assert.Zero(t, got.Total)
	assert.Zero(t, got.ResponseRate)
	assert.Len(t, got.ByStatus, len(domain.Statuses))
}

func TestResponseRateWithoutContactsUsesOneAsDenominator(t *testing.T) {
	// replied prospects are always contacted, so a zero denominator only
	// happens when nothing was sent
	got := Aggregate([]domain.Prospect{{Status: domain.StatusQueued}}, 0, time.Now())
	assert.Zero(t, got.Contacted)
	assert.Zero(t, got.ResponseRate)
}
