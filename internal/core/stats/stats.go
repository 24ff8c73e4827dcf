// Package stats computes campaign dashboards from current prospect state.
// Figures are recomputed on every call and never stored.
package stats

import (
	"time"

	"outreach-engine/internal/core/cadence"
	"outreach-engine/internal/core/domain"
)

// CampaignStats summarises one campaign.
type CampaignStats struct {
	Total              int                   `json:"total"`
	ByStatus           map[domain.Status]int `json:"by_status"`
	Contacted          int                   `json:"contacted"`
	Responded          int                   `json:"responded"`
	ResponseRate       float64               `json:"response_rate"`
	Converted          int                   `json:"converted"`
	TotalPipelineValue int64                 `json:"total_pipeline_value"`
	ToContactToday     int                   `json:"to_contact_today"`
}

// Aggregate walks the campaign's prospects once. pipelineValue is the sum
// of deal values linked to its converted prospects, as reported by the
// deal store. Queued and pending-connection prospects do not count as
// contacted; replied and converted ones count as responses.
func Aggregate(prospects []domain.Prospect, pipelineValue int64, today time.Time) CampaignStats {
	s := CampaignStats{
		Total:              len(prospects),
		ByStatus:           make(map[domain.Status]int, len(domain.Statuses)),
		TotalPipelineValue: pipelineValue,
	}
	for _, st := range domain.Statuses {
		s.ByStatus[st] = 0
	}
	for _, p := range prospects {
		s.ByStatus[p.Status]++
		switch p.Status {
		case domain.StatusQueued, domain.StatusPendingConnection:
		default:
			s.Contacted++
		}
		switch p.Status {
		case domain.StatusReplied, domain.StatusConverted:
			s.Responded++
		}
		if p.Status == domain.StatusConverted {
			s.Converted++
		}
		if cadence.Actionable(p, today) {
			s.ToContactToday++
		}
	}
	s.ResponseRate = float64(s.Responded) / float64(max(1, s.Contacted))
	return s
}
