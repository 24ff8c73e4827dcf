package domain

import (
	"time"

	"github.com/google/uuid"
)

// Status is a prospect's position in its outreach sequence.
type Status string

const (
	StatusQueued            Status = "queued"
	StatusPendingConnection Status = "pending_connection"
	StatusConnected         Status = "connected"
	StatusInSequence        Status = "in_sequence"
	StatusReplied           Status = "replied"
	StatusConverted         Status = "converted"
	StatusNotInterested     Status = "not_interested"
)

// Statuses lists every status in sequence order.
var Statuses = []Status{
	StatusQueued,
	StatusPendingConnection,
	StatusConnected,
	StatusInSequence,
	StatusReplied,
	StatusConverted,
	StatusNotInterested,
}

// Contact holds the reachable details of a person or agency.
type Contact struct {
	Name         string   `json:"name"`
	Company      string   `json:"company"`
	Email        string   `json:"email,omitempty"`
	LinkedInURL  string   `json:"linkedin_url,omitempty"`
	Website      string   `json:"website,omitempty"`
	Niche        string   `json:"niche,omitempty"`
	Location     string   `json:"location,omitempty"`
	SocialLinks  []string `json:"social_links,omitempty"`
	PhoneNumber  string   `json:"phone,omitempty"`
	InstagramURL string   `json:"instagram_url,omitempty"`
}

// Prospect is a contact being walked through a campaign's sequence.
// CurrentStep never decreases and Version increases on every write.
type Prospect struct {
	ID              uuid.UUID  `json:"id"`
	CampaignID      uuid.UUID  `json:"campaign_id"`
	LeadID          *uuid.UUID `json:"lead_id,omitempty"`
	Channel         Channel    `json:"channel"`
	Status          Status     `json:"status"`
	CurrentStep     int        `json:"current_step"`
	LastContactedAt *time.Time `json:"last_contacted_at,omitempty"`
	NextActionDate  *time.Time `json:"next_action_date,omitempty"`
	Contact
	WebsiteIssues []string  `json:"website_issues,omitempty"`
	Notes         string    `json:"notes,omitempty"`
	Version       int64     `json:"version"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// NewProspect returns a queued prospect at step one.
func NewProspect(c Campaign, contact Contact, now time.Time) Prospect {
	return Prospect{
		ID:          uuid.New(),
		CampaignID:  c.ID,
		Channel:     c.Channel,
		Status:      StatusQueued,
		CurrentStep: 1,
		Contact:     contact,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}
