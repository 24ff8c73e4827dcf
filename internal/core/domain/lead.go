package domain

import (
	"time"

	"github.com/google/uuid"
)

// Confidence is a coarse quality tier attached to a stored lead.
type Confidence string

const (
	ConfidenceHigh   Confidence = "high"
	ConfidenceMedium Confidence = "medium"
	ConfidenceLow    Confidence = "low"
	ConfidenceNone   Confidence = "none"
)

// RawLead is a candidate contact as returned by a discovery provider.
type RawLead struct {
	AgencyName   string   `json:"agency_name"`
	ContactName  string   `json:"contact_name"`
	Email        string   `json:"email"`
	Website      string   `json:"website"`
	LinkedInURL  string   `json:"linkedin_url"`
	InstagramURL string   `json:"instagram_url"`
	FacebookURL  string   `json:"facebook_url"`
	TwitterURL   string   `json:"twitter_url"`
	Niche        string   `json:"niche"`
	Location     string   `json:"location"`
	Phone        string   `json:"phone"`
	Issues       []string `json:"website_issues"`
}

// SocialURLs returns the non-empty social profile links of the lead.
func (r RawLead) SocialURLs() []string {
	var out []string
	for _, u := range []string{r.LinkedInURL, r.InstagramURL, r.FacebookURL, r.TwitterURL} {
		if u != "" {
			out = append(out, u)
		}
	}
	return out
}

// ConfidenceSignals is the evidence a confidence tier was derived from.
// It is persisted so re-verification can show what changed.
type ConfidenceSignals struct {
	ValidEmail       bool      `json:"valid_email"`
	DuplicateEmail   bool      `json:"duplicate_email"`
	Website          bool      `json:"website"`
	AggregatorSite   bool      `json:"aggregator_site"`
	SocialProfile    bool      `json:"social_profile"`
	SocialCount      int       `json:"social_count"`
	WebsiteReachable bool      `json:"website_reachable"`
	WebsiteStatus    int       `json:"website_status,omitempty"`
	Positive         int       `json:"positive"`
	ScoredAt         time.Time `json:"scored_at"`
}

// StoredLead is a discovered contact awaiting a decision. InCampaign is
// derived on read from the prospects that reference the lead.
type StoredLead struct {
	ID              uuid.UUID         `json:"id"`
	Raw             RawLead           `json:"raw"`
	NormalizedEmail string            `json:"normalized_email,omitempty"`
	Confidence      Confidence        `json:"confidence"`
	Signals         ConfidenceSignals `json:"confidence_signals"`
	IsDuplicate     bool              `json:"is_duplicate"`
	DuplicateReason string            `json:"duplicate_reason,omitempty"`
	WebsiteIssues   []string          `json:"website_issues,omitempty"`
	InCampaign      bool              `json:"in_campaign"`
	IsDisqualified  bool              `json:"is_disqualified"`
	LastEnrichedAt  *time.Time        `json:"last_enriched_at,omitempty"`
	CreatedAt       time.Time         `json:"created_at"`
	UpdatedAt       time.Time         `json:"updated_at"`
}

// Contact converts the lead into prospect contact fields.
func (l StoredLead) Contact() Contact {
	name := l.Raw.ContactName
	if name == "" {
		name = l.Raw.AgencyName
	}
	return Contact{
		Name:         name,
		Company:      l.Raw.AgencyName,
		Email:        l.NormalizedEmail,
		LinkedInURL:  l.Raw.LinkedInURL,
		Website:      l.Raw.Website,
		Niche:        l.Raw.Niche,
		Location:     l.Raw.Location,
		SocialLinks:  l.Raw.SocialURLs(),
		PhoneNumber:  l.Raw.Phone,
		InstagramURL: l.Raw.InstagramURL,
	}
}
