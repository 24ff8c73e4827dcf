package port

import (
	"context"
	"time"

	"outreach-engine/internal/core/domain"
)

// SearchQuery asks a discovery provider for candidate leads.
type SearchQuery struct {
	Niche    string `json:"niche"`
	Location string `json:"location"`
	Count    int    `json:"count"`
}

// LeadProvider discovers raw candidate leads. Errors are treated as the
// provider being unavailable.
type LeadProvider interface {
	Search(ctx context.Context, q SearchQuery) ([]domain.RawLead, error)
}

// SiteReport is what a single website inspection found.
type SiteReport struct {
	URL         string        `json:"url"`
	Reachable   bool          `json:"reachable"`
	Status      int           `json:"status"`
	Emails      []string      `json:"emails,omitempty"`
	SocialLinks []string      `json:"social_links,omitempty"`
	Issues      []string      `json:"issues,omitempty"`
	Elapsed     time.Duration `json:"elapsed"`
}

// SiteInspector fetches and inspects a lead's website. An unreachable
// site is reported in the SiteReport, not as an error; errors mean the
// inspection itself could not run.
type SiteInspector interface {
	// Inspect may answer from a recently fetched copy of the page.
	Inspect(ctx context.Context, url string) (SiteReport, error)
	// Refetch always goes to the network.
	Refetch(ctx context.Context, url string) (SiteReport, error)
}
