package intake

import (
	"strings"
	"time"

	"outreach-engine/internal/core/domain"
)

// SiteEvidence is what a website fetch established about a lead. A nil
// *SiteEvidence means the site has not been checked yet.
type SiteEvidence struct {
	Reachable bool
	Status    int
}

// Scorer turns independent signals into a confidence tier. Each of a
// valid non-duplicate email, an own website, a social profile and a
// reachable website counts as one positive signal.
type Scorer struct {
	HighMin     int
	MediumMin   int
	Aggregators []string
}

// NewScorer returns a scorer with the production thresholds.
func NewScorer(aggregators []string) Scorer {
	return Scorer{HighMin: 3, MediumMin: 1, Aggregators: aggregators}
}

// IsAggregator reports whether raw points at a directory or marketplace
// rather than the lead's own site.
func (s Scorer) IsAggregator(raw string) bool {
	h := Host(raw)
	return h != "" && MatchesDomain(h, s.Aggregators)
}

// Score computes the tier and evidence for raw. A lead without a company
// name is too sparse to score and gets ConfidenceNone.
func (s Scorer) Score(raw domain.RawLead, duplicate bool, site *SiteEvidence, now time.Time) (domain.Confidence, domain.ConfidenceSignals) {
	sig := domain.ConfidenceSignals{ScoredAt: now}

	sig.ValidEmail = ValidEmail(raw.Email)
	sig.DuplicateEmail = duplicate && NormalizeEmail(raw.Email) != ""
	if sig.ValidEmail && !duplicate {
		sig.Positive++
	}

	if host := Host(raw.Website); host != "" {
		sig.AggregatorSite = MatchesDomain(host, s.Aggregators)
		sig.Website = !sig.AggregatorSite
	}
	if sig.Website {
		sig.Positive++
	}

	sig.SocialCount = len(raw.SocialURLs())
	sig.SocialProfile = sig.SocialCount > 0
	if sig.SocialProfile {
		sig.Positive++
	}

	if site != nil {
		sig.WebsiteStatus = site.Status
		sig.WebsiteReachable = site.Reachable && sig.Website
	}
	if sig.WebsiteReachable {
		sig.Positive++
	}

	if strings.TrimSpace(raw.AgencyName) == "" {
		return domain.ConfidenceNone, sig
	}
	return s.Tier(sig.Positive), sig
}

// Tier maps a positive signal count onto a confidence tier.
func (s Scorer) Tier(positive int) domain.Confidence {
	switch {
	case positive >= s.HighMin:
		return domain.ConfidenceHigh
	case positive >= s.MediumMin:
		return domain.ConfidenceMedium
	default:
		return domain.ConfidenceLow
	}
}
