// Package intake scores and deduplicates externally discovered leads
// before they are stored. Nothing here returns an error: a lead always
// comes out with a tier and a duplicate flag, possibly low or true.
package intake

import (
	"time"

	"github.com/google/uuid"

	"outreach-engine/internal/core/domain"
)

// Evaluate normalises raw, checks it against idx, scores it and returns
// the lead ready to store. The lead is added to idx afterwards so a repeat
// later in the same batch is flagged.
func Evaluate(raw domain.RawLead, idx *Index, scorer Scorer, now time.Time) domain.StoredLead {
	raw.AgencyName = CleanText(raw.AgencyName)
	raw.ContactName = CleanText(raw.ContactName)
	raw.Location = CleanText(raw.Location)
	raw.Email = NormalizeEmail(raw.Email)

	dup, reason := idx.Check(raw)
	idx.Add(raw)

	tier, sig := scorer.Score(raw, dup, nil, now)
	return domain.StoredLead{
		ID:              uuid.New(),
		Raw:             raw,
		NormalizedEmail: raw.Email,
		Confidence:      tier,
		Signals:         sig,
		IsDuplicate:     dup,
		DuplicateReason: reason,
		WebsiteIssues:   raw.Issues,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
}

// Rescore re-applies scoring to an existing lead with fresh site
// evidence. Duplicate, campaign and disqualification flags are kept.
func Rescore(l domain.StoredLead, site *SiteEvidence, scorer Scorer, now time.Time) domain.StoredLead {
	l.Raw.Email = NormalizeEmail(l.Raw.Email)
	l.NormalizedEmail = l.Raw.Email
	l.Confidence, l.Signals = scorer.Score(l.Raw, l.IsDuplicate, site, now)
	t := now
	l.LastEnrichedAt = &t
	l.UpdatedAt = now
	return l
}
