package intake

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"outreach-engine/internal/core/domain"
)

var now = time.Date(2026, 2, 1, 12, 0, 0, 0, time.UTC)

func scorer() Scorer { return NewScorer([]string{"yelp.com", "facebook.com", "clutch.co"}) }

func TestNormalize(t *testing.T) {
	assert.Equal(t, "ann@acme.io", NormalizeEmail("  Ann@ACME.io "))
	assert.Equal(t, "ann@acme.io", NormalizeEmail("mailto:Ann@acme.io?subject=hi"))

	assert.Equal(t, "acme", NormalizeCompany("  ACME,  Inc. "))
	assert.Equal(t, "acme", NormalizeCompany("Acme Studio LLC"))
	assert.Equal(t, "incredible digital", NormalizeCompany("Incredible   Digital"))

	assert.Equal(t, "austin, tx", NormalizeLocation("Austin,  TX, austin"))

	assert.Equal(t, "acme.io", Host("https://www.Acme.io/about"))
	assert.Equal(t, "acme.io", Host("acme.io"))
	assert.Equal(t, "", Host("not a url"))
	assert.Equal(t, "", Host(""))
}

func TestValidEmail(t *testing.T) {
	for _, ok := range []string{"a@b.co", "First.Last+tag@sub.example.com", " hi@agency.studio "} {
		assert.True(t, ValidEmail(ok), ok)
	}
	for _, bad := range []string{"", "plain", "a@b", "a@@b.com", "a..b@c.com", "@acme.io", "a@-acme.io", "a b@acme.io"} {
		assert.False(t, ValidEmail(bad), bad)
	}
}

func TestIndexMatchesEmailThenPlace(t *testing.T) {
	idx := NewIndex()
	idx.AddEmail("Known@Acme.io")
	idx.AddPlace("Bright Agency", "Denver, CO")

	dup, reason := idx.Check(domain.RawLead{Email: "known@acme.io "})
	assert.True(t, dup)
	assert.Equal(t, ReasonDuplicateEmail, reason)

	// an email that does not match is not compared by place
	dup, _ = idx.Check(domain.RawLead{Email: "new@bright.io", AgencyName: "Bright", Location: "denver, co"})
	assert.False(t, dup)

	dup, reason = idx.Check(domain.RawLead{AgencyName: "BRIGHT", Location: "Denver, CO"})
	assert.True(t, dup)
	assert.Equal(t, ReasonDuplicatePlace, reason)

	dup, _ = idx.Check(domain.RawLead{AgencyName: "Bright"})
	assert.False(t, dup, "no location means no place key")
}

func TestEvaluateFlagsSecondCopyInBatch(t *testing.T) {
	idx := NewIndex()
	raw := domain.RawLead{AgencyName: "Pixel Co", Email: "hello@pixel.co", Website: "https://pixel.co"}

	first := Evaluate(raw, idx, scorer(), now)
	second := Evaluate(raw, idx, scorer(), now)

	assert.False(t, first.IsDuplicate)
	assert.True(t, second.IsDuplicate)
	assert.Equal(t, ReasonDuplicateEmail, second.DuplicateReason)
	assert.NotEqual(t, first.ID, second.ID)
	assert.True(t, first.Signals.ValidEmail)
	assert.True(t, second.Signals.DuplicateEmail)
	assert.Equal(t, domain.ConfidenceMedium, first.Confidence)
}

func TestScoreTiers(t *testing.T) {
	s := scorer()
	reachable := &SiteEvidence{Reachable: true, Status: 200}
	cases := []struct {
		name string
		raw  domain.RawLead
		dup  bool
		site *SiteEvidence
		want domain.Confidence
		pos  int
	}{
		{
			name: "all four signals",
			raw:  domain.RawLead{AgencyName: "A", Email: "a@a.io", Website: "a.io", InstagramURL: "https://instagram.com/a"},
			site: reachable, want: domain.ConfidenceHigh, pos: 4,
		},
		{
			name: "three signals",
			raw:  domain.RawLead{AgencyName: "A", Email: "a@a.io", Website: "a.io", LinkedInURL: "https://linkedin.com/company/a"},
			want: domain.ConfidenceHigh, pos: 3,
		},
		{
			name: "duplicate email loses credit",
			raw:  domain.RawLead{AgencyName: "A", Email: "a@a.io", Website: "a.io", LinkedInURL: "https://linkedin.com/company/a"},
			dup:  true, want: domain.ConfidenceMedium, pos: 2,
		},
		{
			name: "aggregator website is not a website",
			raw:  domain.RawLead{AgencyName: "A", Website: "https://www.yelp.com/biz/a"},
			site: reachable, want: domain.ConfidenceLow, pos: 0,
		},
		{
			name: "no email still scored",
			raw:  domain.RawLead{AgencyName: "A", Website: "a.io"},
			want: domain.ConfidenceMedium, pos: 1,
		},
		{
			name: "unreachable site",
			raw:  domain.RawLead{AgencyName: "A", Website: "a.io"},
			site: &SiteEvidence{Reachable: false, Status: 503}, want: domain.ConfidenceMedium, pos: 1,
		},
		{
			name: "nothing",
			raw:  domain.RawLead{AgencyName: "A", Email: "broken"},
			want: domain.ConfidenceLow, pos: 0,
		},
		{
			name: "missing company name",
			raw:  domain.RawLead{Email: "a@a.io", Website: "a.io", InstagramURL: "x"},
			site: reachable, want: domain.ConfidenceNone, pos: 4,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			tier, sig := s.Score(tc.raw, tc.dup, tc.site, now)
			assert.Equal(t, tc.want, tier)
			assert.Equal(t, tc.pos, sig.Positive)
			assert.Equal(t, now, sig.ScoredAt)
		})
	}
}

func TestScorerThresholdsAreConfigurable(t *testing.T) {
	s := Scorer{HighMin: 4, MediumMin: 2}
	assert.Equal(t, domain.ConfidenceMedium, s.Tier(3))
	assert.Equal(t, domain.ConfidenceLow, s.Tier(1))
	assert.Equal(t, domain.ConfidenceHigh, s.Tier(4))
}

func TestRescoreKeepsFlags(t *testing.T) {
	idx := NewIndex()
	lead := Evaluate(domain.RawLead{AgencyName: "Loop", Email: "x@loop.dev", Website: "loop.dev"}, idx, scorer(), now)
	lead.InCampaign = true
	lead.IsDisqualified = true
	require.Equal(t, domain.ConfidenceMedium, lead.Confidence)

	later := now.Add(time.Hour)
	lead.Raw.InstagramURL = "https://instagram.com/loop"
	got := Rescore(lead, &SiteEvidence{Reachable: true, Status: 200}, scorer(), later)

	assert.Equal(t, domain.ConfidenceHigh, got.Confidence)
	assert.True(t, got.Signals.WebsiteReachable)
	assert.True(t, got.InCampaign)
	assert.True(t, got.IsDisqualified)
	require.NotNil(t, got.LastEnrichedAt)
	assert.Equal(t, later, *got.LastEnrichedAt)
}

func TestDuplicatesNeverError(t *testing.T) {
	idx := NewIndex()
	for i := 0; i < 10; i++ {
		raw := domain.RawLead{AgencyName: fmt.Sprintf("Shop %d", i%3), Location: "Reno"}
		lead := Evaluate(raw, idx, scorer(), now)
		assert.Equal(t, i >= 3, lead.IsDuplicate, "lead %d", i)
	}
	assert.Equal(t, 3, idx.Len())
}
