package usecase

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"outreach-engine/internal/config/configs"
	"outreach-engine/internal/core/domain"
	"outreach-engine/internal/core/intake"
	"outreach-engine/internal/core/port"
	"outreach-engine/internal/core/port/mocks"
)

type leadMocks struct {
	leads     *mocks.MockLeadRepository
	provider  *mocks.MockLeadProvider
	inspector *mocks.MockSiteInspector
}

func newLeads(t *testing.T, enrich configs.Enrich) (*LeadUseCase, leadMocks) {
	m := leadMocks{
		leads:     mocks.NewMockLeadRepository(t),
		provider:  mocks.NewMockLeadProvider(t),
		inspector: mocks.NewMockSiteInspector(t),
	}
	u := NewLeadUseCase(m.leads, m.provider, m.inspector, configs.DefaultTuning(), enrich, discardLogger())
	u.now = func() time.Time { return fixedNow }
	return u, m
}

func TestSearchLeadsSplitsSavedAndDuplicates(t *testing.T) {
	u, m := newLeads(t, configs.Enrich{Concurrency: 2})
	m.leads.EXPECT().KnownContacts(mock.Anything).Return(port.KnownContacts{
		Prospects: []port.ContactKey{{Email: "owner@bright.io"}},
		Leads:     []port.ContactKey{{Email: "hello@saved.io"}, {Name: "Corner Studio", Location: "Austin, TX"}},
	}, nil)
	m.provider.EXPECT().Search(mock.Anything, port.SearchQuery{Niche: "design agency", Location: "Austin", Count: 20}).
		Return([]domain.RawLead{
			{AgencyName: "Saved Co", Email: "Hello@Saved.io"},
			{AgencyName: "Corner Studio LLC", Location: "austin, tx"},
			{AgencyName: "Bright", Email: "owner@bright.io", Website: "https://bright.io"},
			{AgencyName: "Fresh", Email: "team@fresh.io", Website: "https://fresh.io"},
			{AgencyName: "Fresh Again", Email: "team@fresh.io"},
		}, nil)
	m.leads.EXPECT().CreateLead(mock.Anything, mock.Anything).Return(nil).Times(3)

	res, err := u.SearchLeads(context.Background(), port.SearchQuery{Niche: " design agency ", Location: "Austin"})
	require.NoError(t, err)
	assert.Equal(t, 2, res.AlreadySaved)
	assert.Equal(t, 2, res.DuplicatesFound)
	require.Len(t, res.Leads, 3)

	bright, fresh, again := res.Leads[0], res.Leads[1], res.Leads[2]
	assert.True(t, bright.IsDuplicate)
	assert.Equal(t, intake.ReasonDuplicateEmail, bright.DuplicateReason)
	assert.False(t, fresh.IsDuplicate)
	assert.Equal(t, domain.ConfidenceMedium, fresh.Confidence, "reachability is unknown until enrichment")
	assert.True(t, again.IsDuplicate)
}

func TestSearchLeadsMatchesKnownNameAndLocation(t *testing.T) {
	u, m := newLeads(t, configs.Enrich{})
	m.leads.EXPECT().KnownContacts(mock.Anything).Return(port.KnownContacts{
		Prospects: []port.ContactKey{{Email: "owner@acme.io", Name: "Acme", Location: "Reno, NV"}},
		Leads:     []port.ContactKey{{Email: "hi@corner.io", Name: "Corner Studio", Location: "Austin, TX"}},
	}, nil)
	m.provider.EXPECT().Search(mock.Anything, mock.Anything).Return([]domain.RawLead{
		{AgencyName: "Acme Inc.", Location: "reno, nv"},
		{AgencyName: "Corner Studio", Location: "Austin, TX"},
	}, nil)
	m.leads.EXPECT().CreateLead(mock.Anything, mock.Anything).Return(nil).Once()

	res, err := u.SearchLeads(context.Background(), port.SearchQuery{Niche: "web design"})
	require.NoError(t, err)
	assert.Equal(t, 1, res.AlreadySaved)
	assert.Equal(t, 1, res.DuplicatesFound)
	require.Len(t, res.Leads, 1)
	assert.True(t, res.Leads[0].IsDuplicate)
	assert.Equal(t, intake.ReasonDuplicatePlace, res.Leads[0].DuplicateReason)
}

func TestSearchLeadsProviderDown(t *testing.T) {
	u, m := newLeads(t, configs.Enrich{})
	m.leads.EXPECT().KnownContacts(mock.Anything).Return(port.KnownContacts{}, nil)
	m.provider.EXPECT().Search(mock.Anything, mock.Anything).Return(nil, errors.New("dial tcp: refused"))

	res, err := u.SearchLeads(context.Background(), port.SearchQuery{Niche: "seo"})
	require.NoError(t, err)
	assert.Empty(t, res.Leads)
	assert.NotNil(t, res.Leads)
	assert.Contains(t, res.Reason, domain.ErrUpstreamUnavailable.Error())
}

func TestSearchLeadsRequiresNiche(t *testing.T) {
	u, _ := newLeads(t, configs.Enrich{})
	_, err := u.SearchLeads(context.Background(), port.SearchQuery{Location: "Austin"})
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestBulkEnrichContinuesPastFailures(t *testing.T) {
	u, m := newLeads(t, configs.Enrich{Concurrency: 3, LeadTimeout: time.Second})
	ok := domain.StoredLead{ID: uuid.New(), Raw: domain.RawLead{AgencyName: "Ok", Website: "https://ok.io"}}
	bad := domain.StoredLead{ID: uuid.New(), Raw: domain.RawLead{AgencyName: "Bad", Website: "https://bad.io"}}
	bare := domain.StoredLead{ID: uuid.New(), Raw: domain.RawLead{AgencyName: "Bare"}}

	m.leads.EXPECT().ListLeads(mock.Anything, port.LeadFilter{Available: true, HasWebsite: true}).
		Return([]domain.StoredLead{ok, bad, bare}, nil)
	m.leads.EXPECT().KnownContacts(mock.Anything).Return(port.KnownContacts{}, nil)
	m.inspector.EXPECT().Inspect(mock.Anything, "https://ok.io").Return(port.SiteReport{
		URL:         "https://ok.io",
		Reachable:   true,
		Status:      200,
		Emails:      []string{"mailto:Hello@ok.io"},
		SocialLinks: []string{"https://www.linkedin.com/company/ok"},
		Issues:      []string{"missing_meta_description"},
	}, nil)
	m.inspector.EXPECT().Inspect(mock.Anything, "https://bad.io").Return(port.SiteReport{}, errors.New("timeout"))
	m.leads.EXPECT().
		UpdateLeadEnrichment(mock.Anything, mock.MatchedBy(func(l domain.StoredLead) bool { return l.ID == ok.ID })).
		Run(func(args mock.Arguments) {
			l := args.Get(1).(domain.StoredLead)
			assert.Equal(t, "hello@ok.io", l.NormalizedEmail)
			assert.Equal(t, "https://www.linkedin.com/company/ok", l.Raw.LinkedInURL)
			assert.Equal(t, []string{"missing_meta_description"}, l.WebsiteIssues)
			assert.True(t, l.Signals.WebsiteReachable)
			assert.NotNil(t, l.LastEnrichedAt)
		}).
		Return(nil)

	res, err := u.BulkEnrich(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, 1, res.Enriched)
	assert.Equal(t, 1, res.EmailsFound)
	assert.Equal(t, 1, res.Skipped)
	assert.Equal(t, 1, res.Failed)

	require.Len(t, res.Results, 3)
	assert.Equal(t, EnrichOK, res.Results[0].Status)
	assert.Equal(t, domain.ConfidenceHigh, res.Results[0].Confidence)
	assert.Equal(t, "hello@ok.io", res.Results[0].EmailFound)
	assert.Equal(t, EnrichFailed, res.Results[1].Status)
	assert.Equal(t, EnrichSkipped, res.Results[2].Status)
}

func TestBulkEnrichRespectsConcurrencyLimit(t *testing.T) {
	const limit = 2
	u, m := newLeads(t, configs.Enrich{Concurrency: limit})

	var leads []domain.StoredLead
	var ids []uuid.UUID
	for i := 0; i < 8; i++ {
		l := domain.StoredLead{ID: uuid.New(), Raw: domain.RawLead{AgencyName: "A", Website: "https://a.io"}}
		leads = append(leads, l)
		ids = append(ids, l.ID)
	}
	m.leads.EXPECT().ListLeads(mock.Anything, port.LeadFilter{IDs: ids}).Return(leads, nil)
	m.leads.EXPECT().KnownContacts(mock.Anything).Return(port.KnownContacts{}, nil)

	var inFlight, peak atomic.Int32
	m.inspector.EXPECT().Inspect(mock.Anything, "https://a.io").
		Run(func(args mock.Arguments) {
			n := inFlight.Add(1)
			for {
				p := peak.Load()
				if n <= p || peak.CompareAndSwap(p, n) {
					break
				}
			}
			time.Sleep(5 * time.Millisecond)
			inFlight.Add(-1)
		}).
		Return(port.SiteReport{Reachable: true, Status: 200}, nil)
	m.leads.EXPECT().UpdateLeadEnrichment(mock.Anything, mock.Anything).Return(nil)

	res, err := u.BulkEnrich(context.Background(), ids)
	require.NoError(t, err)
	assert.Equal(t, 8, res.Enriched)
	assert.LessOrEqual(t, peak.Load(), int32(limit))
}

func TestBulkEnrichFlagsScrapedEmailAlreadyKnown(t *testing.T) {
	u, m := newLeads(t, configs.Enrich{Concurrency: 1})
	taken := domain.StoredLead{ID: uuid.New(), Raw: domain.RawLead{AgencyName: "Acme", Website: "https://acme.io"}}
	first := domain.StoredLead{ID: uuid.New(), Raw: domain.RawLead{AgencyName: "Twin", Website: "https://twin.io"}}
	second := domain.StoredLead{ID: uuid.New(), Raw: domain.RawLead{AgencyName: "Twin Again", Website: "https://twin-again.io"}}
	site := func(email string) port.SiteReport {
		return port.SiteReport{Reachable: true, Status: 200, Emails: []string{email}}
	}

	m.leads.EXPECT().ListLeads(mock.Anything, port.LeadFilter{IDs: []uuid.UUID{taken.ID, first.ID, second.ID}}).
		Return([]domain.StoredLead{taken, first, second}, nil)
	m.leads.EXPECT().KnownContacts(mock.Anything).Return(port.KnownContacts{
		Prospects: []port.ContactKey{{Email: "owner@acme.io", Name: "Acme"}},
	}, nil)
	m.inspector.EXPECT().Inspect(mock.Anything, "https://acme.io").Return(site("Owner@Acme.io"), nil)
	m.inspector.EXPECT().Inspect(mock.Anything, "https://twin.io").Return(site("team@twin.io"), nil)
	m.inspector.EXPECT().Inspect(mock.Anything, "https://twin-again.io").Return(site("team@twin.io"), nil)

	var mu sync.Mutex
	stored := map[uuid.UUID]domain.StoredLead{}
	m.leads.EXPECT().UpdateLeadEnrichment(mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			l := args.Get(1).(domain.StoredLead)
			mu.Lock()
			stored[l.ID] = l
			mu.Unlock()
		}).
		Return(nil)

	res, err := u.BulkEnrich(context.Background(), []uuid.UUID{taken.ID, first.ID, second.ID})
	require.NoError(t, err)
	assert.Equal(t, 3, res.Enriched)

	got := stored[taken.ID]
	assert.True(t, got.IsDuplicate)
	assert.Equal(t, intake.ReasonDuplicateEmail, got.DuplicateReason)
	assert.True(t, got.Signals.DuplicateEmail)
	assert.Equal(t, domain.ConfidenceMedium, got.Confidence)

	assert.False(t, stored[first.ID].IsDuplicate)
	assert.Equal(t, domain.ConfidenceHigh, stored[first.ID].Confidence)
	assert.True(t, stored[second.ID].IsDuplicate, "a second lead scraping the same address in one run")
}

func TestBulkEnrichReportsUnknownIDs(t *testing.T) {
	u, m := newLeads(t, configs.Enrich{Concurrency: 2})
	known := domain.StoredLead{ID: uuid.New(), Raw: domain.RawLead{AgencyName: "Bare"}}
	missing := uuid.New()
	m.leads.EXPECT().ListLeads(mock.Anything, port.LeadFilter{IDs: []uuid.UUID{known.ID, missing}}).
		Return([]domain.StoredLead{known}, nil)
	m.leads.EXPECT().KnownContacts(mock.Anything).Return(port.KnownContacts{}, nil)

	res, err := u.BulkEnrich(context.Background(), []uuid.UUID{known.ID, missing})
	require.NoError(t, err)
	assert.Equal(t, 2, res.Skipped)
	require.Len(t, res.Results, 2)
	assert.Equal(t, port.EnrichItem{LeadID: missing, Status: EnrichSkipped, Error: SkipNotFound}, res.Results[1])
}

func TestBulkEnrichOnlyUnknownIDs(t *testing.T) {
	u, m := newLeads(t, configs.Enrich{})
	missing := uuid.New()
	m.leads.EXPECT().ListLeads(mock.Anything, port.LeadFilter{IDs: []uuid.UUID{missing}}).Return(nil, nil)

	res, err := u.BulkEnrich(context.Background(), []uuid.UUID{missing})
	require.NoError(t, err)
	assert.Equal(t, 1, res.Skipped)
	assert.Zero(t, res.Enriched+res.Failed)
	require.Len(t, res.Results, 1)
	assert.Equal(t, missing, res.Results[0].LeadID)
}

func TestReverifyKeepsFlags(t *testing.T) {
	u, m := newLeads(t, configs.Enrich{})
	l := domain.StoredLead{
		ID:             uuid.New(),
		Raw:            domain.RawLead{AgencyName: "Kept", Email: "a@kept.io", Website: "https://kept.io"},
		InCampaign:     true,
		IsDisqualified: true,
	}
	m.leads.EXPECT().GetLead(mock.Anything, l.ID).Return(l, nil)
	m.leads.EXPECT().KnownContacts(mock.Anything).Return(port.KnownContacts{}, nil)
	// reverification must not be answered from the page cache
	m.inspector.EXPECT().Refetch(mock.Anything, "https://kept.io").Return(port.SiteReport{Reachable: false, Status: 503}, nil)
	m.leads.EXPECT().UpdateLeadEnrichment(mock.Anything, mock.Anything).Return(nil)

	got, err := u.Reverify(context.Background(), l.ID)
	require.NoError(t, err)
	assert.True(t, got.InCampaign)
	assert.True(t, got.IsDisqualified)
	assert.False(t, got.Signals.WebsiteReachable)
	assert.Equal(t, 503, got.Signals.WebsiteStatus)
	assert.Equal(t, domain.ConfidenceMedium, got.Confidence)
}

func TestReverifyWithoutWebsite(t *testing.T) {
	u, m := newLeads(t, configs.Enrich{})
	l := domain.StoredLead{ID: uuid.New(), Raw: domain.RawLead{AgencyName: "Nosite"}}
	m.leads.EXPECT().GetLead(mock.Anything, l.ID).Return(l, nil)

	_, err := u.Reverify(context.Background(), l.ID)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestDeleteLeadsCountsFailures(t *testing.T) {
	u, m := newLeads(t, configs.Enrich{})
	a, b, c := uuid.New(), uuid.New(), uuid.New()
	m.leads.EXPECT().DeleteLead(mock.Anything, a).Return(nil)
	m.leads.EXPECT().DeleteLead(mock.Anything, b).Return(domain.NewNotFound("lead", b))
	m.leads.EXPECT().DeleteLead(mock.Anything, c).Return(errors.New("boom"))

	res, err := u.DeleteLeads(context.Background(), []uuid.UUID{a, b, c})
	require.NoError(t, err)
	assert.Equal(t, 1, res.Succeeded)
	assert.Equal(t, 2, res.Failed)
	assert.Equal(t, []port.SkipReason{
		{Ref: b.String(), Reason: SkipNotFound},
		{Ref: c.String(), Reason: SkipWriteFailed},
	}, res.Reasons)
}

func TestDisqualifyAndRestore(t *testing.T) {
	u, m := newLeads(t, configs.Enrich{})
	id := uuid.New()
	m.leads.EXPECT().SetDisqualified(mock.Anything, id, true).Return(domain.StoredLead{ID: id, IsDisqualified: true}, nil)
	m.leads.EXPECT().SetDisqualified(mock.Anything, id, false).Return(domain.StoredLead{ID: id}, nil)

	l, err := u.Disqualify(context.Background(), id)
	require.NoError(t, err)
	assert.True(t, l.IsDisqualified)

	l, err = u.Restore(context.Background(), id)
	require.NoError(t, err)
	assert.False(t, l.IsDisqualified)
}
