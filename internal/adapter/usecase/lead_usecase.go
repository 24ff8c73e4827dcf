package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"outreach-engine/internal/config/configs"
	"outreach-engine/internal/core/domain"
	"outreach-engine/internal/core/intake"
	"outreach-engine/internal/core/port"
)

// Per-lead enrichment statuses.
const (
	EnrichOK      = "enriched"
	EnrichSkipped = "skipped"
	EnrichFailed  = "failed"
)

const (
	defaultSearchCount = 20
	maxSearchCount     = 100
)

// LeadUseCase implements port.LeadUseCase.
type LeadUseCase struct {
	leads     port.LeadRepository
	provider  port.LeadProvider
	inspector port.SiteInspector
	scorer    intake.Scorer
	logger    *slog.Logger

	concurrency int
	leadTimeout time.Duration
	now         func() time.Time
}

// NewLeadUseCase wires lead discovery and enrichment. Thresholds come from
// tuning; enrichment parallelism and the per-lead timeout from enrich.
func NewLeadUseCase(
	leads port.LeadRepository,
	provider port.LeadProvider,
	inspector port.SiteInspector,
	tuning configs.Tuning,
	enrich configs.Enrich,
	logger *slog.Logger,
) *LeadUseCase {
	scorer := intake.NewScorer(tuning.AggregatorDomains)
	scorer.HighMin = tuning.Confidence.HighMinSignals
	scorer.MediumMin = tuning.Confidence.MediumMinSignals

	concurrency := enrich.Concurrency
	if concurrency < 1 {
		concurrency = 1
	}
	return &LeadUseCase{
		leads:       leads,
		provider:    provider,
		inspector:   inspector,
		scorer:      scorer,
		logger:      logger,
		concurrency: concurrency,
		leadTimeout: enrich.LeadTimeout,
		now:         time.Now,
	}
}

// indexOf records both keys of every known contact, as Index.Add does for
// leads of the current batch.
func indexOf(keys []port.ContactKey, idx *intake.Index) *intake.Index {
	for _, k := range keys {
		idx.AddEmail(k.Email)
		idx.AddPlace(k.Name, k.Location)
	}
	return idx
}

// emailClaims tracks the addresses already held by prospects and leads
// during an enrichment run. Goroutines of one run share it.
type emailClaims struct {
	mu  sync.Mutex
	idx *intake.Index
}

func newEmailClaims(known port.KnownContacts) *emailClaims {
	idx := intake.NewIndex()
	for _, keys := range [][]port.ContactKey{known.Prospects, known.Leads} {
		for _, k := range keys {
			idx.AddEmail(k.Email)
		}
	}
	return &emailClaims{idx: idx}
}

// claim reports whether email was already known and records it otherwise.
func (c *emailClaims) claim(email string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if dup, _ := c.idx.Check(domain.RawLead{Email: email}); dup {
		return true
	}
	c.idx.AddEmail(email)
	return false
}

// SearchLeads asks the provider for leads, drops the ones already saved,
// flags duplicates of prospects and of each other, and stores the rest.
func (u *LeadUseCase) SearchLeads(ctx context.Context, q port.SearchQuery) (port.SearchResult, error) {
	res := port.SearchResult{Leads: []domain.StoredLead{}}
	q.Niche = intake.CleanText(q.Niche)
	q.Location = intake.CleanText(q.Location)
	if q.Niche == "" {
		return res, domain.NewValidation("niche", "is required")
	}
	switch {
	case q.Count <= 0:
		q.Count = defaultSearchCount
	case q.Count > maxSearchCount:
		q.Count = maxSearchCount
	}

	known, err := u.leads.KnownContacts(ctx)
	if err != nil {
		return res, fmt.Errorf("known contacts: %w", err)
	}
	saved := indexOf(known.Leads, intake.NewIndex())
	all := indexOf(known.Prospects, indexOf(known.Leads, intake.NewIndex()))

	raws, err := u.provider.Search(ctx, q)
	if err != nil {
		u.logger.Warn("lead provider unavailable", slog.String("niche", q.Niche), slog.Any("error", err))
		res.Reason = fmt.Sprintf("%s: %v", domain.ErrUpstreamUnavailable, err)
		return res, nil
	}

	now := u.now().UTC()
	for _, raw := range raws {
		if dup, _ := saved.Check(raw); dup {
			res.AlreadySaved++
			continue
		}
		lead := intake.Evaluate(raw, all, u.scorer, now)
		if lead.IsDuplicate {
			res.DuplicatesFound++
		}
		if err = u.leads.CreateLead(ctx, lead); err != nil {
			u.logger.Warn("store lead failed", slog.String("agency", lead.Raw.AgencyName), slog.Any("error", err))
			res.Failed++
			continue
		}
		res.Leads = append(res.Leads, lead)
	}

	u.logger.Info("lead search finished",
		slog.String("niche", q.Niche),
		slog.String("location", q.Location),
		slog.Int("found", len(raws)),
		slog.Int("stored", len(res.Leads)),
		slog.Int("already_saved", res.AlreadySaved),
		slog.Int("duplicates", res.DuplicatesFound),
	)
	return res, nil
}

// ListLeads returns stored leads matching f.
func (u *LeadUseCase) ListLeads(ctx context.Context, f port.LeadFilter) ([]domain.StoredLead, error) {
	return u.leads.ListLeads(ctx, f)
}

// BulkEnrich inspects lead websites with bounded parallelism. A failing
// lead is recorded in the results and never stops the run.
func (u *LeadUseCase) BulkEnrich(ctx context.Context, ids []uuid.UUID) (port.EnrichResult, error) {
	f := port.LeadFilter{IDs: ids}
	if len(ids) == 0 {
		f = port.LeadFilter{Available: true, HasWebsite: true}
	}
	leads, err := u.leads.ListLeads(ctx, f)
	if err != nil {
		return port.EnrichResult{}, err
	}

	items := make([]port.EnrichItem, len(leads), len(leads)+len(ids))
	if len(leads) > 0 {
		known, err := u.leads.KnownContacts(ctx)
		if err != nil {
			return port.EnrichResult{}, fmt.Errorf("known contacts: %w", err)
		}
		claims := newEmailClaims(known)

		var g errgroup.Group
		g.SetLimit(u.concurrency)
		for i, l := range leads {
			g.Go(func() error {
				items[i] = u.enrichOne(ctx, l, claims)
				return nil
			})
		}
		_ = g.Wait()
	}
	items = append(items, missingLeads(ids, leads)...)

	res := port.EnrichResult{Results: items}
	for _, it := range items {
		switch it.Status {
		case EnrichOK:
			res.Enriched++
			if it.EmailFound != "" {
				res.EmailsFound++
			}
		case EnrichSkipped:
			res.Skipped++
		default:
			res.Failed++
		}
	}
	u.logger.Info("bulk enrichment finished",
		slog.Int("leads", len(leads)),
		slog.Int("enriched", res.Enriched),
		slog.Int("emails_found", res.EmailsFound),
		slog.Int("skipped", res.Skipped),
		slog.Int("failed", res.Failed),
	)
	return res, nil
}

// missingLeads reports the requested ids the store did not return.
func missingLeads(ids []uuid.UUID, found []domain.StoredLead) []port.EnrichItem {
	have := make(map[uuid.UUID]bool, len(found))
	for _, l := range found {
		have[l.ID] = true
	}
	var out []port.EnrichItem
	for _, id := range ids {
		if have[id] {
			continue
		}
		have[id] = true
		out = append(out, port.EnrichItem{LeadID: id, Status: EnrichSkipped, Error: SkipNotFound})
	}
	return out
}

func (u *LeadUseCase) enrichOne(ctx context.Context, l domain.StoredLead, claims *emailClaims) port.EnrichItem {
	item := port.EnrichItem{LeadID: l.ID}
	if l.IsDisqualified || strings.TrimSpace(l.Raw.Website) == "" {
		item.Status = EnrichSkipped
		item.Confidence = l.Confidence
		return item
	}
	if u.leadTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, u.leadTimeout)
		defer cancel()
	}

	hadEmail := l.NormalizedEmail != ""
	updated, err := u.inspectAndStore(ctx, l, u.inspector.Inspect, claims)
	if err != nil {
		u.logger.Warn("enrich lead failed", slog.String("lead_id", l.ID.String()), slog.Any("error", err))
		item.Status = EnrichFailed
		item.Error = err.Error()
		return item
	}
	item.Status = EnrichOK
	item.Confidence = updated.Confidence
	if !hadEmail && updated.NormalizedEmail != "" {
		item.EmailFound = updated.NormalizedEmail
	}
	return item
}

// inspectAndStore fetches the lead's site with inspect, merges what it
// found into the lead, rescores it and writes the result. An address found
// on the site that another prospect or lead already holds marks the lead
// as a duplicate.
func (u *LeadUseCase) inspectAndStore(
	ctx context.Context,
	l domain.StoredLead,
	inspect func(context.Context, string) (port.SiteReport, error),
	claims *emailClaims,
) (domain.StoredLead, error) {
	rep, err := inspect(ctx, l.Raw.Website)
	if err != nil {
		return l, fmt.Errorf("inspect %s: %w", l.Raw.Website, err)
	}
	if found := mergeReport(&l, rep); found != "" && claims.claim(found) {
		l.IsDuplicate = true
		l.DuplicateReason = intake.ReasonDuplicateEmail
	}
	l = intake.Rescore(l, &intake.SiteEvidence{Reachable: rep.Reachable, Status: rep.Status}, u.scorer, u.now().UTC())
	if err = u.leads.UpdateLeadEnrichment(ctx, l); err != nil {
		return l, fmt.Errorf("store enrichment: %w", err)
	}
	return l, nil
}

// mergeReport copies contact details found on the site into empty lead
// fields. Existing values win. It returns the address it filled in, if any.
func mergeReport(l *domain.StoredLead, rep port.SiteReport) string {
	var found string
	if intake.NormalizeEmail(l.Raw.Email) == "" {
		for _, e := range rep.Emails {
			if e = intake.NormalizeEmail(e); intake.ValidEmail(e) {
				l.Raw.Email = e
				found = e
				break
			}
		}
	}
	for _, link := range rep.SocialLinks {
		host := intake.Host(link)
		switch {
		case l.Raw.LinkedInURL == "" && intake.MatchesDomain(host, []string{"linkedin.com"}):
			l.Raw.LinkedInURL = link
		case l.Raw.InstagramURL == "" && intake.MatchesDomain(host, []string{"instagram.com"}):
			l.Raw.InstagramURL = link
		case l.Raw.FacebookURL == "" && intake.MatchesDomain(host, []string{"facebook.com"}):
			l.Raw.FacebookURL = link
		case l.Raw.TwitterURL == "" && intake.MatchesDomain(host, []string{"twitter.com", "x.com"}):
			l.Raw.TwitterURL = link
		}
	}
	l.WebsiteIssues = rep.Issues
	l.Raw.Issues = rep.Issues
	return found
}

// Reverify re-inspects one lead from a fresh fetch, bypassing the page
// cache. Campaign membership and disqualification are left as they are.
func (u *LeadUseCase) Reverify(ctx context.Context, id uuid.UUID) (domain.StoredLead, error) {
	l, err := u.leads.GetLead(ctx, id)
	if err != nil {
		return domain.StoredLead{}, err
	}
	if strings.TrimSpace(l.Raw.Website) == "" {
		return domain.StoredLead{}, domain.NewValidation("website", "lead has no website to verify")
	}
	known, err := u.leads.KnownContacts(ctx)
	if err != nil {
		return domain.StoredLead{}, fmt.Errorf("known contacts: %w", err)
	}
	if u.leadTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, u.leadTimeout)
		defer cancel()
	}
	updated, err := u.inspectAndStore(ctx, l, u.inspector.Refetch, newEmailClaims(known))
	if err != nil {
		return domain.StoredLead{}, fmt.Errorf("%w: %v", domain.ErrUpstreamUnavailable, err)
	}
	u.logger.Info("lead reverified",
		slog.String("lead_id", id.String()),
		slog.String("confidence", string(updated.Confidence)),
	)
	return updated, nil
}

// Disqualify hides a lead from the available view.
func (u *LeadUseCase) Disqualify(ctx context.Context, id uuid.UUID) (domain.StoredLead, error) {
	return u.leads.SetDisqualified(ctx, id, true)
}

// Restore undoes Disqualify.
func (u *LeadUseCase) Restore(ctx context.Context, id uuid.UUID) (domain.StoredLead, error) {
	return u.leads.SetDisqualified(ctx, id, false)
}

// DeleteLeads removes leads one by one and reports per-id failures.
func (u *LeadUseCase) DeleteLeads(ctx context.Context, ids []uuid.UUID) (port.BatchResult, error) {
	if len(ids) == 0 {
		return port.BatchResult{}, domain.NewValidation("ids", "at least one id is required")
	}
	var res port.BatchResult
	for _, id := range ids {
		if err := u.leads.DeleteLead(ctx, id); err != nil {
			reason := SkipWriteFailed
			if errors.Is(err, domain.ErrNotFound) {
				reason = SkipNotFound
			}
			res.Failed++
			res.Reasons = append(res.Reasons, port.SkipReason{Ref: id.String(), Reason: reason})
		} else {
			res.Succeeded++
		}
	}
	u.logger.Info("leads deleted", slog.Int("succeeded", res.Succeeded), slog.Int("failed", res.Failed))
	return res, nil
}
