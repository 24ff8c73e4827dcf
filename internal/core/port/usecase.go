package port

import (
	"context"
	"time"

	"github.com/google/uuid"

	"outreach-engine/internal/core/domain"
	"outreach-engine/internal/core/guard"
	"outreach-engine/internal/core/stats"
)

// OutreachUseCase covers campaigns, prospects and their sequences. This
// interface is the primary port used by the HTTP adapter.
type OutreachUseCase interface {
	CreateCampaign(ctx context.Context, req CreateCampaignReq) (domain.Campaign, error)
	ListCampaigns(ctx context.Context) ([]domain.Campaign, error)
	GetCampaign(ctx context.Context, id uuid.UUID) (domain.Campaign, error)
	DeleteCampaign(ctx context.Context, id uuid.UUID) error

	// AddProspect adds a single contact to a campaign by hand.
	AddProspect(ctx context.Context, campaignID uuid.UUID, contact domain.Contact) (ProspectView, error)
	ListProspects(ctx context.Context, campaignID uuid.UUID) ([]ProspectView, error)

	// ImportLeads turns stored leads or parsed rows into queued
	// prospects. Each item is written independently; skipped items are
	// reported with a reason rather than failing the batch.
	ImportLeads(ctx context.Context, campaignID uuid.UUID, req ImportRequest) (ImportResult, error)

	// ApplyEvent runs a lifecycle event against a prospect. Illegal
	// events return an error matching domain.ErrConflict.
	ApplyEvent(ctx context.Context, prospectID uuid.UUID, req EventRequest) (ProspectView, error)

	// TodayQueue lists the prospects actionable today.
	TodayQueue(ctx context.Context, campaignID uuid.UUID) ([]ProspectView, error)
	CampaignStats(ctx context.Context, campaignID uuid.UUID) (stats.CampaignStats, error)
}

// LeadUseCase covers discovery, scoring and enrichment of stored leads.
type LeadUseCase interface {
	// SearchLeads asks the discovery provider for leads, deduplicates and
	// scores them and stores the new ones. A failing provider yields zero
	// leads with a reason, not an error.
	SearchLeads(ctx context.Context, q SearchQuery) (SearchResult, error)
	ListLeads(ctx context.Context, f LeadFilter) ([]domain.StoredLead, error)
	// BulkEnrich inspects the websites of the given leads, or of every
	// available lead when ids is empty.
	BulkEnrich(ctx context.Context, ids []uuid.UUID) (EnrichResult, error)
	// Reverify re-inspects a single lead and rescores it.
	Reverify(ctx context.Context, id uuid.UUID) (domain.StoredLead, error)
	Disqualify(ctx context.Context, id uuid.UUID) (domain.StoredLead, error)
	Restore(ctx context.Context, id uuid.UUID) (domain.StoredLead, error)
	DeleteLeads(ctx context.Context, ids []uuid.UUID) (BatchResult, error)
}

// DealUseCase covers the deal-stage guard and follow-up scheduling.
type DealUseCase interface {
	// CreateDeal opens a pipeline deal, optionally linked to a prospect.
	CreateDeal(ctx context.Context, req CreateDealReq) (domain.Deal, error)
	GetDeal(ctx context.Context, id uuid.UUID) (domain.Deal, error)
	// ChangeStage moves a deal to stage unless the guard asks for
	// confirmation first; confirm is the caller's "close anyway".
	ChangeStage(ctx context.Context, id uuid.UUID, stage domain.Stage, confirm bool) (StageChangeResult, error)
	AddFollowUp(ctx context.Context, id uuid.UUID, note string) (domain.Deal, error)
	Snooze(ctx context.Context, id uuid.UUID) (domain.Deal, error)
	Unsnooze(ctx context.Context, id uuid.UUID) (domain.Deal, error)
}

// CreateCampaignReq carries the user's campaign settings. Zero cadence
// fields take the configured defaults.
type CreateCampaignReq struct {
	Name    string         `json:"name"`
	Channel domain.Channel `json:"channel"`
	Cadence domain.Cadence `json:"cadence"`
}

// ImportRequest selects what to import: stored lead ids or parsed rows
// keyed by column name. Exactly one should be set.
type ImportRequest struct {
	LeadIDs []uuid.UUID         `json:"lead_ids,omitempty"`
	Rows    []map[string]string `json:"rows,omitempty"`
}

// SkipReason explains why one import item was not imported. Ref is the
// lead id or the 1-based row number.
type SkipReason struct {
	Ref    string `json:"ref"`
	Reason string `json:"reason"`
}

// ImportResult reports a partially successful import.
type ImportResult struct {
	ImportedCount  int          `json:"imported_count"`
	SkippedCount   int          `json:"skipped_count"`
	SkippedReasons []SkipReason `json:"skipped_reasons"`
}

// EventRequest is a lifecycle event. ExpectedVersion, when set, must match
// the stored prospect version.
type EventRequest struct {
	Event           domain.Event        `json:"event"`
	Outcome         domain.ReplyOutcome `json:"outcome,omitempty"`
	ExpectedVersion *int64              `json:"expected_version,omitempty"`
}

// ProspectView is a prospect with its derived, display-oriented fields.
type ProspectView struct {
	domain.Prospect
	StepLabel string         `json:"step_label"`
	Events    []domain.Event `json:"available_events"`
}

// SearchResult reports what a discovery search produced.
type SearchResult struct {
	Leads           []domain.StoredLead `json:"leads"`
	AlreadySaved    int                 `json:"already_saved"`
	DuplicatesFound int                 `json:"duplicates_found"`
	Failed          int                 `json:"failed,omitempty"`
	Reason          string              `json:"reason,omitempty"`
}

// EnrichItem is the per-lead outcome of an enrichment run.
type EnrichItem struct {
	LeadID     uuid.UUID         `json:"lead_id"`
	Status     string            `json:"status"`
	Confidence domain.Confidence `json:"confidence,omitempty"`
	EmailFound string            `json:"email_found,omitempty"`
	Error      string            `json:"error,omitempty"`
}

// EnrichResult aggregates a bulk enrichment run.
type EnrichResult struct {
	Enriched    int          `json:"enriched"`
	EmailsFound int          `json:"emails_found"`
	Skipped     int          `json:"skipped"`
	Failed      int          `json:"failed"`
	Results     []EnrichItem `json:"results"`
}

// BatchResult reports a bulk write where items succeed independently.
type BatchResult struct {
	Succeeded int          `json:"succeeded"`
	Failed    int          `json:"failed"`
	Reasons   []SkipReason `json:"reasons,omitempty"`
}

// CreateDealReq carries a new deal. An empty stage starts at lead.
type CreateDealReq struct {
	Title        string       `json:"title"`
	Value        int64        `json:"value"`
	Stage        domain.Stage `json:"stage,omitempty"`
	ProspectID   *uuid.UUID   `json:"prospect_id,omitempty"`
	FollowUpDate *time.Time   `json:"follow_up_date,omitempty"`
}

// StageChangeResult is the guard decision plus the deal after the call.
type StageChangeResult struct {
	guard.Decision
	Deal domain.Deal `json:"deal"`
}
