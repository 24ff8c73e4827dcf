package port

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"outreach-engine/internal/core/domain"
)

// ErrDuplicate is returned by repositories when a write would create a
// second record for a contact the store already holds.
var ErrDuplicate = errors.New("duplicate contact")

// TransitionFunc computes the next state of a locked prospect. Returning
// an error aborts the write.
type TransitionFunc func(p domain.Prospect, c domain.Campaign) (domain.Prospect, error)

// DealFunc computes the next state of a locked deal. Returning an error
// aborts the write.
type DealFunc func(d domain.Deal) (domain.Deal, error)

// CampaignRepository persists campaigns. Deleting a campaign deletes its
// prospects in the same statement.
type CampaignRepository interface {
	CreateCampaign(ctx context.Context, c domain.Campaign) error
	// GetCampaign returns a *domain.NotFoundError for unknown ids.
	GetCampaign(ctx context.Context, id uuid.UUID) (domain.Campaign, error)
	ListCampaigns(ctx context.Context) ([]domain.Campaign, error)
	DeleteCampaign(ctx context.Context, id uuid.UUID) error
}

// ProspectRepository persists prospects. Implementations must serialise
// Transition calls per prospect so concurrent events cannot both apply
// to the same starting state.
type ProspectRepository interface {
	// CreateProspect inserts p and returns ErrDuplicate when a prospect
	// with the same normalised email already exists.
	CreateProspect(ctx context.Context, p domain.Prospect) error
	GetProspect(ctx context.Context, id uuid.UUID) (domain.Prospect, error)
	// ListProspects returns the prospects of one campaign only.
	ListProspects(ctx context.Context, campaignID uuid.UUID) ([]domain.Prospect, error)
	// Transition locks the prospect, loads its campaign, runs fn and
	// stores the result atomically.
	Transition(ctx context.Context, id uuid.UUID, fn TransitionFunc) (domain.Prospect, error)
}

// ContactKey identifies a known contact for deduplication.
type ContactKey struct {
	Email    string
	Name     string
	Location string
}

// KnownContacts splits known contacts by where they live so callers can
// tell an already saved lead from a lead that duplicates a prospect.
type KnownContacts struct {
	Prospects []ContactKey
	Leads     []ContactKey
}

// LeadFilter narrows ListLeads. Available hides disqualified leads and
// leads already imported into a campaign.
type LeadFilter struct {
	IDs        []uuid.UUID
	Available  bool
	HasWebsite bool
	Limit      int
}

// LeadRepository persists stored leads. InCampaign is derived by the
// store from prospects referencing the lead.
type LeadRepository interface {
	CreateLead(ctx context.Context, l domain.StoredLead) error
	GetLead(ctx context.Context, id uuid.UUID) (domain.StoredLead, error)
	ListLeads(ctx context.Context, f LeadFilter) ([]domain.StoredLead, error)
	// UpdateLeadEnrichment writes contact, scoring and website fields. It
	// never touches the disqualification flag.
	UpdateLeadEnrichment(ctx context.Context, l domain.StoredLead) error
	SetDisqualified(ctx context.Context, id uuid.UUID, disqualified bool) (domain.StoredLead, error)
	DeleteLead(ctx context.Context, id uuid.UUID) error
	KnownContacts(ctx context.Context) (KnownContacts, error)
}

// DealRepository persists deals and doubles as the interaction log used
// to count follow-ups.
type DealRepository interface {
	CreateDeal(ctx context.Context, d domain.Deal) error
	GetDeal(ctx context.Context, id uuid.UUID) (domain.Deal, error)
	// ModifyDeal locks the deal, runs fn and stores the result atomically.
	ModifyDeal(ctx context.Context, id uuid.UUID, fn DealFunc) (domain.Deal, error)
	// PipelineValue sums the values of deals linked to converted
	// prospects of the campaign.
	PipelineValue(ctx context.Context, campaignID uuid.UUID) (int64, error)
	InteractionLog
}

// InteractionLog records CRM interactions. Logging a follow-up increments
// the deal's follow-up count.
type InteractionLog interface {
	LogFollowUp(ctx context.Context, dealID uuid.UUID, note string) (domain.Deal, error)
}
