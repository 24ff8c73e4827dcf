package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"outreach-engine/internal/config/configs"
	"outreach-engine/internal/core/cadence"
	"outreach-engine/internal/core/domain"
	"outreach-engine/internal/core/intake"
	"outreach-engine/internal/core/lifecycle"
	"outreach-engine/internal/core/port"
	"outreach-engine/internal/core/stats"
)

// Skip reasons reported by ImportLeads.
const (
	SkipNotFound          = "not found"
	SkipDisqualified      = "disqualified"
	SkipAlreadyInCampaign = "already in campaign"
	SkipMissingIdentifier = "missing contact identifier"
	SkipInvalidEmail      = "invalid email"
	SkipWriteFailed       = "write failed"
)

// OutreachUseCase implements port.OutreachUseCase. It orchestrates the
// repositories and the pure lifecycle, cadence and stats packages.
type OutreachUseCase struct {
	campaigns port.CampaignRepository
	prospects port.ProspectRepository
	leads     port.LeadRepository
	deals     port.DealRepository
	logger    *slog.Logger

	// defaultCadence fills cadence fields a new campaign leaves at zero.
	defaultCadence   domain.Cadence
	labeledFollowups int
	loc              *time.Location
	now              func() time.Time
}

// NewOutreachUseCase wires the outreach use case. Cadence defaults, label
// window and timezone come from the tuning settings.
func NewOutreachUseCase(
	campaigns port.CampaignRepository,
	prospects port.ProspectRepository,
	leads port.LeadRepository,
	deals port.DealRepository,
	tuning configs.Tuning,
	logger *slog.Logger,
) *OutreachUseCase {
	return &OutreachUseCase{
		campaigns: campaigns,
		prospects: prospects,
		leads:     leads,
		deals:     deals,
		logger:    logger,
		defaultCadence: domain.Cadence{
			StepDelayDays: tuning.Sequence.StepDelayDays,
			StepCount:     tuning.Sequence.StepCount,
		},
		labeledFollowups: tuning.Sequence.LabeledFollowups,
		loc:              tuning.Location(),
		now:              time.Now,
	}
}

func (u *OutreachUseCase) today() time.Time {
	return domain.DateOf(u.now(), u.loc)
}

func (u *OutreachUseCase) view(p domain.Prospect) port.ProspectView {
	return port.ProspectView{
		Prospect:  p,
		StepLabel: lifecycle.StepLabel(p, u.labeledFollowups),
		Events:    lifecycle.Events(p),
	}
}

func (u *OutreachUseCase) views(ps []domain.Prospect) []port.ProspectView {
	out := make([]port.ProspectView, 0, len(ps))
	for _, p := range ps {
		out = append(out, u.view(p))
	}
	return out
}

// CreateCampaign validates and stores a new campaign.
func (u *OutreachUseCase) CreateCampaign(ctx context.Context, req port.CreateCampaignReq) (domain.Campaign, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return domain.Campaign{}, domain.NewValidation("name", "is required")
	}
	if !req.Channel.Valid() {
		return domain.Campaign{}, domain.NewValidation("channel", fmt.Sprintf("must be %q or %q", domain.ChannelEmail, domain.ChannelLinkedIn))
	}
	cad := req.Cadence
	if cad.StepDelayDays == 0 {
		cad.StepDelayDays = u.defaultCadence.StepDelayDays
	}
	if cad.StepCount == 0 {
		cad.StepCount = u.defaultCadence.StepCount
	}
	if cad.StepDelayDays < 0 {
		return domain.Campaign{}, domain.NewValidation("cadence.step_delay_days", "must be positive")
	}
	if cad.StepCount < 0 {
		return domain.Campaign{}, domain.NewValidation("cadence.step_count", "must be positive")
	}

	c := domain.Campaign{
		ID:        uuid.New(),
		Name:      name,
		Channel:   req.Channel,
		Cadence:   cad,
		CreatedAt: u.now().UTC(),
	}
	if err := u.campaigns.CreateCampaign(ctx, c); err != nil {
		return domain.Campaign{}, fmt.Errorf("create campaign: %w", err)
	}
	u.logger.Info("campaign created", slog.String("campaign_id", c.ID.String()), slog.String("channel", string(c.Channel)))
	return c, nil
}

// ListCampaigns returns every campaign.
func (u *OutreachUseCase) ListCampaigns(ctx context.Context) ([]domain.Campaign, error) {
	return u.campaigns.ListCampaigns(ctx)
}

// GetCampaign returns one campaign.
func (u *OutreachUseCase) GetCampaign(ctx context.Context, id uuid.UUID) (domain.Campaign, error) {
	return u.campaigns.GetCampaign(ctx, id)
}

// DeleteCampaign removes a campaign and, through the store, its prospects.
func (u *OutreachUseCase) DeleteCampaign(ctx context.Context, id uuid.UUID) error {
	if err := u.campaigns.DeleteCampaign(ctx, id); err != nil {
		return err
	}
	u.logger.Info("campaign deleted", slog.String("campaign_id", id.String()))
	return nil
}

// checkContact normalises contact and verifies it can be reached on the
// campaign's channel.
func checkContact(c domain.Campaign, contact *domain.Contact) error {
	contact.Name = intake.CleanText(contact.Name)
	contact.Company = intake.CleanText(contact.Company)
	contact.Email = intake.NormalizeEmail(contact.Email)
	contact.LinkedInURL = strings.TrimSpace(contact.LinkedInURL)
	if contact.Name == "" {
		contact.Name = contact.Company
	}
	if contact.Email != "" && !intake.ValidEmail(contact.Email) {
		return domain.NewValidation("email", SkipInvalidEmail)
	}
	switch c.Channel {
	case domain.ChannelLinkedIn:
		if contact.LinkedInURL == "" {
			return domain.NewValidation("linkedin_url", SkipMissingIdentifier)
		}
	default:
		if contact.Email == "" {
			return domain.NewValidation("email", SkipMissingIdentifier)
		}
	}
	return nil
}

// AddProspect adds a single contact to a campaign.
func (u *OutreachUseCase) AddProspect(ctx context.Context, campaignID uuid.UUID, contact domain.Contact) (port.ProspectView, error) {
	c, err := u.campaigns.GetCampaign(ctx, campaignID)
	if err != nil {
		return port.ProspectView{}, err
	}
	if err = checkContact(c, &contact); err != nil {
		return port.ProspectView{}, err
	}
	p := domain.NewProspect(c, contact, u.now().UTC())
	if err = u.prospects.CreateProspect(ctx, p); err != nil {
		if errors.Is(err, port.ErrDuplicate) {
			return port.ProspectView{}, domain.NewValidation("email", intake.ReasonDuplicateEmail)
		}
		return port.ProspectView{}, fmt.Errorf("create prospect: %w", err)
	}
	return u.view(p), nil
}

// ListProspects returns a campaign's prospects with their step labels.
func (u *OutreachUseCase) ListProspects(ctx context.Context, campaignID uuid.UUID) ([]port.ProspectView, error) {
	if _, err := u.campaigns.GetCampaign(ctx, campaignID); err != nil {
		return nil, err
	}
	ps, err := u.prospects.ListProspects(ctx, campaignID)
	if err != nil {
		return nil, err
	}
	return u.views(ps), nil
}

// ImportLeads converts stored leads or parsed rows into queued prospects.
// Every item is written on its own, so a failure only skips that item.
func (u *OutreachUseCase) ImportLeads(ctx context.Context, campaignID uuid.UUID, req port.ImportRequest) (port.ImportResult, error) {
	res := port.ImportResult{SkippedReasons: []port.SkipReason{}}
	if len(req.LeadIDs) == 0 && len(req.Rows) == 0 {
		return res, domain.NewValidation("lead_ids", "lead_ids or rows are required")
	}
	c, err := u.campaigns.GetCampaign(ctx, campaignID)
	if err != nil {
		return res, err
	}

	skip := func(ref, reason string) {
		res.SkippedCount++
		res.SkippedReasons = append(res.SkippedReasons, port.SkipReason{Ref: ref, Reason: reason})
	}
	create := func(ref string, p domain.Prospect) {
		err := u.prospects.CreateProspect(ctx, p)
		switch {
		case err == nil:
			res.ImportedCount++
		case errors.Is(err, port.ErrDuplicate):
			skip(ref, intake.ReasonDuplicateEmail)
		default:
			u.logger.Warn("import write failed", slog.String("ref", ref), slog.Any("error", err))
			skip(ref, SkipWriteFailed)
		}
	}

	seen := make(map[uuid.UUID]bool, len(req.LeadIDs))
	for _, id := range req.LeadIDs {
		ref := id.String()
		if seen[id] {
			continue
		}
		seen[id] = true

		lead, err := u.leads.GetLead(ctx, id)
		if errors.Is(err, domain.ErrNotFound) {
			skip(ref, SkipNotFound)
			continue
		}
		if err != nil {
			u.logger.Warn("import lead lookup failed", slog.String("lead_id", ref), slog.Any("error", err))
			skip(ref, SkipWriteFailed)
			continue
		}
		switch {
		case lead.IsDisqualified:
			skip(ref, SkipDisqualified)
			continue
		case lead.InCampaign:
			skip(ref, SkipAlreadyInCampaign)
			continue
		case lead.IsDuplicate:
			reason := lead.DuplicateReason
			if reason == "" {
				reason = intake.ReasonDuplicateEmail
			}
			skip(ref, reason)
			continue
		}

		contact := lead.Contact()
		if err = checkContact(c, &contact); err != nil {
			skip(ref, reasonOf(err))
			continue
		}
		p := domain.NewProspect(c, contact, u.now().UTC())
		p.LeadID = &lead.ID
		p.WebsiteIssues = lead.WebsiteIssues
		create(ref, p)
	}

	for i, row := range req.Rows {
		ref := strconv.Itoa(i + 1)
		contact, notes := contactFromRow(row)
		if err = checkContact(c, &contact); err != nil {
			skip(ref, reasonOf(err))
			continue
		}
		p := domain.NewProspect(c, contact, u.now().UTC())
		p.Notes = notes
		create(ref, p)
	}

	u.logger.Info("leads imported",
		slog.String("campaign_id", campaignID.String()),
		slog.Int("imported", res.ImportedCount),
		slog.Int("skipped", res.SkippedCount),
	)
	return res, nil
}

func reasonOf(err error) string {
	var ve *domain.ValidationError
	if errors.As(err, &ve) {
		return ve.Reason
	}
	return err.Error()
}

// contactFromRow maps a parsed CSV row onto contact fields. Column names
// are matched case-insensitively and a few common aliases are accepted.
func contactFromRow(row map[string]string) (domain.Contact, string) {
	get := func(keys ...string) string {
		for _, k := range keys {
			for col, v := range row {
				if strings.EqualFold(strings.TrimSpace(col), k) {
					if v = strings.TrimSpace(v); v != "" {
						return v
					}
				}
			}
		}
		return ""
	}
	c := domain.Contact{
		Name:         get("name", "contact_name", "full_name"),
		Company:      get("company", "agency_name", "agency"),
		Email:        get("email", "email_address"),
		LinkedInURL:  get("linkedin_url", "linkedin"),
		Website:      get("website", "url"),
		Niche:        get("niche", "industry"),
		Location:     get("location", "city"),
		PhoneNumber:  get("phone"),
		InstagramURL: get("instagram_url", "instagram"),
	}
	if c.InstagramURL != "" {
		c.SocialLinks = append(c.SocialLinks, c.InstagramURL)
	}
	return c, get("notes")
}

// ApplyEvent runs a lifecycle event against a locked prospect.
func (u *OutreachUseCase) ApplyEvent(ctx context.Context, prospectID uuid.UUID, req port.EventRequest) (port.ProspectView, error) {
	if strings.TrimSpace(string(req.Event)) == "" {
		return port.ProspectView{}, domain.NewValidation("event", "is required")
	}
	p, err := u.prospects.Transition(ctx, prospectID, func(p domain.Prospect, c domain.Campaign) (domain.Prospect, error) {
		if req.ExpectedVersion != nil && *req.ExpectedVersion != p.Version {
			return p, fmt.Errorf("%w: prospect is at version %d, expected %d", domain.ErrConflict, p.Version, *req.ExpectedVersion)
		}
		return lifecycle.Apply(p, c, lifecycle.Request{Event: req.Event, Outcome: req.Outcome}, u.now().UTC(), u.loc)
	})
	if err != nil {
		if errors.Is(err, domain.ErrConflict) {
			u.logger.Debug("event rejected", slog.String("prospect_id", prospectID.String()), slog.String("event", string(req.Event)), slog.Any("error", err))
		}
		return port.ProspectView{}, err
	}
	u.logger.Info("event applied",
		slog.String("prospect_id", prospectID.String()),
		slog.String("event", string(req.Event)),
		slog.String("status", string(p.Status)),
		slog.Int("step", p.CurrentStep),
	)
	return u.view(p), nil
}

// TodayQueue returns the campaign's prospects actionable today.
func (u *OutreachUseCase) TodayQueue(ctx context.Context, campaignID uuid.UUID) ([]port.ProspectView, error) {
	if _, err := u.campaigns.GetCampaign(ctx, campaignID); err != nil {
		return nil, err
	}
	ps, err := u.prospects.ListProspects(ctx, campaignID)
	if err != nil {
		return nil, err
	}
	return u.views(cadence.TodayQueue(ps, u.today())), nil
}

// CampaignStats aggregates the campaign's current prospects.
func (u *OutreachUseCase) CampaignStats(ctx context.Context, campaignID uuid.UUID) (stats.CampaignStats, error) {
	if _, err := u.campaigns.GetCampaign(ctx, campaignID); err != nil {
		return stats.CampaignStats{}, err
	}
	ps, err := u.prospects.ListProspects(ctx, campaignID)
	if err != nil {
		return stats.CampaignStats{}, err
	}
	value, err := u.deals.PipelineValue(ctx, campaignID)
	if err != nil {
		return stats.CampaignStats{}, fmt.Errorf("pipeline value: %w", err)
	}
	return stats.Aggregate(ps, value, u.today()), nil
}
