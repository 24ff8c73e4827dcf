package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"outreach-engine/internal/config/configs"
	"outreach-engine/internal/core/domain"
	"outreach-engine/internal/core/guard"
	"outreach-engine/internal/core/port"
)

// errNeedsConfirmation aborts a ModifyDeal call without writing.
var errNeedsConfirmation = errors.New("stage change needs confirmation")

// DealUseCase implements port.DealUseCase.
type DealUseCase struct {
	deals  port.DealRepository
	guard  guard.Guard
	logger *slog.Logger
	loc    *time.Location
	now    func() time.Time
}

// NewDealUseCase wires the deal guard with the tuned threshold and snooze
// step.
func NewDealUseCase(deals port.DealRepository, tuning configs.Tuning, logger *slog.Logger) *DealUseCase {
	return &DealUseCase{
		deals: deals,
		guard: guard.Guard{
			MinFollowups: tuning.Guard.MinFollowups,
			SnoozeDays:   tuning.Guard.SnoozeDays,
		},
		logger: logger,
		loc:    tuning.Location(),
		now:    time.Now,
	}
}

// CreateDeal validates and stores a new deal.
func (u *DealUseCase) CreateDeal(ctx context.Context, req port.CreateDealReq) (domain.Deal, error) {
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return domain.Deal{}, domain.NewValidation("title", "is required")
	}
	if req.Value < 0 {
		return domain.Deal{}, domain.NewValidation("value", "must not be negative")
	}
	stage := req.Stage
	if stage == "" {
		stage = domain.StageLead
	}
	if !stage.Valid() {
		return domain.Deal{}, domain.NewValidation("stage", fmt.Sprintf("unknown stage %q", stage))
	}
	d := domain.Deal{
		ID:         uuid.New(),
		ProspectID: req.ProspectID,
		Title:      title,
		Value:      req.Value,
		Stage:      stage,
		UpdatedAt:  u.now().UTC(),
	}
	if req.FollowUpDate != nil {
		date := domain.DateOf(*req.FollowUpDate, u.loc)
		d.FollowUpDate = &date
	}
	if err := u.deals.CreateDeal(ctx, d); err != nil {
		return domain.Deal{}, fmt.Errorf("create deal: %w", err)
	}
	u.logger.Info("deal created", slog.String("deal_id", d.ID.String()), slog.String("stage", string(d.Stage)))
	return d, nil
}

// GetDeal returns one deal.
func (u *DealUseCase) GetDeal(ctx context.Context, id uuid.UUID) (domain.Deal, error) {
	return u.deals.GetDeal(ctx, id)
}

// ChangeStage moves the deal to stage unless the guard asks for
// confirmation. A gated change leaves the stored deal untouched and is
// reported through the result, not as an error.
func (u *DealUseCase) ChangeStage(ctx context.Context, id uuid.UUID, stage domain.Stage, confirm bool) (port.StageChangeResult, error) {
	if !stage.Valid() {
		return port.StageChangeResult{}, domain.NewValidation("stage", fmt.Sprintf("unknown stage %q", stage))
	}

	var res port.StageChangeResult
	deal, err := u.deals.ModifyDeal(ctx, id, func(d domain.Deal) (domain.Deal, error) {
		res.Decision = u.guard.Check(d, stage, confirm)
		if res.NeedsConfirmation {
			res.Deal = d
			return d, errNeedsConfirmation
		}
		d.Stage = stage
		d.UpdatedAt = u.now().UTC()
		return d, nil
	})
	if errors.Is(err, errNeedsConfirmation) {
		u.logger.Info("stage change needs confirmation",
			slog.String("deal_id", id.String()),
			slog.Int("followup_count", res.FollowupCount),
			slog.Int("remaining", res.Remaining),
		)
		return res, nil
	}
	if err != nil {
		return port.StageChangeResult{}, err
	}
	res.Deal = deal
	u.logger.Info("deal stage changed",
		slog.String("deal_id", id.String()),
		slog.String("stage", string(stage)),
		slog.Bool("confirmed", confirm),
	)
	return res, nil
}

// AddFollowUp logs a follow-up interaction, which increments the count the
// guard checks.
func (u *DealUseCase) AddFollowUp(ctx context.Context, id uuid.UUID, note string) (domain.Deal, error) {
	return u.deals.LogFollowUp(ctx, id, strings.TrimSpace(note))
}

// Snooze pushes the follow-up date forward by the snooze step.
func (u *DealUseCase) Snooze(ctx context.Context, id uuid.UUID) (domain.Deal, error) {
	return u.shift(ctx, id, u.guard.Snooze)
}

// Unsnooze moves the follow-up date back by the snooze step.
func (u *DealUseCase) Unsnooze(ctx context.Context, id uuid.UUID) (domain.Deal, error) {
	return u.shift(ctx, id, u.guard.Unsnooze)
}

func (u *DealUseCase) shift(ctx context.Context, id uuid.UUID, fn func(domain.Deal, time.Time) domain.Deal) (domain.Deal, error) {
	today := domain.DateOf(u.now(), u.loc)
	return u.deals.ModifyDeal(ctx, id, func(d domain.Deal) (domain.Deal, error) {
		d = fn(d, today)
		d.UpdatedAt = u.now().UTC()
		return d, nil
	})
}
