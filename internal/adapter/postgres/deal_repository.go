package postgres

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"outreach-engine/internal/core/domain"
	"outreach-engine/internal/core/port"
)

const dealColumns = `id, prospect_id, title, value, stage, followup_count, follow_up_date, updated_at`

// InteractionFollowUp is the interaction kind counted by the deal guard.
const InteractionFollowUp = "follow_up"

// DealRepository implements port.DealRepository, including the
// interaction log.
type DealRepository struct {
	pool *pgxpool.Pool
}

// NewDealRepository returns a new repository instance.
func NewDealRepository(pool *pgxpool.Pool) *DealRepository {
	return &DealRepository{pool: pool}
}

func scanDeal(row pgx.Row) (domain.Deal, error) {
	var d domain.Deal
	err := row.Scan(&d.ID, &d.ProspectID, &d.Title, &d.Value, &d.Stage, &d.FollowupCount, &d.FollowUpDate, &d.UpdatedAt)
	return d, err
}

// CreateDeal inserts d.
func (r *DealRepository) CreateDeal(ctx context.Context, d domain.Deal) error {
	_, err := r.pool.Exec(ctx, `INSERT INTO deals (`+dealColumns+`) VALUES ($1,$2,$3,$4,$5,$6,$7,$8)`,
		d.ID, d.ProspectID, d.Title, d.Value, d.Stage, d.FollowupCount, d.FollowUpDate, d.UpdatedAt)
	return mapErr(err, "deal", d.ID)
}

// GetDeal returns a deal by id.
func (r *DealRepository) GetDeal(ctx context.Context, id uuid.UUID) (domain.Deal, error) {
	d, err := scanDeal(r.pool.QueryRow(ctx, `SELECT `+dealColumns+` FROM deals WHERE id = $1`, id))
	return d, mapErr(err, "deal", id)
}

// ModifyDeal locks the deal, applies fn and stores stage and follow-up
// date. The follow-up count is owned by LogFollowUp and never written here.
func (r *DealRepository) ModifyDeal(ctx context.Context, id uuid.UUID, fn port.DealFunc) (domain.Deal, error) {
	var next domain.Deal
	err := withTx(ctx, r.pool, func(tx pgx.Tx) error {
		cur, err := scanDeal(tx.QueryRow(ctx, `SELECT `+dealColumns+` FROM deals WHERE id = $1 FOR UPDATE`, id))
		if err != nil {
			return mapErr(err, "deal", id)
		}
		if next, err = fn(cur); err != nil {
			return err
		}
		next.FollowupCount = cur.FollowupCount
		_, err = tx.Exec(ctx, `UPDATE deals SET stage = $1, follow_up_date = $2, updated_at = $3 WHERE id = $4`,
			next.Stage, next.FollowUpDate, next.UpdatedAt, id)
		return err
	})
	if err != nil {
		return domain.Deal{}, err
	}
	return next, nil
}

// PipelineValue sums the deals linked to converted prospects of the
// campaign.
func (r *DealRepository) PipelineValue(ctx context.Context, campaignID uuid.UUID) (int64, error) {
	var total int64
	err := r.pool.QueryRow(ctx, `SELECT COALESCE(SUM(d.value), 0)::BIGINT
FROM deals d
JOIN prospects p ON p.id = d.prospect_id
WHERE p.campaign_id = $1 AND p.status = $2`, campaignID, domain.StatusConverted).Scan(&total)
	return total, err
}

// LogFollowUp records a follow-up interaction and increments the deal's
// count in the same transaction.
func (r *DealRepository) LogFollowUp(ctx context.Context, dealID uuid.UUID, note string) (domain.Deal, error) {
	var d domain.Deal
	err := withTx(ctx, r.pool, func(tx pgx.Tx) error {
		var err error
		d, err = scanDeal(tx.QueryRow(ctx, `UPDATE deals
SET followup_count = followup_count + 1, updated_at = now()
WHERE id = $1
RETURNING `+dealColumns, dealID))
		if err != nil {
			return mapErr(err, "deal", dealID)
		}
		_, err = tx.Exec(ctx, `INSERT INTO interactions (deal_id, kind, note) VALUES ($1, $2, $3)`,
			dealID, InteractionFollowUp, note)
		return err
	})
	if err != nil {
		return domain.Deal{}, err
	}
	return d, nil
}
