package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"outreach-engine/internal/core/domain"
	"outreach-engine/internal/core/port"
)

const prospectColumns = `id, campaign_id, lead_id, channel, status, current_step,
	last_contacted_at, next_action_date, name, company, email, linkedin_url,
	website, niche, location, social_links, phone, instagram_url,
	website_issues, notes, version, created_at, updated_at`

// ProspectRepository implements port.ProspectRepository. Transitions are
// serialised per prospect with SELECT ... FOR UPDATE.
type ProspectRepository struct {
	pool *pgxpool.Pool
}

// NewProspectRepository returns a new repository instance.
func NewProspectRepository(pool *pgxpool.Pool) *ProspectRepository {
	return &ProspectRepository{pool: pool}
}

func scanProspect(row pgx.Row) (domain.Prospect, error) {
	var p domain.Prospect
	err := row.Scan(
		&p.ID,
		&p.CampaignID,
		&p.LeadID,
		&p.Channel,
		&p.Status,
		&p.CurrentStep,
		&p.LastContactedAt,
		&p.NextActionDate,
		&p.Name,
		&p.Company,
		&p.Email,
		&p.LinkedInURL,
		&p.Website,
		&p.Niche,
		&p.Location,
		&p.SocialLinks,
		&p.PhoneNumber,
		&p.InstagramURL,
		&p.WebsiteIssues,
		&p.Notes,
		&p.Version,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	return p, err
}

// CreateProspect inserts p. A second prospect with the same email fails
// the unique index and is reported as port.ErrDuplicate.
func (r *ProspectRepository) CreateProspect(ctx context.Context, p domain.Prospect) error {
	_, err := r.pool.Exec(ctx, `INSERT INTO prospects (`+prospectColumns+`)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17,$18,$19,$20,$21,$22,$23)`,
		p.ID, p.CampaignID, p.LeadID, p.Channel, p.Status, p.CurrentStep,
		p.LastContactedAt, p.NextActionDate, p.Name, p.Company, p.Email, p.LinkedInURL,
		p.Website, p.Niche, p.Location, nonNil(p.SocialLinks), p.PhoneNumber, p.InstagramURL,
		nonNil(p.WebsiteIssues), p.Notes, p.Version, p.CreatedAt, p.UpdatedAt)
	return mapErr(err, "prospect", p.ID)
}

// GetProspect returns a prospect by id.
func (r *ProspectRepository) GetProspect(ctx context.Context, id uuid.UUID) (domain.Prospect, error) {
	p, err := scanProspect(r.pool.QueryRow(ctx, `SELECT `+prospectColumns+` FROM prospects WHERE id = $1`, id))
	return p, mapErr(err, "prospect", id)
}

// ListProspects returns one campaign's prospects in creation order.
func (r *ProspectRepository) ListProspects(ctx context.Context, campaignID uuid.UUID) ([]domain.Prospect, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+prospectColumns+` FROM prospects
WHERE campaign_id = $1 ORDER BY created_at, id`, campaignID)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Prospect, error) {
		return scanProspect(row)
	})
}

// Transition locks the prospect row, loads its campaign, applies fn and
// writes the result in one transaction. The update is additionally
// guarded by the version read under the lock.
func (r *ProspectRepository) Transition(ctx context.Context, id uuid.UUID, fn port.TransitionFunc) (domain.Prospect, error) {
	var next domain.Prospect
	err := withTx(ctx, r.pool, func(tx pgx.Tx) error {
		cur, err := scanProspect(tx.QueryRow(ctx, `SELECT `+prospectColumns+` FROM prospects WHERE id = $1 FOR UPDATE`, id))
		if err != nil {
			return mapErr(err, "prospect", id)
		}
		c, err := scanCampaign(tx.QueryRow(ctx, `SELECT `+campaignColumns+` FROM campaigns WHERE id = $1`, cur.CampaignID))
		if err != nil {
			return mapErr(err, "campaign", cur.CampaignID)
		}
		if next, err = fn(cur, c); err != nil {
			return err
		}

		tag, err := tx.Exec(ctx, `UPDATE prospects SET
    status = $1, current_step = $2, last_contacted_at = $3, next_action_date = $4,
    notes = $5, version = $6, updated_at = $7
WHERE id = $8 AND version = $9`,
			next.Status, next.CurrentStep, next.LastContactedAt, next.NextActionDate,
			next.Notes, next.Version, next.UpdatedAt, id, cur.Version)
		if err != nil {
			return err
		}
		if tag.RowsAffected() == 0 {
			return fmt.Errorf("%w: prospect %s changed concurrently", domain.ErrConflict, id)
		}
		return nil
	})
	if err != nil {
		return domain.Prospect{}, err
	}
	return next, nil
}
