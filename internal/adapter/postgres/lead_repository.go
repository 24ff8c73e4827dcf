package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"outreach-engine/internal/core/domain"
	"outreach-engine/internal/core/port"
)

// in_campaign is derived from prospects referencing the lead, so it can
// never drift from the campaigns themselves.
const leadColumns = `l.id, l.raw, l.normalized_email, l.confidence, l.confidence_signals,
	l.is_duplicate, l.duplicate_reason, l.website_issues,
	EXISTS (SELECT 1 FROM prospects p WHERE p.lead_id = l.id) AS in_campaign,
	l.is_disqualified, l.last_enriched_at, l.created_at, l.updated_at`

// LeadRepository implements port.LeadRepository. Raw attributes and
// confidence signals are stored as JSONB.
type LeadRepository struct {
	pool *pgxpool.Pool
}

// NewLeadRepository returns a new repository instance.
func NewLeadRepository(pool *pgxpool.Pool) *LeadRepository {
	return &LeadRepository{pool: pool}
}

func scanLead(row pgx.Row) (domain.StoredLead, error) {
	var l domain.StoredLead
	err := row.Scan(
		&l.ID,
		&l.Raw,
		&l.NormalizedEmail,
		&l.Confidence,
		&l.Signals,
		&l.IsDuplicate,
		&l.DuplicateReason,
		&l.WebsiteIssues,
		&l.InCampaign,
		&l.IsDisqualified,
		&l.LastEnrichedAt,
		&l.CreatedAt,
		&l.UpdatedAt,
	)
	return l, err
}

// CreateLead inserts l.
func (r *LeadRepository) CreateLead(ctx context.Context, l domain.StoredLead) error {
	_, err := r.pool.Exec(ctx, `INSERT INTO stored_leads
    (id, raw, normalized_email, confidence, confidence_signals, is_duplicate,
     duplicate_reason, website_issues, is_disqualified, last_enriched_at, created_at, updated_at)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12)`,
		l.ID, l.Raw, l.NormalizedEmail, l.Confidence, l.Signals, l.IsDuplicate,
		l.DuplicateReason, nonNil(l.WebsiteIssues), l.IsDisqualified, l.LastEnrichedAt, l.CreatedAt, l.UpdatedAt)
	return mapErr(err, "lead", l.ID)
}

// GetLead returns a lead by id.
func (r *LeadRepository) GetLead(ctx context.Context, id uuid.UUID) (domain.StoredLead, error) {
	l, err := scanLead(r.pool.QueryRow(ctx, `SELECT `+leadColumns+` FROM stored_leads l WHERE l.id = $1`, id))
	return l, mapErr(err, "lead", id)
}

// ListLeads returns leads matching f, newest first.
func (r *LeadRepository) ListLeads(ctx context.Context, f port.LeadFilter) ([]domain.StoredLead, error) {
	var (
		where []string
		args  []any
	)
	if len(f.IDs) > 0 {
		args = append(args, f.IDs)
		where = append(where, fmt.Sprintf("l.id = ANY($%d)", len(args)))
	}
	if f.Available {
		where = append(where,
			"NOT l.is_disqualified",
			"NOT EXISTS (SELECT 1 FROM prospects p WHERE p.lead_id = l.id)")
	}
	if f.HasWebsite {
		where = append(where, "COALESCE(l.raw->>'website', '') <> ''")
	}

	query := `SELECT ` + leadColumns + ` FROM stored_leads l`
	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}
	query += " ORDER BY l.created_at DESC, l.id"
	if f.Limit > 0 {
		args = append(args, f.Limit)
		query += fmt.Sprintf(" LIMIT $%d", len(args))
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.StoredLead, error) {
		return scanLead(row)
	})
}

// UpdateLeadEnrichment writes the fields an enrichment pass may change.
func (r *LeadRepository) UpdateLeadEnrichment(ctx context.Context, l domain.StoredLead) error {
	tag, err := r.pool.Exec(ctx, `UPDATE stored_leads SET
    raw = $1, normalized_email = $2, confidence = $3, confidence_signals = $4,
    website_issues = $5, last_enriched_at = $6, updated_at = $7
WHERE id = $8`,
		l.Raw, l.NormalizedEmail, l.Confidence, l.Signals,
		nonNil(l.WebsiteIssues), l.LastEnrichedAt, l.UpdatedAt, l.ID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.NewNotFound("lead", l.ID)
	}
	return nil
}

// SetDisqualified flips the disqualification flag and returns the lead.
func (r *LeadRepository) SetDisqualified(ctx context.Context, id uuid.UUID, disqualified bool) (domain.StoredLead, error) {
	tag, err := r.pool.Exec(ctx, `UPDATE stored_leads SET is_disqualified = $1, updated_at = now() WHERE id = $2`, disqualified, id)
	if err != nil {
		return domain.StoredLead{}, err
	}
	if tag.RowsAffected() == 0 {
		return domain.StoredLead{}, domain.NewNotFound("lead", id)
	}
	return r.GetLead(ctx, id)
}

// DeleteLead removes a lead. Prospects imported from it keep their data
// and lose the reference.
func (r *LeadRepository) DeleteLead(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM stored_leads WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.NewNotFound("lead", id)
	}
	return nil
}

// KnownContacts returns the dedup keys of every prospect and stored lead.
func (r *LeadRepository) KnownContacts(ctx context.Context) (port.KnownContacts, error) {
	var known port.KnownContacts
	collect := func(query string) ([]port.ContactKey, error) {
		rows, err := r.pool.Query(ctx, query)
		if err != nil {
			return nil, err
		}
		return pgx.CollectRows(rows, func(row pgx.CollectableRow) (port.ContactKey, error) {
			var k port.ContactKey
			err := row.Scan(&k.Email, &k.Name, &k.Location)
			return k, err
		})
	}

	var err error
	known.Prospects, err = collect(`SELECT email, COALESCE(NULLIF(company, ''), name), location FROM prospects`)
	if err != nil {
		return known, fmt.Errorf("prospect contacts: %w", err)
	}
	known.Leads, err = collect(`SELECT normalized_email, COALESCE(raw->>'agency_name', ''), COALESCE(raw->>'location', '')
FROM stored_leads`)
	if err != nil {
		return known, fmt.Errorf("lead contacts: %w", err)
	}
	return known, nil
}
