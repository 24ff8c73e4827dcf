package db

import (
	"context"
	"encoding/json"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// seedNS derives stable ids so Seed can run on every start.
var seedNS = uuid.MustParse("8f0c8a5e-2d6b-4c1e-9a57-3f4b1d2e6c70")

func seedID(kind string, n int) uuid.UUID {
	return uuid.NewSHA1(seedNS, []byte(fmt.Sprintf("%s-%d", kind, n)))
}

// seedLeadRaw builds the raw payload stored with a demo lead.
func seedLeadRaw(name, email, website, niche, location string) ([]byte, error) {
	raw, err := json.Marshal(map[string]any{
		"agency_name": name,
		"email":       email,
		"website":     website,
		"niche":       niche,
		"location":    location,
	})
	if err != nil {
		return nil, fmt.Errorf("marshal raw lead: %w", err)
	}
	return raw, nil
}

// Seed inserts a demo campaign with leads, prospects at various points of
// the sequence and a couple of deals. Existing rows are left alone.
func Seed(ctx context.Context, db *pgxpool.Pool) error {
	r := rand.New(rand.NewSource(time.Now().UnixNano()))
	today := time.Now().UTC().Truncate(24 * time.Hour)

	campaignID := seedID("campaign", 1)
	_, err := db.Exec(ctx, `INSERT INTO campaigns (id, name, channel, step_delay_days, step_count, created_at)
VALUES ($1, $2, 'email', 3, 5, now()) ON CONFLICT DO NOTHING`, campaignID, "Demo: design agencies")
	if err != nil {
		return fmt.Errorf("seed campaign: %w", err)
	}

	niches := []string{"design agency", "seo agency", "web studio"}
	cities := []string{"Austin, TX", "Denver, CO", "Portland, OR"}
	statuses := []string{"queued", "in_sequence", "replied", "not_interested"}

	for i := 1; i <= 12; i++ {
		leadID := seedID("lead", i)
		name := fmt.Sprintf("Demo Agency %d", i)
		website := fmt.Sprintf("https://demo-agency-%d.example", i)
		email := fmt.Sprintf("hello@demo-agency-%d.example", i)
		raw, err := seedLeadRaw(name, email, website, niches[r.Intn(len(niches))], cities[r.Intn(len(cities))])
		if err != nil {
			return fmt.Errorf("seed lead %d: %w", i, err)
		}
		_, err = db.Exec(ctx, `INSERT INTO stored_leads
    (id, raw, normalized_email, confidence, confidence_signals, created_at, updated_at)
VALUES ($1, $2, $3, 'medium', '{"valid_email":true,"website":true,"positive":2}', now(), now()) ON CONFLICT DO NOTHING`,
			leadID, raw, email)
		if err != nil {
			return fmt.Errorf("seed lead %d: %w", i, err)
		}

		// the first half goes into the campaign
		if i > 6 {
			continue
		}
		status := statuses[r.Intn(len(statuses))]
		step := 1
		var next *time.Time
		var contacted *time.Time
		switch status {
		case "queued":
			next = &today
		case "in_sequence":
			step = 2 + r.Intn(3)
			at := today.AddDate(0, 0, -3)
			d := today.AddDate(0, 0, r.Intn(3))
			contacted, next = &at, &d
		default:
			step = 2
			at := today.AddDate(0, 0, -1)
			contacted = &at
		}
		_, err = db.Exec(ctx, `INSERT INTO prospects
    (id, campaign_id, lead_id, channel, status, current_step, last_contacted_at, next_action_date,
     name, company, email, website, version, created_at, updated_at)
VALUES ($1,$2,$3,'email',$4,$5,$6,$7,$8,$9,$10,$11,0,now(),now()) ON CONFLICT DO NOTHING`,
			seedID("prospect", i), campaignID, leadID, status, step, contacted, next,
			"", name, email, website)
		if err != nil {
			return fmt.Errorf("seed prospect %d: %w", i, err)
		}
	}

	deals := []struct {
		title     string
		value     int64
		stage     string
		followups int
	}{
		{"Website rebuild", 480000, "proposal", 2},
		{"SEO retainer", 150000, "negotiation", 5},
	}
	for i, d := range deals {
		_, err = db.Exec(ctx, `INSERT INTO deals (id, prospect_id, title, value, stage, followup_count, follow_up_date, updated_at)
VALUES ($1,$2,$3,$4,$5,$6,$7,now()) ON CONFLICT DO NOTHING`,
			seedID("deal", i+1), seedID("prospect", i+1), d.title, d.value, d.stage, d.followups, today.AddDate(0, 0, 2))
		if err != nil {
			return fmt.Errorf("seed deal %q: %w", d.title, err)
		}
	}
	return nil
}
