package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"outreach-engine/internal/config/configs"
	"outreach-engine/internal/core/domain"
	"outreach-engine/internal/core/port"
	"outreach-engine/internal/core/port/mocks"
)

func newDeals(t *testing.T) (*DealUseCase, *mocks.MockDealRepository) {
	repo := mocks.NewMockDealRepository(t)
	u := NewDealUseCase(repo, configs.DefaultTuning(), discardLogger())
	u.now = func() time.Time { return fixedNow }
	return u, repo
}

// storedDeal emulates ModifyDeal against a single in-memory deal. writes
// counts the calls that reached the store.
func storedDeal(d *domain.Deal, writes *int) func(context.Context, uuid.UUID, port.DealFunc) (domain.Deal, error) {
	return func(_ context.Context, _ uuid.UUID, fn port.DealFunc) (domain.Deal, error) {
		next, err := fn(*d)
		if err != nil {
			return domain.Deal{}, err
		}
		*writes++
		*d = next
		return next, nil
	}
}

func TestChangeStageGuardsClosedLost(t *testing.T) {
	cases := []struct {
		name      string
		followups int
		stage     domain.Stage
		confirm   bool
		allowed   bool
		remaining int
	}{
		{name: "two followups needs confirmation", followups: 2, stage: domain.StageClosedLost, remaining: 3},
		{name: "confirmed close anyway", followups: 2, stage: domain.StageClosedLost, confirm: true, allowed: true, remaining: 3},
		{name: "enough followups", followups: 5, stage: domain.StageClosedLost, allowed: true},
		{name: "other stages ungated", followups: 0, stage: domain.StageProposal, allowed: true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			u, repo := newDeals(t)
			d := domain.Deal{ID: uuid.New(), Title: "Retainer", Stage: domain.StageNegotiation, FollowupCount: tc.followups}
			writes := 0
			repo.EXPECT().ModifyDeal(mock.Anything, d.ID, mock.Anything).Return(storedDeal(&d, &writes))

			res, err := u.ChangeStage(context.Background(), d.ID, tc.stage, tc.confirm)
			require.NoError(t, err)
			assert.Equal(t, tc.allowed, res.Allowed)
			assert.Equal(t, !tc.allowed, res.NeedsConfirmation)
			assert.Equal(t, tc.remaining, res.Remaining)
			assert.Equal(t, tc.followups, res.FollowupCount)
			if tc.allowed {
				assert.Equal(t, 1, writes)
				assert.Equal(t, tc.stage, d.Stage)
				assert.Equal(t, tc.stage, res.Deal.Stage)
			} else {
				assert.Zero(t, writes)
				assert.Equal(t, domain.StageNegotiation, d.Stage)
				assert.Equal(t, domain.StageNegotiation, res.Deal.Stage)
			}
		})
	}
}

func TestChangeStageRejectsUnknownStage(t *testing.T) {
	u, _ := newDeals(t)
	_, err := u.ChangeStage(context.Background(), uuid.New(), "won", false)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestChangeStageUnknownDeal(t *testing.T) {
	u, repo := newDeals(t)
	id := uuid.New()
	repo.EXPECT().ModifyDeal(mock.Anything, id, mock.Anything).Return(domain.Deal{}, domain.NewNotFound("deal", id))

	_, err := u.ChangeStage(context.Background(), id, domain.StageClosedWon, false)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestFollowUpThenClose(t *testing.T) {
	u, repo := newDeals(t)
	d := domain.Deal{ID: uuid.New(), Stage: domain.StageProposal, FollowupCount: 4}
	writes := 0
	repo.EXPECT().LogFollowUp(mock.Anything, d.ID, "called again").
		Run(func(args mock.Arguments) { d.FollowupCount++ }).
		Return(func(context.Context, uuid.UUID, string) (domain.Deal, error) { return d, nil })
	repo.EXPECT().ModifyDeal(mock.Anything, d.ID, mock.Anything).Return(storedDeal(&d, &writes))

	got, err := u.AddFollowUp(context.Background(), d.ID, "  called again ")
	require.NoError(t, err)
	assert.Equal(t, 5, got.FollowupCount)

	res, err := u.ChangeStage(context.Background(), d.ID, domain.StageClosedLost, false)
	require.NoError(t, err)
	assert.True(t, res.Allowed)
	assert.Equal(t, domain.StageClosedLost, d.Stage)
}

func TestSnoozeShiftsByThreeDays(t *testing.T) {
	u, repo := newDeals(t)
	base := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	d := domain.Deal{ID: uuid.New(), FollowUpDate: &base}
	writes := 0
	repo.EXPECT().ModifyDeal(mock.Anything, d.ID, mock.Anything).Return(storedDeal(&d, &writes))

	got, err := u.Snooze(context.Background(), d.ID)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 3, 13, 0, 0, 0, 0, time.UTC), *got.FollowUpDate)

	got, err = u.Unsnooze(context.Background(), d.ID)
	require.NoError(t, err)
	assert.Equal(t, base, *got.FollowUpDate)
	assert.Equal(t, 2, writes)
}

func TestSnoozeWithoutDateStartsToday(t *testing.T) {
	u, repo := newDeals(t)
	d := domain.Deal{ID: uuid.New()}
	writes := 0
	repo.EXPECT().ModifyDeal(mock.Anything, d.ID, mock.Anything).Return(storedDeal(&d, &writes))

	got, err := u.Snooze(context.Background(), d.ID)
	require.NoError(t, err)
	require.NotNil(t, got.FollowUpDate)
	assert.Equal(t, time.Date(2026, 3, 5, 0, 0, 0, 0, time.UTC), *got.FollowUpDate)
}

func TestCreateDealDefaultsToLead(t *testing.T) {
	u, repo := newDeals(t)
	prospect := uuid.New()
	repo.EXPECT().
		CreateDeal(mock.Anything, mock.MatchedBy(func(d domain.Deal) bool {
			return d.Stage == domain.StageLead && d.Title == "Website rebuild" && *d.ProspectID == prospect
		})).
		Return(nil)

	d, err := u.CreateDeal(context.Background(), port.CreateDealReq{Title: " Website rebuild ", Value: 480000, ProspectID: &prospect})
	require.NoError(t, err)
	assert.Equal(t, int64(480000), d.Value)
	assert.Zero(t, d.FollowupCount)

	_, err = u.CreateDeal(context.Background(), port.CreateDealReq{Title: "x", Stage: "won"})
	assert.ErrorIs(t, err, domain.ErrValidation)
}
