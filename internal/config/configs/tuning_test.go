package configs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadTuningDefaultsWithoutFile(t *testing.T) {
	got, err := LoadTuning("")
	require.NoError(t, err)
	assert.Equal(t, DefaultTuning(), got)

	got, err = LoadTuning(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)
	assert.Equal(t, 5, got.Guard.MinFollowups)
}

func TestLoadTuningOverridesOnlyGivenKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tuning.yaml")
	body := []byte("guard:\n  min_followups: 7\nsequence:\n  step_delay_days: 4\ntimezone: Europe/Berlin\n")
	require.NoError(t, os.WriteFile(path, body, 0o600))

	got, err := LoadTuning(path)
	require.NoError(t, err)
	assert.Equal(t, 7, got.Guard.MinFollowups)
	assert.Equal(t, 3, got.Guard.SnoozeDays)
	assert.Equal(t, 4, got.Sequence.StepDelayDays)
	assert.Equal(t, 3, got.Confidence.HighMinSignals)
	assert.Equal(t, "Europe/Berlin", got.Location().String())
}

func TestLoadTuningRejectsInvertedThresholds(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tuning.yaml")
	body := []byte("confidence:\n  high_min_signals: 1\n  medium_min_signals: 2\n")
	require.NoError(t, os.WriteFile(path, body, 0o600))

	_, err := LoadTuning(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "high_min_signals")
}
