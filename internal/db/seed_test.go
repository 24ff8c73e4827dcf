package db

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeedIDIsStable(t *testing.T) {
	assert.Equal(t, seedID("lead", 3), seedID("lead", 3))
	assert.NotEqual(t, seedID("lead", 3), seedID("prospect", 3))
}

func TestSeedLeadRaw(t *testing.T) {
	raw, err := seedLeadRaw("Demo Agency 4", "hello@demo-agency-4.example",
		"https://demo-agency-4.example", "web studio", "Denver, CO")
	require.NoError(t, err)

	var got map[string]string
	require.NoError(t, json.Unmarshal(raw, &got))
	assert.Equal(t, map[string]string{
		"agency_name": "Demo Agency 4",
		"email":       "hello@demo-agency-4.example",
		"website":     "https://demo-agency-4.example",
		"niche":       "web studio",
		"location":    "Denver, CO",
	}, got)
}
