package roles

import (
	"testing"

	"github.com/spboyer/meetprep/internal/models"
	"github.com/stretchr/testify/require"
)

func TestNewRegistry_SixRolesInOrder(t *testing.T) {
	reg := NewRegistry(models.GenerationParams{ModelID: "gpt-4.1-nano", Temperature: 0.7})

	all := reg.All()
	require.Len(t, all, 6)
	require.Equal(t, ContextSpecialist, all[0].Name)
	require.Equal(t, IndustryAnalyst, all[1].Name)
	require.Equal(t, Strategist, all[2].Name)
	require.Equal(t, BriefSynthesizer, all[3].Name)
	require.Equal(t, RehearsalCoach, all[4].Name)
	require.Equal(t, FollowUpPartner, all[5].Name)
}

func TestNewRegistry_SearchCapability(t *testing.T) {
	reg := NewRegistry(models.GenerationParams{})

	searchable := 0
	for _, role := range reg.All() {
		if role.AllowSearch {
			searchable++
		}
	}
	require.Equal(t, 2, searchable)

	require.True(t, reg.MustGet(ContextSpecialist).AllowSearch)
	require.True(t, reg.MustGet(IndustryAnalyst).AllowSearch)
	require.False(t, reg.MustGet(RehearsalCoach).AllowSearch)
}

func TestNewRegistry_SharedParams(t *testing.T) {
	params := models.GenerationParams{ModelID: "gpt-4.1", Temperature: 0.2}
	reg := NewRegistry(params)

	for _, role := range reg.All() {
		require.Equal(t, params, role.Params)
	}
}

func TestGet_UnknownRole(t *testing.T) {
	reg := NewRegistry(models.GenerationParams{})
	_, err := reg.Get("Chief Vibes Officer")
	require.Error(t, err)
}
