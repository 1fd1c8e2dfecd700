package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"clubraise/internal/domain"
)

func TestImpactAreaByID(t *testing.T) {
	t.Run("Known Area", func(t *testing.T) {
		area, ok := domain.ImpactAreaByID("sport-participation")

		assert.True(t, ok)
		assert.Equal(t, "Sport & Participation", area.Label)
	})

	t.Run("Unknown Area", func(t *testing.T) {
		_, ok := domain.ImpactAreaByID("time-travel")

		assert.False(t, ok)
	})
}

func TestImpactAreasFor(t *testing.T) {
	idsFor := func(orgType domain.OrgType) []string {
		var ids []string
		for _, area := range domain.ImpactAreasFor(orgType) {
			ids = append(ids, area.ID)
		}
		return ids
	}

	t.Run("Club Gets Sport But Not Relief", func(t *testing.T) {
		ids := idsFor(domain.OrgClub)

		assert.Contains(t, ids, "sport-participation")
		assert.NotContains(t, ids, "emergency-relief")
		assert.NotContains(t, ids, "animal-welfare")
	})

	t.Run("Charity Gets Relief But Not Sport", func(t *testing.T) {
		ids := idsFor(domain.OrgCharity)

		assert.Contains(t, ids, "emergency-relief")
		assert.Contains(t, ids, "animal-welfare")
		assert.NotContains(t, ids, "sport-participation")
	})

	t.Run("Universal Areas Apply Everywhere", func(t *testing.T) {
		for _, orgType := range []domain.OrgType{domain.OrgClub, domain.OrgSchool, domain.OrgCharity, domain.OrgCause} {
			assert.Contains(t, idsFor(orgType), "community-inclusion", "org type %s", orgType)
		}
	})
}

func TestToggleImpactArea(t *testing.T) {
	t.Run("Adds When Absent", func(t *testing.T) {
		selected := domain.ImpactAreaIDs{"community-inclusion"}

		result := domain.ToggleImpactArea(selected, "health-wellbeing")

		assert.Equal(t, domain.ImpactAreaIDs{"community-inclusion", "health-wellbeing"}, result)
	})

	t.Run("Removes When Present Preserving Order", func(t *testing.T) {
		selected := domain.ImpactAreaIDs{"community-inclusion", "health-wellbeing", "sport-participation"}

		result := domain.ToggleImpactArea(selected, "health-wellbeing")

		assert.Equal(t, domain.ImpactAreaIDs{"community-inclusion", "sport-participation"}, result)
	})

	t.Run("Full Selection Is Unchanged By Add", func(t *testing.T) {
		selected := domain.ImpactAreaIDs{"community-inclusion", "health-wellbeing", "sport-participation"}

		result := domain.ToggleImpactArea(selected, "education-learning")

		assert.Equal(t, selected, result)
	})

	t.Run("Full Selection Still Allows Remove", func(t *testing.T) {
		selected := domain.ImpactAreaIDs{"community-inclusion", "health-wellbeing", "sport-participation"}

		result := domain.ToggleImpactArea(selected, "sport-participation")

		assert.Equal(t, domain.ImpactAreaIDs{"community-inclusion", "health-wellbeing"}, result)
	})

	t.Run("Empty Selection", func(t *testing.T) {
		result := domain.ToggleImpactArea(nil, "community-inclusion")

		assert.Equal(t, domain.ImpactAreaIDs{"community-inclusion"}, result)
	})
}
