package search_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/volunteerhub/volunteer-match-api/api/handlers/search"
	"github.com/volunteerhub/volunteer-match-api/models"
)

func newSkill(name string) models.Skill {
	return models.Skill{
		ID: primitive.NewObjectID(),
		Details: models.SkillDetails{
			UserID: "user-1",
			Name:   name,
			Level:  models.SkillLevelCompetent,
		},
	}
}

func TestCatalog_ContainsBothHalves(t *testing.T) {
	catalog := search.Catalog()

	assert.Len(t, catalog, len(search.TechRoles)+len(search.GenericSkills))
	assert.Equal(t, search.TechRoles[0], catalog[0])
}

func TestResolveLabel(t *testing.T) {
	assert.Equal(t, "React", search.ResolveLabel("react"))
	assert.Equal(t, "Go", search.ResolveLabel(" GOLANG "))
	assert.Equal(t, "Mentoring", search.ResolveLabel("mentoring"))

	// unknown values pass through so free-text filters still work
	assert.Equal(t, "underwater basket weaving", search.ResolveLabel("underwater basket weaving"))
}

func TestResolveValue(t *testing.T) {
	value, ok := search.ResolveValue("React")
	assert.True(t, ok)
	assert.Equal(t, "react", value)

	value, ok = search.ResolveValue("event planning")
	assert.True(t, ok)
	assert.Equal(t, "event-planning", value)

	_, ok = search.ResolveValue("juggling")
	assert.False(t, ok)
}

func TestProfileFilterSkills_FirstTwoPrimaryNextTwoSecondary(t *testing.T) {
	skills := []models.Skill{
		newSkill("React"),
		newSkill("Python"),
		newSkill("Mentoring"),
		newSkill("Fundraising"),
		newSkill("Teaching"), // fifth resolvable skill is dropped
	}

	primary, secondary := search.ProfileFilterSkills(skills)

	assert.Equal(t, []string{"react", "python"}, primary)
	assert.Equal(t, []string{"mentoring", "fundraising"}, secondary)
}

func TestProfileFilterSkills_SkipsUnresolvableSkills(t *testing.T) {
	skills := []models.Skill{
		newSkill("Juggling"),
		newSkill("React"),
		newSkill("Knitting"),
		newSkill("Python"),
		newSkill("Mentoring"),
	}

	primary, secondary := search.ProfileFilterSkills(skills)

	assert.Equal(t, []string{"react", "python"}, primary)
	assert.Equal(t, []string{"mentoring"}, secondary)
}

func TestProfileFilterSkills_EmptyProfile(t *testing.T) {
	primary, secondary := search.ProfileFilterSkills(nil)

	assert.Empty(t, primary)
	assert.Empty(t, secondary)
}
