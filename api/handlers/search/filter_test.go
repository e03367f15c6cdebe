package search_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/volunteerhub/volunteer-match-api/api/handlers/search"
	"github.com/volunteerhub/volunteer-match-api/models"
)

func newOpportunity(title, org, status, timeCommitment string, skills ...string) models.Opportunity {
	return models.Opportunity{
		ID: primitive.NewObjectID(),
		Details: models.OpportunityDetails{
			Title:          title,
			Organization:   org,
			Status:         status,
			TimeCommitment: timeCommitment,
			RequiredSkills: skills,
		},
	}
}

func TestFilterOpportunities_NoCriteriaReturnsEverything(t *testing.T) {
	opportunities := []models.Opportunity{
		newOpportunity("Build a food bank website", "City Food Bank", models.OpportunityStatusOpen, "5-10 hours/week", "React", "CSS"),
		newOpportunity("Mentor young coders", "Code Club", models.OpportunityStatusClosed, "Less than 5 hours/week", "Mentoring"),
	}

	got := search.FilterOpportunities(opportunities, search.Criteria{}, nil)

	assert.Len(t, got, 2)
}

func TestFilterOpportunities_SkillValueResolvesToLabel(t *testing.T) {
	reactOp := newOpportunity("Build a food bank website", "City Food Bank", models.OpportunityStatusOpen, "5-10 hours/week", "React", "CSS")
	pythonOp := newOpportunity("Data pipeline for shelters", "Shelter Net", models.OpportunityStatusOpen, "10-20 hours/week", "Python")

	got := search.FilterOpportunities([]models.Opportunity{reactOp, pythonOp}, search.Criteria{
		PrimarySkills: []string{"react"},
	}, nil)

	assert.Len(t, got, 1)
	assert.Equal(t, reactOp.ID, got[0].ID)
}

func TestFilterOpportunities_SkillsAreORedWithinTheCategory(t *testing.T) {
	reactOp := newOpportunity("Build a food bank website", "City Food Bank", models.OpportunityStatusOpen, "5-10 hours/week", "React")
	pythonOp := newOpportunity("Data pipeline for shelters", "Shelter Net", models.OpportunityStatusOpen, "10-20 hours/week", "Python")
	mentorOp := newOpportunity("Mentor young coders", "Code Club", models.OpportunityStatusOpen, "Less than 5 hours/week", "Mentoring")

	got := search.FilterOpportunities([]models.Opportunity{reactOp, pythonOp, mentorOp}, search.Criteria{
		PrimarySkills:   []string{"react"},
		SecondarySkills: []string{"python"},
	}, nil)

	assert.Len(t, got, 2)
}

func TestFilterOpportunities_CategoriesAreANDed(t *testing.T) {
	reactOp := newOpportunity("Build a food bank website", "City Food Bank", models.OpportunityStatusOpen, "5-10 hours/week", "React")
	reactHeavyOp := newOpportunity("Rebuild the donor portal", "City Food Bank", models.OpportunityStatusOpen, "20+ hours/week", "React")

	got := search.FilterOpportunities([]models.Opportunity{reactOp, reactHeavyOp}, search.Criteria{
		PrimarySkills:  []string{"react"},
		TimeCommitment: search.TimeCommitment5To10,
	}, nil)

	assert.Len(t, got, 1)
	assert.Equal(t, reactOp.ID, got[0].ID)
}

func TestFilterOpportunities_SkillSlotsAreCappedAtTwo(t *testing.T) {
	mentorOp := newOpportunity("Mentor young coders", "Code Club", models.OpportunityStatusOpen, "Less than 5 hours/week", "Mentoring")

	// the third slot would match, but only the first two count
	got := search.FilterOpportunities([]models.Opportunity{mentorOp}, search.Criteria{
		PrimarySkills: []string{"react", "python", "mentoring"},
	}, nil)

	assert.Empty(t, got)
}

func TestFilterOpportunities_SearchTermMatchesTitleOrgAndSkills(t *testing.T) {
	reactOp := newOpportunity("Build a food bank website", "City Food Bank", models.OpportunityStatusOpen, "5-10 hours/week", "React")
	mentorOp := newOpportunity("Mentor young coders", "Code Club", models.OpportunityStatusOpen, "Less than 5 hours/week", "Mentoring")

	byTitle := search.FilterOpportunities([]models.Opportunity{reactOp, mentorOp}, search.Criteria{SearchTerm: "food bank"}, nil)
	byOrg := search.FilterOpportunities([]models.Opportunity{reactOp, mentorOp}, search.Criteria{SearchTerm: "code club"}, nil)
	bySkill := search.FilterOpportunities([]models.Opportunity{reactOp, mentorOp}, search.Criteria{SearchTerm: "react"}, nil)

	assert.Len(t, byTitle, 1)
	assert.Len(t, byOrg, 1)
	assert.Len(t, bySkill, 1)
	assert.Equal(t, mentorOp.ID, byOrg[0].ID)
}

func TestFilterOpportunities_OpenTabExcludesClosed(t *testing.T) {
	openOp := newOpportunity("Build a food bank website", "City Food Bank", models.OpportunityStatusOpen, "5-10 hours/week", "React")
	closedOp := newOpportunity("Mentor young coders", "Code Club", models.OpportunityStatusClosed, "Less than 5 hours/week", "Mentoring")

	got := search.FilterOpportunities([]models.Opportunity{openOp, closedOp}, search.Criteria{Tab: search.TabOpen}, nil)

	assert.Len(t, got, 1)
	assert.Equal(t, openOp.ID, got[0].ID)
}

func TestFilterOpportunities_AppliedTabWithNoApplicationsIsEmpty(t *testing.T) {
	openOp := newOpportunity("Build a food bank website", "City Food Bank", models.OpportunityStatusOpen, "5-10 hours/week", "React")

	got := search.FilterOpportunities([]models.Opportunity{openOp}, search.Criteria{Tab: search.TabApplied}, nil)

	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestFilterOpportunities_AppliedTabScopesToAppliedIDs(t *testing.T) {
	appliedOp := newOpportunity("Build a food bank website", "City Food Bank", models.OpportunityStatusOpen, "5-10 hours/week", "React")
	otherOp := newOpportunity("Mentor young coders", "Code Club", models.OpportunityStatusOpen, "Less than 5 hours/week", "Mentoring")

	got := search.FilterOpportunities(
		[]models.Opportunity{appliedOp, otherOp},
		search.Criteria{Tab: search.TabApplied},
		[]string{appliedOp.ID.Hex()},
	)

	assert.Len(t, got, 1)
	assert.Equal(t, appliedOp.ID, got[0].ID)
}
