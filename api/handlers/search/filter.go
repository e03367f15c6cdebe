package search

import (
	"strings"

	"github.com/volunteerhub/volunteer-match-api/models"
)

// Tab scopes the opportunity list the filter runs over
type Tab string

// Tabs
const (
	TabAll     Tab = "all"
	TabOpen    Tab = "open"
	TabApplied Tab = "applied"
)

// maxSkillSlots is the number of primary (and secondary) skill filter slots
const maxSkillSlots = 2

// Criteria holds the opportunity filter inputs. Zero values mean "no
// constraint" for their category.
type Criteria struct {
	SearchTerm      string
	PrimarySkills   []string // catalog values, at most 2 are considered
	SecondarySkills []string // catalog values, at most 2 are considered
	TimeCommitment  TimeCommitment
	Tab             Tab
}

// FilterOpportunities returns the subset of opportunities matching the
// criteria: AND across categories, OR within a category. appliedIDs scopes
// the "applied" tab and is ignored otherwise. An empty result is a valid,
// expected outcome; the function never errors.
func FilterOpportunities(opportunities []models.Opportunity, c Criteria, appliedIDs []string) []models.Opportunity {
	applied := make(map[string]bool, len(appliedIDs))
	for _, id := range appliedIDs {
		applied[id] = true
	}

	selectedLabels := selectedSkillLabels(c)

	matched := []models.Opportunity{}
	for _, op := range opportunities {
		if !matchesTab(op, c.Tab, applied) {
			continue
		}
		if !matchesSearchTerm(op, c.SearchTerm) {
			continue
		}
		if !matchesSkills(op, selectedLabels) {
			continue
		}
		if !MatchesTimeCommitment(c.TimeCommitment, op.Details.TimeCommitment) {
			continue
		}
		matched = append(matched, op)
	}
	return matched
}

// selectedSkillLabels resolves the primary and secondary slots to display
// labels. Primary and secondary are independent OR terms.
func selectedSkillLabels(c Criteria) []string {
	var labels []string
	for _, group := range [][]string{c.PrimarySkills, c.SecondarySkills} {
		if len(group) > maxSkillSlots {
			group = group[:maxSkillSlots]
		}
		for _, value := range group {
			if strings.TrimSpace(value) == "" {
				continue
			}
			labels = append(labels, ResolveLabel(value))
		}
	}
	return labels
}

func matchesTab(op models.Opportunity, tab Tab, applied map[string]bool) bool {
	switch tab {
	case TabOpen:
		return op.Details.Status == models.OpportunityStatusOpen
	case TabApplied:
		return applied[op.ID.Hex()]
	default: // TabAll or unset
		return true
	}
}

func matchesSearchTerm(op models.Opportunity, term string) bool {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return true
	}
	if strings.Contains(strings.ToLower(op.Details.Title), term) ||
		strings.Contains(strings.ToLower(op.Details.Description), term) ||
		strings.Contains(strings.ToLower(op.Details.Organization), term) {
		return true
	}
	for _, skill := range op.Details.RequiredSkills {
		if strings.Contains(strings.ToLower(skill), term) {
			return true
		}
	}
	return false
}

func matchesSkills(op models.Opportunity, selectedLabels []string) bool {
	if len(selectedLabels) == 0 {
		return true
	}
	for _, label := range selectedLabels {
		needle := strings.ToLower(label)
		for _, skill := range op.Details.RequiredSkills {
			if strings.Contains(strings.ToLower(skill), needle) {
				return true
			}
		}
	}
	return false
}
