package search

import (
	"strings"

	"github.com/volunteerhub/volunteer-match-api/models"
)

// SkillOption maps a stable filter value to the human-readable label that
// opportunities carry in their requiredSkills list
type SkillOption struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// TechRoles is the tech-role half of the skill catalog
var TechRoles = []SkillOption{
	{Value: "react", Label: "React"},
	{Value: "angular", Label: "Angular"},
	{Value: "vue", Label: "Vue.js"},
	{Value: "node", Label: "Node.js"},
	{Value: "python", Label: "Python"},
	{Value: "java", Label: "Java"},
	{Value: "golang", Label: "Go"},
	{Value: "css", Label: "CSS"},
	{Value: "mobile", Label: "Mobile Development"},
	{Value: "devops", Label: "DevOps"},
	{Value: "aws", Label: "AWS"},
	{Value: "data-analysis", Label: "Data Analysis"},
	{Value: "ux-design", Label: "UX Design"},
	{Value: "qa-testing", Label: "QA Testing"},
}

// GenericSkills is the non-technical half of the skill catalog
var GenericSkills = []SkillOption{
	{Value: "project-management", Label: "Project Management"},
	{Value: "communication", Label: "Communication"},
	{Value: "fundraising", Label: "Fundraising"},
	{Value: "event-planning", Label: "Event Planning"},
	{Value: "mentoring", Label: "Mentoring"},
	{Value: "marketing", Label: "Marketing"},
	{Value: "social-media", Label: "Social Media"},
	{Value: "copywriting", Label: "Copywriting"},
	{Value: "leadership", Label: "Leadership"},
	{Value: "teaching", Label: "Teaching"},
}

var (
	valueToLabel = map[string]string{}
	labelToValue = map[string]string{}
)

func init() {
	for _, opt := range Catalog() {
		valueToLabel[opt.Value] = opt.Label
		labelToValue[strings.ToLower(opt.Label)] = opt.Value
	}
}

// Catalog returns the full skill catalog, tech roles first
func Catalog() []SkillOption {
	out := make([]SkillOption, 0, len(TechRoles)+len(GenericSkills))
	out = append(out, TechRoles...)
	out = append(out, GenericSkills...)
	return out
}

// ResolveLabel maps a filter value to its display label. Unknown values are
// returned as-is so that free-text skill filters still match best-effort.
func ResolveLabel(value string) string {
	if label, ok := valueToLabel[strings.ToLower(strings.TrimSpace(value))]; ok {
		return label
	}
	return value
}

// ResolveValue maps a display label back to its filter value
func ResolveValue(label string) (string, bool) {
	value, ok := labelToValue[strings.ToLower(strings.TrimSpace(label))]
	return value, ok
}

// ProfileFilterSkills maps a user's own skill list into the filter's skill
// slots: the first two resolvable skills fill the primary slots, the next two
// the secondary slots. This is a convenience mapping, not a persisted
// preference.
func ProfileFilterSkills(skills []models.Skill) (primary, secondary []string) {
	for _, s := range skills {
		value, ok := ResolveValue(s.Details.Name)
		if !ok {
			continue
		}
		if len(primary) < maxSkillSlots {
			primary = append(primary, value)
		} else if len(secondary) < maxSkillSlots {
			secondary = append(secondary, value)
		} else {
			break
		}
	}
	return primary, secondary
}
