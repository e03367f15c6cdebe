package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// SkillLevel is an ordered proficiency scale
type SkillLevel string

// Skill levels, lowest to highest
const (
	SkillLevelNone       SkillLevel = "none"
	SkillLevelLearning   SkillLevel = "learning"
	SkillLevelFamiliar   SkillLevel = "familiar"
	SkillLevelCompetent  SkillLevel = "competent"
	SkillLevelProficient SkillLevel = "proficient"
	SkillLevelAdvanced   SkillLevel = "advanced"
	SkillLevelExpert     SkillLevel = "expert"
	SkillLevelTeacher    SkillLevel = "teacher"
)

var skillLevelRanks = map[SkillLevel]int{
	SkillLevelNone:       0,
	SkillLevelLearning:   1,
	SkillLevelFamiliar:   2,
	SkillLevelCompetent:  3,
	SkillLevelProficient: 4,
	SkillLevelAdvanced:   5,
	SkillLevelExpert:     6,
	SkillLevelTeacher:    7,
}

// Rank returns the position of the level on the ordered scale, -1 if the
// level is not part of the vocabulary
func (l SkillLevel) Rank() int {
	if r, ok := skillLevelRanks[l]; ok {
		return r
	}
	return -1
}

// ValidSkillLevel reports whether l is part of the skill level vocabulary
func ValidSkillLevel(l SkillLevel) bool {
	return l.Rank() >= 0
}

// Skill holds the structure for the skill collection in mongo. Skills are
// owned by a user and mutated via profile edits.
type Skill struct {
	ID      primitive.ObjectID `json:"_id" bson:"_id"`
	Details SkillDetails       `json:"skill" bson:"skill"`
	Version int32              `json:"__v" bson:"__v"`
}

// SkillDetails holds the structure for the inner skill structure as defined
// in the skill collection in mongo
type SkillDetails struct {
	UserID    string             `json:"userID" bson:"userID"`
	Name      string             `json:"name" bson:"name"`
	Level     SkillLevel         `json:"level" bson:"level"`
	CreatedAt primitive.DateTime `json:"createdAt" bson:"createdAt"`
	UpdatedAt primitive.DateTime `json:"updatedAt" bson:"updatedAt"`
}
