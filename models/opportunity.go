package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Opportunity statuses. An opportunity is immutable once posted except for
// these transitions, which only an admin may perform.
const (
	OpportunityStatusOpen      = "open"
	OpportunityStatusActive    = "active"
	OpportunityStatusClosed    = "closed"
	OpportunityStatusFilled    = "filled"
	OpportunityStatusCompleted = "completed"
)

// Opportunity holds the structure for the opportunity collection in mongo
type Opportunity struct {
	ID      primitive.ObjectID `json:"_id" bson:"_id"`
	Details OpportunityDetails `json:"opportunity" bson:"opportunity"`
	Version int32              `json:"__v" bson:"__v"`
}

// OpportunityDetails holds the structure for the inner opportunity structure as
// defined in the opportunity collection in mongo
type OpportunityDetails struct {
	Title        string `json:"title" bson:"title"`
	Description  string `json:"description" bson:"description"`
	Organization string `json:"organization" bson:"organization"`

	// RequiredSkills holds human-readable skill labels, e.g. "React"
	RequiredSkills []string `json:"requiredSkills" bson:"requiredSkills"`

	// TimeCommitment is free text, e.g. "5-10 hours/week". Bucket filtering
	// against it is best-effort, see the search package.
	TimeCommitment  string `json:"timeCommitment" bson:"timeCommitment"`
	ProjectDuration string `json:"projectDuration" bson:"projectDuration"`

	Status   string `json:"status" bson:"status"` // "open", "active", "closed", "filled", "completed"
	RoleType string `json:"roleType" bson:"roleType"`
	VideoURL string `json:"videoURL" bson:"videoURL"`

	PostedDate primitive.DateTime `json:"postedDate" bson:"postedDate"`
	CreatedAt  primitive.DateTime `json:"createdAt" bson:"createdAt"`
	UpdatedAt  primitive.DateTime `json:"updatedAt" bson:"updatedAt"`
}

// ValidOpportunityStatus reports whether s is part of the opportunity status
// vocabulary
func ValidOpportunityStatus(s string) bool {
	switch s {
	case OpportunityStatusOpen, OpportunityStatusActive, OpportunityStatusClosed,
		OpportunityStatusFilled, OpportunityStatusCompleted:
		return true
	}
	return false
}
