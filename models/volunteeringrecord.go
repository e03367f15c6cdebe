package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Volunteering record statuses. Completed and dropped are terminal.
const (
	RecordStatusActive    = "active"
	RecordStatusCompleted = "completed"
	RecordStatusDropped   = "dropped"
)

// VolunteeringRecord holds the structure for the volunteeringRecord
// collection in mongo
type VolunteeringRecord struct {
	ID      primitive.ObjectID        `json:"_id" bson:"_id"`
	Details VolunteeringRecordDetails `json:"volunteeringRecord" bson:"volunteeringRecord"`
	Version int32                     `json:"__v" bson:"__v"`
}

// VolunteeringRecordDetails holds the structure for the inner volunteering
// record structure as defined in the volunteeringRecord collection in mongo
type VolunteeringRecordDetails struct {
	UserID        string `json:"userID" bson:"userID"`
	OpportunityID string `json:"opportunityID" bson:"opportunityID"`

	// HoursContributed is an absolute value set by the volunteer, never an
	// increment. Editable only while the record is active.
	HoursContributed float64 `json:"hoursContributed" bson:"hoursContributed"`

	Status   string `json:"status" bson:"status"` // "active", "completed", "dropped"
	Feedback string `json:"feedback" bson:"feedback"`

	StartDate primitive.DateTime `json:"startDate" bson:"startDate"`
	EndDate   primitive.DateTime `json:"endDate" bson:"endDate"`
	CreatedAt primitive.DateTime `json:"createdAt" bson:"createdAt"`
	UpdatedAt primitive.DateTime `json:"updatedAt" bson:"updatedAt"`
}

// ValidRecordStatus reports whether s is part of the record status vocabulary
func ValidRecordStatus(s string) bool {
	switch s {
	case RecordStatusActive, RecordStatusCompleted, RecordStatusDropped:
		return true
	}
	return false
}

// VolunteerStats holds the derived aggregates for a single user. These are
// recomputed on every read, not cached.
type VolunteerStats struct {
	TotalHours               float64 `json:"totalHours"`
	ActiveCount              int     `json:"activeCount"`
	CompletedCount           int     `json:"completedCount"`
	PendingApplicationsCount int     `json:"pendingApplicationsCount"`
}
