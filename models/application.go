package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// ApplicationStatus is the canonical 3-state application lifecycle. The
// applicant-facing "Successful"/"Unsuccessful" labels are presentation only
// and are derived via DisplayLabel, never stored.
type ApplicationStatus string

// Application lifecycle states
const (
	ApplicationStatusPending  ApplicationStatus = "pending"
	ApplicationStatusApproved ApplicationStatus = "approved"
	ApplicationStatusRejected ApplicationStatus = "rejected"
)

// Application holds the structure for the application collection in mongo
type Application struct {
	ID      primitive.ObjectID `json:"_id" bson:"_id"`
	Details ApplicationDetails `json:"application" bson:"application"`
	Version int32              `json:"__v" bson:"__v"`
}

// ApplicationDetails holds the structure for the inner application structure
// as defined in the application collection in mongo
type ApplicationDetails struct {
	UserID        string            `json:"userID" bson:"userID"`
	OpportunityID string            `json:"opportunityID" bson:"opportunityID"`
	Status        ApplicationStatus `json:"status" bson:"status"` // "pending", "approved", "rejected"
	Notes         string            `json:"notes" bson:"notes"`

	// Review
	ReviewerID string             `json:"reviewerID" bson:"reviewerID"`
	ReviewedAt primitive.DateTime `json:"reviewedAt" bson:"reviewedAt"`

	AppliedDate primitive.DateTime `json:"appliedDate" bson:"appliedDate"`
	LastUpdated primitive.DateTime `json:"lastUpdated" bson:"lastUpdated"`
}

// ValidApplicationStatus reports whether s is part of the canonical status
// vocabulary
func ValidApplicationStatus(s ApplicationStatus) bool {
	switch s {
	case ApplicationStatusPending, ApplicationStatusApproved, ApplicationStatusRejected:
		return true
	}
	return false
}

// DisplayLabel maps the canonical status to the label shown to applicants
func (s ApplicationStatus) DisplayLabel() string {
	switch s {
	case ApplicationStatusApproved:
		return "Successful"
	case ApplicationStatusRejected:
		return "Unsuccessful"
	default:
		return "Pending"
	}
}

// ApplicantApplication is the applicant-facing view of an application,
// carrying the display label alongside the stored document
type ApplicantApplication struct {
	Application
	DisplayStatus string `json:"displayStatus"`
}

// ApplicantView builds the applicant-facing view of an application
func ApplicantView(a Application) ApplicantApplication {
	return ApplicantApplication{
		Application:   a,
		DisplayStatus: a.Details.Status.DisplayLabel(),
	}
}
