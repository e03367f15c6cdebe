// Package docs VolunteerHub Match API.
//
// Documentation of the VolunteerHub volunteer matching API.
//
//     Schemes: https
//     BasePath: /
//     Version: 1.0.0
//     Host: https://volunteer-match-api.herokuapp.com
//
//     Consumes:
//     - application/json
//
//     Produces:
//     - application/json
//
//     Security:
//     - basic
//
//    SecurityDefinitions:
//    basic:
//      type: basic
//
// swagger:meta
package docs

import (
	"github.com/volunteerhub/volunteer-match-api/models"
)

// swagger:route GET /health health healthEndpointID
// Lists the healthchex of the web service api.
// responses:
//   200: healthResponse

// Shows the current health of the api. true means it is alive, false means it is not.
// swagger:response healthResponse
type healthResponseWrapper struct {
	// in:body
	Body models.HealthCheckResponse
}

// swagger:route GET /api/v1/opportunity/{opportunity_id} opportunities opportunityByID
// Gets a single volunteering opportunity by ID.
// responses:
//   200: opportunityByIDResponse

// Shows a single opportunity by the given {ID}
// swagger:response opportunityByIDResponse
type opportunityByIDResponseWrapper struct {
	// in:body
	Body models.Opportunity
}

// swagger:route GET /api/v1/applications/{user_id} applications applicationsByUserID
// Lists the applications submitted by a user, newest first.
// responses:
//   200: applicationsByUserIDResponse

// Shows all applications for the given {user_id}
// swagger:response applicationsByUserIDResponse
type applicationsByUserIDResponseWrapper struct {
	// in:body
	Body []models.ApplicantApplication
}

// swagger:route GET /api/v1/volunteering-records/{user_id}/stats records volunteerStatsByUserID
// Shows the derived volunteering stats for a user.
// responses:
//   200: volunteerStatsResponse

// Total hours and per-status record counts for the given {user_id}
// swagger:response volunteerStatsResponse
type volunteerStatsResponseWrapper struct {
	// in:body
	Body models.VolunteerStats
}
