package handlers

import (
	"encoding/json"
	"fmt"
	"math"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"

	"github.com/volunteerhub/volunteer-match-api/api"
	"github.com/volunteerhub/volunteer-match-api/config"
	"github.com/volunteerhub/volunteer-match-api/databases"
	"github.com/volunteerhub/volunteer-match-api/models"
	templates "github.com/volunteerhub/volunteer-match-api/templates/html"
)

// Application exported for testing purposes
type Application struct {
	DB  databases.ApplicationDatabase
	ODB databases.OpportunityDatabase
	RDB databases.VolunteeringRecordDatabase
	UDB databases.UserDatabase
}

// RegisterInterestHandler creates a pending application for a user and an
// opportunity. At most one non-rejected application may exist per
// (user, opportunity) pair; a rejected application does not block re-applying.
func (a Application) RegisterInterestHandler(w http.ResponseWriter, r *http.Request) {
	var req struct {
		UserID        string `json:"userID"`
		OpportunityID string `json:"opportunityID"`
		Notes         string `json:"notes"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		config.ErrorStatus("failed to decode request body", http.StatusBadRequest, w, err)
		return
	}

	if req.UserID == "" || req.OpportunityID == "" {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(models.ErrorResponse{
			Error: "userID and opportunityID are required",
			Code:  models.CodeInvalidInput,
		})
		return
	}

	oID, err := primitive.ObjectIDFromHex(req.OpportunityID)
	if err != nil {
		config.ErrorStatus("failed to get objectID from Hex", http.StatusBadRequest, w, err)
		return
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	opportunity, err := a.ODB.FindOne(ctx, bson.M{"_id": oID})
	if err != nil {
		config.ErrorStatus("failed to find opportunity", http.StatusNotFound, w, err)
		return
	}
	if opportunity.Details.Status != models.OpportunityStatusOpen {
		w.WriteHeader(http.StatusConflict)
		_ = json.NewEncoder(w).Encode(models.ErrorResponse{
			Error: fmt.Sprintf("opportunity is '%s', expected 'open'", opportunity.Details.Status),
			Code:  models.CodeInvalidState,
		})
		return
	}

	existing, err := a.DB.CountDocuments(ctx, bson.M{
		"application.userID":        req.UserID,
		"application.opportunityID": req.OpportunityID,
		"application.status":        bson.M{"$ne": models.ApplicationStatusRejected},
	})
	if err != nil {
		config.ErrorStatus("failed to check existing applications", http.StatusInternalServerError, w, err)
		return
	}
	if existing > 0 {
		w.WriteHeader(http.StatusConflict)
		_ = json.NewEncoder(w).Encode(models.ErrorResponse{
			Error: "an application for this opportunity already exists",
			Code:  models.CodeDuplicateApplication,
		})
		return
	}

	now := primitive.NewDateTimeFromTime(time.Now())
	application := models.Application{
		ID: primitive.NewObjectID(),
		Details: models.ApplicationDetails{
			UserID:        req.UserID,
			OpportunityID: req.OpportunityID,
			Status:        models.ApplicationStatusPending,
			Notes:         req.Notes,
			AppliedDate:   now,
			LastUpdated:   now,
		},
	}

	if _, err := a.DB.InsertOne(ctx, application); err != nil {
		config.ErrorStatus("failed to create application", http.StatusInternalServerError, w, err)
		return
	}

	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"message":     "Application submitted successfully",
		"id":          application.ID.Hex(),
		"application": models.ApplicantView(application),
	})
}

// ApplicationsByUserIDHandler returns all applications for the given user,
// with the applicant-facing display labels
func (a Application) ApplicationsByUserIDHandler(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["user_id"]

	zap.S().Debugf("user_id: '%v'", userID)

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	dbResp, err := a.DB.Find(ctx, bson.M{"application.userID": userID}, options.Find().SetSort(bson.M{"_id": -1}))
	if err != nil {
		config.ErrorStatus("failed to get applications", http.StatusNotFound, w, err)
		return
	}

	views := make([]models.ApplicantApplication, 0, len(dbResp))
	for _, app := range dbResp {
		views = append(views, models.ApplicantView(app))
	}

	b, err := json.Marshal(views)
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write(b)
}

// ApplicationByIDHandler returns an application by ID
func (a Application) ApplicationByIDHandler(w http.ResponseWriter, r *http.Request) {
	applicationID := mux.Vars(r)["application_id"]

	aID, err := primitive.ObjectIDFromHex(applicationID)
	if err != nil {
		config.ErrorStatus("failed to get objectID from Hex", http.StatusBadRequest, w, err)
		return
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	dbResp, err := a.DB.FindOne(ctx, bson.M{"_id": aID})
	if err != nil {
		config.ErrorStatus("failed to get application by ID", http.StatusNotFound, w, err)
		return
	}

	b, err := json.Marshal(models.ApplicantView(*dbResp))
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write(b)
}

// UpdateApplicationStatusHandler lets an admin approve or reject a pending
// application. Only status, review fields and lastUpdated change; approval
// also opens an active volunteering record for the pair.
func (a Application) UpdateApplicationStatusHandler(w http.ResponseWriter, r *http.Request) {
	applicationID := mux.Vars(r)["application_id"]

	aID, err := primitive.ObjectIDFromHex(applicationID)
	if err != nil {
		config.ErrorStatus("failed to get objectID from Hex", http.StatusBadRequest, w, err)
		return
	}

	var reviewData struct {
		Status     models.ApplicationStatus `json:"status"`
		ReviewerID string                   `json:"reviewerID"`
		Notes      string                   `json:"notes"`
	}
	if err := json.NewDecoder(r.Body).Decode(&reviewData); err != nil {
		config.ErrorStatus("failed to decode request body", http.StatusBadRequest, w, err)
		return
	}

	if reviewData.Status != models.ApplicationStatusApproved && reviewData.Status != models.ApplicationStatusRejected {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(models.ErrorResponse{
			Error: fmt.Sprintf("status must be 'approved' or 'rejected', got '%s'", reviewData.Status),
			Code:  models.CodeInvalidInput,
		})
		return
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	existing, err := a.DB.FindOne(ctx, bson.M{"_id": aID})
	if err != nil {
		config.ErrorStatus("failed to find application", http.StatusNotFound, w, err)
		return
	}

	if existing.Details.Status != models.ApplicationStatusPending {
		w.WriteHeader(http.StatusConflict)
		_ = json.NewEncoder(w).Encode(models.ErrorResponse{
			Error: fmt.Sprintf("application status is '%s', expected 'pending'", existing.Details.Status),
			Code:  models.CodeInvalidState,
		})
		return
	}

	now := primitive.NewDateTimeFromTime(time.Now())
	update := bson.M{
		"$set": bson.M{
			"application.status":      reviewData.Status,
			"application.reviewerID":  reviewData.ReviewerID,
			"application.reviewedAt":  now,
			"application.lastUpdated": now,
		},
	}

	if err := a.DB.UpdateOne(ctx, bson.M{"_id": aID}, update); err != nil {
		config.ErrorStatus("failed to update application", http.StatusInternalServerError, w, err)
		return
	}

	if reviewData.Status == models.ApplicationStatusApproved {
		record := models.VolunteeringRecord{
			ID: primitive.NewObjectID(),
			Details: models.VolunteeringRecordDetails{
				UserID:        existing.Details.UserID,
				OpportunityID: existing.Details.OpportunityID,
				Status:        models.RecordStatusActive,
				StartDate:     now,
				CreatedAt:     now,
				UpdatedAt:     now,
			},
		}
		if _, err := a.RDB.InsertOne(ctx, record); err != nil {
			zap.S().Errorw("failed to open volunteering record for approved application",
				"applicationID", applicationID, "error", err)
		}
	}

	a.sendDecisionEmail(existing, reviewData.Status, reviewData.Notes)

	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"message": "Application reviewed successfully",
		"status":  reviewData.Status,
	})
}

// PendingApplicationsHandler returns the paginated admin review queue
func (a Application) PendingApplicationsHandler(w http.ResponseWriter, r *http.Request) {
	Limit, err := strconv.Atoi(r.URL.Query().Get("limit"))
	if err != nil || Limit <= 0 {
		Limit = 20
	}
	limit64 := int64(Limit)
	Page := getPage(Page, r)
	skip64 := int64(Page * Limit)

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	filter := bson.M{
		"application.status": models.ApplicationStatusPending,
	}

	type findResult struct {
		applications []models.Application
		err          error
	}
	type countResult struct {
		count int64
		err   error
	}

	findChan := make(chan findResult, 1)
	countChan := make(chan countResult, 1)

	go func() {
		applications, err := a.DB.Find(ctx, filter, &options.FindOptions{
			Limit: &limit64,
			Skip:  &skip64,
			Sort:  bson.M{"_id": 1},
		})
		findChan <- findResult{applications: applications, err: err}
	}()

	go func() {
		count, err := a.DB.CountDocuments(ctx, filter)
		countChan <- countResult{count: count, err: err}
	}()

	findRes := <-findChan
	countRes := <-countChan

	if findRes.err != nil {
		config.ErrorStatus("failed to get pending applications", http.StatusNotFound, w, findRes.err)
		return
	}

	dbResp := findRes.applications
	var totalCount int64
	if countRes.err != nil {
		totalCount = int64(len(dbResp))
	} else {
		totalCount = countRes.count
	}

	if len(dbResp) == 0 {
		dbResp = []models.Application{}
	}

	totalPages := int(math.Ceil(float64(totalCount) / float64(Limit)))

	response := map[string]interface{}{
		"data":       dbResp,
		"page":       Page,
		"limit":      Limit,
		"totalCount": totalCount,
		"totalPages": totalPages,
	}

	b, err := json.Marshal(response)
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write(b)
}

// sendDecisionEmail notifies the applicant of the review outcome.
// Best-effort: failures are logged, never surfaced to the admin.
func (a Application) sendDecisionEmail(application *models.Application, status models.ApplicationStatus, notes string) {
	if a.UDB == nil || a.ODB == nil {
		return
	}

	ctx, cancel := api.WithQueryTimeout(nil)
	defer cancel()

	uID, err := primitive.ObjectIDFromHex(application.Details.UserID)
	if err != nil {
		zap.S().Warnw("decision email skipped, bad userID", "userID", application.Details.UserID)
		return
	}
	user, err := a.UDB.FindOne(ctx, bson.M{"_id": uID})
	if err != nil {
		zap.S().Warnw("decision email skipped, user not found", "userID", application.Details.UserID)
		return
	}

	opportunityTitle := "a volunteering opportunity"
	if oID, err := primitive.ObjectIDFromHex(application.Details.OpportunityID); err == nil {
		if opportunity, err := a.ODB.FindOne(ctx, bson.M{"_id": oID}); err == nil {
			opportunityTitle = opportunity.Details.Title
		}
	}

	approved := status == models.ApplicationStatusApproved
	subject := fmt.Sprintf("Your application for %s", opportunityTitle)
	html := templates.RenderApplicationDecisionEmail(user.Details.Name, opportunityTitle, approved, notes)

	if err := sendEmail(user.Details.Name, user.Details.Email, subject, html); err != nil {
		zap.S().Errorw("failed to send decision email", "userID", application.Details.UserID, "error", err)
	}
}
