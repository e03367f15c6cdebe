package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
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
)

// VolunteeringRecord exported for testing purposes
type VolunteeringRecord struct {
	DB  databases.VolunteeringRecordDatabase
	ADB databases.ApplicationDatabase
}

// VolunteeringRecordsByUserIDHandler returns all volunteering records for the
// given user
func (v VolunteeringRecord) VolunteeringRecordsByUserIDHandler(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["user_id"]

	zap.S().Debugf("user_id: '%v'", userID)

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	dbResp, err := v.DB.Find(ctx, bson.M{"volunteeringRecord.userID": userID}, options.Find().SetSort(bson.M{"_id": -1}))
	if err != nil {
		config.ErrorStatus("failed to get volunteering records", http.StatusNotFound, w, err)
		return
	}

	if len(dbResp) == 0 {
		dbResp = []models.VolunteeringRecord{}
	}
	b, err := json.Marshal(dbResp)
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write(b)
}

// UpdateVolunteerHoursHandler sets the hours contributed on an active record.
// The value is an absolute set, not an increment. Hours must be non-negative
// and the record must be active.
func (v VolunteeringRecord) UpdateVolunteerHoursHandler(w http.ResponseWriter, r *http.Request) {
	var req struct {
		RecordID string  `json:"recordID"`
		Hours    float64 `json:"hours"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		config.ErrorStatus("failed to decode request body", http.StatusBadRequest, w, err)
		return
	}

	if req.Hours < 0 {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(models.ErrorResponse{
			Error: fmt.Sprintf("hours must be non-negative, got %v", req.Hours),
			Code:  models.CodeInvalidInput,
		})
		return
	}

	rID, err := primitive.ObjectIDFromHex(req.RecordID)
	if err != nil {
		config.ErrorStatus("failed to get objectID from Hex", http.StatusBadRequest, w, err)
		return
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	record, err := v.DB.FindOne(ctx, bson.M{"_id": rID})
	if err != nil {
		config.ErrorStatus("failed to find volunteering record", http.StatusNotFound, w, err)
		return
	}

	if record.Details.Status != models.RecordStatusActive {
		w.WriteHeader(http.StatusConflict)
		_ = json.NewEncoder(w).Encode(models.ErrorResponse{
			Error: fmt.Sprintf("record status is '%s', expected 'active'", record.Details.Status),
			Code:  models.CodeInvalidState,
		})
		return
	}

	now := primitive.NewDateTimeFromTime(time.Now())
	update := bson.M{
		"$set": bson.M{
			"volunteeringRecord.hoursContributed": req.Hours,
			"volunteeringRecord.updatedAt":        now,
		},
	}
	if err := v.DB.UpdateOne(ctx, bson.M{"_id": rID}, update); err != nil {
		config.ErrorStatus("failed to update volunteering record", http.StatusInternalServerError, w, err)
		return
	}

	record.Details.HoursContributed = req.Hours
	record.Details.UpdatedAt = now

	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"message":            "Volunteering record updated successfully",
		"volunteeringRecord": record,
	})
}

// UpdateRecordStatusHandler transitions an active record to completed or
// dropped. Completed and dropped are terminal.
func (v VolunteeringRecord) UpdateRecordStatusHandler(w http.ResponseWriter, r *http.Request) {
	recordID := mux.Vars(r)["record_id"]

	rID, err := primitive.ObjectIDFromHex(recordID)
	if err != nil {
		config.ErrorStatus("failed to get objectID from Hex", http.StatusBadRequest, w, err)
		return
	}

	var statusData struct {
		Status   string `json:"status"`
		Feedback string `json:"feedback"`
	}
	if err := json.NewDecoder(r.Body).Decode(&statusData); err != nil {
		config.ErrorStatus("failed to decode request body", http.StatusBadRequest, w, err)
		return
	}

	if statusData.Status != models.RecordStatusCompleted && statusData.Status != models.RecordStatusDropped {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(models.ErrorResponse{
			Error: fmt.Sprintf("status must be 'completed' or 'dropped', got '%s'", statusData.Status),
			Code:  models.CodeInvalidInput,
		})
		return
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	record, err := v.DB.FindOne(ctx, bson.M{"_id": rID})
	if err != nil {
		config.ErrorStatus("failed to find volunteering record", http.StatusNotFound, w, err)
		return
	}

	if record.Details.Status != models.RecordStatusActive {
		w.WriteHeader(http.StatusConflict)
		_ = json.NewEncoder(w).Encode(models.ErrorResponse{
			Error: fmt.Sprintf("record status is '%s', expected 'active'", record.Details.Status),
			Code:  models.CodeInvalidState,
		})
		return
	}

	now := primitive.NewDateTimeFromTime(time.Now())
	set := bson.M{
		"volunteeringRecord.status":    statusData.Status,
		"volunteeringRecord.updatedAt": now,
	}
	if statusData.Feedback != "" {
		set["volunteeringRecord.feedback"] = statusData.Feedback
	}
	if statusData.Status == models.RecordStatusCompleted {
		set["volunteeringRecord.endDate"] = now
	}

	if err := v.DB.UpdateOne(ctx, bson.M{"_id": rID}, bson.M{"$set": set}); err != nil {
		config.ErrorStatus("failed to update volunteering record", http.StatusInternalServerError, w, err)
		return
	}

	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"message": "Volunteering record updated successfully",
		"status":  statusData.Status,
	})
}

// VolunteerStatsHandler returns the derived aggregates for a user. These are
// recomputed on every read.
func (v VolunteeringRecord) VolunteerStatsHandler(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["user_id"]

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	records, err := v.DB.Find(ctx, bson.M{"volunteeringRecord.userID": userID})
	if err != nil {
		config.ErrorStatus("failed to get volunteering records", http.StatusNotFound, w, err)
		return
	}

	stats := ComputeVolunteerStats(records)

	pending, err := v.ADB.CountDocuments(ctx, bson.M{
		"application.userID": userID,
		"application.status": models.ApplicationStatusPending,
	})
	if err != nil {
		config.ErrorStatus("failed to count pending applications", http.StatusInternalServerError, w, err)
		return
	}
	stats.PendingApplicationsCount = int(pending)

	b, err := json.Marshal(stats)
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write(b)
}

// ComputeVolunteerStats derives the hour and status aggregates from a user's
// volunteering records
func ComputeVolunteerStats(records []models.VolunteeringRecord) models.VolunteerStats {
	var stats models.VolunteerStats
	for _, rec := range records {
		stats.TotalHours += rec.Details.HoursContributed
		switch rec.Details.Status {
		case models.RecordStatusActive:
			stats.ActiveCount++
		case models.RecordStatusCompleted:
			stats.CompletedCount++
		}
	}
	return stats
}
