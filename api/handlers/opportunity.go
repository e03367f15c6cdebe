package handlers

import (
	"encoding/json"
	"fmt"
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
)

// Page is the default page used when the query param is absent
var Page int

// Opportunity exported for testing purposes
type Opportunity struct {
	DB   databases.OpportunityDatabase
	Feed *Feed
}

// OpportunityHandler returns all opportunities, newest first
func (o Opportunity) OpportunityHandler(w http.ResponseWriter, r *http.Request) {
	Limit, err := strconv.Atoi(r.URL.Query().Get("limit"))
	if err != nil {
		zap.S().Warnf(fmt.Sprintf("limit not set, using default of %v, err: %v", Limit|10, err))
	}
	limit64 := int64(Limit)
	Page = getPage(Page, r)
	skip64 := int64(Page * Limit)

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	opts := options.Find().
		SetLimit(limit64).
		SetSkip(skip64).
		SetSort(bson.M{"_id": -1})

	dbResp, err := o.DB.Find(ctx, bson.D{}, opts)
	if err != nil {
		config.ErrorStatus("failed to get opportunities", http.StatusNotFound, w, err)
		return
	}

	if len(dbResp) == 0 {
		dbResp = []models.Opportunity{}
	}
	b, err := json.Marshal(dbResp)
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write(b)
}

// OpportunityByIDHandler returns an opportunity by ID
func (o Opportunity) OpportunityByIDHandler(w http.ResponseWriter, r *http.Request) {
	opportunityID := mux.Vars(r)["opportunity_id"]

	zap.S().Debugf("opportunity_id: %v", opportunityID)

	oID, err := primitive.ObjectIDFromHex(opportunityID)
	if err != nil {
		config.ErrorStatus("failed to get objectID from Hex", http.StatusBadRequest, w, err)
		return
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	dbResp, err := o.DB.FindOne(ctx, bson.M{"_id": oID})
	if err != nil {
		config.ErrorStatus("failed to get opportunity by ID", http.StatusNotFound, w, err)
		return
	}

	b, err := json.Marshal(dbResp)
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write(b)
}

// CreateOpportunityHandler posts a new opportunity. Admin only.
func (o Opportunity) CreateOpportunityHandler(w http.ResponseWriter, r *http.Request) {
	var opportunity models.Opportunity
	if err := json.NewDecoder(r.Body).Decode(&opportunity.Details); err != nil {
		config.ErrorStatus("failed to decode request body", http.StatusBadRequest, w, err)
		return
	}

	if opportunity.Details.Title == "" || opportunity.Details.Organization == "" {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(models.ErrorResponse{
			Error: "title and organization are required",
			Code:  models.CodeInvalidInput,
		})
		return
	}

	opportunity.ID = primitive.NewObjectID()
	now := primitive.NewDateTimeFromTime(time.Now())
	opportunity.Details.Status = models.OpportunityStatusOpen
	opportunity.Details.PostedDate = now
	opportunity.Details.CreatedAt = now
	opportunity.Details.UpdatedAt = now

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	_, err := o.DB.InsertOne(ctx, opportunity)
	if err != nil {
		config.ErrorStatus("failed to create opportunity", http.StatusInternalServerError, w, err)
		return
	}

	if o.Feed != nil {
		o.Feed.BroadcastOpportunity(opportunity)
	}

	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"message":     "Opportunity created successfully",
		"id":          opportunity.ID.Hex(),
		"opportunity": opportunity,
	})
}

// UpdateOpportunityStatusHandler transitions an opportunity's status. Admin
// only; opportunities are otherwise immutable once posted.
func (o Opportunity) UpdateOpportunityStatusHandler(w http.ResponseWriter, r *http.Request) {
	opportunityID := mux.Vars(r)["opportunity_id"]

	oID, err := primitive.ObjectIDFromHex(opportunityID)
	if err != nil {
		config.ErrorStatus("failed to get objectID from Hex", http.StatusBadRequest, w, err)
		return
	}

	var statusData struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&statusData); err != nil {
		config.ErrorStatus("failed to decode request body", http.StatusBadRequest, w, err)
		return
	}

	if !models.ValidOpportunityStatus(statusData.Status) {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(models.ErrorResponse{
			Error: fmt.Sprintf("unknown opportunity status '%s'", statusData.Status),
			Code:  models.CodeInvalidInput,
		})
		return
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	if _, err := o.DB.FindOne(ctx, bson.M{"_id": oID}); err != nil {
		config.ErrorStatus("failed to find opportunity", http.StatusNotFound, w, err)
		return
	}

	update := bson.M{
		"$set": bson.M{
			"opportunity.status":    statusData.Status,
			"opportunity.updatedAt": primitive.NewDateTimeFromTime(time.Now()),
		},
	}
	if err := o.DB.UpdateOne(ctx, bson.M{"_id": oID}, update); err != nil {
		config.ErrorStatus("failed to update opportunity", http.StatusInternalServerError, w, err)
		return
	}

	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"message": "Opportunity updated successfully",
		"status":  statusData.Status,
	})
}

func getPage(Page int, r *http.Request) int {
	if r.URL.Query().Get("page") == "" {
		zap.S().Warnf("page not set, using default of %v", Page)
	} else {
		var err error
		Page, err = strconv.Atoi(r.URL.Query().Get("page"))
		if err != nil {
			zap.S().Errorf(fmt.Sprintf("error parsing page number: %v", err))
		}
		if Page < 0 {
			zap.S().Warnf(fmt.Sprintf("cannot process page number less than 1. Got: %v", Page))
			return 0
		}
	}
	return Page
}
