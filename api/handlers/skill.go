package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"github.com/volunteerhub/volunteer-match-api/api"
	"github.com/volunteerhub/volunteer-match-api/api/handlers/search"
	"github.com/volunteerhub/volunteer-match-api/config"
	"github.com/volunteerhub/volunteer-match-api/databases"
	"github.com/volunteerhub/volunteer-match-api/models"
)

// Skill exported for testing purposes
type Skill struct {
	DB databases.SkillDatabase
}

// SkillsByUserIDHandler returns the user's skill list
func (s Skill) SkillsByUserIDHandler(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["user_id"]

	zap.S().Debugf("user_id: '%v'", userID)

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	dbResp, err := s.DB.Find(ctx, bson.M{"skill.userID": userID})
	if err != nil {
		config.ErrorStatus("failed to get skills", http.StatusNotFound, w, err)
		return
	}

	if len(dbResp) == 0 {
		dbResp = []models.Skill{}
	}
	b, err := json.Marshal(dbResp)
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write(b)
}

// ReplaceSkillsHandler replaces the user's skill list with the submitted one
func (s Skill) ReplaceSkillsHandler(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["user_id"]

	var req []struct {
		Name  string            `json:"name"`
		Level models.SkillLevel `json:"level"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		config.ErrorStatus("failed to decode request body", http.StatusBadRequest, w, err)
		return
	}

	for _, sk := range req {
		if sk.Name == "" || !models.ValidSkillLevel(sk.Level) {
			w.WriteHeader(http.StatusBadRequest)
			_ = json.NewEncoder(w).Encode(models.ErrorResponse{
				Error: fmt.Sprintf("invalid skill '%s' with level '%s'", sk.Name, sk.Level),
				Code:  models.CodeInvalidInput,
			})
			return
		}
	}

	now := primitive.NewDateTimeFromTime(time.Now())
	skills := make([]models.Skill, 0, len(req))
	docs := make([]interface{}, 0, len(req))
	for _, sk := range req {
		skill := models.Skill{
			ID: primitive.NewObjectID(),
			Details: models.SkillDetails{
				UserID:    userID,
				Name:      sk.Name,
				Level:     sk.Level,
				CreatedAt: now,
				UpdatedAt: now,
			},
		}
		skills = append(skills, skill)
		docs = append(docs, skill)
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	if err := s.DB.DeleteMany(ctx, bson.M{"skill.userID": userID}); err != nil {
		config.ErrorStatus("failed to clear skills", http.StatusInternalServerError, w, err)
		return
	}
	if len(docs) > 0 {
		if err := s.DB.InsertMany(ctx, docs); err != nil {
			config.ErrorStatus("failed to save skills", http.StatusInternalServerError, w, err)
			return
		}
	}

	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"message": "Skills updated successfully",
		"skills":  skills,
	})
}

// FilterDefaultsHandler maps the user's skill list into the opportunity
// filter's primary and secondary slots
func (s Skill) FilterDefaultsHandler(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["user_id"]

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	skills, err := s.DB.Find(ctx, bson.M{"skill.userID": userID})
	if err != nil {
		config.ErrorStatus("failed to get skills", http.StatusNotFound, w, err)
		return
	}

	primary, secondary := search.ProfileFilterSkills(skills)
	if primary == nil {
		primary = []string{}
	}
	if secondary == nil {
		secondary = []string{}
	}

	b, err := json.Marshal(map[string][]string{
		"primarySkills":   primary,
		"secondarySkills": secondary,
	})
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write(b)
}
