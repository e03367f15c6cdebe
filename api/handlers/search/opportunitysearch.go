package search

import (
	"encoding/json"
	"net/http"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"

	"github.com/volunteerhub/volunteer-match-api/api"
	"github.com/volunteerhub/volunteer-match-api/config"
	"github.com/volunteerhub/volunteer-match-api/databases"
	"github.com/volunteerhub/volunteer-match-api/models"
)

// Opportunities holds the databases the opportunity search needs
type Opportunities struct {
	DB  databases.OpportunityDatabase
	ADB databases.ApplicationDatabase
	SDB databases.SkillDatabase
}

// OpportunitySearchHandler filters the opportunity catalog by search text,
// skill slots, time-commitment bucket and tab scoping. The catalog is small
// (tens of records), so filtering runs in memory over the full list.
func (s Opportunities) OpportunitySearchHandler(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	criteria := Criteria{
		SearchTerm:      q.Get("search"),
		PrimarySkills:   splitSkillParam(q.Get("primary_skills")),
		SecondarySkills: splitSkillParam(q.Get("secondary_skills")),
		TimeCommitment:  TimeCommitment(q.Get("time_commitment")),
		Tab:             Tab(q.Get("tab")),
	}
	userID := q.Get("user_id")

	zap.S().Debugf("opportunity search: term=%q tab=%q user_id=%q", criteria.SearchTerm, criteria.Tab, userID)

	if !ValidTimeCommitment(criteria.TimeCommitment) {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(models.ErrorResponse{
			Error: "unknown time commitment bucket",
			Code:  models.CodeInvalidInput,
		})
		return
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	// "Use my profile skills": auto-populate the skill slots from the
	// user's own skill list, overriding any explicit slots.
	if q.Get("use_profile_skills") == "true" && userID != "" {
		skills, err := s.SDB.Find(ctx, bson.M{"skill.userID": userID})
		if err != nil {
			config.ErrorStatus("failed to get profile skills", http.StatusNotFound, w, err)
			return
		}
		criteria.PrimarySkills, criteria.SecondarySkills = ProfileFilterSkills(skills)
	}

	var appliedIDs []string
	if criteria.Tab == TabApplied && userID != "" {
		applications, err := s.ADB.Find(ctx, bson.M{"application.userID": userID})
		if err != nil {
			config.ErrorStatus("failed to get applications", http.StatusNotFound, w, err)
			return
		}
		for _, a := range applications {
			appliedIDs = append(appliedIDs, a.Details.OpportunityID)
		}
	}

	opportunities, err := s.DB.Find(ctx, bson.D{})
	if err != nil {
		config.ErrorStatus("failed to get opportunities", http.StatusNotFound, w, err)
		return
	}

	dbResp := FilterOpportunities(opportunities, criteria, appliedIDs)

	// Because the frontend requires that the data elements exist, if
	// len == 0 then we will just return an empty data object
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

// CatalogHandler returns the static skill catalog the filter slots and the
// profile auto-fill feature resolve against
func (s Opportunities) CatalogHandler(w http.ResponseWriter, r *http.Request) {
	b, err := json.Marshal(Catalog())
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write(b)
}

func splitSkillParam(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
