package handlers

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/volunteerhub/volunteer-match-api/api"
	"github.com/volunteerhub/volunteer-match-api/api/handlers/search"
	"github.com/volunteerhub/volunteer-match-api/api/scheduler"
	"github.com/volunteerhub/volunteer-match-api/config"
	"github.com/volunteerhub/volunteer-match-api/databases"
	"github.com/volunteerhub/volunteer-match-api/models"
)

// App stores the router and db connection, so it can be reused
type App struct {
	Router    *mux.Router
	DB        databases.CollectionHelper
	Config    config.Config
	Scheduler *scheduler.Scheduler
	dbHelper  databases.DatabaseHelper
}

// New creates a new mux router and all the routes
func (a *App) New() *mux.Router {
	// setup go-guardian for middleware
	m := api.MiddlewareDB{DB: databases.NewUserDatabase(a.dbHelper)}
	m.SetupGoGuardian()

	r := mux.NewRouter()

	feed := NewFeed()

	o := Opportunity{DB: databases.NewOpportunityDatabase(a.dbHelper), Feed: feed}
	app := Application{
		DB:  databases.NewApplicationDatabase(a.dbHelper),
		ODB: databases.NewOpportunityDatabase(a.dbHelper),
		RDB: databases.NewVolunteeringRecordDatabase(a.dbHelper),
		UDB: databases.NewUserDatabase(a.dbHelper),
	}
	v := VolunteeringRecord{
		DB:  databases.NewVolunteeringRecordDatabase(a.dbHelper),
		ADB: databases.NewApplicationDatabase(a.dbHelper),
	}
	u := User{DB: databases.NewUserDatabase(a.dbHelper)}
	sk := Skill{DB: databases.NewSkillDatabase(a.dbHelper)}
	adm := Admin{ADB: databases.NewAdminDatabase(a.dbHelper)}
	opportunitySearch := search.Opportunities{
		DB:  databases.NewOpportunityDatabase(a.dbHelper),
		ADB: databases.NewApplicationDatabase(a.dbHelper),
		SDB: databases.NewSkillDatabase(a.dbHelper),
	}
	cloudinaryHandler := CloudinaryHandler{}

	// healthchex
	r.HandleFunc("/health", healthCheckHandler)

	apiCreate := r.PathPrefix("/api/v1").Subrouter()

	apiCreate.Handle("/auth/token", api.Middleware(http.HandlerFunc(m.CreateToken))).Methods("POST")
	apiCreate.Handle("/auth/logout", api.Middleware(http.HandlerFunc(api.RevokeToken))).Methods("DELETE")

	apiCreate.Handle("/opportunities", api.Middleware(http.HandlerFunc(o.OpportunityHandler))).Methods("GET")
	apiCreate.Handle("/opportunities/search", api.Middleware(http.HandlerFunc(opportunitySearch.OpportunitySearchHandler))).Methods("GET")
	apiCreate.Handle("/opportunity", AdminOnly(http.HandlerFunc(o.CreateOpportunityHandler))).Methods("POST")
	apiCreate.Handle("/opportunity/{opportunity_id}", api.Middleware(http.HandlerFunc(o.OpportunityByIDHandler))).Methods("GET")
	apiCreate.Handle("/opportunity/{opportunity_id}/status", AdminOnly(http.HandlerFunc(o.UpdateOpportunityStatusHandler))).Methods("PUT")

	apiCreate.Handle("/register-interest", api.Middleware(http.HandlerFunc(app.RegisterInterestHandler))).Methods("POST")
	apiCreate.Handle("/applications/pending", AdminOnly(http.HandlerFunc(app.PendingApplicationsHandler))).Methods("GET")
	apiCreate.Handle("/applications/{user_id}", api.Middleware(http.HandlerFunc(app.ApplicationsByUserIDHandler))).Methods("GET")
	apiCreate.Handle("/application/{application_id}", api.Middleware(http.HandlerFunc(app.ApplicationByIDHandler))).Methods("GET")
	apiCreate.Handle("/application/{application_id}/status", AdminOnly(http.HandlerFunc(app.UpdateApplicationStatusHandler))).Methods("PUT")

	apiCreate.Handle("/volunteering-records/{user_id}", api.Middleware(http.HandlerFunc(v.VolunteeringRecordsByUserIDHandler))).Methods("GET")
	apiCreate.Handle("/volunteering-records/{user_id}/stats", api.Middleware(http.HandlerFunc(v.VolunteerStatsHandler))).Methods("GET")
	apiCreate.Handle("/update-volunteering-record", api.Middleware(http.HandlerFunc(v.UpdateVolunteerHoursHandler))).Methods("PUT")
	apiCreate.Handle("/volunteering-record/{record_id}/status", api.Middleware(http.HandlerFunc(v.UpdateRecordStatusHandler))).Methods("PUT")

	apiCreate.Handle("/user/create-user", http.HandlerFunc(u.UserCreateHandler)).Methods("POST")
	apiCreate.Handle("/user/{user_id}", api.Middleware(http.HandlerFunc(u.UserHandler))).Methods("GET")
	apiCreate.Handle("/user/{user_id}", api.Middleware(http.HandlerFunc(u.UpdateUserByIDHandler))).Methods("PUT")

	// catalog must be registered before the {user_id} routes so "catalog"
	// is not swallowed as a user ID
	apiCreate.Handle("/skills/catalog", api.Middleware(http.HandlerFunc(opportunitySearch.CatalogHandler))).Methods("GET")
	apiCreate.Handle("/skills/{user_id}", api.Middleware(http.HandlerFunc(sk.SkillsByUserIDHandler))).Methods("GET")
	apiCreate.Handle("/skills/{user_id}", api.Middleware(http.HandlerFunc(sk.ReplaceSkillsHandler))).Methods("PUT")
	apiCreate.Handle("/skills/{user_id}/filter-defaults", api.Middleware(http.HandlerFunc(sk.FilterDefaultsHandler))).Methods("GET")

	apiCreate.Handle("/admin/login", http.HandlerFunc(adm.AdminLoginHandler)).Methods("POST")

	apiCreate.Handle("/generate-signature", api.Middleware(http.HandlerFunc(cloudinaryHandler.GenerateSignature))).Methods("POST")

	// websocket upgrade carries no Authorization header from browsers, so
	// the feed sits outside the token middleware
	apiCreate.HandleFunc("/ws/opportunities", feed.OpportunityFeedHandler)

	// swagger docs hosted at "/"
	r.PathPrefix("/").Handler(http.StripPrefix("/", http.FileServer(http.Dir("./docs/"))))
	return r
}

// Initialize is invoked by main to connect with the database and create a router
func (a *App) Initialize() error {

	client, err := databases.NewClient(&a.Config)
	if err != nil {
		// if we fail to create a new database client, then kill the pod
		zap.S().With(err).Error("failed to create new client")
		return err
	}

	a.dbHelper = databases.NewDatabase(&a.Config, client)
	err = client.Connect()
	if err != nil {
		// if we fail to connect to the database, then kill the pod
		zap.S().With(err).Error("failed to connect to database")
		return err
	}
	zap.S().Info("volunteer-match-api has connected to the database")

	// start background jobs
	a.Scheduler = scheduler.NewScheduler(
		databases.NewVolunteeringRecordDatabase(a.dbHelper),
		databases.NewUserDatabase(a.dbHelper),
		databases.NewOpportunityDatabase(a.dbHelper),
	)
	a.Scheduler.Start()

	// initialize api router
	a.initializeRoutes()
	return nil

}

func (a *App) initializeRoutes() {
	a.Router = a.New()
}

func healthCheckHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	b, _ := json.Marshal(models.HealthCheckResponse{
		Alive: true,
	})
	_, _ = io.WriteString(w, string(b))
}
