package search_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/volunteerhub/volunteer-match-api/api/handlers/search"
	"github.com/volunteerhub/volunteer-match-api/databases"
	"github.com/volunteerhub/volunteer-match-api/databases/mocks"
	"github.com/volunteerhub/volunteer-match-api/models"
)

type MockDatabaseHelper struct {
	mock.Mock
}

// Client provides a mock function.
func (_m *MockDatabaseHelper) Client() databases.ClientHelper {
	ret := _m.Called()

	var r0 databases.ClientHelper
	if rf, ok := ret.Get(0).(func() databases.ClientHelper); ok {
		r0 = rf()
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(databases.ClientHelper)
		}
	}

	return r0
}

// Collection provides a mock function.
func (_m *MockDatabaseHelper) Collection(name string) databases.CollectionHelper {
	ret := _m.Called(name)

	var r0 databases.CollectionHelper
	if rf, ok := ret.Get(0).(func(string) databases.CollectionHelper); ok {
		r0 = rf(name)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(databases.CollectionHelper)
		}
	}

	return r0
}

func TestOpportunitySearchHandler_UnknownTimeCommitmentBucket(t *testing.T) {
	req, err := http.NewRequest("GET", "/api/v1/opportunities/search?time_commitment=weekends", nil)
	if err != nil {
		t.Fatal(err)
	}
	req.Header.Set("Authorization", "Bearer abc123")

	s := search.Opportunities{}

	rr := httptest.NewRecorder()
	http.HandlerFunc(s.OpportunitySearchHandler).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)

	var resp models.ErrorResponse
	assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, models.CodeInvalidInput, resp.Code)
}

func TestOpportunitySearchHandler_FiltersBySearchTerm(t *testing.T) {
	req, err := http.NewRequest("GET", "/api/v1/opportunities/search?search=food+bank", nil)
	if err != nil {
		t.Fatal(err)
	}
	req.Header.Set("Authorization", "Bearer abc123")

	var db databases.DatabaseHelper
	var conn databases.CollectionHelper
	var cursorHelper databases.CursorHelper

	db = &MockDatabaseHelper{}
	conn = &mocks.CollectionHelper{}
	cursorHelper = &mocks.CursorHelper{}

	cursorHelper.(*mocks.CursorHelper).On("All", mock.Anything, mock.Anything).Return(nil).Run(func(args mock.Arguments) {
		arg := args.Get(1).(*[]models.Opportunity)
		*arg = []models.Opportunity{
			newOpportunity("Build a food bank website", "City Food Bank", models.OpportunityStatusOpen, "5-10 hours/week", "React"),
			newOpportunity("Mentor young coders", "Code Club", models.OpportunityStatusOpen, "Less than 5 hours/week", "Mentoring"),
		}
	})
	cursorHelper.(*mocks.CursorHelper).On("Close", mock.Anything).Return(nil)
	conn.(*mocks.CollectionHelper).On("Find", mock.Anything, mock.Anything).Return(cursorHelper, nil)
	db.(*MockDatabaseHelper).On("Collection", "opportunities").Return(conn)

	s := search.Opportunities{
		DB:  databases.NewOpportunityDatabase(db),
		ADB: databases.NewApplicationDatabase(db),
		SDB: databases.NewSkillDatabase(db),
	}

	rr := httptest.NewRecorder()
	http.HandlerFunc(s.OpportunitySearchHandler).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)

	var resp []models.Opportunity
	assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Len(t, resp, 1)
	assert.Equal(t, "Build a food bank website", resp[0].Details.Title)
}

func TestOpportunitySearchHandler_NoMatchesReturnsEmptyList(t *testing.T) {
	req, err := http.NewRequest("GET", "/api/v1/opportunities/search?search=spelunking", nil)
	if err != nil {
		t.Fatal(err)
	}
	req.Header.Set("Authorization", "Bearer abc123")

	var db databases.DatabaseHelper
	var conn databases.CollectionHelper
	var cursorHelper databases.CursorHelper

	db = &MockDatabaseHelper{}
	conn = &mocks.CollectionHelper{}
	cursorHelper = &mocks.CursorHelper{}

	cursorHelper.(*mocks.CursorHelper).On("All", mock.Anything, mock.Anything).Return(nil)
	cursorHelper.(*mocks.CursorHelper).On("Close", mock.Anything).Return(nil)
	conn.(*mocks.CollectionHelper).On("Find", mock.Anything, mock.Anything).Return(cursorHelper, nil)
	db.(*MockDatabaseHelper).On("Collection", "opportunities").Return(conn)

	s := search.Opportunities{
		DB:  databases.NewOpportunityDatabase(db),
		ADB: databases.NewApplicationDatabase(db),
		SDB: databases.NewSkillDatabase(db),
	}

	rr := httptest.NewRecorder()
	http.HandlerFunc(s.OpportunitySearchHandler).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "[]", rr.Body.String())
}
