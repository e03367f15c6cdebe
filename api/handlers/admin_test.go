package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
	"golang.org/x/crypto/bcrypt"

	"github.com/volunteerhub/volunteer-match-api/api/handlers"
	"github.com/volunteerhub/volunteer-match-api/databases"
	"github.com/volunteerhub/volunteer-match-api/models"
)

// Minimal fake implementing databases.AdminDatabase
type fakeAdminDB struct {
	findOne func(ctx context.Context, filter interface{}, opts ...*options.FindOneOptions) (*models.Admin, error)
}

func (f fakeAdminDB) FindOne(ctx context.Context, filter interface{}, opts ...*options.FindOneOptions) (*models.Admin, error) {
	return f.findOne(ctx, filter, opts...)
}

func (f fakeAdminDB) InsertOne(ctx context.Context, document interface{}, opts ...*options.InsertOneOptions) (databases.InsertOneResultHelper, error) {
	return nil, nil
}

func (f fakeAdminDB) UpdateOne(ctx context.Context, filter interface{}, update interface{}, opts ...*options.UpdateOptions) error {
	return nil
}

func TestAdminLogin_Success(t *testing.T) {
	password := "strong-pass"
	hash, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	admin := &models.Admin{
		ID:        primitive.NewObjectID(),
		Email:     "you@example.com",
		Password:  string(hash),
		Active:    true,
		Roles:     []string{"owner", "admin"},
		CreatedAt: primitive.NewDateTimeFromTime(time.Now()),
		UpdatedAt: primitive.NewDateTimeFromTime(time.Now()),
	}

	h := handlers.Admin{ADB: fakeAdminDB{findOne: func(ctx context.Context, filter interface{}, opts ...*options.FindOneOptions) (*models.Admin, error) {
		return admin, nil
	}}}

	old := os.Getenv("JWT_SECRET")
	os.Setenv("JWT_SECRET", "test-secret")
	t.Cleanup(func() { os.Setenv("JWT_SECRET", old) })

	body, _ := json.Marshal(map[string]string{"email": admin.Email, "password": password})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/admin/login", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()

	http.HandlerFunc(h.AdminLoginHandler).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	var resp struct {
		Token string `json:"token"`
		Admin struct {
			ID    string   `json:"id"`
			Email string   `json:"email"`
			Roles []string `json:"roles"`
		} `json:"admin"`
	}
	_ = json.Unmarshal(rr.Body.Bytes(), &resp)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, admin.Email, resp.Admin.Email)
}

func TestAdminLogin_WrongPassword(t *testing.T) {
	hash, _ := bcrypt.GenerateFromPassword([]byte("right-password"), bcrypt.DefaultCost)
	admin := &models.Admin{
		ID:       primitive.NewObjectID(),
		Email:    "you@example.com",
		Password: string(hash),
		Active:   true,
	}

	h := handlers.Admin{ADB: fakeAdminDB{findOne: func(ctx context.Context, filter interface{}, opts ...*options.FindOneOptions) (*models.Admin, error) {
		return admin, nil
	}}}

	body, _ := json.Marshal(map[string]string{"email": admin.Email, "password": "wrong-password"})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/admin/login", bytes.NewReader(body))
	rr := httptest.NewRecorder()

	http.HandlerFunc(h.AdminLoginHandler).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestAdminLogin_UnknownAdmin(t *testing.T) {
	h := handlers.Admin{ADB: fakeAdminDB{findOne: func(ctx context.Context, filter interface{}, opts ...*options.FindOneOptions) (*models.Admin, error) {
		return nil, errors.New("mongo: no documents in result")
	}}}

	body, _ := json.Marshal(map[string]string{"email": "nobody@example.com", "password": "whatever"})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/admin/login", bytes.NewReader(body))
	rr := httptest.NewRecorder()

	http.HandlerFunc(h.AdminLoginHandler).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestAdminLogin_MissingFields(t *testing.T) {
	h := handlers.Admin{}

	body, _ := json.Marshal(map[string]string{"email": "you@example.com"})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/admin/login", bytes.NewReader(body))
	rr := httptest.NewRecorder()

	http.HandlerFunc(h.AdminLoginHandler).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func signAdminToken(t *testing.T, secret, scope string) string {
	t.Helper()
	claims := jwt.MapClaims{
		"sub":   primitive.NewObjectID().Hex(),
		"scope": scope,
		"exp":   time.Now().Add(time.Hour).Unix(),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		t.Fatal(err)
	}
	return signed
}

func TestAdminOnly(t *testing.T) {
	old := os.Getenv("JWT_SECRET")
	os.Setenv("JWT_SECRET", "test-secret")
	t.Cleanup(func() { os.Setenv("JWT_SECRET", old) })

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	tests := []struct {
		name       string
		authHeader string
		want       int
	}{
		{"missing token", "", http.StatusUnauthorized},
		{"malformed token", "Bearer not-a-jwt", http.StatusUnauthorized},
		{"wrong secret", "Bearer " + signAdminToken(t, "other-secret", "admin"), http.StatusUnauthorized},
		{"wrong scope", "Bearer " + signAdminToken(t, "test-secret", "user"), http.StatusForbidden},
		{"valid admin token", "Bearer " + signAdminToken(t, "test-secret", "admin"), http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/v1/opportunity", nil)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}
			rr := httptest.NewRecorder()

			handlers.AdminOnly(next).ServeHTTP(rr, req)

			assert.Equal(t, tt.want, rr.Code)
		})
	}
}
