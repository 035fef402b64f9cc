package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jobboard-dev/jobboard/db"
	"github.com/jobboard-dev/jobboard/internal/auth"
	"github.com/jobboard-dev/jobboard/internal/models"
	"github.com/jobboard-dev/jobboard/internal/router"
	"github.com/jobboard-dev/jobboard/internal/types"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// setupTest swaps the global DB for a fresh in-memory database and returns
// the assembled router. The previous DB is restored on cleanup.
func setupTest(t *testing.T) *gin.Engine {
	t.Helper()

	gin.SetMode(gin.TestMode)

	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("JWT_TTL_HOURS", "")

	if err := auth.InitJWTSecret(); err != nil {
		t.Fatalf("failed to init JWT: %v", err)
	}

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))

	database, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})

	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}

	for _, model := range []interface{}{&models.User{}, &models.Job{}, &models.Application{}} {
		if err := database.AutoMigrate(model); err != nil {
			t.Fatalf("failed to migrate: %v", err)
		}
	}

	oldDB := db.DB
	db.DB = database

	t.Cleanup(func() {
		sqlDB, _ := database.DB()
		if sqlDB != nil {
			sqlDB.Close()
		}
		db.DB = oldDB
	})

	return router.NewRouter()
}

func createUser(t *testing.T, email string, role string) (models.User, string) {
	t.Helper()

	passwordHash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)

	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	user := models.User{
		Name:         "Test User",
		Email:        email,
		PasswordHash: string(passwordHash),
		Role:         role,
	}

	if err := db.DB.Create(&user).Error; err != nil {
		t.Fatalf("failed to create user: %v", err)
	}

	token, err := auth.GenerateJWT(user.ID, user.Email, user.Role)

	if err != nil {
		t.Fatalf("failed to generate token: %v", err)
	}

	return user, token
}

func createAdmin(t *testing.T) (models.User, string) {
	t.Helper()
	return createUser(t, "admin@example.com", types.RoleAdmin)
}

func createJob(t *testing.T, mutate func(*models.Job)) models.Job {
	t.Helper()

	job := models.Job{
		Title:       "Backend Engineer",
		Company:     "Acme",
		Location:    "Remote",
		Description: "Build and run backend services.",
		Type:        types.JobTypeFullTime,
		PostedAt:    time.Now(),
		IsActive:    true,
	}

	if mutate != nil {
		mutate(&job)
	}

	if err := db.DB.Create(&job).Error; err != nil {
		t.Fatalf("failed to create job: %v", err)
	}

	return job
}

func performRequest(t *testing.T, r *gin.Engine, method string, path string, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader

	if body != nil {
		payload, err := json.Marshal(body)

		if err != nil {
			t.Fatalf("failed to marshal body: %v", err)
		}

		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")

	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder, out interface{}) {
	t.Helper()

	if err := json.Unmarshal(w.Body.Bytes(), out); err != nil {
		t.Fatalf("failed to decode response %q: %v", w.Body.String(), err)
	}
}

func errorMessage(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()

	var body struct {
		Error string `json:"error"`
	}

	decodeBody(t, w, &body)
	return body.Error
}

func TestHealthCheck(t *testing.T) {
	r := setupTest(t)

	w := performRequest(t, r, http.MethodGet, "/health", "", nil)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var body struct {
		Status    string `json:"status"`
		Timestamp string `json:"timestamp"`
	}

	decodeBody(t, w, &body)

	if body.Status != "OK" {
		t.Errorf("expected status OK, got %q", body.Status)
	}

	if _, err := time.Parse(time.RFC3339, body.Timestamp); err != nil {
		t.Errorf("timestamp %q is not RFC3339: %v", body.Timestamp, err)
	}
}
