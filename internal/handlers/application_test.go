package handlers_test

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/jobboard-dev/jobboard/db"
	"github.com/jobboard-dev/jobboard/internal/handlers"
	"github.com/jobboard-dev/jobboard/internal/models"
	"github.com/jobboard-dev/jobboard/internal/types"
)

func submitBody() map[string]string {
	return map[string]string{
		"name":      "Asha",
		"email":     "a@x.com",
		"resumeUrl": "https://x.com/r.pdf",
	}
}

func TestSubmitApplication(t *testing.T) {
	r := setupTest(t)

	job := createJob(t, nil)

	body := submitBody()
	body["email"] = "Asha@X.COM"
	body["coverLetter"] = "I would like to apply."

	w := performRequest(t, r, http.MethodPost, fmt.Sprintf("/api/apply/%d", job.ID), "", body)

	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}

	var resp struct {
		Message     string                       `json:"message"`
		Application handlers.ApplicationResponse `json:"application"`
	}

	decodeBody(t, w, &resp)

	if resp.Application.Status != types.ApplicationStatusPending {
		t.Errorf("expected status pending, got %q", resp.Application.Status)
	}

	if resp.Application.Email != "asha@x.com" {
		t.Errorf("expected lowercased email, got %q", resp.Application.Email)
	}

	if resp.Application.JobID != job.ID {
		t.Errorf("expected jobId %d, got %d", job.ID, resp.Application.JobID)
	}
}

func TestSubmitApplicationValidation(t *testing.T) {
	r := setupTest(t)

	job := createJob(t, nil)
	path := fmt.Sprintf("/api/apply/%d", job.ID)

	tests := []struct {
		name   string
		mutate func(map[string]string)
	}{
		{
			name:   "missing name",
			mutate: func(m map[string]string) { delete(m, "name") },
		},
		{
			name:   "blank name",
			mutate: func(m map[string]string) { m["name"] = "   " },
		},
		{
			name:   "bad email",
			mutate: func(m map[string]string) { m["email"] = "not-an-email" },
		},
		{
			name:   "missing resume",
			mutate: func(m map[string]string) { delete(m, "resumeUrl") },
		},
		{
			name:   "relative resume url",
			mutate: func(m map[string]string) { m["resumeUrl"] = "resume.pdf" },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body := submitBody()
			tt.mutate(body)

			w := performRequest(t, r, http.MethodPost, path, "", body)

			if w.Code != http.StatusBadRequest {
				t.Errorf("expected 400, got %d", w.Code)
			}
		})
	}
}

func TestSubmitApplicationJobGating(t *testing.T) {
	r := setupTest(t)

	inactive := createJob(t, func(job *models.Job) { job.IsActive = false })

	w := performRequest(t, r, http.MethodPost, fmt.Sprintf("/api/apply/%d", inactive.ID), "", submitBody())

	if w.Code != http.StatusNotFound {
		t.Errorf("inactive job: expected 404, got %d", w.Code)
	}

	w = performRequest(t, r, http.MethodPost, "/api/apply/999999", "", submitBody())

	if w.Code != http.StatusNotFound {
		t.Errorf("missing job: expected 404, got %d", w.Code)
	}
}

func TestSubmitApplicationRejectsDuplicate(t *testing.T) {
	r := setupTest(t)

	job := createJob(t, nil)
	path := fmt.Sprintf("/api/apply/%d", job.ID)

	if w := performRequest(t, r, http.MethodPost, path, "", submitBody()); w.Code != http.StatusCreated {
		t.Fatalf("first submission failed: %d", w.Code)
	}

	// Same email, different case: normalization must still catch it.
	body := submitBody()
	body["email"] = "A@X.com"

	w := performRequest(t, r, http.MethodPost, path, "", body)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}

	if message := errorMessage(t, w); message != "You have already applied for this job" {
		t.Errorf("unexpected message %q", message)
	}

	// Same applicant on a different job is fine.
	other := createJob(t, func(job *models.Job) { job.Title = "Other" })

	if w := performRequest(t, r, http.MethodPost, fmt.Sprintf("/api/apply/%d", other.ID), "", submitBody()); w.Code != http.StatusCreated {
		t.Errorf("different job: expected 201, got %d", w.Code)
	}
}

func createApplication(t *testing.T, jobID uint, email string, createdAt time.Time) models.Application {
	t.Helper()

	application := models.Application{
		JobID:     jobID,
		Name:      "Applicant",
		Email:     email,
		ResumeURL: "https://x.com/r.pdf",
		Status:    types.ApplicationStatusPending,
	}

	if err := db.DB.Create(&application).Error; err != nil {
		t.Fatalf("failed to create application: %v", err)
	}

	if err := db.DB.Model(&application).Update("created_at", createdAt).Error; err != nil {
		t.Fatalf("failed to backdate application: %v", err)
	}

	return application
}

func TestListApplications(t *testing.T) {
	r := setupTest(t)
	_, adminToken := createAdmin(t)

	job := createJob(t, func(job *models.Job) {
		job.Title = "Backend Engineer"
		job.Company = "Acme"
	})

	createApplication(t, job.ID, "old@x.com", time.Now().Add(-2*time.Hour))
	createApplication(t, job.ID, "new@x.com", time.Now())

	w := performRequest(t, r, http.MethodGet, "/api/apply", adminToken, nil)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var applications []handlers.ApplicationResponse
	decodeBody(t, w, &applications)

	if len(applications) != 2 {
		t.Fatalf("expected 2 applications, got %d", len(applications))
	}

	if applications[0].Email != "new@x.com" {
		t.Errorf("expected newest first, got %q", applications[0].Email)
	}

	if applications[0].Job == nil || applications[0].Job.Title != "Backend Engineer" || applications[0].Job.Company != "Acme" {
		t.Errorf("expected job reference resolved, got %+v", applications[0].Job)
	}
}

func TestListApplicationsIsAdminOnly(t *testing.T) {
	r := setupTest(t)
	_, userToken := createUser(t, "user@example.com", types.RoleUser)

	if w := performRequest(t, r, http.MethodGet, "/api/apply", "", nil); w.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", w.Code)
	}

	if w := performRequest(t, r, http.MethodGet, "/api/apply", userToken, nil); w.Code != http.StatusForbidden {
		t.Errorf("expected 403, got %d", w.Code)
	}
}

func TestListMyApplications(t *testing.T) {
	r := setupTest(t)

	_, token := createUser(t, "mine@x.com", types.RoleUser)

	job := createJob(t, nil)
	createApplication(t, job.ID, "mine@x.com", time.Now())
	createApplication(t, job.ID, "other@x.com", time.Now())

	w := performRequest(t, r, http.MethodGet, "/api/apply/my/mine@x.com", token, nil)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var applications []handlers.ApplicationResponse
	decodeBody(t, w, &applications)

	if len(applications) != 1 || applications[0].Email != "mine@x.com" {
		t.Errorf("expected only the caller's applications, got %+v", applications)
	}

	if applications[0].Job == nil {
		t.Error("expected job reference resolved")
	}
}

// The email in the path is only honored when it matches the verified
// caller; the endpoint no longer trusts it on its own.
func TestListMyApplicationsRequiresMatchingIdentity(t *testing.T) {
	r := setupTest(t)

	_, token := createUser(t, "mine@x.com", types.RoleUser)

	if w := performRequest(t, r, http.MethodGet, "/api/apply/my/other@x.com", token, nil); w.Code != http.StatusForbidden {
		t.Errorf("mismatched email: expected 403, got %d", w.Code)
	}

	if w := performRequest(t, r, http.MethodGet, "/api/apply/my/mine@x.com", "", nil); w.Code != http.StatusUnauthorized {
		t.Errorf("no credential: expected 401, got %d", w.Code)
	}

	// Case differences are not a mismatch.
	if w := performRequest(t, r, http.MethodGet, "/api/apply/my/MINE@X.com", token, nil); w.Code != http.StatusOK {
		t.Errorf("case-insensitive match: expected 200, got %d", w.Code)
	}
}

func TestUpdateApplicationStatus(t *testing.T) {
	r := setupTest(t)
	_, adminToken := createAdmin(t)

	job := createJob(t, nil)
	application := createApplication(t, job.ID, "a@x.com", time.Now())
	path := fmt.Sprintf("/api/apply/%d/status", application.ID)

	// No transition graph: every enum value is reachable from any other,
	// including reopening a decided application.
	for _, status := range []string{
		types.ApplicationStatusAccepted,
		types.ApplicationStatusPending,
		types.ApplicationStatusRejected,
		types.ApplicationStatusReviewed,
	} {
		w := performRequest(t, r, http.MethodPatch, path, adminToken, map[string]string{"status": status})

		if w.Code != http.StatusOK {
			t.Fatalf("status %q: expected 200, got %d", status, w.Code)
		}

		var resp handlers.ApplicationResponse
		decodeBody(t, w, &resp)

		if resp.Status != status {
			t.Errorf("expected status %q, got %q", status, resp.Status)
		}
	}
}

func TestUpdateApplicationStatusValidation(t *testing.T) {
	r := setupTest(t)
	_, adminToken := createAdmin(t)

	job := createJob(t, nil)
	application := createApplication(t, job.ID, "a@x.com", time.Now())

	w := performRequest(t, r, http.MethodPatch, fmt.Sprintf("/api/apply/%d/status", application.ID), adminToken, map[string]string{"status": "archived"})

	if w.Code != http.StatusBadRequest {
		t.Errorf("invalid status: expected 400, got %d", w.Code)
	}

	w = performRequest(t, r, http.MethodPatch, "/api/apply/999999/status", adminToken, map[string]string{"status": types.ApplicationStatusReviewed})

	if w.Code != http.StatusNotFound {
		t.Errorf("missing application: expected 404, got %d", w.Code)
	}
}
