package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// Client is a typed consumer of the job board REST API. It attaches the
// session's bearer token to every request and drops the session when the
// server answers 401, the same contract the browser client implemented
// with axios interceptors.
type Client struct {
	BaseURL string
	HTTP    *http.Client
	Session *Session
}

func New(baseURL string, session *Session) *Client {
	return &Client{
		BaseURL: strings.TrimSuffix(baseURL, "/"),
		HTTP:    &http.Client{Timeout: 30 * time.Second},
		Session: session,
	}
}

// APIError carries the server's error body and status code.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d: %s", e.StatusCode, e.Message)
}

func (c *Client) do(ctx context.Context, method string, path string, query url.Values, body interface{}, out interface{}) error {
	endpoint := c.BaseURL + path

	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var reader io.Reader

	if body != nil {
		payload, err := json.Marshal(body)

		if err != nil {
			return err
		}

		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)

	if err != nil {
		return err
	}

	req.Header.Set("Content-Type", "application/json")

	if c.Session != nil && c.Session.Authenticated() {
		req.Header.Set("Authorization", "Bearer "+c.Session.Token)
	}

	resp, err := c.HTTP.Do(req)

	if err != nil {
		return err
	}

	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized && c.Session != nil {
		// Expired or revoked credential: clear the session so the next
		// call starts logged out.
		_ = c.Session.Logout()
	}

	if resp.StatusCode >= 400 {
		var errBody struct {
			Error string `json:"error"`
		}

		message := resp.Status

		if err := json.NewDecoder(resp.Body).Decode(&errBody); err == nil && errBody.Error != "" {
			message = errBody.Error
		}

		return &APIError{StatusCode: resp.StatusCode, Message: message}
	}

	if out == nil {
		return nil
	}

	return json.NewDecoder(resp.Body).Decode(out)
}

type Salary struct {
	Min      *int64 `json:"min,omitempty"`
	Max      *int64 `json:"max,omitempty"`
	Currency string `json:"currency,omitempty"`
}

type Job struct {
	ID           uint       `json:"id"`
	Title        string     `json:"title"`
	Company      string     `json:"company"`
	Location     string     `json:"location"`
	Description  string     `json:"description"`
	Requirements []string   `json:"requirements"`
	Salary       *Salary    `json:"salary,omitempty"`
	Type         string     `json:"type,omitempty"`
	Remote       bool       `json:"remote"`
	PostedAt     *time.Time `json:"postedAt,omitempty"`
	IsActive     *bool      `json:"isActive,omitempty"`
	CreatedAt    time.Time  `json:"createdAt,omitempty"`
	UpdatedAt    time.Time  `json:"updatedAt,omitempty"`
}

type JobPage struct {
	Jobs        []Job `json:"jobs"`
	Total       int64 `json:"total"`
	CurrentPage int   `json:"currentPage"`
	TotalPages  int   `json:"totalPages"`
}

type JobFilter struct {
	Search   string
	Location string
	Type     string
	Status   string // admin listing only: all, active, inactive
	Page     int
	Limit    int
}

func (f JobFilter) values() url.Values {
	query := url.Values{}

	if f.Search != "" {
		query.Set("search", f.Search)
	}

	if f.Location != "" {
		query.Set("location", f.Location)
	}

	if f.Type != "" {
		query.Set("type", f.Type)
	}

	if f.Status != "" {
		query.Set("status", f.Status)
	}

	if f.Page > 0 {
		query.Set("page", strconv.Itoa(f.Page))
	}

	if f.Limit > 0 {
		query.Set("limit", strconv.Itoa(f.Limit))
	}

	return query
}

type JobSummary struct {
	ID      uint   `json:"id"`
	Title   string `json:"title"`
	Company string `json:"company"`
}

type Application struct {
	ID          uint        `json:"id"`
	JobID       uint        `json:"jobId"`
	Name        string      `json:"name"`
	Email       string      `json:"email"`
	ResumeURL   string      `json:"resumeUrl"`
	CoverLetter string      `json:"coverLetter,omitempty"`
	Status      string      `json:"status"`
	CreatedAt   time.Time   `json:"createdAt"`
	UpdatedAt   time.Time   `json:"updatedAt"`
	Job         *JobSummary `json:"job,omitempty"`
}

type credentialResponse struct {
	Token string      `json:"token"`
	User  SessionUser `json:"user"`
}

func (c *Client) Register(ctx context.Context, name string, email string, password string) (SessionUser, error) {
	var resp credentialResponse

	body := map[string]string{"name": name, "email": email, "password": password}

	if err := c.do(ctx, http.MethodPost, "/api/auth/register", nil, body, &resp); err != nil {
		return SessionUser{}, err
	}

	if c.Session != nil {
		if err := c.Session.SetCredentials(resp.Token, resp.User); err != nil {
			return resp.User, err
		}
	}

	return resp.User, nil
}

func (c *Client) Login(ctx context.Context, email string, password string) (SessionUser, error) {
	var resp credentialResponse

	body := map[string]string{"email": email, "password": password}

	if err := c.do(ctx, http.MethodPost, "/api/auth/login", nil, body, &resp); err != nil {
		return SessionUser{}, err
	}

	if c.Session != nil {
		if err := c.Session.SetCredentials(resp.Token, resp.User); err != nil {
			return resp.User, err
		}
	}

	return resp.User, nil
}

func (c *Client) Profile(ctx context.Context) (SessionUser, error) {
	var resp struct {
		User SessionUser `json:"user"`
	}

	err := c.do(ctx, http.MethodGet, "/api/auth/profile", nil, nil, &resp)
	return resp.User, err
}

func (c *Client) UpdateProfile(ctx context.Context, name string, email string) (SessionUser, error) {
	var resp struct {
		User SessionUser `json:"user"`
	}

	body := map[string]string{}

	if name != "" {
		body["name"] = name
	}

	if email != "" {
		body["email"] = email
	}

	err := c.do(ctx, http.MethodPut, "/api/auth/profile", nil, body, &resp)
	return resp.User, err
}

func (c *Client) Jobs(ctx context.Context, filter JobFilter) (JobPage, error) {
	var page JobPage
	err := c.do(ctx, http.MethodGet, "/api/jobs", filter.values(), nil, &page)
	return page, err
}

func (c *Client) AdminJobs(ctx context.Context, filter JobFilter) (JobPage, error) {
	var page JobPage
	err := c.do(ctx, http.MethodGet, "/api/jobs/admin/all", filter.values(), nil, &page)
	return page, err
}

func (c *Client) Job(ctx context.Context, id uint) (Job, error) {
	var job Job
	err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/jobs/%d", id), nil, nil, &job)
	return job, err
}

func (c *Client) AdminJob(ctx context.Context, id uint) (Job, error) {
	var job Job
	err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/jobs/admin/%d", id), nil, nil, &job)
	return job, err
}

func (c *Client) CreateJob(ctx context.Context, job Job) (Job, error) {
	var created Job
	err := c.do(ctx, http.MethodPost, "/api/jobs", nil, job, &created)
	return created, err
}

func (c *Client) UpdateJob(ctx context.Context, id uint, job Job) (Job, error) {
	var updated Job
	err := c.do(ctx, http.MethodPut, fmt.Sprintf("/api/jobs/%d", id), nil, job, &updated)
	return updated, err
}

func (c *Client) ToggleJobStatus(ctx context.Context, id uint) (string, Job, error) {
	var resp struct {
		Message string `json:"message"`
		Job     Job    `json:"job"`
	}

	err := c.do(ctx, http.MethodPatch, fmt.Sprintf("/api/jobs/%d/toggle-status", id), nil, nil, &resp)
	return resp.Message, resp.Job, err
}

func (c *Client) DeleteJob(ctx context.Context, id uint) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/jobs/%d", id), nil, nil, nil)
}

type ApplicationInput struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	ResumeURL   string `json:"resumeUrl"`
	CoverLetter string `json:"coverLetter,omitempty"`
}

func (c *Client) Apply(ctx context.Context, jobID uint, input ApplicationInput) (Application, error) {
	var resp struct {
		Message     string      `json:"message"`
		Application Application `json:"application"`
	}

	err := c.do(ctx, http.MethodPost, fmt.Sprintf("/api/apply/%d", jobID), nil, input, &resp)
	return resp.Application, err
}

func (c *Client) Applications(ctx context.Context) ([]Application, error) {
	var applications []Application
	err := c.do(ctx, http.MethodGet, "/api/apply", nil, nil, &applications)
	return applications, err
}

func (c *Client) MyApplications(ctx context.Context, email string) ([]Application, error) {
	var applications []Application
	err := c.do(ctx, http.MethodGet, "/api/apply/my/"+url.PathEscape(email), nil, nil, &applications)
	return applications, err
}

func (c *Client) UpdateApplicationStatus(ctx context.Context, id uint, status string) (Application, error) {
	var application Application

	body := map[string]string{"status": status}

	err := c.do(ctx, http.MethodPatch, fmt.Sprintf("/api/apply/%d/status", id), nil, body, &application)
	return application, err
}

type Health struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
}

func (c *Client) Health(ctx context.Context) (Health, error) {
	var health Health
	err := c.do(ctx, http.MethodGet, "/health", nil, nil, &health)
	return health, err
}
