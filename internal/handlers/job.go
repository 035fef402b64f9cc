package handlers

import (
	"errors"
	"log"
	"math"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jobboard-dev/jobboard/db"
	"github.com/jobboard-dev/jobboard/internal/models"
	"github.com/jobboard-dev/jobboard/internal/types"
	"github.com/jobboard-dev/jobboard/internal/utils"
	"gorm.io/gorm"
)

const (
	defaultPageSize = 10
	maxPageSize     = 100
)

type SalaryRequest struct {
	Min      *int64 `json:"min"`
	Max      *int64 `json:"max"`
	Currency string `json:"currency"`
}

type JobRequest struct {
	Title        string         `json:"title" binding:"required"`
	Company      string         `json:"company" binding:"required"`
	Location     string         `json:"location" binding:"required"`
	Description  string         `json:"description" binding:"required"`
	Requirements []string       `json:"requirements"`
	Salary       *SalaryRequest `json:"salary"`
	Type         string         `json:"type" binding:"omitempty,oneof=full-time part-time contract internship"`
	Remote       bool           `json:"remote"`
	PostedAt     *time.Time     `json:"postedAt"`
	IsActive     *bool          `json:"isActive"`
}

type SalaryResponse struct {
	Min      *int64 `json:"min,omitempty"`
	Max      *int64 `json:"max,omitempty"`
	Currency string `json:"currency"`
}

type JobResponse struct {
	ID           uint            `json:"id"`
	Title        string          `json:"title"`
	Company      string          `json:"company"`
	Location     string          `json:"location"`
	Description  string          `json:"description"`
	Requirements []string        `json:"requirements"`
	Salary       *SalaryResponse `json:"salary,omitempty"`
	Type         string          `json:"type"`
	Remote       bool            `json:"remote"`
	PostedAt     time.Time       `json:"postedAt"`
	IsActive     bool            `json:"isActive"`
	CreatedAt    time.Time       `json:"createdAt"`
	UpdatedAt    time.Time       `json:"updatedAt"`
}

func NewJobResponse(job models.Job) JobResponse {
	response := JobResponse{
		ID:           job.ID,
		Title:        job.Title,
		Company:      job.Company,
		Location:     job.Location,
		Description:  job.Description,
		Requirements: job.Requirements,
		Type:         job.Type,
		Remote:       job.Remote,
		PostedAt:     job.PostedAt,
		IsActive:     job.IsActive,
		CreatedAt:    job.CreatedAt,
		UpdatedAt:    job.UpdatedAt,
	}

	if response.Requirements == nil {
		response.Requirements = []string{}
	}

	if job.SalaryMin != nil || job.SalaryMax != nil {
		response.Salary = &SalaryResponse{
			Min:      job.SalaryMin,
			Max:      job.SalaryMax,
			Currency: job.SalaryCurrency,
		}
	}

	return response
}

func parsePagination(ctx *gin.Context) (page int, limit int) {
	page, err := strconv.Atoi(ctx.Query("page"))

	if err != nil || page < 1 {
		page = 1
	}

	limit, err = strconv.Atoi(ctx.Query("limit"))

	if err != nil || limit < 1 {
		limit = defaultPageSize
	}

	if limit > maxPageSize {
		limit = maxPageSize
	}

	return page, limit
}

// applyJobFilters mirrors the search contract: a job matches when any search
// term appears in its title, company or location, case-insensitive.
func applyJobFilters(query *gorm.DB, search string, location string, jobType string) *gorm.DB {
	if search != "" {
		var clauses []string
		var args []interface{}

		for _, term := range strings.Fields(search) {
			pattern := "%" + strings.ToLower(term) + "%"
			clauses = append(clauses, "(LOWER(title) LIKE ? OR LOWER(company) LIKE ? OR LOWER(location) LIKE ?)")
			args = append(args, pattern, pattern, pattern)
		}

		query = query.Where(strings.Join(clauses, " OR "), args...)
	}

	if location != "" {
		query = query.Where("LOWER(location) LIKE ?", "%"+strings.ToLower(location)+"%")
	}

	if jobType != "" {
		query = query.Where("type = ?", jobType)
	}

	return query
}

func listJobsPage(ctx *gin.Context, query *gorm.DB) {
	page, limit := parsePagination(ctx)

	var total int64

	if err := query.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		log.Printf("Failed to count jobs: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve jobs"})
		return
	}

	var jobs []models.Job

	err := query.
		Order("posted_at DESC, id DESC").
		Limit(limit).
		Offset((page - 1) * limit).
		Find(&jobs).Error

	if err != nil {
		log.Printf("Failed to list jobs: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve jobs"})
		return
	}

	response := make([]JobResponse, 0, len(jobs))

	for _, job := range jobs {
		response = append(response, NewJobResponse(job))
	}

	ctx.JSON(http.StatusOK, gin.H{
		"jobs":        response,
		"total":       total,
		"currentPage": page,
		"totalPages":  int(math.Ceil(float64(total) / float64(limit))),
	})
}

func ListJobs(ctx *gin.Context) {
	query := db.DB.Model(&models.Job{}).Where("is_active = ?", true)
	query = applyJobFilters(query, ctx.Query("search"), ctx.Query("location"), ctx.Query("type"))

	listJobsPage(ctx, query)
}

func ListJobsForAdmin(ctx *gin.Context) {
	query := db.DB.Model(&models.Job{})

	if status := ctx.Query("status"); status != "" && status != "all" {
		query = query.Where("is_active = ?", status == "active")
	}

	query = applyJobFilters(query, ctx.Query("search"), ctx.Query("location"), ctx.Query("type"))

	listJobsPage(ctx, query)
}

func GetJob(ctx *gin.Context) {
	jobID, err := utils.GetJobID(ctx)

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var job models.Job

	if err := db.DB.First(&job, jobID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Job not found"})
		} else {
			log.Printf("Failed to fetch job: %v", err)
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve job"})
		}
		return
	}

	// Inactive jobs are invisible on the public surface.
	if !job.IsActive {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "Job not found"})
		return
	}

	ctx.JSON(http.StatusOK, NewJobResponse(job))
}

// GetJobForAdmin serves the edit screen, which must load jobs the public
// endpoint hides.
func GetJobForAdmin(ctx *gin.Context) {
	jobID, err := utils.GetJobID(ctx)

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var job models.Job

	if err := db.DB.First(&job, jobID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Job not found"})
		} else {
			log.Printf("Failed to fetch job: %v", err)
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve job"})
		}
		return
	}

	ctx.JSON(http.StatusOK, NewJobResponse(job))
}

// validateJobRequest applies the trim rules the binding tags cannot express
// and returns a field-level message for the first failure.
func validateJobRequest(body *JobRequest) string {
	body.Title = strings.TrimSpace(body.Title)
	body.Company = strings.TrimSpace(body.Company)
	body.Location = strings.TrimSpace(body.Location)
	body.Description = strings.TrimSpace(body.Description)

	switch {
	case body.Title == "":
		return "Title is required"
	case body.Company == "":
		return "Company is required"
	case body.Location == "":
		return "Location is required"
	case body.Description == "":
		return "Description is required"
	}

	return ""
}

func jobFromRequest(body JobRequest) models.Job {
	job := models.Job{
		Title:        body.Title,
		Company:      body.Company,
		Location:     body.Location,
		Description:  body.Description,
		Requirements: body.Requirements,
		Type:         body.Type,
		Remote:       body.Remote,
		PostedAt:     time.Now(),
		IsActive:     true,
	}

	if job.Type == "" {
		job.Type = types.JobTypeFullTime
	}

	if body.PostedAt != nil {
		job.PostedAt = *body.PostedAt
	}

	if body.IsActive != nil {
		job.IsActive = *body.IsActive
	}

	if body.Salary != nil {
		job.SalaryMin = body.Salary.Min
		job.SalaryMax = body.Salary.Max
		job.SalaryCurrency = body.Salary.Currency

		if job.SalaryCurrency == "" {
			job.SalaryCurrency = types.DefaultSalaryCurrency
		}
	}

	return job
}

func CreateJob(ctx *gin.Context) {
	var body JobRequest

	if err := ctx.BindJSON(&body); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	if message := validateJobRequest(&body); message != "" {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": message})
		return
	}

	job := jobFromRequest(body)

	if err := db.DB.Create(&job).Error; err != nil {
		log.Printf("Failed to create job: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create job"})
		return
	}

	ctx.JSON(http.StatusCreated, NewJobResponse(job))
}

func UpdateJob(ctx *gin.Context) {
	jobID, err := utils.GetJobID(ctx)

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var body JobRequest

	if err := ctx.BindJSON(&body); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	if message := validateJobRequest(&body); message != "" {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": message})
		return
	}

	var job models.Job

	if err := db.DB.First(&job, jobID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Job not found"})
		} else {
			log.Printf("Failed to fetch job: %v", err)
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve job"})
		}
		return
	}

	job.Title = body.Title
	job.Company = body.Company
	job.Location = body.Location
	job.Description = body.Description
	job.Requirements = body.Requirements
	job.Remote = body.Remote

	if body.Type != "" {
		job.Type = body.Type
	}

	if body.PostedAt != nil {
		job.PostedAt = *body.PostedAt
	}

	if body.IsActive != nil {
		job.IsActive = *body.IsActive
	}

	if body.Salary != nil {
		job.SalaryMin = body.Salary.Min
		job.SalaryMax = body.Salary.Max
		job.SalaryCurrency = body.Salary.Currency

		if job.SalaryCurrency == "" {
			job.SalaryCurrency = types.DefaultSalaryCurrency
		}
	} else {
		job.SalaryMin = nil
		job.SalaryMax = nil
		job.SalaryCurrency = ""
	}

	if err := db.DB.Save(&job).Error; err != nil {
		log.Printf("Failed to update job: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update job"})
		return
	}

	ctx.JSON(http.StatusOK, NewJobResponse(job))
}

func ToggleJobStatus(ctx *gin.Context) {
	jobID, err := utils.GetJobID(ctx)

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var job models.Job

	if err := db.DB.First(&job, jobID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Job not found"})
		} else {
			log.Printf("Failed to fetch job: %v", err)
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve job"})
		}
		return
	}

	job.IsActive = !job.IsActive

	if err := db.DB.Model(&job).Update("is_active", job.IsActive).Error; err != nil {
		log.Printf("Failed to toggle job status: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update job"})
		return
	}

	message := "Job deactivated successfully"

	if job.IsActive {
		message = "Job activated successfully"
	}

	ctx.JSON(http.StatusOK, gin.H{
		"message": message,
		"job":     NewJobResponse(job),
	})
}

// DeleteJob removes the job permanently. Toggle-status is the only soft
// mechanism; a deleted job cannot come back.
func DeleteJob(ctx *gin.Context) {
	jobID, err := utils.GetJobID(ctx)

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var job models.Job

	if err := db.DB.First(&job, jobID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Job not found"})
		} else {
			log.Printf("Failed to fetch job: %v", err)
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve job"})
		}
		return
	}

	if err := db.DB.Unscoped().Where("job_id = ?", job.ID).Delete(&models.Application{}).Error; err != nil {
		log.Printf("Failed to delete applications for job %d: %v", job.ID, err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete job"})
		return
	}

	if err := db.DB.Unscoped().Delete(&job).Error; err != nil {
		log.Printf("Failed to delete job: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete job"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Job permanently deleted successfully"})
}
