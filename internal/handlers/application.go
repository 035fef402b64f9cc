package handlers

import (
	"errors"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jobboard-dev/jobboard/db"
	"github.com/jobboard-dev/jobboard/internal/models"
	"github.com/jobboard-dev/jobboard/internal/types"
	"github.com/jobboard-dev/jobboard/internal/utils"
	"gorm.io/gorm"
)

type SubmitApplicationRequest struct {
	Name        string `json:"name" binding:"required"`
	Email       string `json:"email" binding:"required,email"`
	ResumeURL   string `json:"resumeUrl" binding:"required,url"`
	CoverLetter string `json:"coverLetter"`
}

type UpdateApplicationStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type ApplicationJobSummary struct {
	ID      uint   `json:"id"`
	Title   string `json:"title"`
	Company string `json:"company"`
}

type ApplicationResponse struct {
	ID          uint                   `json:"id"`
	JobID       uint                   `json:"jobId"`
	Name        string                 `json:"name"`
	Email       string                 `json:"email"`
	ResumeURL   string                 `json:"resumeUrl"`
	CoverLetter string                 `json:"coverLetter,omitempty"`
	Status      string                 `json:"status"`
	CreatedAt   time.Time              `json:"createdAt"`
	UpdatedAt   time.Time              `json:"updatedAt"`
	Job         *ApplicationJobSummary `json:"job,omitempty"`
}

func NewApplicationResponse(application models.Application) ApplicationResponse {
	response := ApplicationResponse{
		ID:          application.ID,
		JobID:       application.JobID,
		Name:        application.Name,
		Email:       application.Email,
		ResumeURL:   application.ResumeURL,
		CoverLetter: application.CoverLetter,
		Status:      application.Status,
		CreatedAt:   application.CreatedAt,
		UpdatedAt:   application.UpdatedAt,
	}

	if application.Job.ID != 0 {
		response.Job = &ApplicationJobSummary{
			ID:      application.Job.ID,
			Title:   application.Job.Title,
			Company: application.Job.Company,
		}
	}

	return response
}

func SubmitApplication(ctx *gin.Context) {
	jobID, err := utils.GetIDParam(ctx, "jobId")

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var body SubmitApplicationRequest

	if err := ctx.BindJSON(&body); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	body.Name = strings.TrimSpace(body.Name)

	if body.Name == "" {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Name is required"})
		return
	}

	var job models.Job

	if err := db.DB.First(&job, jobID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Job not found"})
		} else {
			log.Printf("Failed to fetch job: %v", err)
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}

	// Closed jobs do not accept applications and are not acknowledged
	// as existing.
	if !job.IsActive {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "Job not found"})
		return
	}

	email := strings.ToLower(strings.TrimSpace(body.Email))

	var existing models.Application

	err = db.DB.Where("job_id = ? AND email = ?", job.ID, email).First(&existing).Error

	if err == nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "You have already applied for this job"})
		return
	}

	if !errors.Is(err, gorm.ErrRecordNotFound) {
		log.Printf("Database error when checking existing application: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	application := models.Application{
		JobID:       job.ID,
		Name:        body.Name,
		Email:       email,
		ResumeURL:   body.ResumeURL,
		CoverLetter: body.CoverLetter,
		Status:      types.ApplicationStatusPending,
	}

	if err := db.DB.Create(&application).Error; err != nil {
		// Two submissions can pass the check above at the same time;
		// the unique index turns the loser into a duplicate error.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "You have already applied for this job"})
			return
		}
		log.Printf("Failed to create application: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{
		"message":     "Application submitted successfully",
		"application": NewApplicationResponse(application),
	})
}

func ListApplications(ctx *gin.Context) {
	var applications []models.Application

	err := db.DB.
		Preload("Job").
		Order("created_at DESC, id DESC").
		Find(&applications).Error

	if err != nil {
		log.Printf("Failed to list applications: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve applications"})
		return
	}

	response := make([]ApplicationResponse, 0, len(applications))

	for _, application := range applications {
		response = append(response, NewApplicationResponse(application))
	}

	ctx.JSON(http.StatusOK, response)
}

// ListMyApplications keeps the /my/:email path shape but only serves the
// authenticated caller's own applications; the path parameter is checked
// against the verified identity instead of being trusted.
func ListMyApplications(ctx *gin.Context) {
	currentUser, err := utils.GetCurrentUser(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	email := strings.ToLower(strings.TrimSpace(ctx.Param("email")))

	if email != strings.ToLower(currentUser.Email) {
		ctx.JSON(http.StatusForbidden, gin.H{"error": "You can only view your own applications"})
		return
	}

	var applications []models.Application

	err = db.DB.
		Preload("Job").
		Where("email = ?", email).
		Order("created_at DESC, id DESC").
		Find(&applications).Error

	if err != nil {
		log.Printf("Failed to list applications: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve applications"})
		return
	}

	response := make([]ApplicationResponse, 0, len(applications))

	for _, application := range applications {
		response = append(response, NewApplicationResponse(application))
	}

	ctx.JSON(http.StatusOK, response)
}

func UpdateApplicationStatus(ctx *gin.Context) {
	applicationID, err := utils.GetApplicationID(ctx)

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var body UpdateApplicationStatusRequest

	if err := ctx.BindJSON(&body); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	if !types.IsValidApplicationStatus(body.Status) {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid status"})
		return
	}

	var application models.Application

	if err := db.DB.Preload("Job").First(&application, applicationID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Application not found"})
		} else {
			log.Printf("Failed to fetch application: %v", err)
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}

	application.Status = body.Status

	if err := db.DB.Model(&application).Update("status", body.Status).Error; err != nil {
		log.Printf("Failed to update application status: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update application"})
		return
	}

	ctx.JSON(http.StatusOK, NewApplicationResponse(application))
}
