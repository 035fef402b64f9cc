package seed

import (
	"errors"
	"strings"
	"time"

	"github.com/jobboard-dev/jobboard/internal/models"
	"github.com/jobboard-dev/jobboard/internal/types"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func int64Ptr(v int64) *int64 {
	return &v
}

var sampleJobs = []models.Job{
	{
		Title:    "Senior Full Stack Developer",
		Company:  "TechNova India",
		Location: "Bangalore, Karnataka",
		Description: "We are seeking a seasoned full stack developer to lead the development of our scalable web applications.\n\n" +
			"Key responsibilities:\n" +
			"- Build robust and scalable software solutions\n" +
			"- Mentor junior developers\n" +
			"- Collaborate with cross-functional teams\n" +
			"- Ensure code quality through reviews",
		Requirements: []string{
			"5+ years of full-stack development experience",
			"Expertise in React, Node.js, MongoDB",
			"Experience with AWS or GCP",
			"Strong knowledge of RESTful APIs",
		},
		SalaryMin:      int64Ptr(2500000),
		SalaryMax:      int64Ptr(4000000),
		SalaryCurrency: types.DefaultSalaryCurrency,
		Type:           types.JobTypeFullTime,
		Remote:         true,
	},
	{
		Title:    "Frontend React Developer",
		Company:  "StartUpDesi",
		Location: "Mumbai, Maharashtra",
		Description: "Join our growing startup as a frontend developer. You will build fast, accessible and responsive interfaces.\n\n" +
			"- Implement UI using React and Tailwind\n" +
			"- Collaborate with designers and the backend team\n" +
			"- Optimize the app for performance",
		Requirements: []string{
			"2+ years of experience with React",
			"Strong grasp of JavaScript and TypeScript",
			"Familiarity with Redux or Context API",
			"Good understanding of responsive design",
		},
		SalaryMin:      int64Ptr(800000),
		SalaryMax:      int64Ptr(1200000),
		SalaryCurrency: types.DefaultSalaryCurrency,
		Type:           types.JobTypeFullTime,
		Remote:         false,
	},
	{
		Title:    "Backend Node.js Developer",
		Company:  "DataBridge India",
		Location: "Hyderabad, Telangana",
		Description: "We are hiring a backend engineer to help build scalable APIs and backend systems.\n\n" +
			"- Write secure, scalable Node.js APIs\n" +
			"- Work with MongoDB and PostgreSQL\n" +
			"- Collaborate on microservices design",
		Requirements: []string{
			"3+ years of backend development",
			"Expertise in Node.js and Express.js",
			"Experience with MongoDB or PostgreSQL",
			"Good grasp of Docker and REST APIs",
		},
		SalaryMin:      int64Ptr(1200000),
		SalaryMax:      int64Ptr(2000000),
		SalaryCurrency: types.DefaultSalaryCurrency,
		Type:           types.JobTypeFullTime,
		Remote:         true,
	},
	{
		Title:    "DevOps Engineer",
		Company:  "CloudOps Bharat",
		Location: "Pune, Maharashtra",
		Description: "Looking for a DevOps engineer to manage CI/CD pipelines and cloud infrastructure.\n\n" +
			"- Manage deployments using CI/CD\n" +
			"- Automate infrastructure using Terraform\n" +
			"- Implement monitoring and security tooling",
		Requirements: []string{
			"2+ years of DevOps experience",
			"Hands-on with AWS and Docker",
			"Experience with Terraform or Ansible",
		},
		SalaryMin:      int64Ptr(1500000),
		SalaryMax:      int64Ptr(2500000),
		SalaryCurrency: types.DefaultSalaryCurrency,
		Type:           types.JobTypeFullTime,
		Remote:         true,
	},
	{
		Title:    "QA Engineering Intern",
		Company:  "TechNova India",
		Location: "Bangalore, Karnataka",
		Description: "Six-month internship on our quality engineering team.\n\n" +
			"- Write and maintain automated test suites\n" +
			"- Reproduce and triage reported defects\n" +
			"- Shadow release verification for production deploys",
		Requirements: []string{
			"Familiarity with JavaScript or Python",
			"Basic understanding of HTTP and REST",
		},
		Type:   types.JobTypeInternship,
		Remote: false,
	},
	{
		Title:    "Technical Writer (Contract)",
		Company:  "DataBridge India",
		Location: "Remote",
		Description: "Three-month contract to overhaul our public API documentation.\n\n" +
			"- Audit and rewrite endpoint reference pages\n" +
			"- Produce onboarding guides for new integrators",
		Requirements: []string{
			"Prior experience documenting REST APIs",
			"Comfortable reading JavaScript and Go",
		},
		SalaryMin:      int64Ptr(400000),
		SalaryMax:      int64Ptr(600000),
		SalaryCurrency: types.DefaultSalaryCurrency,
		Type:           types.JobTypeContract,
		Remote:         true,
	},
}

// Jobs inserts the sample catalog, skipping jobs that already exist.
// Posted dates are staggered so the listing has a meaningful order.
// Returns the number of jobs created.
func Jobs(database *gorm.DB) (int, error) {
	created := 0

	for i, sample := range sampleJobs {
		var existing models.Job

		err := database.Where("title = ? AND company = ?", sample.Title, sample.Company).First(&existing).Error

		if err == nil {
			continue
		}

		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return created, err
		}

		job := sample
		job.PostedAt = time.Now().Add(-time.Duration(i) * 24 * time.Hour)
		job.IsActive = true

		if err := database.Create(&job).Error; err != nil {
			return created, err
		}

		created++
	}

	return created, nil
}

// EnsureAdmin creates the admin account, or promotes an existing account
// with the same email. The password is only set on creation.
func EnsureAdmin(database *gorm.DB, name string, email string, password string) error {
	email = strings.ToLower(strings.TrimSpace(email))

	var existing models.User

	err := database.Where("email = ?", email).First(&existing).Error

	if err == nil {
		if existing.Role == types.RoleAdmin {
			return nil
		}
		return database.Model(&existing).Update("role", types.RoleAdmin).Error
	}

	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)

	if err != nil {
		return err
	}

	admin := models.User{
		Name:         name,
		Email:        email,
		PasswordHash: string(passwordHash),
		Role:         types.RoleAdmin,
	}

	return database.Create(&admin).Error
}
