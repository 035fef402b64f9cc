package models

import "gorm.io/gorm"

type Application struct {
	gorm.Model

	// The composite unique index backs the one-application-per-job-per-email
	// rule so concurrent submissions cannot both land.
	JobID       uint   `gorm:"not null;index;uniqueIndex:idx_applications_job_email"`
	Name        string `gorm:"not null"`
	Email       string `gorm:"not null;uniqueIndex:idx_applications_job_email"`
	ResumeURL   string `gorm:"not null"`
	CoverLetter string
	Status      string `gorm:"not null;default:pending"`

	// Relationships
	Job Job `gorm:"foreignKey:JobID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
}
