package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Job struct {
	gorm.Model

	Title        string `gorm:"not null"`
	Company      string `gorm:"not null"`
	Location     string `gorm:"not null;index"`
	Description  string `gorm:"not null"`
	Requirements datatypes.JSONSlice[string] `gorm:"type:jsonb"`

	// Salary is optional; currency defaults to INR when a range is present.
	SalaryMin      *int64
	SalaryMax      *int64
	SalaryCurrency string

	Type     string    `gorm:"not null;default:full-time"`
	Remote   bool      `gorm:"not null"`
	PostedAt time.Time `gorm:"not null;index"`
	// No default tag: gorm drops zero-valued fields that carry one on
	// Create, which would turn an explicit IsActive=false into true.
	// Every creation path sets the field itself.
	IsActive bool `gorm:"not null;index"`

	// Relationships
	Applications []Application `gorm:"foreignKey:JobID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
}
