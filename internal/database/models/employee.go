package models

import "github.com/google/uuid"

// Employee belongs to exactly one Company
type Employee struct {
	BaseModel
	CompanyID uuid.UUID `json:"company_id" gorm:"type:uuid;not null;index"`
	FirstName string    `json:"first_name" gorm:"not null;size:255"`
	LastName  string    `json:"last_name" gorm:"not null;size:255"`
	Email     string    `json:"email" gorm:"not null;size:255"`
	Address   string    `json:"address" gorm:"not null;size:255"`

	Company *Company `json:"company,omitempty" gorm:"foreignKey:CompanyID"`
}

// TableName returns the table name for Employee
func (Employee) TableName() string {
	return "employees"
}
