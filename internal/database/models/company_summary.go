package models

import (
	"time"

	"github.com/google/uuid"
)

// CompanySummary is a read model: one company row plus its employee count,
// filled by a single aggregated query.
type CompanySummary struct {
	ID             uuid.UUID `json:"id"`
	Name           string    `json:"name"`
	ABN            string    `json:"abn" gorm:"column:abn"`
	Email          string    `json:"email"`
	Address        string    `json:"address"`
	EmployeesCount int64     `json:"employees_count"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}
