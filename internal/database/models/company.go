package models

// Company is a business that employs zero or more employees.
// Name, ABN and email are each unique across all companies.
type Company struct {
	BaseModel
	Name    string `json:"name" gorm:"uniqueIndex;not null;size:255"`
	ABN     string `json:"abn" gorm:"column:abn;uniqueIndex;not null;size:11"`
	Email   string `json:"email" gorm:"uniqueIndex;not null;size:255"`
	Address string `json:"address" gorm:"not null;size:255"`

	// Relationships
	Employees []Employee `json:"employees,omitempty" gorm:"foreignKey:CompanyID"`
}

// TableName returns the table name for Company
func (Company) TableName() string {
	return "companies"
}
