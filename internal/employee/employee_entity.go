package employee

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Employee is the compensation anchor read by payroll. Rows are soft deleted
// and never removed while payroll history references them.
type Employee struct {
	ID           uuid.UUID       `gorm:"type:uuid;primaryKey"`
	StaffNumber  string          `gorm:"size:50;uniqueIndex;not null"`
	FirstName    string          `gorm:"size:100;not null"`
	LastName     string          `gorm:"size:100"`
	BasicSalary  decimal.Decimal `gorm:"type:numeric(14,2);not null;default:0"`
	JoinDate     time.Time       `gorm:"type:date"`
	ContractType string          `gorm:"size:30"`
	SupervisorID *uuid.UUID      `gorm:"type:uuid;index"`
	Supervisor   *Employee       `gorm:"foreignKey:SupervisorID"`
	Department   string          `gorm:"size:100"`
	Designation  string          `gorm:"size:100"`
	Branch       string          `gorm:"size:100"`
	Location     string          `gorm:"size:100"`
	UserID       *uuid.UUID      `gorm:"type:uuid;index"`
	User         *User           `gorm:"foreignKey:UserID"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
	DeletedAt    gorm.DeletedAt `gorm:"index"`
}

// User is the contact identity linked to an employee.
type User struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name      string    `gorm:"size:150"`
	Email     string    `gorm:"size:150;uniqueIndex"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (e Employee) FullName() string {
	return strings.TrimSpace(e.FirstName + " " + e.LastName)
}

// ContactEmail returns "" when the employee has no deliverable address.
func (e Employee) ContactEmail() string {
	if e.User == nil {
		return ""
	}
	return strings.TrimSpace(e.User.Email)
}
