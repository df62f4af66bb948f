package employee

import (
	"time"

	"github.com/shopspring/decimal"
)

type Employee struct {
	ID           string
	UserID       string
	CompanyID    string
	FirstName    string
	LastName     string
	Gender       Gender
	ContractType ContractType
	Address      *string
	ShiftCount   *int
	BaseSalary   *decimal.Decimal
	CreatedAt    time.Time
	UpdatedAt    time.Time
	DeletedAt    *time.Time

	// DTO / join
	CompanyUsername *string
}

func (e *Employee) FullName() string {
	return e.FirstName + " " + e.LastName
}

// IsResigned reports whether the profile has been tombstoned.
func (e *Employee) IsResigned() bool {
	return e.DeletedAt != nil
}

type Gender string

const (
	Male   Gender = "Male"
	Female Gender = "Female"
)

var GenderValues = []string{
	string(Male),
	string(Female),
}

type ContractType string

const (
	ContractTypePermanent  ContractType = "permanent"
	ContractTypeProbation  ContractType = "probation"
	ContractTypeInternship ContractType = "internship"
	ContractTypeContract   ContractType = "contract"
)

var ContractTypeValues = []string{
	string(ContractTypePermanent),
	string(ContractTypeProbation),
	string(ContractTypeInternship),
	string(ContractTypeContract),
}
