package company

import (
	"time"

	"github.com/joychandrauday/anycomp-backend/internal/domain"
)

type CreateRequest struct {
	LegalName          string `json:"legal_name" binding:"required,min=2"`
	RegistrationNumber string `json:"registration_number" binding:"required"`
	CompanyNumber      string `json:"company_number"`
	EntityType         string `json:"entity_type" binding:"required"`

	IncorporationDate *time.Time `json:"incorporation_date"`
	BusinessSector    string     `json:"business_sector"`
	BusinessNature    string     `json:"business_nature"`

	AuthorizedCapital float64 `json:"authorized_capital"`
	PaidUpCapital     float64 `json:"paid_up_capital"`
	TotalShares       int     `json:"total_shares"`

	RegisteredAddress string `json:"registered_address"`
	BusinessAddress   string `json:"business_address"`
	PhoneNumber       string `json:"phone_number"`
	Email             string `json:"email"`
	Website           string `json:"website"`
}

type UpdateRequest struct {
	LegalName      *string `json:"legal_name,omitempty"`
	CompanyNumber  *string `json:"company_number,omitempty"`
	Status         *string `json:"status,omitempty"`
	BusinessSector *string `json:"business_sector,omitempty"`
	BusinessNature *string `json:"business_nature,omitempty"`

	FinancialYearEnd      *time.Time `json:"financial_year_end,omitempty"`
	NextAnnualReturnDue   *time.Time `json:"next_annual_return_due,omitempty"`
	LastAnnualReturnFiled *time.Time `json:"last_annual_return_filed,omitempty"`
	NextAGMDate           *time.Time `json:"next_agm_date,omitempty"`
	LastAGMHeld           *time.Time `json:"last_agm_held,omitempty"`
	IsAGMHeld             *bool      `json:"is_agm_held,omitempty"`
	IsAnnualReturnFiled   *bool      `json:"is_annual_return_filed,omitempty"`

	RegisteredAddress *string `json:"registered_address,omitempty"`
	BusinessAddress   *string `json:"business_address,omitempty"`
	PhoneNumber       *string `json:"phone_number,omitempty"`
	Email             *string `json:"email,omitempty"`
	Website           *string `json:"website,omitempty"`
	Notes             *string `json:"notes,omitempty"`
}

type AddDirectorRequest struct {
	Director domain.Director `json:"director" binding:"required"`
}

type AddShareholderRequest struct {
	Shareholder domain.Shareholder `json:"shareholder" binding:"required"`
}

type ListQuery struct {
	Status string `form:"status"`
	Limit  int    `form:"limit,default=20"`
	Offset int    `form:"offset,default=0"`
}

// Compliance is the read-model derived from the filing deadlines.
type Compliance struct {
	IsCompliant       bool       `json:"is_compliant"`
	NextComplianceDue *time.Time `json:"next_compliance_due,omitempty"`
	AgeYears          int        `json:"age_years"`
}
