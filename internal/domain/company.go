package domain

import (
	"math"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type CompanyType string

const (
	CompanySdnBhd      CompanyType = "SDN_BHD"
	CompanyBhd         CompanyType = "BHD"
	CompanyLLP         CompanyType = "LLP"
	CompanySoleProp    CompanyType = "SOLE_PROP"
	CompanyPartnership CompanyType = "PARTNERSHIP"
	CompanyForeign     CompanyType = "FOREIGN"
)

type CompanyStatus string

const (
	CompanyIncorporating CompanyStatus = "INCORPORATING"
	CompanyActive        CompanyStatus = "ACTIVE"
	CompanyStruckOff     CompanyStatus = "STRUCK_OFF"
	CompanyDormant       CompanyStatus = "DORMANT"
	CompanyLiquidation   CompanyStatus = "LIQUIDATION"
	CompanyInactive      CompanyStatus = "INACTIVE"
)

type Director struct {
	Name                 string     `json:"name"`
	IdentificationNumber string     `json:"identification_number"`
	Nationality          string     `json:"nationality"`
	Address              string     `json:"address"`
	AppointmentDate      time.Time  `json:"appointment_date"`
	ResignationDate      *time.Time `json:"resignation_date,omitempty"`
	IsActive             bool       `json:"is_active"`
}

type Shareholder struct {
	Name                 string    `json:"name"`
	IdentificationNumber string    `json:"identification_number"`
	SharesHeld           int       `json:"shares_held"`
	SharePercentage      float64   `json:"share_percentage"`
	AppointmentDate      time.Time `json:"appointment_date"`
}

type CompanySecretaryRecord struct {
	Name               string     `json:"name"`
	RegistrationNumber string     `json:"registration_number"`
	AppointmentDate    time.Time  `json:"appointment_date"`
	ResignationDate    *time.Time `json:"resignation_date,omitempty"`
}

type Auditor struct {
	FirmName           string    `json:"firm_name"`
	RegistrationNumber string    `json:"registration_number"`
	AppointmentDate    time.Time `json:"appointment_date"`
}

type BankAccount struct {
	BankName      string `json:"bank_name"`
	AccountNumber string `json:"account_number"`
	AccountType   string `json:"account_type"`
	Currency      string `json:"currency"`
	IsPrimary     bool   `json:"is_primary"`
}

type Company struct {
	ID                 string        `gorm:"column:id;primaryKey" json:"id"`
	LegalName          string        `gorm:"column:legal_name;index" json:"legal_name"`
	RegistrationNumber string        `gorm:"column:registration_number;uniqueIndex" json:"registration_number"`
	CompanyNumber      string        `gorm:"column:company_number" json:"company_number,omitempty"`
	EntityType         CompanyType   `gorm:"column:entity_type" json:"entity_type"`
	Status             CompanyStatus `gorm:"column:status;index" json:"status"`

	IncorporationDate *time.Time `gorm:"column:incorporation_date" json:"incorporation_date,omitempty"`
	BusinessSector    string     `gorm:"column:business_sector" json:"business_sector,omitempty"`
	BusinessNature    string     `gorm:"column:business_nature" json:"business_nature,omitempty"`

	AuthorizedCapital float64 `gorm:"column:authorized_capital" json:"authorized_capital,omitempty"`
	PaidUpCapital     float64 `gorm:"column:paid_up_capital" json:"paid_up_capital,omitempty"`
	TotalShares       int     `gorm:"column:total_shares" json:"total_shares,omitempty"`
	ParValue          string  `gorm:"column:par_value" json:"par_value,omitempty"`

	FinancialYearEnd      *time.Time `gorm:"column:financial_year_end" json:"financial_year_end,omitempty"`
	NextAnnualReturnDue   *time.Time `gorm:"column:next_annual_return_due" json:"next_annual_return_due,omitempty"`
	LastAnnualReturnFiled *time.Time `gorm:"column:last_annual_return_filed" json:"last_annual_return_filed,omitempty"`
	NextAGMDate           *time.Time `gorm:"column:next_agm_date" json:"next_agm_date,omitempty"`
	LastAGMHeld           *time.Time `gorm:"column:last_agm_held" json:"last_agm_held,omitempty"`
	IsAGMHeld             bool       `gorm:"column:is_agm_held" json:"is_agm_held"`
	IsAnnualReturnFiled   bool       `gorm:"column:is_annual_return_filed" json:"is_annual_return_filed"`

	RegisteredAddress string `gorm:"column:registered_address" json:"registered_address,omitempty"`
	BusinessAddress   string `gorm:"column:business_address" json:"business_address,omitempty"`
	PhoneNumber       string `gorm:"column:phone_number" json:"phone_number,omitempty"`
	Email             string `gorm:"column:email" json:"email,omitempty"`
	Website           string `gorm:"column:website" json:"website,omitempty"`

	Directors    datatypes.JSONSlice[Director]               `gorm:"column:directors" json:"directors,omitempty"`
	Shareholders datatypes.JSONSlice[Shareholder]            `gorm:"column:shareholders" json:"shareholders,omitempty"`
	Secretaries  datatypes.JSONSlice[CompanySecretaryRecord] `gorm:"column:secretaries" json:"secretaries,omitempty"`
	Auditors     datatypes.JSONSlice[Auditor]                `gorm:"column:auditors" json:"auditors,omitempty"`
	BankAccounts datatypes.JSONSlice[BankAccount]            `gorm:"column:bank_accounts" json:"bank_accounts,omitempty"`

	Notes    string `gorm:"column:notes" json:"notes,omitempty"`
	IsActive bool   `gorm:"column:is_active" json:"is_active"`

	OwnerID             string  `gorm:"column:owner_id;index" json:"owner_id"`
	AssignedSecretaryID *string `gorm:"column:assigned_secretary_id;index" json:"assigned_secretary_id,omitempty"`

	CreatedAt time.Time      `gorm:"column:created_at" json:"created_at"`
	UpdatedAt time.Time      `gorm:"column:updated_at" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"column:deleted_at;index" json:"-"`
}

func (Company) TableName() string { return "companies" }

// IsCompliant holds iff neither annual-return nor AGM deadlines are
// strictly in the past. With no dates set it holds vacuously.
func (c *Company) IsCompliant(now time.Time) bool {
	if c.NextAnnualReturnDue != nil && c.NextAnnualReturnDue.Before(now) {
		return false
	}
	if c.NextAGMDate != nil && c.NextAGMDate.Before(now) {
		return false
	}
	return true
}

// NextComplianceDue is the earlier of the annual-return and AGM
// deadlines, or nil when neither is set.
func (c *Company) NextComplianceDue() *time.Time {
	switch {
	case c.NextAnnualReturnDue == nil:
		return c.NextAGMDate
	case c.NextAGMDate == nil:
		return c.NextAnnualReturnDue
	case c.NextAGMDate.Before(*c.NextAnnualReturnDue):
		return c.NextAGMDate
	default:
		return c.NextAnnualReturnDue
	}
}

// Age in whole years since incorporation, 365.25-day years.
func (c *Company) Age(now time.Time) int {
	if c.IncorporationDate == nil || now.Before(*c.IncorporationDate) {
		return 0
	}
	years := now.Sub(*c.IncorporationDate).Hours() / (24 * 365.25)
	return int(math.Floor(years))
}

func (c *Company) AddDirector(d Director) {
	d.IsActive = true
	c.Directors = append(c.Directors, d)
}

func (c *Company) AddShareholder(sh Shareholder, now time.Time) {
	sh.AppointmentDate = now
	c.Shareholders = append(c.Shareholders, sh)
}
