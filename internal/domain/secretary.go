package domain

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type SecretaryStatus string

const (
	SecretaryActive   SecretaryStatus = "active"
	SecretaryOnLeave  SecretaryStatus = "on_leave"
	SecretaryInactive SecretaryStatus = "inactive"
)

type SecretaryType string

const (
	SecretaryCorporate  SecretaryType = "corporate"
	SecretaryIndividual SecretaryType = "individual"
)

// Capacity caps per secretary. Workload is measured against these.
const (
	MaxCompaniesPerSecretary   = 50
	MaxSpecialistsPerSecretary = 30
	overloadThresholdPct       = 80
)

type SecretaryContact struct {
	OfficePhone      string `json:"office_phone,omitempty"`
	MobilePhone      string `json:"mobile_phone,omitempty"`
	OfficeAddress    string `json:"office_address,omitempty"`
	EmergencyContact string `json:"emergency_contact,omitempty"`
}

type Secretary struct {
	ID                 string          `gorm:"column:id;primaryKey" json:"id"`
	RegistrationNumber string          `gorm:"column:registration_number;uniqueIndex" json:"registration_number"`
	SecretaryType      SecretaryType   `gorm:"column:secretary_type" json:"secretary_type"`
	Status             SecretaryStatus `gorm:"column:status;index" json:"status"`

	RegistrationDate *time.Time `gorm:"column:registration_date" json:"registration_date,omitempty"`
	ExpiryDate       *time.Time `gorm:"column:expiry_date" json:"expiry_date,omitempty"`

	Qualification string `gorm:"column:qualification" json:"qualification,omitempty"`
	CompanyName   string `gorm:"column:company_name" json:"company_name,omitempty"`
	Experience    string `gorm:"column:experience" json:"experience,omitempty"`

	AreasOfExpertise datatypes.JSONSlice[string]        `gorm:"column:areas_of_expertise" json:"areas_of_expertise,omitempty"`
	Certifications   datatypes.JSONSlice[Certification] `gorm:"column:certifications" json:"certifications,omitempty"`

	TotalCompaniesManaged   int     `gorm:"column:total_companies_managed" json:"total_companies_managed"`
	TotalSpecialistsManaged int     `gorm:"column:total_specialists_managed" json:"total_specialists_managed"`
	SatisfactionRate        float64 `gorm:"column:satisfaction_rate" json:"satisfaction_rate"`
	YearsOfExperience       int     `gorm:"column:years_of_experience" json:"years_of_experience"`

	IsVerified        bool       `gorm:"column:is_verified" json:"is_verified"`
	VerificationNotes string     `gorm:"column:verification_notes" json:"verification_notes,omitempty"`
	VerifiedAt        *time.Time `gorm:"column:verified_at" json:"verified_at,omitempty"`
	VerifiedByID      *string    `gorm:"column:verified_by_id" json:"verified_by_id,omitempty"`

	HourlyRate  float64 `gorm:"column:hourly_rate" json:"hourly_rate,omitempty"`
	MonthlyRate float64 `gorm:"column:monthly_rate" json:"monthly_rate,omitempty"`
	Avatar      string  `gorm:"column:avatar" json:"avatar,omitempty"`
	Banner      string  `gorm:"column:banner" json:"banner,omitempty"`

	AvailabilitySchedule      string `gorm:"column:availability_schedule" json:"availability_schedule,omitempty"`
	IsAcceptingNewCompanies   bool   `gorm:"column:is_accepting_new_companies" json:"is_accepting_new_companies"`
	IsAcceptingNewSpecialists bool   `gorm:"column:is_accepting_new_specialists" json:"is_accepting_new_specialists"`

	ContactInformation datatypes.JSONType[SecretaryContact] `gorm:"column:contact_information" json:"contact_information,omitempty"`

	UserID    string  `gorm:"column:user_id;uniqueIndex" json:"user_id"`
	ManagerID *string `gorm:"column:manager_id" json:"manager_id,omitempty"`

	CreatedAt time.Time      `gorm:"column:created_at" json:"created_at"`
	UpdatedAt time.Time      `gorm:"column:updated_at" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"column:deleted_at;index" json:"-"`
}

func (Secretary) TableName() string { return "secretaries" }

// WorkloadPercentage is derived from the managed counters against the
// fixed caps; the larger of the two ratios wins.
func (s *Secretary) WorkloadPercentage() float64 {
	companyPct := float64(s.TotalCompaniesManaged) / MaxCompaniesPerSecretary * 100
	specialistPct := float64(s.TotalSpecialistsManaged) / MaxSpecialistsPerSecretary * 100
	if companyPct > specialistPct {
		return companyPct
	}
	return specialistPct
}

func (s *Secretary) IsOverloaded() bool {
	return s.WorkloadPercentage() >= overloadThresholdPct
}

func (s *Secretary) IsAvailable() bool {
	return s.Status == SecretaryActive && s.IsVerified
}

func (s *Secretary) CanTakeMoreCompanies() bool {
	return s.IsAcceptingNewCompanies && s.IsAvailable()
}

func (s *Secretary) CanTakeMoreSpecialists() bool {
	return s.IsAcceptingNewSpecialists && s.IsAvailable()
}

// refreshAvailability re-derives both acceptance flags. It runs as part
// of every counter mutation; the flags are not independently settable.
func (s *Secretary) refreshAvailability() {
	overloaded := s.IsOverloaded()
	s.IsAcceptingNewCompanies = !overloaded
	s.IsAcceptingNewSpecialists = !overloaded
}

func (s *Secretary) AddCompany() {
	s.TotalCompaniesManaged++
	s.refreshAvailability()
}

func (s *Secretary) RemoveCompany() {
	if s.TotalCompaniesManaged > 0 {
		s.TotalCompaniesManaged--
	}
	s.refreshAvailability()
}

func (s *Secretary) AddSpecialist() {
	s.TotalSpecialistsManaged++
	s.refreshAvailability()
}

func (s *Secretary) RemoveSpecialist() {
	if s.TotalSpecialistsManaged > 0 {
		s.TotalSpecialistsManaged--
	}
	s.refreshAvailability()
}
