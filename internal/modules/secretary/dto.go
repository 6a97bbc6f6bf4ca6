package secretary

import "github.com/joychandrauday/anycomp-backend/internal/domain"

// CreateRequest arrives as a multipart form so avatar and banner can be
// uploaded in the same call.
type CreateRequest struct {
	FullName    string `form:"full_name" binding:"required,min=2"`
	Email       string `form:"email" binding:"required,email"`
	Password    string `form:"password" binding:"required,min=8"`
	PhoneNumber string `form:"phone_number"`

	RegistrationNumber string `form:"registration_number" binding:"required"`
	SecretaryType      string `form:"secretary_type"`
	Qualification      string `form:"qualification"`
	CompanyName        string `form:"company_name"`
	Experience         string `form:"experience"`
	HourlyRate         float64 `form:"hourly_rate"`
	MonthlyRate        float64 `form:"monthly_rate"`
}

type UpdateRequest struct {
	Qualification        *string                  `json:"qualification,omitempty"`
	CompanyName          *string                  `json:"company_name,omitempty"`
	Experience           *string                  `json:"experience,omitempty"`
	Status               *string                  `json:"status,omitempty"`
	HourlyRate           *float64                 `json:"hourly_rate,omitempty"`
	MonthlyRate          *float64                 `json:"monthly_rate,omitempty"`
	AvailabilitySchedule *string                  `json:"availability_schedule,omitempty"`
	AreasOfExpertise     *[]string                `json:"areas_of_expertise,omitempty"`
	Certifications       *[]domain.Certification  `json:"certifications,omitempty"`
	ContactInformation   *domain.SecretaryContact `json:"contact_information,omitempty"`
}

type VerifyRequest struct {
	Notes string `json:"notes"`
}

type ListQuery struct {
	Status string `form:"status"`
	Limit  int    `form:"limit,default=20"`
	Offset int    `form:"offset,default=0"`
}

// Stats is the workload read-model derived from managed counters.
type Stats struct {
	TotalCompaniesManaged   int     `json:"total_companies_managed"`
	TotalSpecialistsManaged int     `json:"total_specialists_managed"`
	WorkloadPercentage      float64 `json:"workload_percentage"`
	IsOverloaded            bool    `json:"is_overloaded"`
	IsAvailable             bool    `json:"is_available"`
	AcceptingNewCompanies   bool    `json:"accepting_new_companies"`
	AcceptingNewSpecialists bool    `json:"accepting_new_specialists"`
}
