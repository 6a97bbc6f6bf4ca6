package specialist

import "github.com/joychandrauday/anycomp-backend/internal/domain"

type CreateRequest struct {
	Title       string  `json:"title" binding:"required,min=3"`
	Description string  `json:"description"`
	ShortBio    string  `json:"short_bio"`
	BasePrice   float64 `json:"base_price" binding:"required,gt=0"`

	// Optional explicit fee percentage. When omitted the tier table
	// resolves it from the base price.
	PlatformFee *float64 `json:"platform_fee"`

	DurationDays        int                    `json:"duration_days"`
	AdditionalOfferings []string               `json:"additional_offerings"`
	ExpertiseAreas      []string               `json:"expertise_areas"`
	Certifications      []domain.Certification `json:"certifications"`
}

type UpdateRequest struct {
	Title       *string  `json:"title,omitempty"`
	Description *string  `json:"description,omitempty"`
	ShortBio    *string  `json:"short_bio,omitempty"`
	BasePrice   *float64 `json:"base_price,omitempty"`
	PlatformFee *float64 `json:"platform_fee,omitempty"`

	SpecialistStatus    *string                 `json:"specialist_status,omitempty"`
	DurationDays        *int                    `json:"duration_days,omitempty"`
	AdditionalOfferings *[]string               `json:"additional_offerings,omitempty"`
	ExpertiseAreas      *[]string               `json:"expertise_areas,omitempty"`
	Certifications      *[]domain.Certification `json:"certifications,omitempty"`
}

type VerificationRequest struct {
	Status string `json:"status" binding:"required"`
}

type RateRequest struct {
	Rating float64 `json:"rating" binding:"required"`
}

type ListQuery struct {
	Title    string   `form:"title"`
	MinPrice *float64 `form:"min_price"`
	MaxPrice *float64 `form:"max_price"`
	IsDraft  *bool    `form:"is_draft"`
	Status   string   `form:"verification_status"`
	Limit    int      `form:"limit,default=20"`
	Offset   int      `form:"offset,default=0"`
}
