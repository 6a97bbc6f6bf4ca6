package domain

import (
	"math"
	"regexp"
	"strings"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type VerificationStatus string

const (
	VerificationPending  VerificationStatus = "pending"
	VerificationInReview VerificationStatus = "in_review"
	VerificationVerified VerificationStatus = "verified"
	VerificationRejected VerificationStatus = "rejected"
)

func (v VerificationStatus) Valid() bool {
	switch v {
	case VerificationPending, VerificationInReview, VerificationVerified, VerificationRejected:
		return true
	}
	return false
}

type SpecialistStatus string

const (
	SpecialistAvailable SpecialistStatus = "available"
	SpecialistBusy      SpecialistStatus = "busy"
	SpecialistOnLeave   SpecialistStatus = "on_leave"
	SpecialistInactive  SpecialistStatus = "inactive"
)

type Certification struct {
	Name                string     `json:"name"`
	IssuingOrganization string     `json:"issuing_organization"`
	IssueDate           time.Time  `json:"issue_date"`
	ExpiryDate          *time.Time `json:"expiry_date,omitempty"`
	CredentialID        string     `json:"credential_id,omitempty"`
}

type Specialist struct {
	ID          string `gorm:"column:id;primaryKey" json:"id"`
	Slug        string `gorm:"column:slug;uniqueIndex" json:"slug"`
	Title       string `gorm:"column:title" json:"title"`
	Description string `gorm:"column:description" json:"description"`
	ShortBio    string `gorm:"column:short_bio" json:"short_bio,omitempty"`

	BasePrice   float64 `gorm:"column:base_price" json:"base_price"`
	PlatformFee float64 `gorm:"column:platform_fee" json:"platform_fee"`
	FinalPrice  float64 `gorm:"column:final_price" json:"final_price"`

	AverageRating        float64 `gorm:"column:average_rating" json:"average_rating"`
	TotalNumberOfRatings int     `gorm:"column:total_number_of_ratings" json:"total_number_of_ratings"`

	IsDraft            bool               `gorm:"column:is_draft;index:idx_specialists_visibility" json:"is_draft"`
	VerificationStatus VerificationStatus `gorm:"column:verification_status;index:idx_specialists_visibility" json:"verification_status"`
	IsVerified         bool               `gorm:"column:is_verified" json:"is_verified"`
	SpecialistStatus   SpecialistStatus   `gorm:"column:specialist_status" json:"specialist_status"`

	TotalProjectsCompleted int `gorm:"column:total_projects_completed" json:"total_projects_completed"`
	DurationDays           int `gorm:"column:duration_days" json:"duration_days"`

	AdditionalOfferings datatypes.JSONSlice[string]        `gorm:"column:additional_offerings" json:"additional_offerings,omitempty"`
	ExpertiseAreas      datatypes.JSONSlice[string]        `gorm:"column:expertise_areas" json:"expertise_areas,omitempty"`
	Certifications      datatypes.JSONSlice[Certification] `gorm:"column:certifications" json:"certifications,omitempty"`

	CreatedByID         string  `gorm:"column:created_by_id;index" json:"created_by_id"`
	AssignedSecretaryID *string `gorm:"column:assigned_secretary_id;index" json:"assigned_secretary_id,omitempty"`

	Media []Media `gorm:"foreignKey:SpecialistID;constraint:OnDelete:CASCADE" json:"media,omitempty"`

	CreatedAt time.Time      `gorm:"column:created_at" json:"created_at"`
	UpdatedAt time.Time      `gorm:"column:updated_at" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"column:deleted_at;index" json:"-"`
}

func (Specialist) TableName() string { return "specialists" }

var (
	slugStripRe    = regexp.MustCompile(`[^\w\s-]`)
	slugSpaceRe    = regexp.MustCompile(`\s+`)
	slugCollapseRe = regexp.MustCompile(`--+`)
)

// Slugify derives a URL slug from a title: lowercase, strip everything
// outside word chars/whitespace/hyphens, whitespace runs to a single
// hyphen, consecutive hyphens collapsed.
func Slugify(title string) string {
	s := strings.ToLower(title)
	s = slugStripRe.ReplaceAllString(s, "")
	s = slugSpaceRe.ReplaceAllString(s, "-")
	s = slugCollapseRe.ReplaceAllString(s, "-")
	return s
}

// EnsureSlug sets the slug from the title on first save only. A slug is
// never regenerated afterwards, even when the title changes.
func (s *Specialist) EnsureSlug() {
	if s.Slug == "" {
		s.Slug = Slugify(s.Title)
	}
}

// FinalPriceOf computes base + base*fee/100 in integer cents so repeated
// recomputation cannot drift.
func FinalPriceOf(basePrice, feePct float64) float64 {
	baseCents := int64(math.Round(basePrice * 100))
	feeCents := int64(math.Round(float64(baseCents) * feePct / 100))
	return float64(baseCents+feeCents) / 100
}

// RecalculateFinalPrice must run before every insert or update that
// touches base_price or platform_fee.
func (s *Specialist) RecalculateFinalPrice() {
	s.FinalPrice = FinalPriceOf(s.BasePrice, s.PlatformFee)
}

// ApplyRating folds one rating into the running mean. Callers must
// serialize this per specialist at the storage layer.
func (s *Specialist) ApplyRating(rating float64) {
	total := s.AverageRating * float64(s.TotalNumberOfRatings)
	s.TotalNumberOfRatings++
	s.AverageRating = (total + rating) / float64(s.TotalNumberOfRatings)
}

// SetVerificationStatus keeps is_verified in lockstep with the status;
// the boolean is never writable on its own.
func (s *Specialist) SetVerificationStatus(status VerificationStatus) {
	s.VerificationStatus = status
	s.IsVerified = status == VerificationVerified
}

// IsPubliclyVisible reports whether non-privileged callers may see the
// listing.
func (s *Specialist) IsPubliclyVisible() bool {
	return !s.IsDraft && s.VerificationStatus == VerificationVerified
}

func (s *Specialist) IsAvailable() bool {
	return s.SpecialistStatus == SpecialistAvailable && !s.IsDraft
}

func (s *Specialist) CanBeBooked() bool {
	return s.IsAvailable() && s.IsVerified
}

// YearsOfExperience uses a fixed 365.25-day year, matching how listing
// age has always been reported.
func (s *Specialist) YearsOfExperience(now time.Time) int {
	if s.CreatedAt.IsZero() || now.Before(s.CreatedAt) {
		return 0
	}
	years := now.Sub(s.CreatedAt).Hours() / (24 * 365.25)
	return int(math.Floor(years))
}
