package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	cases := []struct {
		title string
		want  string
	}{
		{"Senior Tax Advisor", "senior-tax-advisor"},
		{"  Company   Secretary!!  ", "-company-secretary-"},
		{"C++ & Go Expert", "c-go-expert"},
		{"already-slugged", "already-slugged"},
		{"Multi --- Dash", "multi-dash"},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, Slugify(tc.title), "title %q", tc.title)
	}
}

func TestEnsureSlug_OnlyWhenEmpty(t *testing.T) {
	s := &Specialist{Title: "Audit Services"}
	s.EnsureSlug()
	assert.Equal(t, "audit-services", s.Slug)

	s.Title = "Renamed Audit Services"
	s.EnsureSlug()
	assert.Equal(t, "audit-services", s.Slug, "slug must never regenerate")
}

func TestFinalPriceOf(t *testing.T) {
	assert.Equal(t, 110.0, FinalPriceOf(100, 10))
	assert.Equal(t, 1085.0, FinalPriceOf(1000, 8.5))
	assert.Equal(t, 0.11, FinalPriceOf(0.1, 10))

	// Repeated recomputation must not drift.
	s := &Specialist{BasePrice: 19.99, PlatformFee: 8.5}
	s.RecalculateFinalPrice()
	first := s.FinalPrice
	for i := 0; i < 100; i++ {
		s.RecalculateFinalPrice()
	}
	assert.Equal(t, first, s.FinalPrice)
}

func TestApplyRating_RunningMean(t *testing.T) {
	s := &Specialist{}

	s.ApplyRating(4)
	assert.Equal(t, 4.0, s.AverageRating)
	assert.Equal(t, 1, s.TotalNumberOfRatings)

	s.ApplyRating(2)
	assert.Equal(t, 3.0, s.AverageRating)
	assert.Equal(t, 2, s.TotalNumberOfRatings)

	s.ApplyRating(5)
	assert.InDelta(t, 11.0/3.0, s.AverageRating, 1e-9)
	assert.Equal(t, 3, s.TotalNumberOfRatings)
}

func TestSetVerificationStatus_LockstepFlag(t *testing.T) {
	s := &Specialist{}

	s.SetVerificationStatus(VerificationVerified)
	assert.True(t, s.IsVerified)

	s.SetVerificationStatus(VerificationRejected)
	assert.False(t, s.IsVerified)

	s.SetVerificationStatus(VerificationInReview)
	assert.False(t, s.IsVerified)
}

func TestIsPubliclyVisible(t *testing.T) {
	s := &Specialist{IsDraft: true}
	s.SetVerificationStatus(VerificationVerified)
	assert.False(t, s.IsPubliclyVisible(), "draft stays hidden even when verified")

	s.IsDraft = false
	assert.True(t, s.IsPubliclyVisible())

	s.SetVerificationStatus(VerificationPending)
	assert.False(t, s.IsPubliclyVisible(), "published but unverified stays hidden")
}

func TestYearsOfExperience(t *testing.T) {
	now := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)

	s := &Specialist{CreatedAt: now.AddDate(-3, 0, 0)}
	assert.Equal(t, 3, s.YearsOfExperience(now))

	s.CreatedAt = now.Add(-400 * 24 * time.Hour)
	assert.Equal(t, 1, s.YearsOfExperience(now))

	s.CreatedAt = now.Add(24 * time.Hour)
	assert.Equal(t, 0, s.YearsOfExperience(now), "future created_at reads as zero")

	s.CreatedAt = time.Time{}
	assert.Equal(t, 0, s.YearsOfExperience(now))
}
