package domain

import "time"

type TierName string

const (
	TierBasic      TierName = "basic"
	TierStandard   TierName = "standard"
	TierPremium    TierName = "premium"
	TierEnterprise TierName = "enterprise"
)

// DefaultPlatformFeePct applies when no tier covers a price. A missing
// tier is an operational gap, not an error.
const DefaultPlatformFeePct = 10.0

// PlatformFee maps a price range to a fee percentage. Ranges are
// expected non-overlapping across tiers.
type PlatformFee struct {
	ID                    string    `gorm:"column:id;primaryKey" json:"id"`
	TierName              TierName  `gorm:"column:tier_name;uniqueIndex" json:"tier_name"`
	MinValue              float64   `gorm:"column:min_value" json:"min_value"`
	MaxValue              float64   `gorm:"column:max_value" json:"max_value"`
	PlatformFeePercentage float64   `gorm:"column:platform_fee_percentage" json:"platform_fee_percentage"`
	CreatedAt             time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt             time.Time `gorm:"column:updated_at" json:"updated_at"`
}

func (PlatformFee) TableName() string { return "platform_fees" }

func (f *PlatformFee) Covers(price float64) bool {
	return f.MinValue <= price && price <= f.MaxValue
}

// ResolveFee finds the tier covering price. The second return reports
// whether the default fallback was used.
func ResolveFee(tiers []PlatformFee, price float64) (float64, bool) {
	for i := range tiers {
		if tiers[i].Covers(price) {
			return tiers[i].PlatformFeePercentage, false
		}
	}
	return DefaultPlatformFeePct, true
}
