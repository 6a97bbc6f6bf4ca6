package platformfee

type CreateTierRequest struct {
	TierName              string  `json:"tier_name" binding:"required"`
	MinValue              float64 `json:"min_value"`
	MaxValue              float64 `json:"max_value" binding:"required"`
	PlatformFeePercentage float64 `json:"platform_fee_percentage" binding:"required"`
}

type UpdateTierRequest struct {
	MinValue              *float64 `json:"min_value,omitempty"`
	MaxValue              *float64 `json:"max_value,omitempty"`
	PlatformFeePercentage *float64 `json:"platform_fee_percentage,omitempty"`
}

type ResolveQuery struct {
	Price float64 `form:"price" binding:"required"`
}

// Resolution reports the fee applied to a price and whether the default
// fallback was used because no tier covered it.
type Resolution struct {
	Price         float64 `json:"price"`
	FeePercentage float64 `json:"fee_percentage"`
	FinalPrice    float64 `json:"final_price"`
	UsedFallback  bool    `json:"used_fallback"`
}
