package model

import "time"

// Product defines the coverage terms and pricing of an insurable flight-delay product.
type Product struct {
	ObjectType            string    `json:"objectType"` // "Product"
	ID                    uint64    `json:"id"`
	DelayThresholdMinutes uint32    `json:"delayThresholdMinutes"` // Minimum delay that makes a policy payable
	CoverageAmount        uint64    `json:"coverageAmount"`        // Payout in settlement-asset units
	PremiumRateBps        uint16    `json:"premiumRateBps"`        // Premium as basis points of coverage
	ClaimWindowHours      uint32    `json:"claimWindowHours"`      // Declared, not enforced
	Active                bool      `json:"active"`
	CreatedBy             string    `json:"createdBy"`
	CreatedAt             time.Time `json:"createdAt"`
	UpdatedAt             time.Time `json:"updatedAt"`
}
