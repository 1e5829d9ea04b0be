package model

// PolicyStatus defines the possible states of a policy.
type PolicyStatus string

const (
	PolicyActive  PolicyStatus = "ACTIVE"   // Purchased, payout not yet made
	PolicyPaidOut PolicyStatus = "PAID_OUT" // Coverage amount transferred to the policyholder
	PolicyExpired PolicyStatus = "EXPIRED"  // Declared; no transaction produces it yet
)

// Policy is a purchased coverage for a single flight.
type Policy struct {
	ObjectType     string       `json:"objectType"` // "Policy"
	ID             uint64       `json:"id"`
	Policyholder   string       `json:"policyholder"`
	ProductID      uint64       `json:"productId"` // Copied at purchase; not a live link
	FlightNumber   string       `json:"flightNumber"`
	DepartureTime  int64        `json:"departureTime"` // Epoch seconds
	PremiumPaid    uint64       `json:"premiumPaid"`
	CoverageAmount uint64       `json:"coverageAmount"` // Snapshot of the product coverage at purchase
	Status         PolicyStatus `json:"status"`
	CreatedAt      int64        `json:"createdAt"`                             // Epoch seconds, transaction time
	PaidAt         int64        `json:"paidAt,omitempty" metadata:",optional"` // Epoch seconds; zero until paid out
	ProofTokenID   string       `json:"proofTokenId"`
}

// PolicyPurchased is the chaincode event emitted by a successful purchase.
type PolicyPurchased struct {
	PolicyID     uint64 `json:"policyId"`
	Policyholder string `json:"policyholder"`
	ProofTokenID string `json:"proofTokenId"`
}
