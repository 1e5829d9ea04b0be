package model

// LiquidityProviderAccount tracks one provider's funding of the risk pool.
// ActiveDeposit always equals TotalDeposited - TotalWithdrawn.
type LiquidityProviderAccount struct {
	ObjectType     string `json:"objectType"` // "LiquidityProvider"
	Provider       string `json:"provider"`
	TotalDeposited uint64 `json:"totalDeposited"`
	TotalWithdrawn uint64 `json:"totalWithdrawn"`
	ActiveDeposit  uint64 `json:"activeDeposit"`
}

// PoolBalance reports the custodial risk-pool account.
type PoolBalance struct {
	Account string `json:"account"`
	Asset   string `json:"asset"`
	Balance uint64 `json:"balance"`
}
