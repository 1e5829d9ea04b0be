package model

import "time"

// ProtocolConfig is the singleton protocol-wide settings record.
type ProtocolConfig struct {
	ObjectType      string    `json:"objectType"`      // "Config"
	Admin           string    `json:"admin"`           // Identity allowed to run admin operations
	SettlementAsset string    `json:"settlementAsset"` // Asset used for premiums, deposits and payouts
	OracleService   string    `json:"oracleService"`   // Identity of the delay oracle service
	Paused          bool      `json:"paused"`
	InitializedBy   string    `json:"initializedBy"`
	InitializedAt   time.Time `json:"initializedAt"`
}
