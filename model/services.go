package model

// AssetAccount is a settlement-asset balance held by the embedded asset ledger.
type AssetAccount struct {
	ObjectType string `json:"objectType"` // "AssetAccount"
	Asset      string `json:"asset"`
	Owner      string `json:"owner"`
	Balance    uint64 `json:"balance"`
}

// ProofToken is a proof-of-insurance token held by the embedded token ledger.
type ProofToken struct {
	ObjectType string `json:"objectType"` // "ProofToken"
	TokenID    string `json:"tokenId"`
	Owner      string `json:"owner"`
	Authority  string `json:"authority"` // Mint and freeze authority
	Supply     uint64 `json:"supply"`
	Frozen     bool   `json:"frozen"`
}

// MetadataAddresses are the locations where a token's metadata and edition marker live.
type MetadataAddresses struct {
	Metadata string `json:"metadata"`
	Edition  string `json:"edition"`
}

// ProofMetadata is the descriptive metadata registered for a proof token.
type ProofMetadata struct {
	ObjectType       string            `json:"objectType"` // "ProofMetadata"
	TokenID          string            `json:"tokenId"`
	Addresses        MetadataAddresses `json:"addresses"`
	UpdateAuthority  string            `json:"updateAuthority"`
	Payer            string            `json:"payer"`
	Name             string            `json:"name"`
	Symbol           string            `json:"symbol"`
	URI              string            `json:"uri"`
	SellerFeeBps     uint16            `json:"sellerFeeBps"`
	IsMutable        bool              `json:"isMutable"`
	EditionMaxSupply uint64            `json:"editionMaxSupply"`
}
