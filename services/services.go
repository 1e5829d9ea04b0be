// Package services reaches the collaborators that move the settlement asset,
// mint proof tokens and register token metadata.
package services

//go:generate mockgen -source=services.go -destination=mocks/services_mock.go -package=mocks Services

import (
	"fmt"

	"flightcover/ledger"
	"flightcover/model"
)

// Services are the delegated calls a transaction makes. Every call runs inside
// the caller's transaction, so a failed transaction discards their effects.
type Services interface {
	// Transfer moves amount of asset from one owner's account to another's.
	Transfer(asset, from, to string, amount uint64) error
	// Balance reports owner's balance of asset.
	Balance(asset, owner string) (uint64, error)
	// MintAndFreeze mints one unit of tokenID to owner and freezes the holding.
	MintAndFreeze(tokenID, owner, authority string) error
	// MetadataAddresses reports where the registry keeps tokenID's metadata.
	MetadataAddresses(tokenID string) (model.MetadataAddresses, error)
	// RegisterMetadata records descriptive metadata and the edition marker.
	RegisterMetadata(meta model.ProofMetadata) error
}

// Factory binds Services to one transaction.
type Factory func(txn *ledger.Txn) Services

// Backend names accepted by NewFactory.
const (
	BackendEmbedded  = "embedded"
	BackendChaincode = "chaincode"
)

// Options select and address a backend.
type Options struct {
	Backend           string
	Channel           string
	AssetChaincode    string
	TokenChaincode    string
	MetadataChaincode string
}

// NewFactory returns the Factory for opts.Backend.
func NewFactory(opts Options) (Factory, error) {
	switch opts.Backend {
	case "", BackendEmbedded:
		return func(txn *ledger.Txn) Services { return NewEmbedded(txn) }, nil
	case BackendChaincode:
		if opts.AssetChaincode == "" || opts.TokenChaincode == "" || opts.MetadataChaincode == "" {
			return nil, fmt.Errorf("chaincode backend requires asset, token and metadata chaincode names")
		}
		return func(txn *ledger.Txn) Services {
			return NewChaincode(txn.Stub(), ChaincodeNames{
				Channel:  opts.Channel,
				Asset:    opts.AssetChaincode,
				Token:    opts.TokenChaincode,
				Metadata: opts.MetadataChaincode,
			})
		}, nil
	default:
		return nil, fmt.Errorf("unknown services backend '%s'", opts.Backend)
	}
}
