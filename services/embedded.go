package services

import (
	"math/bits"

	"flightcover/errcode"
	"flightcover/ledger"
	"flightcover/model"

	"github.com/hyperledger/fabric/common/flogging"
)

var logger = flogging.MustGetLogger("flightcover.services")

// Object types of the embedded ledgers.
const (
	assetAccountObjectType  = "AssetAccount"
	proofTokenObjectType    = "ProofToken"
	proofMetadataObjectType = "ProofMetadata"
	proofEditionObjectType  = "ProofEdition"
)

// Embedded keeps asset balances, proof tokens and metadata in this chaincode's
// own world state, written through the caller's Txn.
type Embedded struct {
	txn *ledger.Txn
}

// NewEmbedded binds the embedded ledgers to txn.
func NewEmbedded(txn *ledger.Txn) *Embedded {
	return &Embedded{txn: txn}
}

func (e *Embedded) account(asset, owner string) (string, *model.AssetAccount, error) {
	key, err := e.txn.Key(assetAccountObjectType, asset, owner)
	if err != nil {
		return "", nil, err
	}
	acct := &model.AssetAccount{ObjectType: assetAccountObjectType, Asset: asset, Owner: owner}
	exists, err := e.txn.Exists(key)
	if err != nil {
		return "", nil, err
	}
	if exists {
		if err := e.txn.Get(key, acct); err != nil {
			return "", nil, err
		}
	}
	return key, acct, nil
}

func (e *Embedded) Transfer(asset, from, to string, amount uint64) error {
	if amount == 0 {
		return errcode.New(errcode.InvalidAmount, "transfer amount must be positive")
	}
	if from == to {
		return errcode.New(errcode.InvalidArgument, "transfer source and destination are both '%s'", from)
	}
	fromKey, src, err := e.account(asset, from)
	if err != nil {
		return err
	}
	if src.Balance < amount {
		return errcode.New(errcode.InsufficientFunds, "account '%s' holds %d %s, transfer needs %d", from, src.Balance, asset, amount)
	}
	toKey, dst, err := e.account(asset, to)
	if err != nil {
		return err
	}
	sum, carry := bits.Add64(dst.Balance, amount, 0)
	if carry != 0 {
		return errcode.New(errcode.InvalidAmount, "balance of '%s' would overflow", to)
	}
	src.Balance -= amount
	dst.Balance = sum
	if err := e.txn.Put(fromKey, src); err != nil {
		return err
	}
	if err := e.txn.Put(toKey, dst); err != nil {
		return err
	}
	logger.Debugf("Transferred %d %s from '%s' to '%s'", amount, asset, from, to)
	return nil
}

func (e *Embedded) Balance(asset, owner string) (uint64, error) {
	_, acct, err := e.account(asset, owner)
	if err != nil {
		return 0, err
	}
	return acct.Balance, nil
}

// Credit adds amount to owner's balance out of thin air. Development networks
// use it in place of the external settlement-asset issuer.
func (e *Embedded) Credit(asset, owner string, amount uint64) (uint64, error) {
	key, acct, err := e.account(asset, owner)
	if err != nil {
		return 0, err
	}
	sum, carry := bits.Add64(acct.Balance, amount, 0)
	if carry != 0 {
		return 0, errcode.New(errcode.InvalidAmount, "balance of '%s' would overflow", owner)
	}
	acct.Balance = sum
	if err := e.txn.Put(key, acct); err != nil {
		return 0, err
	}
	return acct.Balance, nil
}

func (e *Embedded) MintAndFreeze(tokenID, owner, authority string) error {
	key, err := e.txn.Key(proofTokenObjectType, tokenID)
	if err != nil {
		return err
	}
	token := model.ProofToken{
		ObjectType: proofTokenObjectType,
		TokenID:    tokenID,
		Owner:      owner,
		Authority:  authority,
		Supply:     1,
	}
	if err := e.txn.Create(key, token); err != nil {
		return err
	}
	token.Frozen = true
	if err := e.txn.Put(key, token); err != nil {
		return err
	}
	logger.Debugf("Minted and froze proof token '%s' for '%s'", tokenID, owner)
	return nil
}

func (e *Embedded) MetadataAddresses(tokenID string) (model.MetadataAddresses, error) {
	return model.MetadataAddresses{
		Metadata: ledger.MetadataAddress(tokenID),
		Edition:  ledger.EditionAddress(tokenID),
	}, nil
}

func (e *Embedded) RegisterMetadata(meta model.ProofMetadata) error {
	tokenKey, err := e.txn.Key(proofTokenObjectType, meta.TokenID)
	if err != nil {
		return err
	}
	var token model.ProofToken
	if err := e.txn.Get(tokenKey, &token); err != nil {
		return err
	}
	if token.Authority != meta.UpdateAuthority {
		return errcode.New(errcode.Unauthorized, "update authority '%s' does not control token '%s'", meta.UpdateAuthority, meta.TokenID)
	}
	mdKey, err := e.txn.Key(proofMetadataObjectType, meta.Addresses.Metadata)
	if err != nil {
		return err
	}
	meta.ObjectType = proofMetadataObjectType
	if err := e.txn.Create(mdKey, meta); err != nil {
		return err
	}
	edKey, err := e.txn.Key(proofEditionObjectType, meta.Addresses.Edition)
	if err != nil {
		return err
	}
	return e.txn.Create(edKey, map[string]interface{}{
		"objectType": proofEditionObjectType,
		"tokenId":    meta.TokenID,
		"maxSupply":  meta.EditionMaxSupply,
	})
}

// ProofToken loads a minted token.
func (e *Embedded) ProofToken(tokenID string) (*model.ProofToken, error) {
	key, err := e.txn.Key(proofTokenObjectType, tokenID)
	if err != nil {
		return nil, err
	}
	var token model.ProofToken
	if err := e.txn.Get(key, &token); err != nil {
		return nil, err
	}
	return &token, nil
}

// ProofMetadata loads registered metadata by its address.
func (e *Embedded) ProofMetadata(address string) (*model.ProofMetadata, error) {
	key, err := e.txn.Key(proofMetadataObjectType, address)
	if err != nil {
		return nil, err
	}
	var meta model.ProofMetadata
	if err := e.txn.Get(key, &meta); err != nil {
		return nil, err
	}
	return &meta, nil
}
