package contract

import (
	"flightcover/errcode"
	"flightcover/ledger"
	"flightcover/model"

	"github.com/hyperledger/fabric-contract-api-go/contractapi"
)

// PurchasePolicy sells coverage for one flight under productID. The caller pays
// premiumAmount into the pool and receives a frozen proof token. With
// createProofMetadata the token's metadata is registered as well.
func (s *FlightInsuranceContract) PurchasePolicy(ctx contractapi.TransactionContextInterface, policyID uint64, productID uint64, flightNumber string, departureTime int64, premiumAmount uint64, createProofMetadata bool, metadataURI string) (*model.PolicyPurchased, error) {
	tx, err := s.begin(ctx)
	if err != nil {
		return nil, err
	}
	_, cfg, err := tx.loadConfig()
	if err != nil {
		return nil, err
	}
	if err := requireNotPaused(cfg); err != nil {
		return nil, err
	}
	_, product, err := tx.loadProduct(productID)
	if err != nil {
		return nil, err
	}
	if err := requireProductActive(product); err != nil {
		return nil, err
	}
	if err := validateRequiredString(flightNumber, "flightNumber", maxFlightNumberLength); err != nil {
		return nil, err
	}
	if err := validateOptionalString(metadataURI, "metadataUri", maxMetadataURILength); err != nil {
		return nil, err
	}
	key, err := policyKey(tx.txn, policyID)
	if err != nil {
		return nil, err
	}
	exists, err := tx.txn.Exists(key)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, errcode.New(errcode.RecordExists, "policy %d already exists", policyID)
	}
	if err := requireSufficientPremium(product, premiumAmount); err != nil {
		return nil, err
	}

	if err := tx.transfer(cfg.SettlementAsset, tx.caller, ledger.PoolAccount(), premiumAmount); err != nil {
		return nil, err
	}

	now, err := tx.txn.Timestamp()
	if err != nil {
		return nil, err
	}
	tokenID := ledger.ProofTokenID(policyID)
	policy := &model.Policy{
		ObjectType:     policyObjectType,
		ID:             policyID,
		Policyholder:   tx.caller,
		ProductID:      product.ID,
		FlightNumber:   flightNumber,
		DepartureTime:  departureTime,
		PremiumPaid:    premiumAmount,
		CoverageAmount: product.CoverageAmount,
		Status:         model.PolicyActive,
		CreatedAt:      now.Unix(),
		ProofTokenID:   tokenID,
	}
	if err := tx.txn.Create(key, policy); err != nil {
		return nil, err
	}
	indexKey, err := tx.txn.Key(holderPolicyIndex, tx.caller, ledger.U64Key(policyID))
	if err != nil {
		return nil, err
	}
	if err := tx.txn.PutRaw(indexKey, []byte{0x00}); err != nil {
		return nil, err
	}

	authority := ledger.MintAuthority()
	if err := tx.svc.MintAndFreeze(tokenID, tx.caller, authority); err != nil {
		return nil, err
	}
	if createProofMetadata {
		if err := tx.registerProofMetadata(policy, authority, metadataURI); err != nil {
			return nil, err
		}
	}

	event := &model.PolicyPurchased{PolicyID: policyID, Policyholder: tx.caller, ProofTokenID: tokenID}
	if err := tx.txn.SetEvent(PolicyPurchasedEvent, event); err != nil {
		return nil, err
	}
	if err := tx.commit("PurchasePolicy"); err != nil {
		return nil, err
	}
	logger.Infof("Policy %d purchased by '%s' on product %d for flight %s: premium %d, coverage %d, token %s",
		policyID, tx.caller, product.ID, flightNumber, premiumAmount, policy.CoverageAmount, tokenID)
	return event, nil
}

func (tx *session) registerProofMetadata(policy *model.Policy, authority, uri string) error {
	tokenID := policy.ProofTokenID
	got, err := tx.svc.MetadataAddresses(tokenID)
	if err != nil {
		return err
	}
	if err := requireAddressMatch("metadata", ledger.MetadataAddress(tokenID), got.Metadata); err != nil {
		return err
	}
	if err := requireAddressMatch("edition", ledger.EditionAddress(tokenID), got.Edition); err != nil {
		return err
	}
	return tx.svc.RegisterMetadata(model.ProofMetadata{
		TokenID:          tokenID,
		Addresses:        got,
		UpdateAuthority:  authority,
		Payer:            policy.Policyholder,
		Name:             proofTokenName(policy.ID, policy.FlightNumber),
		Symbol:           proofTokenSymbol,
		URI:              uri,
		SellerFeeBps:     0,
		IsMutable:        false,
		EditionMaxSupply: 1,
	})
}
