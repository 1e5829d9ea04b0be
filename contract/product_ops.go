package contract

import (
	"flightcover/model"

	"github.com/hyperledger/fabric-contract-api-go/contractapi"
)

// CreateProduct adds an active product under a caller-chosen id. Creation is
// not restricted to the admin.
func (s *FlightInsuranceContract) CreateProduct(ctx contractapi.TransactionContextInterface, id uint64, delayThresholdMinutes uint32, coverageAmount uint64, premiumRateBps uint16, claimWindowHours uint32) error {
	tx, err := s.begin(ctx)
	if err != nil {
		return err
	}
	_, cfg, err := tx.loadConfig()
	if err != nil {
		return err
	}
	if err := requireNotPaused(cfg); err != nil {
		return err
	}
	if tx.caller != cfg.Admin {
		logger.Warningf("CreateProduct: product %d created by non-admin '%s'", id, tx.caller)
	}

	key, err := productKey(tx.txn, id)
	if err != nil {
		return err
	}
	now, err := tx.txn.Timestamp()
	if err != nil {
		return err
	}
	product := &model.Product{
		ObjectType:            productObjectType,
		ID:                    id,
		DelayThresholdMinutes: delayThresholdMinutes,
		CoverageAmount:        coverageAmount,
		PremiumRateBps:        premiumRateBps,
		ClaimWindowHours:      claimWindowHours,
		Active:                true,
		CreatedBy:             tx.caller,
		CreatedAt:             now,
		UpdatedAt:             now,
	}
	if err := tx.txn.Create(key, product); err != nil {
		return err
	}
	if err := tx.commit("CreateProduct"); err != nil {
		return err
	}
	logger.Infof("Product %d created by '%s': threshold %d min, coverage %d, rate %d bps, claim window %d h",
		id, tx.caller, delayThresholdMinutes, coverageAmount, premiumRateBps, claimWindowHours)
	return nil
}

// UpdateProduct overwrites a product's terms. The active flag is left alone.
func (s *FlightInsuranceContract) UpdateProduct(ctx contractapi.TransactionContextInterface, id uint64, delayThresholdMinutes uint32, coverageAmount uint64, premiumRateBps uint16, claimWindowHours uint32) error {
	tx, err := s.begin(ctx)
	if err != nil {
		return err
	}
	_, cfg, err := tx.loadConfig()
	if err != nil {
		return err
	}
	if err := requireNotPaused(cfg); err != nil {
		return err
	}
	if err := requireAdmin(cfg, tx.caller); err != nil {
		return err
	}
	key, product, err := tx.loadProduct(id)
	if err != nil {
		return err
	}
	now, err := tx.txn.Timestamp()
	if err != nil {
		return err
	}
	product.DelayThresholdMinutes = delayThresholdMinutes
	product.CoverageAmount = coverageAmount
	product.PremiumRateBps = premiumRateBps
	product.ClaimWindowHours = claimWindowHours
	product.UpdatedAt = now
	if err := tx.txn.Put(key, product); err != nil {
		return err
	}
	if err := tx.commit("UpdateProduct"); err != nil {
		return err
	}
	logger.Infof("Product %d updated by admin '%s'", id, tx.caller)
	return nil
}

// SetProductActive opens or closes a product for new purchases.
func (s *FlightInsuranceContract) SetProductActive(ctx contractapi.TransactionContextInterface, id uint64, active bool) error {
	tx, err := s.begin(ctx)
	if err != nil {
		return err
	}
	_, cfg, err := tx.loadConfig()
	if err != nil {
		return err
	}
	if err := requireNotPaused(cfg); err != nil {
		return err
	}
	if err := requireAdmin(cfg, tx.caller); err != nil {
		return err
	}
	key, product, err := tx.loadProduct(id)
	if err != nil {
		return err
	}
	if product.Active == active {
		logger.Infof("Product %d already has active=%t. No action needed.", id, active)
		return nil
	}
	now, err := tx.txn.Timestamp()
	if err != nil {
		return err
	}
	product.Active = active
	product.UpdatedAt = now
	if err := tx.txn.Put(key, product); err != nil {
		return err
	}
	if err := tx.commit("SetProductActive"); err != nil {
		return err
	}
	logger.Infof("Product %d set active=%t by admin '%s'", id, active, tx.caller)
	return nil
}
