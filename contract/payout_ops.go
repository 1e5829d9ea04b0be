package contract

import (
	"flightcover/ledger"
	"flightcover/model"

	"github.com/hyperledger/fabric-contract-api-go/contractapi"
)

// ProcessPayout pays a policy's full coverage to its holder once the attested
// delay reaches the product threshold. A policy pays out at most once.
func (s *FlightInsuranceContract) ProcessPayout(ctx contractapi.TransactionContextInterface, policyID uint64, delayMinutes uint32) error {
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
	key, policy, err := tx.loadPolicy(policyID)
	if err != nil {
		return err
	}
	if err := requirePolicyActive(policy); err != nil {
		return err
	}
	_, product, err := tx.loadProduct(policy.ProductID)
	if err != nil {
		return err
	}
	if err := requireDelayThreshold(product, delayMinutes); err != nil {
		return err
	}
	if err := requireAdmin(cfg, tx.caller); err != nil {
		return err
	}

	if err := tx.transfer(cfg.SettlementAsset, ledger.PoolAccount(), policy.Policyholder, policy.CoverageAmount); err != nil {
		return err
	}
	now, err := tx.txn.Timestamp()
	if err != nil {
		return err
	}
	policy.Status = model.PolicyPaidOut
	policy.PaidAt = now.Unix()
	if err := tx.txn.Put(key, policy); err != nil {
		return err
	}
	if err := tx.commit("ProcessPayout"); err != nil {
		return err
	}
	logger.Infof("Policy %d paid out %d %s to '%s' for a %d minute delay", policyID, policy.CoverageAmount, cfg.SettlementAsset, policy.Policyholder, delayMinutes)
	return nil
}
