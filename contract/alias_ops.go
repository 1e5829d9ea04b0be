package contract

import (
	"github.com/hyperledger/fabric-contract-api-go/contractapi"
)

// RegisterAlias lets the admin name an identity. Admin only, gated by pause.
func (s *FlightInsuranceContract) RegisterAlias(ctx contractapi.TransactionContextInterface, alias, identity string) error {
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
	now, err := tx.txn.Timestamp()
	if err != nil {
		return err
	}
	rec, err := tx.im.RegisterAlias(alias, identity, tx.caller, now)
	if err != nil {
		return err
	}
	if err := tx.commit("RegisterAlias"); err != nil {
		return err
	}
	logger.Infof("Alias '%s' -> '%s' registered by admin '%s'", rec.Alias, rec.Identity, tx.caller)
	return nil
}
