package contract

import (
	"flightcover/ledger"
	"flightcover/model"

	"github.com/hyperledger/fabric-contract-api-go/contractapi"
)

// DepositLiquidity moves amount from the caller into the risk pool and credits
// the caller's provider account, creating it on first deposit.
func (s *FlightInsuranceContract) DepositLiquidity(ctx contractapi.TransactionContextInterface, amount uint64) error {
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
	if err := requirePositive(amount); err != nil {
		return err
	}

	key, err := liquidityProviderKey(tx.txn, tx.caller)
	if err != nil {
		return err
	}
	lp := &model.LiquidityProviderAccount{ObjectType: liquidityProviderObjectType, Provider: tx.caller}
	exists, err := tx.txn.Exists(key)
	if err != nil {
		return err
	}
	if exists {
		if err := tx.txn.Get(key, lp); err != nil {
			return err
		}
	}
	if lp.TotalDeposited, err = addChecked(lp.TotalDeposited, amount, "total deposited"); err != nil {
		return err
	}
	if lp.ActiveDeposit, err = addChecked(lp.ActiveDeposit, amount, "active deposit"); err != nil {
		return err
	}

	if err := tx.transfer(cfg.SettlementAsset, tx.caller, ledger.PoolAccount(), amount); err != nil {
		return err
	}
	if err := tx.txn.Put(key, lp); err != nil {
		return err
	}
	if err := tx.commit("DepositLiquidity"); err != nil {
		return err
	}
	logger.Infof("Provider '%s' deposited %d %s (active deposit %d)", tx.caller, amount, cfg.SettlementAsset, lp.ActiveDeposit)
	return nil
}

// WithdrawLiquidity returns amount from the pool to provider, an identity or
// alias. Withdrawals are made by the admin on the provider's behalf.
func (s *FlightInsuranceContract) WithdrawLiquidity(ctx contractapi.TransactionContextInterface, provider string, amount uint64) error {
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
	if err := requirePositive(amount); err != nil {
		return err
	}
	target, err := tx.im.ResolveIdentity(provider)
	if err != nil {
		return err
	}
	key, lp, err := tx.loadLiquidityProvider(target)
	if err != nil {
		return err
	}
	if err := requireWithinDeposit(lp, amount); err != nil {
		return err
	}
	if err := requireAdmin(cfg, tx.caller); err != nil {
		return err
	}

	if err := tx.transfer(cfg.SettlementAsset, ledger.PoolAccount(), target, amount); err != nil {
		return err
	}
	if lp.TotalWithdrawn, err = addChecked(lp.TotalWithdrawn, amount, "total withdrawn"); err != nil {
		return err
	}
	lp.ActiveDeposit -= amount
	if err := tx.txn.Put(key, lp); err != nil {
		return err
	}
	if err := tx.commit("WithdrawLiquidity"); err != nil {
		return err
	}
	logger.Infof("Admin '%s' withdrew %d %s for provider '%s' (active deposit %d)", tx.caller, amount, cfg.SettlementAsset, target, lp.ActiveDeposit)
	return nil
}
