package contract

import (
	"strings"

	"flightcover/errcode"
	"flightcover/ledger"
	"flightcover/model"
	"flightcover/services"

	"github.com/hyperledger/fabric-contract-api-go/contractapi"
)

// Initialize creates the protocol Config. The first caller wins; an empty
// admin makes the caller the admin.
func (s *FlightInsuranceContract) Initialize(ctx contractapi.TransactionContextInterface, admin, settlementAsset, oracleService string) error {
	tx, err := s.begin(ctx)
	if err != nil {
		return err
	}
	key, err := configKey(tx.txn)
	if err != nil {
		return err
	}
	exists, err := tx.txn.Exists(key)
	if err != nil {
		return err
	}
	if exists {
		return errcode.New(errcode.AlreadyInitialized, "protocol is already initialized")
	}

	admin = strings.TrimSpace(admin)
	if admin == "" {
		admin = tx.caller
	}
	if err := validateRequiredString(admin, "admin", maxStringInputLength); err != nil {
		return err
	}
	if err := validateRequiredString(settlementAsset, "settlementAsset", maxStringInputLength); err != nil {
		return err
	}
	if err := validateOptionalString(oracleService, "oracleService", maxStringInputLength); err != nil {
		return err
	}

	now, err := tx.txn.Timestamp()
	if err != nil {
		return err
	}
	cfg := &model.ProtocolConfig{
		ObjectType:      configObjectType,
		Admin:           admin,
		SettlementAsset: strings.TrimSpace(settlementAsset),
		OracleService:   strings.TrimSpace(oracleService),
		Paused:          false,
		InitializedBy:   tx.caller,
		InitializedAt:   now,
	}
	if err := tx.txn.Create(key, cfg); err != nil {
		return err
	}
	if err := tx.commit("Initialize"); err != nil {
		return err
	}
	logger.Infof("Protocol initialized by '%s': admin '%s', settlement asset '%s', oracle '%s'", tx.caller, cfg.Admin, cfg.SettlementAsset, cfg.OracleService)
	return nil
}

// SetPauseStatus pauses or resumes every gated operation. Admin only, allowed
// while paused.
func (s *FlightInsuranceContract) SetPauseStatus(ctx contractapi.TransactionContextInterface, paused bool) error {
	tx, err := s.begin(ctx)
	if err != nil {
		return err
	}
	key, cfg, err := tx.loadConfig()
	if err != nil {
		return err
	}
	if err := requireAdmin(cfg, tx.caller); err != nil {
		return err
	}
	cfg.Paused = paused
	if err := tx.txn.Put(key, cfg); err != nil {
		return err
	}
	if err := tx.commit("SetPauseStatus"); err != nil {
		return err
	}
	logger.Infof("Admin '%s' set paused=%t", tx.caller, paused)
	return nil
}

// CloseConfig returns the residual pool balance to the admin and removes the
// Config record. Irreversible.
func (s *FlightInsuranceContract) CloseConfig(ctx contractapi.TransactionContextInterface) error {
	tx, err := s.begin(ctx)
	if err != nil {
		return err
	}
	key, cfg, err := tx.loadConfig()
	if err != nil {
		return err
	}
	if err := requireAdmin(cfg, tx.caller); err != nil {
		return err
	}

	residual, err := tx.svc.Balance(cfg.SettlementAsset, ledger.PoolAccount())
	if err != nil {
		return err
	}
	if residual > 0 {
		if err := tx.transfer(cfg.SettlementAsset, ledger.PoolAccount(), tx.caller, residual); err != nil {
			return err
		}
	}
	if err := tx.txn.Delete(key); err != nil {
		return err
	}
	if err := tx.commit("CloseConfig"); err != nil {
		return err
	}
	logger.Infof("Admin '%s' closed the protocol config, returning %d %s", tx.caller, residual, cfg.SettlementAsset)
	return nil
}

// DevFundAccount credits settlement asset to owner on the embedded backend.
// Only available when the chaincode runs with dev funding enabled.
func (s *FlightInsuranceContract) DevFundAccount(ctx contractapi.TransactionContextInterface, owner string, amount uint64) (uint64, error) {
	if !s.devFunding {
		return 0, errcode.New(errcode.Unauthorized, "dev funding is disabled")
	}
	tx, err := s.begin(ctx)
	if err != nil {
		return 0, err
	}
	_, cfg, err := tx.loadConfig()
	if err != nil {
		return 0, err
	}
	if err := requireNotPaused(cfg); err != nil {
		return 0, err
	}
	if err := requireAdmin(cfg, tx.caller); err != nil {
		return 0, err
	}
	if err := requirePositive(amount); err != nil {
		return 0, err
	}
	embedded, ok := tx.svc.(*services.Embedded)
	if !ok {
		return 0, errcode.New(errcode.InvalidArgument, "dev funding requires the %s services backend", services.BackendEmbedded)
	}
	target, err := tx.im.ResolveIdentity(owner)
	if err != nil {
		return 0, err
	}
	balance, err := embedded.Credit(cfg.SettlementAsset, target, amount)
	if err != nil {
		return 0, err
	}
	if err := tx.commit("DevFundAccount"); err != nil {
		return 0, err
	}
	logger.Infof("Admin '%s' credited %d %s to '%s'", tx.caller, amount, cfg.SettlementAsset, target)
	return balance, nil
}
