package contract

import (
	"fmt"

	"flightcover/errcode"
	"flightcover/ledger"
	"flightcover/model"
	"flightcover/services"

	"github.com/hyperledger/fabric-contract-api-go/contractapi"
	"github.com/hyperledger/fabric/common/flogging"
)

var logger = flogging.MustGetLogger("flightcover.contract")

// Object types used for composite keys and as the records' objectType field.
const (
	configObjectType            = "Config"
	productObjectType           = "Product"
	policyObjectType            = "Policy"
	liquidityProviderObjectType = "LiquidityProvider"
	holderPolicyIndex           = "PolicyHolder~Policy"
)

const configSingleton = "singleton"

// Input limits and proof token constants
const (
	maxStringInputLength  = 256
	maxFlightNumberLength = 20
	maxMetadataURILength  = 200
	maxMetadataNameLength = 32
	maxAliasLength        = 64
	proofTokenSymbol      = "FCOVER"
	proofTokenNamePrefix  = "FlightCover Policy"
)

// PolicyPurchasedEvent is the chaincode event set by PurchasePolicy.
const PolicyPurchasedEvent = "PolicyPurchased"

// FlightInsuranceContract runs the flight-delay insurance protocol: products,
// the liquidity pool, policy issuance and payouts.
// @contract:FlightInsuranceContract
type FlightInsuranceContract struct {
	contractapi.Contract
	services   services.Factory
	devFunding bool
}

// New builds the contract over the given services backend. devFunding enables
// DevFundAccount.
func New(factory services.Factory, devFunding bool) *FlightInsuranceContract {
	return &FlightInsuranceContract{services: factory, devFunding: devFunding}
}

// session holds the per-transaction state every operation starts from.
type session struct {
	ctx    contractapi.TransactionContextInterface
	txn    *ledger.Txn
	svc    services.Services
	im     *IdentityManager
	caller string
}

func (s *FlightInsuranceContract) begin(ctx contractapi.TransactionContextInterface) (*session, error) {
	txn := ledger.Begin(ctx.GetStub())
	im := NewIdentityManager(ctx, txn)
	caller, err := im.GetCurrentIdentityFullID()
	if err != nil {
		return nil, err
	}
	factory := s.services
	if factory == nil {
		factory = func(txn *ledger.Txn) services.Services { return services.NewEmbedded(txn) }
	}
	return &session{ctx: ctx, txn: txn, svc: factory(txn), im: im, caller: caller}, nil
}

func configKey(txn *ledger.Txn) (string, error) {
	return txn.Key(configObjectType, configSingleton)
}

// loadConfig reads the singleton Config record.
func (tx *session) loadConfig() (string, *model.ProtocolConfig, error) {
	key, err := configKey(tx.txn)
	if err != nil {
		return "", nil, err
	}
	exists, err := tx.txn.Exists(key)
	if err != nil {
		return "", nil, err
	}
	if !exists {
		return "", nil, errcode.New(errcode.RecordNotFound, "protocol has not been initialized")
	}
	var cfg model.ProtocolConfig
	if err := tx.txn.Get(key, &cfg); err != nil {
		return "", nil, err
	}
	return key, &cfg, nil
}

func productKey(txn *ledger.Txn, id uint64) (string, error) {
	return txn.Key(productObjectType, ledger.U64Key(id))
}

func policyKey(txn *ledger.Txn, id uint64) (string, error) {
	return txn.Key(policyObjectType, ledger.U64Key(id))
}

func liquidityProviderKey(txn *ledger.Txn, provider string) (string, error) {
	return txn.Key(liquidityProviderObjectType, provider)
}

func (tx *session) loadProduct(id uint64) (string, *model.Product, error) {
	key, err := productKey(tx.txn, id)
	if err != nil {
		return "", nil, err
	}
	var p model.Product
	if err := tx.txn.Get(key, &p); err != nil {
		return "", nil, err
	}
	return key, &p, nil
}

func (tx *session) loadPolicy(id uint64) (string, *model.Policy, error) {
	key, err := policyKey(tx.txn, id)
	if err != nil {
		return "", nil, err
	}
	var p model.Policy
	if err := tx.txn.Get(key, &p); err != nil {
		return "", nil, err
	}
	return key, &p, nil
}

func (tx *session) loadLiquidityProvider(provider string) (string, *model.LiquidityProviderAccount, error) {
	key, err := liquidityProviderKey(tx.txn, provider)
	if err != nil {
		return "", nil, err
	}
	var lp model.LiquidityProviderAccount
	if err := tx.txn.Get(key, &lp); err != nil {
		return "", nil, err
	}
	return key, &lp, nil
}

// commit flushes the session's writes. op prefixes infrastructure errors.
func (tx *session) commit(op string) error {
	if err := tx.txn.Commit(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// transfer moves settlement asset through the services backend. Zero amounts
// are a no-op.
func (tx *session) transfer(asset, from, to string, amount uint64) error {
	if amount == 0 {
		logger.Debugf("Skipping zero transfer of %s from '%s' to '%s'", asset, from, to)
		return nil
	}
	return tx.svc.Transfer(asset, from, to, amount)
}
