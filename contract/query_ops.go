package contract

import (
	"encoding/json"
	"fmt"
	"strconv"

	"flightcover/ledger"
	"flightcover/model"

	"github.com/hyperledger/fabric-contract-api-go/contractapi"
)

// --- Query Functions ---
// Queries are read-only and available while paused.

func (s *FlightInsuranceContract) GetConfig(ctx contractapi.TransactionContextInterface) (*model.ProtocolConfig, error) {
	tx, err := s.begin(ctx)
	if err != nil {
		return nil, err
	}
	_, cfg, err := tx.loadConfig()
	return cfg, err
}

func (s *FlightInsuranceContract) GetProduct(ctx contractapi.TransactionContextInterface, id uint64) (*model.Product, error) {
	logger.Debugf("GetProduct: Querying product %d", id)
	tx, err := s.begin(ctx)
	if err != nil {
		return nil, err
	}
	_, product, err := tx.loadProduct(id)
	return product, err
}

// ListProducts returns every product in id order.
func (s *FlightInsuranceContract) ListProducts(ctx contractapi.TransactionContextInterface) ([]*model.Product, error) {
	iterator, err := ctx.GetStub().GetStateByPartialCompositeKey(productObjectType, []string{})
	if err != nil {
		return nil, fmt.Errorf("ListProducts: failed to get products iterator: %w", err)
	}
	defer iterator.Close()

	products := []*model.Product{}
	for iterator.HasNext() {
		queryResponse, err := iterator.Next()
		if err != nil {
			logger.Warningf("ListProducts: Error getting next item from iterator: %v. Skipping.", err)
			continue
		}
		var p model.Product
		if err := json.Unmarshal(queryResponse.Value, &p); err != nil {
			logger.Warningf("ListProducts: Error unmarshalling product (key: %s): %v. Skipping.", ledger.PrintableKey(queryResponse.Key), err)
			continue
		}
		products = append(products, &p)
	}
	return products, nil
}

func (s *FlightInsuranceContract) GetPolicy(ctx contractapi.TransactionContextInterface, id uint64) (*model.Policy, error) {
	logger.Debugf("GetPolicy: Querying policy %d", id)
	tx, err := s.begin(ctx)
	if err != nil {
		return nil, err
	}
	_, policy, err := tx.loadPolicy(id)
	return policy, err
}

// ListPoliciesByHolder returns the policies bought by an identity or alias.
func (s *FlightInsuranceContract) ListPoliciesByHolder(ctx contractapi.TransactionContextInterface, identityOrAlias string) ([]*model.Policy, error) {
	tx, err := s.begin(ctx)
	if err != nil {
		return nil, err
	}
	holder, err := tx.im.ResolveIdentity(identityOrAlias)
	if err != nil {
		return nil, err
	}
	stub := ctx.GetStub()
	iterator, err := stub.GetStateByPartialCompositeKey(holderPolicyIndex, []string{holder})
	if err != nil {
		return nil, fmt.Errorf("ListPoliciesByHolder: failed to get index iterator for '%s': %w", holder, err)
	}
	defer iterator.Close()

	policies := []*model.Policy{}
	for iterator.HasNext() {
		queryResponse, err := iterator.Next()
		if err != nil {
			logger.Warningf("ListPoliciesByHolder: Error getting next index entry: %v. Skipping.", err)
			continue
		}
		_, attrs, err := stub.SplitCompositeKey(queryResponse.Key)
		if err != nil || len(attrs) != 2 {
			logger.Warningf("ListPoliciesByHolder: Malformed index key '%s'. Skipping.", ledger.PrintableKey(queryResponse.Key))
			continue
		}
		id, err := strconv.ParseUint(attrs[1], 10, 64)
		if err != nil {
			logger.Warningf("ListPoliciesByHolder: Bad policy id '%s' in index. Skipping.", attrs[1])
			continue
		}
		_, policy, err := tx.loadPolicy(id)
		if err != nil {
			logger.Warningf("ListPoliciesByHolder: Indexed policy %d could not be loaded: %v. Skipping.", id, err)
			continue
		}
		policies = append(policies, policy)
	}
	return policies, nil
}

func (s *FlightInsuranceContract) GetLiquidityProvider(ctx contractapi.TransactionContextInterface, identityOrAlias string) (*model.LiquidityProviderAccount, error) {
	tx, err := s.begin(ctx)
	if err != nil {
		return nil, err
	}
	provider, err := tx.im.ResolveIdentity(identityOrAlias)
	if err != nil {
		return nil, err
	}
	_, lp, err := tx.loadLiquidityProvider(provider)
	return lp, err
}

// GetPoolBalance reports the risk pool's custodial balance.
func (s *FlightInsuranceContract) GetPoolBalance(ctx contractapi.TransactionContextInterface) (*model.PoolBalance, error) {
	tx, err := s.begin(ctx)
	if err != nil {
		return nil, err
	}
	_, cfg, err := tx.loadConfig()
	if err != nil {
		return nil, err
	}
	pool := ledger.PoolAccount()
	balance, err := tx.svc.Balance(cfg.SettlementAsset, pool)
	if err != nil {
		return nil, err
	}
	return &model.PoolBalance{Account: pool, Asset: cfg.SettlementAsset, Balance: balance}, nil
}

func (s *FlightInsuranceContract) GetAlias(ctx contractapi.TransactionContextInterface, alias string) (*model.Alias, error) {
	tx, err := s.begin(ctx)
	if err != nil {
		return nil, err
	}
	return tx.im.GetAlias(alias)
}

// GetCallerIdentity describes the invoker, including its alias when registered.
func (s *FlightInsuranceContract) GetCallerIdentity(ctx contractapi.TransactionContextInterface) (*model.CallerIdentity, error) {
	tx, err := s.begin(ctx)
	if err != nil {
		return nil, err
	}
	mspID, err := tx.im.GetCurrentMSPID()
	if err != nil {
		return nil, err
	}
	alias, err := tx.im.AliasOf(tx.caller)
	if err != nil {
		return nil, err
	}
	return &model.CallerIdentity{Identity: tx.caller, MSPID: mspID, Alias: alias}, nil
}
