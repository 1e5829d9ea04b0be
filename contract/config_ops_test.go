package contract

import (
	"flightcover/errcode"
	"flightcover/ledger"
)

func (s *ContractSuite) TestInitializeCreatesConfigOnce() {
	s.initialize()

	cfg, err := s.contract.GetConfig(s.as(bobID))
	s.Require().NoError(err)
	s.Equal(adminID, cfg.Admin)
	s.Equal(usdc, cfg.SettlementAsset)
	s.Equal(oracle, cfg.OracleService)
	s.False(cfg.Paused)
	s.True(s.now.Equal(cfg.InitializedAt))

	err = s.contract.Initialize(s.as(bobID), bobID, "other", "")
	s.requireCode(err, errcode.AlreadyInitialized)
}

func (s *ContractSuite) TestInitializeDefaultsAdminToCaller() {
	s.Require().NoError(s.contract.Initialize(s.as(aliceID), "", usdc, ""))
	cfg, err := s.contract.GetConfig(s.as(aliceID))
	s.Require().NoError(err)
	s.Equal(aliceID, cfg.Admin)
}

func (s *ContractSuite) TestInitializeRequiresSettlementAsset() {
	s.requireCode(s.contract.Initialize(s.as(adminID), adminID, " ", ""), errcode.InvalidArgument)
	s.Empty(s.stub.State)
}

func (s *ContractSuite) TestOperationsBeforeInitialize() {
	s.requireCode(s.contract.CreateProduct(s.as(adminID), 1, 120, 100_000, 500, 48), errcode.RecordNotFound)
	_, err := s.contract.GetConfig(s.as(adminID))
	s.requireCode(err, errcode.RecordNotFound)
}

func (s *ContractSuite) TestPauseGatesMutations() {
	s.initialize()
	s.standardProduct()
	s.fund(aliceID, 50_000)
	s.Require().NoError(s.contract.DepositLiquidity(s.as(aliceID), 20_000))
	_, err := s.purchase(aliceID, 7, 5_000)
	s.Require().NoError(err)

	s.Require().NoError(s.contract.SetPauseStatus(s.as(adminID), true))
	before := s.snapshot()

	_, purchaseErr := s.purchase(aliceID, 8, 5_000)
	_, fundErr := s.contract.DevFundAccount(s.as(adminID), aliceID, 1)
	gated := map[string]error{
		"CreateProduct":     s.contract.CreateProduct(s.as(adminID), 2, 60, 1_000, 100, 24),
		"UpdateProduct":     s.contract.UpdateProduct(s.as(adminID), 1, 60, 1_000, 100, 24),
		"SetProductActive":  s.contract.SetProductActive(s.as(adminID), 1, false),
		"DepositLiquidity":  s.contract.DepositLiquidity(s.as(aliceID), 1),
		"WithdrawLiquidity": s.contract.WithdrawLiquidity(s.as(adminID), aliceID, 1),
		"PurchasePolicy":    purchaseErr,
		"ProcessPayout":     s.contract.ProcessPayout(s.as(adminID), 7, 500),
		"RegisterAlias":     s.contract.RegisterAlias(s.as(adminID), "alice", aliceID),
		"DevFundAccount":    fundErr,
	}
	for op, err := range gated {
		s.Truef(errcode.Has(err, errcode.ProtocolPaused), "%s: want ProtocolPaused, got %v", op, err)
	}
	s.Equal(before, s.snapshot(), "paused operations must not change state")

	p, err := s.contract.GetProduct(s.as(bobID), 1)
	s.Require().NoError(err, "queries stay available while paused")
	s.True(p.Active)

	s.Require().NoError(s.contract.SetPauseStatus(s.as(adminID), false))
	s.Require().NoError(s.contract.DepositLiquidity(s.as(aliceID), 1))
}

func (s *ContractSuite) TestUnauthorizedAdminActions() {
	s.initialize()
	s.standardProduct()
	s.fund(aliceID, 50_000)
	s.Require().NoError(s.contract.DepositLiquidity(s.as(aliceID), 20_000))
	_, err := s.purchase(aliceID, 7, 5_000)
	s.Require().NoError(err)
	before := s.snapshot()

	_, fundErr := s.contract.DevFundAccount(s.as(bobID), bobID, 1)
	denied := map[string]error{
		"UpdateProduct":     s.contract.UpdateProduct(s.as(bobID), 1, 1, 1, 1, 1),
		"SetProductActive":  s.contract.SetProductActive(s.as(bobID), 1, false),
		"WithdrawLiquidity": s.contract.WithdrawLiquidity(s.as(bobID), aliceID, 1_000),
		"SetPauseStatus":    s.contract.SetPauseStatus(s.as(bobID), true),
		"CloseConfig":       s.contract.CloseConfig(s.as(bobID)),
		"ProcessPayout":     s.contract.ProcessPayout(s.as(bobID), 7, 500),
		"RegisterAlias":     s.contract.RegisterAlias(s.as(bobID), "bob", bobID),
		"DevFundAccount":    fundErr,
	}
	for op, err := range denied {
		s.Truef(errcode.Has(err, errcode.Unauthorized), "%s: want Unauthorized, got %v", op, err)
	}
	s.Equal(before, s.snapshot())
}

func (s *ContractSuite) TestPauseToggleAllowedWhilePaused() {
	s.initialize()
	s.Require().NoError(s.contract.SetPauseStatus(s.as(adminID), true))
	s.Require().NoError(s.contract.SetPauseStatus(s.as(adminID), true))
	cfg, err := s.contract.GetConfig(s.as(adminID))
	s.Require().NoError(err)
	s.True(cfg.Paused)
}

func (s *ContractSuite) TestCloseConfigSweepsPoolToAdmin() {
	s.initialize()
	s.fund(aliceID, 10_000)
	s.Require().NoError(s.contract.DepositLiquidity(s.as(aliceID), 4_000))
	s.Require().NoError(s.contract.SetPauseStatus(s.as(adminID), true))

	s.Require().NoError(s.contract.CloseConfig(s.as(adminID)))
	s.Equal(uint64(4_000), s.balance(adminID))
	s.Zero(s.poolBalance())

	_, err := s.contract.GetConfig(s.as(adminID))
	s.requireCode(err, errcode.RecordNotFound)
	s.requireCode(s.contract.CloseConfig(s.as(adminID)), errcode.RecordNotFound)

	s.Require().NoError(s.contract.Initialize(s.as(bobID), "", usdc, ""), "a closed protocol can be initialized again")
}

func (s *ContractSuite) TestCloseConfigWithEmptyPool() {
	s.initialize()
	s.Require().NoError(s.contract.CloseConfig(s.as(adminID)))
	s.Zero(s.balance(adminID))
}

func (s *ContractSuite) TestDevFundAccountDisabled() {
	s.contract = New(nil, false)
	s.initialize()
	_, err := s.contract.DevFundAccount(s.as(adminID), aliceID, 1)
	s.requireCode(err, errcode.Unauthorized)
}

func (s *ContractSuite) TestDevFundAccountCreditsResolvedOwner() {
	s.initialize()
	s.Require().NoError(s.contract.RegisterAlias(s.as(adminID), "alice", aliceID))
	balance, err := s.contract.DevFundAccount(s.as(adminID), "alice", 250)
	s.Require().NoError(err)
	s.Equal(uint64(250), balance)
	s.Equal(uint64(250), s.balance(aliceID))

	_, err = s.contract.DevFundAccount(s.as(adminID), aliceID, 0)
	s.requireCode(err, errcode.InvalidAmount)
}

func (s *ContractSuite) TestGetPoolBalance() {
	s.initialize()
	s.fund(aliceID, 900)
	s.Require().NoError(s.contract.DepositLiquidity(s.as(aliceID), 300))

	pool, err := s.contract.GetPoolBalance(s.as(bobID))
	s.Require().NoError(err)
	s.Equal(ledger.PoolAccount(), pool.Account)
	s.Equal(usdc, pool.Asset)
	s.Equal(uint64(300), pool.Balance)
}
