package contract

import "flightcover/errcode"

func (s *ContractSuite) requireProviderInvariant(provider string) {
	lp, err := s.contract.GetLiquidityProvider(s.as(adminID), provider)
	s.Require().NoError(err)
	s.Equal(lp.TotalDeposited-lp.TotalWithdrawn, lp.ActiveDeposit)
}

func (s *ContractSuite) TestDepositWithdrawInvariant() {
	s.initialize()
	s.fund(aliceID, 10_000)

	steps := []struct {
		deposit  bool
		amount   uint64
		wantCode errcode.Code
	}{
		{deposit: true, amount: 3_000},
		{deposit: true, amount: 2_000},
		{deposit: false, amount: 1_500},
		{deposit: false, amount: 4_000, wantCode: errcode.InvalidAmount},
		{deposit: false, amount: 3_500},
		{deposit: false, amount: 1, wantCode: errcode.InvalidAmount},
		{deposit: true, amount: 0, wantCode: errcode.InvalidAmount},
		{deposit: false, amount: 0, wantCode: errcode.InvalidAmount},
		{deposit: true, amount: 500},
	}
	for i, step := range steps {
		var err error
		if step.deposit {
			err = s.contract.DepositLiquidity(s.as(aliceID), step.amount)
		} else {
			err = s.contract.WithdrawLiquidity(s.as(adminID), aliceID, step.amount)
		}
		if step.wantCode != "" {
			s.Truef(errcode.Has(err, step.wantCode), "step %d: want %s, got %v", i, step.wantCode, err)
		} else {
			s.Require().NoErrorf(err, "step %d", i)
		}
		s.requireProviderInvariant(aliceID)
	}

	lp, err := s.contract.GetLiquidityProvider(s.as(aliceID), aliceID)
	s.Require().NoError(err)
	s.Equal(uint64(5_500), lp.TotalDeposited)
	s.Equal(uint64(5_000), lp.TotalWithdrawn)
	s.Equal(uint64(500), lp.ActiveDeposit)
	s.Equal(uint64(500), s.poolBalance())
	s.Equal(uint64(9_500), s.balance(aliceID))
}

func (s *ContractSuite) TestDepositRequiresFunds() {
	s.initialize()
	s.fund(aliceID, 100)
	before := s.snapshot()

	s.requireCode(s.contract.DepositLiquidity(s.as(aliceID), 101), errcode.InsufficientFunds)
	s.Equal(before, s.snapshot())
	_, err := s.contract.GetLiquidityProvider(s.as(aliceID), aliceID)
	s.requireCode(err, errcode.RecordNotFound)
}

func (s *ContractSuite) TestWithdrawUnknownProvider() {
	s.initialize()
	s.requireCode(s.contract.WithdrawLiquidity(s.as(adminID), bobID, 1), errcode.RecordNotFound)
	s.requireCode(s.contract.WithdrawLiquidity(s.as(adminID), "nobody", 1), errcode.RecordNotFound)
}

func (s *ContractSuite) TestWithdrawByAlias() {
	s.initialize()
	s.fund(aliceID, 1_000)
	s.Require().NoError(s.contract.DepositLiquidity(s.as(aliceID), 800))
	s.Require().NoError(s.contract.RegisterAlias(s.as(adminID), "alice", aliceID))

	s.Require().NoError(s.contract.WithdrawLiquidity(s.as(adminID), "alice", 300))
	s.Equal(uint64(500), s.balance(aliceID))
	s.Equal(uint64(500), s.poolBalance())
	s.requireProviderInvariant("alice")
}

func (s *ContractSuite) TestWithdrawCannotDrainPoolHeldForPolicies() {
	s.initialize()
	s.standardProduct()
	s.fund(aliceID, 10_000)
	s.fund(bobID, 10_000)
	s.Require().NoError(s.contract.DepositLiquidity(s.as(aliceID), 1_000))
	_, err := s.purchase(bobID, 1, 5_000)
	s.Require().NoError(err)

	s.requireCode(s.contract.WithdrawLiquidity(s.as(adminID), aliceID, 1_001), errcode.InvalidAmount)
	s.Equal(uint64(6_000), s.poolBalance())
}
