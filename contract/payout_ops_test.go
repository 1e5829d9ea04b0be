package contract

import (
	"flightcover/errcode"
	"flightcover/model"
)

// insuredAlice leaves alice holding policy 1 against a pool funded by bob.
func (s *ContractSuite) insuredAlice() {
	s.initialize()
	s.standardProduct()
	s.fund(aliceID, 10_000)
	s.fund(bobID, 200_000)
	s.Require().NoError(s.contract.DepositLiquidity(s.as(bobID), 200_000))
	_, err := s.purchase(aliceID, 1, 5_000)
	s.Require().NoError(err)
}

func (s *ContractSuite) TestThresholdBoundary() {
	s.insuredAlice()
	before := s.snapshot()

	s.requireCode(s.contract.ProcessPayout(s.as(adminID), 1, 119), errcode.DelayThresholdNotMet)
	s.Equal(before, s.snapshot())

	s.Require().NoError(s.contract.ProcessPayout(s.as(adminID), 1, 120))
	p := s.policy(1)
	s.Equal(model.PolicyPaidOut, p.Status)
	s.Equal(s.now.Unix(), p.PaidAt)
}

func (s *ContractSuite) TestNoDoublePayout() {
	s.insuredAlice()
	s.Require().NoError(s.contract.ProcessPayout(s.as(adminID), 1, 240))
	s.Equal(uint64(5_000+100_000), s.balance(aliceID))
	s.Equal(uint64(205_000-100_000), s.poolBalance())
	before := s.snapshot()

	s.requireCode(s.contract.ProcessPayout(s.as(adminID), 1, 240), errcode.PolicyNotActive)
	s.Equal(before, s.snapshot())
	s.Equal(uint64(105_000), s.balance(aliceID))
}

func (s *ContractSuite) TestPayoutUsesLiveThreshold() {
	s.insuredAlice()
	s.Require().NoError(s.contract.UpdateProduct(s.as(adminID), 1, 30, 1, 500, 48))

	s.Require().NoError(s.contract.ProcessPayout(s.as(adminID), 1, 30))
	s.Equal(uint64(105_000), s.balance(aliceID), "coverage comes from the policy snapshot")
}

func (s *ContractSuite) TestPayoutNeedsPoolFunds() {
	s.initialize()
	s.standardProduct()
	s.fund(aliceID, 10_000)
	_, err := s.purchase(aliceID, 1, 5_000)
	s.Require().NoError(err)
	before := s.snapshot()

	s.requireCode(s.contract.ProcessPayout(s.as(adminID), 1, 600), errcode.InsufficientFunds)
	s.Equal(before, s.snapshot())
	s.Equal(model.PolicyActive, s.policy(1).Status)
}

func (s *ContractSuite) TestPayoutUnknownPolicy() {
	s.initialize()
	s.requireCode(s.contract.ProcessPayout(s.as(adminID), 99, 600), errcode.RecordNotFound)
}
