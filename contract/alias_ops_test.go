package contract

import "flightcover/errcode"

func (s *ContractSuite) TestRegisterAliasResolves() {
	s.initialize()
	s.Require().NoError(s.contract.RegisterAlias(s.as(adminID), "alice", aliceID))

	rec, err := s.contract.GetAlias(s.as(bobID), "alice")
	s.Require().NoError(err)
	s.Equal(aliceID, rec.Identity)
	s.Equal(adminID, rec.RegisteredBy)

	who, err := s.contract.GetCallerIdentity(s.as(aliceID))
	s.Require().NoError(err)
	s.Equal(aliceID, who.Identity)
	s.Equal("Org1MSP", who.MSPID)
	s.Equal("alice", who.Alias)
}

func (s *ContractSuite) TestRegisterAliasConflicts() {
	s.initialize()
	s.Require().NoError(s.contract.RegisterAlias(s.as(adminID), "alice", aliceID))
	s.Require().NoError(s.contract.RegisterAlias(s.as(adminID), "alice", aliceID), "same mapping is a no-op")
	s.requireCode(s.contract.RegisterAlias(s.as(adminID), "alice", bobID), errcode.RecordExists)
}

func (s *ContractSuite) TestRenamingIdentityDropsOldAlias() {
	s.initialize()
	s.Require().NoError(s.contract.RegisterAlias(s.as(adminID), "alice", aliceID))
	s.Require().NoError(s.contract.RegisterAlias(s.as(adminID), "ally", aliceID))

	_, err := s.contract.GetAlias(s.as(adminID), "alice")
	s.requireCode(err, errcode.RecordNotFound)
	who, err := s.contract.GetCallerIdentity(s.as(aliceID))
	s.Require().NoError(err)
	s.Equal("ally", who.Alias)

	s.Require().NoError(s.contract.RegisterAlias(s.as(adminID), "alice", bobID), "released alias can be reused")
}

func (s *ContractSuite) TestRegisterAliasValidation() {
	s.initialize()
	s.requireCode(s.contract.RegisterAlias(s.as(adminID), "", aliceID), errcode.InvalidArgument)
	s.requireCode(s.contract.RegisterAlias(s.as(adminID), "alice", "not-an-x509-id"), errcode.InvalidArgument)
	s.requireCode(s.contract.RegisterAlias(s.as(adminID), aliceID, bobID), errcode.InvalidArgument)
}

func (s *ContractSuite) TestCallerWithoutAlias() {
	who, err := s.contract.GetCallerIdentity(s.as(bobID))
	s.Require().NoError(err)
	s.Equal(bobID, who.Identity)
	s.Empty(who.Alias)
}
