package contract

import "flightcover/errcode"

func (s *ContractSuite) TestCreateProduct() {
	s.initialize()
	s.standardProduct()

	p, err := s.contract.GetProduct(s.as(aliceID), 1)
	s.Require().NoError(err)
	s.Equal(uint32(120), p.DelayThresholdMinutes)
	s.Equal(uint64(100_000), p.CoverageAmount)
	s.Equal(uint16(500), p.PremiumRateBps)
	s.Equal(uint32(48), p.ClaimWindowHours)
	s.True(p.Active)
	s.Equal(adminID, p.CreatedBy)

	s.requireCode(s.contract.CreateProduct(s.as(adminID), 1, 1, 1, 1, 1), errcode.RecordExists)
}

func (s *ContractSuite) TestCreateProductIsOpenToNonAdmins() {
	s.initialize()
	s.Require().NoError(s.contract.CreateProduct(s.as(bobID), 9, 30, 500, 1_000, 12))
	p, err := s.contract.GetProduct(s.as(bobID), 9)
	s.Require().NoError(err)
	s.Equal(bobID, p.CreatedBy)
}

func (s *ContractSuite) TestUpdateProductKeepsActiveFlag() {
	s.initialize()
	s.standardProduct()
	s.Require().NoError(s.contract.SetProductActive(s.as(adminID), 1, false))

	s.Require().NoError(s.contract.UpdateProduct(s.as(adminID), 1, 90, 50_000, 250, 72))
	p, err := s.contract.GetProduct(s.as(adminID), 1)
	s.Require().NoError(err)
	s.Equal(uint32(90), p.DelayThresholdMinutes)
	s.Equal(uint64(50_000), p.CoverageAmount)
	s.Equal(uint16(250), p.PremiumRateBps)
	s.Equal(uint32(72), p.ClaimWindowHours)
	s.False(p.Active)

	s.requireCode(s.contract.UpdateProduct(s.as(adminID), 2, 90, 50_000, 250, 72), errcode.RecordNotFound)
}

func (s *ContractSuite) TestListProductsInIDOrder() {
	s.initialize()
	for _, id := range []uint64{10, 2, 33} {
		s.Require().NoError(s.contract.CreateProduct(s.as(adminID), id, 60, 1_000, 100, 24))
	}
	products, err := s.contract.ListProducts(s.as(aliceID))
	s.Require().NoError(err)
	s.Require().Len(products, 3)
	s.Equal([]uint64{2, 10, 33}, []uint64{products[0].ID, products[1].ID, products[2].ID})
}

func (s *ContractSuite) TestListProductsEmpty() {
	products, err := s.contract.ListProducts(s.as(aliceID))
	s.Require().NoError(err)
	s.NotNil(products)
	s.Empty(products)
}
