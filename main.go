package main

import (
	"flightcover/config"
	"flightcover/contract"
	"flightcover/services"

	"github.com/hyperledger/fabric-chaincode-go/shim"
	"github.com/hyperledger/fabric-contract-api-go/contractapi"
	"github.com/hyperledger/fabric/common/flogging"
)

var logger = flogging.MustGetLogger("flightcover")

func main() {
	cfg, err := config.FromEnv()
	if err != nil {
		panic("Error reading configuration: " + err.Error())
	}
	flogging.ActivateSpec(cfg.LogSpec)

	factory, err := services.NewFactory(cfg.Services)
	if err != nil {
		panic("Error configuring services backend: " + err.Error())
	}
	if cfg.DevFunding {
		logger.Warning("Dev funding is enabled; DevFundAccount can mint settlement asset")
	}

	cc, err := contractapi.NewChaincode(contract.New(factory, cfg.DevFunding))
	if err != nil {
		panic("Error creating FlightInsuranceContract: " + err.Error())
	}

	if !cfg.External() {
		if err := cc.Start(); err != nil {
			panic("Error starting chaincode: " + err.Error())
		}
		return
	}

	logger.Infof("Serving chaincode '%s' as an external service on %s", cfg.CCID, cfg.Address)
	server := &shim.ChaincodeServer{
		CCID:     cfg.CCID,
		Address:  cfg.Address,
		CC:       cc,
		TLSProps: shim.TLSProperties{Disabled: cfg.TLSDisabled},
	}
	if err := server.Start(); err != nil {
		panic("Error starting chaincode server: " + err.Error())
	}
}
