// Package config reads the chaincode's runtime settings from the environment.
package config

import (
	"errors"
	"io/fs"
	"os"
	"strconv"

	"flightcover/services"

	"github.com/hyperledger/fabric/common/flogging"
	"github.com/joho/godotenv"
)

var logger = flogging.MustGetLogger("flightcover.config")

// DefaultLogSpec is used when FLIGHTCOVER_LOG_SPEC is unset.
const DefaultLogSpec = "info"

// Config holds everything main needs to start the chaincode.
type Config struct {
	// CCID and Address are set when the chaincode runs as an external service.
	CCID        string
	Address     string
	TLSDisabled bool

	LogSpec  string
	Services services.Options

	// DevFunding enables DevFundAccount on the embedded backend.
	DevFunding bool
}

// External reports whether the chaincode should serve as an external service
// instead of dialling the peer.
func (c Config) External() bool {
	return c.Address != ""
}

// FromEnv loads an optional .env file and builds a Config from the environment.
// Variables already set in the environment take precedence over the file.
func FromEnv() (Config, error) {
	if err := godotenv.Load(); err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return Config{}, err
		}
		logger.Debugf("No .env file found, using process environment only")
	}

	tlsDisabled, err := getBool("CHAINCODE_TLS_DISABLED", true)
	if err != nil {
		return Config{}, err
	}
	devFunding, err := getBool("FLIGHTCOVER_DEV_FUNDING", false)
	if err != nil {
		return Config{}, err
	}

	return Config{
		CCID:        os.Getenv("CHAINCODE_ID"),
		Address:     os.Getenv("CHAINCODE_SERVER_ADDRESS"),
		TLSDisabled: tlsDisabled,
		LogSpec:     getEnvOrDefault("FLIGHTCOVER_LOG_SPEC", DefaultLogSpec),
		Services: services.Options{
			Backend:           getEnvOrDefault("FLIGHTCOVER_SERVICES_BACKEND", services.BackendEmbedded),
			Channel:           os.Getenv("FLIGHTCOVER_CHANNEL"),
			AssetChaincode:    os.Getenv("FLIGHTCOVER_ASSET_CHAINCODE"),
			TokenChaincode:    os.Getenv("FLIGHTCOVER_TOKEN_CHAINCODE"),
			MetadataChaincode: os.Getenv("FLIGHTCOVER_METADATA_CHAINCODE"),
		},
		DevFunding: devFunding,
	}, nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getBool(key string, defaultValue bool) (bool, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		return false, errors.New(key + " must be a boolean, got '" + value + "'")
	}
	return b, nil
}
