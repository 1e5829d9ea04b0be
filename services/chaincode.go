package services

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"flightcover/errcode"
	"flightcover/model"

	"github.com/hyperledger/fabric-chaincode-go/shim"
)

// ChaincodeNames locate the collaborating chaincodes.
type ChaincodeNames struct {
	Channel  string // Empty means the calling chaincode's channel
	Asset    string
	Token    string
	Metadata string
}

// Chaincode reaches collaborators through cross-chaincode invocation. On the
// same channel their writes join the calling transaction's write set.
type Chaincode struct {
	stub  shim.ChaincodeStubInterface
	names ChaincodeNames
}

// NewChaincode binds the collaborators to stub.
func NewChaincode(stub shim.ChaincodeStubInterface, names ChaincodeNames) *Chaincode {
	return &Chaincode{stub: stub, names: names}
}

func (c *Chaincode) invoke(chaincode, fn string, args ...string) ([]byte, error) {
	argv := make([][]byte, 0, len(args)+1)
	argv = append(argv, []byte(fn))
	for _, a := range args {
		argv = append(argv, []byte(a))
	}
	resp := c.stub.InvokeChaincode(chaincode, argv, c.names.Channel)
	if resp.Status >= shim.ERRORTHRESHOLD {
		logger.Warningf("Invocation %s.%s failed with status %d: %s", chaincode, fn, resp.Status, resp.Message)
		return nil, errcode.New(codeFor(resp.Message), "%s.%s: %s", chaincode, fn, resp.Message)
	}
	return resp.Payload, nil
}

// codeFor keeps a callee's protocol code when it reports one.
func codeFor(message string) errcode.Code {
	for _, c := range []errcode.Code{errcode.InsufficientFunds, errcode.Unauthorized, errcode.RecordExists, errcode.RecordNotFound, errcode.InvalidAmount} {
		if strings.HasPrefix(message, string(c)) {
			return c
		}
	}
	return errcode.InvalidArgument
}

func (c *Chaincode) Transfer(asset, from, to string, amount uint64) error {
	_, err := c.invoke(c.names.Asset, "Transfer", asset, from, to, strconv.FormatUint(amount, 10))
	return err
}

func (c *Chaincode) Balance(asset, owner string) (uint64, error) {
	payload, err := c.invoke(c.names.Asset, "BalanceOf", asset, owner)
	if err != nil {
		return 0, err
	}
	balance, err := strconv.ParseUint(string(payload), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("BalanceOf returned non-numeric payload '%s': %w", string(payload), err)
	}
	return balance, nil
}

func (c *Chaincode) MintAndFreeze(tokenID, owner, authority string) error {
	if _, err := c.invoke(c.names.Token, "Mint", tokenID, owner, authority, "1"); err != nil {
		return err
	}
	_, err := c.invoke(c.names.Token, "Freeze", tokenID, owner, authority)
	return err
}

func (c *Chaincode) MetadataAddresses(tokenID string) (model.MetadataAddresses, error) {
	var addrs model.MetadataAddresses
	payload, err := c.invoke(c.names.Metadata, "DeriveAddresses", tokenID)
	if err != nil {
		return addrs, err
	}
	if err := json.Unmarshal(payload, &addrs); err != nil {
		return addrs, fmt.Errorf("DeriveAddresses returned malformed payload: %w", err)
	}
	return addrs, nil
}

func (c *Chaincode) RegisterMetadata(meta model.ProofMetadata) error {
	b, err := json.Marshal(meta)
	if err != nil {
		return fmt.Errorf("failed to marshal metadata for token '%s': %w", meta.TokenID, err)
	}
	_, err = c.invoke(c.names.Metadata, "RegisterMetadata", string(b))
	return err
}
