package contract

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"flightcover/errcode"
	"flightcover/ledger"
	"flightcover/model"

	"github.com/hyperledger/fabric-contract-api-go/contractapi"
	"github.com/hyperledger/fabric/common/flogging"
)

var idLogger = flogging.MustGetLogger("flightcover.identitymanager")

// Object types for composite keys.
const (
	aliasObjectType         = "Alias"          // Alias record. Attribute: alias.
	identityAliasObjectType = "Identity~Alias" // Reverse mapping to the alias. Attribute: identity.
)

// IdentityManager resolves callers and the short aliases the admin registers
// for them.
type IdentityManager struct {
	Ctx contractapi.TransactionContextInterface
	txn *ledger.Txn
}

// NewIdentityManager creates a new instance of IdentityManager reading and
// writing through txn.
func NewIdentityManager(ctx contractapi.TransactionContextInterface, txn *ledger.Txn) *IdentityManager {
	return &IdentityManager{Ctx: ctx, txn: txn}
}

func isValidX509ID(id string) bool {
	return strings.HasPrefix(id, "x509::") || strings.HasPrefix(id, "eDUwOTo6") // "eDUwOTo6" is "x509::" base64 encoded
}

// GetCurrentIdentityFullID retrieves the full X.509 ID of the current transactor.
func (im *IdentityManager) GetCurrentIdentityFullID() (string, error) {
	clientIdentity := im.Ctx.GetClientIdentity()
	if clientIdentity == nil {
		return "", errors.New("client identity is nil from context")
	}
	id, err := clientIdentity.GetID()
	if err != nil {
		return "", fmt.Errorf("failed to get client identity ID from context: %w", err)
	}
	if id == "" {
		return "", errors.New("client identity ID from context is empty")
	}
	if !isValidX509ID(id) {
		idLogger.Warningf("Current client ID '%s' does not appear to be a standard X.509 format.", id)
	}
	return id, nil
}

// GetCurrentMSPID returns the MSP of the current transactor.
func (im *IdentityManager) GetCurrentMSPID() (string, error) {
	clientIdentity := im.Ctx.GetClientIdentity()
	if clientIdentity == nil {
		return "", errors.New("client identity is nil from context")
	}
	mspID, err := clientIdentity.GetMSPID()
	if err != nil {
		return "", fmt.Errorf("failed to get client MSPID: %w", err)
	}
	return mspID, nil
}

// ResolveIdentity returns the full identity for an X.509 id or a registered alias.
func (im *IdentityManager) ResolveIdentity(identityOrAlias string) (string, error) {
	trimmed := strings.TrimSpace(identityOrAlias)
	if trimmed == "" {
		return "", errcode.New(errcode.InvalidArgument, "identityOrAlias cannot be empty")
	}
	if isValidX509ID(trimmed) {
		return trimmed, nil
	}
	alias, err := im.GetAlias(trimmed)
	if err != nil {
		if errcode.Has(err, errcode.RecordNotFound) {
			idLogger.Debugf("Alias '%s' not found in ledger.", trimmed)
			return "", errcode.New(errcode.RecordNotFound, "alias '%s' not found", trimmed)
		}
		return "", err
	}
	return alias.Identity, nil
}

// GetAlias loads an alias record.
func (im *IdentityManager) GetAlias(alias string) (*model.Alias, error) {
	key, err := im.txn.Key(aliasObjectType, alias)
	if err != nil {
		return nil, err
	}
	var rec model.Alias
	if err := im.txn.Get(key, &rec); err != nil {
		return nil, err
	}
	return &rec, nil
}

// AliasOf returns the alias registered for identity, or "" if there is none.
func (im *IdentityManager) AliasOf(identity string) (string, error) {
	key, err := im.txn.Key(identityAliasObjectType, identity)
	if err != nil {
		return "", err
	}
	exists, err := im.txn.Exists(key)
	if err != nil || !exists {
		return "", err
	}
	var alias string
	if err := im.txn.Get(key, &alias); err != nil {
		return "", err
	}
	return alias, nil
}

// RegisterAlias maps alias to identity. An alias already held by another
// identity is RecordExists; an identity that had a different alias loses it.
func (im *IdentityManager) RegisterAlias(alias, identity, registeredBy string, now time.Time) (*model.Alias, error) {
	alias = strings.TrimSpace(alias)
	identity = strings.TrimSpace(identity)
	if err := validateRequiredString(alias, "alias", maxAliasLength); err != nil {
		return nil, err
	}
	if isValidX509ID(alias) {
		return nil, errcode.New(errcode.InvalidArgument, "alias '%s' must not look like an X.509 ID", alias)
	}
	if !isValidX509ID(identity) {
		return nil, errcode.New(errcode.InvalidArgument, "identity '%s' is not a valid X.509 ID format", identity)
	}

	aliasKey, err := im.txn.Key(aliasObjectType, alias)
	if err != nil {
		return nil, err
	}
	existing, err := im.GetAlias(alias)
	switch {
	case err == nil && existing.Identity != identity:
		return nil, errcode.New(errcode.RecordExists, "alias '%s' is already in use by identity '%s'", alias, existing.Identity)
	case err == nil:
		idLogger.Infof("Alias '%s' already maps to '%s'. No action needed.", alias, identity)
		return existing, nil
	case !errcode.Has(err, errcode.RecordNotFound):
		return nil, err
	}

	previous, err := im.AliasOf(identity)
	if err != nil {
		return nil, err
	}
	if previous != "" {
		oldKey, err := im.txn.Key(aliasObjectType, previous)
		if err != nil {
			return nil, err
		}
		if err := im.txn.Delete(oldKey); err != nil {
			return nil, err
		}
		idLogger.Infof("Identity '%s' drops previous alias '%s'", identity, previous)
	}

	rec := &model.Alias{
		ObjectType:   aliasObjectType,
		Alias:        alias,
		Identity:     identity,
		RegisteredBy: registeredBy,
		RegisteredAt: now,
	}
	if err := im.txn.Put(aliasKey, rec); err != nil {
		return nil, err
	}
	reverseKey, err := im.txn.Key(identityAliasObjectType, identity)
	if err != nil {
		return nil, err
	}
	if err := im.txn.Put(reverseKey, alias); err != nil {
		return nil, err
	}
	return rec, nil
}
