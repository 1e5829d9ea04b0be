package ledger

import (
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
	"fmt"
)

// Seeds of the protocol's derived addresses.
const (
	RiskPoolSeed      = "risk_pool_vault"
	MintAuthoritySeed = "policy_mint_authority"
	ProofTokenSeed    = "policy_proof_token"
	MetadataSeed      = "metadata"
	EditionSeed       = "edition"
)

// DeriveAddress hashes length-prefixed seeds, so distinct seed lists never
// share an encoding.
func DeriveAddress(seeds ...[]byte) string {
	h := sha256.New()
	var n [8]byte
	for _, s := range seeds {
		binary.BigEndian.PutUint64(n[:], uint64(len(s)))
		h.Write(n[:])
		h.Write(s)
	}
	return hex.EncodeToString(h.Sum(nil))
}

// LE64 encodes v little-endian.
func LE64(v uint64) []byte {
	b := make([]byte, 8)
	binary.LittleEndian.PutUint64(b, v)
	return b
}

// U64Key renders v zero-padded so key ranges sort numerically.
func U64Key(v uint64) string {
	return fmt.Sprintf("%020d", v)
}

// PoolAccount is the custodial account of the risk pool.
func PoolAccount() string {
	return DeriveAddress([]byte(RiskPoolSeed))
}

// MintAuthority is the signing authority for proof tokens.
func MintAuthority() string {
	return DeriveAddress([]byte(MintAuthoritySeed))
}

// ProofTokenID is the proof-of-insurance token id for a policy.
func ProofTokenID(policyID uint64) string {
	return DeriveAddress([]byte(ProofTokenSeed), LE64(policyID))
}

// MetadataAddress is where a token's descriptive metadata lives.
func MetadataAddress(tokenID string) string {
	return DeriveAddress([]byte(MetadataSeed), []byte(tokenID))
}

// EditionAddress is where a token's fixed-supply edition marker lives.
func EditionAddress(tokenID string) string {
	return DeriveAddress([]byte(MetadataSeed), []byte(tokenID), []byte(EditionSeed))
}
