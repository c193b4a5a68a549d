package hookstate

import (
	"encoding/binary"
	"fmt"

	"github.com/evernode-go/evernode-client/xrpl"
)

// ledger namespace discriminants, written as 2 bytes big endian in
// front of the hashed material (the ledger's own addressing scheme)
const (
	nsHookState uint16 = 'v'
	nsURIToken  uint16 = 'u'
)

// StateKey is one 32 byte hook state key
type StateKey [32]byte

func (k StateKey) String() string {
	h := xrpl.Hash256(k)
	return h.String()
}

// Type returns the record family the key addresses
func (k StateKey) Type() (StateKeyType, error) {
	if k[0] != evrPrefix[0] || k[1] != evrPrefix[1] || k[2] != evrPrefix[2] {
		return 0, fmt.Errorf("%w: missing EVR marker in %v", ErrInvalidStateKey, k)
	}
	t := StateKeyType(k[3])
	if t < KeyConfig || t > KeyReputationOrderedID {
		return 0, fmt.Errorf("%w: unknown type byte 0x%02X in %v", ErrUnknownStateKey, k[3], k)
	}
	return t, nil
}

// NewStateKey accepts a hex string or a byte slice of length 32
func NewStateKey(value interface{}) (*StateKey, error) {
	h, err := xrpl.NewHash256(value)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidStateKey, err)
	}
	k := StateKey(*h)
	return &k, nil
}

func buildStateKey(keyType StateKeyType, body []byte) StateKey {
	var key StateKey
	copy(key[:3], evrPrefix[:])
	key[3] = byte(keyType)
	// right align the body, zero pad in between
	copy(key[32-len(body):], body)
	return key
}

// HostAddrStateKey derives the host registry key of a host account
func HostAddrStateKey(host xrpl.Account) StateKey {
	return buildStateKey(KeyHostAddr, host.Bytes())
}

// TransfereeAddrStateKey derives the pending transfer key of an account
func TransfereeAddrStateKey(transferee xrpl.Account) StateKey {
	return buildStateKey(KeyTransfereeAddr, transferee.Bytes())
}

// CandidateOwnerStateKey derives the candidate key of a proposer account
func CandidateOwnerStateKey(owner xrpl.Account) StateKey {
	return buildStateKey(KeyCandidateOwner, owner.Bytes())
}

// TokenIDStateKey derives the registry key of a registration token.
// Only the last 28 bytes of the token id fit beside the prefix.
func TokenIDStateKey(tokenID xrpl.Hash256) StateKey {
	return buildStateKey(KeyTokenID, tokenID[4:])
}

// CandidateIDStateKey derives the candidate key of a candidate id.
// Only the last 28 bytes of the candidate id fit beside the prefix.
func CandidateIDStateKey(candidateID xrpl.Hash256) StateKey {
	return buildStateKey(KeyCandidateID, candidateID[4:])
}

// ReputationHostCountStateKey derives the per-moment host count key
// kept by the reputation hook
func ReputationHostCountStateKey(moment uint64) StateKey {
	var body [8]byte
	binary.BigEndian.PutUint64(body[:], moment)
	return buildStateKey(KeyReputationHostCount, body[:])
}

// ReputationHostAddrStateKey derives the per-host reputation key
func ReputationHostAddrStateKey(host xrpl.Account) StateKey {
	return buildStateKey(KeyReputationHostAddr, host.Bytes())
}

// ReputationOrderedIDStateKey derives the per-ordered-slot reputation
// key, scoped to a moment
func ReputationOrderedIDStateKey(orderedID, moment uint64) StateKey {
	var body [16]byte
	binary.BigEndian.PutUint64(body[:8], orderedID)
	binary.BigEndian.PutUint64(body[8:], moment)
	return buildStateKey(KeyReputationOrderedID, body[:])
}

// HookStateIndex derives the ledger-wide index of a hook state entry.
// This must reproduce the ledger's own hashing bit for bit: a deviation
// is not an error, it is an address that silently misses real data.
func HookStateIndex(owner xrpl.Account, key StateKey, namespace xrpl.Hash256) xrpl.Hash256 {
	var ns [2]byte
	binary.BigEndian.PutUint16(ns[:], nsHookState)
	return xrpl.Sha512Half(ns[:], owner.Bytes(), key[:], namespace.Bytes())
}

// URITokenIndex derives the ledger-wide index of a URIToken entry,
// used to look up lease and registration tokens by their URI
func URITokenIndex(owner xrpl.Account, uri []byte) xrpl.Hash256 {
	var ns [2]byte
	binary.BigEndian.PutUint16(ns[:], nsURIToken)
	return xrpl.Sha512Half(ns[:], owner.Bytes(), uri)
}
