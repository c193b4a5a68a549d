// Package candidate derives governance candidate ids and classifies an
// id back into its candidate kind. Classification is a pure function of
// the 32 id bytes, no ledger access is involved, and every place that
// needs to disambiguate a candidate id must go through it.
package candidate

import (
	"fmt"

	"github.com/evernode-go/evernode-client/xrpl"
)

// Type candidate type
type Type byte

// candidate types
const (
	TypeNone Type = iota
	TypeNewHook
	TypeDudHost
	TypePilotedMode
)

func (t Type) String() string {
	switch t {
	case TypeNewHook:
		return "NewHook"
	case TypeDudHost:
		return "DudHost"
	case TypePilotedMode:
		return "PilotedMode"
	default:
		return "None"
	}
}

const (
	// HookHashesSize four 32 byte hook code hashes
	// (governor, registry, heartbeat, reputation)
	HookHashesSize = 128

	// dudHostAddressOffset is where the reported host's account id is
	// embedded inside a DudHost candidate id
	dudHostAddressOffset = 12
)

// pilotedModeID is the single reserved PilotedMode candidate id
var pilotedModeID = func() xrpl.Hash256 {
	var id xrpl.Hash256
	id[0] = byte(TypePilotedMode)
	return id
}()

// NewHookCandidateID derives the candidate id of a new-hook proposal:
// a content hash over the concatenated hook code hashes, tagged with
// the NewHook kind in its first byte.
func NewHookCandidateID(hashes []byte) (xrpl.Hash256, error) {
	if len(hashes) != HookHashesSize {
		return xrpl.Hash256{}, fmt.Errorf("invalid hook hashes length %d, want %d", len(hashes), HookHashesSize)
	}
	id := xrpl.Sha512Half(hashes)
	id[0] = byte(TypeNewHook)
	return id, nil
}

// DudHostCandidateID derives the candidate id of a dud-host report:
// the tag byte, a fixed zero run, then the host's account id embedded
// at offset 12.
func DudHostCandidateID(host xrpl.Account) xrpl.Hash256 {
	var id xrpl.Hash256
	id[0] = byte(TypeDudHost)
	copy(id[dudHostAddressOffset:], host.Bytes())
	return id
}

// PilotedModeCandidateID returns the constant piloted-mode candidate id
func PilotedModeCandidateID() xrpl.Hash256 {
	return pilotedModeID
}

// Classify determines the candidate kind from the id's byte pattern.
// PilotedMode is the reserved constant, DudHost carries the embedded
// address pattern at offset 12, everything else is a NewHook content
// hash.
func Classify(id xrpl.Hash256) Type {
	if id == pilotedModeID {
		return TypePilotedMode
	}
	if isDudHostPattern(id) {
		return TypeDudHost
	}
	return TypeNewHook
}

func isDudHostPattern(id xrpl.Hash256) bool {
	if id[0] != byte(TypeDudHost) {
		return false
	}
	for _, b := range id[1:dudHostAddressOffset] {
		if b != 0 {
			return false
		}
	}
	return true
}

// DudHostAddressFromCandidateID extracts the reported host address
// embedded in a DudHost candidate id. Only meaningful when Classify
// returns TypeDudHost.
func DudHostAddressFromCandidateID(id xrpl.Hash256) (string, error) {
	if Classify(id) != TypeDudHost {
		return "", fmt.Errorf("candidate id %v is not a dud host id", id)
	}
	account, err := xrpl.NewAccountFromBytes(id[dudHostAddressOffset:])
	if err != nil {
		return "", err
	}
	return account.String(), nil
}
