package events

import (
	"encoding/binary"
	"fmt"

	"github.com/evernode-go/evernode-client/common"
	"github.com/evernode-go/evernode-client/hookstate"
	"github.com/evernode-go/evernode-client/xrpl"
)

// AcquireLeaseData lease acquisition request
type AcquireLeaseData struct {
	Host    string
	Tenant  string
	Payload string // instance requirement, JSON once decrypted
	// IsEncrypted is left set when the payload could not be decrypted,
	// Payload then carries the pre-decryption form
	IsEncrypted bool
}

// AcquireResponseData acquire success/error response. On success the
// payload carries the instance connection info, on error the reason.
type AcquireResponseData struct {
	AcquireRefID string // hash of the acquire transaction being answered
	Payload      string
	Reason       string
}

// HostRegistrationData host registration / registration update
type HostRegistrationData struct {
	Host    string
	Payload string
}

// HostDeregistrationData host deregistration
type HostDeregistrationData struct {
	Host    string
	TokenID string
	// ViaReputation is set when the deregistration originated from the
	// reputation account and the host was decoded from the payload
	ViaReputation bool
	ErrorFlag     byte
}

// HeartbeatData host heartbeat, optionally carrying a governance vote
type HeartbeatData struct {
	Host string
	Vote *CandidateVoteData
}

// CandidateVoteData one governance vote
type CandidateVoteData struct {
	CandidateID string
	Vote        byte
}

// ExtendLeaseData lease extension request
type ExtendLeaseData struct {
	Host    string
	Tenant  string
	TokenID string
	Amount  string
}

// ExtendResponseData extend success/error response
type ExtendResponseData struct {
	ExtendRefID  string
	ExpiryMoment uint32
	Reason       string
}

// TerminateLeaseData lease termination
type TerminateLeaseData struct {
	Tenant  string
	TokenID string
}

// DeadHostPruneData prune of an inactive host
type DeadHostPruneData struct {
	Host string
}

// HostRebateData registration fee rebate claim
type HostRebateData struct {
	Host string
}

// HostTransferData registration transfer initiation
type HostTransferData struct {
	Host       string
	Transferee string
}

// CandidateProposeData new-hook candidate proposal, decoded from the
// chunked 316 byte propose payload
type CandidateProposeData struct {
	Owner      string
	HookHashes string
	Keylets    string
	UniqueID   string
	ShortName  string
}

// CandidateData events addressing one candidate by id
type CandidateData struct {
	CandidateID string
	Owner       string
}

// CandidateStatusData candidate status change, already fanned out into
// its specific event kind by candidate classification
type CandidateStatusData struct {
	CandidateID string
	Status      hookstate.CandidateStatus
	// Host is only set for dud host candidates
	Host string
}

// ChildHookUpdateData governor pushed new hook code to a child account
type ChildHookUpdateData struct {
	Account  string
	HookHash string
}

// GovernanceModeData governance mode switch
type GovernanceModeData struct {
	Mode byte
}

// HostReputationData host submitted reputation scores
type HostReputationData struct {
	Host   string
	Scores string // raw hex score buffer, interpreted by the caller
}

// ChunkProposePayload splits an encoded 316 byte propose payload into
// the two outbound hook parameter values at the chunk boundary
func ChunkProposePayload(payload []byte) (part1, part2 []byte, err error) {
	if len(payload) != ProposePayloadSize {
		return nil, nil, fmt.Errorf("invalid propose payload length %d, want %d", len(payload), ProposePayloadSize)
	}
	return payload[:eventDataChunkSize], payload[eventDataChunkSize:], nil
}

// EncodeProposePayload builds the 316 byte propose payload from its
// fields, the inverse of decodeProposePayload
func EncodeProposePayload(hookHashes, keylets, uniqueID []byte, shortName string) ([]byte, error) {
	if len(hookHashes) != proposeHashesSize {
		return nil, fmt.Errorf("invalid hook hashes length %d, want %d", len(hookHashes), proposeHashesSize)
	}
	if len(keylets) != proposeKeyletsSize {
		return nil, fmt.Errorf("invalid keylets length %d, want %d", len(keylets), proposeKeyletsSize)
	}
	if len(uniqueID) != proposeUniqueIDSize {
		return nil, fmt.Errorf("invalid unique id length %d, want %d", len(uniqueID), proposeUniqueIDSize)
	}
	if len(shortName) > proposeShortNameSize {
		return nil, fmt.Errorf("short name %q longer than %d bytes", shortName, proposeShortNameSize)
	}
	payload := make([]byte, 0, ProposePayloadSize)
	payload = append(payload, hookHashes...)
	payload = append(payload, keylets...)
	payload = append(payload, uniqueID...)
	name := make([]byte, proposeShortNameSize)
	copy(name, shortName)
	payload = append(payload, name...)
	return payload, nil
}

func decodeProposePayload(owner string, payload []byte) (*CandidateProposeData, error) {
	if len(payload) != ProposePayloadSize {
		return nil, fmt.Errorf("invalid propose payload length %d, want %d", len(payload), ProposePayloadSize)
	}
	hashesEnd := proposeHashesSize
	keyletsEnd := hashesEnd + proposeKeyletsSize
	uniqueIDEnd := keyletsEnd + proposeUniqueIDSize
	return &CandidateProposeData{
		Owner:      owner,
		HookHashes: common.ToHex(payload[:hashesEnd]),
		Keylets:    common.ToHex(payload[hashesEnd:keyletsEnd]),
		UniqueID:   common.ToHex(payload[keyletsEnd:uniqueIDEnd]),
		ShortName:  trimmedName(payload[uniqueIDEnd:]),
	}, nil
}

// decodeDeregPayload handles the two shapes of the deregistration
// payload: the 53 byte reputation initiated form carries the host
// address, every other shape means the host is the sending account.
func decodeDeregPayload(tx *Transaction, payload []byte) (*HostDeregistrationData, error) {
	if len(payload) == DeregPayloadSize {
		host, err := xrpl.NewAccountFromBytes(payload[:20])
		if err != nil {
			return nil, err
		}
		return &HostDeregistrationData{
			Host:          host.String(),
			TokenID:       common.ToHex(payload[20:52]),
			ViaReputation: true,
			ErrorFlag:     payload[52],
		}, nil
	}
	data := &HostDeregistrationData{Host: tx.Account}
	if len(payload) == 32 {
		data.TokenID = common.ToHex(payload)
	}
	return data, nil
}

func decodeCandidateVote(payload []byte) *CandidateVoteData {
	if len(payload) != candidateIDSize+1 {
		return nil
	}
	return &CandidateVoteData{
		CandidateID: common.ToHex(payload[:candidateIDSize]),
		Vote:        payload[candidateIDSize],
	}
}

func trimmedName(b []byte) string {
	for i, c := range b {
		if c == 0 {
			return string(b[:i])
		}
	}
	return string(b)
}

func uint32At(b []byte, offset int) uint32 {
	return binary.BigEndian.Uint32(b[offset:])
}
