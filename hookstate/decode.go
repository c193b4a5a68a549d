package hookstate

import (
	"bytes"
	"encoding/binary"
	"fmt"

	"github.com/evernode-go/evernode-client/candidate"
	"github.com/evernode-go/evernode-client/common"
	"github.com/evernode-go/evernode-client/xrpl"
)

// DecodeStateData identifies the record kind from the key's
// discriminant and decodes data into the corresponding typed record.
// A buffer whose length does not fit the discriminant is a structural
// failure: it signals a protocol version mismatch between this client
// and the deployed hooks.
func DecodeStateData(record *StateRecord) (DecodedRecord, error) {
	keyType, err := record.Key.Type()
	if err != nil {
		return nil, err
	}
	switch keyType {
	case KeyConfig, KeySingleton:
		return &ConfigValueRecord{Key: record.Key, Data: record.Data}, nil
	case KeyHostAddr:
		host, err := accountFromKey(record.Key)
		if err != nil {
			return nil, err
		}
		if len(record.Data) == LegacyHostAddrDataSize {
			return DecodeLegacyHostAddressData(*host, record.Data)
		}
		return DecodeHostAddressData(*host, record.Data)
	case KeyTransfereeAddr:
		host, err := accountFromKey(record.Key)
		if err != nil {
			return nil, err
		}
		return DecodeHostAddressData(*host, record.Data)
	case KeyTokenID:
		return DecodeTokenIDData(record.Data)
	case KeyCandidateOwner:
		owner, err := accountFromKey(record.Key)
		if err != nil {
			return nil, err
		}
		return DecodeCandidateOwnerData(*owner, record.Data)
	case KeyCandidateID:
		return DecodeCandidateIDData(record.Data)
	case KeyReputationHostCount:
		moment := binary.BigEndian.Uint64(record.Key[24:])
		return DecodeReputationHostCountData(moment, record.Data)
	case KeyReputationHostAddr:
		host, err := accountFromKey(record.Key)
		if err != nil {
			return nil, err
		}
		return DecodeReputationHostData(*host, record.Data)
	case KeyReputationOrderedID:
		orderedID := binary.BigEndian.Uint64(record.Key[16:24])
		moment := binary.BigEndian.Uint64(record.Key[24:])
		return DecodeReputationOrderData(orderedID, moment, record.Data)
	default:
		return nil, fmt.Errorf("%w: type 0x%02X", ErrUnknownStateKey, byte(keyType))
	}
}

func accountFromKey(key StateKey) (*xrpl.Account, error) {
	return xrpl.NewAccountFromBytes(key[12:])
}

func wrongDataLength(what string, got int) error {
	return fmt.Errorf("%w: wrong %s data length %d", ErrInvalidStateData, what, got)
}

// DecodeHostAddressData decodes a current generation host registry
// entry. The 120 byte layout of the later revision appends an XFL
// lease amount, everything before it is unchanged.
func DecodeHostAddressData(host xrpl.Account, data []byte) (*HostAddressRecord, error) {
	if len(data) != HostAddrDataSize && len(data) != HostAddrLeaseDataSize {
		return nil, wrongDataLength("host address", len(data))
	}
	record := &HostAddressRecord{
		Address:            host.String(),
		URITokenID:         common.ToHex(data[hostTokenIDOffset : hostTokenIDOffset+32]),
		CountryCode:        string(data[hostCountryCodeOffset : hostCountryCodeOffset+2]),
		Description:        trimmedString(data[hostDescriptionOffset:hostRegLedgerOffset]),
		RegistrationLedger: binary.BigEndian.Uint64(data[hostRegLedgerOffset:]),
		RegistrationFee:    binary.BigEndian.Uint64(data[hostRegFeeOffset:]),
		MaxInstances:       binary.BigEndian.Uint32(data[hostTotInstanceCountOffset:]),
		ActiveInstances:    binary.BigEndian.Uint32(data[hostActInstanceCountOffset:]),
		LastHeartbeatIndex: binary.BigEndian.Uint64(data[hostHeartbeatIndexOffset:]),
		Version: fmt.Sprintf("%d.%d.%d",
			data[hostVersionOffset], data[hostVersionOffset+1], data[hostVersionOffset+2]),
		RegistrationTimestamp: binary.BigEndian.Uint64(data[hostRegTimestampOffset:]),
		IsATransferer:         data[hostTransferFlagOffset] != 0,
	}
	if len(data) == HostAddrLeaseDataSize {
		leaseAmount, err := XflToFloat(int64(binary.BigEndian.Uint64(data[hostLeaseAmountOffset:])))
		if err != nil {
			return nil, fmt.Errorf("%w: host lease amount: %v", ErrInvalidStateData, err)
		}
		record.LeaseAmount = leaseAmount
	}
	return record, nil
}

// DecodeLegacyHostAddressData decodes the first generation host
// registry entry found on historical ledgers
func DecodeLegacyHostAddressData(host xrpl.Account, data []byte) (*LegacyHostAddressRecord, error) {
	if len(data) != LegacyHostAddrDataSize {
		return nil, wrongDataLength("legacy host address", len(data))
	}
	return &LegacyHostAddressRecord{
		Address:      host.String(),
		Token:        string(data[legacyHostTokenOffset : legacyHostTokenOffset+legacyHostTokenSize]),
		TxHash:       common.ToHex(data[legacyHostTxHashOffset : legacyHostTxHashOffset+32]),
		InstanceSize: trimmedString(data[legacyHostInstanceSizeOffset : legacyHostInstanceSizeOffset+legacyHostInstanceSizeSize]),
		Location:     trimmedString(data[legacyHostLocationOffset : legacyHostLocationOffset+legacyHostLocationSize]),
	}, nil
}

// DecodeTokenIDData decodes a per-token host registry entry
func DecodeTokenIDData(data []byte) (*TokenIdRecord, error) {
	if len(data) != TokenIDDataSize {
		return nil, wrongDataLength("token id", len(data))
	}
	host, err := xrpl.NewAccountFromBytes(data[tokenHostAddressOffset : tokenHostAddressOffset+20])
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidStateData, err)
	}
	reward, err := XflToFloat(int64(binary.BigEndian.Uint64(data[tokenAccumulatedRewardOffset:])))
	if err != nil {
		return nil, fmt.Errorf("%w: accumulated reward: %v", ErrInvalidStateData, err)
	}
	return &TokenIdRecord{
		Address:                 host.String(),
		CPUModel:                trimmedString(data[tokenCPUModelOffset:tokenCPUCountOffset]),
		CPUCount:                binary.BigEndian.Uint16(data[tokenCPUCountOffset:]),
		CPUSpeedMHz:             binary.BigEndian.Uint16(data[tokenCPUSpeedOffset:]),
		CPUMicrosec:             binary.BigEndian.Uint32(data[tokenCPUMicrosecOffset:]),
		RAMMB:                   binary.BigEndian.Uint32(data[tokenRAMMBOffset:]),
		DiskMB:                  binary.BigEndian.Uint32(data[tokenDiskMBOffset:]),
		Email:                   trimmedString(data[tokenEmailOffset : tokenEmailOffset+40]),
		AccumulatedRewardAmount: reward,
	}, nil
}

// DecodeCandidateOwnerData decodes a candidate entry keyed by its
// proposer: the four proposed hook code hashes. The unique id is the
// content hash the proposal is addressed by everywhere else.
func DecodeCandidateOwnerData(owner xrpl.Account, data []byte) (*CandidateOwnerRecord, error) {
	if len(data) != CandidateOwnerDataSize {
		return nil, wrongDataLength("candidate owner", len(data))
	}
	uniqueID, err := candidate.NewHookCandidateID(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidStateData, err)
	}
	return &CandidateOwnerRecord{
		GovernorHookHash:   common.ToHex(data[0:32]),
		RegistryHookHash:   common.ToHex(data[32:64]),
		HeartbeatHookHash:  common.ToHex(data[64:96]),
		ReputationHookHash: common.ToHex(data[96:128]),
		UniqueID:           uniqueID.String(),
	}, nil
}

// DecodeCandidateIDData decodes a candidate entry keyed by candidate id
func DecodeCandidateIDData(data []byte) (*CandidateIdRecord, error) {
	if len(data) != CandidateIDDataSize {
		return nil, wrongDataLength("candidate id", len(data))
	}
	owner, err := xrpl.NewAccountFromBytes(data[candOwnerAddressOffset : candOwnerAddressOffset+20])
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidStateData, err)
	}
	proposalFee, err := XflToFloat(int64(binary.BigEndian.Uint64(data[candProposalFeeOffset:])))
	if err != nil {
		return nil, fmt.Errorf("%w: proposal fee: %v", ErrInvalidStateData, err)
	}
	return &CandidateIdRecord{
		OwnerAddress:          owner.String(),
		Index:                 binary.BigEndian.Uint32(data[candIndexOffset:]),
		ShortName:             trimmedString(data[candShortNameOffset : candShortNameOffset+20]),
		CreatedTimestamp:      binary.BigEndian.Uint64(data[candCreatedTimestampOffset:]),
		ProposalFee:           proposalFee,
		PositiveVoteCount:     binary.BigEndian.Uint32(data[candPositiveVoteCountOffset:]),
		LastVoteTimestamp:     binary.BigEndian.Uint64(data[candLastVoteTimestampOffset:]),
		Status:                CandidateStatus(data[candStatusOffset]),
		StatusChangeTimestamp: binary.BigEndian.Uint64(data[candStatusChangeTimestampOffset:]),
		FoundationVoteStatus:  CandidateStatus(data[candFoundationVoteStatusOffset]),
	}, nil
}

// DecodeReputationHostCountData decodes the registrant count of a moment
func DecodeReputationHostCountData(moment uint64, data []byte) (*ReputationHostCountRecord, error) {
	if len(data) != 8 {
		return nil, wrongDataLength("reputation host count", len(data))
	}
	return &ReputationHostCountRecord{
		Moment: moment,
		Count:  binary.BigEndian.Uint64(data),
	}, nil
}

// DecodeReputationHostData decodes a per-host reputation entry. Later
// protocol revisions appended the score and ordered id fields, so a
// shorter buffer is not structural damage, the missing fields are
// simply absent.
func DecodeReputationHostData(host xrpl.Account, data []byte) (*ReputationHostRecord, error) {
	if len(data) < 8 || len(data) > 24 || len(data)%8 != 0 {
		return nil, wrongDataLength("reputation host", len(data))
	}
	record := &ReputationHostRecord{
		Address: host.String(),
		Moment:  binary.BigEndian.Uint64(data),
	}
	if len(data) >= 16 {
		score, err := XflToFloat(int64(binary.BigEndian.Uint64(data[8:])))
		if err != nil {
			return nil, fmt.Errorf("%w: reputation score: %v", ErrInvalidStateData, err)
		}
		record.Score = score
		record.HasScore = true
	}
	if len(data) == 24 {
		record.OrderedID = binary.BigEndian.Uint64(data[16:])
		record.HasOrderedID = true
	}
	return record, nil
}

// DecodeReputationOrderData decodes an ordered-slot reputation entry
func DecodeReputationOrderData(orderedID, moment uint64, data []byte) (*ReputationOrderRecord, error) {
	if len(data) != 20 {
		return nil, wrongDataLength("reputation order", len(data))
	}
	host, err := xrpl.NewAccountFromBytes(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidStateData, err)
	}
	return &ReputationOrderRecord{
		OrderedID: orderedID,
		Moment:    moment,
		Address:   host.String(),
	}, nil
}

// DecodeReputationContractInfo decodes the contract info buffer a
// reputation host publishes. The buffer is produced by the contract
// itself and is little endian, unlike hook state.
func DecodeReputationContractInfo(data []byte) (*ReputationContractInfo, error) {
	if len(data) < ReputationContractInfoMinSize {
		return nil, wrongDataLength("reputation contract info", len(data))
	}
	return &ReputationContractInfo{
		PubKey:         common.ToHex(data[repInfoPubkeyOffset:repInfoPeerPortOffset]),
		PeerPort:       binary.LittleEndian.Uint16(data[repInfoPeerPortOffset:]),
		InstanceMoment: binary.LittleEndian.Uint64(data[repInfoInstanceMomentOffset:]),
	}, nil
}

func trimmedString(b []byte) string {
	return string(bytes.TrimRight(b, "\x00"))
}
