package hookstate

import (
	"encoding/binary"
	"fmt"

	"github.com/evernode-go/evernode-client/params"
	"github.com/evernode-go/evernode-client/xrpl"
)

// ConfigValueRecord is one configuration scalar or singleton aggregate
// read from the governor's state. The raw buffer is kept and read out
// through the typed accessors, each of which checks the width it needs.
type ConfigValueRecord struct {
	Key  StateKey
	Data []byte
}

// RecordKind impl
func (r *ConfigValueRecord) RecordKind() StateKeyType {
	t, _ := r.Key.Type()
	return t
}

// Uint16 reads the value as a 16 bit big endian integer
func (r *ConfigValueRecord) Uint16() (uint16, error) {
	if len(r.Data) != 2 {
		return 0, wrongDataLength("uint16 config", len(r.Data))
	}
	return binary.BigEndian.Uint16(r.Data), nil
}

// Uint32 reads the value as a 32 bit big endian integer
func (r *ConfigValueRecord) Uint32() (uint32, error) {
	if len(r.Data) != 4 {
		return 0, wrongDataLength("uint32 config", len(r.Data))
	}
	return binary.BigEndian.Uint32(r.Data), nil
}

// Uint64 reads the value as a 64 bit big endian integer
func (r *ConfigValueRecord) Uint64() (uint64, error) {
	if len(r.Data) != 8 {
		return 0, wrongDataLength("uint64 config", len(r.Data))
	}
	return binary.BigEndian.Uint64(r.Data), nil
}

// Xfl reads the value as a 64 bit fixed point monetary amount
func (r *ConfigValueRecord) Xfl() (float64, error) {
	if len(r.Data) != 8 {
		return 0, wrongDataLength("xfl config", len(r.Data))
	}
	value, err := XflToFloat(int64(binary.BigEndian.Uint64(r.Data)))
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrInvalidStateData, err)
	}
	return value, nil
}

// Account reads the value as a 20 byte account id r-address
func (r *ConfigValueRecord) Account() (string, error) {
	account, err := xrpl.NewAccountFromBytes(r.Data)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidStateData, err)
	}
	return account.String(), nil
}

// moment base info buffer: baseIdx(8) baseTransitionMoment(4) momentType(1)
const momentBaseInfoSize = 13

// MomentBaseInfo reads the moment base info singleton
func (r *ConfigValueRecord) MomentBaseInfo() (*params.MomentBaseInfo, error) {
	if len(r.Data) != momentBaseInfoSize {
		return nil, wrongDataLength("moment base info", len(r.Data))
	}
	return &params.MomentBaseInfo{
		BaseIdx:              binary.BigEndian.Uint64(r.Data[0:8]),
		BaseTransitionMoment: uint64(binary.BigEndian.Uint32(r.Data[8:12])),
		IsLedgerMoment:       r.Data[12] != 0,
	}, nil
}

// reward configuration buffer:
// epochCount(1) firstEpochRewardQuota(4) epochRewardAmount(4) rewardStartMoment(4)
const rewardConfigurationSize = 13

// RewardConfiguration reads the reward configuration scalar
func (r *ConfigValueRecord) RewardConfiguration() (*params.RewardConfiguration, error) {
	if len(r.Data) != rewardConfigurationSize {
		return nil, wrongDataLength("reward configuration", len(r.Data))
	}
	return &params.RewardConfiguration{
		EpochCount:            r.Data[0],
		FirstEpochRewardQuota: binary.BigEndian.Uint32(r.Data[1:5]),
		EpochRewardAmount:     binary.BigEndian.Uint32(r.Data[5:9]),
		RewardStartMoment:     binary.BigEndian.Uint32(r.Data[9:13]),
	}, nil
}

// reward info buffer:
// epoch(1) savedMoment(4) prevMomentActiveHostCount(4) curMomentActiveHostCount(4) epochPool(8 xfl)
const rewardInfoSize = 21

// RewardInfo reads the reward info singleton
func (r *ConfigValueRecord) RewardInfo() (*params.RewardInfo, error) {
	if len(r.Data) != rewardInfoSize {
		return nil, wrongDataLength("reward info", len(r.Data))
	}
	pool, err := XflToFloat(int64(binary.BigEndian.Uint64(r.Data[13:21])))
	if err != nil {
		return nil, fmt.Errorf("%w: epoch pool: %v", ErrInvalidStateData, err)
	}
	return &params.RewardInfo{
		Epoch:                     r.Data[0],
		SavedMoment:               binary.BigEndian.Uint32(r.Data[1:5]),
		PrevMomentActiveHostCount: binary.BigEndian.Uint32(r.Data[5:9]),
		CurMomentActiveHostCount:  binary.BigEndian.Uint32(r.Data[9:13]),
		EpochPool:                 pool,
	}, nil
}

// governance configuration buffer:
// eligibilityPeriod(4) candidateLifePeriod(4) candidateElectionPeriod(4) candidateSupportAverage(2)
const governanceConfigurationSize = 14

// GovernanceConfiguration reads the governance configuration scalar
func (r *ConfigValueRecord) GovernanceConfiguration() (*params.GovernanceConfiguration, error) {
	if len(r.Data) != governanceConfigurationSize {
		return nil, wrongDataLength("governance configuration", len(r.Data))
	}
	return &params.GovernanceConfiguration{
		EligibilityPeriod:       binary.BigEndian.Uint32(r.Data[0:4]),
		CandidateLifePeriod:     binary.BigEndian.Uint32(r.Data[4:8]),
		CandidateElectionPeriod: binary.BigEndian.Uint32(r.Data[8:12]),
		CandidateSupportAverage: binary.BigEndian.Uint16(r.Data[12:14]),
	}, nil
}
