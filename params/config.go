package params

import (
	"sync"

	"github.com/BurntSushi/toml"
	"github.com/evernode-go/evernode-client/common"
	"github.com/evernode-go/evernode-client/log"
)

var (
	clientConfig      *ClientConfig
	loadConfigStarter sync.Once
	configLock        sync.RWMutex
)

// ClientConfig client config items (decode from toml file)
type ClientConfig struct {
	Identifier string
	Account    string // this client's account, decrypt target checks use it

	Governance *GovernanceConfig
	Reputation *ReputationConfig `toml:",omitempty" json:",omitempty"`
	Log        *LogConfig        `toml:",omitempty" json:",omitempty"`
}

// GovernanceConfig governance hook config
type GovernanceConfig struct {
	GovernorAddress string
}

// ReputationConfig reputation hook config
type ReputationConfig struct {
	Address string
	// Namespace is the hook state namespace of the reputation hook,
	// hex encoded 32 bytes. Governance hooks use the zero namespace.
	Namespace string `toml:",omitempty" json:",omitempty"`
}

// LogConfig log config
type LogConfig struct {
	Level       uint32
	JSONFormat  bool `toml:",omitempty" json:",omitempty"`
	ColorFormat bool `toml:",omitempty" json:",omitempty"`
}

// MomentBaseInfo moment base info decoded from the governor's singleton state
type MomentBaseInfo struct {
	BaseIdx              uint64
	BaseTransitionMoment uint64
	IsLedgerMoment       bool
}

// RewardConfiguration reward configuration decoded from the governor's state
type RewardConfiguration struct {
	EpochCount            uint8
	FirstEpochRewardQuota uint32
	EpochRewardAmount     uint32
	RewardStartMoment     uint32
}

// RewardInfo reward info decoded from the governor's singleton state
type RewardInfo struct {
	Epoch                     uint8
	SavedMoment               uint32
	PrevMomentActiveHostCount uint32
	CurMomentActiveHostCount  uint32
	EpochPool                 float64
}

// GovernanceConfiguration governance configuration decoded from state
type GovernanceConfiguration struct {
	EligibilityPeriod       uint32
	CandidateLifePeriod     uint32
	CandidateElectionPeriod uint32
	CandidateSupportAverage uint16
}

// Config is the aggregated protocol configuration snapshot. It is built by
// the caller from decoded ledger state and never mutated afterwards.
type Config struct {
	EvrIssuerAddress  string
	FoundationAddress string
	RegistryAddress   string
	HeartbeatAddress  string
	ReputationAddress string
	GovernorAddress   string

	MomentSize     uint64
	MomentBaseInfo MomentBaseInfo

	HostRegFee           uint64
	FixedRegFee          float64
	LeaseAcquireWindow   uint16
	HostHeartbeatFreq    uint16
	MaxTolerableDowntime uint16

	Reward     *RewardConfiguration     `toml:",omitempty" json:",omitempty"`
	RewardInfo *RewardInfo              `toml:",omitempty" json:",omitempty"`
	Governance *GovernanceConfiguration `toml:",omitempty" json:",omitempty"`
}

// GetConfig get client config
func GetConfig() *ClientConfig {
	configLock.RLock()
	defer configLock.RUnlock()
	return clientConfig
}

// SetConfig set client config
func SetConfig(config *ClientConfig) {
	configLock.Lock()
	defer configLock.Unlock()
	clientConfig = config
}

// GetIdentifier get identifier
func GetIdentifier() string {
	return GetConfig().Identifier
}

// GetClientAccount get the configured client account
func GetClientAccount() string {
	return GetConfig().Account
}

// LoadConfig load and check config only once
func LoadConfig(configFile string) *ClientConfig {
	loadConfigStarter.Do(func() {
		if err := reloadConfig(configFile); err != nil {
			log.Fatalf("LoadConfig error: %v", err)
		}
	})
	return GetConfig()
}

func reloadConfig(configFile string) error {
	if configFile == "" {
		return errNoConfigFile
	}
	if !common.FileExist(configFile) {
		return errConfigFileNotExist(configFile)
	}
	config := &ClientConfig{}
	if _, err := toml.DecodeFile(configFile, &config); err != nil {
		return err
	}
	if err := config.CheckConfig(); err != nil {
		return err
	}
	SetConfig(config)
	log.Info("load config success", "version", VersionWithMeta, "configFile", configFile, "config", common.ToJSONString(config, false))
	return nil
}
