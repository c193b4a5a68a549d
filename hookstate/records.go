package hookstate

// HostAddressRecord is the per-host registry entry keyed by the host's
// account id. The caller merges it with the TokenIdRecord of the same
// host into one logical host record.
type HostAddressRecord struct {
	Address               string
	URITokenID            string
	CountryCode           string
	Description           string
	RegistrationLedger    uint64
	RegistrationFee       uint64
	MaxInstances          uint32
	ActiveInstances       uint32
	LastHeartbeatIndex    uint64
	Version               string
	RegistrationTimestamp uint64
	IsATransferer         bool
	LeaseAmount           float64 // only present in the extended layout
}

// RecordKind impl
func (r *HostAddressRecord) RecordKind() StateKeyType { return KeyHostAddr }

// LegacyHostAddressRecord is the first generation host registry entry.
// It survives only on historical ledgers.
type LegacyHostAddressRecord struct {
	Address      string
	Token        string
	TxHash       string
	InstanceSize string
	Location     string
}

// RecordKind impl
func (r *LegacyHostAddressRecord) RecordKind() StateKeyType { return KeyHostAddr }

// TokenIdRecord is the per-host registry entry keyed by the host's
// registration token id
type TokenIdRecord struct {
	Address                 string
	CPUModel                string
	CPUCount                uint16
	CPUSpeedMHz             uint16
	CPUMicrosec             uint32
	RAMMB                   uint32
	DiskMB                  uint32
	Email                   string
	AccumulatedRewardAmount float64
}

// RecordKind impl
func (r *TokenIdRecord) RecordKind() StateKeyType { return KeyTokenID }

// CandidateOwnerRecord is the governance candidate entry keyed by the
// proposer account: the four hook code hashes the proposal carries
type CandidateOwnerRecord struct {
	GovernorHookHash   string
	RegistryHookHash   string
	HeartbeatHookHash  string
	ReputationHookHash string
	UniqueID           string
}

// RecordKind impl
func (r *CandidateOwnerRecord) RecordKind() StateKeyType { return KeyCandidateOwner }

// CandidateIdRecord is the governance candidate entry keyed by the
// candidate id: ownership, vote tally and status. The candidate id
// itself is the lookup key, the data buffer does not repeat it.
type CandidateIdRecord struct {
	OwnerAddress          string
	Index                 uint32
	ShortName             string
	CreatedTimestamp      uint64
	ProposalFee           float64
	PositiveVoteCount     uint32
	LastVoteTimestamp     uint64
	Status                CandidateStatus
	StatusChangeTimestamp uint64
	FoundationVoteStatus  CandidateStatus
}

// RecordKind impl
func (r *CandidateIdRecord) RecordKind() StateKeyType { return KeyCandidateID }

// ReputationHostRecord is the per-host reputation entry, scoped to a
// moment. Later protocol revisions appended fields, so short buffers
// are legal and decoded field by field.
type ReputationHostRecord struct {
	Address      string
	Moment       uint64
	Score        float64
	HasScore     bool
	OrderedID    uint64
	HasOrderedID bool
}

// RecordKind impl
func (r *ReputationHostRecord) RecordKind() StateKeyType { return KeyReputationHostAddr }

// ReputationOrderRecord maps an ordered reputation slot of a moment
// back to the host that holds it
type ReputationOrderRecord struct {
	OrderedID uint64
	Moment    uint64
	Address   string
}

// RecordKind impl
func (r *ReputationOrderRecord) RecordKind() StateKeyType { return KeyReputationOrderedID }

// ReputationHostCountRecord is the number of reputation registrants of
// a moment
type ReputationHostCountRecord struct {
	Moment uint64
	Count  uint64
}

// RecordKind impl
func (r *ReputationHostCountRecord) RecordKind() StateKeyType { return KeyReputationHostCount }

// ReputationContractInfo is the contract info buffer a reputation host
// publishes: its HotPocket public key, peer port and the moment the
// instance was built for. The moment field is only trusted when it
// matches the currently queried moment.
type ReputationContractInfo struct {
	PubKey         string
	PeerPort       uint16
	InstanceMoment uint64
}
