package hookstate

// Hook state keys are 32 bytes wide. Every key starts with the "EVR"
// marker followed by one type byte that selects the record family; the
// remaining bytes carry the entity part (zero padded from the left).

// StateKeyType state key type
type StateKeyType byte

const (
	// KeyConfig fixed per-setting configuration scalars
	KeyConfig StateKeyType = 0x01
	// KeySingleton singleton aggregates (counters, base infos)
	KeySingleton StateKeyType = 0x02
	// KeyHostAddr per-host registry entry keyed by account id
	KeyHostAddr StateKeyType = 0x03
	// KeyTransfereeAddr pending transfer entry keyed by account id
	KeyTransfereeAddr StateKeyType = 0x04
	// KeyCandidateOwner governance candidate keyed by proposer account id
	KeyCandidateOwner StateKeyType = 0x05
	// KeyTokenID per-host registry entry keyed by registration token id
	KeyTokenID StateKeyType = 0x06
	// KeyCandidateID governance candidate keyed by candidate id
	KeyCandidateID StateKeyType = 0x07
	// KeyReputationHostCount per-moment registered host count (reputation hook)
	KeyReputationHostCount StateKeyType = 0x08
	// KeyReputationHostAddr per-host reputation entry (reputation hook)
	KeyReputationHostAddr StateKeyType = 0x09
	// KeyReputationOrderedID per-ordered-slot reputation entry (reputation hook)
	KeyReputationOrderedID StateKeyType = 0x0A
)

// evrPrefix marks every protocol state key
var evrPrefix = [3]byte{'E', 'V', 'R'}

// configuration scalar keys, "EVR" + 0x01 + zero pad + setting index
const (
	KeyEvrIssuerAddr           = "45565201000000000000000000000000000000000000000000000000000000" + "01"
	KeyFoundationAddr          = "45565201000000000000000000000000000000000000000000000000000000" + "02"
	KeyMomentSize              = "45565201000000000000000000000000000000000000000000000000000000" + "03"
	KeyMintLimit               = "45565201000000000000000000000000000000000000000000000000000000" + "04"
	KeyFixedRegFee             = "45565201000000000000000000000000000000000000000000000000000000" + "05"
	KeyHostHeartbeatFreq       = "45565201000000000000000000000000000000000000000000000000000000" + "06"
	KeyLeaseAcquireWindow      = "45565201000000000000000000000000000000000000000000000000000000" + "07"
	KeyRewardConfiguration     = "45565201000000000000000000000000000000000000000000000000000000" + "08"
	KeyMaxTolerableDowntime    = "45565201000000000000000000000000000000000000000000000000000000" + "09"
	KeyMomentTransitInfo       = "45565201000000000000000000000000000000000000000000000000000000" + "0A"
	KeyMaxTrxEmissionFee       = "45565201000000000000000000000000000000000000000000000000000000" + "0B"
	KeyHeartbeatAddr           = "45565201000000000000000000000000000000000000000000000000000000" + "0C"
	KeyRegistryAddr            = "45565201000000000000000000000000000000000000000000000000000000" + "0D"
	KeyGovernanceConfiguration = "45565201000000000000000000000000000000000000000000000000000000" + "0E"
	KeyNetworkConfiguration    = "45565201000000000000000000000000000000000000000000000000000000" + "0F"
	KeyReputationAddr          = "45565201000000000000000000000000000000000000000000000000000000" + "10"
)

// singleton aggregate keys, "EVR" + 0x02 + zero pad + index
const (
	KeyHostCount      = "45565202000000000000000000000000000000000000000000000000000000" + "01"
	KeyMomentBaseInfo = "45565202000000000000000000000000000000000000000000000000000000" + "02"
	KeyHostRegFee     = "45565202000000000000000000000000000000000000000000000000000000" + "03"
	KeyMaxRegistrants = "45565202000000000000000000000000000000000000000000000000000000" + "04"
	KeyRewardInfo     = "45565202000000000000000000000000000000000000000000000000000000" + "05"
	KeyGovernanceInfo = "45565202000000000000000000000000000000000000000000000000000000" + "06"
	KeyTrxFeeBaseInfo = "45565202000000000000000000000000000000000000000000000000000000" + "07"
)

// fixed state data sizes
const (
	HostAddrDataSize       = 112
	HostAddrLeaseDataSize  = 120 // later revision appends an 8 byte XFL lease amount
	TokenIDDataSize        = 124
	CandidateOwnerDataSize = 128
	CandidateIDDataSize    = 82
	LegacyHostAddrDataSize = 104

	ReputationContractInfoMinSize = 43
)

// HostAddressRecord field offsets
const (
	hostTokenIDOffset          = 0
	hostCountryCodeOffset      = 32
	hostReservedOffset         = 34
	hostDescriptionOffset      = 42
	hostRegLedgerOffset        = 68
	hostRegFeeOffset           = 76
	hostTotInstanceCountOffset = 84
	hostActInstanceCountOffset = 88
	hostHeartbeatIndexOffset   = 92
	hostVersionOffset          = 100
	hostRegTimestampOffset     = 103
	hostTransferFlagOffset     = 111
	hostLeaseAmountOffset      = 112
)

// TokenIdRecord field offsets
const (
	tokenHostAddressOffset       = 0
	tokenCPUModelOffset          = 20
	tokenCPUCountOffset          = 60
	tokenCPUSpeedOffset          = 62
	tokenCPUMicrosecOffset       = 64
	tokenRAMMBOffset             = 68
	tokenDiskMBOffset            = 72
	tokenEmailOffset             = 76
	tokenAccumulatedRewardOffset = 116
)

// CandidateIdRecord field offsets
const (
	candOwnerAddressOffset          = 0
	candIndexOffset                 = 20
	candShortNameOffset             = 24
	candCreatedTimestampOffset      = 44
	candProposalFeeOffset           = 52
	candPositiveVoteCountOffset     = 60
	candLastVoteTimestampOffset     = 64
	candStatusOffset                = 72
	candStatusChangeTimestampOffset = 73
	candFoundationVoteStatusOffset  = 81
)

// legacy generation HostAddressRecord field offsets (raw bytes)
const (
	legacyHostTokenOffset        = 4
	legacyHostTxHashOffset       = 7
	legacyHostInstanceSizeOffset = 39
	legacyHostLocationOffset     = 99

	legacyHostTokenSize        = 3
	legacyHostInstanceSizeSize = 30
	legacyHostLocationSize     = 5
)

// reputation contract info buffer offsets
const (
	repInfoPubkeyOffset         = 0
	repInfoPeerPortOffset       = 33
	repInfoInstanceMomentOffset = 35
)

// CandidateStatus candidate vote status byte
type CandidateStatus byte

// candidate status values
const (
	CandidateRejected  CandidateStatus = 0
	CandidateSupported CandidateStatus = 1
	CandidateElected   CandidateStatus = 2
	CandidatePurged    CandidateStatus = 3
)
