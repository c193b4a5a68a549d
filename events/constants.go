package events

// Hook parameter names of the current protocol generation. The event
// type rides in one parameter; event data is split across two
// parameters when it exceeds the chunk size.
const (
	ParamEventType  = "evnEventType"
	ParamEventData1 = "evnEventData1"
	ParamEventData2 = "evnEventData2"

	// eventDataChunkSize is the split point for oversized event data
	eventDataChunkSize = 256
)

// event type tags, shared by current hook parameters and legacy memo
// types
const (
	tagAcquireLease   = "evnAcquireLease"
	tagAcquireSuccess = "evnAcquireSuccess"
	tagAcquireError   = "evnAcquireError"

	tagHostReg       = "evnHostReg"
	tagHostDereg     = "evnHostDereg"
	tagHostUpdateReg = "evnHostUpdateReg"
	tagHeartbeat     = "evnHeartbeat"

	tagExtendLease    = "evnExtendLease"
	tagExtendSuccess  = "evnExtendSuccess"
	tagExtendError    = "evnExtendError"
	tagTerminateLease = "evnTerminateLease"

	tagInitialize    = "evnInitialize"
	tagDeadHostPrune = "evnDeadHostPrune"
	tagHostRebate    = "evnHostRebate"
	tagTransfer      = "evnTransfer"

	tagCandidatePropose      = "evnCandidatePropose"
	tagCandidateWithdraw     = "evnCandidateWithdraw"
	tagCandidateVote         = "evnCandidateVote"
	tagDudHostReport         = "evnDudHostReport"
	tagCandidateStatusChange = "evnCandidateStatusChange"
	tagLinkedCandidateRemove = "evnLinkedCandidateRemove"

	tagHookUpdate           = "evnHookUpdate"
	tagGovernanceModeChange = "evnGovernanceModeChange"
	tagHostSendReputation   = "evnHostSendReputation"
)

// fixed payload sizes
const (
	// candidate propose payload:
	// hookHashes(128) keylets(136) uniqueId(32) shortName(20)
	proposeHashesSize    = 128
	proposeKeyletsSize   = 136
	proposeUniqueIDSize  = 32
	proposeShortNameSize = 20
	ProposePayloadSize   = proposeHashesSize + proposeKeyletsSize + proposeUniqueIDSize + proposeShortNameSize

	// host deregistration payload of the reputation initiated path:
	// hostAddress(20) tokenId(32) errorFlag(1)
	DeregPayloadSize = 53

	// candidate status payloads: candidateId(32) plus one byte
	candidateIDSize = 32
)

// encrypted acquire payload flag
const payloadFormatEncrypted = 1
