package events

// Memo is one decoded transaction memo triple. Data is already decoded
// from the wire hex into raw bytes, Format tells how those bytes are to
// be interpreted.
type Memo struct {
	Type   string
	Format string
	Data   []byte
}

// memo formats recognized on the wire
const (
	MemoFormatText   = "text/plain"
	MemoFormatJSON   = "text/json"
	MemoFormatBase64 = "base64"
	MemoFormatHex    = "hex"
)

// HookParameter is one decoded hook parameter pair
type HookParameter struct {
	Name  string
	Value []byte
}

// Transaction is a normalized view of one observed ledger transaction.
// The transport layer owns fetching and validation, the classifier only
// reads this snapshot.
type Transaction struct {
	Type        string
	Hash        string
	Account     string
	Destination string
	Amount      string // delivered amount, drops or issued-currency value
	Currency    string
	LedgerIndex uint64
	CloseTime   int64 // unix timestamp of the containing ledger

	Memos          []Memo
	HookParameters []HookParameter

	// HasEmitDetails is set for transactions emitted by a hook rather
	// than signed by an account
	HasEmitDetails bool
}

// transaction types the classifier dispatches on
const (
	TxTypePayment     = "Payment"
	TxTypeURITokenBuy = "URITokenBuy"
	TxTypeInvoke      = "Invoke"
)

// Memo returns the first memo of the given type, or nil
func (tx *Transaction) Memo(memoType string) *Memo {
	for i := range tx.Memos {
		if tx.Memos[i].Type == memoType {
			return &tx.Memos[i]
		}
	}
	return nil
}

// HookParameter returns the value of the named hook parameter, or nil
func (tx *Transaction) HookParameter(name string) []byte {
	for i := range tx.HookParameters {
		if tx.HookParameters[i].Name == name {
			return tx.HookParameters[i].Value
		}
	}
	return nil
}

// EventType protocol event kind
type EventType string

// protocol event kinds
const (
	AcquireLease   EventType = "AcquireLease"
	AcquireSuccess EventType = "AcquireSuccess"
	AcquireError   EventType = "AcquireError"

	HostRegistered   EventType = "HostRegistered"
	HostDeregistered EventType = "HostDeregistered"
	HostRegUpdated   EventType = "HostRegUpdated"
	Heartbeat        EventType = "Heartbeat"

	ExtendLease    EventType = "ExtendLease"
	ExtendSuccess  EventType = "ExtendSuccess"
	ExtendError    EventType = "ExtendError"
	TerminateLease EventType = "TerminateLease"

	Initialized   EventType = "Initialized"
	DeadHostPrune EventType = "DeadHostPrune"
	HostRebate    EventType = "HostRebate"
	HostTransfer  EventType = "HostTransfer"

	CandidateProposed  EventType = "CandidateProposed"
	CandidateWithdrawn EventType = "CandidateWithdrawn"
	FoundationVoted    EventType = "FoundationVoted"
	DudHostReported    EventType = "DudHostReported"

	DudHostRemoved                EventType = "DudHostRemoved"
	DudHostStatusChanged          EventType = "DudHostStatusChanged"
	FallbackToPiloted             EventType = "FallbackToPiloted"
	NewHookStatusChanged          EventType = "NewHookStatusChanged"
	LinkedDudHostCandidateRemoved EventType = "LinkedDudHostCandidateRemoved"

	ChildHookUpdated      EventType = "ChildHookUpdated"
	GovernanceModeChanged EventType = "GovernanceModeChanged"
	HostReputationUpdated EventType = "HostReputationUpdated"
)

// Event is one classified protocol event. Created once per observed
// transaction, never retained by the engine; replaying the same
// transaction reproduces the identical value.
type Event struct {
	Name EventType
	Data interface{}
	Tx   *Transaction
}
