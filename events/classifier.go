package events

import (
	"encoding/json"

	"github.com/evernode-go/evernode-client/candidate"
	"github.com/evernode-go/evernode-client/common"
	"github.com/evernode-go/evernode-client/hookstate"
	"github.com/evernode-go/evernode-client/xrpl"
)

// TxClassifier maps one observed transaction to at most one protocol
// event. A nil event with a nil error means "no event": the transaction
// is not part of the protocol. Classification is pure, replaying the
// same transaction produces the identical result.
type TxClassifier interface {
	Classify(tx *Transaction) (*Event, error)
}

// Classifier recognizes the current protocol generation, where the
// event rides in hook parameters and at most two memos.
type Classifier struct {
	// Account is this client's address; encrypted payloads are only
	// handed to the decipherer when this account is the destination
	Account    string
	Decipherer Decipherer
}

// NewClassifier new current generation classifier
func NewClassifier(account string, decipherer Decipherer) *Classifier {
	return &Classifier{Account: account, Decipherer: decipherer}
}

type dispatchKey struct {
	txType string
	tag    string
}

type handlerFunc func(c *Classifier, tx *Transaction, data []byte) (*Event, error)

// dispatchTable keys every recognized event by (transactionType,
// eventTypeTag). Keys are unique by construction, so exactly one rule
// can match a transaction and rule order cannot matter.
var dispatchTable = map[dispatchKey]handlerFunc{
	{TxTypeURITokenBuy, tagAcquireLease}: handleAcquireLease,
	{TxTypePayment, tagAcquireLease}:     handleAcquireLease,
	{TxTypePayment, tagAcquireSuccess}:   handleAcquireSuccess,
	{TxTypePayment, tagAcquireError}:     handleAcquireError,

	{TxTypePayment, tagHostReg}:       handleHostReg,
	{TxTypePayment, tagHostDereg}:     handleHostDereg,
	{TxTypePayment, tagHostUpdateReg}: handleHostUpdateReg,
	{TxTypeInvoke, tagHeartbeat}:      handleHeartbeat,
	{TxTypePayment, tagHeartbeat}:     handleHeartbeat,

	{TxTypePayment, tagExtendLease}:    handleExtendLease,
	{TxTypePayment, tagExtendSuccess}:  handleExtendSuccess,
	{TxTypePayment, tagExtendError}:    handleExtendError,
	{TxTypePayment, tagTerminateLease}: handleTerminateLease,
	{TxTypeInvoke, tagTerminateLease}:  handleTerminateLease,

	{TxTypePayment, tagInitialize}:    handleInitialize,
	{TxTypeInvoke, tagInitialize}:     handleInitialize,
	{TxTypePayment, tagDeadHostPrune}: handleDeadHostPrune,
	{TxTypePayment, tagHostRebate}:    handleHostRebate,
	{TxTypePayment, tagTransfer}:      handleTransfer,

	{TxTypeInvoke, tagCandidatePropose}:       handleCandidatePropose,
	{TxTypeInvoke, tagCandidateWithdraw}:      handleCandidateWithdraw,
	{TxTypePayment, tagCandidateVote}:         handleCandidateVote,
	{TxTypeInvoke, tagDudHostReport}:          handleDudHostReport,
	{TxTypePayment, tagCandidateStatusChange}: handleCandidateStatusChange,
	{TxTypePayment, tagLinkedCandidateRemove}: handleLinkedCandidateRemove,

	{TxTypePayment, tagHookUpdate}:           handleHookUpdate,
	{TxTypeInvoke, tagGovernanceModeChange}:  handleGovernanceModeChange,
	{TxTypePayment, tagGovernanceModeChange}: handleGovernanceModeChange,
	{TxTypeInvoke, tagHostSendReputation}:    handleHostSendReputation,
}

// Classify impl
func (c *Classifier) Classify(tx *Transaction) (*Event, error) {
	if tx == nil {
		return nil, nil
	}
	tag := string(tx.HookParameter(ParamEventType))
	if tag == "" {
		return nil, nil
	}
	handler, ok := dispatchTable[dispatchKey{tx.Type, tag}]
	if !ok {
		return nil, nil
	}
	return handler(c, tx, c.eventData(tx))
}

// eventData reassembles the event data parameter, concatenating the
// second chunk when the payload was split at the chunk boundary
func (c *Classifier) eventData(tx *Transaction) []byte {
	part1 := tx.HookParameter(ParamEventData1)
	if part1 == nil {
		return nil
	}
	part2 := tx.HookParameter(ParamEventData2)
	if part2 == nil {
		return part1
	}
	data := make([]byte, 0, len(part1)+len(part2))
	data = append(data, part1...)
	data = append(data, part2...)
	return data
}

// leasePayload extracts and, when addressed to this client, decrypts a
// lease payload memo. The first payload byte is a format flag: 1 means
// the remainder is encrypted, anything else means literal JSON. A
// failed decrypt degrades to the pre-decryption form; the caller owns
// reporting it.
func (c *Classifier) leasePayload(tx *Transaction, memoType string) (payload string, encrypted, ok bool) {
	memo := tx.Memo(memoType)
	if memo == nil || len(memo.Data) == 0 {
		return "", false, false
	}
	flag, body := memo.Data[0], memo.Data[1:]
	if flag != payloadFormatEncrypted {
		return string(body), false, true
	}
	if c.Decipherer != nil && common.IsEqualIgnoreCase(c.Account, tx.Destination) {
		plain, err := c.Decipherer.Decipher(body)
		if err == nil && plain != nil {
			return string(plain), false, true
		}
	}
	return common.ToHex(body), true, true
}

func handleAcquireLease(c *Classifier, tx *Transaction, data []byte) (*Event, error) {
	payload, encrypted, ok := c.leasePayload(tx, tagAcquireLease)
	if !ok {
		return nil, nil
	}
	return &Event{Name: AcquireLease, Tx: tx, Data: &AcquireLeaseData{
		Host:        tx.Destination,
		Tenant:      tx.Account,
		Payload:     payload,
		IsEncrypted: encrypted,
	}}, nil
}

func handleAcquireSuccess(c *Classifier, tx *Transaction, data []byte) (*Event, error) {
	if len(data) < 32 {
		return nil, nil
	}
	payload, encrypted, ok := c.leasePayload(tx, tagAcquireSuccess)
	if !ok {
		return nil, nil
	}
	return &Event{Name: AcquireSuccess, Tx: tx, Data: &AcquireResponseData{
		AcquireRefID: common.ToHex(data[:32]),
		Payload:      payload,
		Reason:       reasonOf(payload, encrypted),
	}}, nil
}

func handleAcquireError(c *Classifier, tx *Transaction, data []byte) (*Event, error) {
	if len(data) < 32 {
		return nil, nil
	}
	memo := tx.Memo(tagAcquireError)
	if memo == nil {
		return nil, nil
	}
	return &Event{Name: AcquireError, Tx: tx, Data: &AcquireResponseData{
		AcquireRefID: common.ToHex(data[:32]),
		Payload:      string(memo.Data),
		Reason:       reasonOf(string(memo.Data), false),
	}}, nil
}

// reasonOf pulls the "reason" field out of a JSON error payload
func reasonOf(payload string, encrypted bool) string {
	if encrypted {
		return ""
	}
	var body struct {
		Reason string `json:"reason"`
	}
	if err := json.Unmarshal([]byte(payload), &body); err != nil {
		return ""
	}
	return body.Reason
}

func handleHostReg(c *Classifier, tx *Transaction, data []byte) (*Event, error) {
	return &Event{Name: HostRegistered, Tx: tx, Data: &HostRegistrationData{
		Host:    tx.Account,
		Payload: string(data),
	}}, nil
}

func handleHostDereg(c *Classifier, tx *Transaction, data []byte) (*Event, error) {
	dereg, err := decodeDeregPayload(tx, data)
	if err != nil {
		return nil, nil
	}
	return &Event{Name: HostDeregistered, Tx: tx, Data: dereg}, nil
}

func handleHostUpdateReg(c *Classifier, tx *Transaction, data []byte) (*Event, error) {
	return &Event{Name: HostRegUpdated, Tx: tx, Data: &HostRegistrationData{
		Host:    tx.Account,
		Payload: string(data),
	}}, nil
}

func handleHeartbeat(c *Classifier, tx *Transaction, data []byte) (*Event, error) {
	return &Event{Name: Heartbeat, Tx: tx, Data: &HeartbeatData{
		Host: tx.Account,
		Vote: decodeCandidateVote(data),
	}}, nil
}

func handleExtendLease(c *Classifier, tx *Transaction, data []byte) (*Event, error) {
	if len(data) < 32 {
		return nil, nil
	}
	return &Event{Name: ExtendLease, Tx: tx, Data: &ExtendLeaseData{
		Host:    tx.Destination,
		Tenant:  tx.Account,
		TokenID: common.ToHex(data[:32]),
		Amount:  tx.Amount,
	}}, nil
}

func handleExtendSuccess(c *Classifier, tx *Transaction, data []byte) (*Event, error) {
	if len(data) < 36 {
		return nil, nil
	}
	return &Event{Name: ExtendSuccess, Tx: tx, Data: &ExtendResponseData{
		ExtendRefID:  common.ToHex(data[:32]),
		ExpiryMoment: uint32At(data, 32),
	}}, nil
}

func handleExtendError(c *Classifier, tx *Transaction, data []byte) (*Event, error) {
	if len(data) < 32 {
		return nil, nil
	}
	memo := tx.Memo(tagExtendError)
	if memo == nil {
		return nil, nil
	}
	return &Event{Name: ExtendError, Tx: tx, Data: &ExtendResponseData{
		ExtendRefID: common.ToHex(data[:32]),
		Reason:      reasonOf(string(memo.Data), false),
	}}, nil
}

func handleTerminateLease(c *Classifier, tx *Transaction, data []byte) (*Event, error) {
	if len(data) < 32 {
		return nil, nil
	}
	return &Event{Name: TerminateLease, Tx: tx, Data: &TerminateLeaseData{
		Tenant:  tx.Account,
		TokenID: common.ToHex(data[:32]),
	}}, nil
}

func handleInitialize(c *Classifier, tx *Transaction, data []byte) (*Event, error) {
	return &Event{Name: Initialized, Tx: tx}, nil
}

func handleDeadHostPrune(c *Classifier, tx *Transaction, data []byte) (*Event, error) {
	if len(data) < 20 {
		return nil, nil
	}
	host, err := xrpl.NewAccountFromBytes(data[:20])
	if err != nil {
		return nil, nil
	}
	return &Event{Name: DeadHostPrune, Tx: tx, Data: &DeadHostPruneData{Host: host.String()}}, nil
}

func handleHostRebate(c *Classifier, tx *Transaction, data []byte) (*Event, error) {
	return &Event{Name: HostRebate, Tx: tx, Data: &HostRebateData{Host: tx.Account}}, nil
}

func handleTransfer(c *Classifier, tx *Transaction, data []byte) (*Event, error) {
	transferee := tx.Destination
	if len(data) >= 20 {
		account, err := xrpl.NewAccountFromBytes(data[:20])
		if err != nil {
			return nil, nil
		}
		transferee = account.String()
	}
	return &Event{Name: HostTransfer, Tx: tx, Data: &HostTransferData{
		Host:       tx.Account,
		Transferee: transferee,
	}}, nil
}

func handleCandidatePropose(c *Classifier, tx *Transaction, data []byte) (*Event, error) {
	propose, err := decodeProposePayload(tx.Account, data)
	if err != nil {
		return nil, nil
	}
	return &Event{Name: CandidateProposed, Tx: tx, Data: propose}, nil
}

func handleCandidateWithdraw(c *Classifier, tx *Transaction, data []byte) (*Event, error) {
	if len(data) < candidateIDSize {
		return nil, nil
	}
	return &Event{Name: CandidateWithdrawn, Tx: tx, Data: &CandidateData{
		CandidateID: common.ToHex(data[:candidateIDSize]),
		Owner:       tx.Account,
	}}, nil
}

func handleCandidateVote(c *Classifier, tx *Transaction, data []byte) (*Event, error) {
	vote := decodeCandidateVote(data)
	if vote == nil {
		return nil, nil
	}
	return &Event{Name: FoundationVoted, Tx: tx, Data: vote}, nil
}

func handleDudHostReport(c *Classifier, tx *Transaction, data []byte) (*Event, error) {
	id, ok := candidateIDOf(data)
	if !ok {
		return nil, nil
	}
	host, _ := candidate.DudHostAddressFromCandidateID(id)
	return &Event{Name: DudHostReported, Tx: tx, Data: &CandidateStatusData{
		CandidateID: id.String(),
		Host:        host,
	}}, nil
}

// handleCandidateStatusChange fans the one status change signal out
// into its four event kinds. Candidate classification is the single
// source of truth for the split.
func handleCandidateStatusChange(c *Classifier, tx *Transaction, data []byte) (*Event, error) {
	if len(data) < candidateIDSize+1 {
		return nil, nil
	}
	id, ok := candidateIDOf(data[:candidateIDSize])
	if !ok {
		return nil, nil
	}
	status := hookstate.CandidateStatus(data[candidateIDSize])
	payload := &CandidateStatusData{
		CandidateID: id.String(),
		Status:      status,
	}
	var name EventType
	switch candidate.Classify(id) {
	case candidate.TypeDudHost:
		payload.Host, _ = candidate.DudHostAddressFromCandidateID(id)
		if status == hookstate.CandidateElected {
			name = DudHostRemoved
		} else {
			name = DudHostStatusChanged
		}
	case candidate.TypePilotedMode:
		name = FallbackToPiloted
	default:
		name = NewHookStatusChanged
	}
	return &Event{Name: name, Tx: tx, Data: payload}, nil
}

func handleLinkedCandidateRemove(c *Classifier, tx *Transaction, data []byte) (*Event, error) {
	id, ok := candidateIDOf(data)
	if !ok {
		return nil, nil
	}
	return &Event{Name: LinkedDudHostCandidateRemoved, Tx: tx, Data: &CandidateData{
		CandidateID: id.String(),
	}}, nil
}

func handleHookUpdate(c *Classifier, tx *Transaction, data []byte) (*Event, error) {
	if len(data) < 52 {
		return nil, nil
	}
	account, err := xrpl.NewAccountFromBytes(data[:20])
	if err != nil {
		return nil, nil
	}
	return &Event{Name: ChildHookUpdated, Tx: tx, Data: &ChildHookUpdateData{
		Account:  account.String(),
		HookHash: common.ToHex(data[20:52]),
	}}, nil
}

func handleGovernanceModeChange(c *Classifier, tx *Transaction, data []byte) (*Event, error) {
	if len(data) < 1 {
		return nil, nil
	}
	return &Event{Name: GovernanceModeChanged, Tx: tx, Data: &GovernanceModeData{Mode: data[0]}}, nil
}

func handleHostSendReputation(c *Classifier, tx *Transaction, data []byte) (*Event, error) {
	if len(data) == 0 {
		return nil, nil
	}
	return &Event{Name: HostReputationUpdated, Tx: tx, Data: &HostReputationData{
		Host:   tx.Account,
		Scores: common.ToHex(data),
	}}, nil
}

func candidateIDOf(data []byte) (xrpl.Hash256, bool) {
	if len(data) < candidateIDSize {
		return xrpl.Hash256{}, false
	}
	id, err := xrpl.NewHash256(data[:candidateIDSize])
	if err != nil {
		return xrpl.Hash256{}, false
	}
	return *id, true
}
