package events

import (
	"github.com/evernode-go/evernode-client/common"
	"github.com/evernode-go/evernode-client/xrpl"
)

// LegacyClassifier recognizes the retired protocol generation, where
// the event type and data were carried entirely in typed memo triples:
// the first memo holds the event, the second an optional reference
// transaction hash. It survives so historical ledgers stay readable.
type LegacyClassifier struct {
	Account    string
	Decipherer Decipherer
}

// NewLegacyClassifier new legacy generation classifier
func NewLegacyClassifier(account string, decipherer Decipherer) *LegacyClassifier {
	return &LegacyClassifier{Account: account, Decipherer: decipherer}
}

// Classify impl
func (c *LegacyClassifier) Classify(tx *Transaction) (*Event, error) {
	if tx == nil || len(tx.Memos) == 0 {
		return nil, nil
	}
	memo := tx.Memos[0]
	switch memo.Type {
	case tagAcquireLease:
		payload, encrypted := c.legacyLeasePayload(tx, memo.Data)
		return &Event{Name: AcquireLease, Tx: tx, Data: &AcquireLeaseData{
			Host:        tx.Destination,
			Tenant:      tx.Account,
			Payload:     payload,
			IsEncrypted: encrypted,
		}}, nil
	case tagAcquireSuccess:
		ref, ok := c.refMemo(tx)
		if !ok {
			return nil, nil
		}
		payload, encrypted := c.legacyLeasePayload(tx, memo.Data)
		return &Event{Name: AcquireSuccess, Tx: tx, Data: &AcquireResponseData{
			AcquireRefID: ref,
			Payload:      payload,
			Reason:       reasonOf(payload, encrypted),
		}}, nil
	case tagAcquireError:
		ref, ok := c.refMemo(tx)
		if !ok {
			return nil, nil
		}
		return &Event{Name: AcquireError, Tx: tx, Data: &AcquireResponseData{
			AcquireRefID: ref,
			Payload:      string(memo.Data),
			Reason:       reasonOf(string(memo.Data), false),
		}}, nil
	case tagHostReg:
		return &Event{Name: HostRegistered, Tx: tx, Data: &HostRegistrationData{
			Host:    tx.Account,
			Payload: string(memo.Data),
		}}, nil
	case tagHostDereg:
		return c.classifyDereg(tx, memo.Data)
	case tagHostUpdateReg:
		return &Event{Name: HostRegUpdated, Tx: tx, Data: &HostRegistrationData{
			Host:    tx.Account,
			Payload: string(memo.Data),
		}}, nil
	case tagHeartbeat:
		return &Event{Name: Heartbeat, Tx: tx, Data: &HeartbeatData{Host: tx.Account}}, nil
	case tagExtendLease:
		if len(memo.Data) < 32 {
			return nil, nil
		}
		return &Event{Name: ExtendLease, Tx: tx, Data: &ExtendLeaseData{
			Host:    tx.Destination,
			Tenant:  tx.Account,
			TokenID: common.ToHex(memo.Data[:32]),
			Amount:  tx.Amount,
		}}, nil
	case tagExtendSuccess:
		ref, ok := c.refMemo(tx)
		if !ok {
			return nil, nil
		}
		return &Event{Name: ExtendSuccess, Tx: tx, Data: &ExtendResponseData{
			ExtendRefID: ref,
		}}, nil
	case tagExtendError:
		ref, ok := c.refMemo(tx)
		if !ok {
			return nil, nil
		}
		return &Event{Name: ExtendError, Tx: tx, Data: &ExtendResponseData{
			ExtendRefID: ref,
			Reason:      reasonOf(string(memo.Data), false),
		}}, nil
	case tagInitialize:
		return &Event{Name: Initialized, Tx: tx}, nil
	case tagDeadHostPrune:
		if len(memo.Data) < 20 {
			return nil, nil
		}
		host, err := xrpl.NewAccountFromBytes(memo.Data[:20])
		if err != nil {
			return nil, nil
		}
		return &Event{Name: DeadHostPrune, Tx: tx, Data: &DeadHostPruneData{Host: host.String()}}, nil
	case tagHostRebate:
		return &Event{Name: HostRebate, Tx: tx, Data: &HostRebateData{Host: tx.Account}}, nil
	case tagTransfer:
		transferee := tx.Destination
		if len(memo.Data) >= 20 {
			account, err := xrpl.NewAccountFromBytes(memo.Data[:20])
			if err != nil {
				return nil, nil
			}
			transferee = account.String()
		}
		return &Event{Name: HostTransfer, Tx: tx, Data: &HostTransferData{
			Host:       tx.Account,
			Transferee: transferee,
		}}, nil
	default:
		return nil, nil
	}
}

// classifyDereg mirrors the two payload shapes of the current
// generation. The retired implementation ran the address bytes of the
// reputation initiated shape through the encoder where a decoder was
// meant; the intended direction, raw bytes to r-address, is the
// contract here (pinned by a test).
func (c *LegacyClassifier) classifyDereg(tx *Transaction, payload []byte) (*Event, error) {
	dereg, err := decodeDeregPayload(tx, payload)
	if err != nil {
		return nil, nil
	}
	return &Event{Name: HostDeregistered, Tx: tx, Data: dereg}, nil
}

// legacyLeasePayload applies the flag-and-decrypt rule to a legacy
// lease payload carried directly in the memo data
func (c *LegacyClassifier) legacyLeasePayload(tx *Transaction, body []byte) (payload string, encrypted bool) {
	if len(body) == 0 {
		return "", false
	}
	flag, rest := body[0], body[1:]
	if flag != payloadFormatEncrypted {
		return string(rest), false
	}
	if c.Decipherer != nil && common.IsEqualIgnoreCase(c.Account, tx.Destination) {
		plain, err := c.Decipherer.Decipher(rest)
		if err == nil && plain != nil {
			return string(plain), false
		}
	}
	return common.ToHex(rest), true
}

// refMemo reads the reference transaction hash out of the second memo
func (c *LegacyClassifier) refMemo(tx *Transaction) (string, bool) {
	if len(tx.Memos) < 2 || len(tx.Memos[1].Data) != 32 {
		return "", false
	}
	return common.ToHex(tx.Memos[1].Data), true
}

// AutoClassifier probes the transaction shape and delegates to the
// matching generation: hook parameters select the current rules,
// plain memos the legacy ones.
type AutoClassifier struct {
	current *Classifier
	legacy  *LegacyClassifier
}

// NewAutoClassifier new generation probing classifier
func NewAutoClassifier(account string, decipherer Decipherer) *AutoClassifier {
	return &AutoClassifier{
		current: NewClassifier(account, decipherer),
		legacy:  NewLegacyClassifier(account, decipherer),
	}
}

// Classify impl
func (a *AutoClassifier) Classify(tx *Transaction) (*Event, error) {
	if tx == nil {
		return nil, nil
	}
	if tx.HookParameter(ParamEventType) != nil {
		return a.current.Classify(tx)
	}
	return a.legacy.Classify(tx)
}
