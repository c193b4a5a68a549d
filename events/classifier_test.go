package events

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/evernode-go/evernode-client/candidate"
	"github.com/evernode-go/evernode-client/common"
	"github.com/evernode-go/evernode-client/hookstate"
	"github.com/evernode-go/evernode-client/xrpl"
)

const (
	testHostAddr   = "rHb9CJAWyB4rj91VRWn96DkukG4bwdtyTh"
	testTenantAddr = "rKLpjpCoXgLQQYQyj13zgay73rsgmzNH13"
)

func testAccount(t *testing.T, b byte) xrpl.Account {
	account, err := xrpl.NewAccountFromBytes([]byte{
		b, b, b, b, b, b, b, b, b, b, b, b, b, b, b, b, b, b, b, b,
	})
	assert.NoError(t, err)
	return *account
}

func paramTx(txType, tag string, data []byte) *Transaction {
	tx := &Transaction{
		Type:        txType,
		Hash:        strings.Repeat("00", 32),
		Account:     testTenantAddr,
		Destination: testHostAddr,
		HookParameters: []HookParameter{
			{Name: ParamEventType, Value: []byte(tag)},
		},
	}
	if data != nil {
		if len(data) > eventDataChunkSize {
			tx.HookParameters = append(tx.HookParameters,
				HookParameter{Name: ParamEventData1, Value: data[:eventDataChunkSize]},
				HookParameter{Name: ParamEventData2, Value: data[eventDataChunkSize:]})
		} else {
			tx.HookParameters = append(tx.HookParameters,
				HookParameter{Name: ParamEventData1, Value: data})
		}
	}
	return tx
}

func TestClassifyNoEvent(t *testing.T) {
	c := NewClassifier(testHostAddr, nil)

	tests := []struct {
		name string
		tx   *Transaction
	}{
		{"nil tx", nil},
		{"no hook parameters", &Transaction{Type: TxTypePayment, Account: testTenantAddr}},
		{"unknown tag", paramTx(TxTypePayment, "evnNoSuchEvent", nil)},
		{"tag on wrong tx type", paramTx("URITokenCreateSellOffer", tagHostReg, nil)},
		{"propose on payment", paramTx(TxTypePayment, tagCandidatePropose, make([]byte, ProposePayloadSize))},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			event, err := c.Classify(tt.tx)
			assert.NoError(t, err)
			assert.Nil(t, event)
		})
	}
}

func TestClassifyMalformedDataIsNoEvent(t *testing.T) {
	c := NewClassifier(testHostAddr, nil)

	tests := []struct {
		name string
		tx   *Transaction
	}{
		{"short extend lease", paramTx(TxTypePayment, tagExtendLease, make([]byte, 16))},
		{"short propose", paramTx(TxTypeInvoke, tagCandidatePropose, make([]byte, 100))},
		{"short candidate vote", paramTx(TxTypePayment, tagCandidateVote, make([]byte, 10))},
		{"short hook update", paramTx(TxTypePayment, tagHookUpdate, make([]byte, 51))},
		{"empty governance mode", paramTx(TxTypeInvoke, tagGovernanceModeChange, nil)},
		{"acquire without memo", paramTx(TxTypeURITokenBuy, tagAcquireLease, nil)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			event, err := c.Classify(tt.tx)
			assert.NoError(t, err)
			assert.Nil(t, event)
		})
	}
}

func TestClassifyIsPure(t *testing.T) {
	c := NewClassifier(testHostAddr, nil)
	tx := paramTx(TxTypePayment, tagHostReg, []byte("host spec payload"))
	first, err := c.Classify(tx)
	assert.NoError(t, err)
	second, err := c.Classify(tx)
	assert.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestClassifyAcquireLease(t *testing.T) {
	plain := []byte(`{"type":"create","owner_pubkey":"ed1234"}`)

	leaseTx := func(payload []byte) *Transaction {
		tx := paramTx(TxTypeURITokenBuy, tagAcquireLease, nil)
		tx.Memos = []Memo{{Type: tagAcquireLease, Format: MemoFormatBase64, Data: payload}}
		return tx
	}

	t.Run("plain payload", func(t *testing.T) {
		c := NewClassifier(testHostAddr, nil)
		event, err := c.Classify(leaseTx(append([]byte{0}, plain...)))
		assert.NoError(t, err)
		assert.Equal(t, AcquireLease, event.Name)
		data := event.Data.(*AcquireLeaseData)
		assert.Equal(t, testHostAddr, data.Host)
		assert.Equal(t, testTenantAddr, data.Tenant)
		assert.Equal(t, string(plain), data.Payload)
		assert.False(t, data.IsEncrypted)
	})

	t.Run("encrypted payload decrypted for the destination", func(t *testing.T) {
		cipher := []byte{0xDE, 0xAD, 0xBE, 0xEF}
		c := NewClassifier(testHostAddr, DecipherFunc(func(payload []byte) ([]byte, error) {
			assert.Equal(t, cipher, payload)
			return plain, nil
		}))
		event, err := c.Classify(leaseTx(append([]byte{payloadFormatEncrypted}, cipher...)))
		assert.NoError(t, err)
		data := event.Data.(*AcquireLeaseData)
		assert.Equal(t, string(plain), data.Payload)
		assert.False(t, data.IsEncrypted)
	})

	t.Run("decrypt failure degrades to the raw payload", func(t *testing.T) {
		cipher := []byte{0xDE, 0xAD, 0xBE, 0xEF}
		c := NewClassifier(testHostAddr, DecipherFunc(func(payload []byte) ([]byte, error) {
			return nil, errors.New("wrong key")
		}))
		event, err := c.Classify(leaseTx(append([]byte{payloadFormatEncrypted}, cipher...)))
		assert.NoError(t, err)
		data := event.Data.(*AcquireLeaseData)
		assert.Equal(t, common.ToHex(cipher), data.Payload)
		assert.True(t, data.IsEncrypted)
	})

	t.Run("not the destination, no decrypt attempt", func(t *testing.T) {
		cipher := []byte{0xDE, 0xAD, 0xBE, 0xEF}
		c := NewClassifier(testTenantAddr, DecipherFunc(func(payload []byte) ([]byte, error) {
			t.Fatal("decipherer must not be called for other destinations")
			return nil, nil
		}))
		event, err := c.Classify(leaseTx(append([]byte{payloadFormatEncrypted}, cipher...)))
		assert.NoError(t, err)
		data := event.Data.(*AcquireLeaseData)
		assert.Equal(t, common.ToHex(cipher), data.Payload)
		assert.True(t, data.IsEncrypted)
	})
}

func TestClassifyAcquireResponses(t *testing.T) {
	c := NewClassifier(testTenantAddr, nil)
	refID := make([]byte, 32)
	for i := range refID {
		refID[i] = 0xC4
	}

	successTx := paramTx(TxTypePayment, tagAcquireSuccess, refID)
	successTx.Memos = []Memo{{Type: tagAcquireSuccess, Format: MemoFormatBase64,
		Data: append([]byte{0}, []byte(`{"ip":"10.0.0.1","user_port":22861}`)...)}}
	event, err := c.Classify(successTx)
	assert.NoError(t, err)
	assert.Equal(t, AcquireSuccess, event.Name)
	success := event.Data.(*AcquireResponseData)
	assert.Equal(t, common.ToHex(refID), success.AcquireRefID)
	assert.Contains(t, success.Payload, "10.0.0.1")
	assert.Empty(t, success.Reason)

	errorTx := paramTx(TxTypePayment, tagAcquireError, refID)
	errorTx.Memos = []Memo{{Type: tagAcquireError, Format: MemoFormatJSON,
		Data: []byte(`{"reason":"max_ins_count_reached"}`)}}
	event, err = c.Classify(errorTx)
	assert.NoError(t, err)
	assert.Equal(t, AcquireError, event.Name)
	failure := event.Data.(*AcquireResponseData)
	assert.Equal(t, common.ToHex(refID), failure.AcquireRefID)
	assert.Equal(t, "max_ins_count_reached", failure.Reason)
}

func TestClassifyHostDereg(t *testing.T) {
	c := NewClassifier(testHostAddr, nil)
	host := testAccount(t, 0x66)
	tokenID := make([]byte, 32)
	for i := range tokenID {
		tokenID[i] = 0x77
	}

	t.Run("reputation initiated shape", func(t *testing.T) {
		payload := make([]byte, 0, DeregPayloadSize)
		payload = append(payload, host.Bytes()...)
		payload = append(payload, tokenID...)
		payload = append(payload, 0x01)
		event, err := c.Classify(paramTx(TxTypePayment, tagHostDereg, payload))
		assert.NoError(t, err)
		assert.Equal(t, HostDeregistered, event.Name)
		data := event.Data.(*HostDeregistrationData)
		assert.Equal(t, host.String(), data.Host)
		assert.Equal(t, common.ToHex(tokenID), data.TokenID)
		assert.True(t, data.ViaReputation)
		assert.Equal(t, byte(0x01), data.ErrorFlag)
	})

	t.Run("token id shape", func(t *testing.T) {
		event, err := c.Classify(paramTx(TxTypePayment, tagHostDereg, tokenID))
		assert.NoError(t, err)
		data := event.Data.(*HostDeregistrationData)
		assert.Equal(t, testTenantAddr, data.Host) // the sending account
		assert.Equal(t, common.ToHex(tokenID), data.TokenID)
		assert.False(t, data.ViaReputation)
	})

	t.Run("bare shape", func(t *testing.T) {
		event, err := c.Classify(paramTx(TxTypePayment, tagHostDereg, nil))
		assert.NoError(t, err)
		data := event.Data.(*HostDeregistrationData)
		assert.Equal(t, testTenantAddr, data.Host)
		assert.Empty(t, data.TokenID)
	})
}

func TestClassifyHeartbeat(t *testing.T) {
	c := NewClassifier(testHostAddr, nil)

	event, err := c.Classify(paramTx(TxTypeInvoke, tagHeartbeat, nil))
	assert.NoError(t, err)
	assert.Equal(t, Heartbeat, event.Name)
	assert.Nil(t, event.Data.(*HeartbeatData).Vote)

	vote := make([]byte, candidateIDSize+1)
	vote[0] = 0x01
	vote[candidateIDSize] = 1
	event, err = c.Classify(paramTx(TxTypeInvoke, tagHeartbeat, vote))
	assert.NoError(t, err)
	data := event.Data.(*HeartbeatData)
	assert.NotNil(t, data.Vote)
	assert.Equal(t, common.ToHex(vote[:candidateIDSize]), data.Vote.CandidateID)
	assert.Equal(t, byte(1), data.Vote.Vote)
}

func TestClassifyExtendResponses(t *testing.T) {
	c := NewClassifier(testTenantAddr, nil)
	refID := make([]byte, 32)

	data := append(append([]byte{}, refID...), 0x00, 0x00, 0x01, 0x2C)
	event, err := c.Classify(paramTx(TxTypePayment, tagExtendSuccess, data))
	assert.NoError(t, err)
	assert.Equal(t, ExtendSuccess, event.Name)
	success := event.Data.(*ExtendResponseData)
	assert.Equal(t, uint32(300), success.ExpiryMoment)

	errorTx := paramTx(TxTypePayment, tagExtendError, refID)
	errorTx.Memos = []Memo{{Type: tagExtendError, Format: MemoFormatJSON,
		Data: []byte(`{"reason":"lease expired"}`)}}
	event, err = c.Classify(errorTx)
	assert.NoError(t, err)
	assert.Equal(t, "lease expired", event.Data.(*ExtendResponseData).Reason)
}

func TestClassifyCandidatePropose(t *testing.T) {
	hookHashes := make([]byte, proposeHashesSize)
	for i := range hookHashes {
		hookHashes[i] = byte(i)
	}
	keylets := make([]byte, proposeKeyletsSize)
	uniqueID := make([]byte, proposeUniqueIDSize)
	uniqueID[0] = 0x01

	payload, err := EncodeProposePayload(hookHashes, keylets, uniqueID, "upgrade-v3")
	assert.NoError(t, err)
	assert.Len(t, payload, ProposePayloadSize)

	part1, part2, err := ChunkProposePayload(payload)
	assert.NoError(t, err)
	assert.Len(t, part1, eventDataChunkSize)
	assert.Len(t, part2, ProposePayloadSize-eventDataChunkSize)

	c := NewClassifier(testHostAddr, nil)
	event, err := c.Classify(paramTx(TxTypeInvoke, tagCandidatePropose, payload))
	assert.NoError(t, err)
	assert.Equal(t, CandidateProposed, event.Name)
	data := event.Data.(*CandidateProposeData)
	assert.Equal(t, testTenantAddr, data.Owner)
	assert.Equal(t, common.ToHex(hookHashes), data.HookHashes)
	assert.Equal(t, common.ToHex(keylets), data.Keylets)
	assert.Equal(t, common.ToHex(uniqueID), data.UniqueID)
	assert.Equal(t, "upgrade-v3", data.ShortName)
}

func TestClassifyCandidateStatusChange(t *testing.T) {
	c := NewClassifier(testHostAddr, nil)
	host := testAccount(t, 0x88)

	statusTx := func(id xrpl.Hash256, status hookstate.CandidateStatus) *Transaction {
		data := append(append([]byte{}, id[:]...), byte(status))
		return paramTx(TxTypePayment, tagCandidateStatusChange, data)
	}

	dudHostID := candidate.DudHostCandidateID(host)
	hashes := make([]byte, candidate.HookHashesSize)
	newHookID, err := candidate.NewHookCandidateID(hashes)
	assert.NoError(t, err)

	tests := []struct {
		name     string
		id       xrpl.Hash256
		status   hookstate.CandidateStatus
		want     EventType
		wantHost string
	}{
		{"elected dud host", dudHostID, hookstate.CandidateElected, DudHostRemoved, host.String()},
		{"supported dud host", dudHostID, hookstate.CandidateSupported, DudHostStatusChanged, host.String()},
		{"piloted mode", candidate.PilotedModeCandidateID(), hookstate.CandidateElected, FallbackToPiloted, ""},
		{"new hook", newHookID, hookstate.CandidatePurged, NewHookStatusChanged, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			event, err := c.Classify(statusTx(tt.id, tt.status))
			assert.NoError(t, err)
			assert.Equal(t, tt.want, event.Name)
			data := event.Data.(*CandidateStatusData)
			assert.Equal(t, tt.id.String(), data.CandidateID)
			assert.Equal(t, tt.status, data.Status)
			assert.Equal(t, tt.wantHost, data.Host)
		})
	}
}

func TestClassifyDudHostReport(t *testing.T) {
	c := NewClassifier(testHostAddr, nil)
	host := testAccount(t, 0x99)
	id := candidate.DudHostCandidateID(host)

	event, err := c.Classify(paramTx(TxTypeInvoke, tagDudHostReport, id[:]))
	assert.NoError(t, err)
	assert.Equal(t, DudHostReported, event.Name)
	data := event.Data.(*CandidateStatusData)
	assert.Equal(t, id.String(), data.CandidateID)
	assert.Equal(t, host.String(), data.Host)
}

func TestClassifyHookUpdate(t *testing.T) {
	c := NewClassifier(testHostAddr, nil)
	account := testAccount(t, 0x21)
	hookHash := make([]byte, 32)
	hookHash[0] = 0xEE

	data := append(append([]byte{}, account.Bytes()...), hookHash...)
	event, err := c.Classify(paramTx(TxTypePayment, tagHookUpdate, data))
	assert.NoError(t, err)
	assert.Equal(t, ChildHookUpdated, event.Name)
	update := event.Data.(*ChildHookUpdateData)
	assert.Equal(t, account.String(), update.Account)
	assert.Equal(t, common.ToHex(hookHash), update.HookHash)
}

func TestClassifyMisc(t *testing.T) {
	c := NewClassifier(testHostAddr, nil)

	event, err := c.Classify(paramTx(TxTypeInvoke, tagInitialize, nil))
	assert.NoError(t, err)
	assert.Equal(t, Initialized, event.Name)

	event, err = c.Classify(paramTx(TxTypeInvoke, tagGovernanceModeChange, []byte{2}))
	assert.NoError(t, err)
	assert.Equal(t, GovernanceModeChanged, event.Name)
	assert.Equal(t, byte(2), event.Data.(*GovernanceModeData).Mode)

	scores := []byte{0x01, 0x02, 0x03}
	event, err = c.Classify(paramTx(TxTypeInvoke, tagHostSendReputation, scores))
	assert.NoError(t, err)
	assert.Equal(t, HostReputationUpdated, event.Name)
	assert.Equal(t, common.ToHex(scores), event.Data.(*HostReputationData).Scores)
}
