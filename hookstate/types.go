package hookstate

// StateRecord is a read-only snapshot of one hook state entry as
// fetched from the ledger. The engine never caches these.
type StateRecord struct {
	Key  StateKey
	Data []byte
}

// DecodedRecord is implemented by every typed state record
type DecodedRecord interface {
	RecordKind() StateKeyType
}
