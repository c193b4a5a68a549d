package events

// NewCachedClassifiedTxs new cached classified txs
func NewCachedClassifiedTxs(capacity int) *CachedClassifiedTxs {
	if capacity < 1 {
		capacity = 1
	}
	return &CachedClassifiedTxs{
		nextIndex: 0,
		capacity:  capacity,
		txs:       make([]cachedClassifiedTxRecord, capacity),
	}
}

// CachedClassifiedTxs remembers the hashes of recently classified
// transactions so a replayed ledger stream does not emit duplicate
// events. Oldest entries are overwritten once capacity is reached.
type CachedClassifiedTxs struct {
	nextIndex int
	capacity  int
	txs       []cachedClassifiedTxRecord
}

type cachedClassifiedTxRecord struct {
	hash string
}

// CacheClassifiedTx add cached tx
func (c *CachedClassifiedTxs) CacheClassifiedTx(hash string) {
	c.txs[c.nextIndex] = cachedClassifiedTxRecord{
		hash: hash,
	}
	c.nextIndex = (c.nextIndex + 1) % c.capacity
}

// IsTxClassified return if cached tx exists
func (c *CachedClassifiedTxs) IsTxClassified(txHash string) bool {
	for _, tx := range c.txs {
		if tx.hash == txHash {
			return true
		}
	}
	return false
}
