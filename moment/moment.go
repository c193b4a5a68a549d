// Package moment implements the protocol's discrete time arithmetic.
// A moment is a window of momentSize ledger close timestamps (or
// ledger indexes, for configs anchored before the timestamp
// transition), anchored at the base recorded in the moment base info.
package moment

import (
	"errors"

	"github.com/evernode-go/evernode-client/common"
	"github.com/evernode-go/evernode-client/params"
)

// ErrLedgerMomentNow is returned when the current moment is requested
// for a config anchored on ledger indexes. Wall clock time cannot
// stand in for a ledger index, the caller must pass the index it
// observed on the stream.
var ErrLedgerMomentNow = errors.New("current moment is undefined for ledger index anchored configs")

// Calculator derives moment indexes and window starts from a protocol
// config snapshot. The snapshot is read only, a Calculator is safe for
// concurrent use. Inputs are close timestamps or ledger indexes,
// whichever kind the moment base info is anchored on.
type Calculator struct {
	config *params.Config
}

// NewCalculator creates a Calculator over a validated config snapshot
func NewCalculator(config *params.Config) *Calculator {
	return &Calculator{config: config}
}

// IsLedgerMoment returns whether moments count ledger indexes instead
// of close timestamps
func (c *Calculator) IsLedgerMoment() bool {
	return c.config.MomentBaseInfo.IsLedgerMoment
}

// floorDiv divides truncating toward negative infinity. Indexes
// before the moment base produce negative offsets, plain integer
// division would round them the wrong way.
func floorDiv(a, b int64) int64 {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

// Moment returns the moment index containing the given timestamp or
// ledger index
func (c *Calculator) Moment(index int64) int64 {
	base := c.config.MomentBaseInfo
	offset := floorDiv(index-int64(base.BaseIdx), int64(c.config.MomentSize))
	return int64(base.BaseTransitionMoment) + offset
}

// CurrentMoment returns the moment index of the wall clock. Only
// meaningful for timestamp anchored configs; a ledger index anchored
// config has no wall clock notion of "now".
func (c *Calculator) CurrentMoment() (int64, error) {
	if c.IsLedgerMoment() {
		return 0, ErrLedgerMomentNow
	}
	return c.Moment(common.Now()), nil
}

// MomentStartIndex returns the first index of the moment window
// containing index. It is idempotent:
// MomentStartIndex(MomentStartIndex(i)) == MomentStartIndex(i).
func (c *Calculator) MomentStartIndex(index int64) int64 {
	base := c.config.MomentBaseInfo
	offset := floorDiv(index-int64(base.BaseIdx), int64(c.config.MomentSize))
	return int64(base.BaseIdx) + offset*int64(c.config.MomentSize)
}

// MomentEndIndex returns the first index after the moment window
// containing index (the window is half open)
func (c *Calculator) MomentEndIndex(index int64) int64 {
	return c.MomentStartIndex(index) + int64(c.config.MomentSize)
}
