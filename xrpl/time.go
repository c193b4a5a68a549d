package xrpl

import "time"

// rippleEpochOffset is the unix timestamp of the ripple epoch
// (2000-01-01T00:00:00Z)
const rippleEpochOffset = 946684800

// RippleToUnixTime converts a ledger close time to a unix timestamp
func RippleToUnixTime(rt int64) int64 {
	return rt + rippleEpochOffset
}

// UnixToRippleTime converts a unix timestamp to ledger time
func UnixToRippleTime(ut int64) int64 {
	return ut - rippleEpochOffset
}

// RippleNow returns the current time in ledger time
func RippleNow() int64 {
	return UnixToRippleTime(time.Now().Unix())
}
