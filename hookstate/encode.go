package hookstate

import (
	"encoding/binary"
	"fmt"

	"github.com/evernode-go/evernode-client/xrpl"
)

// Governance transactions write configuration scalars back to the
// ledger. These encoders are the exact inverses of the config decode
// accessors.

// EncodeUint16 encodes v as 2 bytes big endian
func EncodeUint16(v uint16) []byte {
	b := make([]byte, 2)
	binary.BigEndian.PutUint16(b, v)
	return b
}

// EncodeUint32 encodes v as 4 bytes big endian
func EncodeUint32(v uint32) []byte {
	b := make([]byte, 4)
	binary.BigEndian.PutUint32(b, v)
	return b
}

// EncodeUint64 encodes v as 8 bytes big endian
func EncodeUint64(v uint64) []byte {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, v)
	return b
}

// EncodeXflValue encodes a monetary amount as an 8 byte XFL
func EncodeXflValue(value float64) ([]byte, error) {
	xfl, err := FloatToXfl(value)
	if err != nil {
		return nil, err
	}
	return EncodeUint64(uint64(xfl)), nil
}

// EncodeAccountID encodes an r-address as its raw 20 byte account id
func EncodeAccountID(address string) ([]byte, error) {
	account, err := xrpl.NewAccountFromAddress(address)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidLength, err)
	}
	return account.Bytes(), nil
}
