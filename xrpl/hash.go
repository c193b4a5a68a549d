package xrpl

import (
	"bytes"
	"crypto/sha512"
	"encoding/hex"
	"fmt"
	"strings"
)

// Hash256 is a 32 byte value: transaction hashes, ledger entry
// indexes, hook code hashes and candidate ids all share this shape.
type Hash256 [32]byte

// Hash160 is a 20 byte value
type Hash160 [20]byte

// Account is a decoded 20 byte XRPL account id
type Account [20]byte

// PublicKey is a 33 byte compressed public key
type PublicKey [33]byte

var zero256 Hash256
var zeroAccount Account

// NewHash256 accepts either a hex string or a byte slice of length 32
func NewHash256(value interface{}) (*Hash256, error) {
	var h Hash256
	switch v := value.(type) {
	case []byte:
		if len(v) != 32 {
			return nil, fmt.Errorf("NewHash256: wrong length %X", v)
		}
		copy(h[:], v)
	case string:
		n, err := hex.Decode(h[:], []byte(v))
		if err != nil {
			return nil, err
		}
		if n != 32 {
			return nil, fmt.Errorf("NewHash256: wrong length %s", v)
		}
	default:
		return nil, fmt.Errorf("NewHash256: wrong type %+v", v)
	}
	return &h, nil
}

func (h Hash256) IsZero() bool {
	return h == zero256
}

func (h *Hash256) Bytes() []byte {
	if h == nil {
		return nil
	}
	return h[:]
}

func (h Hash256) String() string {
	return strings.ToUpper(hex.EncodeToString(h[:]))
}

func (h Hash256) Compare(x Hash256) int {
	return bytes.Compare(h[:], x[:])
}

func (a *Account) Bytes() []byte {
	if a == nil {
		return nil
	}
	return a[:]
}

func (a Account) IsZero() bool {
	return a == zeroAccount
}

func (a Account) Equals(b Account) bool {
	return a == b
}

// String returns the base58 r-address form
func (a Account) String() string {
	return encodeAddress(a[:], versionAccountID)
}

func (p *PublicKey) Bytes() []byte {
	if p == nil {
		return nil
	}
	return p[:]
}

func (p PublicKey) String() string {
	return strings.ToUpper(hex.EncodeToString(p[:]))
}

// Sha512Half computes the first 32 bytes of the SHA-512 digest over the
// concatenation of the inputs. This is the hash the ledger uses for every
// state entry index.
func Sha512Half(data ...[]byte) Hash256 {
	d := sha512.New()
	for _, b := range data {
		d.Write(b)
	}
	var h Hash256
	copy(h[:], d.Sum(nil)[:32])
	return h
}
