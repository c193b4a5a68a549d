package xrpl

import (
	"bytes"
	"crypto/sha256"
	"errors"
	"fmt"
	"math/big"

	"golang.org/x/crypto/ripemd160"
)

// alphabet is the XRPL variant of base58, it is not the Bitcoin one
const alphabet = "rpshnaf39wBUDNEGHJKLM4PQRST7VWXYZ2bcdeCg65jkm8oFqi1tuvAxyz"

const versionAccountID = 0

var (
	bigRadix = big.NewInt(58)
	bigZero  = big.NewInt(0)

	// ErrInvalidAddress is returned when an r-address fails to decode
	ErrInvalidAddress = errors.New("invalid ripple address")
)

// NewAccountFromAddress decodes a base58 r-address into an Account
func NewAccountFromAddress(s string) (*Account, error) {
	payload, version, err := decodeAddress(s)
	if err != nil {
		return nil, err
	}
	if version != versionAccountID {
		return nil, fmt.Errorf("%w: wrong version %d for %s", ErrInvalidAddress, version, s)
	}
	if len(payload) != 20 {
		return nil, fmt.Errorf("%w: wrong payload length %d for %s", ErrInvalidAddress, len(payload), s)
	}
	var account Account
	copy(account[:], payload)
	return &account, nil
}

// NewAccountFromBytes wraps a raw 20 byte account id
func NewAccountFromBytes(b []byte) (*Account, error) {
	if len(b) != 20 {
		return nil, fmt.Errorf("%w: wrong account id length %d", ErrInvalidAddress, len(b))
	}
	var account Account
	copy(account[:], b)
	return &account, nil
}

// IsValidAddress returns if s is a well formed r-address
func IsValidAddress(s string) bool {
	_, err := NewAccountFromAddress(s)
	return err == nil
}

// AccountIDFromPubKey derives the 20 byte account id of a compressed
// public key: RIPEMD160(SHA256(pubkey))
func AccountIDFromPubKey(pubkey []byte) (*Account, error) {
	if len(pubkey) != 33 {
		return nil, fmt.Errorf("invalid public key length %d", len(pubkey))
	}
	sha := sha256.Sum256(pubkey)
	ripe := ripemd160.New()
	ripe.Write(sha[:])
	return NewAccountFromBytes(ripe.Sum(nil))
}

func checksum(input []byte) [4]byte {
	var cksum [4]byte
	h := sha256.Sum256(input)
	h2 := sha256.Sum256(h[:])
	copy(cksum[:], h2[:4])
	return cksum
}

func encodeAddress(payload []byte, version byte) string {
	b := make([]byte, 0, 1+len(payload)+4)
	b = append(b, version)
	b = append(b, payload...)
	cksum := checksum(b)
	b = append(b, cksum[:]...)
	return base58Encode(b)
}

func decodeAddress(s string) (payload []byte, version byte, err error) {
	decoded, err := base58Decode(s)
	if err != nil {
		return nil, 0, err
	}
	if len(decoded) < 5 {
		return nil, 0, fmt.Errorf("%w: too short %q", ErrInvalidAddress, s)
	}
	body := decoded[:len(decoded)-4]
	cksum := checksum(body)
	if !bytes.Equal(cksum[:], decoded[len(decoded)-4:]) {
		return nil, 0, fmt.Errorf("%w: bad checksum %q", ErrInvalidAddress, s)
	}
	return body[1:], body[0], nil
}

func base58Encode(b []byte) string {
	x := new(big.Int).SetBytes(b)
	answer := make([]byte, 0, len(b)*136/100)
	mod := new(big.Int)
	for x.Cmp(bigZero) > 0 {
		x.DivMod(x, bigRadix, mod)
		answer = append(answer, alphabet[mod.Int64()])
	}
	for _, i := range b {
		if i != 0 {
			break
		}
		answer = append(answer, alphabet[0])
	}
	// reverse
	for i, j := 0, len(answer)-1; i < j; i, j = i+1, j-1 {
		answer[i], answer[j] = answer[j], answer[i]
	}
	return string(answer)
}

func base58Decode(s string) ([]byte, error) {
	answer := big.NewInt(0)
	for _, c := range []byte(s) {
		idx := bytes.IndexByte([]byte(alphabet), c)
		if idx < 0 {
			return nil, fmt.Errorf("%w: illegal character %q", ErrInvalidAddress, c)
		}
		answer.Mul(answer, bigRadix)
		answer.Add(answer, big.NewInt(int64(idx)))
	}
	tmp := answer.Bytes()
	var numZeros int
	for numZeros = 0; numZeros < len(s); numZeros++ {
		if s[numZeros] != alphabet[0] {
			break
		}
	}
	decoded := make([]byte, numZeros+len(tmp))
	copy(decoded[numZeros:], tmp)
	return decoded, nil
}
