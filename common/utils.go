package common

import (
	"encoding/hex"
	"encoding/json"
	"os"
	"strings"
	"time"
)

// FileExist checks if a file exists at filePath
func FileExist(filePath string) bool {
	_, err := os.Stat(filePath)
	return err == nil
}

// Now returns the current unix timestamp
func Now() int64 {
	return time.Now().Unix()
}

// IsEqualIgnoreCase returns if s1 and s2 are equal ignoring case
func IsEqualIgnoreCase(s1, s2 string) bool {
	return strings.EqualFold(s1, s2)
}

// ToJSONString to json string
func ToJSONString(content interface{}, pretty bool) string {
	var data []byte
	if pretty {
		data, _ = json.MarshalIndent(content, "", "  ")
	} else {
		data, _ = json.Marshal(content)
	}
	return string(data)
}

// FromHex decodes a hex string, with or without 0x prefix, ignoring case
func FromHex(s string) ([]byte, error) {
	if has0xPrefix(s) {
		s = s[2:]
	}
	if len(s)%2 == 1 {
		s = "0" + s
	}
	return hex.DecodeString(s)
}

// ToHex encodes b as an upper case hex string without prefix
func ToHex(b []byte) string {
	return strings.ToUpper(hex.EncodeToString(b))
}

func has0xPrefix(s string) bool {
	return len(s) >= 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X')
}

// IsHex verifies whether a string can represent a valid hex-encoded value
func IsHex(s string) bool {
	if has0xPrefix(s) {
		s = s[2:]
	}
	if len(s) == 0 || len(s)%2 != 0 {
		return false
	}
	for _, c := range []byte(s) {
		if !isHexCharacter(c) {
			return false
		}
	}
	return true
}

func isHexCharacter(c byte) bool {
	return ('0' <= c && c <= '9') || ('a' <= c && c <= 'f') || ('A' <= c && c <= 'F')
}
