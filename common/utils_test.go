package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHexConversions(t *testing.T) {
	b, err := FromHex("0xABCD")
	assert.NoError(t, err)
	assert.Equal(t, []byte{0xAB, 0xCD}, b)

	b, err = FromHex("abcd")
	assert.NoError(t, err)
	assert.Equal(t, []byte{0xAB, 0xCD}, b)

	// odd length is zero padded from the left
	b, err = FromHex("F")
	assert.NoError(t, err)
	assert.Equal(t, []byte{0x0F}, b)

	_, err = FromHex("zz")
	assert.Error(t, err)

	assert.Equal(t, "ABCD", ToHex([]byte{0xAB, 0xCD}))
}

func TestIsHex(t *testing.T) {
	assert.True(t, IsHex("abcd"))
	assert.True(t, IsHex("0xABCD"))
	assert.False(t, IsHex("abc"))
	assert.False(t, IsHex(""))
	assert.False(t, IsHex("ghij"))
}

func TestIsEqualIgnoreCase(t *testing.T) {
	assert.True(t, IsEqualIgnoreCase("rAbc", "rABC"))
	assert.False(t, IsEqualIgnoreCase("rAbc", "rAbd"))
}
