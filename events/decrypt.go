package events

// Decipherer is the external payload decrypt capability. The engine
// never decrypts itself: lease payloads encrypted to this client's
// message key are handed to the capability, whose contract also owns
// any timeout or cancellation policy.
//
// A nil result with a nil error means the capability could not decrypt
// the payload. That is not fatal: the event is still produced with the
// payload left in its pre-decryption form, and the caller decides how
// to report the occurrence.
type Decipherer interface {
	Decipher(payload []byte) ([]byte, error)
}

// DecipherFunc adapts a plain function to the Decipherer interface
type DecipherFunc func(payload []byte) ([]byte, error)

// Decipher impl
func (f DecipherFunc) Decipher(payload []byte) ([]byte, error) {
	return f(payload)
}
