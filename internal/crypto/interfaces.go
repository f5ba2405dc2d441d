package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/envelope_service_mock.go -package=mock

import "io"

// EnvelopeService wraps container bytes in the password-protected envelope.
// It holds no key state: every call receives the key it should use.
//
// Pack flow:
//
//	key    = DeriveKey(password)
//	out    = NewSealWriter(file, key)    // writes the IV, returns the cipher stream
//	container bytes -> out; out.Close()  // flushes the padded final block
type EnvelopeService interface {
	// DeriveKey derives the 32-byte AES key from password using the
	// compiled-in salt, iteration count and SHA-512. Deliberately slow.
	DeriveKey(password string) []byte

	// Encrypt encrypts plaintext under a fresh random IV and returns the IV
	// and the ciphertext separately. Callers persist IV first.
	Encrypt(key, plaintext []byte) (iv, ciphertext []byte, err error)

	// Decrypt reverses Encrypt. Any padding or length failure is reported as
	// ErrDecryptionFailed.
	Decrypt(key, iv, ciphertext []byte) ([]byte, error)

	// NewSealWriter generates a fresh IV, writes it to w and returns a
	// stream that encrypts everything written to it into w. Close must be
	// called to emit the final padded block; it does not close w.
	NewSealWriter(w io.Writer, key []byte) (io.WriteCloser, error)

	// NewOpenReader reads the IV from the head of r and returns a stream of
	// the decrypted remainder. The stream reports ErrDecryptionFailed at its
	// end if the padding is invalid.
	NewOpenReader(r io.Reader, key []byte) (io.Reader, error)
}
