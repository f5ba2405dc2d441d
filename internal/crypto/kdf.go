package crypto

import (
	"crypto/aes"
	"crypto/sha512"

	"golang.org/x/crypto/pbkdf2"
)

// Envelope parameters. They are part of the file format and are shared with
// every consumer of a pack, so none of them is configurable.
const (
	// Iterations is the PBKDF2 iteration count.
	Iterations = 100_000

	// KeyLength is the AES-256 key size in bytes.
	KeyLength = 32

	// IVSize is the AES block size; the IV occupies the first IVSize bytes
	// of a stored envelope.
	IVSize = aes.BlockSize

	// Salt is a public domain-separation constant, not a secret.
	Salt = "lis3a7u45yjhvnoliu7aswtnbvblwou7opna"
)

// DeriveKey runs PBKDF2-HMAC-SHA512 over password and salt. The result is a
// pure function of its inputs.
func DeriveKey(password, salt []byte, iterations, keyLength int) []byte {
	return pbkdf2.Key(password, salt, iterations, keyLength, sha512.New)
}
