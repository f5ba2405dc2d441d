package crypto

import "errors"

var (
	// ErrDecryptionFailed is the single error reported for invalid padding,
	// a ciphertext that is not a whole number of blocks, or an empty
	// ciphertext. CBC cannot tell a wrong key from corrupted data.
	ErrDecryptionFailed = errors.New("decryption failed")

	// ErrInvalidKeyLength is returned for keys that are not [KeyLength] bytes.
	ErrInvalidKeyLength = errors.New("invalid key length")

	// ErrInvalidIV is returned for an IV that is not [IVSize] bytes.
	ErrInvalidIV = errors.New("invalid initialization vector")

	// ErrEnvelopeTooShort is returned when a stored envelope ends before the
	// IV is complete.
	ErrEnvelopeTooShort = errors.New("envelope is shorter than the IV")

	// ErrWriterClosed is returned when writing to a closed encrypter.
	ErrWriterClosed = errors.New("encrypter is closed")
)
