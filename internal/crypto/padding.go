package crypto

import "crypto/subtle"

// pkcs7Padding returns the padding that completes a message of length n to a
// whole number of blocks. A full block is added when n is already aligned.
func pkcs7Padding(n, blockSize int) []byte {
	p := blockSize - n%blockSize
	pad := make([]byte, p)
	for i := range pad {
		pad[i] = byte(p)
	}
	return pad
}

// pkcs7Unpad strips the padding from a decrypted, block-aligned message.
func pkcs7Unpad(b []byte, blockSize int) ([]byte, error) {
	if len(b) == 0 || len(b)%blockSize != 0 {
		return nil, ErrDecryptionFailed
	}

	p := int(b[len(b)-1])
	if p == 0 || p > blockSize {
		return nil, ErrDecryptionFailed
	}

	good := 1
	for _, c := range b[len(b)-p:] {
		good &= subtle.ConstantTimeByteEq(c, byte(p))
	}
	if good != 1 {
		return nil, ErrDecryptionFailed
	}

	return b[:len(b)-p], nil
}
