package crypto

import (
	"bytes"
	"crypto/rand"
	"errors"
	"fmt"
	"io"
)

// envelopeService is the default implementation of [EnvelopeService].
type envelopeService struct {
	// random is the IV source; crypto/rand unless replaced in tests.
	random io.Reader
}

// NewEnvelopeService constructs an [EnvelopeService] that draws IVs from the
// operating system CSPRNG.
func NewEnvelopeService() EnvelopeService {
	return &envelopeService{random: rand.Reader}
}

// DeriveKey implements [EnvelopeService].
func (s *envelopeService) DeriveKey(password string) []byte {
	return DeriveKey([]byte(password), []byte(Salt), Iterations, KeyLength)
}

// Encrypt implements [EnvelopeService]. The plaintext is pushed through the
// same stream used for packs, so the result is identical to a streamed
// envelope with the same IV.
func (s *envelopeService) Encrypt(key, plaintext []byte) ([]byte, []byte, error) {
	iv, err := s.newIV()
	if err != nil {
		return nil, nil, err
	}

	var buf bytes.Buffer
	buf.Grow(len(plaintext) + IVSize)

	w, err := NewCBCEncrypter(&buf, key, iv)
	if err != nil {
		return nil, nil, err
	}
	if _, err = w.Write(plaintext); err != nil {
		return nil, nil, err
	}
	if err = w.Close(); err != nil {
		return nil, nil, err
	}

	return iv, buf.Bytes(), nil
}

// Decrypt implements [EnvelopeService].
func (s *envelopeService) Decrypt(key, iv, ciphertext []byte) ([]byte, error) {
	r, err := NewCBCDecrypter(bytes.NewReader(ciphertext), key, iv)
	if err != nil {
		return nil, err
	}

	plain, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return plain, nil
}

// NewSealWriter implements [EnvelopeService].
func (s *envelopeService) NewSealWriter(w io.Writer, key []byte) (io.WriteCloser, error) {
	iv, err := s.newIV()
	if err != nil {
		return nil, err
	}

	// Validate before touching w so a bad key leaves the output empty.
	enc, err := NewCBCEncrypter(w, key, iv)
	if err != nil {
		return nil, err
	}
	if _, err = w.Write(iv); err != nil {
		return nil, fmt.Errorf("write iv: %w", err)
	}

	return enc, nil
}

// NewOpenReader implements [EnvelopeService].
func (s *envelopeService) NewOpenReader(r io.Reader, key []byte) (io.Reader, error) {
	if len(key) != KeyLength {
		return nil, fmt.Errorf("%w: got %d bytes, want %d", ErrInvalidKeyLength, len(key), KeyLength)
	}

	iv, err := ReadIV(r)
	if err != nil {
		return nil, err
	}
	return NewCBCDecrypter(r, key, iv)
}

// ReadIV consumes the IV from the head of a stored envelope.
func ReadIV(r io.Reader) ([]byte, error) {
	iv := make([]byte, IVSize)
	if _, err := io.ReadFull(r, iv); err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return nil, ErrEnvelopeTooShort
		}
		return nil, fmt.Errorf("read iv: %w", err)
	}
	return iv, nil
}

func (s *envelopeService) newIV() ([]byte, error) {
	iv := make([]byte, IVSize)
	if _, err := io.ReadFull(s.random, iv); err != nil {
		return nil, fmt.Errorf("generate iv: %w", err)
	}
	return iv, nil
}
