// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"errors"
	"fmt"
	"io"
)

// streamBufferSize bounds the memory held by a stream in either direction.
// It must be a multiple of the AES block size.
const streamBufferSize = 32 * 1024

func newBlock(key, iv []byte) (cipher.Block, error) {
	if len(key) != KeyLength {
		return nil, fmt.Errorf("%w: got %d bytes, want %d", ErrInvalidKeyLength, len(key), KeyLength)
	}
	if len(iv) != IVSize {
		return nil, fmt.Errorf("%w: got %d bytes, want %d", ErrInvalidIV, len(iv), IVSize)
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}
	return block, nil
}

// cbcEncrypter encrypts whole blocks as soon as its buffer fills and emits
// the padded tail on Close.
type cbcEncrypter struct {
	w      io.Writer
	mode   cipher.BlockMode
	buf    []byte
	fill   int
	closed bool
	err    error
}

// NewCBCEncrypter returns a stream that AES-CBC encrypts everything written
// to it into w. The IV is not written; see [EnvelopeService.NewSealWriter].
func NewCBCEncrypter(w io.Writer, key, iv []byte) (io.WriteCloser, error) {
	block, err := newBlock(key, iv)
	if err != nil {
		return nil, err
	}

	return &cbcEncrypter{
		w:    w,
		mode: cipher.NewCBCEncrypter(block, iv),
		buf:  make([]byte, streamBufferSize),
	}, nil
}

func (e *cbcEncrypter) Write(p []byte) (int, error) {
	if e.closed {
		return 0, ErrWriterClosed
	}
	if e.err != nil {
		return 0, e.err
	}

	written := 0
	for len(p) > 0 {
		n := copy(e.buf[e.fill:], p)
		e.fill += n
		p = p[n:]
		written += n

		if e.fill == len(e.buf) {
			if err := e.flush(); err != nil {
				return written, err
			}
		}
	}

	return written, nil
}

// Close pads and encrypts the buffered tail. It does not close the
// underlying writer.
func (e *cbcEncrypter) Close() error {
	if e.closed {
		return nil
	}
	e.closed = true
	if e.err != nil {
		return e.err
	}

	// fill is always below len(buf) here and buf is block aligned, so the
	// padding fits.
	e.fill += copy(e.buf[e.fill:], pkcs7Padding(e.fill, e.mode.BlockSize()))
	return e.flush()
}

func (e *cbcEncrypter) flush() error {
	chunk := e.buf[:e.fill]
	e.mode.CryptBlocks(chunk, chunk)
	if _, err := e.w.Write(chunk); err != nil {
		e.err = fmt.Errorf("write ciphertext: %w", err)
		return e.err
	}
	e.fill = 0
	return nil
}

// cbcDecrypter always withholds the last decrypted block until the source is
// exhausted, because only the final block carries the padding.
type cbcDecrypter struct {
	r     io.Reader
	mode  cipher.BlockMode
	buf   []byte
	held  []byte
	out   []byte
	ready []byte
	err   error
}

// NewCBCDecrypter returns a stream of the AES-CBC decryption of r. The
// padding is checked when r is exhausted; a failure is reported as
// [ErrDecryptionFailed] in place of io.EOF.
func NewCBCDecrypter(r io.Reader, key, iv []byte) (io.Reader, error) {
	block, err := newBlock(key, iv)
	if err != nil {
		return nil, err
	}

	return &cbcDecrypter{
		r:    r,
		mode: cipher.NewCBCDecrypter(block, iv),
		buf:  make([]byte, streamBufferSize),
		held: make([]byte, 0, aes.BlockSize),
		out:  make([]byte, 0, streamBufferSize+aes.BlockSize),
	}, nil
}

func (d *cbcDecrypter) Read(p []byte) (int, error) {
	for len(d.ready) == 0 && d.err == nil {
		d.fill()
	}

	if len(d.ready) > 0 {
		n := copy(p, d.ready)
		d.ready = d.ready[n:]
		return n, nil
	}
	return 0, d.err
}

func (d *cbcDecrypter) fill() {
	n, err := io.ReadFull(d.r, d.buf)
	switch {
	case err == nil:
		bs := d.mode.BlockSize()
		d.mode.CryptBlocks(d.buf, d.buf)

		d.out = append(d.out[:0], d.held...)
		d.out = append(d.out, d.buf[:n-bs]...)
		d.held = append(d.held[:0], d.buf[n-bs:]...)
		d.ready = d.out
	case errors.Is(err, io.EOF), errors.Is(err, io.ErrUnexpectedEOF):
		d.finish(n)
	default:
		d.err = fmt.Errorf("read ciphertext: %w", err)
	}
}

func (d *cbcDecrypter) finish(n int) {
	bs := d.mode.BlockSize()
	if n%bs != 0 {
		d.err = ErrDecryptionFailed
		return
	}

	tail := d.buf[:n]
	d.mode.CryptBlocks(tail, tail)
	d.out = append(d.out[:0], d.held...)
	d.out = append(d.out, tail...)
	d.held = d.held[:0]

	plain, err := pkcs7Unpad(d.out, bs)
	if err != nil {
		d.err = err
		return
	}
	d.ready = plain
	d.err = io.EOF
}
