// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package container

import (
	"archive/zip"
	"bytes"
	"fmt"
	"io"
)

type writerOptions struct {
	method Method
	level  int
}

// Option configures a [Writer].
type Option func(*writerOptions)

// WithMethod sets the compression method used for every entry.
func WithMethod(m Method) Option {
	return func(o *writerOptions) {
		o.method = m
	}
}

// WithLevel sets the compression level of the chosen method.
// [DefaultLevel] keeps the method's own default.
func WithLevel(level int) Option {
	return func(o *writerOptions) {
		o.level = level
	}
}

// Entry is a named blob to store in a container.
type Entry struct {
	Name string
	Data []byte
}

// Writer streams container entries to an underlying writer in the order they
// are added. Nothing is buffered beyond the compressor state, so the output
// can feed a cipher directly.
type Writer struct {
	zw     *zip.Writer
	method Method
	names  map[string]struct{}
	closed bool
}

// NewWriter returns a [Writer] that writes a ZIP stream to w.
// The default method is [MethodDeflate].
func NewWriter(w io.Writer, opts ...Option) (*Writer, error) {
	o := writerOptions{
		method: MethodDeflate,
		level:  DefaultLevel,
	}
	for _, opt := range opts {
		opt(&o)
	}
	if err := o.method.Valid(); err != nil {
		return nil, err
	}

	zw := zip.NewWriter(w)
	registerCompressor(zw, o.method, o.level)

	return &Writer{
		zw:     zw,
		method: o.method,
		names:  make(map[string]struct{}),
	}, nil
}

// Add writes one entry holding data.
func (w *Writer) Add(name string, data []byte) error {
	return w.AddFrom(name, bytes.NewReader(data))
}

// AddFrom writes one entry with the contents of r. A repeated name is
// rejected with [ErrDuplicateEntry] before anything is written, so the
// writer stays usable.
func (w *Writer) AddFrom(name string, r io.Reader) error {
	if w.closed {
		return ErrWriterClosed
	}
	if name == "" {
		return ErrInvalidEntryName
	}
	if _, ok := w.names[name]; ok {
		return fmt.Errorf("%w: %q", ErrDuplicateEntry, name)
	}

	fw, err := w.zw.CreateHeader(&zip.FileHeader{
		Name:   name,
		Method: uint16(w.method),
	})
	if err != nil {
		return fmt.Errorf("create entry %q: %w", name, err)
	}
	w.names[name] = struct{}{}

	if _, err = io.Copy(fw, r); err != nil {
		return fmt.Errorf("write entry %q: %w", name, err)
	}
	return nil
}

// Len returns the number of entries written so far.
func (w *Writer) Len() int {
	return len(w.names)
}

// Close writes the central directory. It does not close the underlying writer.
func (w *Writer) Close() error {
	if w.closed {
		return nil
	}
	w.closed = true

	if err := w.zw.Close(); err != nil {
		return fmt.Errorf("close container: %w", err)
	}
	return nil
}

// Create builds an in-memory container holding entries in the given order.
func Create(entries []Entry, opts ...Option) ([]byte, error) {
	var buf bytes.Buffer

	w, err := NewWriter(&buf, opts...)
	if err != nil {
		return nil, err
	}
	for _, e := range entries {
		if err = w.Add(e.Name, e.Data); err != nil {
			return nil, err
		}
	}
	if err = w.Close(); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}
