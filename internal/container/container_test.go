package container

import (
	"archive/zip"
	"bytes"
	"crypto/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func randomBytes(t *testing.T, n int) []byte {
	t.Helper()
	b := make([]byte, n)
	_, err := rand.Read(b)
	require.NoError(t, err)
	return b
}

func TestCreateOpen_RoundTrip(t *testing.T) {
	entries := []Entry{
		{Name: "manifest.json", Data: []byte(`{"entries":[]}`)},
		{Name: "4d3c2b1a-0000-4000-8000-000000000001", Data: bytes.Repeat([]byte("riff"), 4096)},
		{Name: "4d3c2b1a-0000-4000-8000-000000000002", Data: randomBytes(t, 1<<20)},
		{Name: "empty", Data: nil},
	}

	for _, m := range []Method{MethodStore, MethodDeflate, MethodZstd} {
		t.Run(m.String(), func(t *testing.T) {
			b, err := Create(entries, WithMethod(m))
			require.NoError(t, err)

			a, err := Open(b)
			require.NoError(t, err)
			require.Equal(t, len(entries), a.Len())

			for _, e := range entries {
				got, err := a.Read(e.Name)
				require.NoError(t, err)
				assert.True(t, bytes.Equal(e.Data, got), "entry %q differs", e.Name)
			}

			for _, info := range a.Entries() {
				assert.Equal(t, m, info.Method)
			}
		})
	}
}

func TestCreate_PreservesOrder(t *testing.T) {
	names := []string{"z", "manifest.json", "a", "m"}
	entries := make([]Entry, 0, len(names))
	for _, n := range names {
		entries = append(entries, Entry{Name: n, Data: []byte(n)})
	}

	b, err := Create(entries)
	require.NoError(t, err)

	a, err := Open(b)
	require.NoError(t, err)
	assert.Equal(t, names, a.Names())
}

func TestCreate_NoEntries(t *testing.T) {
	b, err := Create(nil)
	require.NoError(t, err)

	a, err := Open(b)
	require.NoError(t, err)
	assert.Equal(t, 0, a.Len())
	assert.Empty(t, a.Names())
}

func TestCreate_WithLevel(t *testing.T) {
	data := bytes.Repeat([]byte("abcdefgh"), 1<<12)

	for _, m := range []Method{MethodDeflate, MethodZstd} {
		t.Run(m.String(), func(t *testing.T) {
			b, err := Create([]Entry{{Name: "x", Data: data}}, WithMethod(m), WithLevel(1))
			require.NoError(t, err)

			a, err := Open(b)
			require.NoError(t, err)
			got, err := a.Read("x")
			require.NoError(t, err)
			assert.Equal(t, data, got)
		})
	}
}

func TestCreate_DuplicateNameRejected(t *testing.T) {
	_, err := Create([]Entry{
		{Name: "same", Data: []byte("first")},
		{Name: "same", Data: []byte("second")},
	})
	assert.ErrorIs(t, err, ErrDuplicateEntry)
}

func TestWriter_DuplicateKeepsWriterUsable(t *testing.T) {
	var buf bytes.Buffer
	w, err := NewWriter(&buf)
	require.NoError(t, err)

	require.NoError(t, w.Add("a", []byte("first")))
	assert.ErrorIs(t, w.Add("a", []byte("second")), ErrDuplicateEntry)
	require.NoError(t, w.Add("b", []byte("third")))
	assert.Equal(t, 2, w.Len())
	require.NoError(t, w.Close())

	a, err := Open(buf.Bytes())
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, a.Names())

	got, err := a.Read("a")
	require.NoError(t, err)
	assert.Equal(t, []byte("first"), got)
}

func TestWriter_Errors(t *testing.T) {
	var buf bytes.Buffer

	_, err := NewWriter(&buf, WithMethod(Method(42)))
	assert.ErrorIs(t, err, ErrUnknownMethod)

	w, err := NewWriter(&buf)
	require.NoError(t, err)
	assert.ErrorIs(t, w.Add("", []byte("x")), ErrInvalidEntryName)

	require.NoError(t, w.Close())
	require.NoError(t, w.Close())
	assert.ErrorIs(t, w.Add("late", []byte("x")), ErrWriterClosed)
}

func TestOpen_InvalidInput(t *testing.T) {
	valid, err := Create([]Entry{{Name: "a", Data: []byte("payload")}})
	require.NoError(t, err)

	tests := []struct {
		name string
		data []byte
	}{
		{name: "empty", data: nil},
		{name: "garbage", data: bytes.Repeat([]byte{0x5a}, 512)},
		{name: "truncated", data: valid[:len(valid)-10]},
		{name: "json", data: []byte(`{"entries":[]}`)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Open(tt.data)
			assert.ErrorIs(t, err, ErrInvalidContainer)
		})
	}
}

func TestArchive_ReadMissing(t *testing.T) {
	b, err := Create([]Entry{{Name: "a", Data: []byte("x")}})
	require.NoError(t, err)

	a, err := Open(b)
	require.NoError(t, err)

	assert.True(t, a.Has("a"))
	assert.False(t, a.Has("b"))

	_, err = a.Read("b")
	assert.ErrorIs(t, err, ErrEntryNotFound)
}

func TestArchive_ReadDetectsCorruptedData(t *testing.T) {
	payload := bytes.Repeat([]byte("0123456789abcdef"), 64)
	b, err := Create([]Entry{{Name: "a", Data: payload}}, WithMethod(MethodStore))
	require.NoError(t, err)

	at := bytes.Index(b, payload)
	require.GreaterOrEqual(t, at, 0)
	b[at+100] ^= 0xff

	a, err := Open(b)
	require.NoError(t, err)

	_, err = a.Read("a")
	assert.ErrorIs(t, err, ErrInvalidContainer)
}

func TestArchive_NamesIsACopy(t *testing.T) {
	b, err := Create([]Entry{{Name: "a", Data: []byte("x")}})
	require.NoError(t, err)

	a, err := Open(b)
	require.NoError(t, err)

	names := a.Names()
	names[0] = "mutated"
	assert.Equal(t, []string{"a"}, a.Names())
}

func TestParseMethod(t *testing.T) {
	for _, m := range []Method{MethodStore, MethodDeflate, MethodZstd} {
		got, err := ParseMethod(m.String())
		require.NoError(t, err)
		assert.Equal(t, m, got)
	}

	_, err := ParseMethod("lzma")
	assert.ErrorIs(t, err, ErrUnknownMethod)
	assert.Equal(t, "method(42)", Method(42).String())
}

func TestOpen_RejectsDuplicateNames(t *testing.T) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for _, payload := range []string{"first", "second"} {
		fw, err := zw.Create("same")
		require.NoError(t, err)
		_, err = fw.Write([]byte(payload))
		require.NoError(t, err)
	}
	require.NoError(t, zw.Close())

	_, err := Open(buf.Bytes())
	assert.ErrorIs(t, err, ErrInvalidContainer)
	assert.ErrorIs(t, err, ErrDuplicateEntry)
}
