package container

import (
	"archive/zip"
	"fmt"
	"io"

	"github.com/klauspost/compress/flate"
	"github.com/klauspost/compress/zstd"
)

// Method is the per-entry ZIP compression method.
type Method uint16

// Supported methods. The values are the ZIP method ids written to the
// archive headers.
const (
	MethodStore   Method = Method(zip.Store)
	MethodDeflate Method = Method(zip.Deflate)
	MethodZstd    Method = zstd.ZipMethodWinZip
)

// DefaultLevel selects the default level of the chosen method.
const DefaultLevel = -1

// String returns the configuration name of the method.
func (m Method) String() string {
	switch m {
	case MethodStore:
		return "store"
	case MethodDeflate:
		return "deflate"
	case MethodZstd:
		return "zstd"
	default:
		return fmt.Sprintf("method(%d)", uint16(m))
	}
}

// Valid returns a nil error iff m is a supported method.
func (m Method) Valid() error {
	switch m {
	case MethodStore, MethodDeflate, MethodZstd:
		return nil
	}
	return fmt.Errorf("%w: %d", ErrUnknownMethod, uint16(m))
}

// ParseMethod parses a method from its configuration name.
func ParseMethod(name string) (Method, error) {
	switch name {
	case "store":
		return MethodStore, nil
	case "deflate":
		return MethodDeflate, nil
	case "zstd":
		return MethodZstd, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownMethod, name)
	}
}

func registerCompressor(zw *zip.Writer, m Method, level int) {
	switch m {
	case MethodDeflate:
		if level == DefaultLevel {
			level = flate.DefaultCompression
		}
		zw.RegisterCompressor(zip.Deflate, func(w io.Writer) (io.WriteCloser, error) {
			return flate.NewWriter(w, level)
		})
	case MethodZstd:
		opts := []zstd.EOption{zstd.WithEncoderConcurrency(1)}
		if level != DefaultLevel {
			opts = append(opts, zstd.WithEncoderLevel(zstd.EncoderLevelFromZstd(level)))
		}
		zw.RegisterCompressor(uint16(MethodZstd), zstd.ZipCompressor(opts...))
	}
}

func registerDecompressors(zr *zip.Reader) {
	zr.RegisterDecompressor(zip.Deflate, flate.NewReader)
	zr.RegisterDecompressor(uint16(MethodZstd), zstd.ZipDecompressor(zstd.WithDecoderConcurrency(1)))
}
