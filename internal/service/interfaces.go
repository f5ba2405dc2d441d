package service

//go:generate mockgen -source=interfaces.go -destination=../mock/services_mock.go -package=mock -exclude_interfaces=PackServiceWrapper

import (
	"context"
	"io"

	"github.com/MKhiriev/riff-pack/models"
)

// PackService turns asset groups into an encrypted pack.
type PackService interface {
	// Pack writes the envelope (IV followed by ciphertext) of a container
	// holding the manifest and every asset to out. Nothing is written to out
	// before the key has been derived. On error out may hold a partial
	// envelope that must be discarded.
	Pack(ctx context.Context, groups []models.AssetGroup, password string, out io.Writer) (models.PackReport, error)
}

// UnpackService reverses PackService.
type UnpackService interface {
	// Unpack reads a whole envelope from in and returns the manifest and the
	// extracted assets in manifest order.
	Unpack(ctx context.Context, in io.Reader, password string) (models.UnpackedPack, error)

	// Decrypt streams the decrypted, still compressed container to out and
	// returns the number of bytes written.
	Decrypt(ctx context.Context, in io.Reader, password string, out io.Writer) (int64, error)
}

// IDGenerator issues manifest entry identifiers.
type IDGenerator interface {
	Generate() (string, error)
}

// PackServiceWrapper defines middleware composition for PackService.
// Implementations wrap an existing PackService to add behavior such as
// validation.
type PackServiceWrapper interface {
	Wrap(PackService) PackService // returns a decorated PackService applying additional behavior
}
