package service

import (
	"context"
	"fmt"
	"io"

	"github.com/MKhiriev/riff-pack/internal/container"
	"github.com/MKhiriev/riff-pack/internal/crypto"
	"github.com/MKhiriev/riff-pack/internal/logger"
	"github.com/MKhiriev/riff-pack/internal/manifest"
	"github.com/MKhiriev/riff-pack/internal/pipeline"
	"github.com/MKhiriev/riff-pack/internal/utils"
	"github.com/MKhiriev/riff-pack/internal/validators"
	"github.com/MKhiriev/riff-pack/models"
)

type unpackService struct {
	envelope  crypto.EnvelopeService
	validator validators.Validator

	logger *logger.Logger
}

func NewUnpackService(envelope crypto.EnvelopeService, logger *logger.Logger) UnpackService {
	return &unpackService{
		envelope:  envelope,
		validator: validators.NewPackValidator(),
		logger:    logger.WithComponent("unpack"),
	}
}

// Unpack implements [UnpackService]. The container is buffered in memory
// because ZIP needs random access to its central directory.
func (s *unpackService) Unpack(ctx context.Context, in io.Reader, password string) (models.UnpackedPack, error) {
	var (
		iv, ciphertext, key, plaintext []byte
		archive                        *container.Archive
		result                         models.UnpackedPack
	)

	run := pipeline.New("unpack", s.logger,
		pipeline.Stage{Name: pipeline.StageReadIV, Run: func(context.Context) error {
			var err error
			iv, err = crypto.ReadIV(in)
			return err
		}},
		pipeline.Stage{Name: pipeline.StageReadCiphertext, Run: func(context.Context) error {
			var err error
			if ciphertext, err = io.ReadAll(in); err != nil {
				return fmt.Errorf("read ciphertext: %w", err)
			}
			s.logger.Debug().Int("bytes", len(ciphertext)).Msg("read ciphertext")
			return nil
		}},
		pipeline.Stage{Name: pipeline.StageDeriveKey, Run: func(context.Context) error {
			key = s.envelope.DeriveKey(password)
			s.logger.Debug().Str("key_fingerprint", utils.KeyFingerprint(key)).Msg("derived key")
			return nil
		}},
		pipeline.Stage{Name: pipeline.StageDecrypt, Run: func(context.Context) error {
			var err error
			plaintext, err = s.envelope.Decrypt(key, iv, ciphertext)
			return err
		}},
		pipeline.Stage{Name: pipeline.StageParseContainer, Run: func(context.Context) error {
			var err error
			archive, err = container.Open(plaintext)
			return err
		}},
		pipeline.Stage{Name: pipeline.StageExtractEntries, Run: func(ctx context.Context) error {
			var err error
			result, err = s.extract(ctx, archive)
			return err
		}},
	)

	if err := run.Run(ctx); err != nil {
		return models.UnpackedPack{}, err
	}
	return result, nil
}

// extract joins container entries to the manifest by identifier. Every
// container entry besides the manifest must be listed, and every listed
// identifier must be present.
func (s *unpackService) extract(ctx context.Context, archive *container.Archive) (models.UnpackedPack, error) {
	raw, err := archive.Read(manifest.FileName)
	if err != nil {
		return models.UnpackedPack{}, fmt.Errorf("read manifest: %w", err)
	}
	m, err := manifest.Decode(raw)
	if err != nil {
		return models.UnpackedPack{}, err
	}
	if err = s.validator.Validate(ctx, m); err != nil {
		return models.UnpackedPack{}, fmt.Errorf("%w: %w: %w", ErrInvalidInput, manifest.ErrInvalidManifest, err)
	}

	listed := make(map[string]struct{}, m.Len())
	for _, e := range m.Entries {
		listed[e.ID] = struct{}{}
	}

	data := make(map[string][]byte, m.Len())
	for _, name := range archive.Names() {
		if err = ctx.Err(); err != nil {
			return models.UnpackedPack{}, err
		}
		if name == manifest.FileName {
			continue
		}
		if _, ok := listed[name]; !ok {
			return models.UnpackedPack{}, fmt.Errorf("%w: %w: %q", container.ErrInvalidContainer, ErrUnreferencedEntry, name)
		}
		if data[name], err = archive.Read(name); err != nil {
			return models.UnpackedPack{}, err
		}
	}

	assets := make([]models.ExtractedAsset, 0, m.Len())
	for _, e := range m.Entries {
		b, ok := data[e.ID]
		if !ok {
			return models.UnpackedPack{}, fmt.Errorf("%w: %q listed in the manifest", container.ErrEntryNotFound, e.ID)
		}
		assets = append(assets, models.ExtractedAsset{Entry: e, Data: b})
	}

	s.logger.Info().Int("entries", len(assets)).Msg("extracted entries")
	return models.UnpackedPack{Manifest: m, Assets: assets}, nil
}

// Decrypt implements [UnpackService]. Decrypted bytes reach out as they are
// produced; a padding failure at the end of the stream is still reported
// after out has received everything before the final block.
func (s *unpackService) Decrypt(ctx context.Context, in io.Reader, password string, out io.Writer) (int64, error) {
	var (
		key     []byte
		written int64
	)

	run := pipeline.New("decrypt", s.logger,
		pipeline.Stage{Name: pipeline.StageDeriveKey, Run: func(context.Context) error {
			key = s.envelope.DeriveKey(password)
			s.logger.Debug().Str("key_fingerprint", utils.KeyFingerprint(key)).Msg("derived key")
			return nil
		}},
		pipeline.Stage{Name: pipeline.StageDecrypt, Run: func(context.Context) error {
			r, err := s.envelope.NewOpenReader(in, key)
			if err != nil {
				return err
			}
			written, err = io.Copy(out, r)
			return err
		}},
	)

	if err := run.Run(ctx); err != nil {
		return written, err
	}
	return written, nil
}
