package app

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/MKhiriev/riff-pack/internal/config"
	"github.com/MKhiriev/riff-pack/internal/container"
	"github.com/MKhiriev/riff-pack/internal/crypto"
	"github.com/MKhiriev/riff-pack/internal/logger"
	"github.com/MKhiriev/riff-pack/internal/manifest"
	"github.com/MKhiriev/riff-pack/internal/pipeline"
	"github.com/MKhiriev/riff-pack/internal/scanner"
	"github.com/MKhiriev/riff-pack/internal/service"
	"github.com/MKhiriev/riff-pack/internal/store"
	"github.com/MKhiriev/riff-pack/internal/utils"
	"github.com/MKhiriev/riff-pack/models"
)

// App runs the riffpack commands against the file system.
type App struct {
	cfg      *config.StructuredConfig
	scanner  scanner.Scanner
	services *service.Services
	storages *store.Storages

	logger *logger.Logger
}

// PackResult describes a finished pack run.
type PackResult struct {
	Scan   scanner.ScanResult
	Report models.PackReport
	Pack   models.StoredFile

	// DecryptedCopy is nil when the copy was skipped.
	DecryptedCopy *models.StoredFile
}

// UnpackResult describes a finished unpack run.
type UnpackResult struct {
	Manifest models.Manifest
	Paths    []string
}

// ListedEntry is one manifest entry together with the size and the BLAKE3
// fingerprint of its asset.
type ListedEntry struct {
	Entry       models.ManifestEntry
	Size        int
	Fingerprint string
}

// NewApp builds an App with the production scanner, services and storages.
func NewApp(cfg *config.StructuredConfig, log *logger.Logger) *App {
	services := service.NewServices(crypto.NewEnvelopeService(), utils.NewUUIDGenerator(), cfg.CompressionMethod(), log)
	return New(cfg, scanner.NewScanner(cfg.Layout(), log), services, store.NewStorages(log), log)
}

func New(cfg *config.StructuredConfig, sc scanner.Scanner, services *service.Services, storages *store.Storages, log *logger.Logger) *App {
	return &App{
		cfg:      cfg,
		scanner:  sc,
		services: services,
		storages: storages,
		logger:   log,
	}
}

// Pack discovers the assets under sourceDir, writes the encrypted pack to the
// configured output path and, unless disabled, a decrypted copy of it.
func (a *App) Pack(ctx context.Context, sourceDir, password string) (PackResult, error) {
	var result PackResult

	run := pipeline.New("riffpack", a.logger,
		pipeline.Stage{Name: pipeline.StageScanning, Run: func(ctx context.Context) error {
			scan, err := a.scanner.Scan(ctx, sourceDir)
			if err != nil {
				return fmt.Errorf("scan %s: %w", sourceDir, err)
			}
			for _, skipped := range scan.Skipped {
				a.logger.Warn().Err(skipped).Msg(MsgItemsSkipped)
			}
			if scan.AssetCount() == 0 {
				a.logger.Warn().Str("source", sourceDir).Msg(MsgNoAssetsFound)
			}
			result.Scan = scan
			return nil
		}},
		pipeline.Stage{Name: pipeline.StageWritePack, Run: func(ctx context.Context) error {
			stored, err := a.storages.PackFileStorage.WritePack(ctx, a.cfg.Pack.OutputPath, func(w io.Writer) error {
				report, err := a.services.PackService.Pack(ctx, result.Scan.Groups, password, w)
				result.Report = report
				return err
			})
			if err != nil {
				return err
			}
			result.Pack = stored
			a.logger.Info().
				Str("path", stored.Path).
				Int64("size", stored.Size).
				Str("fingerprint", stored.Fingerprint).
				Msg(MsgPackWritten)
			return nil
		}},
		pipeline.Stage{Name: pipeline.StageDecryptedCopy, Run: func(ctx context.Context) error {
			if a.cfg.Pack.SkipDecryptedCopy {
				a.logger.Info().Msg(MsgDecryptedCopySkipped)
				return nil
			}
			stored, err := a.Decrypt(ctx, result.Pack.Path, password, a.cfg.Pack.DecryptedCopyPath)
			if err != nil {
				return err
			}
			result.DecryptedCopy = &stored
			return nil
		}},
	)

	if err := run.Run(ctx); err != nil {
		return PackResult{}, err
	}
	return result, nil
}

// Decrypt streams the plaintext container of the pack at packPath into
// outPath.
func (a *App) Decrypt(ctx context.Context, packPath, password, outPath string) (models.StoredFile, error) {
	in, err := a.storages.PackFileStorage.OpenPack(packPath)
	if err != nil {
		return models.StoredFile{}, err
	}
	defer in.Close()

	stored, err := a.storages.PackFileStorage.WritePack(ctx, outPath, func(w io.Writer) error {
		_, err := a.services.UnpackService.Decrypt(ctx, in, password, w)
		return err
	})
	if err != nil {
		return models.StoredFile{}, err
	}

	a.logger.Info().Str("path", stored.Path).Int64("size", stored.Size).Msg(MsgContainerDecrypted)
	return stored, nil
}

// Unpack extracts every asset of the pack at packPath into outDir using the
// configured layout, so that scanning outDir reproduces the packed groups.
func (a *App) Unpack(ctx context.Context, packPath, password, outDir string) (UnpackResult, error) {
	unpacked, err := a.read(ctx, packPath, password)
	if err != nil {
		return UnpackResult{}, err
	}

	paths, err := a.storages.AssetStorage.ExtractAssets(ctx, outDir, a.cfg.Layout(), unpacked.Assets)
	if err != nil {
		return UnpackResult{}, err
	}

	a.logger.Info().Str("dir", outDir).Int("assets", len(paths)).Msg(MsgAssetsExtracted)
	return UnpackResult{Manifest: unpacked.Manifest, Paths: paths}, nil
}

// List returns the manifest entries of the pack at packPath in manifest order.
func (a *App) List(ctx context.Context, packPath, password string) ([]ListedEntry, error) {
	unpacked, err := a.read(ctx, packPath, password)
	if err != nil {
		return nil, err
	}

	entries := make([]ListedEntry, 0, len(unpacked.Assets))
	for _, asset := range unpacked.Assets {
		entries = append(entries, ListedEntry{
			Entry:       asset.Entry,
			Size:        len(asset.Data),
			Fingerprint: utils.Fingerprint(asset.Data),
		})
	}
	return entries, nil
}

func (a *App) read(ctx context.Context, packPath, password string) (models.UnpackedPack, error) {
	in, err := a.storages.PackFileStorage.OpenPack(packPath)
	if err != nil {
		return models.UnpackedPack{}, err
	}

	unpacked, err := a.services.UnpackService.Unpack(ctx, in, password)
	if closeErr := in.Close(); closeErr != nil && err == nil {
		err = fmt.Errorf("close pack: %w", closeErr)
	}
	if err != nil {
		return models.UnpackedPack{}, err
	}
	return unpacked, nil
}

// Message maps an error returned by App to the line shown to the user.
func Message(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, crypto.ErrDecryptionFailed), errors.Is(err, crypto.ErrEnvelopeTooShort):
		return MsgWrongPasswordOrCorrupt
	case errors.Is(err, service.ErrUnreferencedEntry), errors.Is(err, container.ErrEntryNotFound):
		return MsgInconsistentPack
	case errors.Is(err, container.ErrInvalidContainer), errors.Is(err, manifest.ErrInvalidManifest):
		return MsgMalformedPack
	case errors.Is(err, scanner.ErrSourceNotFound), errors.Is(err, store.ErrPackNotFound):
		return MsgNotFound
	case errors.Is(err, store.ErrPackLocked):
		return MsgPackLocked
	case errors.Is(err, store.ErrAssetExists):
		return MsgAssetExists
	case errors.Is(err, config.ErrInvalidPackConfig),
		errors.Is(err, config.ErrInvalidDiscoveryConfig),
		errors.Is(err, config.ErrInvalidLogConfig),
		errors.Is(err, config.ErrUnsupportedConfigFile):
		return MsgInvalidConfig
	default:
		return MsgUnexpectedError
	}
}
