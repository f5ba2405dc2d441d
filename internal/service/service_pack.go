// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

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
	"github.com/MKhiriev/riff-pack/models"
)

type packService struct {
	envelope crypto.EnvelopeService
	ids      IDGenerator
	method   container.Method

	logger *logger.Logger
}

func NewPackService(envelope crypto.EnvelopeService, ids IDGenerator, method container.Method, logger *logger.Logger) PackService {
	return &packService{
		envelope: envelope,
		ids:      ids,
		method:   method,
		logger:   logger.WithComponent("pack"),
	}
}

// Pack implements [PackService]. The container is written straight into the
// cipher stream, so memory use does not grow with the pack size beyond the
// asset bytes the caller already holds.
func (s *packService) Pack(ctx context.Context, groups []models.AssetGroup, password string, out io.Writer) (models.PackReport, error) {
	var (
		m       models.Manifest
		payload [][]byte
		key     []byte
		written int64
	)

	run := pipeline.New("pack", s.logger,
		pipeline.Stage{Name: pipeline.StageBuildManifest, Run: func(context.Context) error {
			var err error
			m, payload, err = s.buildManifest(groups)
			return err
		}},
		pipeline.Stage{Name: pipeline.StageDeriveKey, Run: func(context.Context) error {
			key = s.envelope.DeriveKey(password)
			s.logger.Debug().Str("key_fingerprint", utils.KeyFingerprint(key)).Msg("derived key")
			return nil
		}},
		pipeline.Stage{Name: pipeline.StageCompressEncrypt, Run: func(ctx context.Context) error {
			var err error
			written, err = s.writeEnvelope(ctx, m, payload, key, out)
			return err
		}},
	)

	if err := run.Run(ctx); err != nil {
		return models.PackReport{}, err
	}

	return models.PackReport{
		Groups:       len(groups),
		Entries:      m.Entries,
		BytesWritten: written,
	}, nil
}

// buildManifest assigns an identifier to every asset. payload[i] holds the
// bytes of m.Entries[i].
func (s *packService) buildManifest(groups []models.AssetGroup) (models.Manifest, [][]byte, error) {
	count := 0
	for _, g := range groups {
		count += len(g.Assets)
	}

	m := models.Manifest{Entries: make([]models.ManifestEntry, 0, count)}
	payload := make([][]byte, 0, count)
	for _, g := range groups {
		for _, a := range g.Assets {
			id, err := s.ids.Generate()
			if err != nil {
				return models.Manifest{}, nil, fmt.Errorf("generate identifier: %w", err)
			}

			m.Entries = append(m.Entries, models.ManifestEntry{
				ID:       id,
				GroupKey: g.Key,
				Index:    a.Index,
				Label:    a.Label,
				Status:   a.Status,
			})
			payload = append(payload, a.Data)
		}
	}

	s.logger.Info().Int("groups", len(groups)).Int("entries", m.Len()).Msg("built manifest")
	return m, payload, nil
}

func (s *packService) writeEnvelope(ctx context.Context, m models.Manifest, payload [][]byte, key []byte, out io.Writer) (int64, error) {
	manifestBytes, err := manifest.Encode(m)
	if err != nil {
		return 0, err
	}

	counter := &countingWriter{w: out}
	sealed, err := s.envelope.NewSealWriter(counter, key)
	if err != nil {
		return 0, err
	}

	zw, err := container.NewWriter(sealed, container.WithMethod(s.method))
	if err != nil {
		return 0, err
	}

	if err = zw.Add(manifest.FileName, manifestBytes); err != nil {
		return 0, err
	}
	for i, entry := range m.Entries {
		if err = ctx.Err(); err != nil {
			return 0, err
		}
		if err = zw.Add(entry.ID, payload[i]); err != nil {
			return 0, err
		}
		s.logger.Debug().Str("id", entry.ID).Int("group", entry.GroupKey).Int("index", entry.Index).Msg("wrote entry")
	}

	if err = zw.Close(); err != nil {
		return 0, err
	}
	if err = sealed.Close(); err != nil {
		return 0, err
	}

	s.logger.Info().Int64("bytes", counter.n).Str("method", s.method.String()).Msg("wrote envelope")
	return counter.n, nil
}

type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)
	return n, err
}
