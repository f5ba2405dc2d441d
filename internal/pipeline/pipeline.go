package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/riff-pack/internal/logger"
)

// Stage names shared by the pack and unpack runs.
const (
	StageScanning        = "scanning assets"
	StageWritePack       = "writing pack"
	StageDecryptedCopy   = "writing decrypted copy"
	StageBuildManifest   = "building manifest"
	StageDeriveKey       = "deriving key"
	StageCompressEncrypt = "compressing and encrypting"
	StageReadIV          = "reading IV"
	StageReadCiphertext  = "reading ciphertext"
	StageDecrypt         = "decrypting"
	StageParseContainer  = "parsing container"
	StageExtractEntries  = "extracting entries"
)

type Pipeline struct {
	name   string
	stages []Stage
	logger *logger.Logger
}

func New(name string, log *logger.Logger, stages ...Stage) *Pipeline {
	return &Pipeline{name: name, stages: stages, logger: log}
}

// Run executes the stages in order. A cancelled context stops the run before
// the next stage starts. The returned error wraps the failing stage's error
// and names the stage.
func (p *Pipeline) Run(ctx context.Context) error {
	start := time.Now()
	for _, stage := range p.stages {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("%s: %s: %w", p.name, stage.Name, err)
		}

		p.logger.Debug().Str("pipeline", p.name).Str("stage", stage.Name).Msg("stage started")
		stageStart := time.Now()

		if err := stage.Run(ctx); err != nil {
			p.logger.Error().Err(err).Str("pipeline", p.name).Str("stage", stage.Name).Msg("stage failed")
			return fmt.Errorf("%s: %s: %w", p.name, stage.Name, err)
		}

		p.logger.Debug().
			Str("pipeline", p.name).
			Str("stage", stage.Name).
			Dur("elapsed", time.Since(stageStart)).
			Msg("stage finished")
	}

	p.logger.Info().Str("pipeline", p.name).Dur("elapsed", time.Since(start)).Msg("done")
	return nil
}

// Len returns the number of stages.
func (p *Pipeline) Len() int {
	return len(p.stages)
}
