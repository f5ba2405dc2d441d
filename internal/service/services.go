package service

import (
	"github.com/MKhiriev/riff-pack/internal/container"
	"github.com/MKhiriev/riff-pack/internal/crypto"
	"github.com/MKhiriev/riff-pack/internal/logger"
)

type Services struct {
	PackService   PackService
	UnpackService UnpackService
}

func NewServices(envelope crypto.EnvelopeService, ids IDGenerator, method container.Method, logger *logger.Logger) *Services {
	return &Services{
		PackService:   NewPackValidationService().Wrap(NewPackService(envelope, ids, method, logger)),
		UnpackService: NewUnpackService(envelope, logger),
	}
}
