package store

import "github.com/MKhiriev/riff-pack/internal/logger"

type Storages struct {
	PackFileStorage PackFileStorage
	AssetStorage    AssetStorage
}

func NewStorages(log *logger.Logger) *Storages {
	return &Storages{
		PackFileStorage: NewPackFileStorage(log),
		AssetStorage:    NewAssetStorage(log),
	}
}
