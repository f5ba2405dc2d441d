package utils

import "github.com/google/uuid"

// UUIDGenerator issues random version 4 UUIDs. Manifest identifiers carry no
// ordering, so no timestamp is embedded.
type UUIDGenerator struct {
}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

func (g *UUIDGenerator) Generate() (string, error) {
	id, err := uuid.NewRandom()
	if err != nil {
		return "", err
	}

	return id.String(), nil
}
