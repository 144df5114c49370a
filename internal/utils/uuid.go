package utils

import "github.com/google/uuid"

// UUIDGenerator issues identifiers for subjects, documents and stored files.
type UUIDGenerator struct{}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

// Generate returns a UUIDv7 so that ids sort by creation time. It falls back
// to a random v4 if the v7 clock source fails.
func (g *UUIDGenerator) Generate() string {
	if id, err := uuid.NewV7(); err == nil {
		return id.String()
	}
	return uuid.NewString()
}

