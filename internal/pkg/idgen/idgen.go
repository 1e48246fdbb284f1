package idgen

import "github.com/google/uuid"

// Generator produces unique identifiers for new records. Injected into
// services so tests can supply deterministic IDs.
type Generator interface {
	NewID() string
}

type uuidGenerator struct{}

// NewUUIDGenerator returns a Generator backed by UUIDv7, so IDs sort by
// creation time.
func NewUUIDGenerator() Generator {
	return uuidGenerator{}
}

func (uuidGenerator) NewID() string {
	// NewV7 only fails when the random source does, which is fatal anyway.
	return uuid.Must(uuid.NewV7()).String()
}
