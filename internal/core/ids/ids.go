package ids

import (
	"fmt"

	"github.com/google/uuid"
)

// Kind identifies which entity collection an identifier belongs to.
// Identifiers are unique within their kind for the lifetime of the store.
type Kind string

const (
	KindListing Kind = "lst"
	KindTopic   Kind = "top"
	KindReply   Kind = "rpl"
)

// Generator mints collision-free identifiers for new entities.
// Generation only fails if the entropy source is exhausted; callers treat
// that as an internal error and abort the create.
type Generator interface {
	Next(kind Kind) (string, error)
}

type uuidGenerator struct{}

// NewGenerator returns a Generator backed by random UUIDs.
func NewGenerator() Generator {
	return uuidGenerator{}
}

func (uuidGenerator) Next(kind Kind) (string, error) {
	id, err := uuid.NewRandom()
	if err != nil {
		return "", fmt.Errorf("failed to generate %s identifier: %w", kind, err)
	}
	return fmt.Sprintf("%s_%s", kind, id.String()), nil
}
