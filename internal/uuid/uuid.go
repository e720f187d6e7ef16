// uuid simple generator that allows mocking
package uuid

//go:generate mockgen -destination=mock/mock_generator.go -package=mockuuid . Generator

import (
	"github.com/google/uuid"
)

// Generator hands out identifiers, such as the reference ids attached to
// failed commands so a user report can be matched to the log line.
type Generator interface {
	New() string
}

// GoogleUUIDGenerator implements the Generator interface using Google's UUID package
type GoogleUUIDGenerator struct{}

// New generates a new UUID string
func (g *GoogleUUIDGenerator) New() string {
	return uuid.New().String()
}

// Short returns the first block of a new UUID, short enough to read out in chat.
func (g *GoogleUUIDGenerator) Short() string {
	return g.New()[:8]
}

func NewGoogleUUIDGenerator() *GoogleUUIDGenerator {
	return &GoogleUUIDGenerator{}
}
