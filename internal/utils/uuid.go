package utils

import "github.com/google/uuid"

// UUIDGenerator assigns user ids. Ids are UUIDv7 so they sort by creation
// time; a random v4 id is used if the v7 clock source fails.
type UUIDGenerator struct {
	newV7 func() (uuid.UUID, error)
}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{newV7: uuid.NewV7}
}

func (g *UUIDGenerator) Generate() string {
	id, err := g.newV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}
