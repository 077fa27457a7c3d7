package logbook

import (
	"math/rand/v2"
	"strconv"

	"github.com/google/uuid"
)

// NewID returns a new opaque entity id. Ids are random UUIDs; if the system
// random source is unavailable a pseudo-random base-36 id is returned instead.
func NewID() string {
	id, err := uuid.NewRandom()
	if err != nil {
		return fallbackID()
	}
	return id.String()
}

func fallbackID() string {
	return strconv.FormatUint(rand.Uint64(), 36) + strconv.FormatUint(rand.Uint64(), 36)
}
