package common

import (
	"strings"

	"github.com/google/uuid"
)

// IDGenerator produces a new unique identifier on each call. The only
// contract is that successive calls yield distinct values with overwhelming
// probability; callers inject it so tests can supply deterministic ids.
type IDGenerator func() string

// NewIDGenerator returns a uuid-backed generator that prefixes every id,
// e.g. NewIDGenerator("p_") yields "p_5f3a1c2e...".
func NewIDGenerator(prefix string) IDGenerator {
	return func() string {
		return prefix + strings.ReplaceAll(uuid.NewString(), "-", "")
	}
}
