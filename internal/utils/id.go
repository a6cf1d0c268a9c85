package utils

import (
	"crypto/rand"
	"time"

	"github.com/oklog/ulid/v2"
)

// GenerateID returns a prefixed ULID, e.g. "txn_01J5KQ...". ULIDs sort by
// creation time, which keeps transaction identifiers in submission order in
// logs.
func GenerateID(prefix string) string {
	id := ulid.MustNew(ulid.Timestamp(time.Now()), ulid.Monotonic(rand.Reader, 0))
	return prefix + "_" + id.String()
}
