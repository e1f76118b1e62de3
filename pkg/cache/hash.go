package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
)

// hashKey builds a cache key as namespace:sha256(parts). The namespace
// keeps key families (rendered payloads, future scopes) from colliding in
// backends that share one store, and the full 256-bit digest makes
// collisions between distinct fingerprint/kind tuples negligible.
func hashKey(namespace string, parts ...any) string {
	h := sha256.New()
	enc := json.NewEncoder(h)
	for _, part := range parts {
		_ = enc.Encode(part)
	}
	return namespace + ":" + hex.EncodeToString(h.Sum(nil))
}

// Hash returns the hex SHA-256 digest of data. Objects use it to derive
// stable content fingerprints from whatever determines their rendered
// output (DOT text, parameter tuples).
func Hash(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}
