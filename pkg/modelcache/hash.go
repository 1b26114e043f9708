package modelcache

import (
	"crypto/sha256"
	"encoding/hex"
)

// Hash returns the SHA-256 hex digest of data, the basis for every cache
// key this package issues: both the Model record stream and the rendered
// DOT graph are deterministic functions of their input, so their own
// content hash is a valid, collision-resistant cache key.
func Hash(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

// Keyer namespaces content hashes into cache keys. The zero value is
// ready to use.
type Keyer struct {
	prefix string
}

// NewKeyer returns a Keyer whose keys are all prefixed with prefix (empty
// for no namespacing).
func NewKeyer(prefix string) Keyer {
	return Keyer{prefix: prefix}
}

// ModelKey returns the cache key for an associated Model's serialized
// record stream, given the content hash of its source input (the
// boardspec document or uploaded IGES file it was built from).
func (k Keyer) ModelKey(sourceHash string) string {
	return k.prefix + "model:" + sourceHash
}

// DotKey returns the cache key for a rendered Graphviz DOT dependency
// dump of a Model, given the same source hash plus the rendering engine
// name (graphviz supports several layout engines with different output).
func (k Keyer) DotKey(sourceHash, engine string) string {
	return k.prefix + "dot:" + engine + ":" + sourceHash
}

// IGESKey returns the cache key for the final exported IGES text of a
// Model, given its source hash.
func (k Keyer) IGESKey(sourceHash string) string {
	return k.prefix + "iges:" + sourceHash
}
