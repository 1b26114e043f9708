// Package modelcache caches the expensive, deterministic byproducts of
// board processing: the serialized IGES record stream of an associated
// Model, and rendered Graphviz DOT dependency-graph dumps. Both are pure
// functions of their input content, so they are cacheable by content hash
// with no invalidation logic beyond a TTL.
//
// Three Cache implementations are provided: NullCache (disables caching
// entirely), FileCache (single-process CLI usage, keyed into a sharded
// directory tree), and RedisCache (multi-instance service deployments,
// backed by redis/go-redis/v9). All three satisfy the same Cache
// interface, so callers select a backend once at startup and never branch
// on it again.
package modelcache
