// Package config loads the ironplane service's TOML configuration file:
// the HTTP listen address, the board cache backend, and the board record
// store backend. It is grounded on the same github.com/BurntSushi/toml
// decode-into-struct pattern the rest of the ecosystem uses for manifest
// parsing, applied here to the service's own settings instead of a
// third-party dependency manifest.
//
// # Example
//
//	[server]
//	addr = ":8080"
//
//	[cache]
//	backend = "file"
//	dir = "/var/cache/ironplane"
//
//	[store]
//	backend = "mongo"
//	mongo_uri = "mongodb://localhost:27017"
package config
