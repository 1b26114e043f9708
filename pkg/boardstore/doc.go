// Package boardstore provides durable storage for board records: the
// boardspec JSON a board was authored from, its extruded IGES export, and
// bookkeeping timestamps, addressed by an opaque ID.
//
// # Architecture
//
// Store is the storage-backend interface, with two implementations:
//   - memory: in-process map, for development and tests
//   - mongo: MongoDB-backed, for the service deployment, shared across
//     instances behind a load balancer
//
// A record's ID is assigned by Create (a random UUID, see
// github.com/google/uuid) and never reused; Update requires the caller to
// have a previously-assigned ID.
//
// # Usage
//
//	store, err := boardstore.NewMongoStore(ctx, boardstore.MongoConfig{URI: "mongodb://localhost:27017"})
//	if err != nil {
//	    return err
//	}
//	defer store.Close()
//
//	rec := &boardstore.Record{Name: "four-layer-rev-b", Spec: specJSON}
//	if err := store.Create(ctx, rec); err != nil {
//	    return err
//	}
//	fmt.Println(rec.ID)
package boardstore
