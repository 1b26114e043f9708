// Package api implements the ironplane HTTP service: a small REST surface
// over pkg/boardstore and pkg/boardspec that lets a client submit a board
// outline spec, have it extruded into IGES, and fetch the result back.
//
// # Routes
//
//	POST   /boards           create a board from a boardspec JSON body
//	GET    /boards           list stored boards
//	GET    /boards/{id}      fetch a board's metadata
//	GET    /boards/{id}/iges fetch (building on first request) a board's IGES export
//	DELETE /boards/{id}      delete a board
//
// Routing is built on github.com/go-chi/chi/v5; request logging uses
// github.com/charmbracelet/log, matching internal/cli's logger.
package api
