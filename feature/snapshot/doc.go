// Package snapshot exports the product listing to object storage.
//
// Each export writes snapshots/estoque-<UTC time>-<id>.json holding
// {"gerado_em": ..., "produtos": [...]}. The bucket is created on first use
// and, when storage.retention is set, only the newest snapshots are kept.
//
// # HTTP Endpoints
//
//   - POST /api/snapshots : Exports the current listing.
//   - GET /api/snapshots : Lists stored snapshots, newest first.
//   - GET /api/snapshots/:name : Returns a stored snapshot.
package snapshot
