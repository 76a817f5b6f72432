// Package integrity provides health checks for the stock store and the
// snapshot bucket.
//
// # Checks Provided
//
//   - Schema: Validates that the Produtos and Historico_Contagem tables match the models (columns, types).
//   - Ledger: Verifies that every product's stock equals the sum of its recorded counts.
//   - Storage: Checks that the snapshot bucket and its snapshots/ folder exist.
//
// # HTTP Endpoints
//
//   - GET /integrity : Runs all checks.
//   - GET /integrity/schema : Runs the schema check.
//   - GET /integrity/ledger : Runs the ledger check.
//   - GET /integrity/storage : Runs the storage check (supports ?fix=true).
package integrity
