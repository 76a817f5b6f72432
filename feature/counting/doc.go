// Package counting applies counting sessions to stock.
//
// A session is the set of barcodes scanned during one count together with
// the quantity counted for each. Saving it adds every quantity to the stock
// of the matching product and appends a row to the count history, so that
// stock always equals the sum of a product's history. The whole session is
// one database transaction; a failure on any entry rolls back all of them.
//
// Barcodes that are not registered are not an error. They are skipped, and
// the response lists them under "ignorados" so the operator can register
// them and count again.
//
// # HTTP Endpoints
//
//   - POST /api/salvar_contagem : {"<barcode>": {"quantidade": n}} -> {success, message, aplicados, ignorados}
//   - GET /api/historico : ?codigo_barra=&limite= -> [{produto_id, codigo_barra_lido, quantidade, data_hora}]
package counting
