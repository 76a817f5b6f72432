// Package product implements barcode lookup, product registration and the
// full stock listing.
//
// Registration always starts a product at zero stock; only a counting
// session (feature/counting) changes stock afterwards. Registering a barcode
// twice fails with ErrDuplicateBarcode and leaves the first product intact.
//
// # HTTP Endpoints
//
//   - POST /api/escanear : {codigo_barra} -> {success, message, codigo_barra, nome?}
//   - POST /api/cadastrar_produto : {codigo_barra, nome} -> {success, message}
//   - GET /api/dados_completos : [{codigo_barra, nome, estoque_atual}]
package product
