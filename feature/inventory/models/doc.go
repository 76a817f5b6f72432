// Package models defines the persisted inventory records and their schema.
//
//   - Product (Produtos): barcode (unique), name, current stock.
//   - CountHistory (Historico_Contagem): one row per applied count, holding
//     the product reference, the scanned barcode, the quantity delta and the
//     session timestamp.
//
// A product's stock equals the sum of the quantities of its history rows,
// because counting sessions are the only writer of stock.
package models
