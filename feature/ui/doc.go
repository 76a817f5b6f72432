// Package ui serves the single page used at the counting station.
//
// The page is embedded in the binary and talks only to the /api endpoints:
// it scans, registers unknown barcodes, accumulates a session in the
// browser and posts it to /api/salvar_contagem.
package ui
