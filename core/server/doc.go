// Package server holds the HTTP server configuration.
//
// The application entry point (cmd/start.go) builds the fiber app from this
// configuration: the listen address and the request body limit.
package server
