// Package middleware contains HTTP middleware for the Fiber application.
//
// # Components
//
//   - RayID: tags every request with a request id (X-Ray-ID), stores it in
//     the fiber locals for logger.WithRayID and echoes it in the response.
//
// Request logging is registered inline in cmd/start.go because it closes
// over the application logger.
package middleware
