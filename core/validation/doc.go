// Package validation wraps go-playground/validator for request DTOs.
//
// Handlers decode a request body into a typed struct, trim it, and call
// Struct; Message turns the first failing field into the short Portuguese
// message returned to the scanner UI.
package validation
