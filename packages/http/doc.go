// Package http models HTTP requests and responses on top of the standard
// library's client.
//
// It wraps the standard library's http package with additional features:
//   - Request building with query params and raw/JSON/form/multipart bodies
//   - Multipart bodies assembled through the multipart encoder, switching
//     to disk-streamed encoding for large payloads
//   - Response helpers for headers, status classes and JSON extraction
package http
