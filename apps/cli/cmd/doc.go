// Package cmd implements the multiform CLI commands using Cobra.
//
// Available commands:
//   - encode: Build a multipart/form-data body from fields and files
//   - send: Encode a form and post it to an HTTP endpoint
//   - version: Show multiform version information
//
// Encoding streams to a temp file by default so large attachments never
// need to fit in memory; --memory switches to the bounded in-memory mode.
package cmd
