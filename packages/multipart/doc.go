// Package multipart encodes ordered form fields into multipart/form-data
// bodies.
//
// It supports two output modes:
//   - EncodeToMemory produces one contiguous buffer, bounded by MemoryLimit
//   - EncodeToFile streams the body into a temp file in fixed-size chunks,
//     suitable for arbitrarily large uploads
//
// Binary parts carry explicit Content-Type and Content-Length header lines;
// text parts carry only the disposition. The caller owns the temp file
// produced by EncodeToFile and must delete it once the upload completes.
package multipart
