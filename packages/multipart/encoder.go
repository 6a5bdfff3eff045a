package multipart

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	// MemoryLimit is the payload ceiling for EncodeToMemory. It counts
	// payload bytes only; boundary and header overhead is excluded, so the
	// final buffer may run slightly over. Larger bodies must go through
	// EncodeToFile.
	MemoryLimit = 50_000_000

	// copyChunkSize bounds the intermediate buffer used when copying part
	// payloads into the sink.
	copyChunkSize = 128 * 1024

	boundaryPrefix = "multiform."
)

// Encoder serializes an ordered sequence of Parts into a multipart/form-data
// body. Its only state is the immutable boundary, so one Encoder may be used
// from multiple goroutines; each encode call does independent I/O.
type Encoder struct {
	boundary string
}

// NewEncoder returns an encoder delimiting parts with the given boundary.
// An empty boundary gets a generated one. The boundary must not occur inside
// any part's content; that is the caller's responsibility and is not
// validated.
func NewEncoder(boundary string) *Encoder {
	if boundary == "" {
		boundary = GenerateBoundary()
	}
	return &Encoder{boundary: boundary}
}

// GenerateBoundary returns a fresh unique boundary token.
func GenerateBoundary() string {
	return boundaryPrefix + uuid.NewString()
}

// Boundary returns the encoder's boundary token.
func (e *Encoder) Boundary() string {
	return e.boundary
}

// MemoryBody is the in-memory result of EncodeToMemory.
type MemoryBody struct {
	ContentType   string
	ContentLength int64
	Data          []byte
}

// FileBody is the result of EncodeToFile. The temp file at Path belongs to
// the caller: the encoder never deletes it, on success or failure, since a
// successful body is what the request streams from and a partial one may be
// wanted for diagnostics. Schedule the removal once the upload completes.
type FileBody struct {
	ContentType   string
	ContentLength int64
	Path          string
}

// EncodeToMemory serializes parts into one contiguous buffer. It fails with
// ErrTooMuchData before any I/O when the summed payload sizes reach
// MemoryLimit. The content type carries the boundary quoted.
func (e *Encoder) EncodeToMemory(parts []Part) (*MemoryBody, error) {
	var total int64
	for _, p := range parts {
		total += p.PayloadSize()
	}
	if total >= MemoryLimit {
		return nil, fmt.Errorf("%w: %d payload bytes, limit %d", ErrTooMuchData, total, MemoryLimit)
	}

	var buf bytes.Buffer
	if err := e.writeBody(&buf, parts); err != nil {
		return nil, err
	}

	return &MemoryBody{
		ContentType:   `multipart/form-data; boundary="` + e.boundary + `"`,
		ContentLength: int64(buf.Len()),
		Data:          buf.Bytes(),
	}, nil
}

// EncodeToFile serializes parts into a freshly created temp file, streaming
// file-backed payloads in copyChunkSize chunks so memory use stays bounded
// regardless of payload size. No size ceiling applies. The reported
// ContentLength is the measured size of the finished file, which includes
// framing overhead. The content type carries the boundary unquoted.
//
// On a mid-stream failure the partially written file is left at the
// returned path inside the error message; cleanup is the caller's job in
// every case.
func (e *Encoder) EncodeToFile(parts []Part) (*FileBody, error) {
	pattern := fmt.Sprintf("multiform-%d-*.tmp", time.Now().UnixNano())
	f, err := os.CreateTemp("", pattern)
	if err != nil {
		return nil, fmt.Errorf("%w: creating temp file: %v", ErrInvalidFile, err)
	}
	path := f.Name()

	if err := e.writeBody(f, parts); err != nil {
		f.Close()
		return nil, fmt.Errorf("encoding to %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return nil, fmt.Errorf("%w: closing %s: %v", ErrStream, path, err)
	}

	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("%w: measuring %s: %v", ErrInvalidOutputFile, path, err)
	}

	return &FileBody{
		ContentType:   "multipart/form-data; boundary=" + e.boundary,
		ContentLength: info.Size(),
		Path:          path,
	}, nil
}

// writeBody writes every part in order followed by the closing boundary.
// There is no CRLF after the closing boundary line. A zero-length part list
// produces just the closing boundary, which is still a valid body.
func (e *Encoder) writeBody(w io.Writer, parts []Part) error {
	for i := range parts {
		if err := e.writePart(w, &parts[i]); err != nil {
			return err
		}
	}
	return writeString(w, "--"+e.boundary+"--")
}

// writePart writes one part: boundary line, headers, blank line, payload,
// trailing CRLF. Header order is fixed: disposition, then for binary parts
// Content-Type and Content-Length.
func (e *Encoder) writePart(w io.Writer, p *Part) error {
	var h strings.Builder
	h.WriteString("--" + e.boundary + "\r\n")
	h.WriteString(`Content-Disposition: form-data; name="` + p.Name + `"`)
	if p.Kind != KindText {
		h.WriteString(`; filename="` + p.Filename + `"`)
	}
	h.WriteString("\r\n")
	if p.Kind != KindText {
		h.WriteString("Content-Type: " + p.MimeType + "\r\n")
		h.WriteString(fmt.Sprintf("Content-Length: %d\r\n", p.PayloadSize()))
	}
	h.WriteString("\r\n")

	if err := writeString(w, h.String()); err != nil {
		return err
	}

	switch p.Kind {
	case KindText:
		if err := copyChunks(w, strings.NewReader(p.Value)); err != nil {
			return err
		}
	case KindData:
		if err := copyChunks(w, bytes.NewReader(p.Data)); err != nil {
			return err
		}
	case KindFile:
		src, err := os.Open(p.Path)
		if err != nil {
			return fmt.Errorf("%w: %s: %v", ErrInvalidFile, p.Path, err)
		}
		copyErr := copyChunks(w, src)
		src.Close()
		if copyErr != nil {
			return copyErr
		}
	}

	return writeString(w, "\r\n")
}

// copyChunks copies src into dst through a fixed-size intermediate buffer,
// released when the call returns. A zero-length source is a successful
// no-op. Short writes fail with ErrStream rather than truncating silently.
func copyChunks(dst io.Writer, src io.Reader) error {
	buf := make([]byte, copyChunkSize)
	for {
		n, err := src.Read(buf)
		if n > 0 {
			wn, werr := dst.Write(buf[:n])
			if werr != nil {
				return fmt.Errorf("%w: write: %v", ErrStream, werr)
			}
			if wn != n {
				return fmt.Errorf("%w: short write: %d of %d bytes", ErrStream, wn, n)
			}
		}
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return fmt.Errorf("%w: read: %v", ErrStream, err)
		}
	}
}

func writeString(w io.Writer, s string) error {
	n, err := io.WriteString(w, s)
	if err != nil {
		return fmt.Errorf("%w: write: %v", ErrStream, err)
	}
	if n != len(s) {
		return fmt.Errorf("%w: short write: %d of %d bytes", ErrStream, n, len(s))
	}
	return nil
}
