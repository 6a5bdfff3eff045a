package http

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/abdul-hamid-achik/multiform/packages/multipart"
)

// payload is an assembled request body: what the transport streams from
// plus the headers to attach. cleanup, when non-nil, must run once the
// round trip is done; for file-backed multipart bodies it closes and
// removes the temp file.
type payload struct {
	reader        io.Reader
	contentType   string
	contentLength int64
	cleanup       func()
}

// buildPayload assembles the request body. Multipart bodies are encoded in
// memory when the summed payload sizes fit under the encoder's memory
// limit, and streamed through a temp file otherwise.
func buildPayload(r *Request) (*payload, error) {
	switch r.BodyType {
	case BodyNone:
		return &payload{}, nil
	case BodyMultipart:
		return buildMultipartPayload(r)
	default:
		p := &payload{
			reader:        bytes.NewReader(r.Body),
			contentLength: int64(len(r.Body)),
		}
		if ct := r.BodyType.ContentType(); ct != "" && r.Headers["Content-Type"] == "" {
			p.contentType = ct
		}
		return p, nil
	}
}

func buildMultipartPayload(r *Request) (*payload, error) {
	enc := multipart.NewEncoder(r.Boundary)

	var total int64
	for _, p := range r.Parts {
		total += p.PayloadSize()
	}

	if total >= multipart.MemoryLimit {
		body, err := enc.EncodeToFile(r.Parts)
		if err != nil {
			return nil, err
		}
		f, err := os.Open(body.Path)
		if err != nil {
			os.Remove(body.Path)
			return nil, fmt.Errorf("opening encoded body %s: %w", body.Path, err)
		}
		return &payload{
			reader:        f,
			contentType:   body.ContentType,
			contentLength: body.ContentLength,
			cleanup: func() {
				f.Close()
				os.Remove(body.Path)
			},
		}, nil
	}

	body, err := enc.EncodeToMemory(r.Parts)
	if err != nil {
		return nil, err
	}
	return &payload{
		reader:        bytes.NewReader(body.Data),
		contentType:   body.ContentType,
		contentLength: body.ContentLength,
	}, nil
}
