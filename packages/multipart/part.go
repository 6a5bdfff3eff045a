package multipart

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gabriel-vasile/mimetype"
)

// PartKind identifies which content variant a Part carries.
type PartKind int

const (
	// KindText is an inline UTF-8 text field
	KindText PartKind = iota
	// KindData is an inline binary payload with a known length
	KindData
	// KindFile references a file on disk whose size was recorded at
	// construction time
	KindFile
)

// Part is one named field in a multipart form. Parts are immutable value
// objects: built by a constructor, consumed by the encoder, never mutated.
// Duplicate names are allowed, per multipart semantics (repeated
// array-style fields).
type Part struct {
	Name     string
	Kind     PartKind
	Value    string // KindText
	Data     []byte // KindData
	Path     string // KindFile
	Size     int64  // KindFile: byte length recorded at construction
	MimeType string
	Filename string
}

// Text returns an inline text part. Text parts get no Content-Type or
// Content-Length header lines, only the disposition.
func Text(name, value string) Part {
	return Part{Name: name, Kind: KindText, Value: value}
}

// Data returns an inline binary part. An empty mimeType is detected from
// the payload bytes, falling back to application/octet-stream.
func Data(name string, data []byte, mimeType, filename string) Part {
	if mimeType == "" {
		mimeType = mimetype.Detect(data).String()
	}
	return Part{Name: name, Kind: KindData, Data: data, MimeType: mimeType, Filename: filename}
}

// File returns a file-backed binary part. The file is stat'd once, here;
// the recorded size is what the encoder later writes as Content-Length, so
// if the file changes between construction and encoding that header will be
// wrong. An empty filename defaults to the path's last component. An empty
// mimeType is detected from the file's content, falling back to
// application/octet-stream.
func File(name, path, mimeType, filename string) (Part, error) {
	info, err := os.Stat(path)
	if err != nil {
		return Part{}, fmt.Errorf("%w: %s: %v", ErrInvalidFile, path, err)
	}
	if info.IsDir() {
		return Part{}, fmt.Errorf("%w: %s is a directory", ErrInvalidFile, path)
	}

	if filename == "" {
		filename = filepath.Base(path)
	}
	if mimeType == "" {
		if mt, merr := mimetype.DetectFile(path); merr == nil {
			mimeType = mt.String()
		} else {
			mimeType = "application/octet-stream"
		}
	}

	return Part{
		Name:     name,
		Kind:     KindFile,
		Path:     path,
		Size:     info.Size(),
		MimeType: mimeType,
		Filename: filename,
	}, nil
}

// PayloadSize returns the part's payload byte count, excluding all
// boundary and header framing.
func (p Part) PayloadSize() int64 {
	switch p.Kind {
	case KindData:
		return int64(len(p.Data))
	case KindFile:
		return p.Size
	default:
		return int64(len(p.Value))
	}
}
