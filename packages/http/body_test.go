package http

import (
	"io"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abdul-hamid-achik/multiform/packages/multipart"
)

func TestBuildPayload_None(t *testing.T) {
	p, err := buildPayload(NewRequest("GET", "http://example.com"))

	require.NoError(t, err)
	assert.Nil(t, p.reader)
	assert.Zero(t, p.contentLength)
	assert.Nil(t, p.cleanup)
}

func TestBuildPayload_JSON(t *testing.T) {
	req := NewRequest("POST", "http://example.com")
	require.NoError(t, req.SetJSON(map[string]any{"a": 1}))

	p, err := buildPayload(req)

	require.NoError(t, err)
	assert.Equal(t, "application/json", p.contentType)
	assert.Equal(t, int64(len(req.Body)), p.contentLength)
}

func TestBuildPayload_RawKeepsCallerContentType(t *testing.T) {
	req := NewRequest("POST", "http://example.com")
	req.SetHeader("Content-Type", "application/xml")
	req.SetBody([]byte("<a/>"))

	p, err := buildPayload(req)

	require.NoError(t, err)
	assert.Empty(t, p.contentType)
}

func TestBuildPayload_MultipartInMemory(t *testing.T) {
	req := NewRequest("POST", "http://example.com")
	req.SetBoundary("b")
	req.AddPart(multipart.Text("name", "Tina"))

	p, err := buildPayload(req)

	require.NoError(t, err)
	assert.Equal(t, `multipart/form-data; boundary="b"`, p.contentType)
	assert.Nil(t, p.cleanup)

	data, err := io.ReadAll(p.reader)
	require.NoError(t, err)
	assert.Equal(t, int64(len(data)), p.contentLength)
}

func TestBuildPayload_MultipartSwitchesToFileMode(t *testing.T) {
	req := NewRequest("POST", "http://example.com")
	req.SetBoundary("b")
	req.AddPart(multipart.Data("big", make([]byte, multipart.MemoryLimit), "application/octet-stream", "big.bin"))

	p, err := buildPayload(req)

	require.NoError(t, err)
	require.NotNil(t, p.cleanup)
	// file mode: unquoted boundary
	assert.Equal(t, "multipart/form-data; boundary=b", p.contentType)
	assert.Greater(t, p.contentLength, int64(multipart.MemoryLimit))

	f, ok := p.reader.(*os.File)
	require.True(t, ok)
	path := f.Name()

	_, statErr := os.Stat(path)
	require.NoError(t, statErr)

	p.cleanup()

	_, statErr = os.Stat(path)
	assert.True(t, os.IsNotExist(statErr))
}
