package http

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abdul-hamid-achik/multiform/packages/multipart"
)

func TestRequest_Setters(t *testing.T) {
	req := NewRequest("POST", "http://example.com").
		SetHeader("X-Trace", "abc").
		SetQueryParam("page", "2").
		SetTimeout(5 * time.Second)

	assert.Equal(t, "abc", req.Headers["X-Trace"])
	assert.Equal(t, "2", req.QueryParams["page"])
	assert.Equal(t, 5*time.Second, req.Timeout)
	assert.Equal(t, BodyNone, req.BodyType)
}

func TestRequest_BuildURL(t *testing.T) {
	req := NewRequest("GET", "http://example.com/search?q=base")
	req.SetQueryParam("page", "2")
	req.SetQueryParam("limit", "10")

	url := req.BuildURL()

	assert.Contains(t, url, "q=base")
	assert.Contains(t, url, "page=2")
	assert.Contains(t, url, "limit=10")
}

func TestRequest_BuildURL_NoParams(t *testing.T) {
	req := NewRequest("GET", "http://example.com/plain")

	assert.Equal(t, "http://example.com/plain", req.BuildURL())
}

func TestRequest_SetJSON(t *testing.T) {
	req := NewRequest("POST", "http://example.com")

	err := req.SetJSON(map[string]any{"name": "Tina"})

	require.NoError(t, err)
	assert.Equal(t, BodyJSON, req.BodyType)
	assert.JSONEq(t, `{"name":"Tina"}`, string(req.Body))
}

func TestRequest_SetJSON_Unmarshalable(t *testing.T) {
	req := NewRequest("POST", "http://example.com")

	err := req.SetJSON(func() {})

	assert.Error(t, err)
}

func TestRequest_SetForm(t *testing.T) {
	req := NewRequest("POST", "http://example.com")
	req.SetForm(map[string]any{"b": "2", "a": "1"})

	assert.Equal(t, BodyForm, req.BodyType)
	assert.Equal(t, "a=1&b=2", string(req.Body))
}

func TestRequest_AddPart(t *testing.T) {
	req := NewRequest("POST", "http://example.com")
	req.AddPart(multipart.Text("first", "1"))
	req.AddPart(multipart.Text("second", "2"))

	assert.Equal(t, BodyMultipart, req.BodyType)
	require.Len(t, req.Parts, 2)
	assert.Equal(t, "first", req.Parts[0].Name)
	assert.Equal(t, "second", req.Parts[1].Name)
}

func TestBodyType_ContentType(t *testing.T) {
	assert.Equal(t, "application/json", BodyJSON.ContentType())
	assert.Equal(t, "application/x-www-form-urlencoded", BodyForm.ContentType())
	assert.Empty(t, BodyRaw.ContentType())
	assert.Empty(t, BodyMultipart.ContentType())
	assert.Empty(t, BodyNone.ContentType())
}
