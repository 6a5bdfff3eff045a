package http

import (
	"encoding/json"
	"fmt"
	"net/url"
	"time"

	"github.com/abdul-hamid-achik/multiform/packages/form"
	"github.com/abdul-hamid-achik/multiform/packages/multipart"
)

// Request describes an HTTP request to be executed by the Client. Build one
// with NewRequest and the fluent setters; the body is set through exactly
// one of SetBody, SetJSON, SetForm or AddPart.
type Request struct {
	Method      string
	URL         string
	Headers     map[string]string
	QueryParams map[string]string
	BodyType    BodyType
	Body        []byte
	Parts       []multipart.Part
	Boundary    string // multipart boundary; generated when empty
	Timeout     time.Duration
}

func NewRequest(method, requestURL string) *Request {
	return &Request{
		Method:      method,
		URL:         requestURL,
		Headers:     make(map[string]string),
		QueryParams: make(map[string]string),
	}
}

func (r *Request) SetHeader(key, value string) *Request {
	r.Headers[key] = value
	return r
}

func (r *Request) SetQueryParam(key, value string) *Request {
	r.QueryParams[key] = value
	return r
}

func (r *Request) SetTimeout(d time.Duration) *Request {
	r.Timeout = d
	return r
}

// SetBody sets a raw body. Content-Type is left to the caller's headers.
func (r *Request) SetBody(body []byte) *Request {
	r.Body = body
	r.BodyType = BodyRaw
	return r
}

// SetJSON marshals v and sets it as a JSON body.
func (r *Request) SetJSON(v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshaling JSON body: %w", err)
	}
	r.Body = data
	r.BodyType = BodyJSON
	return nil
}

// SetForm encodes values as an url-encoded form body.
func (r *Request) SetForm(values map[string]any) *Request {
	r.Body = []byte(form.Encode(values))
	r.BodyType = BodyForm
	return r
}

// AddPart appends a multipart form field and marks the body as multipart.
// Parts are encoded in the order they were added.
func (r *Request) AddPart(p multipart.Part) *Request {
	r.Parts = append(r.Parts, p)
	r.BodyType = BodyMultipart
	return r
}

// SetBoundary fixes the multipart boundary instead of generating one.
func (r *Request) SetBoundary(boundary string) *Request {
	r.Boundary = boundary
	return r
}

// BuildURL merges the query params into the request URL.
func (r *Request) BuildURL() string {
	if len(r.QueryParams) == 0 {
		return r.URL
	}

	u, err := url.Parse(r.URL)
	if err != nil {
		return r.URL
	}

	q := u.Query()
	for k, v := range r.QueryParams {
		q.Set(k, v)
	}
	u.RawQuery = q.Encode()
	return u.String()
}
