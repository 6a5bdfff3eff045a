package http

// BodyType identifies how a request's body is encoded.
type BodyType int

const (
	// BodyNone means the request carries no body
	BodyNone BodyType = iota
	// BodyRaw is an opaque byte payload; the caller sets Content-Type
	BodyRaw
	// BodyJSON is a JSON document
	BodyJSON
	// BodyForm is application/x-www-form-urlencoded text
	BodyForm
	// BodyMultipart is multipart/form-data built from the request's parts
	BodyMultipart
)

// ContentType returns the header value implied by the body type. Raw bodies
// have none, and multipart content types come from the encoder since they
// carry the boundary.
func (t BodyType) ContentType() string {
	switch t {
	case BodyJSON:
		return "application/json"
	case BodyForm:
		return "application/x-www-form-urlencoded"
	default:
		return ""
	}
}

func (t BodyType) String() string {
	switch t {
	case BodyNone:
		return "none"
	case BodyRaw:
		return "raw"
	case BodyJSON:
		return "json"
	case BodyForm:
		return "form"
	case BodyMultipart:
		return "multipart"
	default:
		return "unknown"
	}
}
