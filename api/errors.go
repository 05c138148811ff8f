package api

import "fmt"

// StatusError reports a non-2xx reply, raised before any body decoding.
// Replies carrying it are never cached. Detail holds the server's own
// explanation when the error body included one.
type StatusError struct {
	Method string
	Path   string
	Status int
	Detail string
}

func (e *StatusError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("%s %s: %s (status %d)", e.Method, e.Path, e.Detail, e.Status)
	}
	return fmt.Sprintf("%s %s: unexpected status %d", e.Method, e.Path, e.Status)
}

// DecodeError reports a body that arrived but does not decode into the
// expected shape.
type DecodeError struct {
	Path string
	Err  error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode %s: %v", e.Path, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// AppError is a structured refusal: transport went fine but the server
// replied state=false. Message carries the server's wording verbatim and
// is shown to the user as-is.
type AppError struct {
	Message string
}

func (e *AppError) Error() string {
	if e.Message == "" {
		return "server refused the request"
	}
	return e.Message
}
