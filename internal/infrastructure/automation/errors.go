package automation

import (
	"errors"
	"fmt"
)

// ErrMissingID is returned when the engine accepts a request but the
// response body carries no resource identifier.
var ErrMissingID = errors.New("automation engine response missing resource id")

// ErrTemplateNotFound is returned when the workflow template file does
// not exist at the configured path.
var ErrTemplateNotFound = errors.New("workflow template not found")

// ErrTemplateInvalid is returned when the workflow template file is
// not valid JSON.
var ErrTemplateInvalid = errors.New("workflow template is not valid JSON")

// UpstreamError carries the engine's HTTP status and response body
// when a request is rejected.
type UpstreamError struct {
	Status int
	Body   string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("automation API error (%d): %s", e.Status, e.Body)
}

// UnreachableError signals a transport-level failure: the engine never
// produced an HTTP response at all.
type UnreachableError struct {
	BaseURL string
	Err     error
}

func (e *UnreachableError) Error() string {
	return fmt.Sprintf("automation API unreachable at %s: %v", e.BaseURL, e.Err)
}

func (e *UnreachableError) Unwrap() error {
	return e.Err
}
