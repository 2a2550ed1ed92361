package model

import "errors"

var (
	// ErrInvalidAddress reports an address that cannot be decoded on the active network.
	ErrInvalidAddress = errors.New("invalid address")
	// ErrInvalidScriptID reports a script identifier that must not reach the index.
	ErrInvalidScriptID = errors.New("invalid script id")
)

// Upstream sources.
const (
	SourceIndex = "index"
	SourceNode  = "node"
)

// UpstreamError wraps a failed index or node call.
type UpstreamError struct {
	Source string
	// Status is the HTTP status declared by the upstream, 0 if none.
	Status int
	Err    error
}

// NewUpstreamError wraps err, keeping any status declared further down the chain.
func NewUpstreamError(source string, err error) *UpstreamError {
	upstream := &UpstreamError{Source: source, Err: err}
	var declared interface{ HTTPStatus() int }
	if errors.As(err, &declared) {
		upstream.Status = declared.HTTPStatus()
	}
	return upstream
}

func (e *UpstreamError) Error() string {
	return e.Err.Error()
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}

// HTTPStatus returns the declared upstream status.
func (e *UpstreamError) HTTPStatus() int {
	return e.Status
}
