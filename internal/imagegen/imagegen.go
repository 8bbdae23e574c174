// internal/imagegen/imagegen.go

// Package imagegen defines the image-generation capability boundary. The
// adapter classifies every outcome into an explicit ErrorKind; the
// orchestrator never inspects backend error strings.
package imagegen

import "context"

// ErrorKind classifies a generation outcome.
type ErrorKind int

const (
	// OK means an image URL was produced.
	OK ErrorKind = iota

	// ContentPolicyViolation is a deliberate refusal by the backend, an
	// expected business outcome rather than a technical failure.
	ContentPolicyViolation

	// NoResult means the call succeeded at the transport level but no usable
	// image came back.
	NoResult

	// Transport means the call itself failed.
	Transport

	// Unknown covers backend errors that fit no other class.
	Unknown
)

// String returns the kind name for logs.
func (k ErrorKind) String() string {
	switch k {
	case OK:
		return "ok"
	case ContentPolicyViolation:
		return "content_policy_violation"
	case NoResult:
		return "no_result"
	case Transport:
		return "transport"
	default:
		return "unknown"
	}
}

// Params are the fixed generation parameters. They are deployment
// configuration, never request inputs.
type Params struct {
	Model   string
	Size    string
	Quality string
	Style   string
}

// Result is the classified outcome of one generation call. ImageURL is
// non-empty if and only if Kind is OK. RevisedPrompt is the backend's own
// description of what it actually rendered, when provided.
type Result struct {
	ImageURL      string
	RevisedPrompt string
	Detail        string
	Kind          ErrorKind
}

// Generator produces one image per call. Implementations never panic and
// never return a Go error; the Result sum type is the whole contract.
type Generator interface {
	Generate(ctx context.Context, prompt string, params Params) Result
}
