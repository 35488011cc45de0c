package objema

import (
	"errors"
	"fmt"
	"strings"
)

// Issue codes (exported consts for IDE completion and type safety by convention)
const (
	CodeDuplicateField   = "duplicate_field"
	CodeInvalidField     = "invalid_field"
	CodeInvalidDefault   = "invalid_default"
	CodeMalformedPayload = "malformed_payload"
	CodeDuplicateKey     = "duplicate_key"
	CodeRequired         = "required"
	CodeInvalidType      = "invalid_type"
	CodeInvalidFormat    = "invalid_format"
	CodeParseError       = "parse_error"
	CodeTruncated        = "truncated"
)

// Issue represents a single declaration or construction failure.
type Issue struct {
	Path    string // JSON Pointer (for example: /price).
	Code    string // One of the codes listed above.
	Message string
	Cause   error // Optional: underlying error.
	// Params carries structured parameters (e.g., {"expected":"integer",
	// "got":"string"}) for observability.
	Params map[string]any
}

// Issues is a collection of failures that implements error.
type Issues []Issue

// Error summarizes the first few issues.
func (iss Issues) Error() string {
	if len(iss) == 0 {
		return ""
	}
	const maxShown = 3
	b := &strings.Builder{}
	n := len(iss)
	lim := n
	if lim > maxShown {
		lim = maxShown
	}
	for i := 0; i < lim; i++ {
		if i > 0 {
			b.WriteString("; ")
		}
		it := iss[i]
		// e.g. invalid_type at /path
		fmt.Fprintf(b, "%s at %s", it.Code, it.Path)
	}
	if n > lim {
		fmt.Fprintf(b, "; ... (total %d)", n)
	}
	return b.String()
}

// AppendIssues appends issues to the destination, initializing the slice when
// needed.
func AppendIssues(dst Issues, more ...Issue) Issues {
	if dst == nil {
		dst = Issues{}
	}
	dst = append(dst, more...)
	return dst
}

// AsIssues extracts Issues from an error using errors.As internally.
func AsIssues(err error) (Issues, bool) {
	if err == nil {
		return nil, false
	}
	var iss Issues
	if errors.As(err, &iss) {
		return iss, true
	}
	return nil, false
}

// ConstructionError is the umbrella failure of the construction entry points.
// Construction never partially commits: when it is returned, no instance
// exists. The wrapped Issues carry the specific causes (required,
// invalid_type, malformed_payload, duplicate_key) and stay reachable through
// errors.As.
type ConstructionError struct {
	Issues Issues
}

func (e *ConstructionError) Error() string {
	return "objema: construction failed: " + e.Issues.Error()
}

func (e *ConstructionError) Unwrap() error { return e.Issues }

// IsMalformedPayload reports whether err stems from an undecodable payload,
// including the duplicate-key rejection.
func IsMalformedPayload(err error) bool {
	iss, ok := AsIssues(err)
	if !ok {
		return false
	}
	for _, it := range iss {
		if it.Code == CodeMalformedPayload || it.Code == CodeDuplicateKey {
			return true
		}
	}
	return false
}
