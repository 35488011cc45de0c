package objema

import "context"

// Kind identifies the shape a field value must have.
type Kind int

const (
	KindString Kind = iota
	KindInt
	KindBool
	KindFloat
	KindOpaque // Caller-supplied scalar, coerced through its Scalar codec.
)

func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindInt:
		return "integer"
	case KindBool:
		return "boolean"
	case KindFloat:
		return "float"
	case KindOpaque:
		return "opaque"
	default:
		return "unknown"
	}
}

// Scalar is the capability an opaque field type must provide: parseable from
// its wire representation, formattable to a canonical string, and checkable
// when already typed. The core never depends on concrete scalar types.
type Scalar interface {
	// Decode converts a decoded payload value into the domain value.
	Decode(ctx context.Context, wire any) (any, error)
	// Encode renders a domain value into its canonical string form.
	Encode(ctx context.Context, v any) (string, error)
	// ValidateValue verifies a value that is already domain-typed.
	ValidateValue(ctx context.Context, v any) error
}

// ParseOpt bundles payload decoding limits.
type ParseOpt struct {
	MaxDepth int   // Maximum container nesting; 0 disables the check.
	MaxBytes int64 // Maximum consumed input bytes; 0 disables the check.
}
