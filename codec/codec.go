// Package codec provides opaque scalar codecs pluggable into field
// descriptors: anything parseable from a canonical wire form and formattable
// back to one can serve as a field type.
package codec

import (
	"context"

	objema "github.com/objema/objema"
)

// Of builds an objema.Scalar from typed decode/encode functions, keeping the
// strongly typed surface on the caller's side and the any-typed surface on
// the schema's side.
func Of[T any](
	decode func(ctx context.Context, wire any) (T, error),
	encode func(ctx context.Context, v T) (string, error),
) objema.Scalar {
	return scalar[T]{decode: decode, encode: encode}
}

type scalar[T any] struct {
	decode func(context.Context, any) (T, error)
	encode func(context.Context, T) (string, error)
}

func (s scalar[T]) Decode(ctx context.Context, wire any) (any, error) {
	v, err := s.decode(ctx, wire)
	if err != nil {
		return nil, err
	}
	return v, nil
}

func (s scalar[T]) Encode(ctx context.Context, v any) (string, error) {
	tv, ok := v.(T)
	if !ok {
		return "", objema.Issues{{Path: "/", Code: objema.CodeInvalidType, Message: "value does not match scalar type"}}
	}
	return s.encode(ctx, tv)
}

func (s scalar[T]) ValidateValue(ctx context.Context, v any) error {
	if _, ok := v.(T); !ok {
		return objema.Issues{{Path: "/", Code: objema.CodeInvalidType, Message: "value does not match scalar type"}}
	}
	return nil
}
