package codec

import (
	"context"

	objema "github.com/objema/objema"
	"github.com/objema/objema/uid"
)

// UIDCodec returns the scalar codec for identity-typed fields: wire values
// are canonical 36-character strings, domain values are uid.ID.
func UIDCodec() objema.Scalar {
	return Of(
		func(ctx context.Context, wire any) (uid.ID, error) {
			s, ok := wire.(string)
			if !ok {
				return uid.ID{}, objema.Issues{{Path: "/", Code: objema.CodeInvalidType, Message: "expected identity string"}}
			}
			id, err := uid.Parse(s)
			if err != nil {
				return uid.ID{}, objema.Issues{{Path: "/", Code: objema.CodeInvalidFormat, Message: "invalid identity '" + s + "'", Cause: err}}
			}
			return id, nil
		},
		func(ctx context.Context, id uid.ID) (string, error) {
			return id.String(), nil
		},
	)
}
