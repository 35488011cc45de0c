package objema

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
)

// coercePayload converts a decoded payload value into the field's typed
// value. Numbers arrive as json.Number so integer and float fields can apply
// their own exactness rules.
func coercePayload(ctx context.Context, f Field, v any) (any, Issues) {
	switch f.kind {
	case KindString:
		if s, ok := v.(string); ok {
			return s, nil
		}
	case KindBool:
		if b, ok := v.(bool); ok {
			return b, nil
		}
	case KindInt:
		if n, ok := v.(json.Number); ok {
			i, err := n.Int64()
			if err != nil {
				return nil, mismatch(f, "float")
			}
			return i, nil
		}
	case KindFloat:
		if n, ok := v.(json.Number); ok {
			fl, err := n.Float64()
			if err != nil {
				return nil, mismatch(f, "number")
			}
			return fl, nil
		}
	case KindOpaque:
		dv, err := f.scalar.Decode(ctx, v)
		if err != nil {
			return nil, rebase(f.name, err)
		}
		return dv, nil
	}
	return nil, mismatch(f, payloadShape(v))
}

// checkValue validates an already-typed value against the field and
// normalizes the integer widths callers commonly supply.
func checkValue(ctx context.Context, f Field, v any) (any, Issues) {
	switch f.kind {
	case KindString:
		if s, ok := v.(string); ok {
			return s, nil
		}
	case KindBool:
		if b, ok := v.(bool); ok {
			return b, nil
		}
	case KindInt:
		switch n := v.(type) {
		case int64:
			return n, nil
		case int:
			return int64(n), nil
		case int32:
			return int64(n), nil
		}
	case KindFloat:
		switch n := v.(type) {
		case float64:
			return n, nil
		case float32:
			return float64(n), nil
		}
	case KindOpaque:
		if err := f.scalar.ValidateValue(ctx, v); err != nil {
			return nil, rebase(f.name, err)
		}
		return v, nil
	}
	return nil, mismatch(f, goShape(v))
}

func mismatch(f Field, got string) Issues {
	return Issues{{
		Path:    "/" + f.name,
		Code:    CodeInvalidType,
		Message: fmt.Sprintf("field '%s': expected %s, got %s", f.name, f.kind, got),
		Params:  map[string]any{"field": f.name, "expected": f.kind.String(), "got": got},
	}}
}

// rebase rewrites child issue paths under "/field" so scalar codecs can keep
// reporting against their own root.
func rebase(name string, err error) Issues {
	base := "/" + name
	child, ok := AsIssues(err)
	if !ok {
		return Issues{{Path: base, Code: CodeInvalidType, Message: err.Error(), Cause: err}}
	}
	var out Issues
	for _, it := range child {
		p := it.Path
		switch {
		case p == "" || p == "/":
			p = base
		case strings.HasPrefix(p, "/"):
			p = base + p
		default:
			p = base + "/" + p
		}
		out = AppendIssues(out, Issue{Path: p, Code: it.Code, Message: it.Message, Cause: it.Cause, Params: it.Params})
	}
	return out
}

// payloadShape names the JSON shape of a decoded payload value for issues.
func payloadShape(v any) string {
	switch n := v.(type) {
	case nil:
		return "null"
	case string:
		return "string"
	case bool:
		return "boolean"
	case json.Number:
		if _, err := n.Int64(); err == nil {
			return "integer"
		}
		return "float"
	case map[string]any:
		return "object"
	case []any:
		return "array"
	default:
		return fmt.Sprintf("%T", v)
	}
}

// goShape names the Go type of a structurally supplied value for issues.
func goShape(v any) string {
	if v == nil {
		return "null"
	}
	return fmt.Sprintf("%T", v)
}
