package objema

import (
	"errors"

	eng "github.com/objema/objema/internal/engine"
)

// ParsePayload decodes raw JSON into a field-name to value mapping. Duplicate
// keys at any nesting level of the consumed value fail with duplicate_key;
// any other decode failure surfaces as malformed_payload. Content after the
// top-level object is tolerated and left unread. Numbers are carried as
// json.Number until field coercion.
func ParsePayload(data []byte, opts ...ParseOpt) (map[string]any, error) {
	m, iss := payloadFromSource(JSONBytes(data), lastOpt(opts))
	if iss != nil {
		return nil, iss
	}
	return m, nil
}

// lastOpt keeps the trailing option when several are supplied.
func lastOpt(opts []ParseOpt) ParseOpt {
	var opt ParseOpt
	if len(opts) > 0 {
		opt = opts[len(opts)-1]
	}
	return opt
}

func payloadFromSource(src Source, opt ParseOpt) (map[string]any, Issues) {
	v, err := eng.DecodeValue(engineTokenSource(src), eng.DecodeOptions{
		MaxDepth: opt.MaxDepth,
		MaxBytes: opt.MaxBytes,
	})
	if err != nil {
		var ie eng.IssueError
		if errors.As(err, &ie) {
			return nil, Issues{{Path: ie.Path, Code: ie.Code, Message: ie.Message}}
		}
		return nil, Issues{{Path: "/", Code: CodeMalformedPayload, Message: err.Error(), Cause: err}}
	}
	m, ok := v.(map[string]any)
	if !ok {
		return nil, Issues{{Path: "/", Code: CodeMalformedPayload, Message: "payload must be an object, got " + payloadShape(v)}}
	}
	return m, nil
}
