package engine

import (
	"encoding/json"
	"io"
	"strconv"
	"strings"
)

// Kind represents token kinds from a generic source.
type Kind int

const (
	KindBeginObject Kind = iota
	KindEndObject
	KindBeginArray
	KindEndArray
	KindKey
	KindString
	KindNumber
	KindBool
	KindNull
)

// Token represents a streaming token with approximate input offset.
type Token struct {
	Kind   Kind
	String string
	Number string
	Bool   bool
	Offset int64
}

// TokenSource is the minimal interface required by the decoder.
type TokenSource interface {
	NextToken() (Token, error)
	Location() int64 // byte offset; -1 if unknown
}

// IssueError is a lightweight error carrying a code and a JSON Pointer path.
type IssueError struct {
	Code    string
	Path    string
	Message string
}

func (e IssueError) Error() string { return e.Message }

// DecodeOptions controls enforcement during decoding. Duplicate object keys
// are always rejected; depth and byte limits are enforced when non-zero.
type DecodeOptions struct {
	MaxDepth int
	MaxBytes int64
}

// DecodeValue reads exactly one value from the token source and builds an
// "any" tree (objects as map[string]any, arrays as []any, numbers as
// json.Number). Tokens after the completed value are left unread.
func DecodeValue(src TokenSource, opt DecodeOptions) (any, error) {
	d := &decoder{src: src, opt: opt}
	tok, err := d.next("")
	if err != nil {
		return nil, err
	}
	return d.value(tok, "", 0)
}

type decoder struct {
	src TokenSource
	opt DecodeOptions
}

func (d *decoder) next(path string) (Token, error) {
	tok, err := d.src.NextToken()
	if err != nil {
		if err == io.EOF {
			return Token{}, IssueError{Code: "malformed_payload", Path: normalizePath(path), Message: "unexpected end of input"}
		}
		return Token{}, err
	}
	if d.opt.MaxBytes > 0 {
		if off := d.src.Location(); off >= 0 && off > d.opt.MaxBytes {
			return Token{}, IssueError{Code: "truncated", Path: normalizePath(path), Message: "max bytes exceeded"}
		}
	}
	return tok, nil
}

func (d *decoder) value(tok Token, path string, depth int) (any, error) {
	switch tok.Kind {
	case KindBeginObject:
		if d.opt.MaxDepth > 0 && depth+1 > d.opt.MaxDepth {
			return nil, IssueError{Code: "parse_error", Path: normalizePath(path), Message: "max depth exceeded"}
		}
		return d.object(path, depth+1)
	case KindBeginArray:
		if d.opt.MaxDepth > 0 && depth+1 > d.opt.MaxDepth {
			return nil, IssueError{Code: "parse_error", Path: normalizePath(path), Message: "max depth exceeded"}
		}
		return d.array(path, depth+1)
	case KindString:
		return tok.String, nil
	case KindNumber:
		return json.Number(tok.Number), nil
	case KindBool:
		return tok.Bool, nil
	case KindNull:
		return nil, nil
	default:
		return nil, IssueError{Code: "malformed_payload", Path: normalizePath(path), Message: "unexpected token"}
	}
}

func (d *decoder) object(path string, depth int) (any, error) {
	m := make(map[string]any)
	for {
		tok, err := d.next(path)
		if err != nil {
			return nil, err
		}
		if tok.Kind == KindEndObject {
			return m, nil
		}
		if tok.Kind != KindKey {
			return nil, IssueError{Code: "malformed_payload", Path: normalizePath(path), Message: "expected object key"}
		}
		kpath := joinPointer(path, tok.String)
		if _, dup := m[tok.String]; dup {
			return nil, IssueError{Code: "duplicate_key", Path: kpath, Message: "key '" + tok.String + "' duplicated"}
		}
		vt, err := d.next(kpath)
		if err != nil {
			return nil, err
		}
		v, err := d.value(vt, kpath, depth)
		if err != nil {
			return nil, err
		}
		m[tok.String] = v
	}
}

func (d *decoder) array(path string, depth int) (any, error) {
	arr := []any{}
	for {
		tok, err := d.next(path)
		if err != nil {
			return nil, err
		}
		if tok.Kind == KindEndArray {
			return arr, nil
		}
		// Elements get their index in the pointer path so issues inside
		// nested containers point at the element, not the array.
		epath := joinPointer(path, strconv.Itoa(len(arr)))
		v, err := d.value(tok, epath, depth)
		if err != nil {
			return nil, err
		}
		arr = append(arr, v)
	}
}

var pointerEscaper = strings.NewReplacer("~", "~0", "/", "~1")

func joinPointer(base, token string) string {
	return base + "/" + pointerEscaper.Replace(token)
}

func normalizePath(p string) string {
	if p == "" {
		return "/"
	}
	return p
}
