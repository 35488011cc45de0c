package engine

import (
	"io"
	"testing"
)

type sliceSource struct {
	toks []Token
	pos  int
}

func (s *sliceSource) NextToken() (Token, error) {
	if s.pos >= len(s.toks) {
		return Token{}, io.EOF
	}
	t := s.toks[s.pos]
	s.pos++
	return t, nil
}

func (s *sliceSource) Location() int64 { return -1 }

func TestDecodeValue_TruncatedObject(t *testing.T) {
	src := &sliceSource{toks: []Token{
		{Kind: KindBeginObject},
		{Kind: KindKey, String: "a"},
	}}
	_, err := DecodeValue(src, DecodeOptions{})
	ie, ok := err.(IssueError)
	if !ok || ie.Code != "malformed_payload" {
		t.Fatalf("expected malformed_payload, got %v", err)
	}
}

func TestDecodeValue_DuplicateKeyPath(t *testing.T) {
	src := &sliceSource{toks: []Token{
		{Kind: KindBeginObject},
		{Kind: KindKey, String: "a"},
		{Kind: KindNumber, Number: "1"},
		{Kind: KindKey, String: "a"},
		{Kind: KindNumber, Number: "2"},
		{Kind: KindEndObject},
	}}
	_, err := DecodeValue(src, DecodeOptions{})
	ie, ok := err.(IssueError)
	if !ok || ie.Code != "duplicate_key" || ie.Path != "/a" {
		t.Fatalf("expected duplicate_key at /a, got %v", err)
	}
}

func TestDecodeValue_ArrayElementPath(t *testing.T) {
	src := &sliceSource{toks: []Token{
		{Kind: KindBeginObject},
		{Kind: KindKey, String: "a"},
		{Kind: KindBeginArray},
		{Kind: KindBeginObject},
		{Kind: KindKey, String: "b"},
		{Kind: KindNumber, Number: "1"},
		{Kind: KindKey, String: "b"},
		{Kind: KindNumber, Number: "2"},
		{Kind: KindEndObject},
		{Kind: KindEndArray},
		{Kind: KindEndObject},
	}}
	_, err := DecodeValue(src, DecodeOptions{})
	ie, ok := err.(IssueError)
	if !ok || ie.Code != "duplicate_key" || ie.Path != "/a/0/b" {
		t.Fatalf("expected duplicate_key at /a/0/b, got %v", err)
	}
}

func TestDecodeValue_PointerEscaping(t *testing.T) {
	src := &sliceSource{toks: []Token{
		{Kind: KindBeginObject},
		{Kind: KindKey, String: "a/b~c"},
		{Kind: KindNull},
		{Kind: KindKey, String: "a/b~c"},
		{Kind: KindNull},
		{Kind: KindEndObject},
	}}
	_, err := DecodeValue(src, DecodeOptions{})
	ie, ok := err.(IssueError)
	if !ok || ie.Path != "/a~1b~0c" {
		t.Fatalf("expected escaped pointer path, got %v", err)
	}
}

func TestDecodeValue_MaxDepth(t *testing.T) {
	src := &sliceSource{toks: []Token{
		{Kind: KindBeginArray},
		{Kind: KindBeginArray},
		{Kind: KindEndArray},
		{Kind: KindEndArray},
	}}
	_, err := DecodeValue(src, DecodeOptions{MaxDepth: 1})
	ie, ok := err.(IssueError)
	if !ok || ie.Code != "parse_error" {
		t.Fatalf("expected parse_error, got %v", err)
	}
}
