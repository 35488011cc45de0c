// Package yaml turns a YAML document into the token stream consumed by the
// payload decoder, so schemas accept YAML payloads through the same
// construction path as JSON.
package yaml

import (
	"io"
	"strconv"
	"strings"

	goyaml "gopkg.in/yaml.v3"

	eng "github.com/objema/objema/internal/engine"
)

type source struct {
	toks []eng.Token
	pos  int
	err  error
}

// NewBytes parses a YAML document and exposes it as an engine.TokenSource.
// Only the first document of a multi-document stream is consumed.
func NewBytes(b []byte) eng.TokenSource {
	var doc goyaml.Node
	if err := goyaml.Unmarshal(b, &doc); err != nil {
		return &source{err: err}
	}
	s := &source{}
	root := &doc
	if doc.Kind == goyaml.DocumentNode {
		if len(doc.Content) == 0 {
			s.push(eng.Token{Kind: eng.KindNull})
			return s
		}
		root = doc.Content[0]
	}
	if root.Kind == 0 {
		// empty input leaves the node unset; treat it as an explicit null
		s.push(eng.Token{Kind: eng.KindNull})
		return s
	}
	s.emit(root)
	return s
}

// NewReader drains r and parses it as a YAML document.
func NewReader(r io.Reader) eng.TokenSource {
	b, err := io.ReadAll(r)
	if err != nil {
		return &source{err: err}
	}
	return NewBytes(b)
}

func (s *source) NextToken() (eng.Token, error) {
	if s.err != nil {
		return eng.Token{}, s.err
	}
	if s.pos >= len(s.toks) {
		return eng.Token{}, io.EOF
	}
	t := s.toks[s.pos]
	s.pos++
	return t, nil
}

func (s *source) Location() int64 { return -1 }

func (s *source) emit(n *goyaml.Node) {
	switch n.Kind {
	case goyaml.DocumentNode:
		if len(n.Content) > 0 {
			s.emit(n.Content[0])
		}
	case goyaml.MappingNode:
		s.push(eng.Token{Kind: eng.KindBeginObject})
		for i := 0; i+1 < len(n.Content); i += 2 {
			s.push(eng.Token{Kind: eng.KindKey, String: n.Content[i].Value})
			s.emit(n.Content[i+1])
		}
		s.push(eng.Token{Kind: eng.KindEndObject})
	case goyaml.SequenceNode:
		s.push(eng.Token{Kind: eng.KindBeginArray})
		for _, c := range n.Content {
			s.emit(c)
		}
		s.push(eng.Token{Kind: eng.KindEndArray})
	case goyaml.AliasNode:
		if n.Alias != nil {
			s.emit(n.Alias)
		}
	case goyaml.ScalarNode:
		s.push(scalarToken(n))
	}
}

func (s *source) push(t eng.Token) {
	t.Offset = -1
	s.toks = append(s.toks, t)
}

func scalarToken(n *goyaml.Node) eng.Token {
	switch n.Tag {
	case "!!int", "!!float":
		return eng.Token{Kind: eng.KindNumber, Number: n.Value}
	case "!!bool":
		b, err := strconv.ParseBool(n.Value)
		if err != nil {
			// YAML 1.1 spellings like "Yes"/"ON" resolve to !!bool but are not
			// ParseBool input; they come in any letter case.
			switch strings.ToLower(n.Value) {
			case "y", "yes", "on", "true":
				b = true
			}
		}
		return eng.Token{Kind: eng.KindBool, Bool: b}
	case "!!null":
		return eng.Token{Kind: eng.KindNull}
	default:
		return eng.Token{Kind: eng.KindString, String: n.Value}
	}
}
