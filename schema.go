package objema

import (
	"context"
	"iter"
)

// Schema is an immutable ordered set of field descriptors. Declaration order
// is the iteration order; name lookup goes through an index map. A Schema may
// be shared across goroutines constructing instances concurrently since it
// never mutates after Declare.
type Schema struct {
	fields []Field
	index  map[string]int
}

// Declare validates the descriptors and returns a Schema. It fails with
// duplicate_field when two descriptors share a name, invalid_field for an
// empty name or an opaque field without a codec, and invalid_default when a
// default's shape disagrees with its kind.
func Declare(fields ...*Field) (*Schema, error) {
	s := &Schema{
		fields: make([]Field, 0, len(fields)),
		index:  make(map[string]int, len(fields)),
	}
	var iss Issues
	for _, f := range fields {
		if f.name == "" {
			iss = AppendIssues(iss, Issue{Path: "/", Code: CodeInvalidField, Message: "field name must not be empty"})
			continue
		}
		if f.kind == KindOpaque && f.scalar == nil {
			iss = AppendIssues(iss, Issue{Path: "/" + f.name, Code: CodeInvalidField, Message: "opaque field requires a scalar codec"})
			continue
		}
		if _, dup := s.index[f.name]; dup {
			iss = AppendIssues(iss, Issue{Path: "/" + f.name, Code: CodeDuplicateField, Message: "field '" + f.name + "' declared twice"})
			continue
		}
		fv := *f
		if fv.hasDefault {
			nv, i2 := checkDefault(fv)
			if len(i2) > 0 {
				iss = AppendIssues(iss, i2...)
				continue
			}
			fv.def = nv
		}
		s.index[fv.name] = len(s.fields)
		s.fields = append(s.fields, fv)
	}
	if len(iss) > 0 {
		return nil, iss
	}
	return s, nil
}

// MustDeclare is like Declare but panics on error. Intended for package-level
// schema variables where a bad declaration is a programming error.
func MustDeclare(fields ...*Field) *Schema {
	s, err := Declare(fields...)
	if err != nil {
		panic(err)
	}
	return s
}

// checkDefault verifies the declared default against the field kind and
// returns it with integer/float widths normalized. Declaration happens
// outside any request flow, hence the background context for opaque codecs.
func checkDefault(f Field) (any, Issues) {
	nv, iss := checkValue(context.Background(), f, f.def)
	if len(iss) == 0 {
		return nv, nil
	}
	out := make(Issues, 0, len(iss))
	for _, it := range iss {
		out = AppendIssues(out, Issue{
			Path:    it.Path,
			Code:    CodeInvalidDefault,
			Message: "default value does not match field kind: " + it.Message,
			Cause:   it.Cause,
			Params:  it.Params,
		})
	}
	return nil, out
}

// Lookup returns the descriptor declared under name.
func (s *Schema) Lookup(name string) (Field, bool) {
	i, ok := s.index[name]
	if !ok {
		return Field{}, false
	}
	return s.fields[i], true
}

// Len returns the number of declared fields.
func (s *Schema) Len() int { return len(s.fields) }

// Fields yields the descriptors in declaration order. The sequence is finite
// and restartable.
func (s *Schema) Fields() iter.Seq[Field] {
	return func(yield func(Field) bool) {
		for _, f := range s.fields {
			if !yield(f) {
				return
			}
		}
	}
}
