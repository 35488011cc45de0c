package objema

import (
	"context"
	"strconv"

	"github.com/objema/objema/uid"
)

// Instance is a materialized object: one fresh identity plus exactly one
// value slot per schema field. Values are fixed at construction; an Instance
// needs no synchronization afterwards.
type Instance struct {
	id       uid.ID
	schema   *Schema
	values   map[string]any
	presence PresenceMap
}

// FromStruct constructs an Instance from an already-typed key/value
// structure. Every schema field must be satisfied by a supplied value, a
// declared default, or optionality; otherwise construction fails with a
// ConstructionError carrying the required/invalid_type issues. Keys not
// declared by the schema are ignored.
func FromStruct(ctx context.Context, s *Schema, values map[string]any) (*Instance, error) {
	return build(ctx, s, values, false)
}

// FromJSON constructs an Instance from a raw JSON payload. Parser failures
// (malformed input, duplicate keys) and field failures both surface as a
// ConstructionError; content after the top-level object is ignored.
func FromJSON(ctx context.Context, s *Schema, data []byte, opts ...ParseOpt) (*Instance, error) {
	return FromSource(ctx, s, JSONBytes(data), opts...)
}

// FromYAML constructs an Instance from a YAML payload.
func FromYAML(ctx context.Context, s *Schema, data []byte, opts ...ParseOpt) (*Instance, error) {
	return FromSource(ctx, s, YAMLBytes(data), opts...)
}

// FromSource constructs an Instance from any payload token source.
func FromSource(ctx context.Context, s *Schema, src Source, opts ...ParseOpt) (*Instance, error) {
	m, iss := payloadFromSource(src, lastOpt(opts))
	if iss != nil {
		return nil, &ConstructionError{Issues: iss}
	}
	return build(ctx, s, m, true)
}

// build resolves every schema field against src and assembles the instance
// atomically: any issue means no instance. fromPayload selects JSON coercion
// over typed checking.
func build(ctx context.Context, s *Schema, src map[string]any, fromPayload bool) (*Instance, error) {
	values := make(map[string]any, len(s.fields))
	pm := make(PresenceMap, len(s.fields))
	var iss Issues
	for _, f := range s.fields {
		v, exists := src[f.name]
		if exists {
			pm[f.name] |= PresenceSeen
			if v == nil {
				pm[f.name] |= PresenceWasNull
				if !f.optional {
					iss = AppendIssues(iss, mismatch(f, "null")...)
					continue
				}
				// Explicit null wins over a declared default.
				values[f.name] = nil
				continue
			}
			var tv any
			var i2 Issues
			if fromPayload {
				tv, i2 = coercePayload(ctx, f, v)
			} else {
				tv, i2 = checkValue(ctx, f, v)
			}
			if len(i2) > 0 {
				iss = AppendIssues(iss, i2...)
				continue
			}
			values[f.name] = tv
			continue
		}
		if f.hasDefault {
			values[f.name] = f.def
			pm[f.name] |= PresenceDefaultApplied
			continue
		}
		if f.optional {
			values[f.name] = nil
			continue
		}
		iss = AppendIssues(iss, Issue{
			Path:    "/" + f.name,
			Code:    CodeRequired,
			Message: "required field '" + f.name + "' missing",
			Params:  map[string]any{"field": f.name},
		})
	}
	if len(iss) > 0 {
		return nil, &ConstructionError{Issues: iss}
	}
	return &Instance{id: uid.New(), schema: s, values: values, presence: pm}, nil
}

// ID returns the identity generated at construction.
func (in *Instance) ID() uid.ID { return in.id }

// Schema returns the schema this instance was constructed from.
func (in *Instance) Schema() *Schema { return in.schema }

// Get returns the value stored under name. The bool is false only when the
// schema does not declare the field; an absent optional field yields
// (nil, true). Lookup compares name content, never identity.
func (in *Instance) Get(name string) (any, bool) {
	v, ok := in.values[name]
	return v, ok
}

// Presence returns the presence flags recorded for name at construction. The
// zero value means the field was absent with no default (optional-absent) or
// is not declared at all.
func (in *Instance) Presence(name string) Presence { return in.presence[name] }

// Canonical renders the field value in its canonical wire form: opaque
// scalars through their codec, primitives through their standard text form.
// It fails for undeclared fields and for optional fields in the no-value
// state.
func (in *Instance) Canonical(ctx context.Context, name string) (string, error) {
	f, ok := in.schema.Lookup(name)
	if !ok {
		return "", Issues{{Path: "/" + name, Code: CodeInvalidField, Message: "field '" + name + "' not declared"}}
	}
	v := in.values[name]
	if v == nil {
		return "", Issues{{Path: "/" + name, Code: CodeRequired, Message: "field '" + name + "' has no value"}}
	}
	switch f.kind {
	case KindString:
		return v.(string), nil
	case KindInt:
		return strconv.FormatInt(v.(int64), 10), nil
	case KindFloat:
		return strconv.FormatFloat(v.(float64), 'g', -1, 64), nil
	case KindBool:
		return strconv.FormatBool(v.(bool)), nil
	default:
		s, err := f.scalar.Encode(ctx, v)
		if err != nil {
			return "", rebase(name, err)
		}
		return s, nil
	}
}
