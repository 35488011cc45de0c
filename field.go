package objema

// Field declares one named slot of a Schema: its kind, optional description,
// optional default, and optionality. Fields are built fluently and become
// immutable once the Schema declaring them is built.
type Field struct {
	name       string
	kind       Kind
	desc       string
	def        any
	hasDefault bool
	optional   bool
	scalar     Scalar
}

// String declares a string field.
func String(name string) *Field { return &Field{name: name, kind: KindString} }

// Int declares an integer field. Values are carried as int64.
func Int(name string) *Field { return &Field{name: name, kind: KindInt} }

// Bool declares a boolean field.
func Bool(name string) *Field { return &Field{name: name, kind: KindBool} }

// Float declares an IEEE-754 double field. Values are carried as float64.
func Float(name string) *Field { return &Field{name: name, kind: KindFloat} }

// Opaque declares a field backed by a caller-supplied scalar codec. Payload
// values are handed to sc.Decode; already-typed values to sc.ValidateValue.
func Opaque(name string, sc Scalar) *Field {
	return &Field{name: name, kind: KindOpaque, scalar: sc}
}

// Describe attaches documentation to the field. It has no runtime effect.
func (f *Field) Describe(desc string) *Field {
	f.desc = desc
	return f
}

// Default sets the value used when the field is absent from the input. Its
// shape is checked against the field kind at Declare time.
func (f *Field) Default(v any) *Field {
	f.def = v
	f.hasDefault = true
	return f
}

// Optional marks absence as a valid state of its own: a missing entry with no
// default, or an explicit payload null, resolves to the no-value state
// instead of a required error.
func (f *Field) Optional() *Field {
	f.optional = true
	return f
}

// Name returns the field name.
func (f Field) Name() string { return f.name }

// Kind returns the declared kind.
func (f Field) Kind() Kind { return f.kind }

// Description returns the documentation string, possibly empty.
func (f Field) Description() string { return f.desc }

// DefaultValue returns the declared default and whether one exists.
func (f Field) DefaultValue() (any, bool) { return f.def, f.hasDefault }

// IsOptional reports whether absence is a valid state for this field.
func (f Field) IsOptional() bool { return f.optional }

// Codec returns the scalar codec of an opaque field, nil otherwise.
func (f Field) Codec() Scalar { return f.scalar }
