package objema

// Package objema provides:
//
// - Schema-as-value object declaration: ordered field descriptors with kind,
//   description, default, and optionality
// - Instance construction from pre-typed structures or parsed payloads, with
//   a fresh version-4 identity per instance and all-or-nothing semantics
// - A stable error model via Issues (JSON Pointer, code, message) wrapped in
//   ConstructionError at the construction entry points
// - Payload decoding via Source with duplicate-key/depth/size enforcement;
//   trailing content after the top-level object is tolerated
//
// Design policy:
// - Keep only public APIs in the root package; put token decoding under internal/.
// - Place format drivers under source/, scalar codecs under codec/, identity under uid/.
// - Schemas are immutable after Declare and safe for concurrent construction.
//
// Typical usage:
//
//	s := objema.MustDeclare(
//		objema.String("name"),
//		objema.Int("count").Default(1),
//		objema.Opaque("when", codec.DateCodec(codec.DateISO)).Optional(),
//	)
//	in, err := objema.FromJSON(ctx, s, data)
//	v, ok := in.Get("count")
