//go:build !gojson

package gojson

import (
	"io"

	objema "github.com/objema/objema"
	jsonsrc "github.com/objema/objema/source/json"
)

// Driver returns a stub driver when the gojson tag is not enabled. It
// delegates to the encoding/json-based source directly to avoid recursion.
func Driver() objema.JSONDriver { return stub{} }

type stub struct{}

func (stub) NewReader(r io.Reader) objema.Source {
	return objema.SourceFromEngine(jsonsrc.NewReader(r))
}
func (stub) NewBytes(b []byte) objema.Source {
	return objema.SourceFromEngine(jsonsrc.NewBytes(b))
}
func (stub) Name() string { return "encoding/json (gojson stub)" }
