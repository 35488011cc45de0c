package yaml_test

import (
	"encoding/json"
	"strings"
	"testing"

	eng "github.com/objema/objema/internal/engine"
	yamlsrc "github.com/objema/objema/source/yaml"
)

func decode(t *testing.T, doc string) (any, error) {
	t.Helper()
	return eng.DecodeValue(yamlsrc.NewBytes([]byte(doc)), eng.DecodeOptions{})
}

func TestMappingScalars(t *testing.T) {
	v, err := decode(t, "name: widget\ncount: 3\nratio: 0.5\nactive: true\nnote: null\n")
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	m, ok := v.(map[string]any)
	if !ok {
		t.Fatalf("expected object, got %#v", v)
	}
	if m["name"] != "widget" || m["active"] != true {
		t.Fatalf("unexpected values: %#v", m)
	}
	if n, ok := m["count"].(json.Number); !ok || n.String() != "3" {
		t.Fatalf("expected number token 3, got %#v", m["count"])
	}
	if n, ok := m["ratio"].(json.Number); !ok || n.String() != "0.5" {
		t.Fatalf("expected number token 0.5, got %#v", m["ratio"])
	}
	if v, ok := m["note"]; !ok || v != nil {
		t.Fatalf("expected explicit null entry, got %#v", m)
	}
}

func TestSequence(t *testing.T) {
	v, err := decode(t, "items:\n  - 1\n  - two\n  - false\n")
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	items := v.(map[string]any)["items"].([]any)
	if len(items) != 3 || items[1] != "two" || items[2] != false {
		t.Fatalf("unexpected sequence: %#v", items)
	}
}

func TestQuotedNumberStaysString(t *testing.T) {
	v, err := decode(t, `id: "007"`)
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if got := v.(map[string]any)["id"]; got != "007" {
		t.Fatalf("quoted scalar must stay a string, got %#v", got)
	}
}

func TestBoolSpellings(t *testing.T) {
	v, err := decode(t, "a: !!bool YES\nb: !!bool ON\nc: !!bool Off\nd: !!bool no\ne: true\n")
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	m := v.(map[string]any)
	if m["a"] != true || m["b"] != true {
		t.Fatalf("uppercase YAML 1.1 spellings must decode true, got %#v", m)
	}
	if m["c"] != false || m["d"] != false {
		t.Fatalf("negative spellings must decode false, got %#v", m)
	}
	if m["e"] != true {
		t.Fatalf("plain true must decode true, got %#v", m["e"])
	}
}

func TestDuplicateKeysRejected(t *testing.T) {
	_, err := decode(t, "a: 1\na: 2\n")
	if err == nil {
		t.Fatalf("expected duplicate key error")
	}
	var ie eng.IssueError
	if asIssue(err, &ie) && ie.Code != "duplicate_key" {
		t.Fatalf("expected duplicate_key, got %v", err)
	}
}

func asIssue(err error, out *eng.IssueError) bool {
	if ie, ok := err.(eng.IssueError); ok {
		*out = ie
		return true
	}
	return false
}

func TestMalformedYAML(t *testing.T) {
	_, err := decode(t, "a: [1, 2\nb: }")
	if err == nil {
		t.Fatalf("expected parse error")
	}
	if strings.Contains(err.Error(), "duplicate") {
		t.Fatalf("unexpected duplicate classification: %v", err)
	}
}

func TestEmptyDocument(t *testing.T) {
	v, err := decode(t, "")
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if v != nil {
		t.Fatalf("empty document decodes to null, got %#v", v)
	}
}
