package parse

import (
	"encoding/json"
	"reflect"
	"testing"
)

func TestParse_StrictObject(t *testing.T) {
	v, ok := Parse(`{"title": "x", "key_points": ["a", "b"], "n": 3}`)
	if !ok {
		t.Fatal("expected ok")
	}
	want := map[string]any{
		"title":      "x",
		"key_points": []any{"a", "b"},
		"n":          json.Number("3"),
	}
	if !reflect.DeepEqual(v, want) {
		t.Errorf("Parse = %#v, want %#v", v, want)
	}
}

func TestParse_EmbeddedInProse(t *testing.T) {
	v, ok := Parse(`here is the answer: {"title": "x"} thanks`)
	if !ok {
		t.Fatal("expected ok")
	}
	want := map[string]any{"title": "x"}
	if !reflect.DeepEqual(v, want) {
		t.Errorf("Parse = %#v, want %#v", v, want)
	}
}

func TestParse_FencedBlock(t *testing.T) {
	text := "Sure!\n```json\n{\n  \"title\": \"walrus\",\n  \"caveats\": []\n}\n```\n"
	v, ok := Parse(text)
	if !ok {
		t.Fatal("expected ok")
	}
	m, isMap := v.(map[string]any)
	if !isMap {
		t.Fatalf("Parse = %T, want map", v)
	}
	if m["title"] != "walrus" {
		t.Errorf("title = %v, want walrus", m["title"])
	}
}

func TestParse_StrictNonObject(t *testing.T) {
	v, ok := Parse(`  [1, 2]  `)
	if !ok {
		t.Fatal("expected ok")
	}
	want := []any{json.Number("1"), json.Number("2")}
	if !reflect.DeepEqual(v, want) {
		t.Errorf("Parse = %#v, want %#v", v, want)
	}
}

func TestParse_LargeIntegerPreserved(t *testing.T) {
	v, ok := Parse(`{"id": 12345678901234567890}`)
	if !ok {
		t.Fatal("expected ok")
	}
	out, err := json.Marshal(v)
	if err != nil {
		t.Fatal(err)
	}
	if string(out) != `{"id":12345678901234567890}` {
		t.Errorf("re-encoded = %s", out)
	}
}

func TestParse_NotJSON(t *testing.T) {
	for _, in := range []string{
		"",
		"no json here",
		"ERROR calling ollama: exit status 1",
		"{not: valid}",
		"{\"a\": 1} and later {\"b\": 2}",
	} {
		v, ok := Parse(in)
		if ok {
			t.Errorf("Parse(%q) = %#v, want absent", in, v)
		}
		if v != nil {
			t.Errorf("Parse(%q) value = %#v, want nil", in, v)
		}
	}
}

func TestParse_TrailingDataFallsBackToBraces(t *testing.T) {
	v, ok := Parse(`{"a": 1} trailing`)
	if !ok {
		t.Fatal("expected ok via brace extraction")
	}
	want := map[string]any{"a": json.Number("1")}
	if !reflect.DeepEqual(v, want) {
		t.Errorf("Parse = %#v, want %#v", v, want)
	}
}

func TestParse_NullIsAbsent(t *testing.T) {
	for _, text := range []string{"null", "  null\n"} {
		v, ok := Parse(text)
		if ok || v != nil {
			t.Errorf("Parse(%q) = %#v, %v; want nil, false", text, v, ok)
		}
	}
}
