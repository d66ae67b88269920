package huffman

import (
	"errors"
	"reflect"
	"strings"
	"testing"
)

func TestParseDocument(t *testing.T) {
	doc, err := ParseDocument(";:0;\n:10;::11\n0101110")
	if err != nil {
		t.Fatalf("ParseDocument failed: %v", err)
	}

	expectEntries := []Entry{{';', "0"}, {'\n', "10"}, {':', "11"}}
	if !reflect.DeepEqual(expectEntries, doc.Entries) {
		t.Errorf("wrong entries:\n\texpect: %v\n\tactual: %v", expectEntries, doc.Entries)
	}
	if expect := "0101110"; expect != doc.Bits {
		t.Errorf("wrong bits: expect %q, actual %q", expect, doc.Bits)
	}
	if expect := ";:0;\n:10;::11\n0101110"; expect != doc.String() {
		t.Errorf("wrong String():\n\texpect: %q\n\tactual: %q", expect, doc.String())
	}
}

func TestValidateDocument(t *testing.T) {
	valid := []string{
		"a:0\n0",
		"a:0;b:1\n01",
		"\n:0\n0",
		"::0\n0",
		";:0\n0",
		"a:0;;:1\n01",
		"a:0;\n:1\n01",
	}
	for _, text := range valid {
		if err := ValidateDocument(text); err != nil {
			t.Errorf("ValidateDocument(%q) failed: %v", text, err)
		}
	}

	invalid := []string{
		"",
		"\n0",
		"a:0\n",
		"a:0\r\n0",
		"a:0;b:1",
		"a:0;b:1\n0 1",
		"a:0\n0\n0",
	}
	for _, text := range invalid {
		if err := ValidateDocument(text); !errors.Is(err, ErrInvalidFormat) {
			t.Errorf("ValidateDocument(%q): expected ErrInvalidFormat, got %v", text, err)
		}
	}
}

func TestDocument_MarshalText(t *testing.T) {
	doc, err := Encode("aabbbcc")
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}

	raw, err := doc.MarshalText()
	if err != nil {
		t.Fatalf("MarshalText failed: %v", err)
	}

	var parsed Document
	if err := parsed.UnmarshalText(raw); err != nil {
		t.Fatalf("UnmarshalText failed: %v", err)
	}
	if !reflect.DeepEqual(doc, &parsed) {
		t.Errorf("wrong document:\n\texpect: %v\n\tactual: %v", doc, &parsed)
	}

	var empty Document
	if _, err := empty.MarshalText(); !errors.Is(err, ErrInvalidFormat) {
		t.Errorf("expected ErrInvalidFormat for an empty document, got %v", err)
	}
	if err := parsed.UnmarshalText([]byte("nonsense")); !errors.Is(err, ErrInvalidFormat) {
		t.Errorf("expected ErrInvalidFormat, got %v", err)
	}
}

func TestDocument_WriteTo(t *testing.T) {
	doc := &Document{Entries: []Entry{{'a', "0"}}, Bits: "000"}

	var sb strings.Builder
	n, err := doc.WriteTo(&sb)
	if err != nil {
		t.Fatalf("WriteTo failed: %v", err)
	}
	if expect := "a:0\n000"; expect != sb.String() || n != int64(len(expect)) {
		t.Errorf("wrong output: expect %q (%d bytes), actual %q (%d bytes)", expect, len(expect), sb.String(), n)
	}
}
