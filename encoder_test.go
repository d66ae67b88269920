package huffman

import (
	"errors"
	"strings"
	"testing"
)

func makeTestText() string {
	return strings.Repeat("a", 5) +
		strings.Repeat("b", 9) +
		strings.Repeat("c", 12) +
		strings.Repeat("d", 13) +
		strings.Repeat("e", 16) +
		strings.Repeat("f", 45)
}

func TestEncoder(t *testing.T) {
	e, err := NewEncoder(makeTestText())
	if err != nil {
		t.Fatalf("NewEncoder failed: %v", err)
	}

	expectDump := strings.Join([]string{
		"Encoder{\n",
		"\tTotal() = 100\n",
		"\tMaxLen() = 4\n",
		"\tEncode('a') = \"1100\"\n",
		"\tEncode('b') = \"1101\"\n",
		"\tEncode('c') = \"100\"\n",
		"\tEncode('d') = \"101\"\n",
		"\tEncode('e') = \"111\"\n",
		"\tEncode('f') = \"0\"\n",
		"}\n",
	}, "")

	var buf strings.Builder
	_, _ = e.Dump(&buf)
	actualDump := buf.String()

	if expectDump != actualDump {
		t.Errorf("wrong output:\n\texpect: %s\n\tactual: %s", expectDump, actualDump)
	}

	doc, err := e.Encode(makeTestText())
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	if expect, actual := 224, len(doc.Bits); expect != actual {
		t.Errorf("wrong bitstream length: expect %d, actual %d", expect, actual)
	}
}

func TestEncode(t *testing.T) {
	type testRow struct {
		name   string
		input  string
		expect string
	}

	testData := [...]testRow{
		{"single-symbol", "aaaa", "a:0\n0000"},
		{"single-character", "x", "x:0\n0"},
		{"tie-by-insertion-order", "aabbbcc", "b:0;a:10;c:11\n10100001111"},
		{"all-ties", "abcd", "a:00;b:01;c:10;d:11\n00011011"},
		{"leaf-ties-with-internal", "abbcc", "c:0;a:10;b:11\n10111100"},
		{"newline-symbol", "a\na", "\n:0;a:1\n101"},
		{"separator-symbols", "::;", ";:0;::1\n110"},
	}
	for _, row := range testData {
		t.Run(row.name, func(t *testing.T) {
			doc, err := Encode(row.input)
			if err != nil {
				t.Fatalf("Encode failed: %v", err)
			}
			actual := doc.String()
			if row.expect != actual {
				t.Errorf("wrong output:\n\texpect: %q\n\tactual: %q", row.expect, actual)
			}
		})
	}
}

func TestEncode_Deterministic(t *testing.T) {
	input := "the quick brown fox jumps over the lazy dog\nTHE QUICK BROWN FOX\n"
	first, err := Encode(input)
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	for i := 0; i < 10; i++ {
		again, err := Encode(input)
		if err != nil {
			t.Fatalf("Encode failed: %v", err)
		}
		if first.String() != again.String() {
			t.Fatalf("run %d differs:\n\texpect: %q\n\tactual: %q", i, first.String(), again.String())
		}
	}
}

func TestEncode_Errors(t *testing.T) {
	if _, err := Encode(""); !errors.Is(err, ErrEmptyInput) {
		t.Errorf("Encode(\"\"): expected ErrEmptyInput, got %v", err)
	}
	if _, err := Encode("ab\xffcd"); !errors.Is(err, ErrInvalidUTF8) {
		t.Errorf("Encode(invalid UTF-8): expected ErrInvalidUTF8, got %v", err)
	}

	e, err := NewEncoder("abc")
	if err != nil {
		t.Fatalf("NewEncoder failed: %v", err)
	}
	if _, err := e.Encode("abcd"); !errors.Is(err, ErrUnknownSymbol) {
		t.Errorf("Encode with unknown symbol: expected ErrUnknownSymbol, got %v", err)
	}
	if _, err := e.Encode("cab"); err != nil {
		t.Errorf("Encode with a different text over the same alphabet failed: %v", err)
	}
}
