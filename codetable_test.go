package huffman

import (
	"errors"
	"math/rand/v2"
	"strings"
	"testing"
)

func makeTestCodeTable(t *testing.T, text string) *CodeTable {
	t.Helper()
	ft, err := BuildFrequencyTable(text)
	if err != nil {
		t.Fatalf("BuildFrequencyTable failed: %v", err)
	}
	root, err := BuildTree(ft)
	if err != nil {
		t.Fatalf("BuildTree failed: %v", err)
	}
	return DeriveCodeTable(root)
}

func TestDeriveCodeTable(t *testing.T) {
	ct := makeTestCodeTable(t, makeTestText())

	expectDump := strings.Join([]string{
		"CodeTable{\n",
		"\tMaxLen() = 4\n",
		"\tCode('f') = \"0\"\n",
		"\tCode('c') = \"100\"\n",
		"\tCode('d') = \"101\"\n",
		"\tCode('a') = \"1100\"\n",
		"\tCode('b') = \"1101\"\n",
		"\tCode('e') = \"111\"\n",
		"}\n",
	}, "")

	var buf strings.Builder
	_, _ = ct.Dump(&buf)
	actualDump := buf.String()
	if expectDump != actualDump {
		t.Errorf("wrong output:\n\texpect: %s\n\tactual: %s", expectDump, actualDump)
	}

	if _, found := ct.Code('z'); found {
		t.Errorf("expected no code for 'z'")
	}
}

func TestDeriveCodeTable_SingleSymbol(t *testing.T) {
	ct := makeTestCodeTable(t, "aaaa")
	if ct.Len() != 1 {
		t.Fatalf("expected 1 entry, got %d", ct.Len())
	}
	hc, found := ct.Code('a')
	if !found || hc != "0" {
		t.Errorf("expected Code('a') = \"0\", got %s (found=%v)", hc, found)
	}
}

func TestDeriveCodeTable_PrefixFree(t *testing.T) {
	rng := rand.New(rand.NewPCG(3, 4))
	for i := 0; i < 100; i++ {
		var sb strings.Builder
		alphabet := 1 + rng.IntN(60)
		n := 1 + rng.IntN(500)
		for j := 0; j < n; j++ {
			sb.WriteRune(rune('!' + rng.IntN(alphabet)))
		}
		text := sb.String()

		ct := makeTestCodeTable(t, text)
		entries := ct.Entries()
		for a := range entries {
			if !entries[a].Code.Valid() {
				t.Errorf("%q: invalid code %s", text, entries[a].Code)
			}
			for b := range entries {
				if a != b && entries[b].Code.HasPrefix(entries[a].Code) {
					t.Errorf("%q: %s is a prefix of %s", text, entries[a].Code, entries[b].Code)
				}
			}
		}
	}
}

func TestPrefixFree(t *testing.T) {
	type testRow struct {
		name    string
		entries []Entry
		expect  bool
	}

	testData := [...]testRow{
		{"empty", nil, true},
		{"single", []Entry{{'a', "0"}}, true},
		{"siblings", []Entry{{'a', "0"}, {'b', "1"}}, true},
		{"prefix", []Entry{{'a', "0"}, {'b', "01"}}, false},
		{"prefix-not-adjacent-in-input", []Entry{{'a', "011"}, {'b', "1"}, {'c', "01"}}, false},
		{"equal", []Entry{{'a', "10"}, {'b', "10"}}, false},
	}
	for _, row := range testData {
		t.Run(row.name, func(t *testing.T) {
			if actual := prefixFree(row.entries); row.expect != actual {
				t.Errorf("expected %v, got %v", row.expect, actual)
			}
		})
	}
}

func TestReverseCodeTable(t *testing.T) {
	ct := makeTestCodeTable(t, makeTestText())
	rct := ct.Reverse()

	expectDump := strings.Join([]string{
		"ReverseCodeTable{\n",
		"\tLookup(\"0\") = 'f'\n",
		"\tLookup(\"100\") = 'c'\n",
		"\tLookup(\"101\") = 'd'\n",
		"\tLookup(\"111\") = 'e'\n",
		"\tLookup(\"1100\") = 'a'\n",
		"\tLookup(\"1101\") = 'b'\n",
		"}\n",
	}, "")

	var buf strings.Builder
	_, _ = rct.Dump(&buf)
	actualDump := buf.String()
	if expectDump != actualDump {
		t.Errorf("wrong output:\n\texpect: %s\n\tactual: %s", expectDump, actualDump)
	}

	if rct.MaxLen() != 4 {
		t.Errorf("expected MaxLen() = 4, got %d", rct.MaxLen())
	}
	if rct.Lookup("11") != InvalidSymbol {
		t.Errorf("expected Lookup(\"11\") = InvalidSymbol, got %s", rct.Lookup("11"))
	}
	for _, entry := range ct.Entries() {
		if actual := rct.Lookup(entry.Code); actual != entry.Symbol {
			t.Errorf("Lookup(%s): expected %s, got %s", entry.Code, entry.Symbol, actual)
		}
	}
}

func TestNewReverseCodeTable_Duplicate(t *testing.T) {
	_, err := NewReverseCodeTable([]Entry{{'a', "01"}, {'b', "1"}, {'c', "01"}})
	if !errors.Is(err, ErrDuplicateCode) {
		t.Errorf("expected ErrDuplicateCode, got %v", err)
	}
}
