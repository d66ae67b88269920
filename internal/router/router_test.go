package router

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/chronos-tachyon/huffmantext/internal/handler"
	"github.com/chronos-tachyon/huffmantext/internal/logger"
	"github.com/chronos-tachyon/huffmantext/internal/repo"
	"github.com/chronos-tachyon/huffmantext/internal/service"
)

func newTestEngine() *gin.Engine {
	gin.SetMode(gin.TestMode)
	svc := service.NewCodecService(repo.NewDocumentRepoInMemory(), logger.NewNop())
	r := gin.New()
	Register(r, Dependencies{CodecHandler: handler.NewCodecHandler(svc)})
	return r
}

func do(r *gin.Engine, method string, path string, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeJSON(t *testing.T, w *httptest.ResponseRecorder, v any) {
	t.Helper()
	if err := json.Unmarshal(w.Body.Bytes(), v); err != nil {
		t.Fatalf("bad JSON %q: %v", w.Body.String(), err)
	}
}

func TestHealthz(t *testing.T) {
	w := do(newTestEngine(), http.MethodGet, "/healthz", "")
	if w.Code != http.StatusOK || w.Body.String() != `{"ok":true}` {
		t.Errorf("wrong response: %d %s", w.Code, w.Body.String())
	}
}

func TestEncodeDecode(t *testing.T) {
	r := newTestEngine()

	w := do(r, http.MethodPost, "/api/v1/encode", "aabbbcc")
	if w.Code != http.StatusOK {
		t.Fatalf("encode: expected 200, got %d %s", w.Code, w.Body.String())
	}
	var enc struct {
		Document      string  `json:"document"`
		Symbols       int     `json:"symbols"`
		Distinct      int     `json:"distinct"`
		Bits          int     `json:"bits"`
		PackedBytes   int     `json:"packedBytes"`
		BitsPerSymbol float64 `json:"bitsPerSymbol"`
	}
	decodeJSON(t, w, &enc)
	if enc.Document != "b:0;a:10;c:11\n10100001111" || enc.Symbols != 7 || enc.Distinct != 3 || enc.Bits != 11 || enc.PackedBytes != 2 {
		t.Errorf("wrong encode response: %+v", enc)
	}

	w = do(r, http.MethodPost, "/api/v1/decode", enc.Document)
	if w.Code != http.StatusOK {
		t.Fatalf("decode: expected 200, got %d %s", w.Code, w.Body.String())
	}
	var dec struct {
		Text string `json:"text"`
	}
	decodeJSON(t, w, &dec)
	if dec.Text != "aabbbcc" {
		t.Errorf("wrong text: %q", dec.Text)
	}
}

func TestErrors(t *testing.T) {
	r := newTestEngine()

	type testRow struct {
		name   string
		method string
		path   string
		body   string
		code   int
		kind   string
	}

	testData := [...]testRow{
		{"empty-input", http.MethodPost, "/api/v1/encode", "", http.StatusBadRequest, "EmptyInput"},
		{"invalid-format", http.MethodPost, "/api/v1/decode", "not-a-valid-document", http.StatusBadRequest, "InvalidFormat"},
		{"duplicate-code", http.MethodPost, "/api/v1/decode", "a:0;b:0\n0", http.StatusBadRequest, "DuplicateCode"},
		{"truncated", http.MethodPost, "/api/v1/decode", "a:00;b:01\n0", http.StatusBadRequest, "TruncatedStream"},
		{"unmatched", http.MethodPost, "/api/v1/decode", "a:0\n1", http.StatusBadRequest, "TruncatedStream"},
		{"not-found", http.MethodGet, "/api/v1/documents/nope", "", http.StatusNotFound, ""},
	}
	for _, row := range testData {
		t.Run(row.name, func(t *testing.T) {
			w := do(r, row.method, row.path, row.body)
			if w.Code != row.code {
				t.Fatalf("expected %d, got %d %s", row.code, w.Code, w.Body.String())
			}
			var resp struct {
				Error string `json:"error"`
				Kind  string `json:"kind"`
			}
			decodeJSON(t, w, &resp)
			if resp.Kind != row.kind || resp.Error == "" {
				t.Errorf("wrong error response: %+v", resp)
			}
		})
	}
}

func TestDocuments(t *testing.T) {
	r := newTestEngine()
	const text = "hello\nhuffman: world;"

	w := do(r, http.MethodPost, "/api/v1/documents", text)
	if w.Code != http.StatusCreated {
		t.Fatalf("create: expected 201, got %d %s", w.Code, w.Body.String())
	}
	var created struct {
		ID       string `json:"id"`
		Document string `json:"document"`
	}
	decodeJSON(t, w, &created)

	w = do(r, http.MethodGet, "/api/v1/documents/"+created.ID, "")
	if w.Code != http.StatusOK || w.Body.String() != created.Document {
		t.Errorf("get: wrong response %d %q", w.Code, w.Body.String())
	}

	w = do(r, http.MethodGet, "/api/v1/documents/"+created.ID+"/text", "")
	if w.Code != http.StatusOK || w.Body.String() != text {
		t.Errorf("get text: wrong response %d %q", w.Code, w.Body.String())
	}

	w = do(r, http.MethodGet, "/api/v1/documents", "")
	if w.Code != http.StatusOK {
		t.Fatalf("list: expected 200, got %d", w.Code)
	}
	var list []struct {
		ID      string `json:"id"`
		Symbols int    `json:"symbols"`
	}
	decodeJSON(t, w, &list)
	if len(list) != 1 || list[0].ID != created.ID || list[0].Symbols != len([]rune(text)) {
		t.Errorf("wrong list: %+v", list)
	}
}
