package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	huffman "github.com/chronos-tachyon/huffmantext"
	"github.com/chronos-tachyon/huffmantext/internal/repo"
	"github.com/chronos-tachyon/huffmantext/internal/service"
)

// MaxBodyBytes caps the size of request bodies.
const MaxBodyBytes = 16 << 20

type CodecHandler struct {
	svc *service.CodecService
}

func NewCodecHandler(s *service.CodecService) *CodecHandler {
	return &CodecHandler{svc: s}
}

type encodeResp struct {
	ID            string  `json:"id"`
	Document      string  `json:"document"`
	Symbols       int     `json:"symbols"`
	Distinct      int     `json:"distinct"`
	Bits          int     `json:"bits"`
	PackedBytes   int     `json:"packedBytes"`
	BitsPerSymbol float64 `json:"bitsPerSymbol"`
}

func newEncodeResp(enc *service.Encoded) encodeResp {
	return encodeResp{
		ID:            enc.ID,
		Document:      enc.Document.String(),
		Symbols:       enc.Report.Symbols,
		Distinct:      enc.Report.Distinct,
		Bits:          enc.Report.Bits,
		PackedBytes:   enc.Report.PackedBytes,
		BitsPerSymbol: enc.Report.BitsPerSymbol,
	}
}

func (h *CodecHandler) Encode(c *gin.Context) {
	body, ok := readBody(c)
	if !ok {
		return
	}
	enc, err := h.svc.Encode(body)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, newEncodeResp(enc))
}

func (h *CodecHandler) Decode(c *gin.Context) {
	body, ok := readBody(c)
	if !ok {
		return
	}
	text, err := h.svc.Decode(body)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"text": text})
}

func (h *CodecHandler) Create(c *gin.Context) {
	body, ok := readBody(c)
	if !ok {
		return
	}
	enc, err := h.svc.Save(c.Request.Context(), body)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, newEncodeResp(enc))
}

func (h *CodecHandler) GetByID(c *gin.Context) {
	doc, err := h.svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.String(http.StatusOK, "%s", doc.String())
}

func (h *CodecHandler) GetText(c *gin.Context) {
	text, err := h.svc.GetText(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.String(http.StatusOK, "%s", text)
}

func (h *CodecHandler) List(c *gin.Context) {
	list, err := h.svc.List(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

func readBody(c *gin.Context) (string, bool) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, MaxBodyBytes)
	raw, err := c.GetRawData()
	if err != nil {
		var tooBig *http.MaxBytesError
		if errors.As(err, &tooBig) {
			c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": err.Error()})
			return "", false
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return "", false
	}
	return string(raw), true
}

func writeError(c *gin.Context, err error) {
	if errors.Is(err, repo.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "document not found"})
		return
	}
	if kind := huffman.ErrorKind(err); kind != "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "kind": kind})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
}
