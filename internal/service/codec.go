package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"

	huffman "github.com/chronos-tachyon/huffmantext"
	"github.com/chronos-tachyon/huffmantext/internal/bitpack"
	"github.com/chronos-tachyon/huffmantext/internal/logger"
	"github.com/chronos-tachyon/huffmantext/internal/repo"
)

// CodecService encodes and decodes texts and stores encoded documents.
type CodecService struct {
	repo   repo.DocumentRepo
	logger logger.Logger
	now    func() time.Time
}

// NewCodecService returns a CodecService backed by r.
func NewCodecService(r repo.DocumentRepo, l logger.Logger) *CodecService {
	return &CodecService{repo: r, logger: l, now: time.Now}
}

// Encoded is the result of encoding a text.
type Encoded struct {
	ID       string
	Document *huffman.Document
	Report   huffman.Report
}

func (s *CodecService) Encode(text string) (*Encoded, error) {
	e, err := huffman.NewEncoder(text)
	if err != nil {
		return nil, err
	}
	doc, err := e.Encode(text)
	if err != nil {
		return nil, err
	}
	return &Encoded{
		ID:       documentID(doc),
		Document: doc,
		Report:   e.Report(doc),
	}, nil
}

func (s *CodecService) Decode(document string) (string, error) {
	text, err := huffman.Decode(document)
	if err != nil {
		s.logger.Debugf("decode rejected (%s): %v", huffman.ErrorKind(err), err)
		return "", err
	}
	return text, nil
}

// Save encodes text and stores the result.  Saving the same text twice
// yields the same ID.
func (s *CodecService) Save(ctx context.Context, text string) (*Encoded, error) {
	enc, err := s.Encode(text)
	if err != nil {
		return nil, err
	}

	packed, err := bitpack.Pack(enc.Document.Bits)
	if err != nil {
		return nil, err
	}
	rec := &repo.Record{
		ID:        enc.ID,
		Table:     tableText(enc.Document),
		Packed:    packed,
		BitLen:    len(enc.Document.Bits),
		Symbols:   enc.Report.Symbols,
		CreatedAt: s.now().UTC(),
	}
	if err := s.repo.Save(ctx, rec); err != nil {
		return nil, err
	}
	s.logger.Infof("document saved: %s (%d symbols, %d bits)", rec.ID, rec.Symbols, rec.BitLen)
	return enc, nil
}

// Get returns the stored document with the given ID.
func (s *CodecService) Get(ctx context.Context, id string) (*huffman.Document, error) {
	rec, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return recordDocument(rec)
}

// GetText returns the decoded text of the stored document with the given ID.
func (s *CodecService) GetText(ctx context.Context, id string) (string, error) {
	doc, err := s.Get(ctx, id)
	if err != nil {
		return "", err
	}
	var d huffman.Decoder
	return d.DecodeDocument(doc)
}

// Summary describes a stored document without its contents.
type Summary struct {
	ID          string    `json:"id"`
	Symbols     int       `json:"symbols"`
	Bits        int       `json:"bits"`
	PackedBytes int       `json:"packedBytes"`
	CreatedAt   time.Time `json:"createdAt"`
}

func (s *CodecService) List(ctx context.Context) ([]Summary, error) {
	recs, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]Summary, 0, len(recs))
	for _, rec := range recs {
		out = append(out, Summary{
			ID:          rec.ID,
			Symbols:     rec.Symbols,
			Bits:        rec.BitLen,
			PackedBytes: len(rec.Packed),
			CreatedAt:   rec.CreatedAt,
		})
	}
	return out, nil
}

func documentID(doc *huffman.Document) string {
	sum := sha256.Sum256([]byte(doc.String()))
	return hex.EncodeToString(sum[:8])
}

func tableText(doc *huffman.Document) string {
	full := doc.String()
	return full[:len(full)-len(doc.Bits)-1]
}

func recordDocument(rec *repo.Record) (*huffman.Document, error) {
	bits, err := bitpack.Unpack(rec.Packed, rec.BitLen)
	if err != nil {
		return nil, fmt.Errorf("document %s: %w", rec.ID, err)
	}
	doc, err := huffman.ParseDocument(rec.Table + "\n" + bits)
	if err != nil {
		return nil, fmt.Errorf("document %s: %w", rec.ID, err)
	}
	return doc, nil
}
