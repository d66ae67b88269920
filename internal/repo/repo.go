// Package repo stores encoded documents.  The bitstream is kept packed eight
// bits to the byte; the code table is kept in its text form.
package repo

import (
	"context"
	"errors"
	"time"
)

var ErrNotFound = errors.New("not found")

// Record is one stored document.
type Record struct {
	ID string

	// Table is the code table section of the document, without the
	// newline that separates it from the bitstream.
	Table string

	// Packed holds BitLen bits, most significant bit first.
	Packed []byte
	BitLen int

	// Symbols is the length of the original text, in characters.
	Symbols int

	CreatedAt time.Time
}

// DocumentRepo is implemented by the in-memory and PostgreSQL stores.
type DocumentRepo interface {
	Save(ctx context.Context, r *Record) error
	FindByID(ctx context.Context, id string) (*Record, error)
	List(ctx context.Context) ([]*Record, error)
}
