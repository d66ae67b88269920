// Package codecfile is the file I/O shell around package huffman: it reads a
// named source, encodes or decodes it, and writes the named destination.
//
// A destination is written only if the whole operation succeeds.  Output
// goes to a temporary file next to the destination, which is renamed into
// place at the end, so a failed run never leaves a partial or empty file.
package codecfile

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	huffman "github.com/chronos-tachyon/huffmantext"
)

// Mode selects encoding or decoding.
type Mode byte

const (
	ModeEncode Mode = iota + 1
	ModeDecode
)

// ErrBadMode is returned by ParseMode.
var ErrBadMode = errors.New("codecfile: unknown mode")

// ParseMode accepts "encode" or "1" for ModeEncode and "decode" or "0" for
// ModeDecode.  Any positive number also means ModeEncode, as in the
// interactive prompt.
func ParseMode(str string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(str)) {
	case "encode", "e", "1":
		return ModeEncode, nil
	case "decode", "d", "0":
		return ModeDecode, nil
	}
	if n, err := strconv.Atoi(strings.TrimSpace(str)); err == nil {
		if n > 0 {
			return ModeEncode, nil
		}
		return ModeDecode, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrBadMode, str)
}

func (m Mode) String() string {
	switch m {
	case ModeEncode:
		return "encode"
	case ModeDecode:
		return "decode"
	}
	return fmt.Sprintf("Mode(%d)", byte(m))
}

// Result describes one completed operation.
type Result struct {
	Mode    Mode
	Source  string
	Dest    string
	Elapsed time.Duration

	// Report is set for ModeEncode only.
	Report *huffman.Report
}

// Run performs mode on the file src, writing dst.
func Run(mode Mode, src string, dst string) (Result, error) {
	switch mode {
	case ModeEncode:
		return EncodeFile(src, dst)
	case ModeDecode:
		return DecodeFile(src, dst)
	}
	return Result{}, fmt.Errorf("%w: %v", ErrBadMode, mode)
}

// EncodeFile encodes the text in src and writes the Document to dst.
func EncodeFile(src string, dst string) (Result, error) {
	start := time.Now()

	text, err := readFile(src)
	if err != nil {
		return Result{}, err
	}

	e, err := huffman.NewEncoder(text)
	if err != nil {
		return Result{}, fmt.Errorf("encode %s: %w", src, err)
	}
	doc, err := e.Encode(text)
	if err != nil {
		return Result{}, fmt.Errorf("encode %s: %w", src, err)
	}
	if err := writeFileAtomic(dst, doc.String()); err != nil {
		return Result{}, err
	}

	report := e.Report(doc)
	return Result{
		Mode:    ModeEncode,
		Source:  src,
		Dest:    dst,
		Elapsed: time.Since(start),
		Report:  &report,
	}, nil
}

// DecodeFile decodes the Document in src and writes the text to dst.
func DecodeFile(src string, dst string) (Result, error) {
	start := time.Now()

	doc, err := readFile(src)
	if err != nil {
		return Result{}, err
	}

	text, err := huffman.Decode(doc)
	if err != nil {
		return Result{}, fmt.Errorf("decode %s: %w", src, err)
	}
	if err := writeFileAtomic(dst, text); err != nil {
		return Result{}, err
	}

	return Result{
		Mode:    ModeDecode,
		Source:  src,
		Dest:    dst,
		Elapsed: time.Since(start),
	}, nil
}

func readFile(path string) (string, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", path, err)
	}
	return string(raw), nil
}

func writeFileAtomic(path string, data string) (err error) {
	dir, base := filepath.Split(path)
	if dir == "" {
		dir = "."
	}

	f, err := os.CreateTemp(dir, "."+base+".tmp*")
	if err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	tmp := f.Name()
	defer func() {
		if err != nil {
			_ = f.Close()
			_ = os.Remove(tmp)
		}
	}()

	if err = f.Chmod(0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	if _, err = f.WriteString(data); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err = f.Close(); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err = os.Rename(tmp, path); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
