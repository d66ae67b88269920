package codecfile

import (
	"context"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/chronos-tachyon/huffmantext/internal/logger"
)

// EncodedSuffix is appended to the names of files encoded in batch mode.
const EncodedSuffix = ".huff"

// BatchDest returns the destination batch mode uses for src: src+".huff"
// when encoding; when decoding, src without ".huff", or src+".txt" if it has
// no such suffix.
func BatchDest(mode Mode, src string) string {
	if mode == ModeEncode {
		return src + EncodedSuffix
	}
	if trimmed := strings.TrimSuffix(src, EncodedSuffix); trimmed != src && trimmed != "" {
		return trimmed
	}
	return src + ".txt"
}

// Batch runs mode over every file in srcs, at most limit at a time.  Each
// file is an independent operation with its own tables.  The first failure
// cancels the files not yet started; files already written stay written.
//
// Results are returned in the order of srcs.  On error, entries for files
// that did not complete are zero.
//
func Batch(ctx context.Context, mode Mode, srcs []string, limit int, log logger.Logger) ([]Result, error) {
	results := make([]Result, len(srcs))

	g, ctx := errgroup.WithContext(ctx)
	if limit > 0 {
		g.SetLimit(limit)
	}
	for i, src := range srcs {
		i, src := i, src
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			dst := BatchDest(mode, src)
			res, err := Run(mode, src, dst)
			if err != nil {
				log.Errorf("%s %s: %v", mode, src, err)
				return err
			}
			log.Debugf("%s %s -> %s in %v", mode, src, dst, res.Elapsed)
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return results, err
	}
	return results, nil
}
