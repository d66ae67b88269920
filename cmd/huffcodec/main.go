// Command huffcodec encodes text files into Huffman-coded documents and
// decodes them again.
//
// Usage:
//
//     huffcodec [-mode encode|decode] [-in FILE] [-out FILE] [-quiet]
//     huffcodec -mode encode|decode -batch FILE...
//
// Without -mode, huffcodec asks for one.  Encoding reads source.txt and
// writes encoded.txt by default; decoding does the reverse.
//
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	huffman "github.com/chronos-tachyon/huffmantext"
	"github.com/chronos-tachyon/huffmantext/internal/codecfile"
	"github.com/chronos-tachyon/huffmantext/internal/config"
	"github.com/chronos-tachyon/huffmantext/internal/logger"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout io.Writer, stderr io.Writer) int {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 2
	}

	fs := flag.NewFlagSet("huffcodec", flag.ContinueOnError)
	fs.SetOutput(stderr)
	modeFlag := fs.String("mode", "", "encode (1) or decode (0); prompts if empty")
	inFlag := fs.String("in", "", "input file (default "+cfg.SourceFile+" when encoding, "+cfg.EncodedFile+" when decoding)")
	outFlag := fs.String("out", "", "output file (default "+cfg.EncodedFile+" when encoding, "+cfg.SourceFile+" when decoding)")
	batchFlag := fs.Bool("batch", false, "process every file named on the command line")
	limitFlag := fs.Int("j", cfg.BatchLimit, "files to process at once in batch mode")
	quietFlag := fs.Bool("quiet", false, "print nothing on success")
	debugFlag := fs.Bool("debug", cfg.Debug, "log debug messages")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	logg := logger.NewWriter(stderr, *debugFlag)

	modeStr := *modeFlag
	if modeStr == "" {
		fmt.Fprint(stdout, "Type 1 for encoding or 0 for decoding: ")
		line, err := bufio.NewReader(stdin).ReadString('\n')
		if err != nil && line == "" {
			logg.Errorf("read mode: %v", err)
			return 2
		}
		modeStr = line
	}
	mode, err := codecfile.ParseMode(modeStr)
	if err != nil {
		logg.Errorf("%v", err)
		return 2
	}

	if *batchFlag {
		return runBatch(mode, fs.Args(), *limitFlag, *quietFlag, stdout, logg)
	}
	if fs.NArg() != 0 {
		logg.Errorf("unexpected arguments %q; did you mean -batch?", fs.Args())
		return 2
	}

	src, dst := cfg.SourceFile, cfg.EncodedFile
	if mode == codecfile.ModeDecode {
		src, dst = dst, src
	}
	if *inFlag != "" {
		src = *inFlag
	}
	if *outFlag != "" {
		dst = *outFlag
	}

	if !*quietFlag {
		if mode == codecfile.ModeEncode {
			fmt.Fprintln(stdout, "\nEncoding...")
		} else {
			fmt.Fprintln(stdout, "\nDecoding...")
		}
	}

	res, err := codecfile.Run(mode, src, dst)
	if err != nil {
		if kind := huffman.ErrorKind(err); kind != "" {
			logg.Errorf("%s: %v", kind, err)
		} else {
			logg.Errorf("%v", err)
		}
		return 1
	}

	if !*quietFlag {
		printResult(stdout, res)
	}
	return 0
}

func runBatch(mode codecfile.Mode, srcs []string, limit int, quiet bool, stdout io.Writer, logg logger.Logger) int {
	if len(srcs) == 0 {
		logg.Errorf("-batch needs at least one file")
		return 2
	}

	start := time.Now()
	results, err := codecfile.Batch(context.Background(), mode, srcs, limit, logg)
	if err != nil {
		logg.Errorf("batch %s failed: %v", mode, err)
		return 1
	}

	if !quiet {
		for _, res := range results {
			fmt.Fprintf(stdout, "%s -> %s (%s)\n", res.Source, res.Dest, formatMillis(res.Elapsed))
		}
		fmt.Fprintf(stdout, "Done! %d files in %s\n", len(results), formatMillis(time.Since(start)))
	}
	return 0
}

func printResult(w io.Writer, res codecfile.Result) {
	if res.Report != nil {
		fmt.Fprintln(w)
		_, _ = res.Report.WriteTo(w)
	}
	fmt.Fprintf(w, "\nDone! Check %s for the result. Execution took %s\n", res.Dest, formatMillis(res.Elapsed))
}

func formatMillis(d time.Duration) string {
	return fmt.Sprintf("%.3f milliseconds", float64(d)/float64(time.Millisecond))
}
