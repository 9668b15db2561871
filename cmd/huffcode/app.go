package main

import (
	"bytes"
	"cmp"
	"fmt"
	"io"
	"log/slog"
	"slices"
	"text/tabwriter"

	"github.com/abhinav/huffcode/internal/archive"
	"github.com/abhinav/huffcode/internal/huffman"
	"github.com/abhinav/huffcode/internal/log"
	"github.com/benbjohnson/clock"
)

// app runs a single huffcode operation over input that's already in memory.
type app struct {
	Log   *log.Logger
	Clock clock.Clock
}

// Run performs the operation selected by cfg.Mode on data,
// writing the result to w.
func (app *app) Run(cfg *config, data []byte, w io.Writer) error {
	start := app.Clock.Now()
	logger := app.Log.With(
		log.OmitEmpty(slog.String, "input", cfg.Input),
		log.OmitEmpty(slog.String, "output", cfg.Output),
	)

	var (
		stats archive.Stats
		err   error
	)
	switch cfg.Mode {
	case compressMode:
		stats, err = archive.Compress(w, data)
	case decompressMode:
		stats, err = app.decompress(w, data)
	case tableMode:
		stats, err = printTable(w, data)
	default:
		err = fmt.Errorf("unsupported mode %v", cfg.Mode)
	}
	if err != nil {
		return fmt.Errorf("%v: %w", cfg.Mode, err)
	}

	logger.Debug(cfg.Mode.String(),
		"symbols", stats.Symbols,
		"alphabet", stats.Alphabet,
		"bits", stats.Bits,
		"elapsed", app.Clock.Since(start),
	)
	return nil
}

func (app *app) decompress(w io.Writer, data []byte) (archive.Stats, error) {
	out, stats, err := archive.Decompress(bytes.NewReader(data))
	if err != nil {
		return stats, err
	}

	if _, err := w.Write(out); err != nil {
		return stats, err
	}
	return stats, nil
}

// printTable writes the code table for data to w,
// shortest codewords first.
func printTable(w io.Writer, data []byte) (archive.Stats, error) {
	weights := huffman.Count(data)
	tree, err := huffman.Build(weights)
	if err != nil {
		return archive.Stats{}, err
	}
	table := huffman.BuildTable(tree)

	slices.SortFunc(weights, func(a, b huffman.Weight[byte]) int {
		if c := cmp.Compare(table[a.Symbol].Len(), table[b.Symbol].Len()); c != 0 {
			return c
		}
		return cmp.Compare(a.Symbol, b.Symbol)
	})

	stats := archive.Stats{
		Symbols:  len(data),
		Alphabet: len(weights),
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "SYMBOL\tFREQ\tCODE")
	for _, wt := range weights {
		code := table[wt.Symbol]
		stats.Bits += int(wt.Freq) * code.Len()
		fmt.Fprintf(tw, "%q\t%d\t%v\n", wt.Symbol, wt.Freq, code)
	}
	return stats, tw.Flush()
}
