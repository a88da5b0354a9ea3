// Command jaccard runs the Jaccard-distance self-join over a
// line-based document file: tokenize each line into character or word
// n-grams, sketch with 1-bit minwise hashing, and emit every pair
// within the requested radius as CSV.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/daac-tools/find-simdoc/internal/docs"
	"github.com/daac-tools/find-simdoc/internal/errs"
	"github.com/daac-tools/find-simdoc/internal/hashfamily"
	"github.com/daac-tools/find-simdoc/internal/join"
	"github.com/daac-tools/find-simdoc/internal/sink"
	"github.com/daac-tools/find-simdoc/internal/sketch"
	"github.com/daac-tools/find-simdoc/internal/sketch/minwise"
	"github.com/daac-tools/find-simdoc/internal/token"
)

type flags struct {
	input  string
	output string
	radius float64
	window int
	chunks int
	mode   string
	delim  string
	seed   uint64
}

func main() {
	logger, _ := zap.NewProduction()
	defer logger.Sync()

	f := &flags{}
	cmd := &cobra.Command{
		Use:   "jaccard",
		Short: "Self-join a document set by Jaccard distance over n-gram sketches",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(f, logger)
		},
		SilenceUsage: true,
	}

	cmd.Flags().StringVarP(&f.input, "input", "i", "", "input file, one document per line (required)")
	cmd.Flags().Float64VarP(&f.radius, "radius", "r", 0, "Hamming-space radius in [0,1] (required)")
	cmd.Flags().IntVarP(&f.window, "window", "w", 0, "n-gram window size (required)")
	cmd.Flags().IntVarP(&f.chunks, "chunks", "c", 0, "number of 64-bit chunks C; sketch width is 64*C (required)")
	cmd.Flags().StringVarP(&f.output, "output", "o", "", "output CSV file (default stdout)")
	cmd.Flags().StringVarP(&f.mode, "mode", "m", "char", "n-gram mode: char or word")
	cmd.Flags().StringVarP(&f.delim, "delim", "d", "", "word delimiter (required when --mode=word)")
	cmd.Flags().Uint64Var(&f.seed, "seed", 42, "hash family seed")
	for _, name := range []string{"input", "radius", "window", "chunks"} {
		if err := cmd.MarkFlagRequired(name); err != nil {
			panic(err)
		}
	}

	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "jaccard: %v\n", err)
		os.Exit(1)
	}
}

func run(f *flags, logger *zap.Logger) error {
	in, err := os.Open(f.input)
	if err != nil {
		return fmt.Errorf("opening input: %w", err)
	}
	defer in.Close()

	documents, err := docs.Read(in)
	if err != nil {
		return err
	}

	fam := hashfamily.New(f.seed)
	set, err := sketch.NewSet(len(documents), f.chunks)
	if err != nil {
		return err
	}

	for id, doc := range documents {
		var toks map[string]struct{}
		switch f.mode {
		case "char":
			toks, err = token.CharNGrams(doc, f.window)
		case "word":
			if f.delim == "" {
				return fmt.Errorf("%w: --mode=word requires --delim", errs.ErrInputShape)
			}
			toks, err = token.WordNGrams(doc, f.window, f.delim)
		default:
			return fmt.Errorf("%w: unknown --mode %q (want char or word)", errs.ErrInputShape, f.mode)
		}
		if err != nil {
			return err
		}
		words := minwise.SketchSet(toks, f.chunks, fam)
		if err := set.Add(id, words); err != nil {
			return err
		}
	}

	results, err := join.Join(set, f.radius, join.Options{Seed: f.seed, Logger: logger})
	if err != nil {
		return err
	}

	out := os.Stdout
	if f.output != "" {
		file, err := os.Create(f.output)
		if err != nil {
			return fmt.Errorf("creating output: %w", err)
		}
		defer file.Close()
		out = file
	}

	logger.Info("jaccard join complete",
		zap.Int("documents", len(documents)),
		zap.Int("chunks", f.chunks),
		zap.Float64("radius", f.radius),
		zap.Int("pairs", len(results)),
	)
	return sink.WriteResults(out, results)
}
