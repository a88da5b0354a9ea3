// Command minhash_acc is the offline calibration harness: for a
// corpus small enough to afford the exact O(n^2) Jaccard distance, it
// reports how closely 1-bit minwise sketches track that exact
// distance across a range of chunk counts C, so a user can pick a C
// for the jaccard join before running it at scale.
package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/daac-tools/find-simdoc/internal/accuracy"
	"github.com/daac-tools/find-simdoc/internal/docs"
	"github.com/daac-tools/find-simdoc/internal/errs"
	"github.com/daac-tools/find-simdoc/internal/token"
)

type flags struct {
	input  string
	window int
	cRange string
	seed   uint64
}

func main() {
	f := &flags{}
	cmd := &cobra.Command{
		Use:   "minhash_acc",
		Short: "Calibrate minwise sketch width C against exact Jaccard distance",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(f)
		},
		SilenceUsage: true,
	}

	cmd.Flags().StringVarP(&f.input, "input", "i", "", "input file, one document per line (required)")
	cmd.Flags().IntVarP(&f.window, "window", "w", 0, "n-gram window size (required)")
	cmd.Flags().StringVarP(&f.cRange, "c-range", "c", "1,2,4,8,16,32,64,100", "comma-separated list of chunk counts C to evaluate")
	cmd.Flags().Uint64Var(&f.seed, "seed", 42, "hash family seed")
	for _, name := range []string{"input", "window"} {
		if err := cmd.MarkFlagRequired(name); err != nil {
			panic(err)
		}
	}

	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "minhash_acc: %v\n", err)
		os.Exit(1)
	}
}

func run(f *flags) error {
	cs, err := parseCRange(f.cRange)
	if err != nil {
		return err
	}

	in, err := os.Open(f.input)
	if err != nil {
		return fmt.Errorf("opening input: %w", err)
	}
	defer in.Close()

	documents, err := docs.Read(in)
	if err != nil {
		return err
	}
	if len(documents) < 2 {
		return fmt.Errorf("%w: accuracy harness needs at least two documents, got %d", errs.ErrInputShape, len(documents))
	}

	sets := make([]map[string]struct{}, len(documents))
	for id, doc := range documents {
		toks, err := token.CharNGrams(doc, f.window)
		if err != nil {
			return err
		}
		sets[id] = toks
	}

	reports, err := accuracy.Run(sets, cs, f.seed)
	if err != nil {
		return err
	}

	fmt.Print(accuracy.Summary(reports))
	return nil
}

// parseCRange parses a comma-separated list of positive integers,
// e.g. "1,2,4,8,16,32,64,100".
func parseCRange(s string) ([]int, error) {
	fields := strings.Split(s, ",")
	cs := make([]int, 0, len(fields))
	for _, field := range fields {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}
		c, err := strconv.Atoi(field)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid chunk count %q in --c-range", errs.ErrInputShape, field)
		}
		if c < 1 {
			return nil, fmt.Errorf("%w: chunk count must be >= 1, got %d", errs.ErrInputShape, c)
		}
		cs = append(cs, c)
	}
	if len(cs) == 0 {
		return nil, fmt.Errorf("%w: --c-range produced no chunk counts", errs.ErrInputShape)
	}
	return cs, nil
}
