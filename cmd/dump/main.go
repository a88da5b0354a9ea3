// Command dump pretty-prints a pairs CSV produced by jaccard or
// cosine alongside the original document text, for eyeballing whether
// a join's output looks right.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/daac-tools/find-simdoc/internal/docs"
	"github.com/daac-tools/find-simdoc/internal/errs"
	"github.com/daac-tools/find-simdoc/internal/sink"
)

type flags struct {
	input string
	pairs string
}

func main() {
	f := &flags{}
	cmd := &cobra.Command{
		Use:   "dump",
		Short: "Pretty-print a pairs CSV alongside the source documents",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(f)
		},
		SilenceUsage: true,
	}

	cmd.Flags().StringVarP(&f.input, "input", "i", "", "original document file (required)")
	cmd.Flags().StringVarP(&f.pairs, "pairs", "s", "", "pairs CSV produced by jaccard or cosine (required)")
	for _, name := range []string{"input", "pairs"} {
		if err := cmd.MarkFlagRequired(name); err != nil {
			panic(err)
		}
	}

	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "dump: %v\n", err)
		os.Exit(1)
	}
}

func run(f *flags) error {
	docFile, err := os.Open(f.input)
	if err != nil {
		return fmt.Errorf("opening input: %w", err)
	}
	defer docFile.Close()

	documents, err := docs.Read(docFile)
	if err != nil {
		return err
	}

	pairsFile, err := os.Open(f.pairs)
	if err != nil {
		return fmt.Errorf("opening pairs: %w", err)
	}
	defer pairsFile.Close()

	results, err := sink.ReadResults(pairsFile)
	if err != nil {
		return err
	}

	for _, r := range results {
		if r.I < 0 || r.I >= len(documents) || r.J < 0 || r.J >= len(documents) {
			return fmt.Errorf("%w: pair (%d,%d) references a document id outside [0,%d)", errs.ErrInputShape, r.I, r.J, len(documents))
		}
		fmt.Printf("%.6f\t[%d] %s\n\t[%d] %s\n\n", r.Dist, r.I, documents[r.I], r.J, documents[r.J])
	}
	return nil
}
