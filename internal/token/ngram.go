// Package token implements the tokenizer and TF-IDF weighter that sit
// upstream of the core: character or word n-grams for the Jaccard
// sketcher's token sets, and term-frequency statistics feeding the
// Cosine sketcher's weighted feature maps. Neither is part of the
// core's contract (spec section 6 treats both as external
// collaborators); they exist here only so the CLI wrappers have
// something to sketch.
package token

import (
	"fmt"
	"strings"

	"github.com/daac-tools/find-simdoc/internal/errs"
)

// CharNGrams returns the set of character n-grams of width w found in
// doc, with duplicates collapsed (the Jaccard sketcher requires a
// set, not a multiset).
func CharNGrams(doc string, w int) (map[string]struct{}, error) {
	if w < 1 {
		return nil, fmt.Errorf("%w: n-gram window must be >= 1, got %d", errs.ErrInputShape, w)
	}
	set := make(map[string]struct{})
	runes := []rune(doc)
	if len(runes) < w {
		if len(runes) > 0 {
			set[string(runes)] = struct{}{}
		}
		return set, nil
	}
	for i := 0; i+w <= len(runes); i++ {
		set[string(runes[i:i+w])] = struct{}{}
	}
	return set, nil
}

// WordNGrams returns the set of word n-grams of width w found in doc,
// splitting on delim. delim must be non-empty in word mode.
func WordNGrams(doc string, w int, delim string) (map[string]struct{}, error) {
	if w < 1 {
		return nil, fmt.Errorf("%w: n-gram window must be >= 1, got %d", errs.ErrInputShape, w)
	}
	if delim == "" {
		return nil, fmt.Errorf("%w: word n-grams require a non-empty delimiter", errs.ErrInputShape)
	}
	words := splitNonEmpty(doc, delim)
	set := make(map[string]struct{})
	if len(words) < w {
		return set, nil
	}
	for i := 0; i+w <= len(words); i++ {
		set[strings.Join(words[i:i+w], delim)] = struct{}{}
	}
	return set, nil
}

// CharNGramCounts is the multiset counterpart of CharNGrams, used to
// build term-frequency vectors for the Cosine path.
func CharNGramCounts(doc string, w int) (map[string]int, error) {
	if w < 1 {
		return nil, fmt.Errorf("%w: n-gram window must be >= 1, got %d", errs.ErrInputShape, w)
	}
	counts := make(map[string]int)
	runes := []rune(doc)
	if len(runes) < w {
		if len(runes) > 0 {
			counts[string(runes)]++
		}
		return counts, nil
	}
	for i := 0; i+w <= len(runes); i++ {
		counts[string(runes[i:i+w])]++
	}
	return counts, nil
}

// WordNGramCounts is the multiset counterpart of WordNGrams.
func WordNGramCounts(doc string, w int, delim string) (map[string]int, error) {
	if w < 1 {
		return nil, fmt.Errorf("%w: n-gram window must be >= 1, got %d", errs.ErrInputShape, w)
	}
	if delim == "" {
		return nil, fmt.Errorf("%w: word n-grams require a non-empty delimiter", errs.ErrInputShape)
	}
	words := splitNonEmpty(doc, delim)
	counts := make(map[string]int)
	if len(words) < w {
		return counts, nil
	}
	for i := 0; i+w <= len(words); i++ {
		counts[strings.Join(words[i:i+w], delim)]++
	}
	return counts, nil
}

func splitNonEmpty(doc, delim string) []string {
	parts := strings.Split(doc, delim)
	out := parts[:0]
	for _, p := range parts {
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}
