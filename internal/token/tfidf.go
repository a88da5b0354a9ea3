package token

import (
	"fmt"
	"math"

	"github.com/daac-tools/find-simdoc/internal/errs"
)

// TFVariant selects how raw term counts become term-frequency weights.
type TFVariant string

const (
	// TFStandard uses the raw count.
	TFStandard TFVariant = "standard"
)

// IDFVariant selects how document frequency becomes an inverse
// document-frequency weight.
type IDFVariant string

const (
	// IDFStandard is the textbook log(N/df) weighting.
	IDFStandard IDFVariant = "standard"
	// IDFSmooth adds one to both the numerator and denominator and
	// then adds one to the logarithm, log((N+1)/(df+1)) + 1, so a term
	// appearing in every document still gets a positive weight (1)
	// instead of zero.
	IDFSmooth IDFVariant = "smooth"
)

// DocumentFrequencies counts, for each term, the number of documents
// (out of the corpus passed in) that contain it at least once.
func DocumentFrequencies(corpus []map[string]int) map[string]int {
	df := make(map[string]int)
	for _, doc := range corpus {
		for term := range doc {
			df[term]++
		}
	}
	return df
}

// Weights turns one document's term counts into a TF-IDF weighted
// feature map, ready for the SimHash sketcher. It rejects unknown tf
// or idf variants as an input-shape error rather than silently
// falling back to the standard variant.
func Weights(counts map[string]int, df map[string]int, numDocs int, tf TFVariant, idf IDFVariant) (map[string]float64, error) {
	if tf != TFStandard {
		return nil, fmt.Errorf("%w: unknown term-frequency variant %q", errs.ErrInputShape, tf)
	}
	if idf != IDFStandard && idf != IDFSmooth {
		return nil, fmt.Errorf("%w: unknown inverse-document-frequency variant %q", errs.ErrInputShape, idf)
	}

	weights := make(map[string]float64, len(counts))
	for term, c := range counts {
		tfWeight := float64(c)

		var idfWeight float64
		switch idf {
		case IDFSmooth:
			idfWeight = math.Log(float64(numDocs+1)/float64(df[term]+1)) + 1
		default: // IDFStandard
			if df[term] > 0 {
				idfWeight = math.Log(float64(numDocs) / float64(df[term]))
			}
		}

		weights[term] = tfWeight * idfWeight
	}
	return weights, nil
}
