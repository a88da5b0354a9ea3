// Package docs implements the line-based document reader: one
// document per non-empty line, with exact-duplicate lines collapsed
// and the document id assigned as the line's position in the
// resulting, de-duplicated sequence.
package docs

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/daac-tools/find-simdoc/internal/errs"
)

// Read consumes r line by line and returns the de-duplicated document
// list. Blank lines (after trimming trailing carriage returns) are
// skipped entirely; they do not consume a document id.
func Read(r io.Reader) ([]string, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	var out []string
	seen := make(map[string]struct{})
	for scanner.Scan() {
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		if _, dup := seen[line]; dup {
			continue
		}
		seen[line] = struct{}{}
		out = append(out, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading documents: %w", err)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("%w: input contains no documents", errs.ErrInputShape)
	}
	return out, nil
}
