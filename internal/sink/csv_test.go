package sink

import (
	"bytes"
	"strings"
	"testing"

	"github.com/daac-tools/find-simdoc/internal/join"
)

func TestWriteReadRoundTrip(t *testing.T) {
	results := []join.Result{
		{I: 0, J: 1, Dist: 0.0},
		{I: 0, J: 2, Dist: 0.125},
		{I: 3, J: 5, Dist: 0.5},
	}

	var buf bytes.Buffer
	if err := WriteResults(&buf, results); err != nil {
		t.Fatal(err)
	}

	if !strings.HasPrefix(buf.String(), "i,j,dist\n") {
		t.Fatalf("expected csv header, got: %s", buf.String())
	}

	got, err := ReadResults(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != len(results) {
		t.Fatalf("expected %d rows, got %d", len(results), len(got))
	}
	for i := range results {
		if got[i] != results[i] {
			t.Fatalf("row %d: expected %+v, got %+v", i, results[i], got[i])
		}
	}
}

func TestReadResultsRejectsMalformedRow(t *testing.T) {
	_, err := ReadResults(strings.NewReader("i,j,dist\n0,1\n"))
	if err == nil {
		t.Fatal("expected an error for a short row")
	}
}
