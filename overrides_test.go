package stylus

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestDecodeOverrides(t *testing.T) {
	doc := `
MPI_Rebalance: Quarterly
MPI_PORTFOLIONAME: Balanced fund
MPI_BENCHMARK: 12
`
	m, err := DecodeOverrides(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("DecodeOverrides() error = %v", err)
	}
	want := []string{"MPI_Rebalance=Quarterly", "MPI_PORTFOLIONAME=Balanced fund", "MPI_BENCHMARK=12"}
	if diff := cmp.Diff(want, pairs(m)); diff != "" {
		t.Errorf("DecodeOverrides() mismatch (-want +got):\n%s", diff)
	}
}

func TestDecodeOverridesErrors(t *testing.T) {
	for _, doc := range []string{"- a\n- b\n", "key: [1, 2]\n", "key: [unclosed\n"} {
		if _, err := DecodeOverrides(strings.NewReader(doc)); err == nil {
			t.Errorf("DecodeOverrides(%q) succeeded", doc)
		}
	}
	m, err := DecodeOverrides(strings.NewReader(""))
	if err != nil || m.Len() != 0 {
		t.Errorf("DecodeOverrides(empty) = %v, %v want empty", pairs(m), err)
	}
}
