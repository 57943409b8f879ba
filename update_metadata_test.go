package stylus

import (
	"errors"
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// pairs renders metadata as "key=value" in order.
func pairs(m *Metadata) []string {
	var res []string
	for k, v := range m.All() {
		res = append(res, k+"="+v)
	}
	return res
}

func TestUpdateMetadataRanges(t *testing.T) {
	var funds []fund
	for i := range 10 {
		funds = append(funds, fund{id: fmt.Sprintf("F%02d", i)})
	}
	tab := newTable(t, []string{"2018-01-01", "2018-02-01", "2018-03-01"}, funds...)

	got := UpdateMetadata(tab, nil, nil)
	want := []string{
		"MPI_Rebalance=Monthly",
		"MPI_PORTFOLIOTYPE=Advanced",
		"MPI_ASSETIDRANGE=A5:A14",
		"MPI_LABELRANGE=B5:B14",
		"MPI_ASSETDBIDRANGE=C5:C14",
		"MPI_PORTFOLIODATERANGE=D4:F4",
	}
	if diff := cmp.Diff(want, pairs(got)); diff != "" {
		t.Errorf("UpdateMetadata() mismatch (-want +got):\n%s", diff)
	}

	// Recomputing is idempotent.
	again := UpdateMetadata(tab, got, nil)
	if diff := cmp.Diff(pairs(got), pairs(again)); diff != "" {
		t.Errorf("UpdateMetadata() is not idempotent (-first +second):\n%s", diff)
	}
}

func TestUpdateMetadataMerge(t *testing.T) {
	primary := NewMetadata()
	primary.Set("MPI_PORTFOLIONAME", "existing")
	primary.Set(KeyRebalance, "Quarterly")
	primary.Set(KeyLabelRange, "B5:B99")

	secondary := NewMetadata()
	secondary.Set("MPI_PORTFOLIONAME", "additions")
	secondary.Set("MPI_CURRENCY", "USD")
	secondary.Set(KeyLabelRange, "B5:B6")

	tab := exampleA(t)
	got := UpdateMetadata(tab, primary, secondary)
	want := []string{
		"MPI_PORTFOLIONAME=existing",
		"MPI_Rebalance=Quarterly",
		"MPI_LABELRANGE=B5:B5",
		"MPI_PORTFOLIOTYPE=Advanced",
		"MPI_ASSETIDRANGE=A5:A5",
		"MPI_ASSETDBIDRANGE=C5:C5",
		"MPI_PORTFOLIODATERANGE=D4:D4",
		"MPI_CURRENCY=USD",
	}
	if diff := cmp.Diff(want, pairs(got)); diff != "" {
		t.Errorf("UpdateMetadata() mismatch (-want +got):\n%s", diff)
	}
	// inputs are not modified
	if v, _ := primary.Get(KeyLabelRange); v != "B5:B99" {
		t.Errorf("UpdateMetadata() modified primary: %v", pairs(primary))
	}
	if primary.Len() != 3 || secondary.Len() != 3 {
		t.Errorf("UpdateMetadata() modified its inputs")
	}
}

func TestDerivedRangesEmptyDates(t *testing.T) {
	tab := newTable(t, nil, fund{id: "A"}, fund{id: "B"})
	r := DerivedRanges(tab)
	if got := r.Dates.String(); got != "D4:C4" {
		t.Errorf("Dates = %s want D4:C4", got)
	}
	if got := r.ID.String(); got != "A5:A6" {
		t.Errorf("ID = %s want A5:A6", got)
	}
}

func TestOverride(t *testing.T) {
	m := UpdateMetadata(exampleA(t), nil, nil)

	overrides := NewMetadata()
	overrides.Set(KeyRebalance, "Quarterly")
	overrides.Set("MPI_PORTFOLIONAME", "Balanced")
	got, err := Override(m, overrides)
	if err != nil {
		t.Fatalf("Override() error = %v", err)
	}
	if v, _ := got.Get(KeyRebalance); v != "Quarterly" {
		t.Errorf("Override() rebalance = %q want Quarterly", v)
	}
	if v, _ := got.Get("MPI_PORTFOLIONAME"); v != "Balanced" {
		t.Errorf("Override() name = %q want Balanced", v)
	}
	if v, _ := m.Get(KeyRebalance); v != DefaultRebalance {
		t.Errorf("Override() modified its input")
	}

	overrides.Set(KeyAssetIDRange, "A1:A2")
	if _, err := Override(m, overrides); !errors.Is(err, ErrFormat) {
		t.Errorf("Override(derived key) error = %v want ErrFormat", err)
	}
}
