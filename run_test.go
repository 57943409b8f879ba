package stylus

import (
	"bytes"
	"errors"
	"log"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func TestRunConvert(t *testing.T) {
	input := newWorkbook(t, "funds", map[string]any{
		"A1": "ID", "B1": "Label", "C1": "DBID", "D1": "2018-01-01",
		"A2": "FOUSA1", "B2": "MStarFund", "C2": "MfX", "D2": 10,
	})
	output := newWorkbook(t, "stylus", nil)

	var logs bytes.Buffer
	job := Job{
		Input:  Source{Path: input, Sheet: "funds", Layout: Generic},
		Output: Target{Path: output, Sheet: "stylus"},
	}
	if err := Run(job, log.New(&logs, "", 0)); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if !strings.Contains(logs.String(), "Data exported to") {
		t.Errorf("Run() logs = %q, want an export message", logs.String())
	}

	got, meta, err := Load(output, "stylus", Stylus)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if diff := cmp.Diff([]string{"ID|Label|DBID|2018-01-01", "FOUSA1|MStarFund|MfX|10"}, dump(got)); diff != "" {
		t.Errorf("Run() output mismatch (-want +got):\n%s", diff)
	}
	if v, _ := meta.Get(KeyRebalance); v != DefaultRebalance {
		t.Errorf("Run() rebalance = %q want %q", v, DefaultRebalance)
	}
}

func TestRunMerge(t *testing.T) {
	// The existing Stylus portfolio.
	existing := newWorkbook(t, "stylus", nil)
	meta := UpdateMetadata(exampleA(t), nil, nil)
	meta.Set(KeyRebalance, "Quarterly")
	if err := Write(existing, "stylus", exampleA(t), meta, WriteOptions{}); err != nil {
		t.Fatal(err)
	}
	// The additions, in the generic layout.
	additions := newWorkbook(t, "new", map[string]any{
		"A1": "MPI_Rebalance", "B1": "MPI_CURRENCY",
		"A2": "Monthly", "B2": "USD",
		"A3": "ID", "B3": "Label", "C3": "DBID", "D3": time.Date(2018, 2, 1, 0, 0, 0, 0, time.UTC),
		"A4": "FOUSA1", "D4": 45.678,
		"A5": "012345", "B5": "eVestFund", "C5": "eVa", "D5": 0,
	})

	overrides := NewMetadata()
	overrides.Set("MPI_PORTFOLIONAME", "Merged")
	job := Job{
		Input:     Source{Path: additions, Sheet: "new", Layout: Generic},
		Existing:  &Source{Path: existing, Sheet: "stylus", Layout: Stylus},
		Output:    Target{Path: existing, Sheet: "stylus"},
		Overrides: overrides,
	}
	if err := Run(job, nil); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	got, gotMeta, err := Load(existing, "stylus", Stylus)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	want := []string{
		"ID|Label|DBID|2018-01-01|2018-02-01",
		"FOUSA1|MStarFund|MfX|10|45.678",
		"012345|eVestFund|eVa|0|0",
	}
	if diff := cmp.Diff(want, dump(got)); diff != "" {
		t.Errorf("Run() output mismatch (-want +got):\n%s", diff)
	}
	wantMeta := []string{
		"MPI_Rebalance=Quarterly",
		"MPI_PORTFOLIOTYPE=Advanced",
		"MPI_ASSETIDRANGE=A5:A6",
		"MPI_LABELRANGE=B5:B6",
		"MPI_ASSETDBIDRANGE=C5:C6",
		"MPI_PORTFOLIODATERANGE=D4:E4",
		"MPI_CURRENCY=USD",
		"MPI_PORTFOLIONAME=Merged",
	}
	if diff := cmp.Diff(wantMeta, pairs(gotMeta)); diff != "" {
		t.Errorf("Run() metadata mismatch (-want +got):\n%s", diff)
	}
}

func TestRunErrors(t *testing.T) {
	input := newWorkbook(t, "funds", map[string]any{"A1": "Fund"})
	output := newWorkbook(t, "stylus", map[string]any{"A1": "untouched"})

	job := Job{
		Input:  Source{Path: input, Sheet: "funds", Layout: Generic},
		Output: Target{Path: output, Sheet: "stylus"},
	}
	if err := Run(job, nil); !errors.Is(err, ErrFormat) {
		t.Errorf("Run() error = %v want ErrFormat", err)
	}

	job.Input.Layout = Stylus
	if err := Run(job, nil); !errors.Is(err, ErrMissingMetadataKey) {
		t.Errorf("Run() error = %v want ErrMissingMetadataKey", err)
	}
}
