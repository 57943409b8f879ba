package stylus

import (
	"fmt"
	"io"
	"log"
)

// Source is a portfolio sheet to read.
type Source struct {
	Path   string
	Sheet  string
	Layout Layout
}

func (s Source) String() string { return fmt.Sprintf("%s:%s", s.Path, s.Sheet) }

// Target is the sheet the Stylus portfolio is written to.
type Target struct {
	Path  string
	Sheet string
}

func (t Target) String() string { return fmt.Sprintf("%s:%s", t.Path, t.Sheet) }

// Job describes a full load, merge and write pipeline.
type Job struct {
	// Input is the portfolio to convert, or the additions to merge into Existing.
	Input Source
	// Existing is the optional portfolio Input is merged into.
	// On conflicts, Input values take precedence but Existing metadata wins.
	Existing *Source
	// Output is where the result is written.
	Output Target

	// Overrides are metadata values explicitly set on the result.
	Overrides *Metadata
	// Strict fails the merge on conflicting fund labels or DBIDs.
	Strict bool
	// Create creates the output workbook or sheet if missing.
	Create bool
}

// Run executes the job: it loads the input, merges it into the existing portfolio if
// any, recomputes the metadata, and writes the result. Progress is reported to logger,
// which can be nil.
//
// Any error aborts the pipeline. An error while writing may leave the output partially
// written.
func Run(job Job, logger *log.Logger) error {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}

	data, meta, err := Load(job.Input.Path, job.Input.Sheet, job.Input.Layout)
	if err != nil {
		return err
	}
	logger.Printf("Data imported from %s (%d funds, %d dates).", job.Input, data.Len(), len(data.Dates()))

	if job.Existing != nil {
		existing, existingMeta, err := Load(job.Existing.Path, job.Existing.Sheet, job.Existing.Layout)
		if err != nil {
			return err
		}
		logger.Printf("Data imported from %s (%d funds, %d dates).", job.Existing, existing.Len(), len(existing.Dates()))

		data, err = Merge(existing, data, MergeOptions{Strict: job.Strict})
		if err != nil {
			return fmt.Errorf("cannot merge %s into %s: %w", job.Input, job.Existing, err)
		}
		meta = UpdateMetadata(data, existingMeta, meta)
		logger.Printf("Data merged (%d funds, %d dates).", data.Len(), len(data.Dates()))
	} else {
		meta = UpdateMetadata(data, meta, nil)
	}

	if job.Overrides.Len() > 0 {
		if meta, err = Override(meta, job.Overrides); err != nil {
			return err
		}
	}

	if err := Write(job.Output.Path, job.Output.Sheet, data, meta, WriteOptions{Create: job.Create}); err != nil {
		return err
	}
	logger.Printf("Data exported to %s.", job.Output)
	return nil
}
