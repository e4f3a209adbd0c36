package footer

import (
	"fmt"
	"io"
)

// WriteHeader prints the line announcing how many documents will be processed.
func WriteHeader(w io.Writer, total int) error {
	_, err := fmt.Fprintf(w, "Found %d documents to process...\n", total)
	return err
}

// WriteProgress prints the one-line status of a processed document.
func WriteProgress(w io.Writer, rep Report, dryRun bool) error {
	var err error
	switch rep.Outcome {
	case OutcomeAlreadyUpdated:
		_, err = fmt.Fprintf(w, "✓ Already updated: %s\n", rep.Document.RelPath)
	case OutcomeUpdated:
		verb := "Updated"
		if dryRun {
			verb = "Would update"
		}
		_, err = fmt.Fprintf(w, "✓ %s: %s (%s, logo %s)\n", verb, rep.Document.RelPath, rep.Pattern, rep.AssetPath)
	case OutcomeNoFooter:
		_, err = fmt.Fprintf(w, "⚠ No footer found to replace in: %s\n", rep.Document.RelPath)
	case OutcomeError:
		_, err = fmt.Fprintf(w, "✗ Error updating %s: %v\n", rep.Document.RelPath, rep.Err)
	}
	return err
}

// WriteSummary prints the final counts of a run.
func WriteSummary(w io.Writer, result *UpdateResult) error {
	if result.DryRun {
		if _, err := fmt.Fprintf(w, "\nDRY RUN: no documents were written\n"); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintf(w, "\nUpdated: %d\nAlready updated: %d\nNo footer found: %d\nErrors: %d\n",
		result.Updated, result.AlreadyUpdated, result.NoFooter, result.Failed); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "\n✅ Successfully updated %d out of %d files\n", result.Succeeded(), result.Total())
	return err
}
