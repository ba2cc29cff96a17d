package cli

import (
	"fmt"

	"github.com/Skyism/gratefulnessjar/internal/journal/datex"
	"github.com/Skyism/gratefulnessjar/internal/journal/models"
)

// DisplayLayout is how dates are rendered in entry detail views.
const DisplayLayout = "Monday, January 2, 2006"

// formatEntryLine renders one entry as a compact list row.
func formatEntryLine(e models.Entry) string {
	return fmt.Sprintf("%s  %-12s %-8s %s",
		e.EntryDate, datex.RelativeLabel(e.EntryDate), e.Rating.Label(), e.GratitudeText)
}

// printEntry renders one entry in full.
func printEntry(e models.Entry) {
	printlnFn(datex.Format(e.EntryDate, DisplayLayout))
	printlnFn(fmt.Sprintf("Rating: %s (%d/7)", e.Rating.Label(), int(e.Rating)))
	printlnFn(e.GratitudeText)
}
