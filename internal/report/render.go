package report

import (
	"fmt"
	"io"
	"sort"
	"strings"
)

var sectionMarkers = map[string]string{
	"weapons":   "🗡️",
	"armor":     "🛡️",
	"food":      "🍖",
	"resources": "⛏️",
}

const defaultMarker = "🔹"

// Render writes the sample sections in the order given, then a summary
// listing every observed category in ascending alphabetical order. The
// markers are cosmetic; the ordering is the contract.
func Render(w io.Writer, sections []Section, counts map[string]int) error {
	for i, section := range sections {
		if i > 0 {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}

		marker := sectionMarkers[section.Category]
		if marker == "" {
			marker = defaultMarker
		}

		if _, err := fmt.Fprintf(w, "%s SAMPLE %s:\n", marker, strings.ToUpper(section.Category)); err != nil {
			return err
		}
		for _, entry := range section.Entries {
			if _, err := fmt.Fprintf(w, "  Icon%s: %s\n", entry.ID, entry.Item.Name); err != nil {
				return err
			}
		}
	}

	if _, err := fmt.Fprintf(w, "\n📊 CATEGORY SUMMARY:\n"); err != nil {
		return err
	}

	categories := make([]string, 0, len(counts))
	for category := range counts {
		categories = append(categories, category)
	}
	sort.Strings(categories)

	for _, category := range categories {
		if _, err := fmt.Fprintf(w, "  %s: %d items\n", category, counts[category]); err != nil {
			return err
		}
	}

	return nil
}
