package report

import (
	"scaperune/inspector/internal/domain"
)

// Section is one rendered sample block: a category and the entries
// sampled for it, in catalog order.
type Section struct {
	Category string
	Entries  []domain.Entry
}

// SampleByCategory returns the first limit entries whose category
// matches exactly, in catalog iteration order. Fewer matches than the
// limit is not an error; neither is zero.
func SampleByCategory(catalog *domain.Catalog, category string, limit int) []domain.Entry {
	if limit <= 0 {
		return nil
	}

	samples := make([]domain.Entry, 0, limit)
	for _, entry := range catalog.Entries() {
		if entry.Item.Category != category {
			continue
		}

		samples = append(samples, entry)
		if len(samples) == limit {
			break
		}
	}

	return samples
}

// CountByCategory tallies every record in the catalog by its category
// value. No category set is assumed; the keys are exactly the distinct
// values observed.
func CountByCategory(catalog *domain.Catalog) map[string]int {
	counts := make(map[string]int)
	for _, entry := range catalog.Entries() {
		counts[entry.Item.Category]++
	}
	return counts
}
