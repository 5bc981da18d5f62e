package report

import (
	"fmt"
	"testing"

	"scaperune/inspector/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildCatalog(t *testing.T, entries ...domain.Entry) *domain.Catalog {
	t.Helper()

	catalog := domain.NewCatalog()
	for _, entry := range entries {
		require.NoError(t, catalog.Add(entry.ID, entry.Item))
	}
	return catalog
}

func TestSampleByCategoryBasicScenario(t *testing.T) {
	catalog := buildCatalog(t,
		domain.Entry{ID: "1", Item: domain.Item{Name: "Sword", Category: "weapons"}},
		domain.Entry{ID: "2", Item: domain.Item{Name: "Shield", Category: "armor"}},
		domain.Entry{ID: "3", Item: domain.Item{Name: "Bread", Category: "food"}},
	)

	samples := SampleByCategory(catalog, "weapons", 10)
	require.Len(t, samples, 1)
	assert.Equal(t, "1", samples[0].ID)
	assert.Equal(t, "Sword", samples[0].Item.Name)

	counts := CountByCategory(catalog)
	assert.Equal(t, map[string]int{"armor": 1, "food": 1, "weapons": 1}, counts)
}

func TestSampleByCategoryNeverExceedsLimit(t *testing.T) {
	catalog := domain.NewCatalog()
	for i := 0; i < 25; i++ {
		id := fmt.Sprintf("%d", i)
		require.NoError(t, catalog.Add(id, domain.Item{Name: "Item " + id, Category: "weapons"}))
	}

	samples := SampleByCategory(catalog, "weapons", 10)
	require.Len(t, samples, 10)

	// The first limit entries in catalog order, not an arbitrary ten.
	for i, entry := range samples {
		assert.Equal(t, fmt.Sprintf("%d", i), entry.ID)
	}
}

func TestSampleByCategoryFewerMatchesThanLimit(t *testing.T) {
	catalog := buildCatalog(t,
		domain.Entry{ID: "a", Item: domain.Item{Name: "Axe", Category: "weapons"}},
		domain.Entry{ID: "b", Item: domain.Item{Name: "Bread", Category: "food"}},
		domain.Entry{ID: "c", Item: domain.Item{Name: "Club", Category: "weapons"}},
	)

	samples := SampleByCategory(catalog, "weapons", 10)
	require.Len(t, samples, 2)
	assert.Equal(t, "a", samples[0].ID)
	assert.Equal(t, "c", samples[1].ID)
}

func TestSampleByCategoryNoMatches(t *testing.T) {
	catalog := buildCatalog(t,
		domain.Entry{ID: "1", Item: domain.Item{Name: "Bread", Category: "food"}},
	)

	assert.Empty(t, SampleByCategory(catalog, "weapons", 10))
}

func TestSampleByCategoryExactMatchOnly(t *testing.T) {
	catalog := buildCatalog(t,
		domain.Entry{ID: "1", Item: domain.Item{Name: "Sword", Category: "weapons"}},
		domain.Entry{ID: "2", Item: domain.Item{Name: "Bow", Category: "Weapons"}},
	)

	samples := SampleByCategory(catalog, "weapons", 10)
	require.Len(t, samples, 1)
	assert.Equal(t, "1", samples[0].ID)
}

func TestSampleByCategoryZeroLimit(t *testing.T) {
	catalog := buildCatalog(t,
		domain.Entry{ID: "1", Item: domain.Item{Name: "Sword", Category: "weapons"}},
	)

	assert.Empty(t, SampleByCategory(catalog, "weapons", 0))
}

func TestCountByCategorySumsToCatalogLength(t *testing.T) {
	catalog := domain.NewCatalog()
	categories := []string{"weapons", "armor", "food", "resources", "runes"}
	for i := 0; i < 50; i++ {
		id := fmt.Sprintf("%d", i)
		require.NoError(t, catalog.Add(id, domain.Item{Name: "Item " + id, Category: categories[i%len(categories)]}))
	}

	counts := CountByCategory(catalog)
	total := 0
	for _, n := range counts {
		total += n
	}
	assert.Equal(t, catalog.Len(), total)
	assert.Len(t, counts, len(categories))
}

func TestCountByCategoryEmptyCatalog(t *testing.T) {
	counts := CountByCategory(domain.NewCatalog())
	assert.Empty(t, counts)
}
