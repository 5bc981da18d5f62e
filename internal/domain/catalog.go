package domain

import "fmt"

// Catalog holds item entries in their source serialization order.
// Sampling depends on that order, so entries live in a slice with a
// separate id index rather than a plain map.
type Catalog struct {
	entries []Entry
	index   map[string]int
}

func NewCatalog() *Catalog {
	return &Catalog{
		index: make(map[string]int),
	}
}

// Add appends an entry to the catalog. Ids must be unique.
func (c *Catalog) Add(id string, item Item) error {
	if _, exists := c.index[id]; exists {
		return fmt.Errorf("duplicate item id %q", id)
	}

	c.index[id] = len(c.entries)
	c.entries = append(c.entries, Entry{ID: id, Item: item})
	return nil
}

func (c *Catalog) Get(id string) (Item, bool) {
	pos, ok := c.index[id]
	if !ok {
		return Item{}, false
	}
	return c.entries[pos].Item, true
}

func (c *Catalog) Len() int {
	return len(c.entries)
}

// Entries returns all entries in insertion order. Callers must not
// modify the returned slice.
func (c *Catalog) Entries() []Entry {
	return c.entries
}
