package source

import (
	"encoding/json"
	"fmt"
	"io"

	"scaperune/inspector/internal/domain"
)

type itemRecord struct {
	Name     string `json:"name"`
	Category string `json:"category"`
}

// decodeJSON reads a top-level JSON object mapping item ids to records.
// The decoder walks tokens instead of unmarshalling into a map so that
// the source key order survives into the catalog.
func decodeJSON(r io.Reader) (*domain.Catalog, error) {
	dec := json.NewDecoder(r)

	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, fmt.Errorf("%w: top-level value must be an object", ErrParse)
	}

	catalog := domain.NewCatalog()
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrParse, err)
		}
		id, ok := keyTok.(string)
		if !ok {
			return nil, fmt.Errorf("%w: unexpected key token %v", ErrParse, keyTok)
		}

		var rec itemRecord
		if err := dec.Decode(&rec); err != nil {
			return nil, fmt.Errorf("%w: item %q: %v", ErrParse, id, err)
		}

		item, err := newItem(id, rec.Name, rec.Category)
		if err != nil {
			return nil, err
		}

		if err := catalog.Add(id, item); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrParse, err)
		}
	}

	if _, err := dec.Token(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}

	return catalog, nil
}
