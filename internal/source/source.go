package source

import (
	"context"
	"fmt"
	"io"
	"strings"

	"scaperune/inspector/internal/domain"
)

// Source loads a catalog from some external location. Load failures are
// fatal to the run; sources never retry beyond their own transport layer.
type Source interface {
	Load(ctx context.Context) (*domain.Catalog, error)
}

type Format string

const (
	FormatJSON Format = "json"
	FormatHTML Format = "html"
)

func (f Format) String() string {
	return string(f)
}

func decode(format Format, r io.Reader) (*domain.Catalog, error) {
	switch format {
	case FormatJSON, "":
		return decodeJSON(r)
	case FormatHTML:
		return decodeHTML(r)
	default:
		return nil, fmt.Errorf("%w: unsupported catalog format %q", ErrParse, format)
	}
}

func newItem(id, name, category string) (domain.Item, error) {
	if strings.TrimSpace(name) == "" {
		return domain.Item{}, fmt.Errorf("%w: item %q is missing name", ErrParse, id)
	}
	if strings.TrimSpace(category) == "" {
		return domain.Item{}, fmt.Errorf("%w: item %q is missing category", ErrParse, id)
	}

	return domain.Item{Name: name, Category: category}, nil
}
