package source

import (
	"fmt"
	"io"
	"strings"

	"scaperune/inspector/internal/domain"

	"github.com/PuerkitoBio/goquery"
	log "github.com/sirupsen/logrus"
)

// decodeHTML parses an item index page. Each table row carries three
// cells in document order: id, name, category. Header rows (th cells)
// are skipped; rows outside tables are ignored entirely.
func decodeHTML(r io.Reader) (*domain.Catalog, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}

	catalog := domain.NewCatalog()
	var rowErr error

	doc.Find("table tr").EachWithBreak(func(i int, row *goquery.Selection) bool {
		if row.Find("th").Length() > 0 {
			log.Debugf("Skipping header row %d", i)
			return true
		}

		cells := row.Find("td")
		if cells.Length() < 3 {
			rowErr = fmt.Errorf("%w: row %d has %d cells, expected 3", ErrParse, i, cells.Length())
			return false
		}

		id := strings.TrimSpace(cells.Eq(0).Text())
		if id == "" {
			rowErr = fmt.Errorf("%w: row %d has an empty id cell", ErrParse, i)
			return false
		}

		item, err := newItem(id, strings.TrimSpace(cells.Eq(1).Text()), strings.TrimSpace(cells.Eq(2).Text()))
		if err != nil {
			rowErr = err
			return false
		}

		if err := catalog.Add(id, item); err != nil {
			rowErr = fmt.Errorf("%w: row %d: %v", ErrParse, i, err)
			return false
		}
		return true
	})

	if rowErr != nil {
		return nil, rowErr
	}

	if catalog.Len() == 0 {
		return nil, fmt.Errorf("%w: no item rows found in document", ErrParse)
	}

	log.Debugf("Parsed %d items from HTML index", catalog.Len())
	return catalog, nil
}
