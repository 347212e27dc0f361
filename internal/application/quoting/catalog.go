package quoting

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"

	"github.com/belgaumtyres/quotation-api/internal/domain/entity"
)

// maxSuggestions caps every suggestion list; the manual-entry sentinel is
// appended on top of the cap.
const maxSuggestions = 10

// minQueryRunes below which no suggestion list is produced at all.
const minQueryRunes = 2

var fold = cases.Fold()

// Catalog is the fixed in-memory tyre catalog, loaded once per process.
// Matching runs over case-folded copies; results keep catalog insertion order
// (there is no relevance ranking).
type Catalog struct {
	items  []entity.CatalogItem
	folded []foldedItem
}

type foldedItem struct {
	description string
	code        string
}

// NewCatalog builds the catalog over the given items, preserving their order.
func NewCatalog(items []entity.CatalogItem) *Catalog {
	c := &Catalog{
		items:  items,
		folded: make([]foldedItem, len(items)),
	}
	for i, it := range items {
		c.folded[i] = foldedItem{
			description: fold.String(it.Description),
			code:        fold.String(it.Code),
		}
	}
	return c
}

// Len returns the number of real catalog entries.
func (c *Catalog) Len() int { return len(c.items) }

// Search returns at most maxSuggestions entries whose description or product
// code contains the query, followed unconditionally by the manual-entry
// sentinel. A query shorter than two runes yields no list at all, not even
// the sentinel.
func (c *Catalog) Search(query string) []entity.CatalogItem {
	if utf8.RuneCountInString(query) < minQueryRunes {
		return nil
	}
	q := fold.String(query)

	matches := make([]entity.CatalogItem, 0, maxSuggestions+1)
	for i, f := range c.folded {
		if strings.Contains(f.description, q) || strings.Contains(f.code, q) {
			matches = append(matches, c.items[i])
			if len(matches) == maxSuggestions {
				break
			}
		}
	}

	return append(matches, entity.ManualEntry())
}

// FindByDescription resolves a stored description back to its catalog entry by
// exact match; used when reloading a quotation to tell catalog rows from
// manual ones.
func (c *Catalog) FindByDescription(desc string) (entity.CatalogItem, bool) {
	for _, it := range c.items {
		if it.Description == desc {
			return it, true
		}
	}
	return entity.CatalogItem{}, false
}
