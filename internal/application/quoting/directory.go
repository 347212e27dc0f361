package quoting

import (
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/belgaumtyres/quotation-api/internal/domain/entity"
)

// CustomerDirectory is the session-scoped customer cache keyed by phone.
// It is seeded at startup and grows through successful saveCustomer calls;
// entries are never mutated in place. The directory is explicitly owned and
// passed by reference to the pipeline rather than living as ambient state.
type CustomerDirectory struct {
	mu      sync.RWMutex
	byPhone map[string]entity.Customer
	order   []string // phones in insertion order, for deterministic search
}

// NewCustomerDirectory builds the directory, optionally pre-seeded.
func NewCustomerDirectory(seed []entity.Customer) *CustomerDirectory {
	d := &CustomerDirectory{byPhone: make(map[string]entity.Customer, len(seed))}
	for _, c := range seed {
		d.Put(c)
	}
	return d
}

// Get looks up a customer by phone.
func (d *CustomerDirectory) Get(phone string) (entity.Customer, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	c, ok := d.byPhone[phone]
	return c, ok
}

// Put inserts or replaces a customer under its phone key.
func (d *CustomerDirectory) Put(c entity.Customer) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if _, exists := d.byPhone[c.Phone]; !exists {
		d.order = append(d.order, c.Phone)
	}
	d.byPhone[c.Phone] = c
}

// Len returns the number of cached customers.
func (d *CustomerDirectory) Len() int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return len(d.byPhone)
}

// Search returns up to maxSuggestions customers whose name or organization
// contains the query (case-folded). Queries shorter than two runes yield nil.
func (d *CustomerDirectory) Search(query string) []entity.Customer {
	if utf8.RuneCountInString(query) < minQueryRunes {
		return nil
	}
	q := fold.String(query)

	d.mu.RLock()
	defer d.mu.RUnlock()

	var matches []entity.Customer
	for _, phone := range d.order {
		c := d.byPhone[phone]
		if strings.Contains(fold.String(c.Name), q) || strings.Contains(fold.String(c.OrgName), q) {
			matches = append(matches, c)
			if len(matches) == maxSuggestions {
				break
			}
		}
	}
	return matches
}
