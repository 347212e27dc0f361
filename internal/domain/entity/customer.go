package entity

import "strings"

// Customer is a buyer keyed by a 10-digit phone number. All text fields are stored
// upper-cased; OrgName falls back to Name when the organization was left blank.
// Customers are created/updated only through the remote store and cached for the
// session; they are never mutated after entering the working set.
type Customer struct {
	Phone    string
	Name     string
	OrgName  string
	Gender   string
	State    string
	District string
	Taluk    string
	Pincode  string
}

// DisplayName returns "ORG (NAME)" when the organization differs from the
// individual's name, otherwise just the name.
func (c Customer) DisplayName() string {
	if c.OrgName != "" && c.OrgName != c.Name {
		return c.OrgName + " (" + c.Name + ")"
	}
	return c.Name
}

// Salutation derives the addressee prefix from the gender code:
// "m..." (but not "ms...") -> "Mr.", "f..." or "ms..." -> "Ms.", anything else -> "".
func (c Customer) Salutation() string {
	g := strings.ToLower(c.Gender)
	switch {
	case strings.HasPrefix(g, "m") && !strings.HasPrefix(g, "ms"):
		return "Mr."
	case strings.HasPrefix(g, "f") || strings.HasPrefix(g, "ms"):
		return "Ms."
	default:
		return ""
	}
}

// AddressLine renders the location as printed on the quotation.
func (c Customer) AddressLine() string {
	return c.Taluk + ", " + c.District + ", " + c.State + " - " + c.Pincode
}
