// Package catalogfile loads the catalog and the customer seed from local JSON
// files. This is the default catalog source when no database is configured;
// the JSON field names match the exported spreadsheet columns.
package catalogfile

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/shopspring/decimal"

	"github.com/belgaumtyres/quotation-api/internal/domain/entity"
)

type catalogRow struct {
	Description string          `json:"product_description"`
	Code        string          `json:"product_code"`
	CMPSet      decimal.Decimal `json:"cmp_set"`
	Category    string          `json:"category"`
	NBP         json.RawMessage `json:"nbp_gst_18"` // number or string in exports
}

type customerRow struct {
	Name     string `json:"name"`
	Gender   string `json:"gender"`
	OrgName  string `json:"orgName"`
	Taluk    string `json:"taluk"`
	District string `json:"district"`
	State    string `json:"state"`
	Pincode  string `json:"pincode"`
}

// LoadCatalog reads the catalog JSON array, preserving file order.
func LoadCatalog(path string) ([]entity.CatalogItem, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog file: %w", err)
	}

	var rows []catalogRow
	if err := json.Unmarshal(data, &rows); err != nil {
		return nil, fmt.Errorf("parse catalog file %s: %w", path, err)
	}

	items := make([]entity.CatalogItem, 0, len(rows))
	for _, r := range rows {
		items = append(items, entity.CatalogItem{
			Code:        r.Code,
			Description: r.Description,
			Category:    r.Category,
			BasePrice:   r.CMPSet,
			NBP:         rawToString(r.NBP),
		})
	}
	return items, nil
}

// LoadCustomers reads the customer seed, a JSON object keyed by phone.
func LoadCustomers(path string) ([]entity.Customer, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read customers file: %w", err)
	}

	var byPhone map[string]customerRow
	if err := json.Unmarshal(data, &byPhone); err != nil {
		return nil, fmt.Errorf("parse customers file %s: %w", path, err)
	}

	customers := make([]entity.Customer, 0, len(byPhone))
	for phone, r := range byPhone {
		customers = append(customers, entity.Customer{
			Phone:    phone,
			Name:     r.Name,
			OrgName:  r.OrgName,
			Gender:   r.Gender,
			State:    r.State,
			District: r.District,
			Taluk:    r.Taluk,
			Pincode:  r.Pincode,
		})
	}
	return customers, nil
}

// rawToString renders the NBP cell, which exports as either a bare number or a
// quoted string. Missing cells come back empty and display as "N/A".
func rawToString(raw json.RawMessage) string {
	if len(raw) == 0 || string(raw) == "null" {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	var d decimal.Decimal
	if err := json.Unmarshal(raw, &d); err == nil {
		return d.String()
	}
	return ""
}
