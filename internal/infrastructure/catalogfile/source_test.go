package catalogfile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadCatalog_PreservesOrderAndTypes(t *testing.T) {
	path := writeTemp(t, "catalog.json", `[
		{"product_description":"MRF ZLX 185/65 R15","product_code":"1001","cmp_set":4500,"category":"Passenger","nbp_gst_18":4200},
		{"product_description":"APOLLO AMAZER 175/70 R14","product_code":"1002","cmp_set":3800.50,"category":"Passenger","nbp_gst_18":"3550"},
		{"product_description":"MRF MUSCLEROK 10.00 R20","product_code":"2001","cmp_set":21500,"category":"Truck"}
	]`)

	items, err := LoadCatalog(path)
	require.NoError(t, err)
	require.Len(t, items, 3)

	assert.Equal(t, "1001", items[0].Code)
	assert.Equal(t, "4500", items[0].BasePrice.String())
	assert.Equal(t, "4200", items[0].NBP, "numeric NBP cell")

	assert.Equal(t, "3800.5", items[1].BasePrice.String())
	assert.Equal(t, "3550", items[1].NBP, "quoted NBP cell")

	assert.Equal(t, "Truck", items[2].Category)
	assert.Empty(t, items[2].NBP, "missing NBP cell")
}

func TestLoadCatalog_MissingFile(t *testing.T) {
	_, err := LoadCatalog(filepath.Join(t.TempDir(), "nope.json"))
	require.Error(t, err)
}

func TestLoadCustomers(t *testing.T) {
	path := writeTemp(t, "customers.json", `{
		"9876543210": {"name":"RAVI KULKARNI","gender":"M","orgName":"KULKARNI TRANSPORTS","taluk":"KAKTI","district":"BELAGAVI","state":"KARNATAKA","pincode":"591156"}
	}`)

	customers, err := LoadCustomers(path)
	require.NoError(t, err)
	require.Len(t, customers, 1)
	c := customers[0]
	assert.Equal(t, "9876543210", c.Phone)
	assert.Equal(t, "RAVI KULKARNI", c.Name)
	assert.Equal(t, "KULKARNI TRANSPORTS", c.OrgName)
	assert.Equal(t, "KAKTI", c.Taluk)
}
