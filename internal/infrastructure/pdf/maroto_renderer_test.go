package pdf

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/belgaumtyres/quotation-api/internal/domain/document"
	"github.com/belgaumtyres/quotation-api/internal/domain/entity"
	"github.com/belgaumtyres/quotation-api/internal/domain/pricing"
)

func sampleDocument(t *testing.T) document.Document {
	t.Helper()
	firm, err := entity.ProfileByName("btk")
	require.NoError(t, err)

	lines, grand := pricing.PriceAll([]entity.LineItem{
		{Description: "MRF ZLX 185/65 R15", BasePrice: decimal.NewFromInt(4500), Markup: decimal.NewFromInt(250), Quantity: 4},
		{Description: "WHEEL ALIGNMENT", Markup: decimal.NewFromInt(350), Quantity: 1, Manual: true},
	})

	return document.Assemble(document.Input{
		Firm: firm,
		Customer: entity.Customer{
			Phone: "9876543210", Name: "RAVI KULKARNI", OrgName: "KULKARNI TRANSPORTS",
			Gender: "M", State: "KARNATAKA", District: "BELAGAVI", Taluk: "KAKTI", Pincode: "591156",
		},
		Lines:          lines,
		GrandTotal:     grand,
		RefNumber:      "BTK/25-26/0042",
		Date:           time.Date(2026, 8, 28, 0, 0, 0, 0, time.UTC),
		PaymentTerms:   entity.PaymentAdvance,
		Transportation: entity.TransportFree,
	})
}

func TestRender_ProducesPDFWithoutAssets(t *testing.T) {
	r := NewMarotoRenderer("")

	pdf, err := r.Render(sampleDocument(t), document.Assets{})
	require.NoError(t, err)
	require.NotEmpty(t, pdf)
	assert.Equal(t, "%PDF", string(pdf[:4]))
}

func TestSniffExtension(t *testing.T) {
	assert.Equal(t, "png", string(sniffExtension([]byte{0x89, 'P', 'N', 'G', 0x0D, 0x0A})))
	assert.Equal(t, "jpg", string(sniffExtension([]byte{0xFF, 0xD8, 0xFF})))
}
