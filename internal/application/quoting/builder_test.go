package quoting

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/belgaumtyres/quotation-api/internal/application/dto"
	"github.com/belgaumtyres/quotation-api/internal/domain/entity"
)

func TestBuildLineItems_CatalogRow(t *testing.T) {
	items := BuildLineItems([]dto.RowInput{
		{Description: "MRF ZLX 185/65 R15", BasePrice: 4500, Markup: 250, Quantity: 4},
	})

	require.Len(t, items, 1)
	assert.Equal(t, "MRF ZLX 185/65 R15", items[0].Description)
	assert.Equal(t, "4500", items[0].BasePrice.String())
	assert.Equal(t, "250", items[0].Markup.String())
	assert.Equal(t, 4, items[0].Quantity)
	assert.False(t, items[0].Manual)
}

func TestBuildLineItems_ManualRowNormalization(t *testing.T) {
	items := BuildLineItems([]dto.RowInput{
		{Description: entity.ManualEntryLabel, CustomDescription: "  wheel alignment  ", BasePrice: 999, Markup: 350, Quantity: 1},
	})

	require.Len(t, items, 1)
	assert.Equal(t, "WHEEL ALIGNMENT", items[0].Description)
	assert.True(t, items[0].BasePrice.IsZero(), "manual rows force base price to zero")
	assert.True(t, items[0].Manual)
}

func TestBuildLineItems_ManualRowEmptyDescriptionDefaults(t *testing.T) {
	items := BuildLineItems([]dto.RowInput{
		{Manual: true, CustomDescription: "   ", Markup: 100},
	})

	require.Len(t, items, 1)
	assert.Equal(t, entity.DefaultManualDescription, items[0].Description)
}

func TestBuildLineItems_DropsAllZeroRows(t *testing.T) {
	items := BuildLineItems([]dto.RowInput{
		{Description: "SOMETHING", BasePrice: 0, Markup: 0, Quantity: 2},
		{Manual: true, CustomDescription: "FREEBIE", Markup: 0},
		{Description: ""},
	})
	assert.Empty(t, items)
}

func TestBuildLineItems_NegativeMarkupNeedsPositiveBase(t *testing.T) {
	items := BuildLineItems([]dto.RowInput{
		{Description: "DISCOUNTED", BasePrice: 4500, Markup: -200, Quantity: 1},
		{Manual: true, CustomDescription: "NEGATIVE ONLY", Markup: -50},
	})

	require.Len(t, items, 1)
	assert.Equal(t, "DISCOUNTED", items[0].Description)
}

func TestBuildLineItems_QuantityDefaultsToOne(t *testing.T) {
	items := BuildLineItems([]dto.RowInput{
		{Description: "A", BasePrice: 100, Quantity: 0},
		{Description: "B", BasePrice: 100, Quantity: -3},
	})

	require.Len(t, items, 2)
	assert.Equal(t, 1, items[0].Quantity)
	assert.Equal(t, 1, items[1].Quantity)
}

func TestBuildLineItems_PreservesRowOrder(t *testing.T) {
	items := BuildLineItems([]dto.RowInput{
		{Description: "FIRST", BasePrice: 1},
		{Description: "SKIPPED"},
		{Description: "SECOND", BasePrice: 2},
	})

	require.Len(t, items, 2)
	assert.Equal(t, "FIRST", items[0].Description)
	assert.Equal(t, "SECOND", items[1].Description)
}

func TestToStoredItems_NumbersFromOne(t *testing.T) {
	items := BuildLineItems([]dto.RowInput{
		{Description: "A", BasePrice: 100, Quantity: 2},
		{Description: "B", BasePrice: 200, Markup: 10, Quantity: 1},
	})
	stored := toStoredItems(items)

	require.Len(t, stored, 2)
	assert.Equal(t, 1, stored[0].ID)
	assert.Equal(t, 2, stored[1].ID)
	assert.Equal(t, 100.0, stored[0].BasePrice)
	assert.Equal(t, 2.0, stored[0].Quantity)
	assert.Equal(t, 10.0, stored[1].Markup)
}
