package sheets

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/belgaumtyres/quotation-api/internal/domain"
	"github.com/belgaumtyres/quotation-api/internal/domain/entity"
	"github.com/belgaumtyres/quotation-api/pkg/logger"
)

func testClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(srv.URL, 2*time.Second, logger.New(logger.Config{Env: "test", Level: "error"}))
}

func decodeBody(t *testing.T, r *http.Request) map[string]string {
	t.Helper()
	var got map[string]string
	require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
	return got
}

func TestSaveCustomer(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		body := decodeBody(t, r)
		assert.Equal(t, "saveCustomer", body["action"])
		assert.Equal(t, "9988776655", body["phone"])
		assert.Equal(t, "PATIL TRACTORS", body["org"])
		json.NewEncoder(w).Encode(map[string]string{"result": "success", "phone": "9988776655"})
	})

	phone, err := c.SaveCustomer(context.Background(), entity.Customer{
		Phone: "9988776655", Name: "SURESH PATIL", OrgName: "PATIL TRACTORS",
		Gender: "M", State: "KARNATAKA", District: "BELAGAVI", Taluk: "GOKAK", Pincode: "591307",
	})
	require.NoError(t, err)
	assert.Equal(t, "9988776655", phone)
}

func TestSaveCustomer_DuplicateRejection(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, _ *http.Request) {
		json.NewEncoder(w).Encode(map[string]string{
			"result":  "error",
			"message": "Customer with this phone number already exists.",
		})
	})

	_, err := c.SaveCustomer(context.Background(), entity.Customer{Phone: "9988776655"})
	require.ErrorIs(t, err, domain.ErrDuplicate)
	assert.Contains(t, err.Error(), "already exists")
}

func TestSaveQuotation_ItemsTravelAsJSONString(t *testing.T) {
	var gotItemsJSON string
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		body := decodeBody(t, r)
		assert.Equal(t, "saveQuotation", body["action"])
		assert.Equal(t, "advance", body["paymentTerms"])
		gotItemsJSON = body["itemsJSON"]
		json.NewEncoder(w).Encode(map[string]string{"result": "success", "refNumber": "BTK/25-26/0042"})
	})

	items := []entity.StoredItem{
		{ID: 1, Description: "MRF ZLX 185/65 R15", BasePrice: 4500, Markup: 250, Quantity: 4},
		{ID: 2, Description: "WHEEL ALIGNMENT", BasePrice: 0, Markup: 350, Quantity: 1},
	}
	ref, err := c.SaveQuotation(context.Background(), "9876543210", items, "advance", "free")
	require.NoError(t, err)
	assert.Equal(t, "BTK/25-26/0042", ref)

	// the column payload is a nested JSON string with the original short keys
	var roundTrip []entity.StoredItem
	require.NoError(t, json.Unmarshal([]byte(gotItemsJSON), &roundTrip))
	assert.Equal(t, items, roundTrip)
	assert.Contains(t, gotItemsJSON, `"desc":"MRF ZLX 185/65 R15"`)
	assert.Contains(t, gotItemsJSON, `"basePrice":4500`)
	assert.Contains(t, gotItemsJSON, `"qty":4`)
}

func TestLoadQuotation(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		body := decodeBody(t, r)
		assert.Equal(t, "loadQuotation", body["action"])
		assert.Equal(t, "BTK/25-26/0042", body["refNumber"])
		json.NewEncoder(w).Encode(map[string]string{
			"result":         "success",
			"phone":          "9876543210",
			"itemsJSON":      `[{"id":1,"desc":"MRF ZLX 185/65 R15","basePrice":4500,"markup":250,"qty":4}]`,
			"paymentTerms":   "credit",
			"transportation": "exw",
		})
	})

	rec, err := c.LoadQuotation(context.Background(), "BTK/25-26/0042")
	require.NoError(t, err)
	assert.Equal(t, "BTK/25-26/0042", rec.RefNumber)
	assert.Equal(t, "9876543210", rec.Phone)
	assert.Equal(t, "credit", rec.PaymentTerms)
	assert.Equal(t, "exw", rec.Transportation)
	require.Len(t, rec.Items, 1)
	assert.Equal(t, 250.0, rec.Items[0].Markup)
}

func TestLoadQuotation_NotFound(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, _ *http.Request) {
		json.NewEncoder(w).Encode(map[string]string{
			"result":  "error",
			"message": "Quotation BTK/25-26/0099 not found.",
		})
	})

	_, err := c.LoadQuotation(context.Background(), "BTK/25-26/0099")
	require.ErrorIs(t, err, domain.ErrNotFound)
	assert.Contains(t, err.Error(), "BTK/25-26/0099")
}

func TestLastMarkup_NumberAndStringCells(t *testing.T) {
	tests := []struct {
		name   string
		markup string // raw JSON for the markup field
		want   string
		found  bool
	}{
		{"bare number", `250`, "250", true},
		{"decimal number", `0.5`, "0.5", true},
		{"quoted string", `"350"`, "350", true},
		{"blank string", `""`, "", false},
		{"null", `null`, "", false},
		{"garbage", `"n/a"`, "", false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
				body := decodeBody(t, r)
				assert.Equal(t, "getLastMarkup", body["action"])
				w.Write([]byte(`{"result":"success","markup":` + tc.markup + `}`))
			})

			markup, found, err := c.LastMarkup(context.Background(), "9876543210", "MRF ZLX 185/65 R15")
			require.NoError(t, err)
			assert.Equal(t, tc.found, found)
			if tc.found {
				assert.Equal(t, tc.want, markup.String())
			}
		})
	}
}

func TestLastMarkup_ExplicitMiss(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, _ *http.Request) {
		json.NewEncoder(w).Encode(map[string]string{"result": "error", "message": "No history"})
	})

	_, found, err := c.LastMarkup(context.Background(), "9876543210", "UNKNOWN")
	require.NoError(t, err)
	assert.False(t, found)
}

func TestPost_ServerErrorMapsToUnavailable(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	})

	_, err := c.LoadQuotation(context.Background(), "BTK/25-26/0001")
	require.ErrorIs(t, err, domain.ErrStoreUnavailable)
}

func TestPost_ConnectionRefusedMapsToUnavailable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close() // port now refuses connections

	c := NewClient(url, time.Second, logger.New(logger.Config{Env: "test", Level: "error"}))
	_, err := c.SaveQuotation(context.Background(), "9876543210", nil, "advance", "free")
	require.ErrorIs(t, err, domain.ErrStoreUnavailable)
}
