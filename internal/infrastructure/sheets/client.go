// Package sheets implements the QuotationStore port against the remote
// spreadsheet web endpoint. The endpoint exposes a single URL; the operation
// is selected by the "action" field of the JSON body and every response is a
// {result, ...} envelope, HTTP 200 even on business errors.
package sheets

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/belgaumtyres/quotation-api/internal/application/quoting"
	"github.com/belgaumtyres/quotation-api/internal/domain"
	"github.com/belgaumtyres/quotation-api/internal/domain/entity"
	"github.com/belgaumtyres/quotation-api/pkg/logger"
)

// Compile-time check that Client implements the store port.
var _ quoting.QuotationStore = (*Client)(nil)

const (
	actionSaveCustomer  = "saveCustomer"
	actionSaveQuotation = "saveQuotation"
	actionLoadQuotation = "loadQuotation"
	actionLastMarkup    = "getLastMarkup"

	maxResponseBytes = 256 * 1024
)

// Client talks to the spreadsheet endpoint.
type Client struct {
	url        string
	httpClient *http.Client
	log        *logger.Logger
}

// NewClient builds the store client. timeout bounds each round-trip on top of
// whatever deadline the caller's context carries.
func NewClient(url string, timeout time.Duration, log *logger.Logger) *Client {
	return &Client{
		url:        url,
		httpClient: &http.Client{Timeout: timeout},
		log:        log,
	}
}

// envelope is the store's uniform response shape. Fields outside result and
// message are populated per action. markup arrives either as a bare number or
// a quoted string depending on the sheet cell format, so it is kept raw.
type envelope struct {
	Result         string          `json:"result"`
	Message        string          `json:"message"`
	Phone          string          `json:"phone"`
	RefNumber      string          `json:"refNumber"`
	ItemsJSON      string          `json:"itemsJSON"`
	PaymentTerms   string          `json:"paymentTerms"`
	Transportation string          `json:"transportation"`
	Markup         json.RawMessage `json:"markup"`
}

// SaveCustomer registers a new customer row. The store rejects phones it
// already has; that rejection surfaces as ErrDuplicate with the store's
// message intact.
func (c *Client) SaveCustomer(ctx context.Context, cust entity.Customer) (string, error) {
	payload := map[string]string{
		"action":   actionSaveCustomer,
		"phone":    cust.Phone,
		"name":     cust.Name,
		"gender":   cust.Gender,
		"org":      cust.OrgName,
		"state":    cust.State,
		"district": cust.District,
		"taluk":    cust.Taluk,
		"pincode":  cust.Pincode,
	}

	env, err := c.post(ctx, payload)
	if err != nil {
		return "", err
	}
	if env.Result != "success" {
		return "", fmt.Errorf("%w: %s", domain.ErrDuplicate, env.Message)
	}
	phone := env.Phone
	if phone == "" {
		phone = cust.Phone
	}
	return phone, nil
}

// SaveQuotation appends a quotation row and returns the reference number the
// store minted. The line items travel as a JSON string inside the JSON body
// because the sheet keeps them in a single text column.
func (c *Client) SaveQuotation(ctx context.Context, phone string, items []entity.StoredItem, paymentTerms, transportation string) (string, error) {
	itemsJSON, err := json.Marshal(items)
	if err != nil {
		return "", fmt.Errorf("encode items: %w", err)
	}

	payload := map[string]string{
		"action":         actionSaveQuotation,
		"phone":          phone,
		"itemsJSON":      string(itemsJSON),
		"paymentTerms":   paymentTerms,
		"transportation": transportation,
	}

	env, err := c.post(ctx, payload)
	if err != nil {
		return "", err
	}
	if env.Result != "success" || env.RefNumber == "" {
		return "", fmt.Errorf("%w: %s", domain.ErrStoreRejected, env.Message)
	}
	return env.RefNumber, nil
}

// LoadQuotation fetches a quotation row by full reference number.
func (c *Client) LoadQuotation(ctx context.Context, refNumber string) (*entity.QuotationRecord, error) {
	payload := map[string]string{
		"action":    actionLoadQuotation,
		"refNumber": refNumber,
	}

	env, err := c.post(ctx, payload)
	if err != nil {
		return nil, err
	}
	if env.Result != "success" {
		return nil, fmt.Errorf("%w: %s", domain.ErrNotFound, env.Message)
	}

	var items []entity.StoredItem
	if env.ItemsJSON != "" {
		if err := json.Unmarshal([]byte(env.ItemsJSON), &items); err != nil {
			return nil, fmt.Errorf("decode stored items for %s: %w", refNumber, err)
		}
	}

	return &entity.QuotationRecord{
		RefNumber:      refNumber,
		Phone:          env.Phone,
		Items:          items,
		PaymentTerms:   env.PaymentTerms,
		Transportation: env.Transportation,
	}, nil
}

// LastMarkup asks for the markup last charged to this customer for the exact
// item description. found=false covers both an explicit miss and a blank
// markup cell.
func (c *Client) LastMarkup(ctx context.Context, phone, desc string) (decimal.Decimal, bool, error) {
	payload := map[string]string{
		"action": actionLastMarkup,
		"phone":  phone,
		"desc":   desc,
	}

	env, err := c.post(ctx, payload)
	if err != nil {
		return decimal.Zero, false, err
	}
	if env.Result != "success" || len(env.Markup) == 0 {
		return decimal.Zero, false, nil
	}

	markup, ok := parseMarkup(env.Markup)
	if !ok {
		c.log.Debug().Str("raw", string(env.Markup)).Msg("unparseable markup cell")
		return decimal.Zero, false, nil
	}
	return markup, true, nil
}

// parseMarkup accepts the markup cell as a bare JSON number or a quoted
// string. Blank strings and "null" mean no history.
func parseMarkup(raw json.RawMessage) (decimal.Decimal, bool) {
	s := strings.TrimSpace(string(raw))
	if s == "" || s == "null" {
		return decimal.Zero, false
	}
	if unquoted, err := strconv.Unquote(s); err == nil {
		s = strings.TrimSpace(unquoted)
		if s == "" {
			return decimal.Zero, false
		}
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, false
	}
	return d, true
}

func (c *Client) post(ctx context.Context, payload map[string]string) (*envelope, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("encode store request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build store request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return nil, fmt.Errorf("%w: %v", domain.ErrStoreUnavailable, ctx.Err())
		}
		return nil, fmt.Errorf("%w: %v", domain.ErrStoreUnavailable, err)
	}
	defer resp.Body.Close()

	rawBody, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, fmt.Errorf("%w: read response: %v", domain.ErrStoreUnavailable, err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: HTTP %d", domain.ErrStoreUnavailable, resp.StatusCode)
	}

	var env envelope
	if err := json.Unmarshal(rawBody, &env); err != nil {
		return nil, fmt.Errorf("%w: decode response: %v", domain.ErrStoreUnavailable, err)
	}
	return &env, nil
}
