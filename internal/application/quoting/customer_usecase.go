package quoting

import (
	"context"
	"fmt"
	"strings"

	"github.com/belgaumtyres/quotation-api/internal/application/dto"
	"github.com/belgaumtyres/quotation-api/internal/domain"
	"github.com/belgaumtyres/quotation-api/internal/domain/entity"
	"github.com/belgaumtyres/quotation-api/pkg/logger"
)

// CustomerUseCase registers customers in the remote store and keeps the
// session directory in sync.
type CustomerUseCase struct {
	store     QuotationStore
	directory *CustomerDirectory
	log       *logger.Logger
}

// NewCustomerUseCase builds the use case.
func NewCustomerUseCase(store QuotationStore, directory *CustomerDirectory, log *logger.Logger) *CustomerUseCase {
	return &CustomerUseCase{store: store, directory: directory, log: log}
}

// Save validates and normalizes the new customer, persists it through the
// store and caches it under the phone the store confirmed. Text fields are
// upper-cased; a blank organization defaults to the individual's name.
func (uc *CustomerUseCase) Save(ctx context.Context, in dto.SaveCustomerRequest) (*dto.SaveCustomerResponse, error) {
	phone := strings.TrimSpace(in.Phone)
	if !isTenDigitPhone(phone) {
		return nil, fmt.Errorf("%w: phone must be exactly 10 digits", domain.ErrInvalidInput)
	}

	c := entity.Customer{
		Phone:    phone,
		Name:     strings.ToUpper(strings.TrimSpace(in.Name)),
		OrgName:  strings.ToUpper(strings.TrimSpace(in.Org)),
		Gender:   strings.ToUpper(strings.TrimSpace(in.Gender)),
		State:    strings.ToUpper(strings.TrimSpace(in.State)),
		District: strings.ToUpper(strings.TrimSpace(in.District)),
		Taluk:    strings.ToUpper(strings.TrimSpace(in.Taluk)),
		Pincode:  strings.TrimSpace(in.Pincode),
	}
	if c.OrgName == "" {
		c.OrgName = c.Name
	}
	if c.Name == "" || c.State == "" || c.District == "" || c.Taluk == "" || c.Pincode == "" {
		return nil, fmt.Errorf("%w: name, state, district, taluk and pincode are required", domain.ErrInvalidInput)
	}

	savedPhone, err := uc.store.SaveCustomer(ctx, c)
	if err != nil {
		return nil, err
	}
	c.Phone = savedPhone
	uc.directory.Put(c)

	uc.log.Info().Str("phone", savedPhone).Msg("customer registered")
	return &dto.SaveCustomerResponse{Phone: savedPhone, Display: c.DisplayName()}, nil
}

// Search suggests cached customers by name or organization.
func (uc *CustomerUseCase) Search(query string) []dto.CustomerSuggestion {
	matches := uc.directory.Search(query)
	out := make([]dto.CustomerSuggestion, 0, len(matches))
	for _, c := range matches {
		out = append(out, dto.CustomerSuggestion{Display: c.DisplayName(), Phone: c.Phone})
	}
	return out
}

func isTenDigitPhone(s string) bool {
	if len(s) != 10 {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
