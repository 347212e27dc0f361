package quoting

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/belgaumtyres/quotation-api/internal/application/dto"
	"github.com/belgaumtyres/quotation-api/internal/domain"
	"github.com/belgaumtyres/quotation-api/internal/domain/entity"
)

func validSaveRequest() dto.SaveCustomerRequest {
	return dto.SaveCustomerRequest{
		Phone:    "9988776655",
		Name:     "suresh patil",
		Gender:   "m",
		Org:      "patil tractors",
		State:    "karnataka",
		District: "belagavi",
		Taluk:    "gokak",
		Pincode:  "591307",
	}
}

func TestSaveCustomer_NormalizesAndCaches(t *testing.T) {
	store := newFakeStore()
	directory := NewCustomerDirectory(nil)
	uc := NewCustomerUseCase(store, directory, testLogger())

	got, err := uc.Save(context.Background(), validSaveRequest())
	require.NoError(t, err)

	assert.Equal(t, "9988776655", got.Phone)
	assert.Equal(t, "PATIL TRACTORS (SURESH PATIL)", got.Display)

	cached, ok := directory.Get("9988776655")
	require.True(t, ok)
	assert.Equal(t, "SURESH PATIL", cached.Name)
	assert.Equal(t, "PATIL TRACTORS", cached.OrgName)
	assert.Equal(t, "M", cached.Gender)
	assert.Equal(t, "GOKAK", cached.Taluk)
}

func TestSaveCustomer_OrgDefaultsToName(t *testing.T) {
	uc := NewCustomerUseCase(newFakeStore(), NewCustomerDirectory(nil), testLogger())

	req := validSaveRequest()
	req.Org = ""
	got, err := uc.Save(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "SURESH PATIL", got.Display, "same org and name collapse to one")
}

func TestSaveCustomer_PhoneValidation(t *testing.T) {
	uc := NewCustomerUseCase(newFakeStore(), NewCustomerDirectory(nil), testLogger())

	for _, phone := range []string{"", "12345", "98765432101", "98765abc21"} {
		req := validSaveRequest()
		req.Phone = phone
		_, err := uc.Save(context.Background(), req)
		assert.ErrorIs(t, err, domain.ErrInvalidInput, "phone %q", phone)
	}
}

func TestSaveCustomer_RequiredFields(t *testing.T) {
	uc := NewCustomerUseCase(newFakeStore(), NewCustomerDirectory(nil), testLogger())

	blank := func(mutate func(*dto.SaveCustomerRequest)) error {
		req := validSaveRequest()
		mutate(&req)
		_, err := uc.Save(context.Background(), req)
		return err
	}

	assert.ErrorIs(t, blank(func(r *dto.SaveCustomerRequest) { r.Name = " " }), domain.ErrInvalidInput)
	assert.ErrorIs(t, blank(func(r *dto.SaveCustomerRequest) { r.State = "" }), domain.ErrInvalidInput)
	assert.ErrorIs(t, blank(func(r *dto.SaveCustomerRequest) { r.District = "" }), domain.ErrInvalidInput)
	assert.ErrorIs(t, blank(func(r *dto.SaveCustomerRequest) { r.Taluk = "" }), domain.ErrInvalidInput)
	assert.ErrorIs(t, blank(func(r *dto.SaveCustomerRequest) { r.Pincode = "" }), domain.ErrInvalidInput)
}

func TestSaveCustomer_StoreErrorLeavesDirectoryUntouched(t *testing.T) {
	store := &rejectingStore{fakeStore: newFakeStore()}
	directory := NewCustomerDirectory(nil)
	uc := NewCustomerUseCase(store, directory, testLogger())

	_, err := uc.Save(context.Background(), validSaveRequest())
	require.ErrorIs(t, err, domain.ErrDuplicate)
	assert.Zero(t, directory.Len())
}

func TestSearchCustomers_ByNameAndOrg(t *testing.T) {
	store := newFakeStore()
	directory := NewCustomerDirectory(nil)
	uc := NewCustomerUseCase(store, directory, testLogger())

	_, err := uc.Save(context.Background(), validSaveRequest())
	require.NoError(t, err)

	second := validSaveRequest()
	second.Phone = "9876543210"
	second.Name = "ravi kulkarni"
	second.Org = "kulkarni transports"
	_, err = uc.Save(context.Background(), second)
	require.NoError(t, err)

	byName := uc.Search("suresh")
	require.Len(t, byName, 1)
	assert.Equal(t, "9988776655", byName[0].Phone)

	byOrg := uc.Search("transports")
	require.Len(t, byOrg, 1)
	assert.Equal(t, "KULKARNI TRANSPORTS (RAVI KULKARNI)", byOrg[0].Display)

	assert.Empty(t, uc.Search("s"), "single-rune query yields nothing")
	assert.Empty(t, uc.Search("nobody"))
}

// rejectingStore simulates the duplicate-phone rejection from the store.
type rejectingStore struct {
	*fakeStore
}

func (r *rejectingStore) SaveCustomer(_ context.Context, c entity.Customer) (string, error) {
	return "", fmt.Errorf("%w: Customer with phone %s already exists", domain.ErrDuplicate, c.Phone)
}
