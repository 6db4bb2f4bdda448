package orders

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gi-os/ShopTemplateSystem/internal/domain"
)

func validForm() *domain.OrderForm {
	return &domain.OrderForm{
		Name:            "Jane Buyer",
		Email:           "jane@example.com",
		Phone:           "+1 555 0100",
		Company:         "Acme, Inc.",
		ShippingAddress: "1 Main St\nSpringfield",
		FreightOption:   "house",
		Items: []domain.OrderItem{
			{ProductID: "mugs-travel-mug", ProductName: "Travel Mug", SKU: "MUG-01", BoxCost: 48, UnitsPerBox: 12, Quantity: 2},
		},
		Total: 96,
	}
}

func TestValidate(t *testing.T) {
	form := validForm()
	assert.NoError(t, Validate(form))

	missing := validForm()
	missing.Email = ""
	assert.ErrorIs(t, Validate(missing), ErrInvalid)

	empty := validForm()
	empty.Items = nil
	assert.ErrorIs(t, Validate(empty), ErrInvalid)
}

func TestSubmitAppendsAndReadsBack(t *testing.T) {
	dataDir := t.TempDir()
	store, err := NewStore(dataDir, "LR Paris")
	require.NoError(t, err)

	first, err := store.Submit(validForm())
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(first.OrderID, "ORD-"))
	assert.Equal(t, "LR Paris", first.FreightInfo)
	assert.Equal(t, "96.00", first.Total)

	second, err := store.Submit(validForm())
	require.NoError(t, err)
	assert.NotEqual(t, first.OrderID, second.OrderID)

	records, err := store.All()
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, first.OrderID, records[0].OrderID)
	assert.Equal(t, "Jane Buyer", records[0].Name)
	assert.Contains(t, records[0].ItemsJSON, `"productId":"mugs-travel-mug"`)
	// fields with commas and newlines survive the CSV round trip
	assert.Equal(t, "Acme, Inc.", records[0].Company)
	assert.Equal(t, "1 Main St\nSpringfield", records[0].ShippingAddress)
}

func TestSubmitOwnFreight(t *testing.T) {
	store, err := NewStore(t.TempDir(), "LR Paris")
	require.NoError(t, err)

	form := validForm()
	form.FreightOption = "own"
	form.FreightCompany = "FastShip"
	form.FreightAccount = "FS-123"
	form.FreightContact = "Bob"

	record, err := store.Submit(form)
	require.NoError(t, err)
	assert.Equal(t, "Own: FastShip (FS-123) - Bob", record.FreightInfo)
}

func TestSubmitRejectsInvalid(t *testing.T) {
	dataDir := t.TempDir()
	store, err := NewStore(dataDir, "LR Paris")
	require.NoError(t, err)

	form := validForm()
	form.Name = ""
	_, err = store.Submit(form)
	assert.ErrorIs(t, err, ErrInvalid)

	// nothing written
	_, statErr := os.Stat(filepath.Join(dataDir, OrdersDir, OrdersFile))
	assert.True(t, os.IsNotExist(statErr))
}

func TestAllWithoutFile(t *testing.T) {
	store, err := NewStore(t.TempDir(), "LR Paris")
	require.NoError(t, err)
	records, err := store.All()
	assert.NoError(t, err)
	assert.Empty(t, records)
}
