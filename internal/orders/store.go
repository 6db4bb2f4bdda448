// Package orders captures submitted orders as rows of a CSV file under the
// data directory. The file is the system of record; there is no database.
package orders

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/gocarina/gocsv"
	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"

	"github.com/gi-os/ShopTemplateSystem/internal/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// OrdersDir and OrdersFile locate the CSV inside the data directory.
const (
	OrdersDir  = "Orders"
	OrdersFile = "orders.csv"
)

// ErrInvalid marks a submission rejected by validation.
var ErrInvalid = errors.New("invalid order")

// Store appends orders to the CSV. Appends are serialized with a mutex so
// concurrent submissions cannot interleave rows.
type Store struct {
	path    string
	carrier string // house freight carrier named when the buyer has no account
	node    *snowflake.Node

	mu sync.Mutex
}

func NewStore(dataDir, carrier string) (*Store, error) {
	node, err := snowflake.NewNode(1)
	if err != nil {
		return nil, errors.Wrap(err, "creating id node")
	}
	return &Store{
		path:    filepath.Join(dataDir, OrdersDir, OrdersFile),
		carrier: carrier,
		node:    node,
	}, nil
}

// Validate checks the mandatory checkout fields.
func Validate(form *domain.OrderForm) error {
	switch {
	case form.Name == "", form.Email == "", form.Phone == "",
		form.Company == "", form.ShippingAddress == "":
		return errors.Wrap(ErrInvalid, "missing required fields")
	case len(form.Items) == 0:
		return errors.Wrap(ErrInvalid, "no items in order")
	}
	return nil
}

// Submit validates the form, assigns an order id and appends one CSV row.
func (s *Store) Submit(form *domain.OrderForm) (*domain.OrderRecord, error) {
	if err := Validate(form); err != nil {
		return nil, err
	}

	itemsJSON, err := json.MarshalToString(form.Items)
	if err != nil {
		return nil, errors.Wrap(err, "encoding order items")
	}

	freightInfo := s.carrier
	if form.FreightOption == "own" {
		freightInfo = fmt.Sprintf("Own: %s (%s) - %s",
			form.FreightCompany, form.FreightAccount, form.FreightContact)
	}

	record := &domain.OrderRecord{
		OrderID:         "ORD-" + s.node.Generate().String(),
		OrderDate:       time.Now().UTC().Format(time.RFC3339),
		Name:            form.Name,
		Email:           form.Email,
		Phone:           form.Phone,
		Company:         form.Company,
		ShippingAddress: form.ShippingAddress,
		FreightInfo:     freightInfo,
		FreightCompany:  form.FreightCompany,
		FreightAccount:  form.FreightAccount,
		FreightContact:  form.FreightContact,
		OrderNotes:      form.OrderNotes,
		ItemsJSON:       itemsJSON,
		Total:           fmt.Sprintf("%.2f", form.Total),
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return nil, errors.Wrap(err, "creating orders directory")
	}
	f, err := os.OpenFile(s.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, errors.Wrap(err, "opening orders file")
	}
	defer f.Close()

	if err := gocsv.MarshalWithoutHeaders([]*domain.OrderRecord{record}, f); err != nil {
		return nil, errors.Wrap(err, "appending order")
	}
	return record, nil
}

// All reads every captured order back from the CSV. A missing file means no
// orders yet.
func (s *Store) All() ([]domain.OrderRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	f, err := os.Open(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, errors.Wrap(err, "opening orders file")
	}
	defer f.Close()

	var records []domain.OrderRecord
	if err := gocsv.UnmarshalWithoutHeaders(f, &records); err != nil {
		return nil, errors.Wrap(err, "reading orders file")
	}
	return records, nil
}
