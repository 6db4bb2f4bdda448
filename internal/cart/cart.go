// Package cart keeps the shopper's current selection. The Store interface
// hides the backing persistence so the cookie session used today can be
// swapped for any other key-value store without touching callers.
package cart

import (
	"net/http"

	"github.com/gorilla/sessions"
	jsoniter "github.com/json-iterator/go"
	"go.uber.org/zap"

	"github.com/gi-os/ShopTemplateSystem/internal/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const (
	sessionName = "sts_cart"
	cartKey     = "cart"
)

// Store is the cart persistence contract. Mutations return the updated cart
// with its total recomputed.
type Store interface {
	Get(r *http.Request) domain.Cart
	Save(w http.ResponseWriter, r *http.Request, c domain.Cart) error
	Add(w http.ResponseWriter, r *http.Request, item domain.CartItem) (domain.Cart, error)
	UpdateQuantity(w http.ResponseWriter, r *http.Request, productID string, quantity int) (domain.Cart, error)
	Remove(w http.ResponseWriter, r *http.Request, productID string) (domain.Cart, error)
	Clear(w http.ResponseWriter, r *http.Request) (domain.Cart, error)
}

// SessionStore persists the cart as a JSON blob in a cookie session.
type SessionStore struct {
	store sessions.Store
}

func NewSessionStore(store sessions.Store) *SessionStore {
	return &SessionStore{store: store}
}

var _ Store = (*SessionStore)(nil)

// Get returns the stored cart, or an empty cart on any read or decode
// failure.
func (s *SessionStore) Get(r *http.Request) domain.Cart {
	session, err := s.store.Get(r, sessionName)
	if err != nil {
		return domain.Cart{Items: []domain.CartItem{}}
	}
	raw, _ := session.Values[cartKey].(string)
	if raw == "" {
		return domain.Cart{Items: []domain.CartItem{}}
	}
	var c domain.Cart
	if err := json.UnmarshalFromString(raw, &c); err != nil {
		zap.S().Errorf("cart: decoding session cart: %v", err)
		return domain.Cart{Items: []domain.CartItem{}}
	}
	if c.Items == nil {
		c.Items = []domain.CartItem{}
	}
	return c
}

func (s *SessionStore) Save(w http.ResponseWriter, r *http.Request, c domain.Cart) error {
	raw, err := json.MarshalToString(c)
	if err != nil {
		return err
	}
	session, _ := s.store.Get(r, sessionName)
	session.Values[cartKey] = raw
	return session.Save(r, w)
}

// Add merges the item into the cart, summing quantities when the product is
// already present.
func (s *SessionStore) Add(w http.ResponseWriter, r *http.Request, item domain.CartItem) (domain.Cart, error) {
	c := s.Get(r)
	merged := false
	for i := range c.Items {
		if c.Items[i].ProductID == item.ProductID {
			c.Items[i].Quantity += item.Quantity
			merged = true
			break
		}
	}
	if !merged {
		c.Items = append(c.Items, item)
	}
	c.Total = domain.CartTotal(c.Items)
	return c, s.Save(w, r, c)
}

// UpdateQuantity sets the quantity for a product; zero or negative removes
// the line.
func (s *SessionStore) UpdateQuantity(w http.ResponseWriter, r *http.Request, productID string, quantity int) (domain.Cart, error) {
	c := s.Get(r)
	if quantity <= 0 {
		return s.Remove(w, r, productID)
	}
	for i := range c.Items {
		if c.Items[i].ProductID == productID {
			c.Items[i].Quantity = quantity
			break
		}
	}
	c.Total = domain.CartTotal(c.Items)
	return c, s.Save(w, r, c)
}

func (s *SessionStore) Remove(w http.ResponseWriter, r *http.Request, productID string) (domain.Cart, error) {
	c := s.Get(r)
	kept := c.Items[:0]
	for _, item := range c.Items {
		if item.ProductID != productID {
			kept = append(kept, item)
		}
	}
	c.Items = kept
	c.Total = domain.CartTotal(c.Items)
	return c, s.Save(w, r, c)
}

func (s *SessionStore) Clear(w http.ResponseWriter, r *http.Request) (domain.Cart, error) {
	c := domain.Cart{Items: []domain.CartItem{}}
	return c, s.Save(w, r, c)
}
