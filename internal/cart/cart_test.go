package cart

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/sessions"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gi-os/ShopTemplateSystem/internal/domain"
)

// session harness: carries cookies across simulated requests so the cart
// survives like it does in a browser.
type harness struct {
	t       *testing.T
	store   *SessionStore
	cookies []*http.Cookie
}

func newHarness(t *testing.T) *harness {
	return &harness{
		t:     t,
		store: NewSessionStore(sessions.NewCookieStore([]byte("test-secret"))),
	}
}

func (h *harness) request() *http.Request {
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	for _, c := range h.cookies {
		r.AddCookie(c)
	}
	return r
}

func (h *harness) mutate(fn func(w http.ResponseWriter, r *http.Request) (domain.Cart, error)) domain.Cart {
	h.t.Helper()
	w := httptest.NewRecorder()
	c, err := fn(w, h.request())
	require.NoError(h.t, err)
	if cookies := w.Result().Cookies(); len(cookies) > 0 {
		h.cookies = cookies
	}
	return c
}

func item(id string, boxCost float64, qty int) domain.CartItem {
	return domain.CartItem{
		ProductID:   id,
		ProductName: "Product " + id,
		SKU:         "SKU-" + id,
		BoxCost:     boxCost,
		UnitsPerBox: 6,
		Quantity:    qty,
	}
}

func TestEmptyCart(t *testing.T) {
	h := newHarness(t)
	c := h.store.Get(h.request())
	assert.Empty(t, c.Items)
	assert.Zero(t, c.Total)
}

func TestAddMergesQuantities(t *testing.T) {
	h := newHarness(t)

	c := h.mutate(func(w http.ResponseWriter, r *http.Request) (domain.Cart, error) {
		return h.store.Add(w, r, item("a", 10, 2))
	})
	assert.Equal(t, 20.0, c.Total)

	c = h.mutate(func(w http.ResponseWriter, r *http.Request) (domain.Cart, error) {
		return h.store.Add(w, r, item("a", 10, 3))
	})
	require.Len(t, c.Items, 1)
	assert.Equal(t, 5, c.Items[0].Quantity)
	assert.Equal(t, 50.0, c.Total)

	c = h.mutate(func(w http.ResponseWriter, r *http.Request) (domain.Cart, error) {
		return h.store.Add(w, r, item("b", 7.5, 1))
	})
	require.Len(t, c.Items, 2)
	assert.Equal(t, 57.5, c.Total)

	// persisted across a fresh read
	persisted := h.store.Get(h.request())
	assert.Equal(t, c, persisted)
}

func TestUpdateQuantity(t *testing.T) {
	h := newHarness(t)
	h.mutate(func(w http.ResponseWriter, r *http.Request) (domain.Cart, error) {
		return h.store.Add(w, r, item("a", 10, 2))
	})

	c := h.mutate(func(w http.ResponseWriter, r *http.Request) (domain.Cart, error) {
		return h.store.UpdateQuantity(w, r, "a", 7)
	})
	assert.Equal(t, 7, c.Items[0].Quantity)
	assert.Equal(t, 70.0, c.Total)

	// zero removes the line
	c = h.mutate(func(w http.ResponseWriter, r *http.Request) (domain.Cart, error) {
		return h.store.UpdateQuantity(w, r, "a", 0)
	})
	assert.Empty(t, c.Items)
	assert.Zero(t, c.Total)
}

func TestRemoveAndClear(t *testing.T) {
	h := newHarness(t)
	h.mutate(func(w http.ResponseWriter, r *http.Request) (domain.Cart, error) {
		return h.store.Add(w, r, item("a", 10, 1))
	})
	h.mutate(func(w http.ResponseWriter, r *http.Request) (domain.Cart, error) {
		return h.store.Add(w, r, item("b", 5, 2))
	})

	c := h.mutate(func(w http.ResponseWriter, r *http.Request) (domain.Cart, error) {
		return h.store.Remove(w, r, "a")
	})
	require.Len(t, c.Items, 1)
	assert.Equal(t, "b", c.Items[0].ProductID)
	assert.Equal(t, 10.0, c.Total)

	c = h.mutate(func(w http.ResponseWriter, r *http.Request) (domain.Cart, error) {
		return h.store.Clear(w, r)
	})
	assert.Empty(t, c.Items)
	assert.Zero(t, c.Total)
}

func TestCartTotal(t *testing.T) {
	items := []domain.CartItem{
		{BoxCost: 10, Quantity: 2},
		{BoxCost: 7.5, Quantity: 4},
	}
	assert.Equal(t, 50.0, domain.CartTotal(items))
	assert.Zero(t, domain.CartTotal(nil))
}
