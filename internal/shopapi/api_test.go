package shopapi

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gi-os/ShopTemplateSystem/config"
	"github.com/gi-os/ShopTemplateSystem/internal/app"
	"github.com/gi-os/ShopTemplateSystem/internal/webserver"
)

var (
	setupOnce sync.Once
	testEcho  *echo.Echo
)

// setupServer builds one application over a fixture tree shared by every
// test in the package.
func setupServer(t *testing.T) *echo.Echo {
	t.Helper()
	setupOnce.Do(func() {
		dataDir, err := os.MkdirTemp("", "shopapi-test-*")
		if err != nil {
			panic(err)
		}

		writeFixture(dataDir, "ShopCollections/Mugs/Travel Mug/Details/Name.txt", "Travel Mug")
		writeFixture(dataDir, "ShopCollections/Mugs/Travel Mug/Details/SKU.txt", "MUG-01")
		writeFixture(dataDir, "ShopCollections/Mugs/Travel Mug/Details/BoxCost.txt", "48")
		writeFixture(dataDir, "ShopCollections/Mugs/Travel Mug/Details/UnitsPerBox.txt", "12")
		writeFixture(dataDir, "ShopCollections/Mugs/Travel Mug/Photos/front.jpg", "jpeg-bytes")
		writeFixture(dataDir, "Design/Details/CompanyName.txt", "Acme Wholesale")
		writeFixture(dataDir, "Design/Details/Password.txt", "open-sesame")
		writeFixture(dataDir, "Design/FAQ/FAQ.txt", "Q: How do I pay?\nA: Send a PO.\n")

		cfg := config.DefaultAppConfig
		cfg.System.DataDir = dataDir
		cfg.Logger.Mode = "development"

		application := app.NewApplication(&cfg)
		if err := application.Init(); err != nil {
			panic(err)
		}

		webserver.Init(application, filepath.Join("..", "..", "assets", "templates"))
		Init(application)
		testEcho = webserver.Instance()
	})
	return testEcho
}

func writeFixture(dataDir, rel, content string) {
	path := filepath.Join(dataDir, filepath.FromSlash(rel))
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		panic(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		panic(err)
	}
}

func do(t *testing.T, method, target, body string, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	for _, c := range cookies {
		req.AddCookie(c)
	}
	rec := httptest.NewRecorder()
	setupServer(t).ServeHTTP(rec, req)
	return rec
}

func grantedCookies(t *testing.T) []*http.Cookie {
	t.Helper()
	rec := do(t, http.MethodPost, "/api/login", `{"password":"open-sesame"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	cookies := rec.Result().Cookies()
	require.NotEmpty(t, cookies)
	return cookies
}

func TestDesignEndpoint(t *testing.T) {
	rec := do(t, http.MethodGet, "/api/design", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"companyName":"Acme Wholesale"`)
	assert.Contains(t, rec.Body.String(), `"primary":"#1a1a1a"`)
	assert.Contains(t, rec.Body.String(), `"question":"How do I pay?"`)
}

func TestCatalogEndpoints(t *testing.T) {
	rec := do(t, http.MethodGet, "/api/collections", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"id":"mugs"`)

	rec = do(t, http.MethodGet, "/api/products/mugs-travel-mug", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"sku":"MUG-01"`)

	rec = do(t, http.MethodGet, "/api/products/mugs-unknown", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestProductImageAndPlaceholder(t *testing.T) {
	rec := do(t, http.MethodGet, "/api/images/products/mugs-travel-mug/front.jpg", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/jpeg", rec.Header().Get(echo.HeaderContentType))
	assert.Equal(t, "jpeg-bytes", rec.Body.String())

	// unknown photo falls back to the placeholder, not a 404
	rec = do(t, http.MethodGet, "/api/images/products/mugs-travel-mug/missing.jpg", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get(echo.HeaderContentType), "image/svg+xml")
}

func TestLoginFlow(t *testing.T) {
	rec := do(t, http.MethodPost, "/api/login", `{"password":"wrong"}`)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	// pages redirect to /login until granted
	rec = do(t, http.MethodGet, "/", "")
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/login", rec.Header().Get(echo.HeaderLocation))

	cookies := grantedCookies(t)
	rec = do(t, http.MethodGet, "/", "", cookies...)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Acme Wholesale")
}

func TestCartFlow(t *testing.T) {
	rec := do(t, http.MethodPost, "/api/cart/items", `{"productId":"mugs-travel-mug","quantity":2}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"total":96`)
	cookies := rec.Result().Cookies()
	require.NotEmpty(t, cookies)

	rec = do(t, http.MethodGet, "/api/cart", "", cookies...)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"productId":"mugs-travel-mug"`)

	rec = do(t, http.MethodPost, "/api/cart/items", `{"productId":"mugs-unknown","quantity":1}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestOrderSubmission(t *testing.T) {
	body := `{"name":"Jane","email":"jane@example.com","phone":"555","company":"Acme",` +
		`"shippingAddress":"1 Main St","freightOption":"house",` +
		`"items":[{"productId":"mugs-travel-mug","productName":"Travel Mug","sku":"MUG-01",` +
		`"boxCost":48,"unitsPerBox":12,"quantity":2}],"total":96}`
	rec := do(t, http.MethodPost, "/api/orders", body)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"success":true`)
	assert.Contains(t, rec.Body.String(), "ORD-")

	rec = do(t, http.MethodPost, "/api/orders", `{"name":"Jane"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestOrdersListingGated(t *testing.T) {
	rec := do(t, http.MethodGet, "/api/orders", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = do(t, http.MethodGet, "/api/orders", "", grantedCookies(t)...)
	assert.Equal(t, http.StatusOK, rec.Code)
}
