package shopapi

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/gi-os/ShopTemplateSystem/internal/domain"
	"github.com/gi-os/ShopTemplateSystem/internal/webserver"
)

type addCartPayload struct {
	ProductID string `json:"productId" form:"productId"`
	Quantity  int    `json:"quantity" form:"quantity"`
}

type updateCartPayload struct {
	Quantity int `json:"quantity" form:"quantity"`
}

func registerCartRoutes() {
	webserver.ApiGET("/cart", getCart)
	webserver.ApiPOST("/cart/items", addCartItem)
	webserver.ApiPUT("/cart/items/:productId", updateCartItem)
	webserver.ApiDELETE("/cart/items/:productId", removeCartItem)
	webserver.ApiDELETE("/cart", clearCart)
}

func getCart(c echo.Context) error {
	return ok(c, appCtx.Cart().Get(c.Request()))
}

// addCartItem looks the product up in the catalog so the stored line always
// carries the current folder-tree price, whatever the client sent.
func addCartItem(c echo.Context) error {
	var payload addCartPayload
	if err := c.Bind(&payload); err != nil {
		return fail(c, http.StatusBadRequest, "Unable to parse request")
	}
	if payload.Quantity < 1 {
		payload.Quantity = 1
	}

	product := appCtx.Catalog().ProductByID(payload.ProductID)
	if product == nil {
		return fail(c, http.StatusNotFound, "Product not found")
	}

	updated, err := appCtx.Cart().Add(c.Response(), c.Request(), domain.CartItem{
		ProductID:   product.ID,
		ProductName: product.Name,
		SKU:         product.SKU,
		BoxCost:     product.BoxCost,
		UnitsPerBox: product.UnitsPerBox,
		Quantity:    payload.Quantity,
	})
	if err != nil {
		return fail(c, http.StatusInternalServerError, "Failed to save cart")
	}
	return ok(c, updated)
}

func updateCartItem(c echo.Context) error {
	var payload updateCartPayload
	if err := c.Bind(&payload); err != nil {
		return fail(c, http.StatusBadRequest, "Unable to parse request")
	}
	updated, err := appCtx.Cart().UpdateQuantity(c.Response(), c.Request(), c.Param("productId"), payload.Quantity)
	if err != nil {
		return fail(c, http.StatusInternalServerError, "Failed to save cart")
	}
	return ok(c, updated)
}

func removeCartItem(c echo.Context) error {
	updated, err := appCtx.Cart().Remove(c.Response(), c.Request(), c.Param("productId"))
	if err != nil {
		return fail(c, http.StatusInternalServerError, "Failed to save cart")
	}
	return ok(c, updated)
}

func clearCart(c echo.Context) error {
	updated, err := appCtx.Cart().Clear(c.Response(), c.Request())
	if err != nil {
		return fail(c, http.StatusInternalServerError, "Failed to save cart")
	}
	return ok(c, updated)
}
