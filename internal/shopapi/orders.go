package shopapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/gi-os/ShopTemplateSystem/internal/domain"
	"github.com/gi-os/ShopTemplateSystem/internal/orders"
	"github.com/gi-os/ShopTemplateSystem/internal/webserver"
)

func registerOrderRoutes() {
	webserver.ApiPOST("/orders", submitOrder)
	webserver.ApiGET("/orders", listOrders)
}

func submitOrder(c echo.Context) error {
	var form domain.OrderForm
	if err := c.Bind(&form); err != nil {
		return fail(c, http.StatusBadRequest, "Unable to parse order")
	}

	// The no-JS checkout form cannot carry line items; fall back to the
	// session cart.
	if len(form.Items) == 0 {
		sessionCart := appCtx.Cart().Get(c.Request())
		for _, item := range sessionCart.Items {
			form.Items = append(form.Items, domain.OrderItem(item))
		}
		form.Total = sessionCart.Total
	}

	record, err := appCtx.Orders().Submit(&form)
	if err != nil {
		if errors.Is(err, orders.ErrInvalid) {
			return fail(c, http.StatusBadRequest, err.Error())
		}
		zap.S().Errorf("submitting order: %v", err)
		return fail(c, http.StatusInternalServerError, "Failed to process order")
	}

	// Checkout clears the session cart once the order is captured.
	if _, err := appCtx.Cart().Clear(c.Response(), c.Request()); err != nil {
		zap.S().Errorf("clearing cart after order %s: %v", record.OrderID, err)
	}

	return ok(c, map[string]interface{}{
		"success": true,
		"orderId": record.OrderID,
		"message": "Order submitted successfully",
	})
}

// listOrders exposes the captured CSV rows to the shop operator. It sits
// behind the access gate.
func listOrders(c echo.Context) error {
	gate := appCtx.Gate()
	if gate.Enabled() && !gate.Granted(c.Request()) {
		return fail(c, http.StatusUnauthorized, "Access denied")
	}
	records, err := appCtx.Orders().All()
	if err != nil {
		zap.S().Errorf("listing orders: %v", err)
		return fail(c, http.StatusInternalServerError, "Failed to read orders")
	}
	return ok(c, records)
}
