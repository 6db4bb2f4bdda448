package shopapi

import (
	"github.com/labstack/echo/v4"

	"github.com/gi-os/ShopTemplateSystem/internal/webserver"
)

func registerDesignRoutes() {
	webserver.ApiGET("/design", getDesign)
}

// getDesign serializes the aggregate design configuration. The underlying
// loader never fails, so neither does this endpoint.
func getDesign(c echo.Context) error {
	c.Response().Header().Set("Cache-Control", "no-store")
	return ok(c, appCtx.Design().DesignData())
}
