// Package shopapi registers the storefront HTTP surface: the JSON APIs, the
// image-serving endpoints and the server-rendered pages.
package shopapi

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/labstack/echo/v4"

	"github.com/gi-os/ShopTemplateSystem/internal/app"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

var appCtx app.AppContext

// Init wires the handlers to the application context and registers every
// route on the web server.
func Init(ctx app.AppContext) {
	appCtx = ctx
	registerCatalogRoutes()
	registerDesignRoutes()
	registerImageRoutes()
	registerOrderRoutes()
	registerAuthRoutes()
	registerCartRoutes()
	registerPageRoutes()
}

// ok writes v as a JSON response.
func ok(c echo.Context, v interface{}) error {
	blob, err := json.Marshal(v)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "encoding response"})
	}
	return c.JSONBlob(http.StatusOK, blob)
}

// fail writes an error payload with the given status.
func fail(c echo.Context, status int, message string) error {
	blob, _ := json.Marshal(map[string]string{"error": message})
	return c.JSONBlob(status, blob)
}
