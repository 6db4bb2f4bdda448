package shopapi

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/gi-os/ShopTemplateSystem/internal/webserver"
)

func registerCatalogRoutes() {
	webserver.ApiGET("/collections", listCollections)
	webserver.ApiGET("/collections/:id", getCollection)
	webserver.ApiGET("/products", listProducts)
	webserver.ApiGET("/products/:id", getProduct)
}

func listCollections(c echo.Context) error {
	return ok(c, appCtx.Catalog().AllCollections())
}

func getCollection(c echo.Context) error {
	collection := appCtx.Catalog().CollectionByID(c.Param("id"))
	if collection == nil {
		return fail(c, http.StatusNotFound, "Collection not found")
	}
	return ok(c, collection)
}

func listProducts(c echo.Context) error {
	return ok(c, appCtx.Catalog().AllProducts())
}

func getProduct(c echo.Context) error {
	product := appCtx.Catalog().ProductByID(c.Param("id"))
	if product == nil {
		return fail(c, http.StatusNotFound, "Product not found")
	}
	return ok(c, product)
}
