package shopapi

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/gi-os/ShopTemplateSystem/internal/domain"
	"github.com/gi-os/ShopTemplateSystem/internal/webserver"
)

func registerPageRoutes() {
	webserver.GET("/login", loginPage)
	webserver.POST("/login", loginSubmit)

	webserver.GET("/", homePage, requireAccess)
	webserver.GET("/collections", collectionsPage, requireAccess)
	webserver.GET("/collections/:collectionId", collectionPage, requireAccess)
	webserver.GET("/products/:productId", productPage, requireAccess)
	webserver.GET("/shop-all", shopAllPage, requireAccess)
	webserver.GET("/about", aboutPage, requireAccess)
	webserver.GET("/cart", cartPage, requireAccess)
	webserver.GET("/checkout", checkoutPage, requireAccess)
	webserver.GET("/order-success", orderSuccessPage, requireAccess)
}

// requireAccess redirects to the login page while the gate is enforced and
// the session has not been granted.
func requireAccess(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		gate := appCtx.Gate()
		if gate.Enabled() && !gate.Granted(c.Request()) {
			return c.Redirect(http.StatusFound, "/login")
		}
		return next(c)
	}
}

// pageData assembles the design context every page shares.
func pageData(title string) map[string]interface{} {
	design := appCtx.Design().DesignData()
	if title == "" {
		title = design.CompanyName
	} else {
		title = fmt.Sprintf("%s | %s", title, design.CompanyName)
	}
	return map[string]interface{}{
		"title":  title,
		"design": design,
	}
}

// collectionCard pairs a collection with its card image: the curated
// showcase override when present, else the first product photo.
type collectionCard struct {
	domain.Collection
	Image string `json:"image"`
}

func collectionCards() []collectionCard {
	collections := appCtx.Catalog().AllCollections()
	overrides := appCtx.Design().CollectionShowcaseImages()

	cards := make([]collectionCard, 0, len(collections))
	for _, c := range collections {
		image := overrides[c.ID]
		if image == "" && len(c.Products) > 0 && len(c.Products[0].Images) > 0 {
			image = c.Products[0].Images[0]
		}
		if image == "" {
			image = "/api/images/logos/placeholder.svg"
		}
		cards = append(cards, collectionCard{Collection: c, Image: image})
	}
	return cards
}

// productCard pairs a product with its first photo for the grid templates.
type productCard struct {
	domain.Product
	Image string `json:"image"`
}

func productCards(products []domain.Product) []productCard {
	cards := make([]productCard, 0, len(products))
	for _, p := range products {
		image := "/api/images/logos/placeholder.svg"
		if len(p.Images) > 0 {
			image = p.Images[0]
		}
		cards = append(cards, productCard{Product: p, Image: image})
	}
	return cards
}

func homePage(c echo.Context) error {
	data := pageData("")
	data["collections"] = collectionCards()
	return c.Render(http.StatusOK, "home", data)
}

func collectionsPage(c echo.Context) error {
	data := pageData("Collections")
	data["collections"] = collectionCards()
	return c.Render(http.StatusOK, "collections", data)
}

func collectionPage(c echo.Context) error {
	collection := appCtx.Catalog().CollectionByID(c.Param("collectionId"))
	if collection == nil {
		return echo.NewHTTPError(http.StatusNotFound, "Collection not found")
	}
	data := pageData(collection.Name)
	data["collection"] = collection
	data["products"] = productCards(collection.Products)
	return c.Render(http.StatusOK, "collection", data)
}

func productPage(c echo.Context) error {
	product := appCtx.Catalog().ProductByID(c.Param("productId"))
	if product == nil {
		return echo.NewHTTPError(http.StatusNotFound, "Product not found")
	}
	data := pageData(product.Name)
	data["product"] = product
	return c.Render(http.StatusOK, "product", data)
}

func shopAllPage(c echo.Context) error {
	data := pageData("Shop All")
	data["products"] = productCards(appCtx.Catalog().AllProducts())
	return c.Render(http.StatusOK, "shop-all", data)
}

func aboutPage(c echo.Context) error {
	data := pageData("About")
	data["faq"] = appCtx.Design().FAQ()
	return c.Render(http.StatusOK, "about", data)
}

func cartPage(c echo.Context) error {
	data := pageData("Cart")
	data["cart"] = appCtx.Cart().Get(c.Request())
	return c.Render(http.StatusOK, "cart", data)
}

func checkoutPage(c echo.Context) error {
	shoppingCart := appCtx.Cart().Get(c.Request())
	if len(shoppingCart.Items) == 0 {
		return c.Redirect(http.StatusFound, "/cart")
	}
	data := pageData("Checkout")
	data["cart"] = shoppingCart
	return c.Render(http.StatusOK, "checkout", data)
}

func orderSuccessPage(c echo.Context) error {
	data := pageData("Order Submitted")
	data["orderId"] = c.QueryParam("orderId")
	return c.Render(http.StatusOK, "order-success", data)
}

func loginPage(c echo.Context) error {
	gate := appCtx.Gate()
	if !gate.Enabled() || gate.Granted(c.Request()) {
		return c.Redirect(http.StatusFound, "/")
	}
	return c.Render(http.StatusOK, "login", pageData("Login"))
}

// loginSubmit handles the no-JS form fallback of the login page.
func loginSubmit(c echo.Context) error {
	gate := appCtx.Gate()
	if !gate.Verify(c.FormValue("password")) {
		data := pageData("Login")
		data["error"] = "Incorrect password"
		return c.Render(http.StatusUnauthorized, "login", data)
	}
	if err := gate.Grant(c.Response(), c.Request()); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to save session")
	}
	return c.Redirect(http.StatusFound, "/")
}
