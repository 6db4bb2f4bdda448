package shopapi

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/gi-os/ShopTemplateSystem/internal/catalog"
	"github.com/gi-os/ShopTemplateSystem/internal/webserver"
)

// fallbackSVG is served when no placeholder.svg is curated in the Logos
// folder.
const fallbackSVG = `<svg xmlns="http://www.w3.org/2000/svg" width="400" height="400" viewBox="0 0 400 400">
  <rect width="400" height="400" fill="#E5E7EB"/>
  <text x="200" y="210" font-family="Arial" font-size="18" fill="#6B7280" text-anchor="middle">Image Coming Soon</text>
</svg>`

func registerImageRoutes() {
	webserver.ApiGET("/images/products/:productId/:filename", getProductImage)
	webserver.ApiGET("/images/logos/placeholder.svg", getPlaceholder)
	webserver.ApiGET("/images/logos/:filename", getLogo)
	webserver.ApiGET("/images/showcase/:filename", getShowcaseImage)
	webserver.ApiGET("/images/showcase/collections/:filename", getCollectionShowcaseImage)
}

// safeFilename rejects anything that could escape the photo folders.
func safeFilename(name string) bool {
	return name != "" && name == filepath.Base(name) && !strings.HasPrefix(name, ".")
}

// getProductImage re-derives the item folder from the product id and streams
// the photo, falling back to the placeholder when nothing matches.
func getProductImage(c echo.Context) error {
	productID := c.Param("productId")
	filename := c.Param("filename")
	if !safeFilename(filename) {
		return servePlaceholder(c)
	}

	path, err := appCtx.Catalog().ResolvePhoto(productID, filename)
	if err != nil {
		return servePlaceholder(c)
	}
	return serveImageFile(c, path, "public, max-age=31536000, immutable")
}

func getLogo(c echo.Context) error {
	filename := c.Param("filename")
	if !safeFilename(filename) {
		return c.String(http.StatusNotFound, "Image not found")
	}
	path := appCtx.Design().LogoFilePath(filename)
	if _, err := os.Stat(path); err != nil {
		return c.String(http.StatusNotFound, "Image not found")
	}
	return serveImageFile(c, path, "public, max-age=31536000, immutable")
}

func getShowcaseImage(c echo.Context) error {
	return serveShowcase(c, false)
}

func getCollectionShowcaseImage(c echo.Context) error {
	return serveShowcase(c, true)
}

func serveShowcase(c echo.Context, collection bool) error {
	filename := c.Param("filename")
	if !safeFilename(filename) {
		return servePlaceholder(c)
	}
	path := appCtx.Design().ShowcaseFilePath(filename, collection)
	if _, err := os.Stat(path); err != nil {
		return servePlaceholder(c)
	}
	return serveImageFile(c, path, "public, max-age=3600")
}

func getPlaceholder(c echo.Context) error {
	return servePlaceholder(c)
}

// servePlaceholder streams the curated placeholder, or the built-in SVG when
// none exists.
func servePlaceholder(c echo.Context) error {
	path := appCtx.Design().LogoFilePath("placeholder.svg")
	if data, err := os.ReadFile(path); err == nil {
		c.Response().Header().Set("Cache-Control", "public, max-age=3600")
		return c.Blob(http.StatusOK, "image/svg+xml", data)
	}
	c.Response().Header().Set("Cache-Control", "public, max-age=3600")
	return c.Blob(http.StatusOK, "image/svg+xml", []byte(fallbackSVG))
}

func serveImageFile(c echo.Context, path, cacheControl string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		zap.S().Errorf("serving image %s: %v", path, err)
		return c.String(http.StatusInternalServerError, "Error loading image")
	}
	c.Response().Header().Set("Cache-Control", cacheControl)
	return c.Blob(http.StatusOK, catalog.ContentTypeByExt(path), data)
}
