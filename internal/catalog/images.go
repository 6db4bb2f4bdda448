package catalog

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/pkg/errors"

	"github.com/gi-os/ShopTemplateSystem/pkg/slug"
)

// imageExts are the photo extensions the storefront recognizes.
var imageExts = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".webp": true,
}

// IsImageFile reports whether filename has a recognized image extension.
func IsImageFile(filename string) bool {
	return imageExts[strings.ToLower(filepath.Ext(filename))]
}

// ContentTypeByExt maps an image filename to its MIME type. Unknown
// extensions fall back to image/png, matching the serving default.
func ContentTypeByExt(filename string) string {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".jpg", ".jpeg":
		return "image/jpeg"
	case ".gif":
		return "image/gif"
	case ".webp":
		return "image/webp"
	case ".svg":
		return "image/svg+xml"
	case ".ico":
		return "image/x-icon"
	default:
		return "image/png"
	}
}

// ProductImageURL addresses one photo of a product.
func ProductImageURL(productID, filename string) string {
	return "/api/images/products/" + productID + "/" + filename
}

// productImages lists the recognized photos of one item folder as URLs,
// filename-sorted so the order is stable across filesystems.
func productImages(photosPath, productID string) []string {
	entries, err := os.ReadDir(photosPath)
	if err != nil {
		return nil
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() || !IsImageFile(entry.Name()) {
			continue
		}
		names = append(names, entry.Name())
	}
	sort.Strings(names)

	urls := make([]string, 0, len(names))
	for _, name := range names {
		urls = append(urls, ProductImageURL(productID, name))
	}
	return urls
}

// ResolvePhoto locates the photo file for a product id without a full catalog
// parse: it re-derives every collection/item id from the folder names with the
// same slug function the parser uses and compares. Returns the absolute file
// path, or an error when nothing matches.
func (r *Repository) ResolvePhoto(productID, filename string) (string, error) {
	collections, err := os.ReadDir(r.root)
	if err != nil {
		return "", errors.Wrap(err, "reading collections root")
	}

	for _, collection := range collections {
		if !collection.IsDir() {
			continue
		}
		collectionSlug := slug.Slugify(collection.Name())
		if !strings.HasPrefix(productID, collectionSlug+"-") {
			continue
		}
		collectionPath := filepath.Join(r.root, collection.Name())
		items, err := os.ReadDir(collectionPath)
		if err != nil {
			continue
		}
		for _, item := range items {
			if !item.IsDir() {
				continue
			}
			if collectionSlug+"-"+slug.Slugify(item.Name()) != productID {
				continue
			}
			photoPath := filepath.Join(collectionPath, item.Name(), photosDir, filename)
			if _, err := os.Stat(photoPath); err == nil {
				return photoPath, nil
			}
		}
	}
	return "", errors.Errorf("no photo %s for product %s", filename, productID)
}
