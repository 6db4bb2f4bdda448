package catalog

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cast"
	"go.uber.org/zap"

	"github.com/gi-os/ShopTemplateSystem/internal/domain"
	"github.com/gi-os/ShopTemplateSystem/pkg/slug"
)

const (
	detailsDir = "Details"
	photosDir  = "Photos"
)

// readDetail reads one Details file trimmed. A missing or unreadable file is
// routine curation, not a fault, and comes back as "".
func readDetail(detailsPath, filename string) string {
	data, err := os.ReadFile(filepath.Join(detailsPath, filename))
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(data))
}

func readDetailFloat(detailsPath, filename string, def float64) float64 {
	v, err := cast.ToFloat64E(readDetail(detailsPath, filename))
	if err != nil {
		return def
	}
	return v
}

func readDetailInt(detailsPath, filename string, def int) int {
	v, err := cast.ToIntE(readDetail(detailsPath, filename))
	if err != nil {
		return def
	}
	return v
}

// parseProduct derives a Product from one item folder, or nil when the folder
// is not a valid product (no Details folder, or missing name/SKU).
func parseProduct(collectionName, collectionID, itemName, itemPath string) *domain.Product {
	detailsPath := filepath.Join(itemPath, detailsDir)
	if info, err := os.Stat(detailsPath); err != nil || !info.IsDir() {
		return nil
	}

	name := readDetail(detailsPath, "Name.txt")
	description := readDetail(detailsPath, "Description.txt")
	sku := readDetail(detailsPath, "SKU.txt")
	itemCost := readDetailFloat(detailsPath, "ItemCost.txt", 0)
	boxCost := readDetailFloat(detailsPath, "BoxCost.txt", 0)
	unitsPerBox := readDetailInt(detailsPath, "UnitsPerBox.txt", 1)

	// Name and SKU are the only mandatory fields.
	if name == "" || sku == "" {
		return nil
	}

	productID := collectionID + "-" + slug.Slugify(itemName)

	return &domain.Product{
		ID:             productID,
		Name:           name,
		Description:    description,
		SKU:            sku,
		ItemCost:       itemCost,
		BoxCost:        boxCost,
		UnitsPerBox:    unitsPerBox,
		Images:         productImages(filepath.Join(itemPath, photosDir), productID),
		CollectionID:   collectionID,
		CollectionName: collectionName,
	}
}

// parseCollection enumerates an item folder per immediate subdirectory. A
// collection that yields no valid products is dropped.
func parseCollection(folderName, collectionPath string) *domain.Collection {
	entries, err := os.ReadDir(collectionPath)
	if err != nil {
		zap.S().Errorf("catalog: reading collection %s: %v", folderName, err)
		return nil
	}

	collectionID := slug.Slugify(folderName)
	var products []domain.Product
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		itemPath := filepath.Join(collectionPath, entry.Name())
		if p := parseProduct(folderName, collectionID, entry.Name(), itemPath); p != nil {
			products = append(products, *p)
		}
	}

	if len(products) == 0 {
		return nil
	}

	return &domain.Collection{
		ID:       collectionID,
		Name:     folderName,
		Products: products,
	}
}
