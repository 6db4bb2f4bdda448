// Package catalog derives the product catalog from the ShopCollections
// directory tree. Reads are uncached: every query re-walks the tree so the
// storefront always reflects the current state of the folders.
package catalog

import (
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/gi-os/ShopTemplateSystem/internal/domain"
)

// CollectionsDir is the catalog root folder name inside the data directory.
const CollectionsDir = "ShopCollections"

// Repository reads the catalog from a data directory.
type Repository struct {
	root string // path of the ShopCollections folder
}

func NewRepository(dataDir string) *Repository {
	return &Repository{root: filepath.Join(dataDir, CollectionsDir)}
}

// AllCollections walks the collections root and parses every collection
// folder. A missing root or read failure yields an empty result, never an
// error.
func (r *Repository) AllCollections() []domain.Collection {
	entries, err := os.ReadDir(r.root)
	if err != nil {
		if !os.IsNotExist(err) {
			zap.S().Errorf("catalog: reading collections root: %v", err)
		}
		return nil
	}

	var collections []domain.Collection
	seen := make(map[string]string)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		c := parseCollection(entry.Name(), filepath.Join(r.root, entry.Name()))
		if c == nil {
			continue
		}
		// Differently named folders can slugify to the same id. First folder
		// wins so existing trees keep serving; the collision is surfaced to
		// the operator.
		if prev, ok := seen[c.ID]; ok {
			zap.S().Warnf("catalog: collection id %q from folder %q collides with folder %q, keeping the first",
				c.ID, entry.Name(), prev)
			continue
		}
		seen[c.ID] = entry.Name()
		collections = append(collections, *c)
	}
	return collections
}

// CollectionByID returns the collection with the given id, or nil.
func (r *Repository) CollectionByID(id string) *domain.Collection {
	for _, c := range r.AllCollections() {
		if c.ID == id {
			collection := c
			return &collection
		}
	}
	return nil
}

// ProductByID scans every collection for the product, or returns nil. The id
// is deterministic from the folder names, so image serving may instead
// re-derive the path with ResolvePhoto; both must agree.
func (r *Repository) ProductByID(id string) *domain.Product {
	for _, c := range r.AllCollections() {
		for _, p := range c.Products {
			if p.ID == id {
				product := p
				return &product
			}
		}
	}
	return nil
}

// AllProducts flattens every collection's products, collections in directory
// listing order, products in per-collection order.
func (r *Repository) AllProducts() []domain.Product {
	var products []domain.Product
	for _, c := range r.AllCollections() {
		products = append(products, c.Products...)
	}
	return products
}
