// Package catalog serves product listings and lookups.
package catalog

import (
	"context"
	"fmt"
	"log"
	"strconv"
	"strings"

	"freshbasket/models"
	"freshbasket/store"
)

// AllCategories selects the whole catalog.
const AllCategories = "all"

type Catalog struct {
	products store.Products
	cache    *Cache // optional
}

// New returns a catalog over products. cache may be nil.
func New(products store.Products, cache *Cache) *Catalog {
	return &Catalog{products: products, cache: cache}
}

// ListActive returns every active product in ascending id order.
func (c *Catalog) ListActive(ctx context.Context) ([]models.Product, error) {
	if c.cache != nil {
		return c.cache.active(ctx, c.products.ListActive)
	}
	return c.products.ListActive(ctx)
}

// ByCategory returns the active products of one category. An empty category
// or "all" returns every active product.
func (c *Catalog) ByCategory(ctx context.Context, category string) ([]models.Product, error) {
	products, err := c.ListActive(ctx)
	if err != nil {
		return nil, err
	}
	return FilterByCategory(products, category), nil
}

// Featured returns the first n active products.
func (c *Catalog) Featured(ctx context.Context, n int) ([]models.Product, error) {
	products, err := c.ListActive(ctx)
	if err != nil {
		return nil, err
	}
	if len(products) > n {
		products = products[:n]
	}
	return products, nil
}

// GetByID looks up a product by its numeric id. Inactive products are still
// returned. Absent products yield store.ErrNotFound.
func (c *Catalog) GetByID(ctx context.Context, id int) (models.Product, error) {
	return c.products.Get(ctx, strconv.Itoa(id))
}

// Categories lists the distinct categories of active products in first-seen
// order.
func (c *Catalog) Categories(ctx context.Context) ([]string, error) {
	products, err := c.ListActive(ctx)
	if err != nil {
		return nil, err
	}
	seen := make(map[string]bool)
	categories := []string{}
	for _, p := range products {
		if p.Category == "" || seen[p.Category] {
			continue
		}
		seen[p.Category] = true
		categories = append(categories, p.Category)
	}
	return categories, nil
}

// Counts reports total and active product counts.
func (c *Catalog) Counts(ctx context.Context) (total, active int, err error) {
	return c.products.Count(ctx)
}

// Seed loads SeedProducts when the catalog is empty.
func (c *Catalog) Seed(ctx context.Context) error {
	seeded, err := c.products.SeedIfEmpty(ctx, SeedProducts)
	if err != nil {
		return fmt.Errorf("seed catalog: %w", err)
	}
	if !seeded {
		log.Println("✅ Products already exist in database")
		return nil
	}
	log.Printf("🌱 Seeded %d products", len(SeedProducts))
	if c.cache != nil {
		if err := c.cache.Invalidate(ctx); err != nil {
			log.Printf("catalog cache invalidate: %v", err)
		}
	}
	return nil
}

// FilterByCategory keeps products whose category equals category, ignoring
// case.
func FilterByCategory(products []models.Product, category string) []models.Product {
	if category == "" || strings.EqualFold(category, AllCategories) {
		return products
	}
	filtered := make([]models.Product, 0, len(products))
	for _, p := range products {
		if strings.EqualFold(p.Category, category) {
			filtered = append(filtered, p)
		}
	}
	return filtered
}
