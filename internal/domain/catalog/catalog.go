// Package catalog holds the fixed set of stationery products, cover styles,
// and paper types a user can compose into a library item. Values in this
// package are defined at startup and never mutated afterwards.
package catalog

import (
	"fmt"
	"strings"
)

// Language selects which localized product text to return.
type Language string

const (
	LanguageEnglish Language = "en"
	LanguageSpanish Language = "es"
)

// Category groups products on the products screen.
type Category string

const (
	CategoryNotebooks  Category = "notebooks"
	CategoryJournals   Category = "journals"
	CategoryWellness   Category = "wellness"
	CategoryAgendas    Category = "agendas"
	CategoryPlanners   Category = "planners"
	CategoryTrackers   Category = "trackers"
	CategoryCalendars  Category = "calendars"
	CategoryReviews    Category = "reviews"
	CategoryOrganizers Category = "organizers"
	CategoryGuides     Category = "guides"
	CategoryWriting    Category = "writing"
	CategoryTemplates  Category = "templates"
	CategoryExercises  Category = "exercises"
	CategoryBusiness   Category = "business"
	CategoryGoals      Category = "goals"
)

var categoryOrder = []Category{
	CategoryNotebooks,
	CategoryJournals,
	CategoryWellness,
	CategoryAgendas,
	CategoryPlanners,
	CategoryTrackers,
	CategoryCalendars,
	CategoryReviews,
	CategoryOrganizers,
	CategoryGuides,
	CategoryWriting,
	CategoryTemplates,
	CategoryExercises,
	CategoryBusiness,
	CategoryGoals,
}

// Categories returns every category in display order.
func Categories() []Category {
	out := make([]Category, len(categoryOrder))
	copy(out, categoryOrder)
	return out
}

// Valid reports whether c is one of the known categories.
func (c Category) Valid() bool {
	for _, known := range categoryOrder {
		if c == known {
			return true
		}
	}
	return false
}

func (c Category) String() string {
	return string(c)
}

// Product describes one selectable catalog entry.
type Product struct {
	ID            string   `json:"id"`
	Category      Category `json:"category"`
	NameEn        string   `json:"name_en"`
	NameEs        string   `json:"name_es"`
	DescriptionEn string   `json:"description_en"`
	DescriptionEs string   `json:"description_es"`
}

// Name returns the product name for lang, falling back to English.
func (p Product) Name(lang Language) string {
	if lang == LanguageSpanish && p.NameEs != "" {
		return p.NameEs
	}
	return p.NameEn
}

// Description returns the product description for lang, falling back to English.
func (p Product) Description(lang Language) string {
	if lang == LanguageSpanish && p.DescriptionEs != "" {
		return p.DescriptionEs
	}
	return p.DescriptionEn
}

// Group is a category together with its products in catalog order.
type Group struct {
	Category Category
	Products []Product
}

// Catalog is an immutable, ordered set of products.
type Catalog struct {
	products []Product
	index    map[string]int
}

// New builds a catalog from products. It fails when the list is empty,
// contains duplicate ids, blank names, or unknown categories.
func New(products []Product) (*Catalog, error) {
	c := &Catalog{
		products: make([]Product, len(products)),
		index:    make(map[string]int, len(products)),
	}
	copy(c.products, products)
	for i, p := range c.products {
		c.index[p.ID] = i
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// MustNew is like New but panics on invalid input. It is intended for
// package-level static catalogs.
func MustNew(products []Product) *Catalog {
	c, err := New(products)
	if err != nil {
		panic(err)
	}
	return c
}

// Validate checks the catalog's structural invariants.
func (c *Catalog) Validate() error {
	if c == nil || len(c.products) == 0 {
		return fmt.Errorf("catalog is empty")
	}

	seen := make(map[string]struct{}, len(c.products))
	for i, p := range c.products {
		if strings.TrimSpace(p.ID) == "" {
			return fmt.Errorf("product %d: id is required", i)
		}
		if _, dup := seen[p.ID]; dup {
			return fmt.Errorf("product %q: duplicate id", p.ID)
		}
		seen[p.ID] = struct{}{}

		if !p.Category.Valid() {
			return fmt.Errorf("product %q: unknown category %q", p.ID, p.Category)
		}
		if strings.TrimSpace(p.NameEn) == "" {
			return fmt.Errorf("product %q: english name is required", p.ID)
		}
	}
	return nil
}

// Len returns the number of products in the catalog.
func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.products)
}

// Products returns a copy of all products in catalog order.
func (c *Catalog) Products() []Product {
	out := make([]Product, len(c.products))
	copy(out, c.products)
	return out
}

// IDs returns every product id in catalog order.
func (c *Catalog) IDs() []string {
	ids := make([]string, len(c.products))
	for i, p := range c.products {
		ids[i] = p.ID
	}
	return ids
}

// Contains reports whether id names a catalog product.
func (c *Catalog) Contains(id string) bool {
	if c == nil {
		return false
	}
	_, ok := c.index[id]
	return ok
}

// Lookup returns the product with the given id.
func (c *Catalog) Lookup(id string) (Product, bool) {
	if c == nil {
		return Product{}, false
	}
	i, ok := c.index[id]
	if !ok {
		return Product{}, false
	}
	return c.products[i], true
}

// GroupByCategory returns the non-empty categories in display order, each
// holding its products in catalog order.
func (c *Catalog) GroupByCategory() []Group {
	buckets := make(map[Category][]Product)
	for _, p := range c.products {
		buckets[p.Category] = append(buckets[p.Category], p)
	}

	groups := make([]Group, 0, len(buckets))
	for _, cat := range categoryOrder {
		products, ok := buckets[cat]
		if !ok {
			continue
		}
		groups = append(groups, Group{Category: cat, Products: products})
	}
	return groups
}
