package library

import (
	"strings"
	"time"

	"github.com/alexisbeaulieu97/inkwell/internal/domain/catalog"
)

// Item is one composed product saved in the library. Items are immutable
// once created; the only lifecycle transition is deletion.
type Item struct {
	ID         string             `json:"id"`
	Name       string             `json:"name"`
	ProductIDs []string           `json:"product_ids"`
	Cover      catalog.CoverStyle `json:"cover_style"`
	Paper      catalog.PaperType  `json:"paper_type"`
	IsMega     bool               `json:"is_mega"`
	CreatedAt  time.Time          `json:"created_at"`
}

// Clone returns a deep copy of the item.
func (i Item) Clone() Item {
	out := i
	out.ProductIDs = append([]string(nil), i.ProductIDs...)
	return out
}

// Validate checks the item against c: a non-blank name, a non-empty set of
// unique catalog ids, and an IsMega flag consistent with the catalog size.
func (i Item) Validate(c *catalog.Catalog) error {
	if strings.TrimSpace(i.ID) == "" {
		return newValidationError("item id is required", nil)
	}
	if strings.TrimSpace(i.Name) == "" {
		return ErrEmptyName.WithContext(map[string]interface{}{"id": i.ID})
	}
	if err := checkProductIDs(c, i.ProductIDs); err != nil {
		return err
	}
	if i.IsMega != (len(i.ProductIDs) == c.Len()) {
		return newValidationError("mega flag does not match product count", map[string]interface{}{
			"id":       i.ID,
			"products": len(i.ProductIDs),
			"catalog":  c.Len(),
		})
	}
	return nil
}

func checkProductIDs(c *catalog.Catalog, ids []string) error {
	if len(ids) == 0 {
		return &DomainError{Code: ErrCodeEmptySelection, Message: "no products selected"}
	}

	seen := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		if !c.Contains(id) {
			return newInvalidIDError(id)
		}
		if _, dup := seen[id]; dup {
			return newDuplicateError(id)
		}
		seen[id] = struct{}{}
	}
	return nil
}
