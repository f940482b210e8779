package library

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/alexisbeaulieu97/inkwell/internal/domain/catalog"
)

// Composer turns a product selection, a cover, a paper, and a name into a
// library item. It keeps no state between calls; only id and clock
// generation are impure.
type Composer struct {
	Catalog *catalog.Catalog
	NewID   func() string
	Now     func() time.Time
}

// NewComposer returns a Composer that issues time-ordered UUIDv7 ids and UTC
// timestamps.
func NewComposer(c *catalog.Catalog) *Composer {
	return &Composer{
		Catalog: c,
		NewID:   newItemID,
		Now:     func() time.Time { return time.Now().UTC() },
	}
}

// Compose validates its inputs and builds a new Item. The product ids,
// cover, and paper are copied so later changes to the caller's values do
// not alter the item.
func (c *Composer) Compose(productIDs []string, name string, cover catalog.CoverStyle, paper catalog.PaperType) (Item, error) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return Item{}, &DomainError{Code: ErrCodeEmptyName, Message: "name is required"}
	}
	if err := checkProductIDs(c.Catalog, productIDs); err != nil {
		return Item{}, err
	}
	if strings.TrimSpace(cover.ID) == "" {
		return Item{}, newValidationError("cover style is required", nil)
	}
	if strings.TrimSpace(paper.ID) == "" {
		return Item{}, newValidationError("paper type is required", nil)
	}

	return Item{
		ID:         c.NewID(),
		Name:       trimmed,
		ProductIDs: append([]string(nil), productIDs...),
		Cover:      cover,
		Paper:      paper,
		IsMega:     len(productIDs) == c.Catalog.Len(),
		CreatedAt:  c.Now(),
	}, nil
}

func newItemID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}
