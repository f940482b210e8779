// Package storage persists the library to a local JSON document or a local
// SQLite database.
package storage

import (
	"fmt"
	"time"

	"github.com/alexisbeaulieu97/inkwell/internal/config"
	"github.com/alexisbeaulieu97/inkwell/internal/domain/catalog"
	"github.com/alexisbeaulieu97/inkwell/internal/domain/library"
)

const formatVersion = "1.0"

// libraryFile is the on-disk JSON document.
type libraryFile struct {
	Version string       `json:"version"`
	Items   []itemRecord `json:"items"`
}

type itemRecord struct {
	ID         string      `json:"id" validate:"required"`
	Name       string      `json:"name" validate:"required"`
	ProductIDs []string    `json:"product_ids" validate:"required,min=1,unique,dive,required"`
	Cover      coverRecord `json:"cover_style"`
	Paper      paperRecord `json:"paper_type"`
	IsMega     bool        `json:"is_mega"`
	CreatedAt  time.Time   `json:"created_at"`
}

type coverRecord struct {
	ID       string    `json:"id" validate:"required"`
	Name     string    `json:"name" validate:"required"`
	Gradient [2]string `json:"gradient" validate:"dive,hexcolor"`
	Accent   string    `json:"accent_color" validate:"hexcolor"`
}

type paperRecord struct {
	ID      string `json:"id" validate:"required"`
	Name    string `json:"name" validate:"required"`
	Pattern string `json:"pattern" validate:"oneof=lined grid dotted blank guided"`
}

func toRecord(item library.Item) itemRecord {
	return itemRecord{
		ID:         item.ID,
		Name:       item.Name,
		ProductIDs: append([]string(nil), item.ProductIDs...),
		Cover: coverRecord{
			ID:       item.Cover.ID,
			Name:     item.Cover.Name,
			Gradient: [2]string{string(item.Cover.Gradient[0]), string(item.Cover.Gradient[1])},
			Accent:   string(item.Cover.Accent),
		},
		Paper: paperRecord{
			ID:      item.Paper.ID,
			Name:    item.Paper.Name,
			Pattern: string(item.Paper.Pattern),
		},
		IsMega:    item.IsMega,
		CreatedAt: item.CreatedAt.UTC(),
	}
}

func (r itemRecord) toItem() (library.Item, error) {
	if err := config.GetValidator().Struct(r); err != nil {
		return library.Item{}, fmt.Errorf("invalid item %q: %w", r.ID, config.ConvertValidationError(err))
	}
	if r.CreatedAt.IsZero() {
		return library.Item{}, fmt.Errorf("invalid item %q: created_at is required", r.ID)
	}

	return library.Item{
		ID:         r.ID,
		Name:       r.Name,
		ProductIDs: append([]string(nil), r.ProductIDs...),
		Cover: catalog.CoverStyle{
			ID:       r.Cover.ID,
			Name:     r.Cover.Name,
			Gradient: [2]catalog.Color{catalog.Color(r.Cover.Gradient[0]), catalog.Color(r.Cover.Gradient[1])},
			Accent:   catalog.Color(r.Cover.Accent),
		},
		Paper: catalog.PaperType{
			ID:      r.Paper.ID,
			Name:    r.Paper.Name,
			Pattern: catalog.Pattern(r.Paper.Pattern),
		},
		IsMega:    r.IsMega,
		CreatedAt: r.CreatedAt,
	}, nil
}

func toItems(records []itemRecord) ([]library.Item, error) {
	items := make([]library.Item, 0, len(records))
	for _, r := range records {
		item, err := r.toItem()
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}
