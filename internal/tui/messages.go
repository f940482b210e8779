package tui

import (
	"github.com/alexisbeaulieu97/inkwell/internal/domain/library"
)

// Screen identifies one of the four tabs.
type Screen int

const (
	ScreenHome Screen = iota
	ScreenProducts
	ScreenCustomize
	ScreenLibrary
)

var screenOrder = []Screen{ScreenHome, ScreenProducts, ScreenCustomize, ScreenLibrary}

// Field is the focused control on the customize screen.
type Field int

const (
	FieldName Field = iota
	FieldCover
	FieldPaper
)

// ItemCreatedMsg reports a successful create. Err is set when the item was
// kept in memory but could not be written.
type ItemCreatedMsg struct {
	Item library.Item
	Err  error
}

// CreateFailedMsg reports a rejected create.
type CreateFailedMsg struct {
	Err error
}

// ItemDeletedMsg reports a delete. Err is set when the item was removed in
// memory but the library could not be written.
type ItemDeletedMsg struct {
	Item library.Item
	Err  error
}

// DeleteFailedMsg reports a rejected delete.
type DeleteFailedMsg struct {
	ID  string
	Err error
}

// PersistenceFailedMsg is forwarded from the event publisher when the
// library could not be saved or loaded.
type PersistenceFailedMsg struct {
	Operation string
}

// ClearBannerMsg hides the info banner if it still shows the message with
// the same sequence number.
type ClearBannerMsg struct {
	Seq int
}
