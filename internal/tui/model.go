// Package tui implements the interactive terminal screens: home, product
// selection, customization, and the saved library.
package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/inkwell/internal/domain/catalog"
	"github.com/alexisbeaulieu97/inkwell/internal/domain/library"
	"github.com/alexisbeaulieu97/inkwell/internal/i18n"
)

const (
	minWidth       = 60
	minHeight      = 20
	maxNameLength  = 60
	previewedItems = 3
)

// Options configures a Model.
type Options struct {
	Context    context.Context
	Language   i18n.Language
	UseUnicode bool
	// Warning is shown until dismissed, e.g. when the library failed to load.
	Warning string
}

// Model is the root bubbletea model. Selection and library state live in
// the service; the model keeps only cursors, focus, and banners.
type Model struct {
	ctx     context.Context
	service LibraryService
	catalog *catalog.Catalog
	bundle  *i18n.Bundle
	keys    keyMap

	// Navigation
	screen   Screen
	showHelp bool

	// Products screen
	products      []catalog.Product
	productCursor int

	// Customize screen
	nameInput  textinput.Model
	focus      Field
	coverIndex int
	paperIndex int
	saving     bool

	// Library screen
	libraryCursor int
	confirmID     string

	// Banners
	showError  bool
	errorMsg   string
	infoMsg    string
	bannerSeq  int
	warningMsg string
	tooSmall   bool

	// Components
	spinner spinner.Model
	help    help.Model

	width      int
	height     int
	useUnicode bool
}

// NewModel creates the root model over svc.
func NewModel(svc LibraryService, opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = spinnerStyle

	c := svc.Catalog()
	var products []catalog.Product
	for _, group := range c.GroupByCategory() {
		products = append(products, group.Products...)
	}

	m := Model{
		ctx:        ctx,
		service:    svc,
		catalog:    c,
		bundle:     i18n.New(opts.Language),
		keys:       defaultKeyMap(),
		screen:     ScreenHome,
		products:   products,
		nameInput:  newNameInput(),
		spinner:    s,
		help:       help.New(),
		width:      80,
		height:     24,
		useUnicode: opts.UseUnicode,
		warningMsg: opts.Warning,
	}
	m.applyLanguage()
	return m
}

func newNameInput() textinput.Model {
	ti := textinput.New()
	ti.CharLimit = maxNameLength
	ti.Width = 40
	ti.Prompt = "> "
	return ti
}

// Init starts the spinner; everything else is driven by key presses.
func (m Model) Init() tea.Cmd {
	return m.spinner.Tick
}

// Screen returns the active screen.
func (m Model) Screen() Screen {
	return m.screen
}

// Language returns the interface language.
func (m Model) Language() i18n.Language {
	return m.bundle.Language()
}

// ErrorMessage returns the blocking error banner text, if shown.
func (m Model) ErrorMessage() string {
	if !m.showError {
		return ""
	}
	return m.errorMsg
}

// InfoMessage returns the transient banner text.
func (m Model) InfoMessage() string {
	return m.infoMsg
}

// SelectedCover returns the cover highlighted on the customize screen.
func (m Model) SelectedCover() catalog.CoverStyle {
	covers := catalog.Covers()
	return covers[m.coverIndex%len(covers)]
}

// SelectedPaper returns the paper highlighted on the customize screen.
func (m Model) SelectedPaper() catalog.PaperType {
	papers := catalog.Papers()
	return papers[m.paperIndex%len(papers)]
}

// CurrentProduct returns the product under the cursor.
func (m Model) CurrentProduct() (catalog.Product, bool) {
	if m.productCursor < 0 || m.productCursor >= len(m.products) {
		return catalog.Product{}, false
	}
	return m.products[m.productCursor], true
}

// CurrentItem returns the library item under the cursor.
func (m Model) CurrentItem() (library.Item, bool) {
	items := m.service.List()
	if m.libraryCursor < 0 || m.libraryCursor >= len(items) {
		return library.Item{}, false
	}
	return items[m.libraryCursor], true
}

func (m *Model) applyLanguage() {
	m.nameInput.Placeholder = m.bundle.T(i18n.KeyCustomizePlaceholder)
	if m.tooSmall {
		m.setError(m.sizeMessage())
		m.tooSmall = true
	}
}

func (m *Model) sizeMessage() string {
	return m.bundle.Tf(i18n.KeyErrTerminalSmall, m.width, m.height, minWidth, minHeight)
}

func (m *Model) setScreen(s Screen) {
	m.screen = s
	m.confirmID = ""
	if s == ScreenCustomize && m.focus == FieldName {
		m.nameInput.Focus()
	} else {
		m.nameInput.Blur()
	}
	if s == ScreenLibrary {
		m.clampLibraryCursor()
	}
}

func (m *Model) setFocus(f Field) {
	m.focus = f
	if f == FieldName && m.screen == ScreenCustomize {
		m.nameInput.Focus()
	} else {
		m.nameInput.Blur()
	}
}

func (m *Model) clampLibraryCursor() {
	n := m.service.Count()
	if m.libraryCursor >= n {
		m.libraryCursor = n - 1
	}
	if m.libraryCursor < 0 {
		m.libraryCursor = 0
	}
}

// setError replaces the error banner. tooSmall is set by the caller only
// when the banner is the terminal size warning.
func (m *Model) setError(msg string) {
	m.showError = true
	m.errorMsg = msg
	m.tooSmall = false
}

func (m *Model) clearError() {
	m.showError = false
	m.errorMsg = ""
	m.tooSmall = false
}

func (m *Model) setInfo(msg string) tea.Cmd {
	m.bannerSeq++
	m.infoMsg = msg
	return clearBannerCmd(m.bannerSeq)
}

func (m Model) productName(id string) string {
	if p, ok := m.catalog.Lookup(id); ok {
		return p.Name(m.bundle.Language())
	}
	return id
}
