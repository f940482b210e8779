package tui

import (
	"errors"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/inkwell/internal/domain/catalog"
	"github.com/alexisbeaulieu97/inkwell/internal/domain/library"
	"github.com/alexisbeaulieu97/inkwell/internal/i18n"
)

// Update handles incoming messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		if m.width < minWidth || m.height < minHeight {
			m.setError(m.sizeMessage())
			m.tooSmall = true
		} else if m.tooSmall {
			m.clearError()
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case ItemCreatedMsg:
		m.saving = false
		m.clearError()
		m.nameInput.Reset()
		m.setFocus(FieldName)
		m.setScreen(ScreenLibrary)
		m.libraryCursor = m.service.Count() - 1
		m.clampLibraryCursor()
		if msg.Err != nil {
			m.warningMsg = m.bundle.T(i18n.KeyErrPersistence)
		}
		return m, m.setInfo(m.bundle.T(i18n.KeyCreatedMessage))

	case CreateFailedMsg:
		m.saving = false
		m.setError(m.describeError(msg.Err))
		return m, nil

	case ItemDeletedMsg:
		m.confirmID = ""
		m.clampLibraryCursor()
		if msg.Err != nil {
			m.warningMsg = m.bundle.T(i18n.KeyErrPersistence)
		}
		return m, m.setInfo(m.bundle.Tf(i18n.KeyDeleted, msg.Item.Name))

	case DeleteFailedMsg:
		m.confirmID = ""
		m.setError(m.describeError(msg.Err))
		return m, nil

	case PersistenceFailedMsg:
		m.warningMsg = m.bundle.T(i18n.KeyErrPersistence)
		return m, nil

	case ClearBannerMsg:
		if msg.Seq == m.bannerSeq {
			m.infoMsg = ""
		}
		return m, nil
	}

	if m.screen == ScreenCustomize && m.focus == FieldName {
		var cmd tea.Cmd
		m.nameInput, cmd = m.nameInput.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) describeError(err error) string {
	switch {
	case errors.Is(err, library.ErrEmptyName):
		return m.bundle.T(i18n.KeyErrEmptyName)
	case errors.Is(err, library.ErrEmptySelection):
		return m.bundle.T(i18n.KeyErrEmptySelect)
	case errors.Is(err, library.ErrPersistenceFailure):
		return m.bundle.T(i18n.KeyErrPersistence)
	case err != nil:
		return err.Error()
	default:
		return m.bundle.T(i18n.KeyErrUnknown)
	}
}

// handleKeyPress routes keys to the overlay or the active screen. Global
// shortcuts are disabled while the name field has focus.
func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.ForceQuit) {
		return m, tea.Quit
	}

	if m.showHelp {
		if key.Matches(msg, m.keys.Help, m.keys.Back, m.keys.Quit) {
			m.showHelp = false
		}
		return m, nil
	}

	if m.confirmID != "" {
		return m.handleConfirmKeys(msg)
	}

	editing := m.screen == ScreenCustomize && m.focus == FieldName
	if !editing {
		if model, cmd, handled := m.handleGlobalKeys(msg); handled {
			return model, cmd
		}
	}

	switch m.screen {
	case ScreenHome:
		if key.Matches(msg, m.keys.Confirm) {
			m.setScreen(ScreenProducts)
		}
		return m, nil
	case ScreenProducts:
		return m.handleProductKeys(msg)
	case ScreenCustomize:
		return m.handleCustomizeKeys(msg)
	case ScreenLibrary:
		return m.handleLibraryKeys(msg)
	default:
		return m, nil
	}
}

func (m Model) handleGlobalKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd, bool) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit, true

	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil, true

	case key.Matches(msg, m.keys.Language):
		m.bundle = i18n.New(i18n.Next(m.bundle.Language()))
		m.applyLanguage()
		return m, nil, true

	case key.Matches(msg, m.keys.Screen):
		m.setScreen(screenOrder[int(msg.String()[0]-'1')])
		return m, nil, true

	case key.Matches(msg, m.keys.Tab) && m.screen != ScreenCustomize:
		next := (int(m.screen) + 1) % len(screenOrder)
		m.setScreen(screenOrder[next])
		return m, nil, true

	case msg.String() == "x" && (m.showError || m.warningMsg != ""):
		m.clearError()
		m.warningMsg = ""
		return m, nil, true
	}
	return m, nil, false
}

func (m Model) handleProductKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Up):
		if len(m.products) > 0 {
			m.productCursor = (m.productCursor - 1 + len(m.products)) % len(m.products)
		}

	case key.Matches(msg, m.keys.Down):
		if len(m.products) > 0 {
			m.productCursor = (m.productCursor + 1) % len(m.products)
		}

	case key.Matches(msg, m.keys.Toggle):
		if p, ok := m.CurrentProduct(); ok {
			if err := m.service.Toggle(m.ctx, p.ID); err != nil {
				m.setError(m.describeError(err))
			}
		}

	case key.Matches(msg, m.keys.ToggleAll):
		m.service.ToggleAll(m.ctx)

	case key.Matches(msg, m.keys.Confirm):
		if m.service.SelectionCount() == 0 {
			m.setError(m.bundle.T(i18n.KeyErrEmptySelect))
			return m, nil
		}
		m.clearError()
		m.setFocus(FieldName)
		m.setScreen(ScreenCustomize)
		return m, textinput.Blink
	}
	return m, nil
}

func (m Model) handleCustomizeKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Confirm):
		if m.saving {
			return m, nil
		}
		m.clearError()
		m.saving = true
		return m, tea.Batch(
			createCmd(m.ctx, m.service, m.nameInput.Value(), m.SelectedCover().ID, m.SelectedPaper().ID),
			m.spinner.Tick,
		)

	case key.Matches(msg, m.keys.Back):
		if m.showError {
			m.clearError()
			return m, nil
		}
		m.setScreen(ScreenProducts)
		return m, nil

	// Arrow keys only move focus off the pickers; the name field keeps them.
	case key.Matches(msg, m.keys.NextField) || (m.focus != FieldName && key.Matches(msg, m.keys.Down)):
		m.setFocus(Field((int(m.focus) + 1) % 3))
		return m, nil

	case key.Matches(msg, m.keys.PrevField) || (m.focus != FieldName && key.Matches(msg, m.keys.Up)):
		m.setFocus(Field((int(m.focus) + 2) % 3))
		return m, nil
	}

	switch m.focus {
	case FieldCover:
		n := len(catalog.Covers())
		if key.Matches(msg, m.keys.Left) {
			m.coverIndex = (m.coverIndex - 1 + n) % n
		} else if key.Matches(msg, m.keys.Right) {
			m.coverIndex = (m.coverIndex + 1) % n
		}
		return m, nil

	case FieldPaper:
		n := len(catalog.Papers())
		if key.Matches(msg, m.keys.Left) {
			m.paperIndex = (m.paperIndex - 1 + n) % n
		} else if key.Matches(msg, m.keys.Right) {
			m.paperIndex = (m.paperIndex + 1) % n
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.nameInput, cmd = m.nameInput.Update(msg)
	return m, cmd
}

func (m Model) handleLibraryKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	n := m.service.Count()
	switch {
	case key.Matches(msg, m.keys.Up):
		if n > 0 {
			m.libraryCursor = (m.libraryCursor - 1 + n) % n
		}

	case key.Matches(msg, m.keys.Down):
		if n > 0 {
			m.libraryCursor = (m.libraryCursor + 1) % n
		}

	case key.Matches(msg, m.keys.Delete):
		if item, ok := m.CurrentItem(); ok {
			m.confirmID = item.ID
		}

	case key.Matches(msg, m.keys.Confirm):
		if n == 0 {
			m.setScreen(ScreenProducts)
		}
	}
	return m, nil
}

func (m Model) handleConfirmKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Yes):
		id := m.confirmID
		m.confirmID = ""
		return m, deleteCmd(m.ctx, m.service, id)
	case key.Matches(msg, m.keys.No), key.Matches(msg, m.keys.Quit):
		m.confirmID = ""
	}
	return m, nil
}
