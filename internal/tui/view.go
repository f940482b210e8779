package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/inkwell/internal/domain/catalog"
	"github.com/alexisbeaulieu97/inkwell/internal/domain/library"
	"github.com/alexisbeaulieu97/inkwell/internal/i18n"
)

// View renders the current model state.
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Initializing..."
	}
	if m.showHelp {
		return m.renderHelpView()
	}
	if m.confirmID != "" {
		return m.renderConfirmView()
	}

	var content strings.Builder
	content.WriteString(m.renderTabs())
	content.WriteString("\n")

	if m.showError {
		content.WriteString(errorBannerStyle.Render(m.errorMsg))
		content.WriteString("\n")
	}
	if m.infoMsg != "" {
		content.WriteString(infoBannerStyle.Render(m.infoMsg))
		content.WriteString("\n")
	}
	if m.warningMsg != "" {
		content.WriteString(warningBannerStyle.Render(m.warningMsg))
		content.WriteString("\n")
	}

	switch m.screen {
	case ScreenProducts:
		content.WriteString(m.renderProducts())
	case ScreenCustomize:
		content.WriteString(m.renderCustomize())
	case ScreenLibrary:
		content.WriteString(m.renderLibrary())
	default:
		content.WriteString(m.renderHome())
	}
	content.WriteString("\n")
	content.WriteString(footerStyle.Render(m.help.View(m.keys)))

	return content.String()
}

func (m Model) renderTabs() string {
	labels := []string{
		m.bundle.T(i18n.KeyTabHome),
		m.bundle.T(i18n.KeyTabProducts),
		m.bundle.T(i18n.KeyTabCustomize),
		m.bundle.T(i18n.KeyTabLibrary),
	}
	tabs := make([]string, len(labels))
	for i, label := range labels {
		text := fmt.Sprintf("%d %s", i+1, label)
		if Screen(i) == m.screen {
			tabs[i] = activeTabStyle.Render(text)
		} else {
			tabs[i] = tabStyle.Render(text)
		}
	}
	row := lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
	lang := subtitleStyle.Render("  [" + m.bundle.T(i18n.KeyLanguageName) + "]")
	return headerStyle.Render(row + lang)
}

func (m Model) renderHome() string {
	bullet := "•"
	if !m.useUnicode {
		bullet = "-"
	}
	features := []string{
		m.bundle.Tf(i18n.KeyHomeFeatureSelect, m.catalog.Len(), len(catalog.Categories())),
		m.bundle.T(i18n.KeyHomeFeatureStyle),
		m.bundle.T(i18n.KeyHomeFeatureSave),
		m.bundle.T(i18n.KeyHomeFeatureMega),
	}

	lines := []string{
		titleStyle.Render(m.bundle.T(i18n.KeyAppName)),
		valueStyle.Render(m.bundle.T(i18n.KeyHomeWelcome)),
		subtitleStyle.Render(m.bundle.T(i18n.KeyHomeSubtitle)),
		"",
	}
	for _, f := range features {
		lines = append(lines, itemStyle.Render(bullet+" "+f))
	}
	lines = append(lines, "", subtitleStyle.Render(m.bundle.T(i18n.KeyHomeStart)))
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func (m Model) renderProducts() string {
	lang := m.bundle.Language()
	count := m.service.SelectionCount()
	complete := m.service.SelectionComplete()

	toggleLabel := m.bundle.T(i18n.KeyProductsSelectAll)
	if complete {
		toggleLabel = m.bundle.T(i18n.KeyProductsDeselect)
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(m.bundle.T(i18n.KeyProductsTitle)))
	b.WriteString("  ")
	b.WriteString(counterStyle.Render(m.bundle.Tf(i18n.KeyProductsSelected, count)))
	b.WriteString("  ")
	b.WriteString(subtitleStyle.Render("[a] " + toggleLabel))
	b.WriteString("\n")
	b.WriteString(subtitleStyle.Render(m.bundle.T(i18n.KeyProductsSubtitle)))
	b.WriteString("\n")

	start, end := m.productWindow()
	var current catalog.Category
	for i := start; i < end; i++ {
		p := m.products[i]
		if p.Category != current || i == start {
			current = p.Category
			b.WriteString(categoryStyle.Render(m.bundle.Category(current)))
			b.WriteString("\n")
		}

		box := "[ ]"
		if m.service.IsSelected(p.ID) {
			box = checkedStyle.Render("[x]")
		}
		line := fmt.Sprintf("%s %s", box, p.Name(lang))
		if i == m.productCursor {
			b.WriteString(selectedItemStyle.Render(line))
			b.WriteString("\n")
			b.WriteString(descriptionStyle.Render(p.Description(lang)))
		} else {
			b.WriteString(itemStyle.Render(line))
		}
		b.WriteString("\n")
	}

	action := m.bundle.T(i18n.KeyProductsCreateWith)
	if complete {
		action = m.bundle.T(i18n.KeyProductsCreateMega)
	}
	b.WriteString("\n")
	if count == 0 {
		b.WriteString(disabledActionStyle.Render(action))
	} else {
		b.WriteString(actionStyle.Render("enter  " + action))
	}
	b.WriteString("\n")
	b.WriteString(subtitleStyle.Render(m.bundle.T(i18n.KeyProductsToggleHint)))
	return b.String()
}

// productWindow keeps the cursor visible on short terminals.
func (m Model) productWindow() (int, int) {
	visible := m.height - 16
	if visible < 5 {
		visible = 5
	}
	if visible >= len(m.products) {
		return 0, len(m.products)
	}
	start := m.productCursor - visible/2
	if start < 0 {
		start = 0
	}
	end := start + visible
	if end > len(m.products) {
		end = len(m.products)
		start = end - visible
	}
	return start, end
}

func (m Model) renderCustomize() string {
	cover := m.SelectedCover()
	paper := m.SelectedPaper()
	count := m.service.SelectionCount()

	label := func(f Field, key string) string {
		if m.focus == f {
			return focusedLabelStyle.Render("› " + m.bundle.T(key))
		}
		return labelStyle.Render("  " + m.bundle.T(key))
	}

	var covers []string
	for i, c := range catalog.Covers() {
		swatch := coverSwatch(c, 4)
		if i == m.coverIndex {
			swatch = lipgloss.NewStyle().Underline(true).Render("[") + swatch + "]"
		} else {
			swatch = " " + swatch + " "
		}
		covers = append(covers, swatch)
	}

	var papers []string
	for i, p := range catalog.Papers() {
		text := fmt.Sprintf("%s %s", paperGlyph(p.Pattern, m.useUnicode), p.Name)
		if i == m.paperIndex {
			papers = append(papers, chipStyle.Background(primaryColor).Render(text))
		} else {
			papers = append(papers, chipStyle.Render(text))
		}
	}

	name := strings.TrimSpace(m.nameInput.Value())
	if name == "" {
		name = m.bundle.T(i18n.KeyCustomizePlaceholder)
	}
	badge := countBadgeStyle.Render(fmt.Sprintf("%d %s", count, m.bundle.T(i18n.KeyCustomizeProducts)))
	if m.service.SelectionComplete() {
		badge = megaBadgeStyle.Render(m.bundle.T(i18n.KeyMegaBadge))
	}
	preview := cardStyle.BorderForeground(lipgloss.Color(string(cover.Accent))).Render(lipgloss.JoinVertical(lipgloss.Left,
		coverSwatch(cover, 24),
		accentStyle(cover).Render(name),
		badge,
		subtitleStyle.Render(fmt.Sprintf("%s · %s", cover.Name, paper.Name)),
	))

	create := actionStyle.Render(m.bundle.T(i18n.KeyCustomizeCreate))
	if m.saving {
		create = m.spinner.View() + " " + m.bundle.T(i18n.KeyCustomizeSaving)
	}

	lines := []string{
		titleStyle.Render(m.bundle.T(i18n.KeyCustomizeTitle)) + "  " +
			counterStyle.Render(m.bundle.Tf(i18n.KeyProductsSelected, count)),
		"",
		label(FieldName, i18n.KeyCustomizeName) + m.nameInput.View(),
		label(FieldCover, i18n.KeyCustomizeCover) + lipgloss.JoinHorizontal(lipgloss.Top, covers...),
		labelStyle.Render("") + valueStyle.Render(cover.Name),
		label(FieldPaper, i18n.KeyCustomizePaper) + lipgloss.JoinHorizontal(lipgloss.Top, papers...),
		"",
		subtitleStyle.Render(m.bundle.T(i18n.KeyCustomizePreview)),
		preview,
		create,
		subtitleStyle.Render(m.bundle.T(i18n.KeyCustomizeHint)),
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func (m Model) renderLibrary() string {
	items := m.service.List()
	title := titleStyle.Render(m.bundle.T(i18n.KeyLibraryTitle))

	if len(items) == 0 {
		empty := emptyStateStyle.Width(m.width - 4).Render(
			m.bundle.T(i18n.KeyLibraryEmpty) + "\n" + m.bundle.T(i18n.KeyLibraryCreateFirst))
		return lipgloss.JoinVertical(lipgloss.Left, title, empty)
	}

	parts := []string{
		title,
		subtitleStyle.Render(m.bundle.Tf(i18n.KeyLibrarySubtitle, len(items))),
	}

	start, end := m.libraryWindow(len(items))
	for i := start; i < end; i++ {
		parts = append(parts, m.renderCard(items[i], i == m.libraryCursor))
	}
	parts = append(parts, subtitleStyle.Render(m.bundle.T(i18n.KeyLibraryHint)))
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

// libraryWindow shows as many cards as fit, keeping the cursor visible.
func (m Model) libraryWindow(n int) (int, int) {
	const cardHeight = 8
	visible := (m.height - 10) / cardHeight
	if visible < 1 {
		visible = 1
	}
	if visible >= n {
		return 0, n
	}
	start := m.libraryCursor - visible + 1
	if start < 0 {
		start = 0
	}
	return start, start + visible
}

func (m Model) renderCard(item library.Item, selected bool) string {
	badge := countBadgeStyle.Render(fmt.Sprintf("%d", len(item.ProductIDs)))
	if item.IsMega {
		badge = megaBadgeStyle.Render(m.bundle.T(i18n.KeyMegaBadge))
	}

	header := lipgloss.JoinHorizontal(lipgloss.Top,
		coverSwatch(item.Cover, 6), " ", badge, " ",
		accentStyle(item.Cover).Render(item.Name),
	)

	var chips []string
	for i, id := range item.ProductIDs {
		if i == previewedItems {
			break
		}
		chips = append(chips, chipStyle.Render(m.productName(id)))
	}
	if extra := len(item.ProductIDs) - previewedItems; extra > 0 {
		chips = append(chips, chipStyle.Render(m.bundle.Tf(i18n.KeyLibraryMore, extra)))
	}

	body := lipgloss.JoinVertical(lipgloss.Left,
		header,
		subtitleStyle.Render(m.bundle.FormatDate(item.CreatedAt)),
		labelStyle.Render(m.bundle.T(i18n.KeyLibraryCover))+valueStyle.Render(item.Cover.Name),
		labelStyle.Render(m.bundle.T(i18n.KeyLibraryPaper))+valueStyle.Render(item.Paper.Name),
		lipgloss.JoinHorizontal(lipgloss.Top, chips...),
	)

	style := cardStyle
	if selected {
		style = selectedCardStyle
	}
	return style.Width(m.width - 4).Render(body)
}

func (m Model) renderConfirmView() string {
	name := m.confirmID
	for _, item := range m.service.List() {
		if item.ID == m.confirmID {
			name = item.Name
			break
		}
	}
	box := confirmBoxStyle.Render(lipgloss.JoinVertical(lipgloss.Center,
		confirmTitleStyle.Render(m.bundle.T(i18n.KeyDeleteTitle)),
		m.bundle.Tf(i18n.KeyDeleteConfirm, name),
	))
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
}

func (m Model) renderHelpView() string {
	h := m.help
	h.ShowAll = true
	box := helpBoxStyle.Render(lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render(m.bundle.T(i18n.KeyAppName)),
		"",
		h.View(m.keys),
	))
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
}
