package i18n

// Text keys.
const (
	KeyAppName        = "app_name"
	KeyTabHome        = "tab.home"
	KeyTabProducts    = "tab.products"
	KeyTabCustomize   = "tab.customize"
	KeyTabLibrary     = "tab.library"
	KeyLanguageName   = "language.name"
	KeyHelpNavigation = "help.navigation"
	KeyHelpQuit       = "help.quit"
	KeyHelpLanguage   = "help.language"
	KeyHelpToggleHelp = "help.toggle_help"

	KeyHomeWelcome       = "home.welcome"
	KeyHomeSubtitle      = "home.subtitle"
	KeyHomeFeatureSelect = "home.feature_select"
	KeyHomeFeatureStyle  = "home.feature_style"
	KeyHomeFeatureSave   = "home.feature_save"
	KeyHomeFeatureMega   = "home.feature_mega"
	KeyHomeStart         = "home.start"

	KeyProductsTitle      = "products.title"
	KeyProductsSubtitle   = "products.subtitle"
	KeyProductsSelected   = "products.selected"
	KeyProductsSelectAll  = "products.select_all"
	KeyProductsDeselect   = "products.deselect_all"
	KeyProductsCreateMega = "products.create_mega"
	KeyProductsCreateWith = "products.create_with_selected"
	KeyProductsToggleHint = "products.toggle_hint"

	KeyCustomizeTitle       = "customize.title"
	KeyCustomizeName        = "customize.name"
	KeyCustomizePlaceholder = "customize.placeholder"
	KeyCustomizeCover       = "customize.cover"
	KeyCustomizePaper       = "customize.paper"
	KeyCustomizePreview     = "customize.preview"
	KeyCustomizeProducts    = "customize.products"
	KeyCustomizeCreate      = "customize.create"
	KeyCustomizeHint        = "customize.hint"
	KeyCustomizeSaving      = "customize.saving"

	KeyLibraryTitle       = "library.title"
	KeyLibrarySubtitle    = "library.subtitle"
	KeyLibraryEmpty       = "library.empty"
	KeyLibraryCreateFirst = "library.create_first"
	KeyLibraryCover       = "library.cover"
	KeyLibraryPaper       = "library.paper"
	KeyLibraryMore        = "library.more"
	KeyLibraryProducts    = "library.products"
	KeyLibraryHint        = "library.hint"

	KeyDeleteTitle   = "delete.title"
	KeyDeleteConfirm = "delete.confirm"
	KeyDeleted       = "delete.done"

	KeyCommonCancel = "common.cancel"
	KeyCommonDelete = "common.delete"
	KeyCommonError  = "common.error"
	KeyCommonOK     = "common.ok"

	KeyCLICancelled     = "cli.cancelled"
	KeyCLICreateHint    = "cli.create_hint"
	KeyCLICreatedLabel  = "cli.created_label"
	KeyErrTerminalSmall = "error.terminal_small"

	KeyErrEmptyName     = "error.empty_name"
	KeyErrEmptySelect   = "error.empty_selection"
	KeyErrPersistence   = "error.persistence"
	KeyErrLoad          = "error.load"
	KeyErrUnknown       = "error.unknown"
	KeyCreatedMessage   = "success.created"
	KeyCategoryPrefix   = "category."
	KeyMegaBadge        = "badge.mega"
	KeyProductCountUnit = "unit.products"
)
