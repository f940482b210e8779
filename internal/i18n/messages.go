package i18n

var messages = map[Language]map[string]string{
	English: {
		KeyAppName:        "Inkwell",
		KeyTabHome:        "Home",
		KeyTabProducts:    "Products",
		KeyTabCustomize:   "Customize",
		KeyTabLibrary:     "Library",
		KeyLanguageName:   "English",
		KeyHelpNavigation: "1-4/tab: switch screen",
		KeyHelpQuit:       "q: quit",
		KeyHelpLanguage:   "L: language",
		KeyHelpToggleHelp: "?: help",

		KeyHomeWelcome:       "Welcome",
		KeyHomeSubtitle:      "Design your own stationery, one page type at a time.",
		KeyHomeFeatureSelect: "Pick from %d product types across %d categories",
		KeyHomeFeatureStyle:  "Choose a cover style and a paper type",
		KeyHomeFeatureSave:   "Save your creations to a personal library",
		KeyHomeFeatureMega:   "Select everything to build a MEGA product",
		KeyHomeStart:         "Press 2 to start choosing products",

		KeyProductsTitle:      "Products",
		KeyProductsSubtitle:   "Select the page types to include",
		KeyProductsSelected:   "%d selected",
		KeyProductsSelectAll:  "Select all",
		KeyProductsDeselect:   "Deselect all",
		KeyProductsCreateMega: "Create mega product",
		KeyProductsCreateWith: "Create with selected",
		KeyProductsToggleHint: "space: toggle  a: select all  enter: continue",

		KeyCustomizeTitle:       "Customize",
		KeyCustomizeName:        "Product Name",
		KeyCustomizePlaceholder: "My Journal 2024",
		KeyCustomizeCover:       "Cover",
		KeyCustomizePaper:       "Paper",
		KeyCustomizePreview:     "Preview",
		KeyCustomizeProducts:    "products",
		KeyCustomizeCreate:      "Create Product",
		KeyCustomizeHint:        "tab: next field  ←/→: choose  enter: create",
		KeyCustomizeSaving:      "Saving...",

		KeyLibraryTitle:       "My Library",
		KeyLibrarySubtitle:    "%d saved products",
		KeyLibraryEmpty:       "Your library is empty",
		KeyLibraryCreateFirst: "Press 2 to create your first product",
		KeyLibraryCover:       "Cover",
		KeyLibraryPaper:       "Paper",
		KeyLibraryMore:        "+%d more",
		KeyLibraryProducts:    "Products",
		KeyLibraryHint:        "↑/↓: move  d: delete",

		KeyDeleteTitle:   "Delete",
		KeyDeleteConfirm: "Delete %q? (y/n)",
		KeyDeleted:       "Deleted %q",

		KeyCommonCancel: "Cancel",
		KeyCommonDelete: "Delete",
		KeyCommonError:  "Error",
		KeyCommonOK:     "OK",

		KeyCLICancelled:     "Cancelled.",
		KeyCLICreateHint:    "Run 'inkwell library create --name <name> --products <ids>' to save your first product.",
		KeyCLICreatedLabel:  "Created",
		KeyErrTerminalSmall: "Terminal too small (%dx%d). Minimum size: %dx%d",

		KeyErrEmptyName:     "Please enter a name",
		KeyErrEmptySelect:   "Select at least one product",
		KeyErrPersistence:   "Saved in memory, but writing the library failed",
		KeyErrLoad:          "Could not read the library; starting with an empty one",
		KeyErrUnknown:       "Something went wrong",
		KeyCreatedMessage:   "Product created successfully!",
		KeyMegaBadge:        "MEGA",
		KeyProductCountUnit: "products",

		KeyCategoryPrefix + "notebooks":  "Notebooks",
		KeyCategoryPrefix + "journals":   "Journals",
		KeyCategoryPrefix + "wellness":   "Wellness",
		KeyCategoryPrefix + "agendas":    "Agendas",
		KeyCategoryPrefix + "planners":   "Planners",
		KeyCategoryPrefix + "trackers":   "Trackers",
		KeyCategoryPrefix + "calendars":  "Calendars",
		KeyCategoryPrefix + "reviews":    "Reviews",
		KeyCategoryPrefix + "organizers": "Organizers",
		KeyCategoryPrefix + "guides":     "Guides",
		KeyCategoryPrefix + "writing":    "Writing",
		KeyCategoryPrefix + "templates":  "Templates",
		KeyCategoryPrefix + "exercises":  "Exercises",
		KeyCategoryPrefix + "business":   "Business",
		KeyCategoryPrefix + "goals":      "Goals",
	},
	Spanish: {
		KeyAppName:        "Inkwell",
		KeyTabHome:        "Inicio",
		KeyTabProducts:    "Productos",
		KeyTabCustomize:   "Personalizar",
		KeyTabLibrary:     "Biblioteca",
		KeyLanguageName:   "Español",
		KeyHelpNavigation: "1-4/tab: cambiar pantalla",
		KeyHelpQuit:       "q: salir",
		KeyHelpLanguage:   "L: idioma",
		KeyHelpToggleHelp: "?: ayuda",

		KeyHomeWelcome:       "Bienvenido",
		KeyHomeSubtitle:      "Diseña tu propia papelería, un tipo de página a la vez.",
		KeyHomeFeatureSelect: "Elige entre %d tipos de producto en %d categorías",
		KeyHomeFeatureStyle:  "Escoge un estilo de portada y un tipo de papel",
		KeyHomeFeatureSave:   "Guarda tus creaciones en una biblioteca personal",
		KeyHomeFeatureMega:   "Selecciona todo para crear un producto MEGA",
		KeyHomeStart:         "Presiona 2 para empezar a elegir productos",

		KeyProductsTitle:      "Productos",
		KeyProductsSubtitle:   "Selecciona los tipos de página a incluir",
		KeyProductsSelected:   "%d seleccionados",
		KeyProductsSelectAll:  "Seleccionar todo",
		KeyProductsDeselect:   "Deseleccionar todo",
		KeyProductsCreateMega: "Crear producto mega",
		KeyProductsCreateWith: "Crear con seleccionados",
		KeyProductsToggleHint: "espacio: marcar  a: seleccionar todo  enter: continuar",

		KeyCustomizeTitle:       "Personalizar",
		KeyCustomizeName:        "Nombre del Producto",
		KeyCustomizePlaceholder: "Mi Diario 2024",
		KeyCustomizeCover:       "Portada",
		KeyCustomizePaper:       "Papel",
		KeyCustomizePreview:     "Vista Previa",
		KeyCustomizeProducts:    "productos",
		KeyCustomizeCreate:      "Crear Producto",
		KeyCustomizeHint:        "tab: siguiente campo  ←/→: elegir  enter: crear",
		KeyCustomizeSaving:      "Guardando...",

		KeyLibraryTitle:       "Mi Biblioteca",
		KeyLibrarySubtitle:    "%d productos guardados",
		KeyLibraryEmpty:       "Tu biblioteca está vacía",
		KeyLibraryCreateFirst: "Presiona 2 para crear tu primer producto",
		KeyLibraryCover:       "Portada",
		KeyLibraryPaper:       "Papel",
		KeyLibraryMore:        "+%d más",
		KeyLibraryProducts:    "Productos",
		KeyLibraryHint:        "↑/↓: mover  d: eliminar",

		KeyDeleteTitle:   "Eliminar",
		KeyDeleteConfirm: "¿Eliminar %q? (s/n)",
		KeyDeleted:       "Se eliminó %q",

		KeyCommonCancel: "Cancelar",
		KeyCommonDelete: "Eliminar",
		KeyCommonError:  "Error",
		KeyCommonOK:     "Aceptar",

		KeyCLICancelled:     "Cancelado.",
		KeyCLICreateHint:    "Ejecuta 'inkwell library create --name <nombre> --products <ids>' para guardar tu primer producto.",
		KeyCLICreatedLabel:  "Creado",
		KeyErrTerminalSmall: "Terminal demasiado pequeña (%dx%d). Tamaño mínimo: %dx%d",

		KeyErrEmptyName:     "Por favor ingresa un nombre",
		KeyErrEmptySelect:   "Selecciona al menos un producto",
		KeyErrPersistence:   "Guardado en memoria, pero no se pudo escribir la biblioteca",
		KeyErrLoad:          "No se pudo leer la biblioteca; se inicia vacía",
		KeyErrUnknown:       "Algo salió mal",
		KeyCreatedMessage:   "¡Producto creado exitosamente!",
		KeyMegaBadge:        "MEGA",
		KeyProductCountUnit: "productos",

		KeyCategoryPrefix + "notebooks":  "Cuadernos",
		KeyCategoryPrefix + "journals":   "Diarios",
		KeyCategoryPrefix + "wellness":   "Bienestar",
		KeyCategoryPrefix + "agendas":    "Agendas",
		KeyCategoryPrefix + "planners":   "Planificadores",
		KeyCategoryPrefix + "trackers":   "Seguimiento",
		KeyCategoryPrefix + "calendars":  "Calendarios",
		KeyCategoryPrefix + "reviews":    "Revisiones",
		KeyCategoryPrefix + "organizers": "Organizadores",
		KeyCategoryPrefix + "guides":     "Guías",
		KeyCategoryPrefix + "writing":    "Escritura",
		KeyCategoryPrefix + "templates":  "Plantillas",
		KeyCategoryPrefix + "exercises":  "Ejercicios",
		KeyCategoryPrefix + "business":   "Negocios",
		KeyCategoryPrefix + "goals":      "Metas",
	},
}
