package catalog

var defaultProducts = []Product{
	{
		ID:            "p1",
		Category:      CategoryNotebooks,
		NameEn:        "Classic Notebook",
		NameEs:        "Cuaderno Clásico",
		DescriptionEn: "Numbered pages for notes, ideas and sketches",
		DescriptionEs: "Páginas numeradas para notas, ideas y bocetos",
	},
	{
		ID:            "p2",
		Category:      CategoryJournals,
		NameEn:        "Daily Journal",
		NameEs:        "Diario Personal",
		DescriptionEn: "Guided prompts to reflect on each day",
		DescriptionEs: "Preguntas guiadas para reflexionar cada día",
	},
	{
		ID:            "p3",
		Category:      CategoryWellness,
		NameEn:        "Wellness Log",
		NameEs:        "Registro de Bienestar",
		DescriptionEn: "Sleep, water, mood and self-care check-ins",
		DescriptionEs: "Sueño, agua, ánimo y autocuidado",
	},
	{
		ID:            "p4",
		Category:      CategoryAgendas,
		NameEn:        "Weekly Agenda",
		NameEs:        "Agenda Semanal",
		DescriptionEn: "Week-at-a-glance spreads with appointments",
		DescriptionEs: "Vista semanal con citas y pendientes",
	},
	{
		ID:            "p5",
		Category:      CategoryPlanners,
		NameEn:        "Monthly Planner",
		NameEs:        "Planificador Mensual",
		DescriptionEn: "Plan priorities, deadlines and events per month",
		DescriptionEs: "Planifica prioridades, fechas y eventos cada mes",
	},
	{
		ID:            "p6",
		Category:      CategoryTrackers,
		NameEn:        "Habit Tracker",
		NameEs:        "Rastreador de Hábitos",
		DescriptionEn: "Build streaks for the habits that matter",
		DescriptionEs: "Construye rachas con los hábitos importantes",
	},
	{
		ID:            "p7",
		Category:      CategoryCalendars,
		NameEn:        "Year Calendar",
		NameEs:        "Calendario Anual",
		DescriptionEn: "Twelve months on one page for long-range planning",
		DescriptionEs: "Doce meses en una página para planificar a largo plazo",
	},
	{
		ID:            "p8",
		Category:      CategoryReviews,
		NameEn:        "Monthly Review",
		NameEs:        "Revisión Mensual",
		DescriptionEn: "Look back on wins, lessons and next steps",
		DescriptionEs: "Repasa logros, aprendizajes y próximos pasos",
	},
	{
		ID:            "p9",
		Category:      CategoryOrganizers,
		NameEn:        "Home Organizer",
		NameEs:        "Organizador del Hogar",
		DescriptionEn: "Chores, meal plans and shopping lists",
		DescriptionEs: "Tareas, menús y listas de compras",
	},
	{
		ID:            "p10",
		Category:      CategoryGuides,
		NameEn:        "Study Guide",
		NameEs:        "Guía de Estudio",
		DescriptionEn: "Summaries, key concepts and review questions",
		DescriptionEs: "Resúmenes, conceptos clave y preguntas de repaso",
	},
	{
		ID:            "p11",
		Category:      CategoryWriting,
		NameEn:        "Writing Pad",
		NameEs:        "Bloc de Escritura",
		DescriptionEn: "Free space for stories, letters and drafts",
		DescriptionEs: "Espacio libre para historias, cartas y borradores",
	},
	{
		ID:            "p12",
		Category:      CategoryTemplates,
		NameEn:        "Template Pack",
		NameEs:        "Paquete de Plantillas",
		DescriptionEn: "Checklists, tables and reusable layouts",
		DescriptionEs: "Listas, tablas y diseños reutilizables",
	},
	{
		ID:            "p13",
		Category:      CategoryExercises,
		NameEn:        "Workout Log",
		NameEs:        "Registro de Ejercicio",
		DescriptionEn: "Sets, reps and progress for every session",
		DescriptionEs: "Series, repeticiones y progreso de cada sesión",
	},
	{
		ID:            "p14",
		Category:      CategoryBusiness,
		NameEn:        "Business Planner",
		NameEs:        "Planificador de Negocios",
		DescriptionEn: "Clients, projects, income and expenses",
		DescriptionEs: "Clientes, proyectos, ingresos y gastos",
	},
	{
		ID:            "p15",
		Category:      CategoryGoals,
		NameEn:        "Goal Setter",
		NameEs:        "Definidor de Metas",
		DescriptionEn: "Break big goals into milestones and actions",
		DescriptionEs: "Divide metas grandes en hitos y acciones",
	},
}

var defaultCatalog = MustNew(defaultProducts)

// Default returns the built-in product catalog.
func Default() *Catalog {
	return defaultCatalog
}
