package catalog

// Color is a hex color value such as "#3b82f6".
type Color string

// CoverStyle is a cover option for a composed product.
type CoverStyle struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Gradient [2]Color `json:"gradient"`
	Accent   Color    `json:"accent_color"`
}

// Pattern is the ruling printed on a paper type.
type Pattern string

const (
	PatternLined  Pattern = "lined"
	PatternGrid   Pattern = "grid"
	PatternDotted Pattern = "dotted"
	PatternBlank  Pattern = "blank"
	PatternGuided Pattern = "guided"
)

// PaperType is a paper option for a composed product.
type PaperType struct {
	ID      string  `json:"id"`
	Name    string  `json:"name"`
	Pattern Pattern `json:"pattern"`
}

var covers = []CoverStyle{
	{ID: "elegant", Name: "Elegant", Gradient: [2]Color{"#1e3a8a", "#3b82f6"}, Accent: "#3b82f6"},
	{ID: "floral", Name: "Floral", Gradient: [2]Color{"#881337", "#f43f5e"}, Accent: "#f43f5e"},
	{ID: "nature", Name: "Nature", Gradient: [2]Color{"#064e3b", "#10b981"}, Accent: "#10b981"},
	{ID: "sunset", Name: "Sunset", Gradient: [2]Color{"#ea580c", "#fbbf24"}, Accent: "#f59e0b"},
	{ID: "lavender", Name: "Lavender", Gradient: [2]Color{"#6b21a8", "#a855f7"}, Accent: "#a855f7"},
	{ID: "ocean", Name: "Ocean", Gradient: [2]Color{"#0c4a6e", "#0ea5e9"}, Accent: "#0ea5e9"},
	{ID: "rose", Name: "Rose", Gradient: [2]Color{"#9f1239", "#fb7185"}, Accent: "#fb7185"},
	{ID: "forest", Name: "Forest", Gradient: [2]Color{"#14532d", "#22c55e"}, Accent: "#22c55e"},
}

var papers = []PaperType{
	{ID: "lined", Name: "Lined", Pattern: PatternLined},
	{ID: "grid", Name: "Grid", Pattern: PatternGrid},
	{ID: "dotted", Name: "Dotted", Pattern: PatternDotted},
	{ID: "blank", Name: "Blank", Pattern: PatternBlank},
	{ID: "guided", Name: "Guided", Pattern: PatternGuided},
}

// Covers returns the cover styles in display order.
func Covers() []CoverStyle {
	out := make([]CoverStyle, len(covers))
	copy(out, covers)
	return out
}

// LookupCover finds a cover style by id.
func LookupCover(id string) (CoverStyle, bool) {
	for _, c := range covers {
		if c.ID == id {
			return c, true
		}
	}
	return CoverStyle{}, false
}

// DefaultCover is preselected on the customize screen.
func DefaultCover() CoverStyle {
	return covers[0]
}

// Papers returns the paper types in display order.
func Papers() []PaperType {
	out := make([]PaperType, len(papers))
	copy(out, papers)
	return out
}

// LookupPaper finds a paper type by id.
func LookupPaper(id string) (PaperType, bool) {
	for _, p := range papers {
		if p.ID == id {
			return p, true
		}
	}
	return PaperType{}, false
}

// DefaultPaper is preselected on the customize screen.
func DefaultPaper() PaperType {
	return papers[0]
}
