package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultCatalog(t *testing.T) {
	c := Default()

	require.NoError(t, c.Validate())
	assert.Equal(t, 15, c.Len())
	assert.Len(t, Categories(), 15)

	seen := make(map[Category]bool)
	for _, p := range c.Products() {
		seen[p.Category] = true
	}
	assert.Len(t, seen, 15, "default catalog covers every category once")
}

func TestNew_RejectsInvalidProducts(t *testing.T) {
	tests := []struct {
		name     string
		products []Product
		wantErr  string
	}{
		{name: "empty", products: nil, wantErr: "catalog is empty"},
		{
			name:     "missing id",
			products: []Product{{Category: CategoryGoals, NameEn: "Goals"}},
			wantErr:  "id is required",
		},
		{
			name: "duplicate id",
			products: []Product{
				{ID: "a", Category: CategoryGoals, NameEn: "A"},
				{ID: "a", Category: CategoryGoals, NameEn: "B"},
			},
			wantErr: "duplicate id",
		},
		{
			name:     "unknown category",
			products: []Product{{ID: "a", Category: "stickers", NameEn: "A"}},
			wantErr:  "unknown category",
		},
		{
			name:     "blank name",
			products: []Product{{ID: "a", Category: CategoryGoals, NameEn: "  "}},
			wantErr:  "english name is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.products)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestCatalog_Lookup(t *testing.T) {
	c := Default()

	p, ok := c.Lookup("p5")
	require.True(t, ok)
	assert.Equal(t, CategoryPlanners, p.Category)
	assert.True(t, c.Contains("p5"))

	_, ok = c.Lookup("p99")
	assert.False(t, ok)
	assert.False(t, c.Contains("p99"))
}

func TestCatalog_ProductsReturnsCopy(t *testing.T) {
	c := Default()

	products := c.Products()
	products[0].NameEn = "changed"

	p, _ := c.Lookup(products[0].ID)
	assert.NotEqual(t, "changed", p.NameEn)
}

func TestCatalog_GroupByCategory(t *testing.T) {
	c := MustNew([]Product{
		{ID: "a", Category: CategoryGoals, NameEn: "A"},
		{ID: "b", Category: CategoryNotebooks, NameEn: "B"},
		{ID: "c", Category: CategoryGoals, NameEn: "C"},
	})

	groups := c.GroupByCategory()
	require.Len(t, groups, 2)

	assert.Equal(t, CategoryNotebooks, groups[0].Category)
	assert.Equal(t, CategoryGoals, groups[1].Category)
	require.Len(t, groups[1].Products, 2)
	assert.Equal(t, "a", groups[1].Products[0].ID)
	assert.Equal(t, "c", groups[1].Products[1].ID)
}

func TestProduct_LocalizedText(t *testing.T) {
	p := Product{ID: "x", NameEn: "Notebook", NameEs: "Cuaderno", DescriptionEn: "Notes"}

	assert.Equal(t, "Notebook", p.Name(LanguageEnglish))
	assert.Equal(t, "Cuaderno", p.Name(LanguageSpanish))
	assert.Equal(t, "Notes", p.Description(LanguageSpanish), "missing translation falls back to English")
}

func TestStyles(t *testing.T) {
	assert.Len(t, Covers(), 8)
	assert.Len(t, Papers(), 5)

	ocean, ok := LookupCover("ocean")
	require.True(t, ok)
	assert.Equal(t, Color("#0ea5e9"), ocean.Accent)

	grid, ok := LookupPaper("grid")
	require.True(t, ok)
	assert.Equal(t, PatternGrid, grid.Pattern)

	_, ok = LookupCover("plaid")
	assert.False(t, ok)

	assert.Equal(t, "elegant", DefaultCover().ID)
	assert.Equal(t, "lined", DefaultPaper().ID)
}
