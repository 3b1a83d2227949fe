package web

import (
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/trendscout/skimmer/internal/model"
)

// Direction is a sort direction.
type Direction int

const (
	Ascending Direction = iota
	Descending
)

// SortSpec is the table's sort state: which column is current and in which
// direction. The zero value means "no sort applied".
type SortSpec struct {
	Column string
	Dir    Direction
}

// Click applies the header-click contract: clicking the current column
// toggles direction, clicking a different column makes it current
// ascending.
func (s SortSpec) Click(column string) SortSpec {
	if s.Column == column {
		if s.Dir == Ascending {
			return SortSpec{Column: column, Dir: Descending}
		}
		return SortSpec{Column: column, Dir: Ascending}
	}
	return SortSpec{Column: column, Dir: Ascending}
}

// numericColumns marks which sort keys compare as floats; the rest compare
// as locale-aware strings.
var numericColumns = map[string]bool{
	"price":      true,
	"commission": true,
	"agentScore": true,
	"virality":   true,
	"views7d":    true,
	"rating":     true,
}

// sortableColumns is the full set of column keys headers can click.
var sortableColumns = map[string]bool{
	"name": true, "category": true, "price": true, "commission": true,
	"agentScore": true, "virality": true, "views7d": true, "rating": true,
}

func numericKey(p model.Product, column string) float64 {
	switch column {
	case "price":
		return p.Price
	case "commission":
		return p.Commission
	case "agentScore":
		return p.AgentScore
	case "virality":
		return p.Virality
	case "views7d":
		return p.Views7d
	case "rating":
		return p.Rating
	default:
		return 0
	}
}

func textKey(p model.Product, column string) string {
	switch column {
	case "name":
		return p.Name
	case "category":
		return p.Category
	default:
		return ""
	}
}

// ApplySort returns a copy of products ordered by the given column and
// direction. The underlying sort is stable, so rows with equal keys keep
// their prior relative order.
// An empty or unknown column leaves the order untouched.
func ApplySort(products []model.Product, spec SortSpec) []model.Product {
	out := make([]model.Product, len(products))
	copy(out, products)

	if spec.Column == "" || !sortableColumns[spec.Column] {
		return out
	}

	if numericColumns[spec.Column] {
		sort.SliceStable(out, func(i, j int) bool {
			a, b := numericKey(out[i], spec.Column), numericKey(out[j], spec.Column)
			if spec.Dir == Descending {
				return a > b
			}
			return a < b
		})
		return out
	}

	c := collate.New(language.English, collate.IgnoreCase)
	sort.SliceStable(out, func(i, j int) bool {
		cmp := c.CompareString(textKey(out[i], spec.Column), textKey(out[j], spec.Column))
		if spec.Dir == Descending {
			return cmp > 0
		}
		return cmp < 0
	})
	return out
}

// ApplyFilter returns the rows whose name or category contains the term,
// case-insensitively. Filtering never reorders; an empty term keeps every
// row.
func ApplyFilter(products []model.Product, term string) []model.Product {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		out := make([]model.Product, len(products))
		copy(out, products)
		return out
	}

	var out []model.Product
	for _, p := range products {
		if strings.Contains(strings.ToLower(p.Name), term) ||
			strings.Contains(strings.ToLower(p.Category), term) {
			out = append(out, p)
		}
	}
	return out
}
