package store

import (
	"sort"
	"strings"

	"pos-catalog/internal/domain"
)

// FilterProducts returns the products whose name contains query
// (case-insensitive) and whose category matches. An empty or "All" category
// matches everything. The source order is kept.
func FilterProducts(products []domain.Product, query, category string) []domain.Product {
	needle := ""
	if strings.TrimSpace(query) != "" {
		needle = strings.ToLower(query)
	}
	category = strings.TrimSpace(category)
	anyCategory := category == "" || strings.EqualFold(category, domain.CategoryAll)

	out := make([]domain.Product, 0, len(products))
	for _, p := range products {
		if needle != "" && !strings.Contains(strings.ToLower(p.Name), needle) {
			continue
		}
		if !anyCategory && p.CategoryLabel() != category {
			continue
		}
		out = append(out, p)
	}
	return out
}

// Categories returns the distinct category labels of the products, sorted.
func Categories(products []domain.Product) []string {
	seen := make(map[string]struct{}, len(products))
	out := []string{}
	for _, p := range products {
		label := p.CategoryLabel()
		if _, ok := seen[label]; ok {
			continue
		}
		seen[label] = struct{}{}
		out = append(out, label)
	}
	sort.Strings(out)
	return out
}

// CategoryOptions returns the selector options: "All" followed by Categories.
func CategoryOptions(products []domain.Product) []string {
	return append([]string{domain.CategoryAll}, Categories(products)...)
}
