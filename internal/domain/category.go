package domain

const (
	// CategoryUncategorized is the category of products without one.
	CategoryUncategorized = "Uncategorized"
	// CategoryAll selects every category when filtering.
	CategoryAll = "All"
)
