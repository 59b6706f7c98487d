package models

// Expense categories. The set is closed; CategoryOther is the catch-all.
const (
	CategoryFoodDining    = "Food & Dining"
	CategoryTransport     = "Transportation"
	CategoryShopping      = "Shopping"
	CategoryEntertainment = "Entertainment"
	CategoryBills         = "Bills & Utilities"
	CategoryHealthcare    = "Healthcare"
	CategoryTravel        = "Travel"
	CategoryEducation     = "Education"
	CategoryBusiness      = "Business"
	CategoryOther         = "Other"
)

var categoryNames = []string{
	CategoryFoodDining,
	CategoryTransport,
	CategoryShopping,
	CategoryEntertainment,
	CategoryBills,
	CategoryHealthcare,
	CategoryTravel,
	CategoryEducation,
	CategoryBusiness,
	CategoryOther,
}

// CategoryNames returns the closed category set in display order.
// The returned slice is a copy.
func CategoryNames() []string {
	out := make([]string, len(categoryNames))
	copy(out, categoryNames)
	return out
}

// IsKnownCategory reports whether name is one of the ten categories.
func IsKnownCategory(name string) bool {
	for _, c := range categoryNames {
		if c == name {
			return true
		}
	}
	return false
}

// Category is the result of classifying a transcript.
type Category struct {
	Name  string
	Score int
}

// CategoryConfig represents one category entry of the taxonomy YAML file.
type CategoryConfig struct {
	Name     string   `yaml:"name"`
	Keywords []string `yaml:"keywords,omitempty"`
}

// CategoriesConfig represents the structure of the taxonomy YAML file.
type CategoriesConfig struct {
	Categories []CategoryConfig `yaml:"categories"`
}

// PhraseBonus adds Bonus to Category when every phrase in All occurs in the text.
type PhraseBonus struct {
	Category string
	All      []string
	Bonus    int
}
