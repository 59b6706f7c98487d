// Package categorizer assigns one of the closed set of expense categories to
// a transcript by weighted keyword scoring.
package categorizer

import (
	"fmt"
	"regexp"
	"strings"

	"fjacquet/voice-expense/internal/models"
	"fjacquet/voice-expense/internal/parsererror"
	"fjacquet/voice-expense/internal/textutils"
)

// Taxonomy is an ordered list of categories and their keywords plus phrase
// bonus rules. Declaration order is the tie-break order. A Taxonomy is
// immutable once built and safe for concurrent use.
type Taxonomy struct {
	categories []models.CategoryConfig
	bonuses    []models.PhraseBonus
	patterns   map[string]*regexp.Regexp
}

var defaultCategories = []models.CategoryConfig{
	{Name: models.CategoryFoodDining, Keywords: []string{
		"food", "dining", "restaurant", "lunch", "dinner", "breakfast", "coffee", "cafe", "pizza",
		"burger", "meal", "snack", "grocery", "groceries", "mcdonalds", "starbucks", "subway",
		"eat", "ate", "hungry", "kitchen", "cooking", "recipe", "takeout", "delivery", "uber eats",
		"doordash", "grubhub", "fast food", "fine dining", "buffet", "brunch",
	}},
	{Name: models.CategoryHealthcare, Keywords: []string{
		"doctor", "doctors", "dr", "hospital", "medical", "medicine", "pharmacy", "dentist", "health", "clinic",
		"prescription", "checkup", "appointment", "surgery", "treatment", "therapy", "insurance",
		"copay", "deductible", "medication", "pills", "vaccine", "examination", "specialist",
		"visit", "consultation", "physician", "nurse", "patient", "diagnosis", "symptoms",
		"medical bill", "healthcare", "wellness", "physical", "blood test", "x-ray", "scan",
	}},
	{Name: models.CategoryTransport, Keywords: []string{
		"gas", "fuel", "uber", "taxi", "bus", "train", "parking", "car", "transport", "metro",
		"subway", "flight", "airline", "lyft", "vehicle", "maintenance", "repair", "oil change",
		"registration", "insurance", "toll", "bridge", "highway", "commute",
	}},
	{Name: models.CategoryShopping, Keywords: []string{
		"shopping", "clothes", "clothing", "shoes", "amazon", "store", "mall", "purchase", "buy",
		"bought", "target", "walmart", "costco", "online", "retail", "fashion", "accessories",
		"electronics", "gadget", "phone", "computer", "laptop",
	}},
	{Name: models.CategoryEntertainment, Keywords: []string{
		"movie", "cinema", "theater", "concert", "game", "entertainment", "fun", "party", "bar",
		"club", "music", "netflix", "spotify", "streaming", "tickets", "show", "performance",
		"sports", "hobby", "recreation", "amusement", "festival",
	}},
	{Name: models.CategoryBills, Keywords: []string{
		"bill", "utility", "electric", "electricity", "water", "internet", "phone", "rent",
		"mortgage", "insurance", "cable", "subscription", "monthly", "payment", "service",
		"maintenance", "repair", "home", "house", "apartment",
	}},
	{Name: models.CategoryTravel, Keywords: []string{
		"hotel", "vacation", "trip", "travel", "flight", "booking", "airbnb", "resort", "tourism",
		"holiday", "destination", "luggage", "passport", "visa", "cruise", "adventure",
		"sightseeing", "accommodation",
	}},
	{Name: models.CategoryEducation, Keywords: []string{
		"school", "education", "book", "course", "tuition", "class", "learning", "university",
		"college", "student", "textbook", "supplies", "workshop", "seminar", "training",
		"certification", "degree", "academic",
	}},
	{Name: models.CategoryBusiness, Keywords: []string{
		"business", "office", "work", "meeting", "conference", "supplies", "equipment",
		"professional", "client", "project", "service", "consulting", "networking",
		"presentation", "software", "tools",
	}},
	{Name: models.CategoryOther},
}

// DefaultPhraseBonuses favour Healthcare for common appointment phrasings
// that would otherwise tie with other categories.
var DefaultPhraseBonuses = []models.PhraseBonus{
	{Category: models.CategoryHealthcare, All: []string{"doctor", "visit"}, Bonus: 5},
	{Category: models.CategoryHealthcare, All: []string{"medical", "appointment"}, Bonus: 5},
	{Category: models.CategoryHealthcare, All: []string{"dentist", "visit"}, Bonus: 5},
}

var defaultTaxonomy = mustTaxonomy(defaultCategories, DefaultPhraseBonuses)

// DefaultTaxonomy returns the built-in taxonomy.
func DefaultTaxonomy() *Taxonomy {
	return defaultTaxonomy
}

func mustTaxonomy(configs []models.CategoryConfig, bonuses []models.PhraseBonus) *Taxonomy {
	t, err := NewTaxonomy(configs, bonuses)
	if err != nil {
		panic(err)
	}
	return t
}

// NewTaxonomy validates configs and bonuses and builds a Taxonomy. Every
// category must belong to the closed set and appear at most once, and
// "Other" must be the last entry and carry no keywords. Keywords are
// lower-cased and blank ones dropped.
func NewTaxonomy(configs []models.CategoryConfig, bonuses []models.PhraseBonus) (*Taxonomy, error) {
	if len(configs) == 0 {
		return nil, &parsererror.ValidationError{Field: "categories", Reason: "at least one category is required"}
	}

	seen := make(map[string]bool, len(configs))
	t := &Taxonomy{
		categories: make([]models.CategoryConfig, 0, len(configs)),
		patterns:   make(map[string]*regexp.Regexp),
	}

	for i, c := range configs {
		if !models.IsKnownCategory(c.Name) {
			return nil, &parsererror.ValidationError{Field: "category", Value: c.Name, Reason: "not a known category"}
		}
		if seen[c.Name] {
			return nil, &parsererror.ValidationError{Field: "category", Value: c.Name, Reason: "declared more than once"}
		}
		seen[c.Name] = true

		if c.Name == models.CategoryOther {
			if i != len(configs)-1 {
				return nil, &parsererror.ValidationError{Field: "category", Value: c.Name, Reason: "must be declared last"}
			}
			if len(c.Keywords) > 0 {
				return nil, &parsererror.ValidationError{Field: "category", Value: c.Name, Reason: "must not have keywords"}
			}
		}

		keywords := make([]string, 0, len(c.Keywords))
		for _, kw := range c.Keywords {
			kw = strings.ToLower(strings.TrimSpace(kw))
			if kw == "" {
				continue
			}
			keywords = append(keywords, kw)
			if _, ok := t.patterns[kw]; !ok {
				t.patterns[kw] = textutils.WholeWordPattern(kw)
			}
		}
		t.categories = append(t.categories, models.CategoryConfig{Name: c.Name, Keywords: keywords})
	}

	if !seen[models.CategoryOther] {
		return nil, &parsererror.ValidationError{Field: "categories", Value: models.CategoryOther, Reason: "catch-all category is missing"}
	}

	for _, b := range bonuses {
		if !seen[b.Category] || b.Category == models.CategoryOther {
			return nil, &parsererror.ValidationError{Field: "bonus", Value: b.Category, Reason: "bonus category is not scorable"}
		}
		if len(b.All) == 0 || b.Bonus <= 0 {
			return nil, &parsererror.ValidationError{Field: "bonus", Value: b.Category, Reason: fmt.Sprintf("needs phrases and a positive bonus, got %d phrases and %d", len(b.All), b.Bonus)}
		}
		phrases := make([]string, len(b.All))
		for i, p := range b.All {
			phrases[i] = strings.ToLower(p)
		}
		t.bonuses = append(t.bonuses, models.PhraseBonus{Category: b.Category, All: phrases, Bonus: b.Bonus})
	}

	return t, nil
}

// Names returns the category names in declaration order.
func (t *Taxonomy) Names() []string {
	names := make([]string, len(t.categories))
	for i, c := range t.categories {
		names[i] = c.Name
	}
	return names
}

// Keywords returns a copy of the keywords of the named category, nil when the
// category is unknown or has none.
func (t *Taxonomy) Keywords(name string) []string {
	for _, c := range t.categories {
		if c.Name == name {
			if len(c.Keywords) == 0 {
				return nil
			}
			out := make([]string, len(c.Keywords))
			copy(out, c.Keywords)
			return out
		}
	}
	return nil
}

// Categories returns a copy of the category entries in declaration order.
func (t *Taxonomy) Categories() []models.CategoryConfig {
	out := make([]models.CategoryConfig, len(t.categories))
	for i, c := range t.categories {
		out[i] = models.CategoryConfig{Name: c.Name, Keywords: t.Keywords(c.Name)}
	}
	return out
}

// PhraseBonuses returns a copy of the bonus rules.
func (t *Taxonomy) PhraseBonuses() []models.PhraseBonus {
	out := make([]models.PhraseBonus, len(t.bonuses))
	copy(out, t.bonuses)
	return out
}

// Len returns the number of categories.
func (t *Taxonomy) Len() int {
	return len(t.categories)
}
