package categorizer

import (
	"strings"

	"fjacquet/voice-expense/internal/logging"
	"fjacquet/voice-expense/internal/models"
)

// Score is the keyword score of one category for a transcript.
type Score struct {
	Category string
	Value    int
}

// Classifier scores a lower-cased transcript against a Taxonomy.
type Classifier struct {
	taxonomy *Taxonomy
	logger   logging.Logger
}

// NewClassifier creates a Classifier. A nil taxonomy selects the default one
// and a nil logger the package default.
func NewClassifier(taxonomy *Taxonomy, logger logging.Logger) *Classifier {
	if taxonomy == nil {
		taxonomy = DefaultTaxonomy()
	}
	if logger == nil {
		logger = logging.GetLogger()
	}
	return &Classifier{taxonomy: taxonomy, logger: logger}
}

// Taxonomy returns the taxonomy the classifier scores against.
func (c *Classifier) Taxonomy() *Taxonomy {
	return c.taxonomy
}

// keywordWeight favours longer, more specific keywords.
func keywordWeight(keyword string) int {
	switch n := len(keyword); {
	case n > 6:
		return 3
	case n > 4:
		return 2
	default:
		return 1
	}
}

// Scores returns the score of every category in declaration order.
// Each keyword counts at most once: its weight when it occurs anywhere in
// the text, plus 2 when it also occurs as a whole word.
func (c *Classifier) Scores(lower string) []Score {
	scores := make([]Score, 0, len(c.taxonomy.categories))

	for _, cat := range c.taxonomy.categories {
		score := 0
		for _, kw := range cat.Keywords {
			if !strings.Contains(lower, kw) {
				continue
			}
			score += keywordWeight(kw)
			if c.taxonomy.patterns[kw].MatchString(lower) {
				score += 2
			}
		}

		for _, b := range c.taxonomy.bonuses {
			if b.Category == cat.Name && containsAll(lower, b.All) {
				score += b.Bonus
			}
		}

		scores = append(scores, Score{Category: cat.Name, Value: score})
	}

	return scores
}

// Classify returns the highest scoring category. A later category only
// replaces the current best with a strictly greater score, so ties go to
// the category declared first. When nothing scores the result is Other.
func (c *Classifier) Classify(lower string) models.Category {
	best := models.Category{Name: models.CategoryOther}

	for _, s := range c.Scores(lower) {
		if s.Value > best.Score {
			best = models.Category{Name: s.Category, Score: s.Value}
		}
	}

	c.logger.Debug("Transcript categorized",
		logging.Field{Key: logging.FieldCategory, Value: best.Name},
		logging.Field{Key: logging.FieldScore, Value: best.Score})

	return best
}

func containsAll(text string, phrases []string) bool {
	for _, p := range phrases {
		if !strings.Contains(text, p) {
			return false
		}
	}
	return true
}
