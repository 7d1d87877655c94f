package wikiscraper

import "slices"

// ComparisonMode selects where compared words come from.
type ComparisonMode string

// ComparisonMode values.
const (
	ModeArticle  ComparisonMode = "article"
	ModeLanguage ComparisonMode = "language"
)

// FrequencyRow is one compared word with both normalized frequencies.
type FrequencyRow struct {
	Word     string
	Language float64
	Article  float64
}

// FrequencyComparison relates article word usage to general language usage.
type FrequencyComparison struct {
	Mode ComparisonMode
	Rows []FrequencyRow
}

// Words returns the compared words in row order.
func (c *FrequencyComparison) Words() []string {
	words := make([]string, len(c.Rows))
	for i, r := range c.Rows {
		words[i] = r.Word
	}
	return words
}

// LanguageVector returns the normalized language frequencies in row order.
func (c *FrequencyComparison) LanguageVector() []float64 {
	v := make([]float64, len(c.Rows))
	for i, r := range c.Rows {
		v[i] = r.Language
	}
	return v
}

// ArticleVector returns the normalized article frequencies in row order.
func (c *FrequencyComparison) ArticleVector() []float64 {
	v := make([]float64, len(c.Rows))
	for i, r := range c.Rows {
		v[i] = r.Article
	}
	return v
}

// ChartRenderer draws a comparison to an image file.
type ChartRenderer interface {
	Render(path string, c *FrequencyComparison) error
}

// CompareFrequencies selects k words by mode and normalizes their language
// and article frequencies so that each column sums to 1.
//
// In article mode the k most counted words are selected; in language mode
// the k most frequent language words. Selected words are listed in reverse
// rank order, least frequent first. A column whose raw values sum to zero
// is left as NaN rather than coerced to zero.
func CompareFrequencies(mode ComparisonMode, k int, counts WordCounts, lang LanguageFrequencies) (*FrequencyComparison, error) {
	if k <= 0 {
		return nil, Errorf(EINVALID, "count must be positive, got %d", k)
	}

	var words []string
	switch mode {
	case ModeArticle:
		words = counts.Top(k)
	case ModeLanguage:
		words = lang.TopN(k)
	default:
		return nil, Errorf(EINVALID, "unknown mode %q", mode)
	}
	words = slices.Clone(words)
	slices.Reverse(words)

	rows := make([]FrequencyRow, len(words))
	var langSum, articleSum float64
	for i, w := range words {
		rows[i] = FrequencyRow{
			Word:     w,
			Language: lang.Frequency(w),
			Article:  float64(counts[w]),
		}
		langSum += rows[i].Language
		articleSum += rows[i].Article
	}
	for i := range rows {
		rows[i].Language /= langSum
		rows[i].Article /= articleSum
	}

	return &FrequencyComparison{Mode: mode, Rows: rows}, nil
}
