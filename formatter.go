package wikiscraper

import (
	"fmt"
	"strings"
	"text/tabwriter"
	"time"
)

// FormatValueCounts formats a value tally as a two-column report.
// Returns an empty string when there are no values.
func FormatValueCounts(counts []ValueCount) string {
	if len(counts) == 0 {
		return ""
	}
	var b strings.Builder
	w := tabwriter.NewWriter(&b, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "Value\tCount")
	for _, c := range counts {
		fmt.Fprintf(w, "%s\t%d\n", c.Value, c.Count)
	}
	_ = w.Flush()
	return b.String()
}

// FormatComparison formats a frequency comparison as a table with the
// columns Word, Language_Freq and Article_Freq.
func FormatComparison(c *FrequencyComparison) string {
	var b strings.Builder
	w := tabwriter.NewWriter(&b, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(w, "Word\tLanguage_Freq\tArticle_Freq\t")
	for _, r := range c.Rows {
		fmt.Fprintf(w, "%s\t%.6f\t%.6f\t\n", r.Word, r.Language, r.Article)
	}
	_ = w.Flush()
	return b.String()
}

// FormatVisits formats recorded visits, one per line.
func FormatVisits(visits []*Visit) string {
	if len(visits) == 0 {
		return ""
	}
	var b strings.Builder
	w := tabwriter.NewWriter(&b, 0, 0, 2, ' ', 0)
	for _, v := range visits {
		fmt.Fprintf(w, "%s\t%s\tdepth=%d\twords=%d/%d\t%s\n",
			v.VisitedAt.Local().Format(time.DateTime), v.Identifier, v.Depth,
			v.DistinctWords, v.TotalWords, v.ContentHash)
	}
	_ = w.Flush()
	return b.String()
}
