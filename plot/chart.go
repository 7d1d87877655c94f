// Package plot renders word frequency comparisons with gonum.org/v1/plot.
package plot

import (
	"math"
	"path/filepath"
	"strings"

	"github.com/fwojciec/wikiscraper"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

// Ensure ChartRenderer implements wikiscraper.ChartRenderer at compile time.
var _ wikiscraper.ChartRenderer = (*ChartRenderer)(nil)

// Default chart dimensions.
const (
	DefaultWidth  = 8 * vg.Inch
	DefaultHeight = 5 * vg.Inch
)

// supported lists the file extensions plot.Save can encode.
var supported = map[string]bool{
	".png": true, ".jpg": true, ".jpeg": true, ".svg": true,
	".pdf": true, ".eps": true, ".tif": true, ".tiff": true,
}

// ChartRenderer draws a grouped bar chart with the language and article
// frequencies of every compared word.
type ChartRenderer struct {
	Width  vg.Length
	Height vg.Length
}

// NewChartRenderer returns a renderer using the default dimensions.
func NewChartRenderer() *ChartRenderer {
	return &ChartRenderer{Width: DefaultWidth, Height: DefaultHeight}
}

// Render writes the chart to path. The image format follows the extension.
func (r *ChartRenderer) Render(path string, c *wikiscraper.FrequencyComparison) error {
	ext := strings.ToLower(filepath.Ext(path))
	if !supported[ext] {
		return wikiscraper.Errorf(wikiscraper.EINVALID, "unsupported chart format %q", ext)
	}
	if c == nil || len(c.Rows) == 0 {
		return wikiscraper.Errorf(wikiscraper.EINVALID, "nothing to chart")
	}

	p := plot.New()
	p.Title.Text = "Relative word frequency (" + string(c.Mode) + " mode)"
	p.X.Label.Text = "Word"
	p.Y.Label.Text = "Normalized frequency"

	width := barWidth(len(c.Rows))
	language, err := plotter.NewBarChart(finite(c.LanguageVector()), width)
	if err != nil {
		return err
	}
	language.LineStyle.Width = vg.Length(0)
	language.Color = plotutil.Color(0)
	language.Offset = -width / 2

	article, err := plotter.NewBarChart(finite(c.ArticleVector()), width)
	if err != nil {
		return err
	}
	article.LineStyle.Width = vg.Length(0)
	article.Color = plotutil.Color(1)
	article.Offset = width / 2

	p.Add(language, article)
	p.Legend.Add("Language", language)
	p.Legend.Add("Article", article)
	p.Legend.Top = true
	p.NominalX(c.Words()...)

	w, h := r.Width, r.Height
	if w <= 0 {
		w = DefaultWidth
	}
	if h <= 0 {
		h = DefaultHeight
	}
	if err := p.Save(w, h, path); err != nil {
		return wikiscraper.Errorf(wikiscraper.EINTERNAL, "save chart %s: %s", path, err)
	}
	return nil
}

// barWidth narrows bars as the number of words grows.
func barWidth(n int) vg.Length {
	w := DefaultWidth / vg.Length(3*n+3)
	return min(w, vg.Points(20))
}

// finite replaces NaN and infinite values, which gonum refuses to draw, by 0.
func finite(vs []float64) plotter.Values {
	out := make(plotter.Values, len(vs))
	for i, v := range vs {
		if !math.IsNaN(v) && !math.IsInf(v, 0) {
			out[i] = v
		}
	}
	return out
}
