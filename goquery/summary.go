package goquery

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/wikiscraper"
)

// Summary returns the first paragraph of content with non-blank text,
// wrapped to wikiscraper.SummaryWidth. Returns "" if content is nil or
// has no such paragraph.
func Summary(content *goquery.Selection) string {
	if content == nil {
		return ""
	}

	var text string
	content.Find("p").EachWithBreak(func(_ int, p *goquery.Selection) bool {
		text = collapseText(p)
		return text == ""
	})

	return Wrap(text, wikiscraper.SummaryWidth)
}

// Wrap greedily fills lines of at most width characters, breaking at
// whitespace and after hyphens inside words, and joining lines with "\n".
// Words longer than width are split across lines.
func Wrap(text string, width int) string {
	words := strings.Fields(text)
	if len(words) == 0 || width <= 0 {
		return strings.Join(words, " ")
	}

	var lines []string
	var line strings.Builder
	lineLen := 0

	flush := func() {
		if lineLen > 0 {
			lines = append(lines, line.String())
			line.Reset()
			lineLen = 0
		}
	}

	for _, word := range words {
		for i, chunk := range hyphenChunks(word) {
			n := utf8.RuneCountInString(chunk)
			sep := 0
			if i == 0 && lineLen > 0 {
				sep = 1
			}

			if lineLen+sep+n <= width {
				if sep > 0 {
					line.WriteByte(' ')
				}
				line.WriteString(chunk)
				lineLen += sep + n
				continue
			}
			flush()

			for n > width {
				runes := []rune(chunk)
				lines = append(lines, string(runes[:width]))
				chunk = string(runes[width:])
				n -= width
			}
			line.WriteString(chunk)
			lineLen = n
		}
	}
	flush()

	return strings.Join(lines, "\n")
}

// hyphenChunks splits word after each hyphen that has at least two
// letters on either side, so "well-known" yields "well-" and "known"
// while "x-ray" and "-5" stay whole.
func hyphenChunks(word string) []string {
	runes := []rune(word)
	var chunks []string
	start := 0
	for i := 2; i < len(runes)-2; i++ {
		if runes[i] != '-' {
			continue
		}
		if unicode.IsLetter(runes[i-2]) && unicode.IsLetter(runes[i-1]) &&
			unicode.IsLetter(runes[i+1]) && unicode.IsLetter(runes[i+2]) {
			chunks = append(chunks, string(runes[start:i+1]))
			start = i + 1
		}
	}
	return append(chunks, string(runes[start:]))
}
