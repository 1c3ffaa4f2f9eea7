// Package specs extracts device specification tables from article HTML.
package specs

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Entry is one specification row: an attribute name and its value.
type Entry struct {
	Attribute string `json:"attribute"`
	Value     string `json:"value"`
}

// SpecMap maps a category name to its ordered specification entries.
type SpecMap map[string][]Entry

// headingSelector matches the heading levels that open a specification
// section in WordPress article bodies.
const headingSelector = "h2, h3, h4"

// Extractor parses article bodies into specification maps using goquery.
type Extractor struct{}

// NewExtractor creates a new specification extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract parses a single article body into a specification map.
//
// The body is scanned for heading-then-table blocks: a heading whose
// immediately following block bears a table opens a category named after the
// heading text. Within the table, each row with exactly two cells contributes
// one entry; rows with any other cell count are skipped. A category with no
// valid rows is omitted, and duplicate category names overwrite earlier ones.
// Malformed or empty markup yields an empty map, never an error.
func (e *Extractor) Extract(bodyHTML string) SpecMap {
	specs := SpecMap{}
	if strings.TrimSpace(bodyHTML) == "" {
		return specs
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(bodyHTML))
	if err != nil {
		return specs
	}

	doc.Find(headingSelector).Each(func(_ int, heading *goquery.Selection) {
		category := cleanText(heading.Text())
		if category == "" {
			return
		}

		tbl := tableAfter(heading)
		if tbl == nil {
			return
		}

		entries := extractRows(tbl)
		if len(entries) == 0 {
			return
		}

		// Duplicate section titles in the source overwrite, not merge.
		specs[category] = entries
	})

	return specs
}

// tableAfter returns the table borne by the block immediately following the
// heading: either the sibling itself is a table, or it wraps one (WordPress
// puts tables inside <figure class="wp-block-table">). Returns nil when the
// next block carries no table.
func tableAfter(heading *goquery.Selection) *goquery.Selection {
	next := heading.Next()
	if next.Length() == 0 {
		return nil
	}

	if next.Is("table") {
		return next
	}

	tbl := next.Find("table").First()
	if tbl.Length() == 0 {
		return nil
	}
	return tbl
}

// extractRows collects the two-cell rows of a table as entries.
func extractRows(tbl *goquery.Selection) []Entry {
	var entries []Entry

	tbl.Find("tr").Each(func(_ int, row *goquery.Selection) {
		cells := row.ChildrenFiltered("td, th")
		if cells.Length() != 2 {
			return
		}

		attribute := cleanText(cells.Eq(0).Text())
		if attribute == "" {
			return
		}

		entries = append(entries, Entry{
			Attribute: attribute,
			Value:     cleanText(cells.Eq(1).Text()),
		})
	})

	return entries
}

// cleanText collapses whitespace runs to single spaces and trims.
// Markup is already stripped by DOM text extraction.
func cleanText(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
