// Package compare builds and renders two-device specification comparisons.
package compare

import (
	"sort"

	"github.com/jonesrussell/gocompare/internal/specs"
)

// NotAvailable is the sentinel shown for an attribute a device lacks.
const NotAvailable = "N/A"

// categoryOrder is the fixed display order of specification categories.
// Categories outside this list are dropped from the comparison.
var categoryOrder = []string{
	"General",
	"Display",
	"Hardware",
	"Camera",
	"Software",
	"Connectivity",
	"Sensors",
	"Battery",
}

// Row is one attribute compared across the two devices.
type Row struct {
	Attribute string `json:"attribute"`
	ValueA    string `json:"valueA"`
	ValueB    string `json:"valueB"`
}

// CategorySection groups the comparison rows of one category.
type CategorySection struct {
	Name string `json:"name"`
	Rows []Row  `json:"rows"`
}

// Build produces the unioned, sorted, category-grouped comparison of two
// specification maps. Categories follow the fixed display order and are
// emitted only when at least one device has entries for them; within a
// category, rows cover the union of attribute names in lexicographic order,
// with NotAvailable standing in for a missing side. Swapping the arguments
// swaps the value columns but never the row order.
func Build(a, b specs.SpecMap) []CategorySection {
	var sections []CategorySection

	for _, category := range categoryOrder {
		valuesA := attributeValues(a[category])
		valuesB := attributeValues(b[category])
		if len(valuesA) == 0 && len(valuesB) == 0 {
			continue
		}

		names := attributeUnion(valuesA, valuesB)
		rows := make([]Row, 0, len(names))
		for _, name := range names {
			rows = append(rows, Row{
				Attribute: name,
				ValueA:    valueOrSentinel(valuesA, name),
				ValueB:    valueOrSentinel(valuesB, name),
			})
		}

		sections = append(sections, CategorySection{Name: category, Rows: rows})
	}

	return sections
}

// attributeValues indexes a category's entries by attribute name.
// A duplicate attribute within one category keeps the last value, matching
// the source document literally.
func attributeValues(entries []specs.Entry) map[string]string {
	if len(entries) == 0 {
		return nil
	}
	values := make(map[string]string, len(entries))
	for _, entry := range entries {
		values[entry.Attribute] = entry.Value
	}
	return values
}

// attributeUnion returns the distinct attribute names of both sides in
// lexicographic order.
func attributeUnion(a, b map[string]string) []string {
	names := make([]string, 0, len(a)+len(b))
	for name := range a {
		names = append(names, name)
	}
	for name := range b {
		if _, seen := a[name]; !seen {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}

// valueOrSentinel returns the stored value for the attribute, or the
// NotAvailable sentinel when the device lacks it.
func valueOrSentinel(values map[string]string, name string) string {
	if value, ok := values[name]; ok {
		return value
	}
	return NotAvailable
}
