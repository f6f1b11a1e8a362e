// Package pagination turns a row count, a page size and a requested page
// number into an offset/limit window.
package pagination

import (
	"strconv"
	"strings"
)

// DefaultPage is used when the requested page is missing or unparsable.
const DefaultPage = 1

// Window describes the rows backing a single page.
type Window struct {
	Number   int
	Size     int
	NumPages int
	Total    int
	Offset   int
	Limit    int
}

// Empty reports whether the window selects no rows.
func (w Window) Empty() bool {
	return w.Limit == 0
}

// Compute returns the window for page number of a result set with total rows.
// Page numbers below 1 fall back to DefaultPage. A page past the last one
// yields an empty window rather than an error. An empty result set still has
// one (empty) page.
func Compute(total, size, number int) Window {
	if size < 1 {
		size = 1
	}
	if total < 0 {
		total = 0
	}
	if number < 1 {
		number = DefaultPage
	}

	numPages := (total + size - 1) / size
	if numPages < 1 {
		numPages = 1
	}

	w := Window{
		Number:   number,
		Size:     size,
		NumPages: numPages,
		Total:    total,
	}
	if number > numPages {
		w.Offset = total
		return w
	}

	w.Offset = (number - 1) * size
	w.Limit = size
	if remaining := total - w.Offset; remaining < w.Limit {
		w.Limit = remaining
	}
	return w
}

// ParseNumber converts a raw query value into a page number.
func ParseNumber(raw string) int {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || n < 1 {
		return DefaultPage
	}
	return n
}
