// Package table implements the sortable, paginated data table shared by
// the search and admin pages.
package table

import (
	"math"
	"sort"
	"strconv"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Column pairs a row key with its header label.
type Column struct {
	Key   string
	Label string
}

// Row is one record keyed by column.
type Row map[string]interface{}

// NoResultsPlaceholder is rendered as the sole cell when the dataset is
// empty.
const NoResultsPlaceholder = "No results"

// Table renders one page of rows at a time and tracks its own sort and
// page state. It never mutates the rows handed to it.
type Table struct {
	columns  []Column
	rows     []Row
	pageSize int
	page     int

	sortKey       string
	sortAscending bool

	collator *collate.Collator
	onSelect func(Row)
}

// New creates a table over rows. pageSize must be positive.
func New(columns []Column, rows []Row, pageSize int) *Table {
	if pageSize < 1 {
		pageSize = 1
	}
	return &Table{
		columns:  columns,
		rows:     append([]Row(nil), rows...),
		pageSize: pageSize,
		page:     1,
		collator: collate.New(language.Und),
	}
}

// OnSelect registers the row click callback.
func (t *Table) OnSelect(fn func(Row)) {
	t.onSelect = fn
}

// SetRows replaces the dataset and resets to page 1.
func (t *Table) SetRows(rows []Row) {
	t.rows = append([]Row(nil), rows...)
	t.page = 1
}

// SortBy sorts the whole dataset by the given column. Repeating the
// same column flips the direction; a new column starts ascending.
func (t *Table) SortBy(key string) {
	if t.sortKey == key {
		t.sortAscending = !t.sortAscending
	} else {
		t.sortKey = key
		t.sortAscending = true
	}

	ascending := t.sortAscending
	sort.SliceStable(t.rows, func(i, j int) bool {
		less := t.less(t.rows[i][key], t.rows[j][key])
		if ascending {
			return less
		}
		return t.less(t.rows[j][key], t.rows[i][key])
	})
}

// less compares two cell values: numerically when both sides are
// numbers, otherwise by locale-aware string comparison. Missing values
// compare as the empty string.
func (t *Table) less(a, b interface{}) bool {
	av, aNum := asNumber(a)
	bv, bNum := asNumber(b)
	if aNum && bNum {
		return av < bv
	}
	return t.collator.CompareString(asString(a), asString(b)) < 0
}

func asNumber(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case float64:
		return n, true
	case float32:
		return float64(n), true
	}
	return 0, false
}

func asString(v interface{}) string {
	switch s := v.(type) {
	case nil:
		return ""
	case string:
		return s
	case int:
		return strconv.Itoa(s)
	case int64:
		return strconv.FormatInt(s, 10)
	case float64:
		return strconv.FormatFloat(s, 'f', -1, 64)
	default:
		return ""
	}
}

// PageCount returns ceil(rows / pageSize), never below 1.
func (t *Table) PageCount() int {
	if len(t.rows) == 0 {
		return 1
	}
	return int(math.Ceil(float64(len(t.rows)) / float64(t.pageSize)))
}

// CurrentPage returns the active page number.
func (t *Table) CurrentPage() int {
	return t.page
}

// SetPage moves to the requested page, clamped into [1, PageCount].
func (t *Table) SetPage(page int) {
	if page < 1 {
		page = 1
	}
	if max := t.PageCount(); page > max {
		page = max
	}
	t.page = page
}

// Page returns the rows of the current page.
func (t *Table) Page() []Row {
	start := (t.page - 1) * t.pageSize
	if start >= len(t.rows) {
		return nil
	}
	end := start + t.pageSize
	if end > len(t.rows) {
		end = len(t.rows)
	}
	return t.rows[start:end]
}

// RenderPage returns the current page as display cells, one slice per
// row in column order. An empty dataset yields a single placeholder row.
func (t *Table) RenderPage() [][]string {
	rows := t.Page()
	if len(rows) == 0 {
		return [][]string{{NoResultsPlaceholder}}
	}

	out := make([][]string, 0, len(rows))
	for _, row := range rows {
		cells := make([]string, 0, len(t.columns))
		for _, col := range t.columns {
			cells = append(cells, asString(row[col.Key]))
		}
		out = append(out, cells)
	}
	return out
}

// Select invokes the click callback with the row at the given index on
// the current page.
func (t *Table) Select(index int) {
	rows := t.Page()
	if t.onSelect == nil || index < 0 || index >= len(rows) {
		return
	}
	t.onSelect(rows[index])
}

// Columns returns the column specification.
func (t *Table) Columns() []Column {
	return t.columns
}
